package usecase

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/smartunion/workforce-api/internal/application/dto"
	"github.com/smartunion/workforce-api/internal/domain"
	"github.com/smartunion/workforce-api/internal/domain/entity"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// lateThreshold entrada estrictamente posterior a las 09:00 cuenta como tarde
var lateThreshold = 9 * time.Hour

// AttendanceUseCase registro de asistencia por badge y día. Estado local al
// proceso: la asistencia no se persiste en el backend en este alcance.
type AttendanceUseCase struct {
	mu      sync.Mutex
	records map[string]*entity.AttendanceRecord // badge|fecha → registro
	now     func() time.Time
}

// NewAttendanceUseCase construye el caso de uso. now es inyectable para tests.
func NewAttendanceUseCase(now func() time.Time) *AttendanceUseCase {
	if now == nil {
		now = time.Now
	}
	return &AttendanceUseCase{
		records: make(map[string]*entity.AttendanceRecord),
		now:     now,
	}
}

func recordKey(badge, date string) string { return badge + "|" + date }

// CheckIn registra la entrada de hoy para el badge. Después de las 09:00 el
// estado es late. domain.ErrAlreadyCheckedIn si ya hay entrada para ese día.
func (uc *AttendanceUseCase) CheckIn(badge string) (*dto.AttendanceResponse, error) {
	if badge == "" {
		return nil, domain.ErrInvalidInput
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()

	now := uc.now()
	date := now.Format(dateLayout)
	key := recordKey(badge, date)
	if existing, ok := uc.records[key]; ok && existing.CheckIn != "" {
		return nil, domain.ErrAlreadyCheckedIn
	}

	status := entity.AttendancePresent
	sinceMidnight := time.Duration(now.Hour())*time.Hour + time.Duration(now.Minute())*time.Minute
	if sinceMidnight > lateThreshold {
		status = entity.AttendanceLate
	}

	rec := &entity.AttendanceRecord{
		ID:          uuid.New().String(),
		BadgeNumber: badge,
		Date:        date,
		CheckIn:     now.Format(timeLayout),
		Status:      status,
	}
	uc.records[key] = rec
	return attendanceToResponse(rec), nil
}

// CheckOut registra la salida de hoy y deriva las horas trabajadas (delta
// salida−entrada, 2 decimales). Solo es válido con una entrada previa:
// domain.ErrNoCheckIn si no la hay, domain.ErrAlreadyCheckedOut si se repite.
func (uc *AttendanceUseCase) CheckOut(badge string) (*dto.AttendanceResponse, error) {
	if badge == "" {
		return nil, domain.ErrInvalidInput
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()

	now := uc.now()
	key := recordKey(badge, now.Format(dateLayout))
	rec, ok := uc.records[key]
	if !ok || rec.CheckIn == "" {
		return nil, domain.ErrNoCheckIn
	}
	if rec.CheckOut != "" {
		return nil, domain.ErrAlreadyCheckedOut
	}

	checkIn, err := time.Parse(timeLayout, rec.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("registro de entrada corrupto: %w", err)
	}
	checkOut, _ := time.Parse(timeLayout, now.Format(timeLayout))

	rec.CheckOut = now.Format(timeLayout)
	hours := checkOut.Sub(checkIn).Hours()
	rec.HoursWorked = math.Round(hours*100) / 100
	return attendanceToResponse(rec), nil
}

// ListByDate registros de un día, cualquier badge.
func (uc *AttendanceUseCase) ListByDate(date string) (*dto.AttendanceListResponse, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, domain.ErrInvalidInput
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()

	items := make([]dto.AttendanceResponse, 0)
	for _, rec := range uc.records {
		if rec.Date == date {
			items = append(items, *attendanceToResponse(rec))
		}
	}
	return &dto.AttendanceListResponse{Items: items}, nil
}

// Summary agregados del día: presentes (incluye tarde), ausentes y horas totales.
func (uc *AttendanceUseCase) Summary(date string) (*dto.AttendanceSummary, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, domain.ErrInvalidInput
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s := &dto.AttendanceSummary{Date: date}
	for _, rec := range uc.records {
		if rec.Date != date {
			continue
		}
		switch rec.Status {
		case entity.AttendancePresent, entity.AttendanceLate:
			s.Present++
			if rec.Status == entity.AttendanceLate {
				s.Late++
			}
		case entity.AttendanceAbsent:
			s.Absent++
		}
		s.TotalHours += rec.HoursWorked
	}
	s.TotalHours = math.Round(s.TotalHours*100) / 100
	return s, nil
}

func attendanceToResponse(r *entity.AttendanceRecord) *dto.AttendanceResponse {
	return &dto.AttendanceResponse{
		ID:          r.ID,
		BadgeNumber: r.BadgeNumber,
		Date:        r.Date,
		CheckIn:     r.CheckIn,
		CheckOut:    r.CheckOut,
		HoursWorked: r.HoursWorked,
		Status:      r.Status,
	}
}
