package usecase

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/smartunion/workforce-api/internal/application/dto"
	"github.com/smartunion/workforce-api/internal/domain"
	"github.com/smartunion/workforce-api/internal/domain/entity"
)

// ManpowerUseCase bitácora diaria de despliegue: un registro por badge y día
// con el cargo del día, el proyecto y la descripción del trabajo. Estado local
// al proceso, como la asistencia; la consulta agrupa por proyecto.
type ManpowerUseCase struct {
	mu   sync.Mutex
	logs map[string]*entity.ManpowerLog // badge|fecha → registro
	now  func() time.Time
}

// NewManpowerUseCase construye el caso de uso. now es inyectable para tests.
func NewManpowerUseCase(now func() time.Time) *ManpowerUseCase {
	if now == nil {
		now = time.Now
	}
	return &ManpowerUseCase{
		logs: make(map[string]*entity.ManpowerLog),
		now:  now,
	}
}

// Log registra (o corrige) el despliegue del día para el badge. Un registro
// existente para badge+fecha se sobreescribe conservando su id: la bitácora
// del día es editable, no un historial append-only.
func (uc *ManpowerUseCase) Log(in dto.LogManpowerRequest) (*dto.ManpowerLogResponse, error) {
	if strings.TrimSpace(in.BadgeNumber) == "" || strings.TrimSpace(in.Project) == "" {
		return nil, domain.ErrInvalidInput
	}
	date := in.Date
	if date == "" {
		date = uc.now().Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, domain.ErrInvalidInput
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	key := recordKey(in.BadgeNumber, date)
	log, ok := uc.logs[key]
	if !ok {
		log = &entity.ManpowerLog{ID: uuid.New().String(), BadgeNumber: in.BadgeNumber, Date: date}
		uc.logs[key] = log
	}
	log.Project = strings.TrimSpace(in.Project)
	log.JobTitle = in.JobTitle
	log.WorkGroup = in.WorkGroup
	log.WorkDescription = in.WorkDescription
	return manpowerToResponse(log), nil
}

// ListByDate registros de un día agrupados por proyecto, ordenados por badge
// dentro de cada grupo.
func (uc *ManpowerUseCase) ListByDate(date string) (*dto.ManpowerListResponse, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, domain.ErrInvalidInput
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()

	out := &dto.ManpowerListResponse{
		Date:     date,
		Projects: make(map[string][]dto.ManpowerLogResponse),
	}
	for _, log := range uc.logs {
		if log.Date == date {
			out.Projects[log.Project] = append(out.Projects[log.Project], *manpowerToResponse(log))
		}
	}
	for _, entries := range out.Projects {
		sort.Slice(entries, func(i, j int) bool { return entries[i].BadgeNumber < entries[j].BadgeNumber })
	}
	return out, nil
}

func manpowerToResponse(l *entity.ManpowerLog) *dto.ManpowerLogResponse {
	return &dto.ManpowerLogResponse{
		ID:              l.ID,
		BadgeNumber:     l.BadgeNumber,
		Date:            l.Date,
		Project:         l.Project,
		JobTitle:        l.JobTitle,
		WorkGroup:       l.WorkGroup,
		WorkDescription: l.WorkDescription,
	}
}
