package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartunion/workforce-api/internal/application/usecase"
	"github.com/smartunion/workforce-api/internal/domain"
	"github.com/smartunion/workforce-api/internal/domain/entity"
)

// reloj fijo controlable por el test
type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func at(hour, min int) time.Time {
	return time.Date(2024, 3, 11, hour, min, 0, 0, time.UTC)
}

func TestCheckIn_AntesDeLasNueveEsPresent(t *testing.T) {
	clock := &fakeClock{t: at(8, 30)}
	uc := usecase.NewAttendanceUseCase(clock.now)

	rec, err := uc.CheckIn("EMP001")
	require.NoError(t, err)
	assert.Equal(t, entity.AttendancePresent, rec.Status)
	assert.Equal(t, "08:30", rec.CheckIn)
	assert.Empty(t, rec.CheckOut)
	assert.Zero(t, rec.HoursWorked)
}

func TestCheckIn_DespuesDeLasNueveEsLate(t *testing.T) {
	clock := &fakeClock{t: at(9, 15)}
	uc := usecase.NewAttendanceUseCase(clock.now)

	rec, err := uc.CheckIn("EMP001")
	require.NoError(t, err)
	assert.Equal(t, entity.AttendanceLate, rec.Status)
}

func TestCheckIn_DobleEntradaElMismoDia(t *testing.T) {
	clock := &fakeClock{t: at(8, 0)}
	uc := usecase.NewAttendanceUseCase(clock.now)

	_, err := uc.CheckIn("EMP001")
	require.NoError(t, err)

	_, err = uc.CheckIn("EMP001")
	assert.ErrorIs(t, err, domain.ErrAlreadyCheckedIn)
}

// Las horas trabajadas son el delta salida−entrada, redondeado a 2 decimales,
// nunca entrada directa.
func TestCheckOut_DerivaHorasTrabajadas(t *testing.T) {
	clock := &fakeClock{t: at(8, 0)}
	uc := usecase.NewAttendanceUseCase(clock.now)

	_, err := uc.CheckIn("EMP001")
	require.NoError(t, err)

	clock.t = at(17, 20)
	rec, err := uc.CheckOut("EMP001")
	require.NoError(t, err)
	assert.Equal(t, "17:20", rec.CheckOut)
	assert.InDelta(t, 9.33, rec.HoursWorked, 0.001)
}

// CheckOut solo puede fijarse con un CheckIn previo del mismo día.
func TestCheckOut_SinEntradaPrevia(t *testing.T) {
	clock := &fakeClock{t: at(17, 0)}
	uc := usecase.NewAttendanceUseCase(clock.now)

	_, err := uc.CheckOut("EMP001")
	assert.ErrorIs(t, err, domain.ErrNoCheckIn)
}

func TestCheckOut_DobleSalida(t *testing.T) {
	clock := &fakeClock{t: at(8, 0)}
	uc := usecase.NewAttendanceUseCase(clock.now)

	_, err := uc.CheckIn("EMP001")
	require.NoError(t, err)

	clock.t = at(17, 0)
	_, err = uc.CheckOut("EMP001")
	require.NoError(t, err)

	_, err = uc.CheckOut("EMP001")
	assert.ErrorIs(t, err, domain.ErrAlreadyCheckedOut)
}

func TestSummary_AgregadosDelDia(t *testing.T) {
	clock := &fakeClock{t: at(8, 0)}
	uc := usecase.NewAttendanceUseCase(clock.now)

	_, err := uc.CheckIn("EMP001")
	require.NoError(t, err)

	clock.t = at(9, 30)
	_, err = uc.CheckIn("ENG001")
	require.NoError(t, err)

	clock.t = at(17, 0)
	_, err = uc.CheckOut("EMP001")
	require.NoError(t, err)

	s, err := uc.Summary("2024-03-11")
	require.NoError(t, err)
	assert.Equal(t, 2, s.Present, "present incluye las llegadas tarde")
	assert.Equal(t, 1, s.Late)
	assert.Equal(t, 0, s.Absent)
	assert.InDelta(t, 9.0, s.TotalHours, 0.001)

	// otro día: vacío
	s, err = uc.Summary("2024-03-12")
	require.NoError(t, err)
	assert.Zero(t, s.Present)
}

func TestSummary_FechaInvalida(t *testing.T) {
	uc := usecase.NewAttendanceUseCase(nil)
	_, err := uc.Summary("11-03-2024")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
