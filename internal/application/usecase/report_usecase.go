package usecase

import (
	"context"
	"time"

	"github.com/smartunion/workforce-api/internal/application/dto"
)

// RosterPDFGenerator puerto de generación del reporte PDF del directorio.
// Lo implementa infrastructure/pdf con Maroto.
type RosterPDFGenerator interface {
	GenerateRoster(ctx context.Context, generatedAt time.Time, entries []dto.DirectoryEntry) ([]byte, error)
}

// ReportUseCase exporta el directorio de empleados como PDF, con los nombres
// de lookup ya resueltos (las referencias huérfanas salen como "Unknown").
type ReportUseCase struct {
	employees *EmployeeUseCase
	generator RosterPDFGenerator
	now       func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(employees *EmployeeUseCase, generator RosterPDFGenerator) *ReportUseCase {
	return &ReportUseCase{employees: employees, generator: generator, now: time.Now}
}

// Roster genera el PDF con el estado actual del directorio.
func (uc *ReportUseCase) Roster(ctx context.Context) ([]byte, error) {
	directory, err := uc.employees.Directory(ctx)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateRoster(ctx, uc.now(), directory.Items)
}
