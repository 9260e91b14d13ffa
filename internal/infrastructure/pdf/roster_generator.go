// Package pdf genera el reporte PDF del directorio de empleados (roster) con
// Maroto v2: cabecera con fecha de generación, tabla con los nombres de
// lookup resueltos y pie con el total de filas.
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/smartunion/workforce-api/internal/application/dto"
	"github.com/smartunion/workforce-api/internal/application/usecase"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.RosterPDFGenerator = (*MarotoRosterGenerator)(nil)

// MarotoRosterGenerator implementa usecase.RosterPDFGenerator usando Maroto v2.
type MarotoRosterGenerator struct{}

// NewMarotoRosterGenerator construye el generador.
func NewMarotoRosterGenerator() *MarotoRosterGenerator { return &MarotoRosterGenerator{} }

// GenerateRoster genera el PDF y devuelve sus bytes.
func (g *MarotoRosterGenerator) GenerateRoster(
	_ context.Context,
	generatedAt time.Time,
	entries []dto.DirectoryEntry,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Employee Roster", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, e := range entries {
		m.AddRows(entryRow(e))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(entries)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar roster: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Employee Roster", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(size int, label string) core.Col {
		return col.New(size).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 8}))
	}
	return row.New(7).Add(
		header(2, "Badge"),
		header(3, "Nombre"),
		header(3, "Cargo"),
		header(2, "Departamento"),
		header(2, "Estado"),
	)
}

func entryRow(e dto.DirectoryEntry) core.Row {
	status := "Active"
	if !e.IsActive {
		status = "Inactive"
	}
	cell := func(size int, value string) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 8, Color: colorGray}))
	}
	return row.New(6).Add(
		cell(2, e.BadgeNumber),
		cell(3, e.FullName),
		cell(3, e.JobTitle),
		cell(2, e.Department),
		cell(2, status),
	)
}

func footerRow(total int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Total: %d empleados", total), props.Text{
				Size: 8, Top: 2, Color: colorGray,
			}),
		),
	)
}
