// Package pdf implementa la representación PDF de los informes del módulo
// reporting usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del informe  │  Equipo + Fecha              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CUERPO: contenido del informe                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: identificador del informe                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"

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

	"github.com/jhoicas/Consola-api/internal/application/modules"
	"github.com/jhoicas/Consola-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ modules.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa modules.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateReportPDF genera el PDF del informe y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateReportPDF(report *entity.Report, team *entity.Team) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle(report.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report, team))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	for _, r := range bodyRows(report.Content) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq), equipo y fecha (der).
func headerRow(report *entity.Report, team *entity.Team) core.Row {
	teamName := ""
	if team != nil {
		teamName = team.Name
	}
	return row.New(16).Add(
		col.New(8).Add(
			text.New(report.Title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New(teamName, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1,
			}),
			text.New(report.CreatedAt.Format("02/01/2006"), props.Text{
				Size: 9, Align: align.Right, Top: 7, Color: colorGray,
			}),
		),
	)
}

// bodyRows: una fila por párrafo del contenido.
func bodyRows(content string) []core.Row {
	var out []core.Row
	out = append(out, line.NewRow(3))
	for _, paragraph := range strings.Split(content, "\n") {
		if strings.TrimSpace(paragraph) == "" {
			out = append(out, line.NewRow(3))
			continue
		}
		out = append(out, row.New(6).Add(
			col.New(12).Add(
				text.New(paragraph, props.Text{Size: 10}),
			),
		))
	}
	return out
}

func footerRow(report *entity.Report) core.Row {
	return row.New(6).Add(
		col.New(12).Add(
			text.New("Informe "+report.ID, props.Text{
				Size: 7, Align: align.Center, Color: colorGray, Top: 2,
			}),
		),
	)
}
