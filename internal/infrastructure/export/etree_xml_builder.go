// Package export implementa la exportación XML de los informes del módulo
// reporting usando etree.
package export

import (
	"fmt"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/Consola-api/internal/application/modules"
	"github.com/jhoicas/Consola-api/internal/domain/entity"
)

var _ modules.ReportXMLBuilder = (*EtreeXMLBuilder)(nil)

// EtreeXMLBuilder implementa modules.ReportXMLBuilder con un documento etree.
type EtreeXMLBuilder struct{}

// NewEtreeXMLBuilder construye el builder.
func NewEtreeXMLBuilder() *EtreeXMLBuilder { return &EtreeXMLBuilder{} }

// BuildReportXML serializa el informe con su equipo a XML indentado.
func (b *EtreeXMLBuilder) BuildReportXML(report *entity.Report, team *entity.Team) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("Report")
	root.CreateAttr("id", report.ID)

	root.CreateElement("Title").SetText(report.Title)
	if team != nil {
		teamEl := root.CreateElement("Team")
		teamEl.CreateAttr("id", team.ID)
		teamEl.SetText(team.Name)
	}
	root.CreateElement("Content").SetText(report.Content)
	root.CreateElement("CreatedBy").SetText(report.CreatedBy)
	root.CreateElement("CreatedAt").SetText(report.CreatedAt.Format(time.RFC3339))
	root.CreateElement("UpdatedAt").SetText(report.UpdatedAt.Format(time.RFC3339))

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("serializar informe XML: %w", err)
	}
	return out, nil
}
