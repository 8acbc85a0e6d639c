package modules

import "github.com/jhoicas/Consola-api/internal/domain/entity"

// ReportPDFGenerator genera la representación PDF de un informe.
// Lo implementa infrastructure/pdf con Maroto.
type ReportPDFGenerator interface {
	GenerateReportPDF(report *entity.Report, team *entity.Team) ([]byte, error)
}

// ReportXMLBuilder genera la exportación XML de un informe.
// Lo implementa infrastructure/export con etree.
type ReportXMLBuilder interface {
	BuildReportXML(report *entity.Report, team *entity.Team) ([]byte, error)
}
