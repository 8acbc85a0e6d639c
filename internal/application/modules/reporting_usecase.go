package modules

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Consola-api/internal/application/dto"
	"github.com/jhoicas/Consola-api/internal/domain"
	"github.com/jhoicas/Consola-api/internal/domain/entity"
	"github.com/jhoicas/Consola-api/internal/domain/repository"
)

// ReportingUseCase CRUD de informes con alcance de equipo, más las
// exportaciones PDF y XML.
type ReportingUseCase struct {
	repo     repository.ReportRepository
	teamRepo repository.TeamRepository
	pdfGen   ReportPDFGenerator
	xml      ReportXMLBuilder
}

// NewReportingUseCase construye el caso de uso del módulo reporting.
func NewReportingUseCase(
	repo repository.ReportRepository,
	teamRepo repository.TeamRepository,
	pdfGen ReportPDFGenerator,
	xml ReportXMLBuilder,
) *ReportingUseCase {
	return &ReportingUseCase{repo: repo, teamRepo: teamRepo, pdfGen: pdfGen, xml: xml}
}

// Create crea un informe en el equipo del llamador.
func (uc *ReportingUseCase) Create(caller *entity.User, in dto.CreateReportRequest) (*dto.ReportResponse, error) {
	if in.TeamID != caller.TeamIDOrEmpty() {
		return nil, domain.ErrForbidden
	}
	now := time.Now()
	report := &entity.Report{
		ID:        uuid.New().String(),
		Title:     in.Title,
		Content:   in.Content,
		TeamID:    in.TeamID,
		CreatedBy: caller.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(report); err != nil {
		return nil, err
	}
	return toReportResponse(report), nil
}

// ListByTeam lista los informes de un equipo. Equipo ajeno → ErrForbidden.
func (uc *ReportingUseCase) ListByTeam(caller *entity.User, teamID string, limit, offset int) (*dto.ReportListResponse, error) {
	if teamID != caller.TeamIDOrEmpty() {
		return nil, domain.ErrForbidden
	}
	list, err := uc.repo.ListByTeam(teamID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReportResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toReportResponse(r))
	}
	return &dto.ReportListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update edita un informe del equipo del llamador.
func (uc *ReportingUseCase) Update(caller *entity.User, id string, in dto.UpdateReportRequest) (*dto.ReportResponse, error) {
	report, err := uc.ownedReport(caller, id)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		report.Title = *in.Title
	}
	if in.Content != nil {
		report.Content = *in.Content
	}
	report.UpdatedAt = time.Now()
	if err := uc.repo.Update(report); err != nil {
		return nil, err
	}
	return toReportResponse(report), nil
}

// Delete elimina un informe del equipo del llamador.
func (uc *ReportingUseCase) Delete(caller *entity.User, id string) error {
	if _, err := uc.ownedReport(caller, id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

// ExportPDF genera la representación PDF de un informe del equipo del llamador.
func (uc *ReportingUseCase) ExportPDF(caller *entity.User, id string) ([]byte, error) {
	report, err := uc.ownedReport(caller, id)
	if err != nil {
		return nil, err
	}
	team, err := uc.teamRepo.GetByID(report.TeamID)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateReportPDF(report, team)
}

// ExportXML genera la exportación XML de un informe del equipo del llamador.
func (uc *ReportingUseCase) ExportXML(caller *entity.User, id string) ([]byte, error) {
	report, err := uc.ownedReport(caller, id)
	if err != nil {
		return nil, err
	}
	team, err := uc.teamRepo.GetByID(report.TeamID)
	if err != nil {
		return nil, err
	}
	return uc.xml.BuildReportXML(report, team)
}

func (uc *ReportingUseCase) ownedReport(caller *entity.User, id string) (*entity.Report, error) {
	report, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, domain.ErrNotFound
	}
	if report.TeamID != caller.TeamIDOrEmpty() {
		return nil, domain.ErrForbidden
	}
	return report, nil
}

func toReportResponse(r *entity.Report) *dto.ReportResponse {
	if r == nil {
		return nil
	}
	return &dto.ReportResponse{
		ID:        r.ID,
		Title:     r.Title,
		Content:   r.Content,
		TeamID:    r.TeamID,
		CreatedBy: r.CreatedBy,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
