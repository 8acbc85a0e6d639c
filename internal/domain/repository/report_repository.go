package repository

import "github.com/jhoicas/Consola-api/internal/domain/entity"

// ReportRepository define el puerto de persistencia para Report
// (módulo reporting).
type ReportRepository interface {
	Create(report *entity.Report) error
	GetByID(id string) (*entity.Report, error)
	ListByTeam(teamID string, limit, offset int) ([]*entity.Report, error)
	Update(report *entity.Report) error
	Delete(id string) error
	DeleteByTeam(teamID string) error
}
