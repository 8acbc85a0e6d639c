package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Consola-api/internal/domain"
	"github.com/jhoicas/Consola-api/internal/domain/entity"
	"github.com/jhoicas/Consola-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo implementación del puerto ReportRepository sobre PostgreSQL (usable con pool o tx).
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de persistencia del módulo reporting. Pasar pool o tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// Create persiste un nuevo informe.
func (r *ReportRepo) Create(report *entity.Report) error {
	query := `
		INSERT INTO reports (id, title, content, team_id, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		report.ID, report.Title, report.Content, report.TeamID, report.CreatedBy,
		report.CreatedAt, report.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

// GetByID obtiene un informe por ID.
func (r *ReportRepo) GetByID(id string) (*entity.Report, error) {
	query := `
		SELECT id, title, content, team_id, created_by, created_at, updated_at
		FROM reports WHERE id = $1`
	var rep entity.Report
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rep.ID, &rep.Title, &rep.Content, &rep.TeamID, &rep.CreatedBy, &rep.CreatedAt, &rep.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get report: %w", err)
	}
	return &rep, nil
}

// ListByTeam lista los informes de un equipo con paginación.
func (r *ReportRepo) ListByTeam(teamID string, limit, offset int) ([]*entity.Report, error) {
	query := `
		SELECT id, title, content, team_id, created_by, created_at, updated_at
		FROM reports WHERE team_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, teamID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	var out []*entity.Report
	for rows.Next() {
		var rep entity.Report
		if err := rows.Scan(&rep.ID, &rep.Title, &rep.Content, &rep.TeamID, &rep.CreatedBy, &rep.CreatedAt, &rep.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		out = append(out, &rep)
	}
	return out, rows.Err()
}

// Update actualiza un informe existente.
func (r *ReportRepo) Update(report *entity.Report) error {
	query := `UPDATE reports SET title = $2, content = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		report.ID, report.Title, report.Content, report.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update report: %w", err)
	}
	return nil
}

// Delete elimina un informe.
func (r *ReportRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM reports WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByTeam elimina los informes del equipo (cascada de borrado de equipo).
func (r *ReportRepo) DeleteByTeam(teamID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM reports WHERE team_id = $1`, teamID)
	if err != nil {
		return fmt.Errorf("delete reports of team: %w", err)
	}
	return nil
}
