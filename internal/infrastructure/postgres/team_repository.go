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

var _ repository.TeamRepository = (*TeamRepo)(nil)

// TeamRepo implementación del puerto TeamRepository sobre PostgreSQL (usable con pool o tx).
type TeamRepo struct {
	q Querier
}

// NewTeamRepository construye el adaptador de persistencia para equipos. Pasar pool o tx (Querier).
func NewTeamRepository(q Querier) *TeamRepo {
	return &TeamRepo{q: q}
}

// Create persiste un nuevo equipo.
func (r *TeamRepo) Create(team *entity.Team) error {
	query := `
		INSERT INTO teams (id, name, tenant_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		team.ID, team.Name, team.TenantID, team.CreatedAt, team.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert team: %w", err)
	}
	return nil
}

// GetByID obtiene un equipo por ID.
func (r *TeamRepo) GetByID(id string) (*entity.Team, error) {
	query := `SELECT id, name, tenant_id, created_at, updated_at FROM teams WHERE id = $1`
	var t entity.Team
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.Name, &t.TenantID, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get team: %w", err)
	}
	return &t, nil
}

// List lista equipos con paginación.
func (r *TeamRepo) List(limit, offset int) ([]*entity.Team, error) {
	query := `
		SELECT id, name, tenant_id, created_at, updated_at
		FROM teams ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	defer rows.Close()

	var out []*entity.Team
	for rows.Next() {
		var t entity.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.TenantID, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}

// Update actualiza un equipo existente.
func (r *TeamRepo) Update(team *entity.Team) error {
	query := `UPDATE teams SET name = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, team.ID, team.Name, team.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update team: %w", err)
	}
	return nil
}

// Delete elimina un equipo. La cascada (grupos, usuarios, datos de módulo)
// la orquesta el caso de uso dentro de la misma transacción.
func (r *TeamRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
