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

var _ repository.SecretRepository = (*SecretRepo)(nil)

// SecretRepo implementación del puerto SecretRepository sobre PostgreSQL (usable con pool o tx).
type SecretRepo struct {
	q Querier
}

// NewSecretRepository construye el adaptador de persistencia del módulo vault. Pasar pool o tx (Querier).
func NewSecretRepository(q Querier) *SecretRepo {
	return &SecretRepo{q: q}
}

// Create persiste un nuevo secreto.
func (r *SecretRepo) Create(secret *entity.Secret) error {
	query := `
		INSERT INTO secrets (id, name, value, team_id, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		secret.ID, secret.Name, secret.Value, secret.TeamID, secret.CreatedBy,
		secret.CreatedAt, secret.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert secret: %w", err)
	}
	return nil
}

// GetByID obtiene un secreto por ID.
func (r *SecretRepo) GetByID(id string) (*entity.Secret, error) {
	query := `
		SELECT id, name, value, team_id, created_by, created_at, updated_at
		FROM secrets WHERE id = $1`
	var s entity.Secret
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.Value, &s.TeamID, &s.CreatedBy, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get secret: %w", err)
	}
	return &s, nil
}

// ListByTeam lista los secretos de un equipo con paginación.
func (r *SecretRepo) ListByTeam(teamID string, limit, offset int) ([]*entity.Secret, error) {
	query := `
		SELECT id, name, value, team_id, created_by, created_at, updated_at
		FROM secrets WHERE team_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, teamID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list secrets: %w", err)
	}
	defer rows.Close()

	var out []*entity.Secret
	for rows.Next() {
		var s entity.Secret
		if err := rows.Scan(&s.ID, &s.Name, &s.Value, &s.TeamID, &s.CreatedBy, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan secret: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

// Update actualiza un secreto existente.
func (r *SecretRepo) Update(secret *entity.Secret) error {
	query := `UPDATE secrets SET name = $2, value = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		secret.ID, secret.Name, secret.Value, secret.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update secret: %w", err)
	}
	return nil
}

// Delete elimina un secreto.
func (r *SecretRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM secrets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete secret: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByTeam elimina los secretos del equipo (cascada de borrado de equipo).
func (r *SecretRepo) DeleteByTeam(teamID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM secrets WHERE team_id = $1`, teamID)
	if err != nil {
		return fmt.Errorf("delete secrets of team: %w", err)
	}
	return nil
}
