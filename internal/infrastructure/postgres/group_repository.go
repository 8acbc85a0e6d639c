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

var _ repository.GroupRepository = (*GroupRepo)(nil)

// GroupRepo implementación del puerto GroupRepository sobre PostgreSQL (usable con pool o tx).
// Incluye las tablas de join user_groups y group_roles.
type GroupRepo struct {
	q Querier
}

// NewGroupRepository construye el adaptador de persistencia para grupos. Pasar pool o tx (Querier).
func NewGroupRepository(q Querier) *GroupRepo {
	return &GroupRepo{q: q}
}

// Create persiste un nuevo grupo.
func (r *GroupRepo) Create(group *entity.Group) error {
	query := `
		INSERT INTO groups (id, name, description, team_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		group.ID, group.Name, group.Description, group.TeamID, group.CreatedAt, group.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert group: %w", err)
	}
	return nil
}

// GetByID obtiene un grupo por ID.
func (r *GroupRepo) GetByID(id string) (*entity.Group, error) {
	query := `SELECT id, name, description, team_id, created_at, updated_at FROM groups WHERE id = $1`
	var g entity.Group
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&g.ID, &g.Name, &g.Description, &g.TeamID, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get group: %w", err)
	}
	return &g, nil
}

// List lista grupos con paginación.
func (r *GroupRepo) List(limit, offset int) ([]*entity.Group, error) {
	query := `
		SELECT id, name, description, team_id, created_at, updated_at
		FROM groups ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	return collectGroups(rows)
}

// ListByTeam lista los grupos de un equipo.
func (r *GroupRepo) ListByTeam(teamID string) ([]*entity.Group, error) {
	query := `
		SELECT id, name, description, team_id, created_at, updated_at
		FROM groups WHERE team_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, teamID)
	if err != nil {
		return nil, fmt.Errorf("list groups by team: %w", err)
	}
	return collectGroups(rows)
}

// Update actualiza un grupo existente.
func (r *GroupRepo) Update(group *entity.Group) error {
	query := `
		UPDATE groups SET name = $2, description = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		group.ID, group.Name, group.Description, group.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update group: %w", err)
	}
	return nil
}

// Delete elimina el grupo y sus filas de join.
func (r *GroupRepo) Delete(id string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM user_groups WHERE group_id = $1`, id); err != nil {
		return fmt.Errorf("delete user_groups of group: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM group_roles WHERE group_id = $1`, id); err != nil {
		return fmt.Errorf("delete group_roles of group: %w", err)
	}
	cmd, err := r.q.Exec(ctx, `DELETE FROM groups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete group: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByTeam elimina los grupos del equipo junto con sus filas de join
// (cascada de borrado de equipo).
func (r *GroupRepo) DeleteByTeam(teamID string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx,
		`DELETE FROM user_groups WHERE group_id IN (SELECT id FROM groups WHERE team_id = $1)`, teamID); err != nil {
		return fmt.Errorf("delete user_groups of team: %w", err)
	}
	if _, err := r.q.Exec(ctx,
		`DELETE FROM group_roles WHERE group_id IN (SELECT id FROM groups WHERE team_id = $1)`, teamID); err != nil {
		return fmt.Errorf("delete group_roles of team: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM groups WHERE team_id = $1`, teamID); err != nil {
		return fmt.Errorf("delete groups of team: %w", err)
	}
	return nil
}

// AddUser inserta la relación usuario → grupo. Par duplicado → ErrAlreadyMember.
func (r *GroupRepo) AddUser(rel *entity.UserGroup) error {
	query := `
		INSERT INTO user_groups (id, user_id, group_id, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, rel.ID, rel.UserID, rel.GroupID, rel.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyMember
		}
		return fmt.Errorf("insert user_group: %w", err)
	}
	return nil
}

// RemoveUser elimina la relación usuario → grupo. Inexistente → ErrNotFound.
func (r *GroupRepo) RemoveUser(groupID, userID string) error {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM user_groups WHERE group_id = $1 AND user_id = $2`, groupID, userID)
	if err != nil {
		return fmt.Errorf("delete user_group: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByUser devuelve los grupos a los que pertenece el usuario.
func (r *GroupRepo) ListByUser(userID string) ([]*entity.Group, error) {
	query := `
		SELECT g.id, g.name, g.description, g.team_id, g.created_at, g.updated_at
		FROM groups g
		JOIN user_groups ug ON ug.group_id = g.id
		WHERE ug.user_id = $1`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list groups by user: %w", err)
	}
	return collectGroups(rows)
}

// RemoveUserEverywhere elimina todas las membresías del usuario (cascadas de
// borrado de usuario y de cambio de equipo).
func (r *GroupRepo) RemoveUserEverywhere(userID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM user_groups WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("delete user_groups of user: %w", err)
	}
	return nil
}

// AddRole inserta la relación grupo → rol. Par duplicado → ErrDuplicate.
func (r *GroupRepo) AddRole(rel *entity.GroupRole) error {
	query := `
		INSERT INTO group_roles (id, group_id, role_id, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, rel.ID, rel.GroupID, rel.RoleID, rel.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert group_role: %w", err)
	}
	return nil
}

// RemoveRole elimina la relación grupo → rol. Inexistente → ErrNotFound.
func (r *GroupRepo) RemoveRole(groupID, roleID string) error {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM group_roles WHERE group_id = $1 AND role_id = $2`, groupID, roleID)
	if err != nil {
		return fmt.Errorf("delete group_role: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// RemoveRoleEverywhere elimina todas las filas group_roles del rol (cascada
// de borrado de rol).
func (r *GroupRepo) RemoveRoleEverywhere(roleID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM group_roles WHERE role_id = $1`, roleID)
	if err != nil {
		return fmt.Errorf("delete group_roles of role: %w", err)
	}
	return nil
}

func collectGroups(rows pgx.Rows) ([]*entity.Group, error) {
	defer rows.Close()
	var out []*entity.Group
	for rows.Next() {
		var g entity.Group
		if err := rows.Scan(&g.ID, &g.Name, &g.Description, &g.TeamID, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan group: %w", err)
		}
		out = append(out, &g)
	}
	return out, rows.Err()
}
