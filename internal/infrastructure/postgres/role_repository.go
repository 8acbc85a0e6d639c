package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Consola-api/internal/domain"
	"github.com/jhoicas/Consola-api/internal/domain/access"
	"github.com/jhoicas/Consola-api/internal/domain/entity"
	"github.com/jhoicas/Consola-api/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación del puerto RoleRepository sobre PostgreSQL (usable con pool o tx).
// Los permisos se persisten como JSONB con el shape {"vault":["read"],...}.
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador de persistencia para roles. Pasar pool o tx (Querier).
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

// Create persiste un nuevo rol.
func (r *RoleRepo) Create(role *entity.Role) error {
	query := `
		INSERT INTO roles (id, name, description, permissions, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		role.ID, role.Name, role.Description, role.Permissions, role.CreatedAt, role.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert role: %w", err)
	}
	return nil
}

// GetByID obtiene un rol por ID.
func (r *RoleRepo) GetByID(id string) (*entity.Role, error) {
	query := `SELECT id, name, description, permissions, created_at, updated_at FROM roles WHERE id = $1`
	role, err := scanRole(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get role: %w", err)
	}
	return role, nil
}

// List lista roles con paginación.
func (r *RoleRepo) List(limit, offset int) ([]*entity.Role, error) {
	query := `
		SELECT id, name, description, permissions, created_at, updated_at
		FROM roles ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return collectRoles(rows)
}

// ListByGroups devuelve los roles atados a cualquiera de los grupos
// (join sobre group_roles, sin duplicados).
func (r *RoleRepo) ListByGroups(groupIDs []string) ([]*entity.Role, error) {
	if len(groupIDs) == 0 {
		return nil, nil
	}
	query := `
		SELECT DISTINCT r.id, r.name, r.description, r.permissions, r.created_at, r.updated_at
		FROM roles r
		JOIN group_roles gr ON gr.role_id = r.id
		WHERE gr.group_id = ANY($1)`
	rows, err := r.q.Query(context.Background(), query, groupIDs)
	if err != nil {
		return nil, fmt.Errorf("list roles by groups: %w", err)
	}
	return collectRoles(rows)
}

// Update actualiza un rol existente.
func (r *RoleRepo) Update(role *entity.Role) error {
	query := `
		UPDATE roles SET name = $2, description = $3, permissions = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		role.ID, role.Name, role.Description, role.Permissions, role.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update role: %w", err)
	}
	return nil
}

// Delete elimina un rol. Las filas group_roles las quita el caso de uso en la
// misma transacción.
func (r *RoleRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete role: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanRole(row pgx.Row) (*entity.Role, error) {
	var role entity.Role
	var raw access.PermissionSet
	err := row.Scan(&role.ID, &role.Name, &role.Description, &raw, &role.CreatedAt, &role.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	role.Permissions = normalizePermissions(raw)
	return &role, nil
}

func collectRoles(rows pgx.Rows) ([]*entity.Role, error) {
	defer rows.Close()
	var out []*entity.Role
	for rows.Next() {
		var role entity.Role
		var raw access.PermissionSet
		if err := rows.Scan(&role.ID, &role.Name, &role.Description, &raw, &role.CreatedAt, &role.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		role.Permissions = normalizePermissions(raw)
		out = append(out, &role)
	}
	return out, rows.Err()
}

// normalizePermissions reconstruye el set desde el JSONB crudo: garantiza las
// tres claves de módulo y descarta entradas fuera del enum.
func normalizePermissions(raw access.PermissionSet) access.PermissionSet {
	ps := access.NewPermissionSet()
	ps.Merge(raw)
	return ps
}
