package dto

import (
	"time"

	"github.com/jhoicas/Consola-api/internal/domain/access"
)

// ── Tenants ──────────────────────────────────────────────────────────────────

// CreateTenantRequest alta de tenant.
type CreateTenantRequest struct {
	Name string `json:"name" validate:"required,min=2,max=120"`
}

// TenantResponse representación pública de un tenant.
type TenantResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TenantListResponse listado paginado de tenants.
type TenantListResponse struct {
	Items []TenantResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// ── Teams ────────────────────────────────────────────────────────────────────

// CreateTeamRequest alta de equipo.
type CreateTeamRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=120"`
	TenantID string `json:"tenantId" validate:"required,uuid"`
}

// UpdateTeamRequest renombre de equipo.
type UpdateTeamRequest struct {
	Name string `json:"name" validate:"required,min=2,max=120"`
}

// TeamResponse representación pública de un equipo.
type TeamResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TenantID  string    `json:"tenantId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TeamListResponse listado paginado de equipos.
type TeamListResponse struct {
	Items []TeamResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// ── Roles ────────────────────────────────────────────────────────────────────

// CreateRoleRequest alta de rol. Permissions llega como module → [acciones]
// y se valida contra el enum antes de persistir.
type CreateRoleRequest struct {
	Name        string              `json:"name" validate:"required,min=2,max=120"`
	Description string              `json:"description" validate:"max=500"`
	Permissions map[string][]string `json:"permissions" validate:"required"`
}

// UpdateRoleRequest edición parcial de rol.
type UpdateRoleRequest struct {
	Name        *string             `json:"name,omitempty" validate:"omitempty,min=2,max=120"`
	Description *string             `json:"description,omitempty" validate:"omitempty,max=500"`
	Permissions map[string][]string `json:"permissions,omitempty"`
}

// RoleResponse representación pública de un rol.
type RoleResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Permissions access.PermissionSet `json:"permissions"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

// RoleListResponse listado paginado de roles.
type RoleListResponse struct {
	Items []RoleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// ── Groups ───────────────────────────────────────────────────────────────────

// CreateGroupRequest alta de grupo dentro de un equipo.
type CreateGroupRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=120"`
	Description string `json:"description" validate:"max=500"`
	TeamID      string `json:"teamId" validate:"required,uuid"`
}

// UpdateGroupRequest edición parcial de grupo.
type UpdateGroupRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2,max=120"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

// GroupResponse representación pública de un grupo.
type GroupResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	TeamID      string    `json:"teamId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// GroupListResponse listado paginado de grupos.
type GroupListResponse struct {
	Items []GroupResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// AddUserToGroupRequest asignación usuario → grupo.
type AddUserToGroupRequest struct {
	UserID string `json:"userId" validate:"required,uuid"`
}

// AddRoleToGroupRequest asignación rol → grupo.
type AddRoleToGroupRequest struct {
	RoleID string `json:"roleId" validate:"required,uuid"`
}

// ── Administración de usuarios ───────────────────────────────────────────────

// VerifyUserRequest verificación administrativa de un usuario.
type VerifyUserRequest struct {
	UserID string `json:"userId" validate:"required,uuid"`
}

// UpdateUserRequest edición administrativa: verificación y/o equipo.
// TeamID con string vacío desasigna el equipo.
type UpdateUserRequest struct {
	Verified *bool   `json:"verified,omitempty"`
	TeamID   *string `json:"teamId,omitempty"`
}
