package dto

import (
	"time"

	"github.com/jhoicas/Consola-api/internal/domain/access"
)

// RegisterRequest alta de usuario (nace sin verificar).
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	TenantID string `json:"tenantId" validate:"required,uuid"`
}

// RequestOTPRequest solicitud de código de un solo uso.
type RequestOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// VerifyOTPRequest canje de código por sesión.
type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6"`
}

// UserResponse representación pública de un usuario.
type UserResponse struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenantId"`
	Email     string    `json:"email"`
	TeamID    *string   `json:"teamId,omitempty"`
	Verified  bool      `json:"verified"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LoginResponse sesión emitida tras verificar el OTP.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// PermissionsResponse set efectivo de permisos del usuario.
type PermissionsResponse struct {
	Permissions access.PermissionSet `json:"permissions"`
}

// UserListResponse listado paginado de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
