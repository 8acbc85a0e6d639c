package entity

import "time"

// User representa un usuario del sistema (pertenece a un Tenant).
// Nace sin verificar; un administrador lo verifica y le asigna equipo.
// Sin equipo no tiene permisos sobre ningún módulo.
type User struct {
	ID       string
	TenantID string
	Email    string  // único dentro del tenant
	TeamID   *string // nil = sin equipo asignado (a lo sumo un equipo)
	Verified bool
	// IsAdmin es el flag explícito de superusuario que habilita la
	// administración del registro (tenants, equipos, roles, grupos,
	// verificación de usuarios). No pasa por el resolver de permisos.
	IsAdmin   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TeamIDOrEmpty devuelve el equipo del usuario o "" si no tiene.
func (u *User) TeamIDOrEmpty() string {
	if u.TeamID == nil {
		return ""
	}
	return *u.TeamID
}
