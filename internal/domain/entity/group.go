package entity

import "time"

// Group representa un paquete de roles aplicado a un conjunto de usuarios,
// dentro de un equipo. El grupo no es dueño ni de los usuarios ni de los
// roles: las relaciones viven en los registros de join (GroupRole, UserGroup),
// consultados por pares de ids en lugar de recorrer punteros.
type Group struct {
	ID          string
	Name        string
	Description string
	TeamID      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// GroupRole es la relación muchos-a-muchos grupo ↔ rol. Par único.
type GroupRole struct {
	ID        string
	GroupID   string
	RoleID    string
	CreatedAt time.Time
}

// UserGroup es la relación muchos-a-muchos usuario ↔ grupo. Par único.
// Invariante: solo referencia usuarios cuyo TeamID coincide con el del grupo;
// se valida al asignar, no como constraint permanente de base de datos.
type UserGroup struct {
	ID        string
	UserID    string
	GroupID   string
	CreatedAt time.Time
}
