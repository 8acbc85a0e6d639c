package entity

import (
	"time"

	"github.com/jhoicas/Consola-api/internal/domain/access"
)

// Role representa un conjunto nombrado de permisos módulo → acciones.
// Es global al tenant (no pertenece a ningún equipo) y puede estar atado
// a muchos grupos vía GroupRole.
type Role struct {
	ID          string
	Name        string
	Description string
	Permissions access.PermissionSet // persiste como JSONB
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
