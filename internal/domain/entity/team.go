package entity

import "time"

// Team representa una unidad organizativa dentro de un Tenant.
// Posee cero o más usuarios y cero o más grupos, y delimita el alcance
// de los datos de módulo (secretos, transacciones, informes).
type Team struct {
	ID        string
	Name      string
	TenantID  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
