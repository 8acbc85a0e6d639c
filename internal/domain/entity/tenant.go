package entity

import "time"

// Tenant representa una organización del sistema: la frontera de aislamiento
// superior. Todo Team y todo User pertenecen a exactamente un Tenant.
// Se crea por registro administrativo y es inmutable después.
type Tenant struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
