package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Registros de los tres módulos de negocio. Son recursos simples con dueño
// (CreatedBy) y alcance de equipo (TeamID); toda la lógica de acceso vive en
// el resolver de permisos, no aquí.

// Secret es un secreto del módulo vault.
type Secret struct {
	ID        string
	Name      string
	Value     string
	TeamID    string
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Transaction es un movimiento del módulo financials.
type Transaction struct {
	ID          string
	Amount      decimal.Decimal // NUMERIC en DB; codec shopspring en el pool
	Description string
	TeamID      string
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Report es un informe del módulo reporting.
type Report struct {
	ID        string
	Title     string
	Content   string
	TeamID    string
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}
