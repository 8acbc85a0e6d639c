package entity

import "time"

// OTPCode es un código de un solo uso ligado a un email. A lo sumo existe un
// código vivo por email: una nueva solicitud invalida el anterior. El valor
// se guarda hasheado con bcrypt, nunca en claro.
type OTPCode struct {
	ID         string
	Email      string
	CodeHash   string
	ExpiresAt  time.Time
	ConsumedAt *time.Time // nil = todavía no usado
	CreatedAt  time.Time
}

// Live informa si el código sigue siendo verificable en el instante now.
func (c *OTPCode) Live(now time.Time) bool {
	return c.ConsumedAt == nil && now.Before(c.ExpiresAt)
}
