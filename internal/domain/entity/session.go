package entity

import "time"

// Session es el registro de revocación del lado servidor referenciado por el
// claim jti del JWT. El token solo es utilizable mientras la fila exista,
// no esté revocada y no haya expirado: el logout revoca la fila y deja el
// token inservible de inmediato.
type Session struct {
	ID        string
	UserID    string
	ExpiresAt time.Time
	RevokedAt *time.Time // nil = activa
	CreatedAt time.Time
}

// Active informa si la sesión sigue siendo utilizable en el instante now.
func (s *Session) Active(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}
