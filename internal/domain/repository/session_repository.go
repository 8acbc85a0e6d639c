package repository

import "github.com/jhoicas/Consola-api/internal/domain/entity"

// SessionRepository define el puerto de persistencia para Session.
type SessionRepository interface {
	Create(session *entity.Session) error
	GetByID(id string) (*entity.Session, error)
	// Revoke marca la sesión como revocada. Idempotente: revocar una sesión
	// ya revocada o inexistente no es un error.
	Revoke(id string) error
}
