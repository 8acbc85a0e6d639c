package repository

import "github.com/jhoicas/Consola-api/internal/domain/entity"

// SecretRepository define el puerto de persistencia para Secret (módulo vault).
type SecretRepository interface {
	Create(secret *entity.Secret) error
	GetByID(id string) (*entity.Secret, error)
	ListByTeam(teamID string, limit, offset int) ([]*entity.Secret, error)
	Update(secret *entity.Secret) error
	Delete(id string) error
	DeleteByTeam(teamID string) error
}
