package repository

import "github.com/jhoicas/Consola-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	GetByEmailAndTenant(email, tenantID string) (*entity.User, error)
	Update(user *entity.User) error
	List(limit, offset int) ([]*entity.User, error)
	ListUnverified(limit, offset int) ([]*entity.User, error)
	// ClearTeam desasigna el equipo de todos sus usuarios (cascada de borrado de equipo).
	ClearTeam(teamID string) error
	Delete(id string) error
}
