package repository

import "github.com/jhoicas/Consola-api/internal/domain/entity"

// RoleRepository define el puerto de persistencia para Role (DIP).
type RoleRepository interface {
	Create(role *entity.Role) error
	GetByID(id string) (*entity.Role, error)
	List(limit, offset int) ([]*entity.Role, error)
	// ListByGroups devuelve los roles atados a cualquiera de los grupos
	// (join sobre group_roles). Es la consulta central del resolver.
	ListByGroups(groupIDs []string) ([]*entity.Role, error)
	Update(role *entity.Role) error
	Delete(id string) error
}
