package repository

import "github.com/jhoicas/Consola-api/internal/domain/entity"

// GroupRepository define el puerto de persistencia para Group y sus
// relaciones de join (UserGroup, GroupRole).
type GroupRepository interface {
	Create(group *entity.Group) error
	GetByID(id string) (*entity.Group, error)
	List(limit, offset int) ([]*entity.Group, error)
	ListByTeam(teamID string) ([]*entity.Group, error)
	Update(group *entity.Group) error
	Delete(id string) error
	// DeleteByTeam elimina los grupos del equipo junto con sus filas
	// user_groups y group_roles (cascada de borrado de equipo).
	DeleteByTeam(teamID string) error

	// Relaciones usuario ↔ grupo.
	AddUser(rel *entity.UserGroup) error // domain.ErrAlreadyMember si el par existe
	RemoveUser(groupID, userID string) error // domain.ErrNotFound si el par no existe
	ListByUser(userID string) ([]*entity.Group, error)
	RemoveUserEverywhere(userID string) error // cascada de borrado de usuario

	// Relaciones grupo ↔ rol.
	AddRole(rel *entity.GroupRole) error // domain.ErrDuplicate si el par existe
	RemoveRole(groupID, roleID string) error // domain.ErrNotFound si el par no existe
	RemoveRoleEverywhere(roleID string) error // cascada de borrado de rol
}
