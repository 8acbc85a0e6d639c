package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Consola-api/internal/application/dto"
	"github.com/jhoicas/Consola-api/internal/domain"
	"github.com/jhoicas/Consola-api/internal/domain/entity"
	"github.com/jhoicas/Consola-api/internal/domain/repository"
)

// GroupUseCase aplica reglas de negocio para grupos y sus relaciones de join.
// Aquí se hace cumplir, en el momento de la asignación, el invariante
// "los miembros de un grupo pertenecen al equipo del grupo".
type GroupUseCase struct {
	repo     repository.GroupRepository
	teamRepo repository.TeamRepository
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
	tx       TxRunner
}

// NewGroupUseCase construye el caso de uso de grupos.
func NewGroupUseCase(
	repo repository.GroupRepository,
	teamRepo repository.TeamRepository,
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	tx TxRunner,
) *GroupUseCase {
	return &GroupUseCase{repo: repo, teamRepo: teamRepo, userRepo: userRepo, roleRepo: roleRepo, tx: tx}
}

// Create crea un grupo dentro de un equipo existente.
func (uc *GroupUseCase) Create(in dto.CreateGroupRequest) (*dto.GroupResponse, error) {
	team, err := uc.teamRepo.GetByID(in.TeamID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, domain.ErrNotFound // equipo no existe
	}
	now := time.Now()
	group := &entity.Group{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		TeamID:      in.TeamID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(group); err != nil {
		return nil, err
	}
	return toGroupResponse(group), nil
}

// GetByID obtiene un grupo por ID.
func (uc *GroupUseCase) GetByID(id string) (*dto.GroupResponse, error) {
	group, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, nil
	}
	return toGroupResponse(group), nil
}

// List lista grupos con paginación.
func (uc *GroupUseCase) List(limit, offset int) (*dto.GroupListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.GroupResponse, 0, len(list))
	for _, g := range list {
		items = append(items, *toGroupResponse(g))
	}
	return &dto.GroupListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update edita nombre y/o descripción de un grupo.
func (uc *GroupUseCase) Update(id string, in dto.UpdateGroupRequest) (*dto.GroupResponse, error) {
	group, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		group.Name = *in.Name
	}
	if in.Description != nil {
		group.Description = *in.Description
	}
	group.UpdatedAt = time.Now()
	if err := uc.repo.Update(group); err != nil {
		return nil, err
	}
	return toGroupResponse(group), nil
}

// Delete elimina el grupo con sus relaciones user_groups/group_roles en una
// sola transacción.
func (uc *GroupUseCase) Delete(ctx context.Context, id string) error {
	group, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if group == nil {
		return domain.ErrNotFound
	}
	return uc.tx.Run(ctx, func(r TxRepos) error {
		return r.Groups.Delete(id)
	})
}

// AddUser asigna un usuario al grupo. Falla con ErrTeamMismatch si el equipo
// del usuario no coincide con el del grupo (la membresía no tiene sentido a
// través de equipos) y con ErrAlreadyMember si la relación ya existe.
func (uc *GroupUseCase) AddUser(groupID, userID string) error {
	group, err := uc.repo.GetByID(groupID)
	if err != nil {
		return err
	}
	if group == nil {
		return domain.ErrNotFound
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	if user.TeamIDOrEmpty() != group.TeamID {
		return domain.ErrTeamMismatch
	}
	return uc.repo.AddUser(&entity.UserGroup{
		ID:        uuid.New().String(),
		UserID:    userID,
		GroupID:   groupID,
		CreatedAt: time.Now(),
	})
}

// RemoveUser quita un usuario del grupo. Relación inexistente → ErrNotFound
// (el llamador decide si tratarlo como idempotente).
func (uc *GroupUseCase) RemoveUser(groupID, userID string) error {
	return uc.repo.RemoveUser(groupID, userID)
}

// AddRole ata un rol al grupo. Par duplicado → ErrDuplicate.
func (uc *GroupUseCase) AddRole(groupID, roleID string) error {
	group, err := uc.repo.GetByID(groupID)
	if err != nil {
		return err
	}
	if group == nil {
		return domain.ErrNotFound
	}
	role, err := uc.roleRepo.GetByID(roleID)
	if err != nil {
		return err
	}
	if role == nil {
		return domain.ErrNotFound
	}
	return uc.repo.AddRole(&entity.GroupRole{
		ID:        uuid.New().String(),
		GroupID:   groupID,
		RoleID:    roleID,
		CreatedAt: time.Now(),
	})
}

// RemoveRole desata un rol del grupo. Relación inexistente → ErrNotFound.
func (uc *GroupUseCase) RemoveRole(groupID, roleID string) error {
	return uc.repo.RemoveRole(groupID, roleID)
}

func toGroupResponse(g *entity.Group) *dto.GroupResponse {
	if g == nil {
		return nil
	}
	return &dto.GroupResponse{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		TeamID:      g.TeamID,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}
