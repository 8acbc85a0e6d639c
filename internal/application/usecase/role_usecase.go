package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Consola-api/internal/application/dto"
	"github.com/jhoicas/Consola-api/internal/domain"
	"github.com/jhoicas/Consola-api/internal/domain/access"
	"github.com/jhoicas/Consola-api/internal/domain/entity"
	"github.com/jhoicas/Consola-api/internal/domain/repository"
)

// RoleUseCase aplica reglas de negocio para roles (globales al tenant).
type RoleUseCase struct {
	repo repository.RoleRepository
	tx   TxRunner
}

// NewRoleUseCase construye el caso de uso de roles.
func NewRoleUseCase(repo repository.RoleRepository, tx TxRunner) *RoleUseCase {
	return &RoleUseCase{repo: repo, tx: tx}
}

// buildPermissionSet valida el mapa module → acciones del request contra el
// enum. A diferencia de Merge (que ignora datos corruptos ya persistidos),
// la entrada de un administrador con claves desconocidas es un error.
func buildPermissionSet(in map[string][]string) (access.PermissionSet, error) {
	ps := access.NewPermissionSet()
	for mod, perms := range in {
		m, err := access.ParseModule(mod)
		if err != nil {
			return nil, err
		}
		for _, p := range perms {
			a, err := access.ParsePermission(p)
			if err != nil {
				return nil, err
			}
			ps.Grant(m, a)
		}
	}
	return ps, nil
}

// Create crea un rol validando sus permisos contra el enum de módulos/acciones.
func (uc *RoleUseCase) Create(in dto.CreateRoleRequest) (*dto.RoleResponse, error) {
	perms, err := buildPermissionSet(in.Permissions)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	role := &entity.Role{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Permissions: perms,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(role); err != nil {
		return nil, err
	}
	return toRoleResponse(role), nil
}

// GetByID obtiene un rol por ID.
func (uc *RoleUseCase) GetByID(id string) (*dto.RoleResponse, error) {
	role, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, nil
	}
	return toRoleResponse(role), nil
}

// List lista roles con paginación.
func (uc *RoleUseCase) List(limit, offset int) (*dto.RoleListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RoleResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toRoleResponse(r))
	}
	return &dto.RoleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update edita nombre, descripción y/o permisos de un rol.
func (uc *RoleUseCase) Update(id string, in dto.UpdateRoleRequest) (*dto.RoleResponse, error) {
	role, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		role.Name = *in.Name
	}
	if in.Description != nil {
		role.Description = *in.Description
	}
	if in.Permissions != nil {
		perms, err := buildPermissionSet(in.Permissions)
		if err != nil {
			return nil, err
		}
		role.Permissions = perms
	}
	role.UpdatedAt = time.Now()
	if err := uc.repo.Update(role); err != nil {
		return nil, err
	}
	return toRoleResponse(role), nil
}

// Delete elimina el rol y, en la misma transacción, todas sus filas
// group_roles: un rol borrado no deja relaciones colgantes.
func (uc *RoleUseCase) Delete(ctx context.Context, id string) error {
	role, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if role == nil {
		return domain.ErrNotFound
	}
	return uc.tx.Run(ctx, func(r TxRepos) error {
		if err := r.Groups.RemoveRoleEverywhere(id); err != nil {
			return err
		}
		return r.Roles.Delete(id)
	})
}

func toRoleResponse(r *entity.Role) *dto.RoleResponse {
	if r == nil {
		return nil
	}
	return &dto.RoleResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Permissions: r.Permissions,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
