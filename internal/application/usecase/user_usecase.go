package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Consola-api/internal/application/auth"
	"github.com/jhoicas/Consola-api/internal/application/dto"
	"github.com/jhoicas/Consola-api/internal/domain"
	"github.com/jhoicas/Consola-api/internal/domain/entity"
	"github.com/jhoicas/Consola-api/internal/domain/repository"
)

// UserUseCase operaciones administrativas sobre usuarios: verificación,
// asignación de equipo, listado y borrado.
type UserUseCase struct {
	repo     repository.UserRepository
	teamRepo repository.TeamRepository
	tx       TxRunner
}

// NewUserUseCase construye el caso de uso administrativo de usuarios.
func NewUserUseCase(repo repository.UserRepository, teamRepo repository.TeamRepository, tx TxRunner) *UserUseCase {
	return &UserUseCase{repo: repo, teamRepo: teamRepo, tx: tx}
}

// List lista usuarios con paginación.
func (uc *UserUseCase) List(limit, offset int) (*dto.UserListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toUserList(list, limit, offset), nil
}

// ListUnverified lista los usuarios pendientes de verificación.
func (uc *UserUseCase) ListUnverified(limit, offset int) (*dto.UserListResponse, error) {
	list, err := uc.repo.ListUnverified(limit, offset)
	if err != nil {
		return nil, err
	}
	return toUserList(list, limit, offset), nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return auth.ToUserResponse(user), nil
}

// Verify marca al usuario como verificado. Idempotente.
func (uc *UserUseCase) Verify(userID string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if !user.Verified {
		user.Verified = true
		user.UpdatedAt = time.Now()
		if err := uc.repo.Update(user); err != nil {
			return nil, err
		}
	}
	return auth.ToUserResponse(user), nil
}

// Update aplica cambios administrativos: verificación y/o equipo. Al cambiar
// de equipo (o desasignarlo) se purgan las membresías de grupo del usuario en
// la misma transacción: los grupos pertenecen al equipo anterior y la
// membresía cross-team violaría el invariante del registro.
func (uc *UserUseCase) Update(ctx context.Context, userID string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}

	teamChanged := false
	if in.TeamID != nil {
		newTeam := *in.TeamID
		if newTeam == "" {
			teamChanged = user.TeamID != nil
			user.TeamID = nil
		} else {
			team, err := uc.teamRepo.GetByID(newTeam)
			if err != nil {
				return nil, err
			}
			if team == nil {
				return nil, domain.ErrNotFound // equipo no existe
			}
			teamChanged = user.TeamIDOrEmpty() != newTeam
			user.TeamID = &newTeam
		}
	}
	if in.Verified != nil {
		user.Verified = *in.Verified
	}
	user.UpdatedAt = time.Now()

	err = uc.tx.Run(ctx, func(r TxRepos) error {
		if teamChanged {
			if err := r.Groups.RemoveUserEverywhere(user.ID); err != nil {
				return err
			}
		}
		return r.Users.Update(user)
	})
	if err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Delete elimina al usuario y sus membresías de grupo en una sola transacción.
func (uc *UserUseCase) Delete(ctx context.Context, userID string) error {
	user, err := uc.repo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	return uc.tx.Run(ctx, func(r TxRepos) error {
		if err := r.Groups.RemoveUserEverywhere(userID); err != nil {
			return err
		}
		return r.Users.Delete(userID)
	})
}

func toUserList(list []*entity.User, limit, offset int) *dto.UserListResponse {
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *auth.ToUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}
