package modules

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Consola-api/internal/application/dto"
	"github.com/jhoicas/Consola-api/internal/domain"
	"github.com/jhoicas/Consola-api/internal/domain/entity"
	"github.com/jhoicas/Consola-api/internal/domain/repository"
)

// VaultUseCase CRUD de secretos con alcance de equipo. El chequeo de permiso
// módulo/acción ya ocurrió en el middleware; aquí solo se asegura que el
// registro pertenezca al equipo del llamador.
type VaultUseCase struct {
	repo repository.SecretRepository
}

// NewVaultUseCase construye el caso de uso del módulo vault.
func NewVaultUseCase(repo repository.SecretRepository) *VaultUseCase {
	return &VaultUseCase{repo: repo}
}

// Create crea un secreto en el equipo del llamador.
func (uc *VaultUseCase) Create(caller *entity.User, in dto.CreateSecretRequest) (*dto.SecretResponse, error) {
	if in.TeamID != caller.TeamIDOrEmpty() {
		return nil, domain.ErrForbidden
	}
	now := time.Now()
	secret := &entity.Secret{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Value:     in.Value,
		TeamID:    in.TeamID,
		CreatedBy: caller.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(secret); err != nil {
		return nil, err
	}
	return toSecretResponse(secret), nil
}

// ListByTeam lista los secretos de un equipo. Equipo ajeno → ErrForbidden.
func (uc *VaultUseCase) ListByTeam(caller *entity.User, teamID string, limit, offset int) (*dto.SecretListResponse, error) {
	if teamID != caller.TeamIDOrEmpty() {
		return nil, domain.ErrForbidden
	}
	list, err := uc.repo.ListByTeam(teamID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SecretResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSecretResponse(s))
	}
	return &dto.SecretListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update edita un secreto del equipo del llamador.
func (uc *VaultUseCase) Update(caller *entity.User, id string, in dto.UpdateSecretRequest) (*dto.SecretResponse, error) {
	secret, err := uc.ownedSecret(caller, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		secret.Name = *in.Name
	}
	if in.Value != nil {
		secret.Value = *in.Value
	}
	secret.UpdatedAt = time.Now()
	if err := uc.repo.Update(secret); err != nil {
		return nil, err
	}
	return toSecretResponse(secret), nil
}

// Delete elimina un secreto del equipo del llamador.
func (uc *VaultUseCase) Delete(caller *entity.User, id string) error {
	if _, err := uc.ownedSecret(caller, id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

func (uc *VaultUseCase) ownedSecret(caller *entity.User, id string) (*entity.Secret, error) {
	secret, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if secret == nil {
		return nil, domain.ErrNotFound
	}
	if secret.TeamID != caller.TeamIDOrEmpty() {
		return nil, domain.ErrForbidden
	}
	return secret, nil
}

func toSecretResponse(s *entity.Secret) *dto.SecretResponse {
	if s == nil {
		return nil
	}
	return &dto.SecretResponse{
		ID:        s.ID,
		Name:      s.Name,
		Value:     s.Value,
		TeamID:    s.TeamID,
		CreatedBy: s.CreatedBy,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
