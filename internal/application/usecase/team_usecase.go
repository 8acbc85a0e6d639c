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

// TeamUseCase aplica reglas de negocio para equipos, incluida la cascada de
// borrado mandatada por el modelo: eliminar un equipo elimina sus grupos con
// sus relaciones, desasigna a sus usuarios y elimina sus datos de módulo.
type TeamUseCase struct {
	repo       repository.TeamRepository
	tenantRepo repository.TenantRepository
	tx         TxRunner
}

// NewTeamUseCase construye el caso de uso de equipos.
func NewTeamUseCase(repo repository.TeamRepository, tenantRepo repository.TenantRepository, tx TxRunner) *TeamUseCase {
	return &TeamUseCase{repo: repo, tenantRepo: tenantRepo, tx: tx}
}

// Create crea un equipo dentro de un tenant existente.
func (uc *TeamUseCase) Create(in dto.CreateTeamRequest) (*dto.TeamResponse, error) {
	tenant, err := uc.tenantRepo.GetByID(in.TenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, domain.ErrNotFound // tenant no existe
	}
	now := time.Now()
	team := &entity.Team{
		ID:        uuid.New().String(),
		Name:      in.Name,
		TenantID:  in.TenantID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(team); err != nil {
		return nil, err
	}
	return toTeamResponse(team), nil
}

// GetByID obtiene un equipo por ID.
func (uc *TeamUseCase) GetByID(id string) (*dto.TeamResponse, error) {
	team, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, nil
	}
	return toTeamResponse(team), nil
}

// List lista equipos con paginación.
func (uc *TeamUseCase) List(limit, offset int) (*dto.TeamListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TeamResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTeamResponse(t))
	}
	return &dto.TeamListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update renombra un equipo.
func (uc *TeamUseCase) Update(id string, in dto.UpdateTeamRequest) (*dto.TeamResponse, error) {
	team, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, domain.ErrNotFound
	}
	team.Name = in.Name
	team.UpdatedAt = time.Now()
	if err := uc.repo.Update(team); err != nil {
		return nil, err
	}
	return toTeamResponse(team), nil
}

// Delete elimina el equipo en cascada dentro de una sola transacción:
// user_groups y group_roles de sus grupos, los grupos, los registros de
// módulo del equipo, team_id a NULL en sus usuarios y finalmente el equipo.
// Tras esto, can(usuario, *, *) de los ex-miembros resuelve a false.
func (uc *TeamUseCase) Delete(ctx context.Context, id string) error {
	team, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if team == nil {
		return domain.ErrNotFound
	}
	return uc.tx.Run(ctx, func(r TxRepos) error {
		if err := r.Groups.DeleteByTeam(id); err != nil {
			return err
		}
		if err := r.Users.ClearTeam(id); err != nil {
			return err
		}
		if err := r.Secrets.DeleteByTeam(id); err != nil {
			return err
		}
		if err := r.Transactions.DeleteByTeam(id); err != nil {
			return err
		}
		if err := r.Reports.DeleteByTeam(id); err != nil {
			return err
		}
		return r.Teams.Delete(id)
	})
}

func toTeamResponse(t *entity.Team) *dto.TeamResponse {
	if t == nil {
		return nil
	}
	return &dto.TeamResponse{
		ID:        t.ID,
		Name:      t.Name,
		TenantID:  t.TenantID,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
