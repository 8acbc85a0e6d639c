package modules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Consola-api/internal/application/dto"
	"github.com/jhoicas/Consola-api/internal/domain"
	"github.com/jhoicas/Consola-api/internal/domain/entity"
)

type memSecretRepo struct {
	secrets map[string]*entity.Secret
}

func newMemSecretRepo() *memSecretRepo {
	return &memSecretRepo{secrets: map[string]*entity.Secret{}}
}

func (r *memSecretRepo) Create(s *entity.Secret) error {
	r.secrets[s.ID] = s
	return nil
}

func (r *memSecretRepo) GetByID(id string) (*entity.Secret, error) {
	return r.secrets[id], nil
}

func (r *memSecretRepo) ListByTeam(teamID string, limit, offset int) ([]*entity.Secret, error) {
	out := []*entity.Secret{}
	for _, s := range r.secrets {
		if s.TeamID == teamID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *memSecretRepo) Update(s *entity.Secret) error {
	r.secrets[s.ID] = s
	return nil
}

func (r *memSecretRepo) Delete(id string) error {
	delete(r.secrets, id)
	return nil
}

func (r *memSecretRepo) DeleteByTeam(teamID string) error {
	for id, s := range r.secrets {
		if s.TeamID == teamID {
			delete(r.secrets, id)
		}
	}
	return nil
}

func vaultCaller(teamID string) *entity.User {
	return &entity.User{
		ID:       "user-1",
		TenantID: "tenant-1",
		Email:    "ana@acme.com",
		TeamID:   &teamID,
		Verified: true,
	}
}

func TestVaultCreateEnEquipoPropio(t *testing.T) {
	repo := newMemSecretRepo()
	uc := NewVaultUseCase(repo)
	caller := vaultCaller("team-1")

	resp, err := uc.Create(caller, dto.CreateSecretRequest{Name: "api-key", Value: "s3cr3t", TeamID: "team-1"})
	require.NoError(t, err)
	assert.Equal(t, "team-1", resp.TeamID)
	assert.Equal(t, caller.ID, resp.CreatedBy)
}

func TestVaultCreateEnEquipoAjenoFalla(t *testing.T) {
	repo := newMemSecretRepo()
	uc := NewVaultUseCase(repo)

	_, err := uc.Create(vaultCaller("team-1"), dto.CreateSecretRequest{Name: "api-key", Value: "x", TeamID: "team-2"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, repo.secrets, "no debe persistirse nada fuera del equipo propio")
}

func TestVaultListDeEquipoAjenoFalla(t *testing.T) {
	uc := NewVaultUseCase(newMemSecretRepo())

	_, err := uc.ListByTeam(vaultCaller("team-1"), "team-2", 20, 0)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestVaultUpdateDeRegistroAjenoFalla(t *testing.T) {
	repo := newMemSecretRepo()
	repo.Create(&entity.Secret{ID: "sec-1", Name: "ajeno", TeamID: "team-2"})
	uc := NewVaultUseCase(repo)

	nuevo := "otro"
	_, err := uc.Update(vaultCaller("team-1"), "sec-1", dto.UpdateSecretRequest{Name: &nuevo})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestVaultDeleteInexistenteFalla(t *testing.T) {
	uc := NewVaultUseCase(newMemSecretRepo())

	err := uc.Delete(vaultCaller("team-1"), "sec-x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVaultUsuarioSinEquipoNoAlcanzaNada(t *testing.T) {
	repo := newMemSecretRepo()
	repo.Create(&entity.Secret{ID: "sec-1", Name: "algo", TeamID: "team-1"})
	uc := NewVaultUseCase(repo)
	caller := &entity.User{ID: "user-1", Verified: true} // sin equipo

	_, err := uc.ListByTeam(caller, "team-1", 20, 0)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Update(caller, "sec-1", dto.UpdateSecretRequest{})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
