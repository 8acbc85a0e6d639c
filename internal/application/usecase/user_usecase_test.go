package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Consola-api/internal/application/dto"
	"github.com/jhoicas/Consola-api/internal/domain"
)

func TestUserVerifyEsIdempotente(t *testing.T) {
	f := newRegistryFixture()
	f.seedTenant("tenant-1", "Acme")
	f.seedUser("user-1", "ana@acme.com", "tenant-1", nil, false)

	resp, err := f.userUC.Verify("user-1")
	require.NoError(t, err)
	assert.True(t, resp.Verified)

	resp, err = f.userUC.Verify("user-1")
	require.NoError(t, err)
	assert.True(t, resp.Verified, "verificar dos veces no es un error")
}

func TestUserVerifyInexistenteFalla(t *testing.T) {
	f := newRegistryFixture()

	_, err := f.userUC.Verify("user-x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserUpdateAsignaEquipoExistente(t *testing.T) {
	f := newRegistryFixture()
	f.seedTenant("tenant-1", "Acme")
	f.seedTeam("team-1", "Plataforma", "tenant-1")
	f.seedUser("user-1", "ana@acme.com", "tenant-1", nil, true)

	resp, err := f.userUC.Update(context.Background(), "user-1", dto.UpdateUserRequest{TeamID: strPtr("team-1")})
	require.NoError(t, err)
	require.NotNil(t, resp.TeamID)
	assert.Equal(t, "team-1", *resp.TeamID)

	_, err = f.userUC.Update(context.Background(), "user-1", dto.UpdateUserRequest{TeamID: strPtr("team-x")})
	assert.ErrorIs(t, err, domain.ErrNotFound, "no se asigna a un equipo inexistente")
}

// Mover (o desasignar) de equipo purga las membresías de grupo: los grupos
// pertenecen al equipo anterior y la membresía cruzada rompería el modelo.
func TestUserUpdateCambioDeEquipoPurgaMembresias(t *testing.T) {
	f := newRegistryFixture()
	f.seedTenant("tenant-1", "Acme")
	f.seedTeam("team-1", "Plataforma", "tenant-1")
	f.seedTeam("team-2", "Ventas", "tenant-1")
	f.seedGroup("group-1", "Operadores", "team-1")
	f.seedUser("user-1", "ana@acme.com", "tenant-1", strPtr("team-1"), true)
	require.NoError(t, f.groupUC.AddUser("group-1", "user-1"))

	_, err := f.userUC.Update(context.Background(), "user-1", dto.UpdateUserRequest{TeamID: strPtr("team-2")})
	require.NoError(t, err)

	groups, err := f.groups.ListByUser("user-1")
	require.NoError(t, err)
	assert.Empty(t, groups, "las membresías del equipo anterior deben purgarse")
}

func TestUserUpdateDesasignaEquipoConStringVacio(t *testing.T) {
	f := newRegistryFixture()
	f.seedTenant("tenant-1", "Acme")
	f.seedTeam("team-1", "Plataforma", "tenant-1")
	f.seedGroup("group-1", "Operadores", "team-1")
	f.seedUser("user-1", "ana@acme.com", "tenant-1", strPtr("team-1"), true)
	require.NoError(t, f.groupUC.AddUser("group-1", "user-1"))

	resp, err := f.userUC.Update(context.Background(), "user-1", dto.UpdateUserRequest{TeamID: strPtr("")})
	require.NoError(t, err)
	assert.Nil(t, resp.TeamID)

	groups, err := f.groups.ListByUser("user-1")
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestUserDeleteEliminaSusMembresias(t *testing.T) {
	f := newRegistryFixture()
	f.seedTenant("tenant-1", "Acme")
	f.seedTeam("team-1", "Plataforma", "tenant-1")
	f.seedGroup("group-1", "Operadores", "team-1")
	f.seedUser("user-1", "ana@acme.com", "tenant-1", strPtr("team-1"), true)
	require.NoError(t, f.groupUC.AddUser("group-1", "user-1"))

	require.NoError(t, f.userUC.Delete(context.Background(), "user-1"))
	got, _ := f.users.GetByID("user-1")
	assert.Nil(t, got)
	assert.Empty(t, f.groups.userGroups, "el borrado arrastra las filas user_groups")
}

func TestUserListUnverifiedSoloPendientes(t *testing.T) {
	f := newRegistryFixture()
	f.seedTenant("tenant-1", "Acme")
	f.seedUser("user-1", "ana@acme.com", "tenant-1", nil, false)
	f.seedUser("user-2", "luis@acme.com", "tenant-1", nil, true)

	resp, err := f.userUC.ListUnverified(20, 0)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "ana@acme.com", resp.Items[0].Email)
}
