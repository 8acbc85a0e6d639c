package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Consola-api/internal/application/dto"
	"github.com/jhoicas/Consola-api/internal/domain"
	"github.com/jhoicas/Consola-api/internal/domain/access"
	"github.com/jhoicas/Consola-api/internal/domain/entity"
)

// permFixture deja un tenant, un equipo y un usuario verificado listos, y
// devuelve helpers para atar roles vía grupos.
type permFixture struct {
	*registryFixture
	user *entity.User
}

func newPermFixture(t *testing.T) *permFixture {
	t.Helper()
	f := newRegistryFixture()
	f.seedTenant("tenant-1", "Acme")
	f.seedTeam("team-1", "Plataforma", "tenant-1")
	user := f.seedUser("user-1", "ana@acme.com", "tenant-1", strPtr("team-1"), true)
	return &permFixture{registryFixture: f, user: user}
}

// grantRole crea un rol con esos permisos, lo ata a un grupo nuevo del equipo
// y mete al usuario en el grupo. Devuelve los ids de grupo y rol.
func (f *permFixture) grantRole(t *testing.T, perms map[string][]string) (groupID, roleID string) {
	t.Helper()
	role, err := f.roleUC.Create(dto.CreateRoleRequest{Name: "rol-" + t.Name(), Permissions: perms})
	require.NoError(t, err)
	group := f.seedGroup("group-"+role.ID, "grupo-"+role.ID, "team-1")
	require.NoError(t, f.groupUC.AddRole(group.ID, role.ID))
	require.NoError(t, f.groupUC.AddUser(group.ID, f.user.ID))
	return group.ID, role.ID
}

func TestCanPermisoConcedidoPorRolViaGrupo(t *testing.T) {
	f := newPermFixture(t)
	f.grantRole(t, map[string][]string{"vault": {"read", "update"}})

	ok, err := f.perms.Can(f.user, "vault", "read", "")
	require.NoError(t, err)
	assert.True(t, ok, "read sobre vault está en el rol del grupo")

	ok, err = f.perms.Can(f.user, "vault", "delete", "")
	require.NoError(t, err)
	assert.False(t, ok, "delete sobre vault no fue concedido")

	ok, err = f.perms.Can(f.user, "financials", "read", "")
	require.NoError(t, err)
	assert.False(t, ok, "el rol no toca financials")
}

func TestCanUneLosPermisosDeVariosGrupos(t *testing.T) {
	f := newPermFixture(t)
	f.grantRole(t, map[string][]string{"vault": {"read"}})
	f.grantRole(t, map[string][]string{"financials": {"create", "read"}})

	for _, tc := range []struct {
		module, action string
		want           bool
	}{
		{"vault", "read", true},
		{"financials", "create", true},
		{"financials", "read", true},
		{"vault", "create", false},
		{"reporting", "read", false},
	} {
		ok, err := f.perms.Can(f.user, tc.module, tc.action, "")
		require.NoError(t, err)
		assert.Equalf(t, tc.want, ok, "can(%s, %s)", tc.module, tc.action)
	}
}

func TestCanUsuarioSinVerificarSiempreFalse(t *testing.T) {
	f := newPermFixture(t)
	f.grantRole(t, map[string][]string{"vault": {"read"}})

	stored := f.users.users[f.user.ID]
	stored.Verified = false
	f.user.Verified = false

	ok, err := f.perms.Can(f.user, "vault", "read", "")
	require.NoError(t, err)
	assert.False(t, ok, "sin verificar no hay permisos, tenga los roles que tenga")
}

func TestCanUsuarioSinEquipoSiempreFalse(t *testing.T) {
	f := newRegistryFixture()
	f.seedTenant("tenant-1", "Acme")
	user := f.seedUser("user-1", "ana@acme.com", "tenant-1", nil, true)

	ok, err := f.perms.Can(user, "vault", "read", "")
	require.NoError(t, err)
	assert.False(t, ok, "sin equipo asignado no hay permisos")
}

func TestCanScopeDeEquipoAjenoSiempreFalse(t *testing.T) {
	f := newPermFixture(t)
	f.grantRole(t, map[string][]string{"vault": {"read"}})

	ok, err := f.perms.Can(f.user, "vault", "read", "team-otro")
	require.NoError(t, err)
	assert.False(t, ok, "la autoridad no cruza equipos")

	ok, err = f.perms.Can(f.user, "vault", "read", "team-1")
	require.NoError(t, err)
	assert.True(t, ok, "el scope del propio equipo equivale al scope vacío")
}

func TestCanModuloOAccionDesconocidosSonError(t *testing.T) {
	f := newPermFixture(t)

	_, err := f.perms.Can(f.user, "inventario", "read", "")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument, "módulo fuera del enum")

	_, err = f.perms.Can(f.user, "vault", "execute", "")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument, "acción fuera del enum")
}

func TestCanReflejaAltaYBajaDeRolEnElGrupo(t *testing.T) {
	f := newPermFixture(t)
	groupID, roleID := f.grantRole(t, map[string][]string{"reporting": {"create"}})

	ok, err := f.perms.Can(f.user, "reporting", "create", "")
	require.NoError(t, err)
	require.True(t, ok)

	// Quitar el rol del grupo revoca el permiso en el siguiente chequeo.
	require.NoError(t, f.groupUC.RemoveRole(groupID, roleID))
	ok, err = f.perms.Can(f.user, "reporting", "create", "")
	require.NoError(t, err)
	assert.False(t, ok, "sin el rol en el grupo el permiso desaparece")

	// Volver a atarlo lo restaura.
	require.NoError(t, f.groupUC.AddRole(groupID, roleID))
	ok, err = f.perms.Can(f.user, "reporting", "create", "")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCanReflejaBajaDelUsuarioEnElGrupo(t *testing.T) {
	f := newPermFixture(t)
	groupID, _ := f.grantRole(t, map[string][]string{"vault": {"read"}})

	require.NoError(t, f.groupUC.RemoveUser(groupID, f.user.ID))
	ok, err := f.perms.Can(f.user, "vault", "read", "")
	require.NoError(t, err)
	assert.False(t, ok, "fuera del grupo no quedan permisos")
}

func TestListPermissionsDevuelveLaUnion(t *testing.T) {
	f := newPermFixture(t)
	f.grantRole(t, map[string][]string{"vault": {"read"}})
	f.grantRole(t, map[string][]string{"vault": {"update"}, "reporting": {"read"}})

	set, err := f.perms.ListPermissions(f.user, "")
	require.NoError(t, err)
	assert.True(t, set.Has(access.ModuleVault, access.PermissionRead))
	assert.True(t, set.Has(access.ModuleVault, access.PermissionUpdate))
	assert.True(t, set.Has(access.ModuleReporting, access.PermissionRead))
	assert.False(t, set.Has(access.ModuleFinancials, access.PermissionRead))
}

func TestListPermissionsScopeAjenoEsSetVacio(t *testing.T) {
	f := newPermFixture(t)
	f.grantRole(t, map[string][]string{"vault": {"read", "create", "update", "delete"}})

	set, err := f.perms.ListPermissions(f.user, "team-otro")
	require.NoError(t, err)
	for _, m := range access.Modules() {
		assert.Emptyf(t, set[m], "el scope ajeno no expone permisos de %s", m)
	}
}
