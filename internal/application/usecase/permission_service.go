package usecase

import (
	"github.com/jhoicas/Consola-api/internal/domain/access"
	"github.com/jhoicas/Consola-api/internal/domain/entity"
	"github.com/jhoicas/Consola-api/internal/domain/repository"
	"github.com/jhoicas/Consola-api/pkg/metrics"
)

// PermissionService es el único punto de la aplicación que responde
// "¿puede el usuario U ejecutar la acción A sobre el módulo M?".
// Carga las relaciones (user_groups → group_roles → roles) y delega la
// decisión en la función pura access.Decide. Sin estado mutable compartido:
// seguro de invocar una vez por chequeo de autorización.
type PermissionService struct {
	groupRepo repository.GroupRepository
	roleRepo  repository.RoleRepository
}

// NewPermissionService construye el servicio de permisos.
func NewPermissionService(groupRepo repository.GroupRepository, roleRepo repository.RoleRepository) *PermissionService {
	return &PermissionService{groupRepo: groupRepo, roleRepo: roleRepo}
}

// Can decide si el usuario puede ejecutar action sobre module, opcionalmente
// acotado a scopeTeamID (vacío = el equipo propio). Módulo o acción fuera del
// enum devuelven domain.ErrInvalidArgument, nunca un false silencioso.
// Devuelve error solo ante fallos de infraestructura.
func (s *PermissionService) Can(user *entity.User, module, action, scopeTeamID string) (bool, error) {
	m, err := access.ParseModule(module)
	if err != nil {
		return false, err
	}
	a, err := access.ParsePermission(action)
	if err != nil {
		return false, err
	}

	rolePerms, err := s.loadRolePerms(user)
	if err != nil {
		return false, err
	}

	sub := access.Subject{Verified: user.Verified, TeamID: user.TeamIDOrEmpty()}
	allowed := access.Decide(sub, m, a, scopeTeamID, rolePerms)
	metrics.ObservePermissionDecision(module, allowed)
	return allowed, nil
}

// ListPermissions devuelve el set efectivo del usuario. Con scopeTeamID de un
// equipo ajeno el resultado es el set vacío (la autoridad no cruza equipos);
// no es un error.
func (s *PermissionService) ListPermissions(user *entity.User, scopeTeamID string) (access.PermissionSet, error) {
	sub := access.Subject{Verified: user.Verified, TeamID: user.TeamIDOrEmpty()}
	if scopeTeamID != "" && scopeTeamID != sub.TeamID {
		return access.NewPermissionSet(), nil
	}
	rolePerms, err := s.loadRolePerms(user)
	if err != nil {
		return nil, err
	}
	return access.Resolve(sub, rolePerms), nil
}

// loadRolePerms carga un snapshot de los permisos de los roles alcanzables
// por los grupos del usuario. Un cambio de membresía concurrente afecta al
// siguiente chequeo, no al que ya está en vuelo.
func (s *PermissionService) loadRolePerms(user *entity.User) ([]access.PermissionSet, error) {
	groups, err := s.groupRepo.ListByUser(user.ID)
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return nil, nil
	}
	ids := make([]string, 0, len(groups))
	for _, g := range groups {
		ids = append(ids, g.ID)
	}
	roles, err := s.roleRepo.ListByGroups(ids)
	if err != nil {
		return nil, err
	}
	perms := make([]access.PermissionSet, 0, len(roles))
	for _, r := range roles {
		perms = append(perms, r.Permissions)
	}
	return perms, nil
}
