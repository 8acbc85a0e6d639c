package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Consola-api/internal/domain"
	"github.com/jhoicas/Consola-api/internal/domain/entity"
)

// Fakes en memoria de los puertos de persistencia. Replican el contrato de
// errores de las implementaciones postgres (pares duplicados, borrados de
// relaciones inexistentes) para que los casos de uso se prueben sin base
// de datos.

type memTenantRepo struct {
	tenants map[string]*entity.Tenant
}

func newMemTenantRepo() *memTenantRepo {
	return &memTenantRepo{tenants: map[string]*entity.Tenant{}}
}

func (r *memTenantRepo) Create(t *entity.Tenant) error {
	r.tenants[t.ID] = t
	return nil
}

func (r *memTenantRepo) GetByID(id string) (*entity.Tenant, error) {
	return r.tenants[id], nil
}

func (r *memTenantRepo) GetByName(name string) (*entity.Tenant, error) {
	for _, t := range r.tenants {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, nil
}

func (r *memTenantRepo) List(limit, offset int) ([]*entity.Tenant, error) {
	out := make([]*entity.Tenant, 0, len(r.tenants))
	for _, t := range r.tenants {
		out = append(out, t)
	}
	return out, nil
}

type memTeamRepo struct {
	teams map[string]*entity.Team
}

func newMemTeamRepo() *memTeamRepo {
	return &memTeamRepo{teams: map[string]*entity.Team{}}
}

func (r *memTeamRepo) Create(t *entity.Team) error {
	r.teams[t.ID] = t
	return nil
}

func (r *memTeamRepo) GetByID(id string) (*entity.Team, error) {
	t, ok := r.teams[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *memTeamRepo) List(limit, offset int) ([]*entity.Team, error) {
	out := make([]*entity.Team, 0, len(r.teams))
	for _, t := range r.teams {
		out = append(out, t)
	}
	return out, nil
}

func (r *memTeamRepo) Update(t *entity.Team) error {
	r.teams[t.ID] = t
	return nil
}

func (r *memTeamRepo) Delete(id string) error {
	if _, ok := r.teams[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.teams, id)
	return nil
}

type memUserRepo struct {
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByEmailAndTenant(email, tenantID string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email && u.TenantID == tenantID {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) List(limit, offset int) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memUserRepo) ListUnverified(limit, offset int) ([]*entity.User, error) {
	out := []*entity.User{}
	for _, u := range r.users {
		if !u.Verified {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memUserRepo) ClearTeam(teamID string) error {
	for _, u := range r.users {
		if u.TeamID != nil && *u.TeamID == teamID {
			u.TeamID = nil
		}
	}
	return nil
}

func (r *memUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

type memRoleRepo struct {
	roles map[string]*entity.Role
	// groupRoles lo comparte memGroupRepo para resolver ListByGroups.
	groupRoles *map[string]*entity.GroupRole
}

func newMemRoleRepo(groupRoles *map[string]*entity.GroupRole) *memRoleRepo {
	return &memRoleRepo{roles: map[string]*entity.Role{}, groupRoles: groupRoles}
}

func (r *memRoleRepo) Create(role *entity.Role) error {
	r.roles[role.ID] = role
	return nil
}

func (r *memRoleRepo) GetByID(id string) (*entity.Role, error) {
	role, ok := r.roles[id]
	if !ok {
		return nil, nil
	}
	cp := *role
	return &cp, nil
}

func (r *memRoleRepo) List(limit, offset int) ([]*entity.Role, error) {
	out := make([]*entity.Role, 0, len(r.roles))
	for _, role := range r.roles {
		out = append(out, role)
	}
	return out, nil
}

func (r *memRoleRepo) ListByGroups(groupIDs []string) ([]*entity.Role, error) {
	wanted := map[string]bool{}
	for _, id := range groupIDs {
		wanted[id] = true
	}
	seen := map[string]bool{}
	out := []*entity.Role{}
	for _, gr := range *r.groupRoles {
		if wanted[gr.GroupID] && !seen[gr.RoleID] {
			if role, ok := r.roles[gr.RoleID]; ok {
				seen[gr.RoleID] = true
				out = append(out, role)
			}
		}
	}
	return out, nil
}

func (r *memRoleRepo) Update(role *entity.Role) error {
	r.roles[role.ID] = role
	return nil
}

func (r *memRoleRepo) Delete(id string) error {
	if _, ok := r.roles[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.roles, id)
	return nil
}

type memGroupRepo struct {
	groups     map[string]*entity.Group
	userGroups map[string]*entity.UserGroup
	groupRoles map[string]*entity.GroupRole
}

func newMemGroupRepo() *memGroupRepo {
	return &memGroupRepo{
		groups:     map[string]*entity.Group{},
		userGroups: map[string]*entity.UserGroup{},
		groupRoles: map[string]*entity.GroupRole{},
	}
}

func (r *memGroupRepo) Create(g *entity.Group) error {
	r.groups[g.ID] = g
	return nil
}

func (r *memGroupRepo) GetByID(id string) (*entity.Group, error) {
	g, ok := r.groups[id]
	if !ok {
		return nil, nil
	}
	cp := *g
	return &cp, nil
}

func (r *memGroupRepo) List(limit, offset int) ([]*entity.Group, error) {
	out := make([]*entity.Group, 0, len(r.groups))
	for _, g := range r.groups {
		out = append(out, g)
	}
	return out, nil
}

func (r *memGroupRepo) ListByTeam(teamID string) ([]*entity.Group, error) {
	out := []*entity.Group{}
	for _, g := range r.groups {
		if g.TeamID == teamID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *memGroupRepo) Update(g *entity.Group) error {
	r.groups[g.ID] = g
	return nil
}

func (r *memGroupRepo) Delete(id string) error {
	if _, ok := r.groups[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.groups, id)
	for k, ug := range r.userGroups {
		if ug.GroupID == id {
			delete(r.userGroups, k)
		}
	}
	for k, gr := range r.groupRoles {
		if gr.GroupID == id {
			delete(r.groupRoles, k)
		}
	}
	return nil
}

func (r *memGroupRepo) DeleteByTeam(teamID string) error {
	for id, g := range r.groups {
		if g.TeamID == teamID {
			r.Delete(id)
		}
	}
	return nil
}

func (r *memGroupRepo) AddUser(rel *entity.UserGroup) error {
	for _, ug := range r.userGroups {
		if ug.UserID == rel.UserID && ug.GroupID == rel.GroupID {
			return domain.ErrAlreadyMember
		}
	}
	r.userGroups[rel.ID] = rel
	return nil
}

func (r *memGroupRepo) RemoveUser(groupID, userID string) error {
	for id, ug := range r.userGroups {
		if ug.GroupID == groupID && ug.UserID == userID {
			delete(r.userGroups, id)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memGroupRepo) ListByUser(userID string) ([]*entity.Group, error) {
	out := []*entity.Group{}
	for _, ug := range r.userGroups {
		if ug.UserID == userID {
			if g, ok := r.groups[ug.GroupID]; ok {
				out = append(out, g)
			}
		}
	}
	return out, nil
}

func (r *memGroupRepo) RemoveUserEverywhere(userID string) error {
	for id, ug := range r.userGroups {
		if ug.UserID == userID {
			delete(r.userGroups, id)
		}
	}
	return nil
}

func (r *memGroupRepo) AddRole(rel *entity.GroupRole) error {
	for _, gr := range r.groupRoles {
		if gr.GroupID == rel.GroupID && gr.RoleID == rel.RoleID {
			return domain.ErrDuplicate
		}
	}
	r.groupRoles[rel.ID] = rel
	return nil
}

func (r *memGroupRepo) RemoveRole(groupID, roleID string) error {
	for id, gr := range r.groupRoles {
		if gr.GroupID == groupID && gr.RoleID == roleID {
			delete(r.groupRoles, id)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memGroupRepo) RemoveRoleEverywhere(roleID string) error {
	for id, gr := range r.groupRoles {
		if gr.RoleID == roleID {
			delete(r.groupRoles, id)
		}
	}
	return nil
}

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

type memTransactionRepo struct {
	txs map[string]*entity.Transaction
}

func newMemTransactionRepo() *memTransactionRepo {
	return &memTransactionRepo{txs: map[string]*entity.Transaction{}}
}

func (r *memTransactionRepo) Create(t *entity.Transaction) error {
	r.txs[t.ID] = t
	return nil
}

func (r *memTransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	return r.txs[id], nil
}

func (r *memTransactionRepo) ListByTeam(teamID string, limit, offset int) ([]*entity.Transaction, error) {
	out := []*entity.Transaction{}
	for _, t := range r.txs {
		if t.TeamID == teamID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *memTransactionRepo) Update(t *entity.Transaction) error {
	r.txs[t.ID] = t
	return nil
}

func (r *memTransactionRepo) Delete(id string) error {
	delete(r.txs, id)
	return nil
}

func (r *memTransactionRepo) DeleteByTeam(teamID string) error {
	for id, t := range r.txs {
		if t.TeamID == teamID {
			delete(r.txs, id)
		}
	}
	return nil
}

type memReportRepo struct {
	reports map[string]*entity.Report
}

func newMemReportRepo() *memReportRepo {
	return &memReportRepo{reports: map[string]*entity.Report{}}
}

func (r *memReportRepo) Create(rep *entity.Report) error {
	r.reports[rep.ID] = rep
	return nil
}

func (r *memReportRepo) GetByID(id string) (*entity.Report, error) {
	return r.reports[id], nil
}

func (r *memReportRepo) ListByTeam(teamID string, limit, offset int) ([]*entity.Report, error) {
	out := []*entity.Report{}
	for _, rep := range r.reports {
		if rep.TeamID == teamID {
			out = append(out, rep)
		}
	}
	return out, nil
}

func (r *memReportRepo) Update(rep *entity.Report) error {
	r.reports[rep.ID] = rep
	return nil
}

func (r *memReportRepo) Delete(id string) error {
	delete(r.reports, id)
	return nil
}

func (r *memReportRepo) DeleteByTeam(teamID string) error {
	for id, rep := range r.reports {
		if rep.TeamID == teamID {
			delete(r.reports, id)
		}
	}
	return nil
}

// memTxRunner ejecuta fn directo sobre los mismos fakes. No hay rollback:
// suficiente para probar el orden y alcance de las cascadas.
type memTxRunner struct {
	repos TxRepos
}

func (tx *memTxRunner) Run(ctx context.Context, fn func(r TxRepos) error) error {
	return fn(tx.repos)
}

// registryFixture agrupa todos los fakes con los casos de uso ya cableados.
type registryFixture struct {
	tenants *memTenantRepo
	teams   *memTeamRepo
	users   *memUserRepo
	roles   *memRoleRepo
	groups  *memGroupRepo
	secrets *memSecretRepo
	txs     *memTransactionRepo
	reports *memReportRepo

	tenantUC *TenantUseCase
	teamUC   *TeamUseCase
	roleUC   *RoleUseCase
	groupUC  *GroupUseCase
	userUC   *UserUseCase
	perms    *PermissionService
}

func newRegistryFixture() *registryFixture {
	f := &registryFixture{
		tenants: newMemTenantRepo(),
		teams:   newMemTeamRepo(),
		users:   newMemUserRepo(),
		groups:  newMemGroupRepo(),
		secrets: newMemSecretRepo(),
		txs:     newMemTransactionRepo(),
		reports: newMemReportRepo(),
	}
	f.roles = newMemRoleRepo(&f.groups.groupRoles)
	runner := &memTxRunner{repos: TxRepos{
		Teams:        f.teams,
		Users:        f.users,
		Groups:       f.groups,
		Roles:        f.roles,
		Secrets:      f.secrets,
		Transactions: f.txs,
		Reports:      f.reports,
	}}
	f.tenantUC = NewTenantUseCase(f.tenants)
	f.teamUC = NewTeamUseCase(f.teams, f.tenants, runner)
	f.roleUC = NewRoleUseCase(f.roles, runner)
	f.groupUC = NewGroupUseCase(f.groups, f.teams, f.users, f.roles, runner)
	f.userUC = NewUserUseCase(f.users, f.teams, runner)
	f.perms = NewPermissionService(f.groups, f.roles)
	return f
}

func (f *registryFixture) seedTenant(id, name string) *entity.Tenant {
	t := &entity.Tenant{ID: id, Name: name, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	f.tenants.Create(t)
	return t
}

func (f *registryFixture) seedTeam(id, name, tenantID string) *entity.Team {
	t := &entity.Team{ID: id, Name: name, TenantID: tenantID, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	f.teams.Create(t)
	return t
}

func (f *registryFixture) seedUser(id, email, tenantID string, teamID *string, verified bool) *entity.User {
	u := &entity.User{
		ID:       id,
		TenantID: tenantID,
		Email:    email,
		TeamID:   teamID,
		Verified: verified,
	}
	f.users.Create(u)
	return u
}

func (f *registryFixture) seedGroup(id, name, teamID string) *entity.Group {
	g := &entity.Group{ID: id, Name: name, TeamID: teamID, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	f.groups.Create(g)
	return g
}

func strPtr(s string) *string { return &s }
