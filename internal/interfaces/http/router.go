package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Consola-api/internal/application/auth"
	"github.com/jhoicas/Consola-api/internal/application/modules"
	"github.com/jhoicas/Consola-api/internal/application/usecase"
	"github.com/jhoicas/Consola-api/internal/domain/access"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	Perms        *usecase.PermissionService
	TenantUC     *usecase.TenantUseCase
	TeamUC       *usecase.TeamUseCase
	RoleUC       *usecase.RoleUseCase
	GroupUC      *usecase.GroupUseCase
	UserUC       *usecase.UserUseCase
	VaultUC      *modules.VaultUseCase
	FinancialsUC *modules.FinancialsUseCase
	ReportingUC  *modules.ReportingUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
//
// Tres anillos de protección:
//   - público: registro y login por OTP.
//   - autenticado: sesión propia (logout, me, permissions); alcanzable aun
//     sin verificar.
//   - verificado: administración (además admin) y módulos de negocio
//     (además permiso module/action resuelto por grupos y roles).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Perms)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/request-otp", authHandler.RequestOTP)
	authGroup.Post("/verify-otp", authHandler.VerifyOTP)

	// Sesión propia (requiere Bearer Token, no requiere verificación)
	session := api.Group("/auth", AuthMiddleware(deps.JWTSecret, deps.AuthUC))
	session.Post("/logout", authHandler.Logout)
	session.Get("/me", authHandler.Me)
	session.Get("/permissions", authHandler.Permissions)

	// Administración del registro (verificado + admin)
	admin := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.AuthUC), RequireVerified(), RequireAdmin())

	adminOps := admin.Group("/admin")
	userHandler := NewUserHandler(deps.UserUC)
	adminOps.Get("/unverified-users", userHandler.ListUnverified)
	adminOps.Post("/verify-user", userHandler.Verify)

	tenants := admin.Group("/tenants")
	tenantHandler := NewTenantHandler(deps.TenantUC)
	tenants.Post("/", tenantHandler.Create)
	tenants.Get("/", tenantHandler.List)
	tenants.Get("/:id", tenantHandler.GetByID)

	users := admin.Group("/users")
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	teams := admin.Group("/teams")
	teamHandler := NewTeamHandler(deps.TeamUC)
	teams.Post("/", teamHandler.Create)
	teams.Get("/", teamHandler.List)
	teams.Get("/:id", teamHandler.GetByID)
	teams.Put("/:id", teamHandler.Update)
	teams.Delete("/:id", teamHandler.Delete)

	roles := admin.Group("/roles")
	roleHandler := NewRoleHandler(deps.RoleUC)
	roles.Post("/", roleHandler.Create)
	roles.Get("/", roleHandler.List)
	roles.Get("/:id", roleHandler.GetByID)
	roles.Put("/:id", roleHandler.Update)
	roles.Delete("/:id", roleHandler.Delete)

	groups := admin.Group("/groups")
	groupHandler := NewGroupHandler(deps.GroupUC)
	groups.Post("/", groupHandler.Create)
	groups.Get("/", groupHandler.List)
	groups.Get("/:id", groupHandler.GetByID)
	groups.Put("/:id", groupHandler.Update)
	groups.Delete("/:id", groupHandler.Delete)
	groups.Post("/:id/users", groupHandler.AddUser)
	groups.Delete("/:id/users/:userId", groupHandler.RemoveUser)
	groups.Post("/:id/roles", groupHandler.AddRole)
	groups.Delete("/:id/roles/:roleId", groupHandler.RemoveRole)

	// Módulos de negocio (verificado + permiso module/action por método)
	moduleRoutes(api, deps, string(access.ModuleVault), func(g fiber.Router, perm func(action string) fiber.Handler) {
		h := NewVaultHandler(deps.VaultUC)
		g.Post("/", perm(string(access.PermissionCreate)), h.Create)
		g.Get("/", perm(string(access.PermissionRead)), h.List)
		g.Put("/:id", perm(string(access.PermissionUpdate)), h.Update)
		g.Delete("/:id", perm(string(access.PermissionDelete)), h.Delete)
	})
	moduleRoutes(api, deps, string(access.ModuleFinancials), func(g fiber.Router, perm func(action string) fiber.Handler) {
		h := NewFinancialsHandler(deps.FinancialsUC)
		g.Post("/", perm(string(access.PermissionCreate)), h.Create)
		g.Get("/", perm(string(access.PermissionRead)), h.List)
		g.Put("/:id", perm(string(access.PermissionUpdate)), h.Update)
		g.Delete("/:id", perm(string(access.PermissionDelete)), h.Delete)
	})
	moduleRoutes(api, deps, string(access.ModuleReporting), func(g fiber.Router, perm func(action string) fiber.Handler) {
		h := NewReportingHandler(deps.ReportingUC)
		g.Post("/", perm(string(access.PermissionCreate)), h.Create)
		g.Get("/", perm(string(access.PermissionRead)), h.List)
		g.Put("/:id", perm(string(access.PermissionUpdate)), h.Update)
		g.Delete("/:id", perm(string(access.PermissionDelete)), h.Delete)
		g.Get("/:id/pdf", perm(string(access.PermissionRead)), h.ExportPDF)
		g.Get("/:id/xml", perm(string(access.PermissionRead)), h.ExportXML)
	})
}

// moduleRoutes monta un grupo /api/<module> con auth + verificación, y le
// entrega al callback una fábrica de middlewares de permiso para ese módulo.
func moduleRoutes(api fiber.Router, deps RouterDeps, module string, register func(g fiber.Router, perm func(action string) fiber.Handler)) {
	g := api.Group("/"+module, AuthMiddleware(deps.JWTSecret, deps.AuthUC), RequireVerified())
	register(g, func(action string) fiber.Handler {
		return RequirePermission(module, action, deps.Perms)
	})
}
