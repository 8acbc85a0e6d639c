package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Consola-api/internal/application/dto"
	"github.com/jhoicas/Consola-api/internal/domain"
	"github.com/jhoicas/Consola-api/internal/domain/entity"
)

// permissionChecker es el contrato mínimo para decidir module/action.
// Lo implementa *usecase.PermissionService.
type permissionChecker interface {
	Can(user *entity.User, module, action, scopeTeamID string) (bool, error)
}

// RequireVerified bloquea a los usuarios sin verificar. Debe usarse DESPUÉS
// de AuthMiddleware. Un usuario autenticado pero pendiente solo alcanza los
// endpoints de identidad, que no llevan este middleware.
func RequireVerified() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "sesión requerida"})
		}
		if !user.Verified {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "PENDING_VERIFICATION", Message: "la cuenta está pendiente de verificación"})
		}
		return c.Next()
	}
}

// RequireAdmin bloquea a quien no tenga el flag de superusuario. Debe usarse
// DESPUÉS de AuthMiddleware. La administración del registro no pasa por el
// resolver de permisos de módulo.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "sesión requerida"})
		}
		if !user.IsAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "requiere privilegios de administrador"})
		}
		return c.Next()
	}
}

// RequirePermission devuelve un middleware que verifica can(user, module,
// action) con el scope opcional del query param teamId. Debe usarse DESPUÉS de
// AuthMiddleware y RequireVerified.
//
// Comportamiento:
//   - 403 Forbidden → el permiso no está concedido (o el scope es ajeno).
//   - 400 Bad Request → module/action fuera del enum (bug de cableado de rutas).
//   - 503 Service Unavailable → fallo de infraestructura al cargar roles.
func RequirePermission(module, action string, checker permissionChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "sesión requerida"})
		}
		scope := c.Query("teamId")
		allowed, err := checker.Can(user, module, action, scope)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidArgument) {
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ARGUMENT", Message: err.Error()})
			}
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "PERMISSION_CHECK_FAILED", Message: "no se pudo verificar el permiso, intente más tarde"})
		}
		if !allowed {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "sin permiso '" + action + "' sobre el módulo '" + module + "'",
			})
		}
		return c.Next()
	}
}
