package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Consola-api/internal/application/dto"
	"github.com/jhoicas/Consola-api/internal/domain/entity"
	"github.com/jhoicas/Consola-api/pkg/jwt"
)

// Locals keys para el usuario autenticado y su sesión en Fiber.
const (
	LocalUser      = "user"
	LocalSessionID = "session_id"
)

// sessionResolver es el contrato mínimo que necesita el middleware para mapear
// el claim jti a un usuario vigente. Lo implementa *auth.AuthUseCase; la
// interfaz evita el import circular.
type sessionResolver interface {
	ResolveSession(sessionID string) (*entity.User, error)
}

// AuthMiddleware valida el Bearer Token JWT, comprueba que la sesión siga viva
// y carga el usuario FRESCO de la DB en c.Locals. Un token firmado pero cuya
// sesión fue revocada (logout) no pasa.
func AuthMiddleware(jwtSecret string, sessions sessionResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "token vacío"})
		}
		_, _, sessionID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "token inválido o expirado"})
		}
		user, err := sessions.ResolveSession(sessionID)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "sesión inválida o revocada"})
		}
		c.Locals(LocalUser, user)
		c.Locals(LocalSessionID, sessionID)
		return c.Next()
	}
}

// GetUser devuelve el usuario del contexto (después del middleware de auth).
func GetUser(c *fiber.Ctx) *entity.User {
	v := c.Locals(LocalUser)
	if v == nil {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}

// GetSessionID devuelve el ID de sesión del contexto (después del middleware de auth).
func GetSessionID(c *fiber.Ctx) string {
	v := c.Locals(LocalSessionID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
