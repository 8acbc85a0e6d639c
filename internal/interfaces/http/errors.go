package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Consola-api/internal/application/dto"
	"github.com/jhoicas/Consola-api/internal/domain"
)

// respondError mapea los errores del dominio a su status y código HTTP.
// Los handlers lo usan como salida común después de sus casos especiales.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "sesión requerida o inválida"})
	case errors.Is(err, domain.ErrPendingVerification):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "PENDING_VERIFICATION", Message: "la cuenta está pendiente de verificación"})
	case errors.Is(err, domain.ErrTeamMismatch):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "TEAM_MISMATCH", Message: "el usuario no pertenece al equipo del grupo"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "operación no permitida"})
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el recurso no existe"})
	case errors.Is(err, domain.ErrAlreadyMember):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_MEMBER", Message: "el usuario ya pertenece al grupo"})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado en este tenant"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el recurso ya existe"})
	case errors.Is(err, domain.ErrExpiredCode):
		return c.Status(fiber.StatusGone).JSON(dto.ErrorResponse{Code: "EXPIRED_CODE", Message: "el código expiró, solicita uno nuevo"})
	case errors.Is(err, domain.ErrCodeMismatch):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CODE_MISMATCH", Message: "el código no coincide"})
	case errors.Is(err, domain.ErrInvalidCode):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_CODE", Message: "no hay un código vigente para ese email"})
	case errors.Is(err, domain.ErrInvalidArgument):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ARGUMENT", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
