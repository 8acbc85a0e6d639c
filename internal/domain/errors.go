package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidArgument = errors.New("argumento inválido")
	ErrDuplicate       = errors.New("recurso duplicado")

	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")

	ErrUnauthenticated     = errors.New("sesión inválida o expirada")
	ErrPendingVerification = errors.New("cuenta pendiente de verificación")
	ErrForbidden           = errors.New("acceso denegado")

	ErrInvalidCode  = errors.New("código inválido")
	ErrExpiredCode  = errors.New("código expirado")
	ErrCodeMismatch = errors.New("el código no coincide")

	ErrTeamMismatch  = errors.New("el usuario no pertenece al equipo del grupo")
	ErrAlreadyMember = errors.New("el usuario ya es miembro del grupo")
)
