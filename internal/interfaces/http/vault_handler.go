package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Consola-api/internal/application/dto"
	"github.com/jhoicas/Consola-api/internal/application/modules"
	"github.com/jhoicas/Consola-api/pkg/validator"
)

// VaultHandler expone el módulo vault. El permiso módulo/acción ya fue
// validado por el middleware; el caso de uso remata el alcance de equipo.
type VaultHandler struct {
	uc *modules.VaultUseCase
}

// NewVaultHandler construye el handler del módulo vault.
func NewVaultHandler(uc *modules.VaultUseCase) *VaultHandler {
	return &VaultHandler{uc: uc}
}

// Create godoc
// @Summary      Crear secreto
// @Tags         vault
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateSecretRequest  true  "name, value, teamId"
// @Success      201   {object}  dto.SecretResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/vault [post]
func (h *VaultHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSecretRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validator.ValidateStruct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Create(GetUser(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar secretos del equipo
// @Tags         vault
// @Produce      json
// @Security     BearerAuth
// @Param        teamId  query  string  true  "equipo a listar"
// @Success      200   {object}  dto.SecretListResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/vault [get]
func (h *VaultHandler) List(c *fiber.Ctx) error {
	page := parsePage(c)
	out, err := h.uc.ListByTeam(GetUser(c), c.Query("teamId"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar secreto
// @Tags         vault
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID del secreto"
// @Param        body  body  dto.UpdateSecretRequest  true  "name, value"
// @Success      200   {object}  dto.SecretResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/vault/{id} [put]
func (h *VaultHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSecretRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetUser(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar secreto
// @Tags         vault
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del secreto"
// @Success      204
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/vault/{id} [delete]
func (h *VaultHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUser(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
