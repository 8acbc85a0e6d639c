package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Consola-api/internal/application/dto"
	"github.com/jhoicas/Consola-api/internal/application/modules"
	"github.com/jhoicas/Consola-api/pkg/validator"
)

// FinancialsHandler expone el módulo financials (transacciones por equipo).
type FinancialsHandler struct {
	uc *modules.FinancialsUseCase
}

// NewFinancialsHandler construye el handler del módulo financials.
func NewFinancialsHandler(uc *modules.FinancialsUseCase) *FinancialsHandler {
	return &FinancialsHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar transacción
// @Tags         financials
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateTransactionRequest  true  "amount, description, teamId"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/financials [post]
func (h *FinancialsHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
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
// @Summary      Listar transacciones del equipo
// @Tags         financials
// @Produce      json
// @Security     BearerAuth
// @Param        teamId  query  string  true  "equipo a listar"
// @Success      200   {object}  dto.TransactionListResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/financials [get]
func (h *FinancialsHandler) List(c *fiber.Ctx) error {
	page := parsePage(c)
	out, err := h.uc.ListByTeam(GetUser(c), c.Query("teamId"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar transacción
// @Tags         financials
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID de la transacción"
// @Param        body  body  dto.UpdateTransactionRequest  true  "amount, description"
// @Success      200   {object}  dto.TransactionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/financials/{id} [put]
func (h *FinancialsHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTransactionRequest
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
// @Summary      Eliminar transacción
// @Tags         financials
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la transacción"
// @Success      204
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/financials/{id} [delete]
func (h *FinancialsHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUser(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
