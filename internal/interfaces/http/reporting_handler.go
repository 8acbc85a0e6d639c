package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Consola-api/internal/application/dto"
	"github.com/jhoicas/Consola-api/internal/application/modules"
	"github.com/jhoicas/Consola-api/pkg/validator"
)

// ReportingHandler expone el módulo reporting, incluidas las exportaciones
// PDF y XML de informes.
type ReportingHandler struct {
	uc *modules.ReportingUseCase
}

// NewReportingHandler construye el handler del módulo reporting.
func NewReportingHandler(uc *modules.ReportingUseCase) *ReportingHandler {
	return &ReportingHandler{uc: uc}
}

// Create godoc
// @Summary      Crear informe
// @Tags         reporting
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateReportRequest  true  "title, content, teamId"
// @Success      201   {object}  dto.ReportResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/reporting [post]
func (h *ReportingHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReportRequest
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
// @Summary      Listar informes del equipo
// @Tags         reporting
// @Produce      json
// @Security     BearerAuth
// @Param        teamId  query  string  true  "equipo a listar"
// @Success      200   {object}  dto.ReportListResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/reporting [get]
func (h *ReportingHandler) List(c *fiber.Ctx) error {
	page := parsePage(c)
	out, err := h.uc.ListByTeam(GetUser(c), c.Query("teamId"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar informe
// @Tags         reporting
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID del informe"
// @Param        body  body  dto.UpdateReportRequest  true  "title, content"
// @Success      200   {object}  dto.ReportResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/reporting/{id} [put]
func (h *ReportingHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateReportRequest
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
// @Summary      Eliminar informe
// @Tags         reporting
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del informe"
// @Success      204
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/reporting/{id} [delete]
func (h *ReportingHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUser(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ExportPDF godoc
// @Summary      Descargar informe en PDF
// @Tags         reporting
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del informe"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reporting/{id}/pdf [get]
func (h *ReportingHandler) ExportPDF(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.ExportPDF(GetUser(c), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="informe-%s.pdf"`, id))
	return c.Send(out)
}

// ExportXML godoc
// @Summary      Descargar informe en XML
// @Tags         reporting
// @Produce      application/xml
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del informe"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reporting/{id}/xml [get]
func (h *ReportingHandler) ExportXML(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.ExportXML(GetUser(c), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/xml")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="informe-%s.xml"`, id))
	return c.Send(out)
}
