package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Consola-api/internal/application/dto"
	"github.com/jhoicas/Consola-api/internal/application/usecase"
	"github.com/jhoicas/Consola-api/pkg/validator"
)

// GroupHandler maneja el CRUD de grupos y sus relaciones con usuarios y roles.
type GroupHandler struct {
	uc *usecase.GroupUseCase
}

// NewGroupHandler construye el handler de grupos.
func NewGroupHandler(uc *usecase.GroupUseCase) *GroupHandler {
	return &GroupHandler{uc: uc}
}

// Create godoc
// @Summary      Crear grupo dentro de un equipo
// @Tags         groups
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateGroupRequest  true  "name, description, teamId"
// @Success      201   {object}  dto.GroupResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/groups [post]
func (h *GroupHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateGroupRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validator.ValidateStruct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener grupo por ID
// @Tags         groups
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del grupo"
// @Success      200   {object}  dto.GroupResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/groups/{id} [get]
func (h *GroupHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el grupo no existe"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar grupos
// @Tags         groups
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  dto.GroupListResponse
// @Router       /api/groups [get]
func (h *GroupHandler) List(c *fiber.Ctx) error {
	page := parsePage(c)
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar nombre y/o descripción de un grupo
// @Tags         groups
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID del grupo"
// @Param        body  body  dto.UpdateGroupRequest  true  "name, description"
// @Success      200   {object}  dto.GroupResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/groups/{id} [put]
func (h *GroupHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateGroupRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar grupo con sus relaciones
// @Tags         groups
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del grupo"
// @Success      204
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/groups/{id} [delete]
func (h *GroupHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddUser godoc
// @Summary      Asignar un usuario al grupo
// @Description  El usuario debe pertenecer al mismo equipo que el grupo.
// @Tags         groups
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID del grupo"
// @Param        body  body  dto.AddUserToGroupRequest  true  "userId"
// @Success      204
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/groups/{id}/users [post]
func (h *GroupHandler) AddUser(c *fiber.Ctx) error {
	var in dto.AddUserToGroupRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validator.ValidateStruct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	if err := h.uc.AddUser(c.Params("id"), in.UserID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RemoveUser godoc
// @Summary      Quitar un usuario del grupo
// @Tags         groups
// @Produce      json
// @Security     BearerAuth
// @Param        id      path  string  true  "ID del grupo"
// @Param        userId  path  string  true  "ID del usuario"
// @Success      204
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/groups/{id}/users/{userId} [delete]
func (h *GroupHandler) RemoveUser(c *fiber.Ctx) error {
	if err := h.uc.RemoveUser(c.Params("id"), c.Params("userId")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddRole godoc
// @Summary      Atar un rol al grupo
// @Tags         groups
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID del grupo"
// @Param        body  body  dto.AddRoleToGroupRequest  true  "roleId"
// @Success      204
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/groups/{id}/roles [post]
func (h *GroupHandler) AddRole(c *fiber.Ctx) error {
	var in dto.AddRoleToGroupRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validator.ValidateStruct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	if err := h.uc.AddRole(c.Params("id"), in.RoleID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RemoveRole godoc
// @Summary      Desatar un rol del grupo
// @Tags         groups
// @Produce      json
// @Security     BearerAuth
// @Param        id      path  string  true  "ID del grupo"
// @Param        roleId  path  string  true  "ID del rol"
// @Success      204
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/groups/{id}/roles/{roleId} [delete]
func (h *GroupHandler) RemoveRole(c *fiber.Ctx) error {
	if err := h.uc.RemoveRole(c.Params("id"), c.Params("roleId")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
