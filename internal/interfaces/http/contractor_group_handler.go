package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
)

// ContractorGroupHandler maneja las peticiones HTTP para el árbol de grupos de
// contratistas (protegido).
type ContractorGroupHandler struct {
	uc *usecase.ContractorGroupUseCase
}

// NewContractorGroupHandler construye el handler.
func NewContractorGroupHandler(uc *usecase.ContractorGroupUseCase) *ContractorGroupHandler {
	return &ContractorGroupHandler{uc: uc}
}

// Create godoc
// @Summary      Crear grupo de contratistas
// @Tags         contractor-groups
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateContractorGroupRequest  true  "Nombre y padre opcional"
// @Success      201   {object}  dto.ContractorGroupResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/contractor-groups [post]
func (h *ContractorGroupHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateContractorGroupRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un grupo con ese nombre"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PARENT_NOT_FOUND", Message: "el grupo padre no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener grupo por ID
// @Tags         contractor-groups
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del grupo"
// @Success      200  {object}  dto.ContractorGroupResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contractor-groups/{id} [get]
func (h *ContractorGroupHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "grupo no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar grupos en orden de árbol
// @Tags         contractor-groups
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.ContractorGroupListResponse
// @Router       /api/contractor-groups [get]
func (h *ContractorGroupHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Children godoc
// @Summary      Listar hijos directos de un grupo
// @Tags         contractor-groups
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del grupo (o 'root' para los de primer nivel)"
// @Success      200  {array}  dto.ContractorGroupResponse
// @Router       /api/contractor-groups/{id}/children [get]
func (h *ContractorGroupHandler) Children(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "root" {
		id = ""
	}
	out, err := h.uc.Children(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Tree godoc
// @Summary      Árbol completo de grupos
// @Tags         contractor-groups
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ContractorGroupTreeNode
// @Router       /api/contractor-groups/tree [get]
func (h *ContractorGroupHandler) Tree(c *fiber.Ctx) error {
	out, err := h.uc.Tree()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Renombrar grupo
// @Tags         contractor-groups
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del grupo"
// @Param        body  body  dto.UpdateContractorGroupRequest  true  "Nuevo nombre"
// @Success      200   {object}  dto.ContractorGroupResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/contractor-groups/{id} [put]
func (h *ContractorGroupHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateContractorGroupRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un grupo con ese nombre"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "grupo no encontrado"})
	}
	return c.JSON(out)
}

// Move godoc
// @Summary      Mover grupo a otro padre
// @Tags         contractor-groups
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del grupo"
// @Param        body  body  dto.MoveContractorGroupRequest  true  "Nuevo padre (vacío = raíz)"
// @Success      200   {object}  dto.ContractorGroupResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/contractor-groups/{id}/move [put]
func (h *ContractorGroupHandler) Move(c *fiber.Ctx) error {
	var in dto.MoveContractorGroupRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Move(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CYCLE", Message: "no se puede mover un grupo dentro de su propio subárbol"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "grupo o padre no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "grupo no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar grupo (sin hijos y sin contratistas)
// @Tags         contractor-groups
// @Security     Bearer
// @Param        id  path  string  true  "ID del grupo"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/contractor-groups/{id} [delete]
func (h *ContractorGroupHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "IN_USE", Message: "el grupo tiene hijos o contratistas asociados"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
