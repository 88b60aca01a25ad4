package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
)

// ContractorHandler maneja las peticiones HTTP para Contractor (protegido).
type ContractorHandler struct {
	uc *usecase.ContractorUseCase
}

// NewContractorHandler construye el handler.
func NewContractorHandler(uc *usecase.ContractorUseCase) *ContractorHandler {
	return &ContractorHandler{uc: uc}
}

// Create godoc
// @Summary      Crear contratista
// @Tags         contractors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateContractorRequest  true  "Nombre y grupo opcional"
// @Success      201   {object}  dto.ContractorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/contractors [post]
func (h *ContractorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateContractorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un contratista con ese nombre"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "GROUP_NOT_FOUND", Message: "el grupo no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener contratista por ID
// @Tags         contractors
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del contratista"
// @Success      200  {object}  dto.ContractorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contractors/{id} [get]
func (h *ContractorHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contratista no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar contratistas
// @Tags         contractors
// @Security     Bearer
// @Produce      json
// @Param        group_id  query  string  false  "Filtrar por grupo"
// @Param        limit     query  int     false  "Límite"   default(20)
// @Param        offset    query  int     false  "Offset"   default(0)
// @Success      200       {object}  dto.ContractorListResponse
// @Router       /api/contractors [get]
func (h *ContractorHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.Query("group_id"), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar contratista
// @Tags         contractors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del contratista"
// @Param        body  body  dto.UpdateContractorRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ContractorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/contractors/{id} [put]
func (h *ContractorHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateContractorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un contratista con ese nombre"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "GROUP_NOT_FOUND", Message: "el grupo no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contratista no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar contratista (sin documentos)
// @Tags         contractors
// @Security     Bearer
// @Param        id  path  string  true  "ID del contratista"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/contractors/{id} [delete]
func (h *ContractorHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "IN_USE", Message: "el contratista está referido por documentos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
