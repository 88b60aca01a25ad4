package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
)

// AmountConstraintHandler maneja las peticiones HTTP para AmountConstraint
// (protegido). Cada bien admite a lo sumo una restricción; -1 significa sin
// límite.
type AmountConstraintHandler struct {
	uc *usecase.AmountConstraintUseCase
}

// NewAmountConstraintHandler construye el handler.
func NewAmountConstraintHandler(uc *usecase.AmountConstraintUseCase) *AmountConstraintHandler {
	return &AmountConstraintHandler{uc: uc}
}

// Create godoc
// @Summary      Crear restricción de cantidad para un bien
// @Tags         constraints
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAmountConstraintRequest  true  "Bien y límites (-1 = sin límite)"
// @Success      201   {object}  dto.AmountConstraintResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/constraints [post]
func (h *AmountConstraintHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAmountConstraintRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el bien ya tiene una restricción"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ASSET_NOT_FOUND", Message: "el bien no existe"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "límites inválidos: min y max deben ser >= -1 y min <= max"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener restricción por ID
// @Tags         constraints
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la restricción"
// @Success      200  {object}  dto.AmountConstraintResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/constraints/{id} [get]
func (h *AmountConstraintHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "restricción no encontrada"})
	}
	return c.JSON(out)
}

// GetByAsset godoc
// @Summary      Obtener la restricción de un bien
// @Tags         constraints
// @Security     Bearer
// @Produce      json
// @Param        asset_id  path  string  true  "ID del bien"
// @Success      200  {object}  dto.AmountConstraintResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/constraints/asset/{asset_id} [get]
func (h *AmountConstraintHandler) GetByAsset(c *fiber.Ctx) error {
	out, err := h.uc.GetByAsset(c.Params("asset_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el bien no tiene restricción"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar restricciones
// @Tags         constraints
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.AmountConstraintListResponse
// @Router       /api/constraints [get]
func (h *AmountConstraintHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar límites de una restricción
// @Tags         constraints
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la restricción"
// @Param        body  body  dto.UpdateAmountConstraintRequest  true  "Nuevos límites (-1 = sin límite)"
// @Success      200   {object}  dto.AmountConstraintResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/constraints/{id} [put]
func (h *AmountConstraintHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAmountConstraintRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "límites inválidos: min y max deben ser >= -1 y min <= max"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "restricción no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar restricción
// @Tags         constraints
// @Security     Bearer
// @Param        id  path  string  true  "ID de la restricción"
// @Success      204
// @Router       /api/constraints/{id} [delete]
func (h *AmountConstraintHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
