package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/stock"
	"github.com/jhoicas/almacen-api/internal/domain"
)

// StockHandler maneja las consultas de existencias (protegido).
type StockHandler struct {
	uc *stock.BalanceUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.BalanceUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Balances godoc
// @Summary      Existencias por almacén y bien
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        warehouse_id  query  string  false  "Filtrar por almacén"
// @Param        subtree       query  bool    false  "Incluir el subárbol del almacén"
// @Success      200  {object}  dto.StockBalanceListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/balances [get]
func (h *StockHandler) Balances(c *fiber.Ctx) error {
	warehouseID := c.Query("warehouse_id")
	subtree := c.QueryBool("subtree", false)
	if subtree && warehouseID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "subtree requiere warehouse_id"})
	}
	out, err := h.uc.Balances(warehouseID, subtree)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "almacén no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Violations godoc
// @Summary      Bienes fuera de su restricción de cantidad
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ConstraintViolationListResponse
// @Router       /api/stock/violations [get]
func (h *StockHandler) Violations(c *fiber.Ctx) error {
	out, err := h.uc.Violations()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
