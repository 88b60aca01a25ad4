package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockBalanceResponse existencia de un bien en un almacén.
type StockBalanceResponse struct {
	WarehouseID   string          `json:"warehouse_id,omitempty"`
	WarehouseName string          `json:"warehouse_name,omitempty"`
	AssetID       string          `json:"asset_id"`
	PartNumber    string          `json:"part_number"`
	AssetName     string          `json:"asset_name"`
	UnitName      string          `json:"unit_name"`
	Quantity      decimal.Decimal `json:"quantity"`
}

// StockBalanceListResponse listado de existencias.
type StockBalanceListResponse struct {
	Items []StockBalanceResponse `json:"items"`
}

// ConstraintViolationResponse un bien fuera de su restricción de cantidad.
type ConstraintViolationResponse struct {
	AssetID    string          `json:"asset_id"`
	PartNumber string          `json:"part_number"`
	AssetName  string          `json:"asset_name"`
	Total      decimal.Decimal `json:"total"`
	MinAmount  int64           `json:"min_amount"` // -1 = sin límite
	MaxAmount  int64           `json:"max_amount"` // -1 = sin límite
	Kind       string          `json:"kind"`       // below_min | above_max
	CheckedAt  time.Time       `json:"checked_at"`
}

// ConstraintViolationListResponse reporte de violaciones.
type ConstraintViolationListResponse struct {
	Items []ConstraintViolationResponse `json:"items"`
}
