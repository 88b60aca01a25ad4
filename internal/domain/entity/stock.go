package entity

import "github.com/shopspring/decimal"

// StockBalance es la existencia actual de un bien en un almacén, derivada de
// SUM(direction * amount) sobre las líneas de documento.
type StockBalance struct {
	WarehouseID   string
	WarehouseName string
	AssetID       string
	PartNumber    string
	AssetName     string
	UnitName      string
	Quantity      decimal.Decimal
}

// AssetTotal es la existencia total de un bien sumada en todos los almacenes,
// junto con los límites crudos de su restricción (si existe).
type AssetTotal struct {
	AssetID    string
	PartNumber string
	AssetName  string
	UnitName   string
	Total      decimal.Decimal
	MinRaw     int64
	MaxRaw     int64
}

// Tipos de violación de restricción de cantidad.
const (
	ViolationBelowMin = "below_min"
	ViolationAboveMax = "above_max"
)
