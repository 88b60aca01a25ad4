package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Document representa un movimiento de inventario registrado: un tipo (con
// dirección), un almacén, un contratista y un detalle de líneas por bien.
// Los documentos son inmutables una vez registrados.
type Document struct {
	ID             string
	Number         string // único, generado si no se indica
	TypeID         string
	TypeName       string // denormalizado en lecturas
	Direction      int    // denormalizado del tipo al registrar
	WarehouseID    string
	WarehouseName  string
	ContractorID   string
	ContractorName string
	TransferID     string // agrupa el par de documentos de un traslado
	Date           time.Time
	Notes          string
	Lines          []DocumentLine
	CreatedBy      string
	CreatedAt      time.Time
}

// DocumentLine es el detalle de un documento: cantidad (siempre positiva) de
// un bien material. El delta firmado sale de la dirección del documento.
type DocumentLine struct {
	ID         string
	DocumentID string
	AssetID    string
	PartNumber string // denormalizado en lecturas
	AssetName  string
	UnitName   string
	Amount     decimal.Decimal // > 0
}

// SignedAmount devuelve el delta de inventario de la línea según la dirección
// del documento.
func (d Document) SignedAmount(l DocumentLine) decimal.Decimal {
	return l.Amount.Mul(decimal.NewFromInt(int64(d.Direction)))
}
