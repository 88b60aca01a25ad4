package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Direcciones de movimiento. El delta de inventario es Direction * cantidad.
const (
	DirectionIn  = 1
	DirectionOut = -1
)

// DocumentType representa una categoría de documento de movimiento (recepción,
// despacho, ajuste de entrada, etc.) con una dirección firmada.
type DocumentType struct {
	ID        string
	Name      string // único
	Direction int    // +1 entrada, -1 salida
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidDirection indica si la dirección es exactamente +1 o -1.
func (t DocumentType) ValidDirection() bool {
	return t.Direction == DirectionIn || t.Direction == DirectionOut
}

// SignedAmount multiplica la cantidad por la dirección del tipo.
func (t DocumentType) SignedAmount(qty decimal.Decimal) decimal.Decimal {
	return qty.Mul(decimal.NewFromInt(int64(t.Direction)))
}

// String devuelve "Name In" o "Name Out".
func (t DocumentType) String() string {
	label := "Out"
	if t.Direction == DirectionIn {
		label = "In"
	}
	return fmt.Sprintf("%s %s", t.Name, label)
}
