package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

func TestDocumentType_ValidDirection(t *testing.T) {
	assert.True(t, entity.DocumentType{Direction: entity.DirectionIn}.ValidDirection())
	assert.True(t, entity.DocumentType{Direction: entity.DirectionOut}.ValidDirection())
	assert.False(t, entity.DocumentType{Direction: 0}.ValidDirection())
	assert.False(t, entity.DocumentType{Direction: 2}.ValidDirection())
}

// El delta de inventario es cantidad * dirección: positivo en entradas,
// negativo en salidas.
func TestDocumentType_SignedAmount(t *testing.T) {
	qty := decimal.NewFromFloat(2.5)

	in := entity.DocumentType{Direction: entity.DirectionIn}
	out := entity.DocumentType{Direction: entity.DirectionOut}

	assert.True(t, in.SignedAmount(qty).Equal(decimal.NewFromFloat(2.5)))
	assert.True(t, out.SignedAmount(qty).Equal(decimal.NewFromFloat(-2.5)))
}

func TestDocumentType_String(t *testing.T) {
	assert.Equal(t, "Recepción In", entity.DocumentType{Name: "Recepción", Direction: entity.DirectionIn}.String())
	assert.Equal(t, "Despacho Out", entity.DocumentType{Name: "Despacho", Direction: entity.DirectionOut}.String())
}

func TestDocument_SignedAmount(t *testing.T) {
	doc := entity.Document{Direction: entity.DirectionOut}
	line := entity.DocumentLine{Amount: decimal.NewFromInt(4)}

	assert.True(t, doc.SignedAmount(line).Equal(decimal.NewFromInt(-4)))
}
