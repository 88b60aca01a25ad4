package entity_test

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// Los límites crudos en -1 significan "sin límite": el accessor debe devolver
// infinito en la dirección del límite.
func TestAmountConstraint_SinLimites_DevuelveInfinitos(t *testing.T) {
	c := entity.AmountConstraint{MinRaw: entity.Unbounded, MaxRaw: entity.Unbounded}

	assert.False(t, c.HasMin())
	assert.False(t, c.HasMax())
	assert.True(t, math.IsInf(c.MinAmount(), -1), "min sin límite debe ser -Inf")
	assert.True(t, math.IsInf(c.MaxAmount(), 1), "max sin límite debe ser +Inf")
}

func TestAmountConstraint_ConLimites_DevuelveValores(t *testing.T) {
	c := entity.AmountConstraint{MinRaw: 5, MaxRaw: 120}

	assert.True(t, c.HasMin())
	assert.True(t, c.HasMax())
	assert.Equal(t, float64(5), c.MinAmount())
	assert.Equal(t, float64(120), c.MaxAmount())
}

// Asignar infinito por el setter equivale a desactivar el límite.
func TestAmountConstraint_SetInfinito_Desactiva(t *testing.T) {
	c := entity.AmountConstraint{MinRaw: 5, MaxRaw: 120}

	c.SetMinAmount(math.Inf(-1))
	c.SetMaxAmount(math.Inf(1))

	assert.Equal(t, entity.Unbounded, c.MinRaw)
	assert.Equal(t, entity.Unbounded, c.MaxRaw)
}

func TestAmountConstraint_SetValores(t *testing.T) {
	var c entity.AmountConstraint

	c.SetMinAmount(3)
	c.SetMaxAmount(10)

	assert.Equal(t, int64(3), c.MinRaw)
	assert.Equal(t, int64(10), c.MaxRaw)
}

func TestAmountConstraint_Valid(t *testing.T) {
	cases := []struct {
		nombre   string
		min, max int64
		ok       bool
	}{
		{"ambos sin límite", -1, -1, true},
		{"solo min", 5, -1, true},
		{"solo max", -1, 100, true},
		{"rango coherente", 5, 100, true},
		{"min mayor que max", 100, 5, false},
		{"crudo por debajo de -1", -2, 10, false},
		{"min igual a max", 7, 7, true},
	}
	for _, tc := range cases {
		t.Run(tc.nombre, func(t *testing.T) {
			c := entity.AmountConstraint{MinRaw: tc.min, MaxRaw: tc.max}
			assert.Equal(t, tc.ok, c.Valid())
		})
	}
}

func TestAmountConstraint_Allows(t *testing.T) {
	c := entity.AmountConstraint{MinRaw: 5, MaxRaw: 100}

	assert.True(t, c.Allows(decimal.NewFromInt(5)), "el límite inferior es inclusivo")
	assert.True(t, c.Allows(decimal.NewFromInt(100)), "el límite superior es inclusivo")
	assert.False(t, c.Allows(decimal.NewFromInt(4)))
	assert.False(t, c.Allows(decimal.NewFromInt(101)))

	libre := entity.AmountConstraint{MinRaw: entity.Unbounded, MaxRaw: entity.Unbounded}
	assert.True(t, libre.Allows(decimal.NewFromInt(-999)), "sin límites nunca hay violación")
}

func TestAmountConstraint_String(t *testing.T) {
	c := entity.AmountConstraint{PartNumber: "PN-001", MinRaw: 5, MaxRaw: entity.Unbounded}
	assert.Equal(t, "PN-001 [5:+Inf]", c.String())
}
