package entity

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Unbounded es el valor centinela persistido cuando un límite no aplica.
const Unbounded int64 = -1

// AmountConstraint define el mínimo y máximo de existencias permitidas para un
// bien material (uno por bien). Los campos crudos guardan -1 como "sin límite";
// los accessors lo exponen como infinito matemático en la dirección del límite.
type AmountConstraint struct {
	ID         string
	AssetID    string
	PartNumber string // denormalizado en lecturas
	MinRaw     int64
	MaxRaw     int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// HasMin indica si existe límite inferior.
func (c AmountConstraint) HasMin() bool { return c.MinRaw >= 0 }

// HasMax indica si existe límite superior.
func (c AmountConstraint) HasMax() bool { return c.MaxRaw >= 0 }

// MinAmount devuelve el límite inferior; -Inf si no está acotado.
func (c AmountConstraint) MinAmount() float64 {
	if !c.HasMin() {
		return math.Inf(-1)
	}
	return float64(c.MinRaw)
}

// MaxAmount devuelve el límite superior; +Inf si no está acotado.
func (c AmountConstraint) MaxAmount() float64 {
	if !c.HasMax() {
		return math.Inf(1)
	}
	return float64(c.MaxRaw)
}

// SetMinAmount fija el límite inferior; un valor infinito lo desactiva (-1).
func (c *AmountConstraint) SetMinAmount(v float64) {
	if math.IsInf(v, 0) {
		c.MinRaw = Unbounded
		return
	}
	c.MinRaw = int64(v)
}

// SetMaxAmount fija el límite superior; un valor infinito lo desactiva (-1).
func (c *AmountConstraint) SetMaxAmount(v float64) {
	if math.IsInf(v, 0) {
		c.MaxRaw = Unbounded
		return
	}
	c.MaxRaw = int64(v)
}

// Valid verifica la coherencia de los límites crudos: nada por debajo de -1 y,
// si ambos están acotados, min <= max.
func (c AmountConstraint) Valid() bool {
	if c.MinRaw < Unbounded || c.MaxRaw < Unbounded {
		return false
	}
	if c.HasMin() && c.HasMax() && c.MinRaw > c.MaxRaw {
		return false
	}
	return true
}

// Allows indica si una existencia total cumple la restricción. Un lado sin
// límite nunca genera violación.
func (c AmountConstraint) Allows(qty decimal.Decimal) bool {
	if c.HasMin() && qty.LessThan(decimal.NewFromInt(c.MinRaw)) {
		return false
	}
	if c.HasMax() && qty.GreaterThan(decimal.NewFromInt(c.MaxRaw)) {
		return false
	}
	return true
}

// String devuelve "PartNumber [min:max]" usando -Inf/+Inf para lados sin límite.
func (c AmountConstraint) String() string {
	return fmt.Sprintf("%s [%s:%s]", c.PartNumber, boundString(c.MinAmount()), boundString(c.MaxAmount()))
}

func boundString(v float64) string {
	if math.IsInf(v, 0) {
		return fmt.Sprintf("%v", v) // "+Inf" / "-Inf"
	}
	return fmt.Sprintf("%d", int64(v))
}
