package entity

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// MaterialAsset representa un bien material del almacén. Todo bien tiene un
// número de parte único; la cantidad se expresa en su unidad de medida.
type MaterialAsset struct {
	ID          string
	PartNumber  string // único, normalizado con NormalizePartNumber
	Name        string
	UnitID      string
	UnitName    string // denormalizado en lecturas (JOIN con measure_units)
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NormalizePartNumber recorta espacios y aplica normalización Unicode NFC
// para que la unicidad del número de parte no dependa de la forma de entrada.
func NormalizePartNumber(pn string) string {
	return norm.NFC.String(strings.TrimSpace(pn))
}

// String devuelve "PartNumber, Name [Unidad]".
func (a MaterialAsset) String() string {
	return fmt.Sprintf("%s, %s [%s]", a.PartNumber, a.Name, a.UnitName)
}
