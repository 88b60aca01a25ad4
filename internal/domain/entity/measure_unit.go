package entity

import "time"

// MeasureUnit representa una unidad de medida en la que se expresa la cantidad
// de un bien material (kg, unidad, metro, litro, etc.). El nombre es único.
type MeasureUnit struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// String devuelve la representación para listados y documentos.
func (u MeasureUnit) String() string {
	return u.Name
}
