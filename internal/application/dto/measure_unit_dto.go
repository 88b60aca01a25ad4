package dto

import "time"

// CreateMeasureUnitRequest entrada para crear una unidad de medida.
type CreateMeasureUnitRequest struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
}

// UpdateMeasureUnitRequest entrada para renombrar una unidad de medida.
type UpdateMeasureUnitRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=50"`
}

// MeasureUnitResponse salida de una unidad de medida.
type MeasureUnitResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MeasureUnitListResponse lista paginada de unidades, ordenada por nombre.
type MeasureUnitListResponse struct {
	Items []MeasureUnitResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
