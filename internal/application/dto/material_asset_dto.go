package dto

import "time"

// CreateMaterialAssetRequest entrada para crear un bien material.
type CreateMaterialAssetRequest struct {
	PartNumber  string `json:"part_number" validate:"required,min=1,max=150"`
	Name        string `json:"name" validate:"required,min=1,max=250"`
	UnitID      string `json:"unit_id" validate:"required,uuid"`
	Description string `json:"description"`
}

// UpdateMaterialAssetRequest entrada para actualizar un bien material.
// El número de parte no cambia después de creado.
type UpdateMaterialAssetRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=250"`
	UnitID      *string `json:"unit_id" validate:"omitempty,uuid"`
	Description *string `json:"description"`
}

// MaterialAssetResponse salida de un bien material.
type MaterialAssetResponse struct {
	ID          string    `json:"id"`
	PartNumber  string    `json:"part_number"`
	Name        string    `json:"name"`
	UnitID      string    `json:"unit_id"`
	UnitName    string    `json:"unit_name"`
	Description string    `json:"description,omitempty"`
	Display     string    `json:"display"` // "PartNumber, Name [Unidad]"
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MaterialAssetListResponse lista paginada ordenada por (part_number, name).
type MaterialAssetListResponse struct {
	Items []MaterialAssetResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}
