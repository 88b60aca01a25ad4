package dto

import "time"

// CreateAmountConstraintRequest entrada para crear la restricción de un bien.
// -1 (o el campo ausente) significa "sin límite" en esa dirección.
type CreateAmountConstraintRequest struct {
	AssetID   string `json:"asset_id" validate:"required,uuid"`
	MinAmount *int64 `json:"min_amount" validate:"omitempty,gte=-1"`
	MaxAmount *int64 `json:"max_amount" validate:"omitempty,gte=-1"`
}

// UpdateAmountConstraintRequest entrada para actualizar límites.
type UpdateAmountConstraintRequest struct {
	MinAmount *int64 `json:"min_amount" validate:"omitempty,gte=-1"`
	MaxAmount *int64 `json:"max_amount" validate:"omitempty,gte=-1"`
}

// AmountConstraintResponse salida de una restricción. Los campos crudos llevan
// el centinela -1; Display usa -Inf/+Inf para los lados sin límite.
type AmountConstraintResponse struct {
	ID         string    `json:"id"`
	AssetID    string    `json:"asset_id"`
	PartNumber string    `json:"part_number"`
	MinAmount  int64     `json:"min_amount"`
	MaxAmount  int64     `json:"max_amount"`
	Display    string    `json:"display"` // "PartNumber [min:max]"
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// AmountConstraintListResponse lista paginada ordenada por bien.
type AmountConstraintListResponse struct {
	Items []AmountConstraintResponse `json:"items"`
	Page  PageResponse               `json:"page"`
}
