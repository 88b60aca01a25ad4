package dto

import "time"

// CreateDocumentTypeRequest entrada para crear un tipo de documento.
// Direction debe ser exactamente +1 (entrada) o -1 (salida).
type CreateDocumentTypeRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=50"`
	Direction int    `json:"direction" validate:"required,oneof=-1 1"`
}

// UpdateDocumentTypeRequest entrada para actualizar un tipo de documento.
type UpdateDocumentTypeRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=50"`
	Direction *int    `json:"direction" validate:"omitempty,oneof=-1 1"`
}

// DocumentTypeResponse salida de un tipo de documento.
type DocumentTypeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Direction int       `json:"direction"`
	Display   string    `json:"display"` // "Name In" / "Name Out"
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DocumentTypeListResponse lista paginada ordenada por nombre.
type DocumentTypeListResponse struct {
	Items []DocumentTypeResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}
