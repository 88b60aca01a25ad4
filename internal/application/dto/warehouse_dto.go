package dto

import "time"

// CreateWarehouseRequest entrada para crear un almacén. ParentID vacío crea
// una raíz.
type CreateWarehouseRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=50"`
	ParentID string `json:"parent_id" validate:"omitempty,uuid"`
}

// UpdateWarehouseRequest entrada para renombrar un almacén (el rename
// reescribe las rutas de todo el subárbol).
type UpdateWarehouseRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=50"`
}

// MoveWarehouseRequest entrada para mover un almacén a otro padre.
// ParentID vacío lo convierte en raíz.
type MoveWarehouseRequest struct {
	ParentID string `json:"parent_id" validate:"omitempty,uuid"`
}

// WarehouseResponse salida de un almacén.
type WarehouseResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ParentID  string    `json:"parent_id,omitempty"`
	Path      string    `json:"path"`
	Depth     int       `json:"depth"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WarehouseListResponse lista paginada en orden de árbol.
type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

// WarehouseTreeNode nodo del árbol anidado para GET /warehouses/tree.
type WarehouseTreeNode struct {
	WarehouseResponse
	Children []*WarehouseTreeNode `json:"children"`
}
