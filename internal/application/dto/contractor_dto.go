package dto

import "time"

// CreateContractorGroupRequest entrada para crear un grupo de contratistas.
type CreateContractorGroupRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	ParentID string `json:"parent_id" validate:"omitempty,uuid"`
}

// UpdateContractorGroupRequest entrada para renombrar un grupo.
type UpdateContractorGroupRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=100"`
}

// MoveContractorGroupRequest entrada para mover un grupo a otro padre.
type MoveContractorGroupRequest struct {
	ParentID string `json:"parent_id" validate:"omitempty,uuid"`
}

// ContractorGroupResponse salida de un grupo de contratistas.
type ContractorGroupResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ParentID  string    `json:"parent_id,omitempty"`
	Path      string    `json:"path"`
	Depth     int       `json:"depth"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContractorGroupListResponse lista paginada en orden de árbol.
type ContractorGroupListResponse struct {
	Items []ContractorGroupResponse `json:"items"`
	Page  PageResponse              `json:"page"`
}

// ContractorGroupTreeNode nodo del árbol anidado para GET /contractor-groups/tree.
type ContractorGroupTreeNode struct {
	ContractorGroupResponse
	Children []*ContractorGroupTreeNode `json:"children"`
}

// CreateContractorRequest entrada para crear un contratista.
type CreateContractorRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	GroupID string `json:"group_id" validate:"omitempty,uuid"`
	TaxID   string `json:"tax_id" validate:"omitempty,max=50"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone" validate:"omitempty,max=50"`
	Notes   string `json:"notes"`
}

// UpdateContractorRequest entrada para actualizar un contratista.
type UpdateContractorRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	GroupID *string `json:"group_id" validate:"omitempty"`
	TaxID   *string `json:"tax_id" validate:"omitempty,max=50"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone" validate:"omitempty,max=50"`
	Notes   *string `json:"notes"`
}

// ContractorResponse salida de un contratista.
type ContractorResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	GroupID   string    `json:"group_id,omitempty"`
	GroupName string    `json:"group_name,omitempty"`
	TaxID     string    `json:"tax_id,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContractorListResponse lista paginada ordenada por nombre.
type ContractorListResponse struct {
	Items []ContractorResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
