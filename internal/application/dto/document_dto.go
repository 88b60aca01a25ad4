package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentLineRequest línea de un documento: bien y cantidad positiva.
type DocumentLineRequest struct {
	AssetID string          `json:"asset_id" validate:"required,uuid"`
	Amount  decimal.Decimal `json:"amount" validate:"required"`
}

// RegisterDocumentRequest body para POST /api/documents. Number vacío genera
// uno; Date vacía usa la fecha actual.
type RegisterDocumentRequest struct {
	Number       string                `json:"number" validate:"omitempty,max=50"`
	TypeID       string                `json:"type_id" validate:"required,uuid"`
	WarehouseID  string                `json:"warehouse_id" validate:"required,uuid"`
	ContractorID string                `json:"contractor_id" validate:"required,uuid"`
	Date         *time.Time            `json:"date"`
	Notes        string                `json:"notes"`
	Lines        []DocumentLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// TransferRequest body para POST /api/transfers: traslada bienes entre dos
// almacenes creando un par de documentos (salida + entrada) atómicamente.
type TransferRequest struct {
	FromWarehouseID string                `json:"from_warehouse_id" validate:"required,uuid"`
	ToWarehouseID   string                `json:"to_warehouse_id" validate:"required,uuid"`
	OutTypeID       string                `json:"out_type_id" validate:"required,uuid"`
	InTypeID        string                `json:"in_type_id" validate:"required,uuid"`
	ContractorID    string                `json:"contractor_id" validate:"required,uuid"`
	Date            *time.Time            `json:"date"`
	Notes           string                `json:"notes"`
	Lines           []DocumentLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// DocumentLineResponse línea de un documento en respuestas.
type DocumentLineResponse struct {
	ID           string          `json:"id"`
	AssetID      string          `json:"asset_id"`
	PartNumber   string          `json:"part_number"`
	AssetName    string          `json:"asset_name"`
	UnitName     string          `json:"unit_name"`
	Amount       decimal.Decimal `json:"amount"`
	SignedAmount decimal.Decimal `json:"signed_amount"` // amount * direction
}

// DocumentResponse salida de un documento con su detalle.
type DocumentResponse struct {
	ID             string                 `json:"id"`
	Number         string                 `json:"number"`
	TypeID         string                 `json:"type_id"`
	TypeName       string                 `json:"type_name"`
	Direction      int                    `json:"direction"`
	WarehouseID    string                 `json:"warehouse_id"`
	WarehouseName  string                 `json:"warehouse_name"`
	ContractorID   string                 `json:"contractor_id"`
	ContractorName string                 `json:"contractor_name"`
	TransferID     string                 `json:"transfer_id,omitempty"`
	Date           time.Time              `json:"date"`
	Notes          string                 `json:"notes,omitempty"`
	Lines          []DocumentLineResponse `json:"lines"`
	CreatedBy      string                 `json:"created_by"`
	CreatedAt      time.Time              `json:"created_at"`
}

// DocumentListResponse lista paginada de documentos (sin líneas).
type DocumentListResponse struct {
	Items []DocumentResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// TransferResponse salida de un traslado: los dos documentos creados.
type TransferResponse struct {
	TransferID string           `json:"transfer_id"`
	Out        DocumentResponse `json:"out"`
	In         DocumentResponse `json:"in"`
}
