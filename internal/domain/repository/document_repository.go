package repository

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// DocumentFilter filtros opcionales para listar documentos.
type DocumentFilter struct {
	WarehouseID  string
	TypeID       string
	ContractorID string
	From         time.Time
	To           time.Time
	Limit        int
	Offset       int
}

// DocumentRepository define el puerto de persistencia para Document y sus
// líneas. Los documentos registrados no se modifican ni se borran.
type DocumentRepository interface {
	// Create persiste el documento y todas sus líneas.
	Create(doc *entity.Document) error
	GetByID(id string) (*entity.Document, error)
	GetByNumber(number string) (*entity.Document, error)
	List(filter DocumentFilter) ([]*entity.Document, error)
}
