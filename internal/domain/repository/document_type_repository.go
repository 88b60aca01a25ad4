package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// DocumentTypeRepository define el puerto de persistencia para DocumentType.
type DocumentTypeRepository interface {
	Create(t *entity.DocumentType) error
	GetByID(id string) (*entity.DocumentType, error)
	GetByName(name string) (*entity.DocumentType, error)
	List(limit, offset int) ([]*entity.DocumentType, error)
	Update(t *entity.DocumentType) error
	Delete(id string) error
}
