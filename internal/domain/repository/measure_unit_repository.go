package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// MeasureUnitRepository define el puerto de persistencia para MeasureUnit.
type MeasureUnitRepository interface {
	Create(unit *entity.MeasureUnit) error
	GetByID(id string) (*entity.MeasureUnit, error)
	GetByName(name string) (*entity.MeasureUnit, error)
	List(limit, offset int) ([]*entity.MeasureUnit, error)
	Update(unit *entity.MeasureUnit) error
	Delete(id string) error
}
