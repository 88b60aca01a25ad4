package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// MaterialAssetRepository define el puerto de persistencia para MaterialAsset.
// Las lecturas devuelven UnitName resuelto (JOIN con measure_units).
type MaterialAssetRepository interface {
	Create(asset *entity.MaterialAsset) error
	GetByID(id string) (*entity.MaterialAsset, error)
	GetByPartNumber(pn string) (*entity.MaterialAsset, error)
	List(limit, offset int) ([]*entity.MaterialAsset, error)
	Update(asset *entity.MaterialAsset) error
	Delete(id string) error
}
