package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// AmountConstraintRepository define el puerto de persistencia para
// AmountConstraint (una restricción por bien).
type AmountConstraintRepository interface {
	Create(c *entity.AmountConstraint) error
	GetByID(id string) (*entity.AmountConstraint, error)
	GetByAsset(assetID string) (*entity.AmountConstraint, error)
	List(limit, offset int) ([]*entity.AmountConstraint, error)
	Update(c *entity.AmountConstraint) error
	Delete(id string) error
}
