package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// ContractorGroupRepository define el puerto de persistencia para el árbol de
// grupos de contratistas (misma mecánica de ruta materializada que Warehouse).
type ContractorGroupRepository interface {
	Create(g *entity.ContractorGroup) error
	GetByID(id string) (*entity.ContractorGroup, error)
	GetByName(name string) (*entity.ContractorGroup, error)
	List(limit, offset int) ([]*entity.ContractorGroup, error)
	Tree() ([]*entity.ContractorGroup, error)
	Children(parentID string) ([]*entity.ContractorGroup, error)
	HasChildren(id string) (bool, error)
	Update(g *entity.ContractorGroup) error
	UpdateSubtreePaths(oldPath, newPath string) error
	Delete(id string) error
}

// ContractorRepository define el puerto de persistencia para Contractor.
type ContractorRepository interface {
	Create(c *entity.Contractor) error
	GetByID(id string) (*entity.Contractor, error)
	GetByName(name string) (*entity.Contractor, error)
	List(limit, offset int) ([]*entity.Contractor, error)
	ListByGroup(groupID string, limit, offset int) ([]*entity.Contractor, error)
	Update(c *entity.Contractor) error
	Delete(id string) error
}
