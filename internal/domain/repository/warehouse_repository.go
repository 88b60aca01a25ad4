package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para el árbol de
// almacenes. El orden de listado es siempre por Path (recorrido del árbol con
// hermanos alfabéticos).
type WarehouseRepository interface {
	Create(w *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	GetByName(name string) (*entity.Warehouse, error)
	List(limit, offset int) ([]*entity.Warehouse, error)
	Tree() ([]*entity.Warehouse, error)
	Children(parentID string) ([]*entity.Warehouse, error)
	HasChildren(id string) (bool, error)
	// Update persiste nombre, padre, path y profundidad del propio nodo.
	Update(w *entity.Warehouse) error
	// UpdateSubtreePaths reescribe el prefijo de ruta de todos los
	// descendientes tras un rename o un move del nodo raíz del subárbol.
	UpdateSubtreePaths(oldPath, newPath string) error
	Delete(id string) error
}
