package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// WarehouseUseCase casos de uso para el árbol de almacenes: CRUD, árbol
// anidado, hijos y reubicación de subárboles.
type WarehouseUseCase struct {
	repo repository.WarehouseRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo}
}

// Create crea un almacén; con ParentID vacío crea una raíz. El nombre es único
// en todo el árbol.
func (uc *WarehouseUseCase) Create(in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || strings.Contains(name, "/") {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByName(name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	parentPath := ""
	if in.ParentID != "" {
		parent, err := uc.repo.GetByID(in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, domain.ErrNotFound
		}
		parentPath = parent.Path
	}
	now := time.Now()
	w := &entity.Warehouse{
		ID:        uuid.New().String(),
		Name:      name,
		ParentID:  in.ParentID,
		Path:      entity.ChildPath(parentPath, name),
		CreatedAt: now,
		UpdatedAt: now,
	}
	w.Depth = entity.PathDepth(w.Path)
	if err := uc.repo.Create(w); err != nil {
		return nil, err
	}
	return toWarehouseResponse(w), nil
}

// GetByID obtiene un almacén por ID.
func (uc *WarehouseUseCase) GetByID(id string) (*dto.WarehouseResponse, error) {
	w, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, nil
	}
	return toWarehouseResponse(w), nil
}

// Update renombra un almacén y reescribe las rutas de todo su subárbol.
func (uc *WarehouseUseCase) Update(id string, in dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	w, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, nil
	}
	if in.Name == nil || *in.Name == w.Name {
		return toWarehouseResponse(w), nil
	}
	name := strings.TrimSpace(*in.Name)
	if name == "" || strings.Contains(name, "/") {
		return nil, domain.ErrInvalidInput
	}
	if existing, _ := uc.repo.GetByName(name); existing != nil && existing.ID != w.ID {
		return nil, domain.ErrDuplicate
	}
	oldPath := w.Path
	parentPath := strings.TrimSuffix(oldPath, "/"+w.Name)
	if w.ParentID == "" {
		parentPath = ""
	}
	w.Name = name
	w.Path = entity.ChildPath(parentPath, name)
	w.UpdatedAt = time.Now()
	if err := uc.repo.Update(w); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateSubtreePaths(oldPath, w.Path); err != nil {
		return nil, err
	}
	return toWarehouseResponse(w), nil
}

// Move reubica un almacén (y su subárbol) bajo otro padre; ParentID vacío lo
// convierte en raíz. ErrConflict si el destino está dentro del propio subárbol.
func (uc *WarehouseUseCase) Move(id string, in dto.MoveWarehouseRequest) (*dto.WarehouseResponse, error) {
	w, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, nil
	}
	parentPath := ""
	if in.ParentID != "" {
		if in.ParentID == w.ID {
			return nil, domain.ErrConflict
		}
		parent, err := uc.repo.GetByID(in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, domain.ErrNotFound
		}
		if entity.IsDescendantPath(parent.Path, w.Path) {
			return nil, domain.ErrConflict
		}
		parentPath = parent.Path
	}
	oldPath := w.Path
	w.ParentID = in.ParentID
	w.Path = entity.ChildPath(parentPath, w.Name)
	w.Depth = entity.PathDepth(w.Path)
	w.UpdatedAt = time.Now()
	if w.Path == oldPath {
		return toWarehouseResponse(w), nil
	}
	if err := uc.repo.Update(w); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateSubtreePaths(oldPath, w.Path); err != nil {
		return nil, err
	}
	return toWarehouseResponse(w), nil
}

// List lista almacenes en orden de árbol, con paginación.
func (uc *WarehouseUseCase) List(limit, offset int) (*dto.WarehouseListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWarehouseResponse(w))
	}
	return &dto.WarehouseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Children lista los hijos directos de un almacén (parentID vacío: raíces).
func (uc *WarehouseUseCase) Children(parentID string) ([]dto.WarehouseResponse, error) {
	list, err := uc.repo.Children(parentID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWarehouseResponse(w))
	}
	return items, nil
}

// Tree devuelve el árbol completo anidado. El listado plano viene ordenado
// por path, así que cada padre aparece antes que sus hijos.
func (uc *WarehouseUseCase) Tree() ([]*dto.WarehouseTreeNode, error) {
	flat, err := uc.repo.Tree()
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*dto.WarehouseTreeNode, len(flat))
	roots := make([]*dto.WarehouseTreeNode, 0)
	for _, w := range flat {
		node := &dto.WarehouseTreeNode{
			WarehouseResponse: *toWarehouseResponse(w),
			Children:          []*dto.WarehouseTreeNode{},
		}
		byID[w.ID] = node
		if w.ParentID == "" {
			roots = append(roots, node)
			continue
		}
		if parent, ok := byID[w.ParentID]; ok {
			parent.Children = append(parent.Children, node)
		} else {
			roots = append(roots, node) // padre fuera del listado: tratar como raíz
		}
	}
	return roots, nil
}

// Delete elimina un almacén. ErrConflict si tiene hijos o documentos (PROTECT).
func (uc *WarehouseUseCase) Delete(id string) error {
	has, err := uc.repo.HasChildren(id)
	if err != nil {
		return err
	}
	if has {
		return domain.ErrConflict
	}
	return uc.repo.Delete(id)
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	if w == nil {
		return nil
	}
	return &dto.WarehouseResponse{
		ID:        w.ID,
		Name:      w.Name,
		ParentID:  w.ParentID,
		Path:      w.Path,
		Depth:     w.Depth,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}
