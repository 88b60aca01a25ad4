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

// ContractorGroupUseCase casos de uso para el árbol de grupos de contratistas.
// Misma mecánica de ruta materializada que WarehouseUseCase.
type ContractorGroupUseCase struct {
	repo repository.ContractorGroupRepository
}

// NewContractorGroupUseCase construye el caso de uso.
func NewContractorGroupUseCase(repo repository.ContractorGroupRepository) *ContractorGroupUseCase {
	return &ContractorGroupUseCase{repo: repo}
}

// Create crea un grupo; con ParentID vacío crea una raíz.
func (uc *ContractorGroupUseCase) Create(in dto.CreateContractorGroupRequest) (*dto.ContractorGroupResponse, error) {
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
	g := &entity.ContractorGroup{
		ID:        uuid.New().String(),
		Name:      name,
		ParentID:  in.ParentID,
		Path:      entity.ChildPath(parentPath, name),
		CreatedAt: now,
		UpdatedAt: now,
	}
	g.Depth = entity.PathDepth(g.Path)
	if err := uc.repo.Create(g); err != nil {
		return nil, err
	}
	return toContractorGroupResponse(g), nil
}

// GetByID obtiene un grupo por ID.
func (uc *ContractorGroupUseCase) GetByID(id string) (*dto.ContractorGroupResponse, error) {
	g, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, nil
	}
	return toContractorGroupResponse(g), nil
}

// Update renombra un grupo y reescribe las rutas de su subárbol.
func (uc *ContractorGroupUseCase) Update(id string, in dto.UpdateContractorGroupRequest) (*dto.ContractorGroupResponse, error) {
	g, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, nil
	}
	if in.Name == nil || *in.Name == g.Name {
		return toContractorGroupResponse(g), nil
	}
	name := strings.TrimSpace(*in.Name)
	if name == "" || strings.Contains(name, "/") {
		return nil, domain.ErrInvalidInput
	}
	if existing, _ := uc.repo.GetByName(name); existing != nil && existing.ID != g.ID {
		return nil, domain.ErrDuplicate
	}
	oldPath := g.Path
	parentPath := strings.TrimSuffix(oldPath, "/"+g.Name)
	if g.ParentID == "" {
		parentPath = ""
	}
	g.Name = name
	g.Path = entity.ChildPath(parentPath, name)
	g.UpdatedAt = time.Now()
	if err := uc.repo.Update(g); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateSubtreePaths(oldPath, g.Path); err != nil {
		return nil, err
	}
	return toContractorGroupResponse(g), nil
}

// Move reubica un grupo bajo otro padre. ErrConflict si el destino cae dentro
// del propio subárbol.
func (uc *ContractorGroupUseCase) Move(id string, in dto.MoveContractorGroupRequest) (*dto.ContractorGroupResponse, error) {
	g, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, nil
	}
	parentPath := ""
	if in.ParentID != "" {
		if in.ParentID == g.ID {
			return nil, domain.ErrConflict
		}
		parent, err := uc.repo.GetByID(in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, domain.ErrNotFound
		}
		if entity.IsDescendantPath(parent.Path, g.Path) {
			return nil, domain.ErrConflict
		}
		parentPath = parent.Path
	}
	oldPath := g.Path
	g.ParentID = in.ParentID
	g.Path = entity.ChildPath(parentPath, g.Name)
	g.Depth = entity.PathDepth(g.Path)
	g.UpdatedAt = time.Now()
	if g.Path == oldPath {
		return toContractorGroupResponse(g), nil
	}
	if err := uc.repo.Update(g); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateSubtreePaths(oldPath, g.Path); err != nil {
		return nil, err
	}
	return toContractorGroupResponse(g), nil
}

// List lista grupos en orden de árbol, con paginación.
func (uc *ContractorGroupUseCase) List(limit, offset int) (*dto.ContractorGroupListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ContractorGroupResponse, 0, len(list))
	for _, g := range list {
		items = append(items, *toContractorGroupResponse(g))
	}
	return &dto.ContractorGroupListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Children lista los hijos directos (parentID vacío: raíces).
func (uc *ContractorGroupUseCase) Children(parentID string) ([]dto.ContractorGroupResponse, error) {
	list, err := uc.repo.Children(parentID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ContractorGroupResponse, 0, len(list))
	for _, g := range list {
		items = append(items, *toContractorGroupResponse(g))
	}
	return items, nil
}

// Tree devuelve el árbol completo anidado.
func (uc *ContractorGroupUseCase) Tree() ([]*dto.ContractorGroupTreeNode, error) {
	flat, err := uc.repo.Tree()
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*dto.ContractorGroupTreeNode, len(flat))
	roots := make([]*dto.ContractorGroupTreeNode, 0)
	for _, g := range flat {
		node := &dto.ContractorGroupTreeNode{
			ContractorGroupResponse: *toContractorGroupResponse(g),
			Children:                []*dto.ContractorGroupTreeNode{},
		}
		byID[g.ID] = node
		if g.ParentID == "" {
			roots = append(roots, node)
			continue
		}
		if parent, ok := byID[g.ParentID]; ok {
			parent.Children = append(parent.Children, node)
		} else {
			roots = append(roots, node)
		}
	}
	return roots, nil
}

// Delete elimina un grupo. ErrConflict si tiene hijos o contratistas (PROTECT).
func (uc *ContractorGroupUseCase) Delete(id string) error {
	has, err := uc.repo.HasChildren(id)
	if err != nil {
		return err
	}
	if has {
		return domain.ErrConflict
	}
	return uc.repo.Delete(id)
}

func toContractorGroupResponse(g *entity.ContractorGroup) *dto.ContractorGroupResponse {
	if g == nil {
		return nil
	}
	return &dto.ContractorGroupResponse{
		ID:        g.ID,
		Name:      g.Name,
		ParentID:  g.ParentID,
		Path:      g.Path,
		Depth:     g.Depth,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}
