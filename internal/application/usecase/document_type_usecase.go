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

// DocumentTypeUseCase casos de uso CRUD para tipos de documento.
type DocumentTypeUseCase struct {
	repo repository.DocumentTypeRepository
}

// NewDocumentTypeUseCase construye el caso de uso.
func NewDocumentTypeUseCase(repo repository.DocumentTypeRepository) *DocumentTypeUseCase {
	return &DocumentTypeUseCase{repo: repo}
}

// Create crea un tipo de documento. La dirección debe ser +1 o -1 exacto.
func (uc *DocumentTypeUseCase) Create(in dto.CreateDocumentTypeRequest) (*dto.DocumentTypeResponse, error) {
	name := strings.TrimSpace(in.Name)
	t := &entity.DocumentType{
		ID:        uuid.New().String(),
		Name:      name,
		Direction: in.Direction,
	}
	if name == "" || !t.ValidDirection() {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByName(name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now
	if err := uc.repo.Create(t); err != nil {
		return nil, err
	}
	return toDocumentTypeResponse(t), nil
}

// GetByID obtiene un tipo por ID.
func (uc *DocumentTypeUseCase) GetByID(id string) (*dto.DocumentTypeResponse, error) {
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	return toDocumentTypeResponse(t), nil
}

// Update actualiza nombre o dirección de un tipo.
func (uc *DocumentTypeUseCase) Update(id string, in dto.UpdateDocumentTypeRequest) (*dto.DocumentTypeResponse, error) {
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		t.Name = name
	}
	if in.Direction != nil {
		t.Direction = *in.Direction
		if !t.ValidDirection() {
			return nil, domain.ErrInvalidInput
		}
	}
	t.UpdatedAt = time.Now()
	if err := uc.repo.Update(t); err != nil {
		return nil, err
	}
	return toDocumentTypeResponse(t), nil
}

// List lista tipos ordenados por nombre, con paginación.
func (uc *DocumentTypeUseCase) List(limit, offset int) (*dto.DocumentTypeListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DocumentTypeResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toDocumentTypeResponse(t))
	}
	return &dto.DocumentTypeListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un tipo. ErrConflict si hay documentos registrados con él.
func (uc *DocumentTypeUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toDocumentTypeResponse(t *entity.DocumentType) *dto.DocumentTypeResponse {
	if t == nil {
		return nil
	}
	return &dto.DocumentTypeResponse{
		ID:        t.ID,
		Name:      t.Name,
		Direction: t.Direction,
		Display:   t.String(),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
