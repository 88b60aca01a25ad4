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

// MeasureUnitUseCase casos de uso CRUD para unidades de medida.
type MeasureUnitUseCase struct {
	repo repository.MeasureUnitRepository
}

// NewMeasureUnitUseCase construye el caso de uso.
func NewMeasureUnitUseCase(repo repository.MeasureUnitRepository) *MeasureUnitUseCase {
	return &MeasureUnitUseCase{repo: repo}
}

// Create crea una unidad de medida. Devuelve domain.ErrDuplicate si el nombre ya existe.
func (uc *MeasureUnitUseCase) Create(in dto.CreateMeasureUnitRequest) (*dto.MeasureUnitResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByName(name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	unit := &entity.MeasureUnit{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(unit); err != nil {
		return nil, err
	}
	return toMeasureUnitResponse(unit), nil
}

// GetByID obtiene una unidad por ID.
func (uc *MeasureUnitUseCase) GetByID(id string) (*dto.MeasureUnitResponse, error) {
	unit, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, nil
	}
	return toMeasureUnitResponse(unit), nil
}

// Update renombra una unidad.
func (uc *MeasureUnitUseCase) Update(id string, in dto.UpdateMeasureUnitRequest) (*dto.MeasureUnitResponse, error) {
	unit, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, nil
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		unit.Name = name
	}
	unit.UpdatedAt = time.Now()
	if err := uc.repo.Update(unit); err != nil {
		return nil, err
	}
	return toMeasureUnitResponse(unit), nil
}

// List lista unidades ordenadas por nombre, con paginación.
func (uc *MeasureUnitUseCase) List(limit, offset int) (*dto.MeasureUnitListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MeasureUnitResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toMeasureUnitResponse(u))
	}
	return &dto.MeasureUnitListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una unidad. Devuelve domain.ErrConflict si hay bienes que la
// referencian (FK RESTRICT).
func (uc *MeasureUnitUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toMeasureUnitResponse(u *entity.MeasureUnit) *dto.MeasureUnitResponse {
	if u == nil {
		return nil
	}
	return &dto.MeasureUnitResponse{
		ID:        u.ID,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
