package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// MaterialAssetUseCase casos de uso CRUD para bienes materiales.
type MaterialAssetUseCase struct {
	repo     repository.MaterialAssetRepository
	unitRepo repository.MeasureUnitRepository
}

// NewMaterialAssetUseCase construye el caso de uso.
func NewMaterialAssetUseCase(repo repository.MaterialAssetRepository, unitRepo repository.MeasureUnitRepository) *MaterialAssetUseCase {
	return &MaterialAssetUseCase{repo: repo, unitRepo: unitRepo}
}

// Create crea un bien material. El número de parte se normaliza (NFC + trim) y
// debe ser único; la unidad debe existir.
func (uc *MaterialAssetUseCase) Create(in dto.CreateMaterialAssetRequest) (*dto.MaterialAssetResponse, error) {
	pn := entity.NormalizePartNumber(in.PartNumber)
	if pn == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByPartNumber(pn)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	unit, err := uc.unitRepo.GetByID(in.UnitID)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	asset := &entity.MaterialAsset{
		ID:          uuid.New().String(),
		PartNumber:  pn,
		Name:        in.Name,
		UnitID:      unit.ID,
		UnitName:    unit.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(asset); err != nil {
		return nil, err
	}
	return toMaterialAssetResponse(asset), nil
}

// GetByID obtiene un bien por ID.
func (uc *MaterialAssetUseCase) GetByID(id string) (*dto.MaterialAssetResponse, error) {
	asset, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, nil
	}
	return toMaterialAssetResponse(asset), nil
}

// Update actualiza nombre, unidad o descripción. El número de parte es fijo.
func (uc *MaterialAssetUseCase) Update(id string, in dto.UpdateMaterialAssetRequest) (*dto.MaterialAssetResponse, error) {
	asset, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		asset.Name = *in.Name
	}
	if in.UnitID != nil {
		unit, err := uc.unitRepo.GetByID(*in.UnitID)
		if err != nil {
			return nil, err
		}
		if unit == nil {
			return nil, domain.ErrNotFound
		}
		asset.UnitID = unit.ID
		asset.UnitName = unit.Name
	}
	if in.Description != nil {
		asset.Description = *in.Description
	}
	asset.UpdatedAt = time.Now()
	if err := uc.repo.Update(asset); err != nil {
		return nil, err
	}
	return toMaterialAssetResponse(asset), nil
}

// List lista bienes ordenados por (part_number, name), con paginación.
func (uc *MaterialAssetUseCase) List(limit, offset int) (*dto.MaterialAssetListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MaterialAssetResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toMaterialAssetResponse(a))
	}
	return &dto.MaterialAssetListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un bien. ErrConflict si tiene restricción o líneas de
// documento (FK RESTRICT).
func (uc *MaterialAssetUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toMaterialAssetResponse(a *entity.MaterialAsset) *dto.MaterialAssetResponse {
	if a == nil {
		return nil
	}
	return &dto.MaterialAssetResponse{
		ID:          a.ID,
		PartNumber:  a.PartNumber,
		Name:        a.Name,
		UnitID:      a.UnitID,
		UnitName:    a.UnitName,
		Description: a.Description,
		Display:     a.String(),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
