package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// AmountConstraintUseCase casos de uso CRUD para restricciones de cantidad
// (una por bien; -1 crudo = sin límite).
type AmountConstraintUseCase struct {
	repo      repository.AmountConstraintRepository
	assetRepo repository.MaterialAssetRepository
}

// NewAmountConstraintUseCase construye el caso de uso.
func NewAmountConstraintUseCase(repo repository.AmountConstraintRepository, assetRepo repository.MaterialAssetRepository) *AmountConstraintUseCase {
	return &AmountConstraintUseCase{repo: repo, assetRepo: assetRepo}
}

// Create crea la restricción de un bien. ErrDuplicate si el bien ya tiene una;
// ErrInvalidInput si los límites son incoherentes.
func (uc *AmountConstraintUseCase) Create(in dto.CreateAmountConstraintRequest) (*dto.AmountConstraintResponse, error) {
	asset, err := uc.assetRepo.GetByID(in.AssetID)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, domain.ErrNotFound
	}
	existing, _ := uc.repo.GetByAsset(in.AssetID)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	c := &entity.AmountConstraint{
		ID:         uuid.New().String(),
		AssetID:    asset.ID,
		PartNumber: asset.PartNumber,
		MinRaw:     entity.Unbounded,
		MaxRaw:     entity.Unbounded,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if in.MinAmount != nil {
		c.MinRaw = *in.MinAmount
	}
	if in.MaxAmount != nil {
		c.MaxRaw = *in.MaxAmount
	}
	if !c.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return toAmountConstraintResponse(c), nil
}

// GetByID obtiene una restricción por ID.
func (uc *AmountConstraintUseCase) GetByID(id string) (*dto.AmountConstraintResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	return toAmountConstraintResponse(c), nil
}

// GetByAsset obtiene la restricción de un bien.
func (uc *AmountConstraintUseCase) GetByAsset(assetID string) (*dto.AmountConstraintResponse, error) {
	c, err := uc.repo.GetByAsset(assetID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	return toAmountConstraintResponse(c), nil
}

// Update actualiza los límites de una restricción.
func (uc *AmountConstraintUseCase) Update(id string, in dto.UpdateAmountConstraintRequest) (*dto.AmountConstraintResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	if in.MinAmount != nil {
		c.MinRaw = *in.MinAmount
	}
	if in.MaxAmount != nil {
		c.MaxRaw = *in.MaxAmount
	}
	if !c.Valid() {
		return nil, domain.ErrInvalidInput
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	return toAmountConstraintResponse(c), nil
}

// List lista restricciones ordenadas por bien, con paginación.
func (uc *AmountConstraintUseCase) List(limit, offset int) (*dto.AmountConstraintListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AmountConstraintResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toAmountConstraintResponse(c))
	}
	return &dto.AmountConstraintListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una restricción.
func (uc *AmountConstraintUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toAmountConstraintResponse(c *entity.AmountConstraint) *dto.AmountConstraintResponse {
	if c == nil {
		return nil
	}
	return &dto.AmountConstraintResponse{
		ID:         c.ID,
		AssetID:    c.AssetID,
		PartNumber: c.PartNumber,
		MinAmount:  c.MinRaw,
		MaxAmount:  c.MaxRaw,
		Display:    c.String(),
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
