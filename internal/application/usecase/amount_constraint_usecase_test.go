package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// fakeConstraintRepo implementación en memoria del puerto.
type fakeConstraintRepo struct {
	byID map[string]*entity.AmountConstraint
}

func newFakeConstraintRepo() *fakeConstraintRepo {
	return &fakeConstraintRepo{byID: make(map[string]*entity.AmountConstraint)}
}

func (r *fakeConstraintRepo) Create(c *entity.AmountConstraint) error {
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *fakeConstraintRepo) GetByID(id string) (*entity.AmountConstraint, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeConstraintRepo) GetByAsset(assetID string) (*entity.AmountConstraint, error) {
	for _, c := range r.byID {
		if c.AssetID == assetID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeConstraintRepo) List(limit, offset int) ([]*entity.AmountConstraint, error) {
	out := make([]*entity.AmountConstraint, 0, len(r.byID))
	for _, c := range r.byID {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeConstraintRepo) Update(c *entity.AmountConstraint) error {
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *fakeConstraintRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

// fakeAssetRepo devuelve siempre los mismos bienes precargados.
type fakeAssetRepo struct {
	byID map[string]*entity.MaterialAsset
}

func (r *fakeAssetRepo) Create(a *entity.MaterialAsset) error { r.byID[a.ID] = a; return nil }
func (r *fakeAssetRepo) GetByID(id string) (*entity.MaterialAsset, error) {
	return r.byID[id], nil
}
func (r *fakeAssetRepo) GetByPartNumber(pn string) (*entity.MaterialAsset, error) {
	for _, a := range r.byID {
		if a.PartNumber == pn {
			return a, nil
		}
	}
	return nil, nil
}
func (r *fakeAssetRepo) List(limit, offset int) ([]*entity.MaterialAsset, error) { return nil, nil }
func (r *fakeAssetRepo) Update(a *entity.MaterialAsset) error                    { return nil }
func (r *fakeAssetRepo) Delete(id string) error                                  { return nil }

const testAssetID = "00000000-0000-0000-0000-0000000000aa"

func newConstraintUC() *usecase.AmountConstraintUseCase {
	assets := &fakeAssetRepo{byID: map[string]*entity.MaterialAsset{
		testAssetID: {ID: testAssetID, PartNumber: "PN-001", Name: "Tornillo M5"},
	}}
	return usecase.NewAmountConstraintUseCase(newFakeConstraintRepo(), assets)
}

func int64Ptr(v int64) *int64 { return &v }

func TestAmountConstraintUseCase_Create_SinLimitesPorDefecto(t *testing.T) {
	uc := newConstraintUC()

	out, err := uc.Create(dto.CreateAmountConstraintRequest{AssetID: testAssetID})
	require.NoError(t, err)

	assert.Equal(t, entity.Unbounded, out.MinAmount)
	assert.Equal(t, entity.Unbounded, out.MaxAmount)
	assert.Equal(t, "PN-001 [-Inf:+Inf]", out.Display)
}

func TestAmountConstraintUseCase_Create_UnaPorBien(t *testing.T) {
	uc := newConstraintUC()

	_, err := uc.Create(dto.CreateAmountConstraintRequest{AssetID: testAssetID})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateAmountConstraintRequest{AssetID: testAssetID, MinAmount: int64Ptr(1)})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "un bien admite a lo sumo una restricción")
}

func TestAmountConstraintUseCase_Create_BienInexistente(t *testing.T) {
	uc := newConstraintUC()

	_, err := uc.Create(dto.CreateAmountConstraintRequest{AssetID: "no-existe"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAmountConstraintUseCase_Create_LimitesIncoherentes(t *testing.T) {
	uc := newConstraintUC()

	_, err := uc.Create(dto.CreateAmountConstraintRequest{
		AssetID:   testAssetID,
		MinAmount: int64Ptr(100),
		MaxAmount: int64Ptr(5),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAmountConstraintUseCase_Update_Limites(t *testing.T) {
	uc := newConstraintUC()

	created, err := uc.Create(dto.CreateAmountConstraintRequest{AssetID: testAssetID})
	require.NoError(t, err)

	out, err := uc.Update(created.ID, dto.UpdateAmountConstraintRequest{
		MinAmount: int64Ptr(5),
		MaxAmount: int64Ptr(200),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), out.MinAmount)
	assert.Equal(t, int64(200), out.MaxAmount)
	assert.Equal(t, "PN-001 [5:200]", out.Display)

	// Volver a dejar el máximo sin límite con el centinela.
	out, err = uc.Update(created.ID, dto.UpdateAmountConstraintRequest{MaxAmount: int64Ptr(-1)})
	require.NoError(t, err)
	assert.Equal(t, entity.Unbounded, out.MaxAmount)
	assert.Equal(t, "PN-001 [5:+Inf]", out.Display)
}

func TestAmountConstraintUseCase_Update_Inexistente(t *testing.T) {
	uc := newConstraintUC()

	out, err := uc.Update("no-existe", dto.UpdateAmountConstraintRequest{MinAmount: int64Ptr(1)})
	require.NoError(t, err)
	assert.Nil(t, out)
}
