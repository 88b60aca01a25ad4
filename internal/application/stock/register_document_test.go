package stock

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// IDs fijos para las pruebas.
const (
	testTypeInID     = "00000000-0000-0000-0000-0000000000t1"
	testTypeOutID    = "00000000-0000-0000-0000-0000000000t2"
	testCentralID    = "00000000-0000-0000-0000-0000000000w1"
	testAuxiliarID   = "00000000-0000-0000-0000-0000000000w2"
	testContractorID = "00000000-0000-0000-0000-0000000000c1"
	testAssetAID     = "00000000-0000-0000-0000-0000000000a1"
	testAssetBID     = "00000000-0000-0000-0000-0000000000a2"
	testUserID       = "00000000-0000-0000-0000-0000000000u1"
)

// --- fakes en memoria ---

type fakeTypeRepo struct {
	items map[string]*entity.DocumentType
}

func (r *fakeTypeRepo) Create(t *entity.DocumentType) error { r.items[t.ID] = t; return nil }
func (r *fakeTypeRepo) GetByID(id string) (*entity.DocumentType, error) {
	return r.items[id], nil
}
func (r *fakeTypeRepo) GetByName(name string) (*entity.DocumentType, error) {
	for _, t := range r.items {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, nil
}
func (r *fakeTypeRepo) List(limit, offset int) ([]*entity.DocumentType, error) { return nil, nil }
func (r *fakeTypeRepo) Update(t *entity.DocumentType) error                    { return nil }
func (r *fakeTypeRepo) Delete(id string) error                                 { return nil }

type fakeWhRepo struct {
	items map[string]*entity.Warehouse
}

func (r *fakeWhRepo) Create(w *entity.Warehouse) error { r.items[w.ID] = w; return nil }
func (r *fakeWhRepo) GetByID(id string) (*entity.Warehouse, error) {
	return r.items[id], nil
}
func (r *fakeWhRepo) GetByName(name string) (*entity.Warehouse, error) {
	for _, w := range r.items {
		if w.Name == name {
			return w, nil
		}
	}
	return nil, nil
}
func (r *fakeWhRepo) List(limit, offset int) ([]*entity.Warehouse, error)   { return nil, nil }
func (r *fakeWhRepo) Tree() ([]*entity.Warehouse, error)                    { return nil, nil }
func (r *fakeWhRepo) Children(parentID string) ([]*entity.Warehouse, error) { return nil, nil }
func (r *fakeWhRepo) HasChildren(id string) (bool, error)                   { return false, nil }
func (r *fakeWhRepo) Update(w *entity.Warehouse) error                      { return nil }
func (r *fakeWhRepo) UpdateSubtreePaths(oldPath, newPath string) error      { return nil }
func (r *fakeWhRepo) Delete(id string) error                                { return nil }

type fakeCtrRepo struct {
	items map[string]*entity.Contractor
}

func (r *fakeCtrRepo) Create(c *entity.Contractor) error { r.items[c.ID] = c; return nil }
func (r *fakeCtrRepo) GetByID(id string) (*entity.Contractor, error) {
	return r.items[id], nil
}
func (r *fakeCtrRepo) GetByName(name string) (*entity.Contractor, error) { return nil, nil }
func (r *fakeCtrRepo) List(limit, offset int) ([]*entity.Contractor, error) {
	return nil, nil
}
func (r *fakeCtrRepo) ListByGroup(groupID string, limit, offset int) ([]*entity.Contractor, error) {
	return nil, nil
}
func (r *fakeCtrRepo) Update(c *entity.Contractor) error { return nil }
func (r *fakeCtrRepo) Delete(id string) error            { return nil }

type fakeAssetStore struct {
	items map[string]*entity.MaterialAsset
}

func (r *fakeAssetStore) Create(a *entity.MaterialAsset) error { r.items[a.ID] = a; return nil }
func (r *fakeAssetStore) GetByID(id string) (*entity.MaterialAsset, error) {
	return r.items[id], nil
}
func (r *fakeAssetStore) GetByPartNumber(pn string) (*entity.MaterialAsset, error) {
	return nil, nil
}
func (r *fakeAssetStore) List(limit, offset int) ([]*entity.MaterialAsset, error) {
	return nil, nil
}
func (r *fakeAssetStore) Update(a *entity.MaterialAsset) error { return nil }
func (r *fakeAssetStore) Delete(id string) error               { return nil }

// fakeDocStore guarda documentos en memoria y deja inspeccionar lo creado.
type fakeDocStore struct {
	byNumber map[string]*entity.Document
	created  []*entity.Document
}

func newFakeDocStore() *fakeDocStore {
	return &fakeDocStore{byNumber: make(map[string]*entity.Document)}
}

func (r *fakeDocStore) Create(doc *entity.Document) error {
	if _, ok := r.byNumber[doc.Number]; ok {
		return domain.ErrDuplicate
	}
	r.byNumber[doc.Number] = doc
	r.created = append(r.created, doc)
	return nil
}
func (r *fakeDocStore) GetByID(id string) (*entity.Document, error) {
	for _, d := range r.created {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, nil
}
func (r *fakeDocStore) GetByNumber(number string) (*entity.Document, error) {
	return r.byNumber[number], nil
}
func (r *fakeDocStore) List(filter repository.DocumentFilter) ([]*entity.Document, error) {
	return r.created, nil
}

// fakeStockStore deriva existencias del saldo inicial más los documentos ya
// guardados en el fakeDocStore, igual que la implementación real las deriva
// de las líneas persistidas.
type fakeStockStore struct {
	seed map[string]decimal.Decimal
	docs *fakeDocStore

	locked          []string
	lastWarehouseID string
	lastPathPrefix  string
	balanceRows     []*entity.StockBalance
	totals          []*entity.AssetTotal
}

func newFakeStockStore(docs *fakeDocStore) *fakeStockStore {
	return &fakeStockStore{seed: make(map[string]decimal.Decimal), docs: docs}
}

func (r *fakeStockStore) set(warehouseID, assetID string, qty int64) {
	r.seed[warehouseID+"|"+assetID] = decimal.NewFromInt(qty)
}

func (r *fakeStockStore) balance(warehouseID, assetID string) decimal.Decimal {
	qty := r.seed[warehouseID+"|"+assetID]
	for _, d := range r.docs.created {
		if d.WarehouseID != warehouseID {
			continue
		}
		for _, l := range d.Lines {
			if l.AssetID == assetID {
				qty = qty.Add(d.SignedAmount(l))
			}
		}
	}
	return qty
}

func (r *fakeStockStore) BalanceFor(warehouseID, assetID string) (decimal.Decimal, error) {
	return r.balance(warehouseID, assetID), nil
}

func (r *fakeStockStore) BalanceForUpdate(warehouseID, assetID string) (decimal.Decimal, error) {
	r.locked = append(r.locked, warehouseID+"|"+assetID)
	return r.balance(warehouseID, assetID), nil
}
func (r *fakeStockStore) Balances(warehouseID, pathPrefix string) ([]*entity.StockBalance, error) {
	r.lastWarehouseID = warehouseID
	r.lastPathPrefix = pathPrefix
	return r.balanceRows, nil
}
func (r *fakeStockStore) ConstrainedTotals() ([]*entity.AssetTotal, error) {
	return r.totals, nil
}

// fakeTxRunner invoca la función directamente con los repos en memoria.
type fakeTxRunner struct {
	docs  *fakeDocStore
	stock *fakeStockStore
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	docRepo repository.DocumentRepository,
	stockRepo repository.StockRepository,
) error) error {
	return fn(r.docs, r.stock)
}

// stockEnv agrupa los fakes de un escenario de pruebas ya poblado.
type stockEnv struct {
	types  *fakeTypeRepo
	whs    *fakeWhRepo
	ctrs   *fakeCtrRepo
	assets *fakeAssetStore
	docs   *fakeDocStore
	stock  *fakeStockStore
	tx     *fakeTxRunner
}

func newStockEnv() *stockEnv {
	env := &stockEnv{
		types:  &fakeTypeRepo{items: make(map[string]*entity.DocumentType)},
		whs:    &fakeWhRepo{items: make(map[string]*entity.Warehouse)},
		ctrs:   &fakeCtrRepo{items: make(map[string]*entity.Contractor)},
		assets: &fakeAssetStore{items: make(map[string]*entity.MaterialAsset)},
		docs:   newFakeDocStore(),
	}
	env.stock = newFakeStockStore(env.docs)
	env.tx = &fakeTxRunner{docs: env.docs, stock: env.stock}

	env.types.items[testTypeInID] = &entity.DocumentType{ID: testTypeInID, Name: "Recepción", Direction: entity.DirectionIn}
	env.types.items[testTypeOutID] = &entity.DocumentType{ID: testTypeOutID, Name: "Despacho", Direction: entity.DirectionOut}
	env.whs.items[testCentralID] = &entity.Warehouse{ID: testCentralID, Name: "Central", Path: "/Central", Depth: 0}
	env.whs.items[testAuxiliarID] = &entity.Warehouse{ID: testAuxiliarID, Name: "Auxiliar", Path: "/Auxiliar", Depth: 0}
	env.ctrs.items[testContractorID] = &entity.Contractor{ID: testContractorID, Name: "Aceros del Sur"}
	env.assets.items[testAssetAID] = &entity.MaterialAsset{ID: testAssetAID, PartNumber: "PN-001", Name: "Tornillo M5", UnitName: "unidad"}
	env.assets.items[testAssetBID] = &entity.MaterialAsset{ID: testAssetBID, PartNumber: "PN-002", Name: "Tuerca M5", UnitName: "unidad"}
	return env
}

func (env *stockEnv) registerUC() *RegisterDocumentUseCase {
	return NewRegisterDocumentUseCase(env.tx, env.types, env.whs, env.ctrs, env.assets, env.docs)
}

func (env *stockEnv) transferUC() *TransferUseCase {
	return NewTransferUseCase(env.tx, env.types, env.whs, env.ctrs, env.assets)
}

func lineReq(assetID string, amount int64) dto.DocumentLineRequest {
	return dto.DocumentLineRequest{AssetID: assetID, Amount: decimal.NewFromInt(amount)}
}

// --- pruebas ---

func TestRegister_Entrada(t *testing.T) {
	env := newStockEnv()
	uc := env.registerUC()

	resp, err := uc.Register(context.Background(), testUserID, dto.RegisterDocumentRequest{
		TypeID:       testTypeInID,
		WarehouseID:  testCentralID,
		ContractorID: testContractorID,
		Notes:        "lote inicial",
		Lines:        []dto.DocumentLineRequest{lineReq(testAssetAID, 10), lineReq(testAssetBID, 3)},
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, entity.DirectionIn, resp.Direction)
	assert.Equal(t, "Recepción", resp.TypeName)
	assert.Equal(t, "Central", resp.WarehouseName)
	assert.Equal(t, "Aceros del Sur", resp.ContractorName)
	assert.Equal(t, testUserID, resp.CreatedBy)
	assert.True(t, strings.HasPrefix(resp.Number, "D-"))
	assert.Empty(t, resp.TransferID)

	require.Len(t, resp.Lines, 2)
	assert.Equal(t, "PN-001", resp.Lines[0].PartNumber)
	assert.Equal(t, "unidad", resp.Lines[0].UnitName)
	assert.True(t, resp.Lines[0].SignedAmount.Equal(decimal.NewFromInt(10)))

	require.Len(t, env.docs.created, 1)
	stored := env.docs.created[0]
	assert.Equal(t, resp.ID, stored.ID)
	for _, l := range stored.Lines {
		assert.Equal(t, stored.ID, l.DocumentID)
		assert.NotEmpty(t, l.ID)
	}
}

func TestRegister_NumeroExplicitoYDuplicado(t *testing.T) {
	env := newStockEnv()
	uc := env.registerUC()

	req := dto.RegisterDocumentRequest{
		Number:       "REM-2026-001",
		TypeID:       testTypeInID,
		WarehouseID:  testCentralID,
		ContractorID: testContractorID,
		Lines:        []dto.DocumentLineRequest{lineReq(testAssetAID, 1)},
	}
	resp, err := uc.Register(context.Background(), testUserID, req)
	require.NoError(t, err)
	assert.Equal(t, "REM-2026-001", resp.Number)

	_, err = uc.Register(context.Background(), testUserID, req)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Len(t, env.docs.created, 1)
}

func TestRegister_FechaExplicita(t *testing.T) {
	env := newStockEnv()
	uc := env.registerUC()

	date := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	resp, err := uc.Register(context.Background(), testUserID, dto.RegisterDocumentRequest{
		TypeID:       testTypeInID,
		WarehouseID:  testCentralID,
		ContractorID: testContractorID,
		Date:         &date,
		Lines:        []dto.DocumentLineRequest{lineReq(testAssetAID, 1)},
	})
	require.NoError(t, err)
	assert.True(t, resp.Date.Equal(date))
}

func TestRegister_ReferenciasInexistentes(t *testing.T) {
	env := newStockEnv()
	uc := env.registerUC()
	lines := []dto.DocumentLineRequest{lineReq(testAssetAID, 1)}

	cases := []struct {
		name string
		req  dto.RegisterDocumentRequest
	}{
		{"tipo", dto.RegisterDocumentRequest{TypeID: "no-existe", WarehouseID: testCentralID, ContractorID: testContractorID, Lines: lines}},
		{"almacén", dto.RegisterDocumentRequest{TypeID: testTypeInID, WarehouseID: "no-existe", ContractorID: testContractorID, Lines: lines}},
		{"contratista", dto.RegisterDocumentRequest{TypeID: testTypeInID, WarehouseID: testCentralID, ContractorID: "no-existe", Lines: lines}},
		{"bien", dto.RegisterDocumentRequest{TypeID: testTypeInID, WarehouseID: testCentralID, ContractorID: testContractorID, Lines: []dto.DocumentLineRequest{lineReq("no-existe", 1)}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Register(context.Background(), testUserID, tc.req)
			assert.ErrorIs(t, err, domain.ErrNotFound)
		})
	}
	assert.Empty(t, env.docs.created)
}

func TestRegister_LineasInvalidas(t *testing.T) {
	env := newStockEnv()
	uc := env.registerUC()

	cases := []struct {
		name  string
		lines []dto.DocumentLineRequest
	}{
		{"sin líneas", nil},
		{"cantidad cero", []dto.DocumentLineRequest{lineReq(testAssetAID, 0)}},
		{"cantidad negativa", []dto.DocumentLineRequest{lineReq(testAssetAID, -2)}},
		{"bien repetido", []dto.DocumentLineRequest{lineReq(testAssetAID, 1), lineReq(testAssetAID, 2)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Register(context.Background(), testUserID, dto.RegisterDocumentRequest{
				TypeID:       testTypeInID,
				WarehouseID:  testCentralID,
				ContractorID: testContractorID,
				Lines:        tc.lines,
			})
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Empty(t, env.docs.created)
}

func TestRegister_SalidaSinExistencia(t *testing.T) {
	env := newStockEnv()
	uc := env.registerUC()
	env.stock.set(testCentralID, testAssetAID, 3)

	_, err := uc.Register(context.Background(), testUserID, dto.RegisterDocumentRequest{
		TypeID:       testTypeOutID,
		WarehouseID:  testCentralID,
		ContractorID: testContractorID,
		Lines:        []dto.DocumentLineRequest{lineReq(testAssetAID, 4)},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, env.docs.created)
}

func TestRegister_SalidaConExistencia(t *testing.T) {
	env := newStockEnv()
	uc := env.registerUC()
	env.stock.set(testCentralID, testAssetAID, 10)

	resp, err := uc.Register(context.Background(), testUserID, dto.RegisterDocumentRequest{
		TypeID:       testTypeOutID,
		WarehouseID:  testCentralID,
		ContractorID: testContractorID,
		Lines:        []dto.DocumentLineRequest{lineReq(testAssetAID, 10)},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DirectionOut, resp.Direction)
	assert.True(t, resp.Lines[0].SignedAmount.Equal(decimal.NewFromInt(-10)))
	assert.Len(t, env.docs.created, 1)
}

func TestRegister_SalidasSucesivasAgotanExistencia(t *testing.T) {
	env := newStockEnv()
	uc := env.registerUC()
	env.stock.set(testCentralID, testAssetAID, 10)

	out := dto.RegisterDocumentRequest{
		TypeID:       testTypeOutID,
		WarehouseID:  testCentralID,
		ContractorID: testContractorID,
		Lines:        []dto.DocumentLineRequest{lineReq(testAssetAID, 10)},
	}
	_, err := uc.Register(context.Background(), testUserID, out)
	require.NoError(t, err)

	// La segunda salida ve el saldo ya descontado por la primera: no puede
	// dejar la existencia en negativo.
	_, err = uc.Register(context.Background(), testUserID, out)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Len(t, env.docs.created, 1)

	// Ambas verificaciones pasaron por la lectura bloqueante, no por la libre.
	key := testCentralID + "|" + testAssetAID
	assert.Equal(t, []string{key, key}, env.stock.locked)
}

func TestGenerateNumber_Formato(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	n := GenerateNumber(now)
	assert.True(t, strings.HasPrefix(n, "D-20260829-"))
	assert.Len(t, n, len("D-20260829-")+6)
	assert.Equal(t, strings.ToUpper(n), n)
}
