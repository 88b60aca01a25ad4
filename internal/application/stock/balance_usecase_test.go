package stock

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

func TestBalances_TodosLosAlmacenes(t *testing.T) {
	env := newStockEnv()
	env.stock.balanceRows = []*entity.StockBalance{
		{WarehouseID: testCentralID, WarehouseName: "Central", AssetID: testAssetAID, PartNumber: "PN-001", AssetName: "Tornillo M5", UnitName: "unidad", Quantity: decimal.NewFromInt(7)},
	}
	uc := NewBalanceUseCase(env.stock, env.whs)

	resp, err := uc.Balances("", false)
	require.NoError(t, err)
	assert.Empty(t, env.stock.lastWarehouseID)
	assert.Empty(t, env.stock.lastPathPrefix)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "PN-001", resp.Items[0].PartNumber)
	assert.True(t, resp.Items[0].Quantity.Equal(decimal.NewFromInt(7)))
}

func TestBalances_PorAlmacen(t *testing.T) {
	env := newStockEnv()
	uc := NewBalanceUseCase(env.stock, env.whs)

	_, err := uc.Balances(testCentralID, false)
	require.NoError(t, err)
	assert.Equal(t, testCentralID, env.stock.lastWarehouseID)
	assert.Empty(t, env.stock.lastPathPrefix)
}

func TestBalances_Subarbol(t *testing.T) {
	env := newStockEnv()
	uc := NewBalanceUseCase(env.stock, env.whs)

	// Con subtree la consulta agrega por la ruta del almacén, no por su ID.
	_, err := uc.Balances(testCentralID, true)
	require.NoError(t, err)
	assert.Empty(t, env.stock.lastWarehouseID)
	assert.Equal(t, "/Central", env.stock.lastPathPrefix)
}

func TestBalances_SubarbolAlmacenInexistente(t *testing.T) {
	env := newStockEnv()
	uc := NewBalanceUseCase(env.stock, env.whs)

	_, err := uc.Balances("no-existe", true)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestViolations(t *testing.T) {
	env := newStockEnv()
	env.stock.totals = []*entity.AssetTotal{
		// Por debajo del mínimo.
		{AssetID: testAssetAID, PartNumber: "PN-001", AssetName: "Tornillo M5", Total: decimal.NewFromInt(2), MinRaw: 5, MaxRaw: entity.Unbounded},
		// Por encima del máximo.
		{AssetID: testAssetBID, PartNumber: "PN-002", AssetName: "Tuerca M5", Total: decimal.NewFromInt(12), MinRaw: entity.Unbounded, MaxRaw: 10},
		// Dentro de los límites: no aparece.
		{AssetID: "a3", PartNumber: "PN-003", Total: decimal.NewFromInt(6), MinRaw: 5, MaxRaw: 10},
		// Sin límites: nunca viola.
		{AssetID: "a4", PartNumber: "PN-004", Total: decimal.NewFromInt(-3), MinRaw: entity.Unbounded, MaxRaw: entity.Unbounded},
	}
	uc := NewBalanceUseCase(env.stock, env.whs)

	resp, err := uc.Violations()
	require.NoError(t, err)
	require.Len(t, resp.Items, 2)

	assert.Equal(t, "PN-001", resp.Items[0].PartNumber)
	assert.Equal(t, entity.ViolationBelowMin, resp.Items[0].Kind)
	assert.Equal(t, int64(5), resp.Items[0].MinAmount)
	assert.Equal(t, int64(entity.Unbounded), resp.Items[0].MaxAmount)

	assert.Equal(t, "PN-002", resp.Items[1].PartNumber)
	assert.Equal(t, entity.ViolationAboveMax, resp.Items[1].Kind)
	assert.False(t, resp.Items[1].CheckedAt.IsZero())
}

func TestViolations_TotalEnElLimite(t *testing.T) {
	env := newStockEnv()
	env.stock.totals = []*entity.AssetTotal{
		{AssetID: testAssetAID, PartNumber: "PN-001", Total: decimal.NewFromInt(5), MinRaw: 5, MaxRaw: 5},
	}
	uc := NewBalanceUseCase(env.stock, env.whs)

	// Los límites son inclusivos: min == total == max no viola.
	resp, err := uc.Violations()
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
}
