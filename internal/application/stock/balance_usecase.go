package stock

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// BalanceUseCase consultas de existencias: totales por (almacén, bien),
// agregados por subárbol y reporte de violaciones de restricción.
type BalanceUseCase struct {
	stockRepo     repository.StockRepository
	warehouseRepo repository.WarehouseRepository
}

// NewBalanceUseCase construye el caso de uso.
func NewBalanceUseCase(stockRepo repository.StockRepository, warehouseRepo repository.WarehouseRepository) *BalanceUseCase {
	return &BalanceUseCase{stockRepo: stockRepo, warehouseRepo: warehouseRepo}
}

// Balances lista existencias. Sin warehouseID devuelve todos los almacenes;
// con warehouseID y subtree=true agrega el subárbol completo de ese almacén.
func (uc *BalanceUseCase) Balances(warehouseID string, subtree bool) (*dto.StockBalanceListResponse, error) {
	pathPrefix := ""
	if warehouseID != "" && subtree {
		w, err := uc.warehouseRepo.GetByID(warehouseID)
		if err != nil {
			return nil, err
		}
		if w == nil {
			return nil, domain.ErrNotFound
		}
		pathPrefix = w.Path
		warehouseID = ""
	}
	list, err := uc.stockRepo.Balances(warehouseID, pathPrefix)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockBalanceResponse, 0, len(list))
	for _, b := range list {
		items = append(items, dto.StockBalanceResponse{
			WarehouseID:   b.WarehouseID,
			WarehouseName: b.WarehouseName,
			AssetID:       b.AssetID,
			PartNumber:    b.PartNumber,
			AssetName:     b.AssetName,
			UnitName:      b.UnitName,
			Quantity:      b.Quantity,
		})
	}
	return &dto.StockBalanceListResponse{Items: items}, nil
}

// Violations compara el total global de cada bien con restricción contra sus
// límites. Un lado sin límite (-1 crudo, infinito en el accessor) nunca viola.
func (uc *BalanceUseCase) Violations() (*dto.ConstraintViolationListResponse, error) {
	totals, err := uc.stockRepo.ConstrainedTotals()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	items := make([]dto.ConstraintViolationResponse, 0)
	for _, t := range totals {
		c := entity.AmountConstraint{MinRaw: t.MinRaw, MaxRaw: t.MaxRaw}
		if c.Allows(t.Total) {
			continue
		}
		kind := entity.ViolationBelowMin
		if c.HasMax() && t.Total.GreaterThan(decimal.NewFromInt(t.MaxRaw)) {
			kind = entity.ViolationAboveMax
		}
		items = append(items, dto.ConstraintViolationResponse{
			AssetID:    t.AssetID,
			PartNumber: t.PartNumber,
			AssetName:  t.AssetName,
			Total:      t.Total,
			MinAmount:  t.MinRaw,
			MaxAmount:  t.MaxRaw,
			Kind:       kind,
			CheckedAt:  now,
		})
	}
	return &dto.ConstraintViolationListResponse{Items: items}, nil
}
