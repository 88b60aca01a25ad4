package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// StockRepository define el puerto de consultas de existencias. Las
// existencias se derivan de SUM(direction * amount) sobre las líneas de
// documento; no hay tabla materializada.
type StockRepository interface {
	// BalanceFor devuelve la existencia de un bien en un almacén concreto.
	BalanceFor(warehouseID, assetID string) (decimal.Decimal, error)
	// BalanceForUpdate devuelve la existencia tomando antes un bloqueo
	// transaccional sobre el par (almacén, bien), para que dos salidas
	// concurrentes se serialicen y la segunda vea el saldo ya descontado.
	BalanceForUpdate(warehouseID, assetID string) (decimal.Decimal, error)
	// Balances lista existencias por (almacén, bien). Con warehouseID filtra
	// un almacén; con pathPrefix agrega el subárbol completo bajo esa ruta.
	Balances(warehouseID, pathPrefix string) ([]*entity.StockBalance, error)
	// ConstrainedTotals devuelve el total global por bien para todos los
	// bienes que tienen AmountConstraint, con sus límites crudos.
	ConstrainedTotals() ([]*entity.AssetTotal, error)
}
