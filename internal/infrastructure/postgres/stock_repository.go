package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación del puerto StockRepository sobre PostgreSQL. Las
// existencias se calculan siempre desde las líneas de documento; no hay tabla
// materializada que mantener sincronizada.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// BalanceFor devuelve la existencia de un bien en un almacén concreto.
func (r *StockRepo) BalanceFor(warehouseID, assetID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(d.direction * l.amount), 0)
		FROM document_lines l
		JOIN documents d ON d.id = l.document_id
		WHERE d.warehouse_id = $1 AND l.asset_id = $2`
	var qty decimal.Decimal
	if err := r.q.QueryRow(context.Background(), query, warehouseID, assetID).Scan(&qty); err != nil {
		return decimal.Zero, fmt.Errorf("balance: %w", err)
	}
	return qty, nil
}

// BalanceForUpdate devuelve la existencia serializando las salidas
// concurrentes sobre el mismo (almacén, bien). Al derivarse el saldo de las
// líneas no hay fila de existencias que bloquear con FOR UPDATE; se toma un
// advisory lock transaccional con la misma semántica y se lee después.
func (r *StockRepo) BalanceForUpdate(warehouseID, assetID string) (decimal.Decimal, error) {
	_, err := r.q.Exec(context.Background(),
		`SELECT pg_advisory_xact_lock(hashtextextended($1 || '/' || $2, 0))`,
		warehouseID, assetID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("lock balance: %w", err)
	}
	return r.BalanceFor(warehouseID, assetID)
}

// Balances lista existencias por (almacén, bien). Con warehouseID filtra un
// almacén; con pathPrefix agrega todo el subárbol bajo esa ruta (la raíz del
// subárbol incluida).
func (r *StockRepo) Balances(warehouseID, pathPrefix string) ([]*entity.StockBalance, error) {
	query := `
		SELECT w.id, w.name, a.id, a.part_number, a.name, u.name,
		       SUM(d.direction * l.amount)
		FROM document_lines l
		JOIN documents d ON d.id = l.document_id
		JOIN warehouses w ON w.id = d.warehouse_id
		JOIN material_assets a ON a.id = l.asset_id
		JOIN measure_units u ON u.id = a.unit_id
		WHERE 1=1`
	args := []any{}
	if warehouseID != "" {
		args = append(args, warehouseID)
		query += fmt.Sprintf(" AND w.id = $%d", len(args))
	}
	if pathPrefix != "" {
		// Prefijo exacto, no LIKE: % y _ en nombres de almacén no son comodines.
		args = append(args, pathPrefix)
		query += fmt.Sprintf(" AND (w.path = $%d OR left(w.path, length($%d) + 1) = $%d || '/')", len(args), len(args), len(args))
	}
	query += `
		GROUP BY w.id, w.name, w.path, a.id, a.part_number, a.name, u.name
		ORDER BY w.path, a.part_number`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("balances: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockBalance
	for rows.Next() {
		var b entity.StockBalance
		if err := rows.Scan(&b.WarehouseID, &b.WarehouseName, &b.AssetID, &b.PartNumber, &b.AssetName, &b.UnitName, &b.Quantity); err != nil {
			return nil, fmt.Errorf("scan balance: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// ConstrainedTotals devuelve el total global por bien (todos los almacenes)
// para cada bien con restricción de cantidad, junto con los límites crudos.
// Bienes sin movimientos cuentan como total 0.
func (r *StockRepo) ConstrainedTotals() ([]*entity.AssetTotal, error) {
	query := `
		SELECT a.id, a.part_number, a.name, u.name,
		       COALESCE(SUM(d.direction * l.amount), 0), ac.min_raw, ac.max_raw
		FROM amount_constraints ac
		JOIN material_assets a ON a.id = ac.asset_id
		JOIN measure_units u ON u.id = a.unit_id
		LEFT JOIN document_lines l ON l.asset_id = a.id
		LEFT JOIN documents d ON d.id = l.document_id
		GROUP BY a.id, a.part_number, a.name, u.name, ac.min_raw, ac.max_raw
		ORDER BY a.part_number`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("constrained totals: %w", err)
	}
	defer rows.Close()
	var list []*entity.AssetTotal
	for rows.Next() {
		var t entity.AssetTotal
		if err := rows.Scan(&t.AssetID, &t.PartNumber, &t.AssetName, &t.UnitName, &t.Total, &t.MinRaw, &t.MaxRaw); err != nil {
			return nil, fmt.Errorf("scan total: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
