package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación del puerto WarehouseRepository sobre
// PostgreSQL. El árbol se mantiene con ruta materializada: los listados en
// orden de árbol son un ORDER BY path y los subárboles una comparación de
// prefijo sobre path.
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

const warehouseSelect = `
	SELECT id, name, COALESCE(parent_id, ''), path, depth, created_at, updated_at
	FROM warehouses`

// Create persiste un nuevo almacén.
func (r *WarehouseRepo) Create(w *entity.Warehouse) error {
	query := `
		INSERT INTO warehouses (id, name, parent_id, path, depth, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		w.ID, w.Name, nullIfEmpty(w.ParentID), w.Path, w.Depth, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert warehouse: %w", err)
	}
	return nil
}

// GetByID obtiene un almacén por ID.
func (r *WarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	return r.scanOne(r.q.QueryRow(context.Background(), warehouseSelect+` WHERE id = $1`, id))
}

// GetByName obtiene un almacén por nombre (único en el árbol).
func (r *WarehouseRepo) GetByName(name string) (*entity.Warehouse, error) {
	return r.scanOne(r.q.QueryRow(context.Background(), warehouseSelect+` WHERE name = $1`, name))
}

// Update persiste nombre, padre, path y profundidad del nodo.
func (r *WarehouseRepo) Update(w *entity.Warehouse) error {
	query := `
		UPDATE warehouses SET name = $2, parent_id = $3, path = $4, depth = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		w.ID, w.Name, nullIfEmpty(w.ParentID), w.Path, w.Depth, w.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update warehouse: %w", err)
	}
	return nil
}

// UpdateSubtreePaths reescribe el prefijo de ruta de los descendientes de un
// nodo renombrado o movido, ajustando la profundidad por la diferencia.
// La comparación es de prefijo exacto (left), no LIKE: los nombres pueden
// contener % o _ y no deben actuar como comodines.
func (r *WarehouseRepo) UpdateSubtreePaths(oldPath, newPath string) error {
	depthDelta := entity.PathDepth(newPath) - entity.PathDepth(oldPath)
	query := `
		UPDATE warehouses
		SET path = $2 || substr(path, length($1) + 1), depth = depth + $3
		WHERE left(path, length($1) + 1) = $1 || '/'`
	_, err := r.q.Exec(context.Background(), query, oldPath, newPath, depthDelta)
	if err != nil {
		return fmt.Errorf("update subtree paths: %w", err)
	}
	return nil
}

// List lista almacenes en orden de árbol con paginación.
func (r *WarehouseRepo) List(limit, offset int) ([]*entity.Warehouse, error) {
	query := warehouseSelect + ` ORDER BY path LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

// Tree devuelve todos los almacenes en orden de árbol.
func (r *WarehouseRepo) Tree() ([]*entity.Warehouse, error) {
	rows, err := r.q.Query(context.Background(), warehouseSelect+` ORDER BY path`)
	if err != nil {
		return nil, fmt.Errorf("warehouse tree: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

// Children lista hijos directos; con parentID vacío lista las raíces.
func (r *WarehouseRepo) Children(parentID string) ([]*entity.Warehouse, error) {
	var rows pgx.Rows
	var err error
	if parentID == "" {
		rows, err = r.q.Query(context.Background(), warehouseSelect+` WHERE parent_id IS NULL ORDER BY name`)
	} else {
		rows, err = r.q.Query(context.Background(), warehouseSelect+` WHERE parent_id = $1 ORDER BY name`, parentID)
	}
	if err != nil {
		return nil, fmt.Errorf("warehouse children: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

// HasChildren indica si el almacén tiene hijos directos.
func (r *WarehouseRepo) HasChildren(id string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM warehouses WHERE parent_id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("warehouse has children: %w", err)
	}
	return exists, nil
}

// Delete elimina un almacén. ErrConflict si tiene hijos o documentos (PROTECT).
func (r *WarehouseRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM warehouses WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete warehouse: %w", err)
	}
	return nil
}

func (r *WarehouseRepo) scanOne(row pgx.Row) (*entity.Warehouse, error) {
	var w entity.Warehouse
	err := row.Scan(&w.ID, &w.Name, &w.ParentID, &w.Path, &w.Depth, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return &w, nil
}

func (r *WarehouseRepo) scanMany(rows pgx.Rows) ([]*entity.Warehouse, error) {
	var list []*entity.Warehouse
	for rows.Next() {
		var w entity.Warehouse
		if err := rows.Scan(&w.ID, &w.Name, &w.ParentID, &w.Path, &w.Depth, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}

// nullIfEmpty convierte "" a NULL para columnas de FK opcionales.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
