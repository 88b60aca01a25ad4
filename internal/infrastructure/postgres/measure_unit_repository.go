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

var _ repository.MeasureUnitRepository = (*MeasureUnitRepo)(nil)

// MeasureUnitRepo implementación del puerto MeasureUnitRepository sobre
// PostgreSQL (usable con pool o tx).
type MeasureUnitRepo struct {
	q Querier
}

// NewMeasureUnitRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMeasureUnitRepository(q Querier) *MeasureUnitRepo {
	return &MeasureUnitRepo{q: q}
}

// Create persiste una nueva unidad de medida.
func (r *MeasureUnitRepo) Create(unit *entity.MeasureUnit) error {
	query := `
		INSERT INTO measure_units (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		unit.ID, unit.Name, unit.CreatedAt, unit.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert measure unit: %w", err)
	}
	return nil
}

// GetByID obtiene una unidad por ID.
func (r *MeasureUnitRepo) GetByID(id string) (*entity.MeasureUnit, error) {
	query := `SELECT id, name, created_at, updated_at FROM measure_units WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByName obtiene una unidad por nombre (único).
func (r *MeasureUnitRepo) GetByName(name string) (*entity.MeasureUnit, error) {
	query := `SELECT id, name, created_at, updated_at FROM measure_units WHERE name = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, name))
}

// Update actualiza una unidad existente.
func (r *MeasureUnitRepo) Update(unit *entity.MeasureUnit) error {
	query := `UPDATE measure_units SET name = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, unit.ID, unit.Name, unit.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update measure unit: %w", err)
	}
	return nil
}

// List lista unidades ordenadas por nombre con paginación.
func (r *MeasureUnitRepo) List(limit, offset int) ([]*entity.MeasureUnit, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM measure_units ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list measure units: %w", err)
	}
	defer rows.Close()
	var list []*entity.MeasureUnit
	for rows.Next() {
		var u entity.MeasureUnit
		if err := rows.Scan(&u.ID, &u.Name, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan measure unit: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Delete elimina una unidad. ErrConflict si hay bienes que la referencian.
func (r *MeasureUnitRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM measure_units WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete measure unit: %w", err)
	}
	return nil
}

func (r *MeasureUnitRepo) scanOne(row pgx.Row) (*entity.MeasureUnit, error) {
	var u entity.MeasureUnit
	err := row.Scan(&u.ID, &u.Name, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get measure unit: %w", err)
	}
	return &u, nil
}
