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

var _ repository.AmountConstraintRepository = (*AmountConstraintRepo)(nil)

// AmountConstraintRepo implementación del puerto AmountConstraintRepository
// sobre PostgreSQL. Las lecturas resuelven PartNumber con JOIN.
type AmountConstraintRepo struct {
	q Querier
}

// NewAmountConstraintRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAmountConstraintRepository(q Querier) *AmountConstraintRepo {
	return &AmountConstraintRepo{q: q}
}

const constraintSelect = `
	SELECT c.id, c.asset_id, a.part_number, c.min_raw, c.max_raw, c.created_at, c.updated_at
	FROM amount_constraints c
	JOIN material_assets a ON a.id = c.asset_id`

// Create persiste una nueva restricción (una por bien).
func (r *AmountConstraintRepo) Create(c *entity.AmountConstraint) error {
	query := `
		INSERT INTO amount_constraints (id, asset_id, min_raw, max_raw, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.AssetID, c.MinRaw, c.MaxRaw, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert amount constraint: %w", err)
	}
	return nil
}

// GetByID obtiene una restricción por ID.
func (r *AmountConstraintRepo) GetByID(id string) (*entity.AmountConstraint, error) {
	return r.scanOne(r.q.QueryRow(context.Background(), constraintSelect+` WHERE c.id = $1`, id))
}

// GetByAsset obtiene la restricción de un bien.
func (r *AmountConstraintRepo) GetByAsset(assetID string) (*entity.AmountConstraint, error) {
	return r.scanOne(r.q.QueryRow(context.Background(), constraintSelect+` WHERE c.asset_id = $1`, assetID))
}

// Update actualiza los límites de una restricción.
func (r *AmountConstraintRepo) Update(c *entity.AmountConstraint) error {
	query := `UPDATE amount_constraints SET min_raw = $2, max_raw = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, c.ID, c.MinRaw, c.MaxRaw, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update amount constraint: %w", err)
	}
	return nil
}

// List lista restricciones ordenadas por número de parte del bien.
func (r *AmountConstraintRepo) List(limit, offset int) ([]*entity.AmountConstraint, error) {
	query := constraintSelect + ` ORDER BY a.part_number LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list amount constraints: %w", err)
	}
	defer rows.Close()
	var list []*entity.AmountConstraint
	for rows.Next() {
		var c entity.AmountConstraint
		if err := rows.Scan(&c.ID, &c.AssetID, &c.PartNumber, &c.MinRaw, &c.MaxRaw, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan amount constraint: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina una restricción.
func (r *AmountConstraintRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM amount_constraints WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete amount constraint: %w", err)
	}
	return nil
}

func (r *AmountConstraintRepo) scanOne(row pgx.Row) (*entity.AmountConstraint, error) {
	var c entity.AmountConstraint
	err := row.Scan(&c.ID, &c.AssetID, &c.PartNumber, &c.MinRaw, &c.MaxRaw, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get amount constraint: %w", err)
	}
	return &c, nil
}
