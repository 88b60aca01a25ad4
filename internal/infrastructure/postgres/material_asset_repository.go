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

var _ repository.MaterialAssetRepository = (*MaterialAssetRepo)(nil)

// MaterialAssetRepo implementación del puerto MaterialAssetRepository sobre
// PostgreSQL. Las lecturas resuelven UnitName con JOIN.
type MaterialAssetRepo struct {
	q Querier
}

// NewMaterialAssetRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMaterialAssetRepository(q Querier) *MaterialAssetRepo {
	return &MaterialAssetRepo{q: q}
}

const assetSelect = `
	SELECT a.id, a.part_number, a.name, a.unit_id, u.name, a.description, a.created_at, a.updated_at
	FROM material_assets a
	JOIN measure_units u ON u.id = a.unit_id`

// Create persiste un nuevo bien material.
func (r *MaterialAssetRepo) Create(asset *entity.MaterialAsset) error {
	query := `
		INSERT INTO material_assets (id, part_number, name, unit_id, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		asset.ID, asset.PartNumber, asset.Name, asset.UnitID, asset.Description,
		asset.CreatedAt, asset.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert material asset: %w", err)
	}
	return nil
}

// GetByID obtiene un bien por ID.
func (r *MaterialAssetRepo) GetByID(id string) (*entity.MaterialAsset, error) {
	return r.scanOne(r.q.QueryRow(context.Background(), assetSelect+` WHERE a.id = $1`, id))
}

// GetByPartNumber obtiene un bien por número de parte (único).
func (r *MaterialAssetRepo) GetByPartNumber(pn string) (*entity.MaterialAsset, error) {
	return r.scanOne(r.q.QueryRow(context.Background(), assetSelect+` WHERE a.part_number = $1`, pn))
}

// Update actualiza nombre, unidad y descripción (el número de parte es fijo).
func (r *MaterialAssetRepo) Update(asset *entity.MaterialAsset) error {
	query := `
		UPDATE material_assets SET name = $2, unit_id = $3, description = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		asset.ID, asset.Name, asset.UnitID, asset.Description, asset.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update material asset: %w", err)
	}
	return nil
}

// List lista bienes ordenados por (part_number, name) con paginación.
func (r *MaterialAssetRepo) List(limit, offset int) ([]*entity.MaterialAsset, error) {
	query := assetSelect + ` ORDER BY a.part_number, a.name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list material assets: %w", err)
	}
	defer rows.Close()
	var list []*entity.MaterialAsset
	for rows.Next() {
		var a entity.MaterialAsset
		if err := rows.Scan(&a.ID, &a.PartNumber, &a.Name, &a.UnitID, &a.UnitName, &a.Description, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan material asset: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Delete elimina un bien. ErrConflict si tiene restricción o líneas de documento.
func (r *MaterialAssetRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM material_assets WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete material asset: %w", err)
	}
	return nil
}

func (r *MaterialAssetRepo) scanOne(row pgx.Row) (*entity.MaterialAsset, error) {
	var a entity.MaterialAsset
	err := row.Scan(&a.ID, &a.PartNumber, &a.Name, &a.UnitID, &a.UnitName, &a.Description, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material asset: %w", err)
	}
	return &a, nil
}
