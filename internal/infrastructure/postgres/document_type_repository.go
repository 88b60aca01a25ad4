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

var _ repository.DocumentTypeRepository = (*DocumentTypeRepo)(nil)

// DocumentTypeRepo implementación del puerto DocumentTypeRepository sobre
// PostgreSQL (usable con pool o tx).
type DocumentTypeRepo struct {
	q Querier
}

// NewDocumentTypeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDocumentTypeRepository(q Querier) *DocumentTypeRepo {
	return &DocumentTypeRepo{q: q}
}

// Create persiste un nuevo tipo de documento.
func (r *DocumentTypeRepo) Create(t *entity.DocumentType) error {
	query := `
		INSERT INTO document_types (id, name, direction, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.Name, t.Direction, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert document type: %w", err)
	}
	return nil
}

// GetByID obtiene un tipo por ID.
func (r *DocumentTypeRepo) GetByID(id string) (*entity.DocumentType, error) {
	query := `SELECT id, name, direction, created_at, updated_at FROM document_types WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByName obtiene un tipo por nombre (único).
func (r *DocumentTypeRepo) GetByName(name string) (*entity.DocumentType, error) {
	query := `SELECT id, name, direction, created_at, updated_at FROM document_types WHERE name = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, name))
}

// Update actualiza un tipo existente.
func (r *DocumentTypeRepo) Update(t *entity.DocumentType) error {
	query := `UPDATE document_types SET name = $2, direction = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, t.ID, t.Name, t.Direction, t.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update document type: %w", err)
	}
	return nil
}

// List lista tipos ordenados por nombre con paginación.
func (r *DocumentTypeRepo) List(limit, offset int) ([]*entity.DocumentType, error) {
	query := `
		SELECT id, name, direction, created_at, updated_at
		FROM document_types ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list document types: %w", err)
	}
	defer rows.Close()
	var list []*entity.DocumentType
	for rows.Next() {
		var t entity.DocumentType
		if err := rows.Scan(&t.ID, &t.Name, &t.Direction, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan document type: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Delete elimina un tipo. ErrConflict si hay documentos registrados con él.
func (r *DocumentTypeRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM document_types WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete document type: %w", err)
	}
	return nil
}

func (r *DocumentTypeRepo) scanOne(row pgx.Row) (*entity.DocumentType, error) {
	var t entity.DocumentType
	err := row.Scan(&t.ID, &t.Name, &t.Direction, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document type: %w", err)
	}
	return &t, nil
}
