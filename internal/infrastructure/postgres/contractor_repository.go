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

var _ repository.ContractorRepository = (*ContractorRepo)(nil)

// ContractorRepo implementación del puerto ContractorRepository sobre
// PostgreSQL. Las lecturas resuelven GroupName con LEFT JOIN.
type ContractorRepo struct {
	q Querier
}

// NewContractorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewContractorRepository(q Querier) *ContractorRepo {
	return &ContractorRepo{q: q}
}

const contractorSelect = `
	SELECT c.id, c.name, COALESCE(c.group_id, ''), COALESCE(g.name, ''),
	       c.tax_id, c.email, c.phone, c.notes, c.created_at, c.updated_at
	FROM contractors c
	LEFT JOIN contractor_groups g ON g.id = c.group_id`

// Create persiste un nuevo contratista.
func (r *ContractorRepo) Create(c *entity.Contractor) error {
	query := `
		INSERT INTO contractors (id, name, group_id, tax_id, email, phone, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, nullIfEmpty(c.GroupID), c.TaxID, c.Email, c.Phone, c.Notes,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert contractor: %w", err)
	}
	return nil
}

// GetByID obtiene un contratista por ID.
func (r *ContractorRepo) GetByID(id string) (*entity.Contractor, error) {
	return r.scanOne(r.q.QueryRow(context.Background(), contractorSelect+` WHERE c.id = $1`, id))
}

// GetByName obtiene un contratista por nombre (único).
func (r *ContractorRepo) GetByName(name string) (*entity.Contractor, error) {
	return r.scanOne(r.q.QueryRow(context.Background(), contractorSelect+` WHERE c.name = $1`, name))
}

// Update actualiza un contratista existente.
func (r *ContractorRepo) Update(c *entity.Contractor) error {
	query := `
		UPDATE contractors SET name = $2, group_id = $3, tax_id = $4, email = $5, phone = $6, notes = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, nullIfEmpty(c.GroupID), c.TaxID, c.Email, c.Phone, c.Notes, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update contractor: %w", err)
	}
	return nil
}

// List lista contratistas ordenados por nombre con paginación.
func (r *ContractorRepo) List(limit, offset int) ([]*entity.Contractor, error) {
	query := contractorSelect + ` ORDER BY c.name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list contractors: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

// ListByGroup lista contratistas de un grupo.
func (r *ContractorRepo) ListByGroup(groupID string, limit, offset int) ([]*entity.Contractor, error) {
	query := contractorSelect + ` WHERE c.group_id = $1 ORDER BY c.name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, groupID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list contractors by group: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

// Delete elimina un contratista. ErrConflict si tiene documentos (PROTECT).
func (r *ContractorRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM contractors WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete contractor: %w", err)
	}
	return nil
}

func (r *ContractorRepo) scanOne(row pgx.Row) (*entity.Contractor, error) {
	var c entity.Contractor
	err := row.Scan(&c.ID, &c.Name, &c.GroupID, &c.GroupName, &c.TaxID, &c.Email, &c.Phone, &c.Notes, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contractor: %w", err)
	}
	return &c, nil
}

func (r *ContractorRepo) scanMany(rows pgx.Rows) ([]*entity.Contractor, error) {
	var list []*entity.Contractor
	for rows.Next() {
		var c entity.Contractor
		if err := rows.Scan(&c.ID, &c.Name, &c.GroupID, &c.GroupName, &c.TaxID, &c.Email, &c.Phone, &c.Notes, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan contractor: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
