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

var _ repository.ContractorGroupRepository = (*ContractorGroupRepo)(nil)

// ContractorGroupRepo implementación del puerto ContractorGroupRepository
// sobre PostgreSQL, con la misma mecánica de ruta materializada que
// WarehouseRepo.
type ContractorGroupRepo struct {
	q Querier
}

// NewContractorGroupRepository construye el adaptador. Pasar pool o tx (Querier).
func NewContractorGroupRepository(q Querier) *ContractorGroupRepo {
	return &ContractorGroupRepo{q: q}
}

const groupSelect = `
	SELECT id, name, COALESCE(parent_id, ''), path, depth, created_at, updated_at
	FROM contractor_groups`

// Create persiste un nuevo grupo.
func (r *ContractorGroupRepo) Create(g *entity.ContractorGroup) error {
	query := `
		INSERT INTO contractor_groups (id, name, parent_id, path, depth, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		g.ID, g.Name, nullIfEmpty(g.ParentID), g.Path, g.Depth, g.CreatedAt, g.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert contractor group: %w", err)
	}
	return nil
}

// GetByID obtiene un grupo por ID.
func (r *ContractorGroupRepo) GetByID(id string) (*entity.ContractorGroup, error) {
	return r.scanOne(r.q.QueryRow(context.Background(), groupSelect+` WHERE id = $1`, id))
}

// GetByName obtiene un grupo por nombre (único en el árbol).
func (r *ContractorGroupRepo) GetByName(name string) (*entity.ContractorGroup, error) {
	return r.scanOne(r.q.QueryRow(context.Background(), groupSelect+` WHERE name = $1`, name))
}

// Update persiste nombre, padre, path y profundidad del nodo.
func (r *ContractorGroupRepo) Update(g *entity.ContractorGroup) error {
	query := `
		UPDATE contractor_groups SET name = $2, parent_id = $3, path = $4, depth = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		g.ID, g.Name, nullIfEmpty(g.ParentID), g.Path, g.Depth, g.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update contractor group: %w", err)
	}
	return nil
}

// UpdateSubtreePaths reescribe el prefijo de ruta de los descendientes.
// Prefijo exacto (left), no LIKE: % y _ en nombres no son comodines.
func (r *ContractorGroupRepo) UpdateSubtreePaths(oldPath, newPath string) error {
	depthDelta := entity.PathDepth(newPath) - entity.PathDepth(oldPath)
	query := `
		UPDATE contractor_groups
		SET path = $2 || substr(path, length($1) + 1), depth = depth + $3
		WHERE left(path, length($1) + 1) = $1 || '/'`
	_, err := r.q.Exec(context.Background(), query, oldPath, newPath, depthDelta)
	if err != nil {
		return fmt.Errorf("update subtree paths: %w", err)
	}
	return nil
}

// List lista grupos en orden de árbol con paginación.
func (r *ContractorGroupRepo) List(limit, offset int) ([]*entity.ContractorGroup, error) {
	query := groupSelect + ` ORDER BY path LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list contractor groups: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

// Tree devuelve todos los grupos en orden de árbol.
func (r *ContractorGroupRepo) Tree() ([]*entity.ContractorGroup, error) {
	rows, err := r.q.Query(context.Background(), groupSelect+` ORDER BY path`)
	if err != nil {
		return nil, fmt.Errorf("contractor group tree: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

// Children lista hijos directos; con parentID vacío lista las raíces.
func (r *ContractorGroupRepo) Children(parentID string) ([]*entity.ContractorGroup, error) {
	var rows pgx.Rows
	var err error
	if parentID == "" {
		rows, err = r.q.Query(context.Background(), groupSelect+` WHERE parent_id IS NULL ORDER BY name`)
	} else {
		rows, err = r.q.Query(context.Background(), groupSelect+` WHERE parent_id = $1 ORDER BY name`, parentID)
	}
	if err != nil {
		return nil, fmt.Errorf("contractor group children: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

// HasChildren indica si el grupo tiene hijos directos.
func (r *ContractorGroupRepo) HasChildren(id string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM contractor_groups WHERE parent_id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("contractor group has children: %w", err)
	}
	return exists, nil
}

// Delete elimina un grupo. ErrConflict si tiene hijos o contratistas.
func (r *ContractorGroupRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM contractor_groups WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete contractor group: %w", err)
	}
	return nil
}

func (r *ContractorGroupRepo) scanOne(row pgx.Row) (*entity.ContractorGroup, error) {
	var g entity.ContractorGroup
	err := row.Scan(&g.ID, &g.Name, &g.ParentID, &g.Path, &g.Depth, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contractor group: %w", err)
	}
	return &g, nil
}

func (r *ContractorGroupRepo) scanMany(rows pgx.Rows) ([]*entity.ContractorGroup, error) {
	var list []*entity.ContractorGroup
	for rows.Next() {
		var g entity.ContractorGroup
		if err := rows.Scan(&g.ID, &g.Name, &g.ParentID, &g.Path, &g.Depth, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan contractor group: %w", err)
		}
		list = append(list, &g)
	}
	return list, rows.Err()
}
