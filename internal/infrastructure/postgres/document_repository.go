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

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo implementación del puerto DocumentRepository sobre PostgreSQL
// (usable con pool o tx). Los documentos son inmutables: solo INSERT y SELECT.
type DocumentRepo struct {
	q Querier
}

// NewDocumentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

const documentSelect = `
	SELECT d.id, d.number, d.type_id, t.name, d.direction,
	       d.warehouse_id, w.name, d.contractor_id, c.name,
	       d.transfer_id, d.date, d.notes, d.created_by, d.created_at
	FROM documents d
	JOIN document_types t ON t.id = d.type_id
	JOIN warehouses w ON w.id = d.warehouse_id
	JOIN contractors c ON c.id = d.contractor_id`

// Create persiste el documento y todas sus líneas.
func (r *DocumentRepo) Create(doc *entity.Document) error {
	ctx := context.Background()
	query := `
		INSERT INTO documents (id, number, type_id, direction, warehouse_id, contractor_id, transfer_id, date, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		doc.ID, doc.Number, doc.TypeID, doc.Direction, doc.WarehouseID, doc.ContractorID,
		doc.TransferID, doc.Date, doc.Notes, doc.CreatedBy, doc.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert document: %w", err)
	}
	lineQuery := `
		INSERT INTO document_lines (id, document_id, asset_id, amount)
		VALUES ($1, $2, $3, $4)`
	for _, l := range doc.Lines {
		if _, err := r.q.Exec(ctx, lineQuery, l.ID, doc.ID, l.AssetID, l.Amount); err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert document line: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un documento con su detalle.
func (r *DocumentRepo) GetByID(id string) (*entity.Document, error) {
	doc, err := r.scanOne(r.q.QueryRow(context.Background(), documentSelect+` WHERE d.id = $1`, id))
	if err != nil || doc == nil {
		return doc, err
	}
	doc.Lines, err = r.lines(doc.ID)
	return doc, err
}

// GetByNumber obtiene un documento por número (único), con su detalle.
func (r *DocumentRepo) GetByNumber(number string) (*entity.Document, error) {
	doc, err := r.scanOne(r.q.QueryRow(context.Background(), documentSelect+` WHERE d.number = $1`, number))
	if err != nil || doc == nil {
		return doc, err
	}
	doc.Lines, err = r.lines(doc.ID)
	return doc, err
}

// List lista documentos (sin líneas) con filtros opcionales, del más reciente
// al más antiguo.
func (r *DocumentRepo) List(filter repository.DocumentFilter) ([]*entity.Document, error) {
	query := documentSelect + ` WHERE 1=1`
	args := []any{}
	n := 0
	add := func(cond string, v any) {
		n++
		query += fmt.Sprintf(" AND %s $%d", cond, n)
		args = append(args, v)
	}
	if filter.WarehouseID != "" {
		add("d.warehouse_id =", filter.WarehouseID)
	}
	if filter.TypeID != "" {
		add("d.type_id =", filter.TypeID)
	}
	if filter.ContractorID != "" {
		add("d.contractor_id =", filter.ContractorID)
	}
	if !filter.From.IsZero() {
		add("d.date >=", filter.From)
	}
	if !filter.To.IsZero() {
		add("d.date <=", filter.To)
	}
	query += fmt.Sprintf(" ORDER BY d.date DESC, d.number DESC LIMIT $%d OFFSET $%d", n+1, n+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()
	var list []*entity.Document
	for rows.Next() {
		var d entity.Document
		if err := rows.Scan(
			&d.ID, &d.Number, &d.TypeID, &d.TypeName, &d.Direction,
			&d.WarehouseID, &d.WarehouseName, &d.ContractorID, &d.ContractorName,
			&d.TransferID, &d.Date, &d.Notes, &d.CreatedBy, &d.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

func (r *DocumentRepo) lines(documentID string) ([]entity.DocumentLine, error) {
	query := `
		SELECT l.id, l.document_id, l.asset_id, a.part_number, a.name, u.name, l.amount
		FROM document_lines l
		JOIN material_assets a ON a.id = l.asset_id
		JOIN measure_units u ON u.id = a.unit_id
		WHERE l.document_id = $1
		ORDER BY a.part_number`
	rows, err := r.q.Query(context.Background(), query, documentID)
	if err != nil {
		return nil, fmt.Errorf("document lines: %w", err)
	}
	defer rows.Close()
	var lines []entity.DocumentLine
	for rows.Next() {
		var l entity.DocumentLine
		if err := rows.Scan(&l.ID, &l.DocumentID, &l.AssetID, &l.PartNumber, &l.AssetName, &l.UnitName, &l.Amount); err != nil {
			return nil, fmt.Errorf("scan document line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func (r *DocumentRepo) scanOne(row pgx.Row) (*entity.Document, error) {
	var d entity.Document
	err := row.Scan(
		&d.ID, &d.Number, &d.TypeID, &d.TypeName, &d.Direction,
		&d.WarehouseID, &d.WarehouseName, &d.ContractorID, &d.ContractorName,
		&d.TransferID, &d.Date, &d.Notes, &d.CreatedBy, &d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return &d, nil
}
