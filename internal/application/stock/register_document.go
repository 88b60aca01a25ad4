package stock

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// RegisterDocumentUseCase registra documentos de movimiento de forma
// transaccional: valida tipo, almacén, contratista y bienes, y para documentos
// de salida verifica con lectura bloqueante que ninguna línea deje la
// existencia del almacén en negativo antes de persistir documento + líneas
// con Commit o Rollback.
type RegisterDocumentUseCase struct {
	txRunner       TxRunner
	typeRepo       repository.DocumentTypeRepository
	warehouseRepo  repository.WarehouseRepository
	contractorRepo repository.ContractorRepository
	assetRepo      repository.MaterialAssetRepository
	docRepo        repository.DocumentRepository
}

// NewRegisterDocumentUseCase construye el caso de uso.
func NewRegisterDocumentUseCase(
	txRunner TxRunner,
	typeRepo repository.DocumentTypeRepository,
	warehouseRepo repository.WarehouseRepository,
	contractorRepo repository.ContractorRepository,
	assetRepo repository.MaterialAssetRepository,
	docRepo repository.DocumentRepository,
) *RegisterDocumentUseCase {
	return &RegisterDocumentUseCase{
		txRunner:       txRunner,
		typeRepo:       typeRepo,
		warehouseRepo:  warehouseRepo,
		contractorRepo: contractorRepo,
		assetRepo:      assetRepo,
		docRepo:        docRepo,
	}
}

// Register valida y persiste un documento con sus líneas.
func (uc *RegisterDocumentUseCase) Register(ctx context.Context, userID string, in dto.RegisterDocumentRequest) (*dto.DocumentResponse, error) {
	docType, err := uc.typeRepo.GetByID(in.TypeID)
	if err != nil {
		return nil, err
	}
	if docType == nil {
		return nil, domain.ErrNotFound
	}
	warehouse, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	contractor, err := uc.contractorRepo.GetByID(in.ContractorID)
	if err != nil {
		return nil, err
	}
	if contractor == nil {
		return nil, domain.ErrNotFound
	}

	lines, err := uc.buildLines(in.Lines)
	if err != nil {
		return nil, err
	}

	number := strings.TrimSpace(in.Number)
	if number == "" {
		number = GenerateNumber(time.Now())
	}
	if existing, _ := uc.docRepo.GetByNumber(number); existing != nil {
		return nil, domain.ErrDuplicate
	}

	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}
	doc := &entity.Document{
		ID:             uuid.New().String(),
		Number:         number,
		TypeID:         docType.ID,
		TypeName:       docType.Name,
		Direction:      docType.Direction,
		WarehouseID:    warehouse.ID,
		WarehouseName:  warehouse.Name,
		ContractorID:   contractor.ID,
		ContractorName: contractor.Name,
		Date:           date,
		Notes:          in.Notes,
		Lines:          lines,
		CreatedBy:      userID,
		CreatedAt:      time.Now(),
	}
	for i := range doc.Lines {
		doc.Lines[i].DocumentID = doc.ID
	}

	err = uc.txRunner.Run(ctx, func(docRepo repository.DocumentRepository, stockRepo repository.StockRepository) error {
		if doc.Direction == entity.DirectionOut {
			if err := checkSufficientStock(stockRepo, doc.WarehouseID, doc.Lines); err != nil {
				return err
			}
		}
		return docRepo.Create(doc)
	})
	if err != nil {
		return nil, err
	}
	return ToDocumentResponse(doc), nil
}

// buildLines valida el detalle: al menos una línea, cantidades positivas,
// bienes existentes y sin repetir dentro del documento.
func (uc *RegisterDocumentUseCase) buildLines(in []dto.DocumentLineRequest) ([]entity.DocumentLine, error) {
	if len(in) == 0 {
		return nil, domain.ErrInvalidInput
	}
	seen := make(map[string]bool, len(in))
	lines := make([]entity.DocumentLine, 0, len(in))
	for _, l := range in {
		if !l.Amount.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		if seen[l.AssetID] {
			return nil, domain.ErrInvalidInput
		}
		seen[l.AssetID] = true
		asset, err := uc.assetRepo.GetByID(l.AssetID)
		if err != nil {
			return nil, err
		}
		if asset == nil {
			return nil, domain.ErrNotFound
		}
		lines = append(lines, entity.DocumentLine{
			ID:         uuid.New().String(),
			AssetID:    asset.ID,
			PartNumber: asset.PartNumber,
			AssetName:  asset.Name,
			UnitName:   asset.UnitName,
			Amount:     l.Amount,
		})
	}
	return lines, nil
}

// checkSufficientStock verifica que cada línea de salida tenga existencia
// suficiente en el almacén. Se ejecuta dentro de la transacción con lectura
// bloqueante por (almacén, bien) para evitar condiciones de carrera entre
// salidas concurrentes.
func checkSufficientStock(stockRepo repository.StockRepository, warehouseID string, lines []entity.DocumentLine) error {
	for _, l := range lines {
		balance, err := stockRepo.BalanceForUpdate(warehouseID, l.AssetID)
		if err != nil {
			return err
		}
		if balance.LessThan(l.Amount) {
			return domain.ErrInsufficientStock
		}
	}
	return nil
}

// GenerateNumber genera un número de documento único legible: D-AAAAMMDD-XXXXXX.
func GenerateNumber(now time.Time) string {
	return fmt.Sprintf("D-%s-%s", now.Format("20060102"), strings.ToUpper(uuid.New().String()[:6]))
}

// ToDocumentResponse mapea un documento (con líneas) a su DTO de salida.
func ToDocumentResponse(d *entity.Document) *dto.DocumentResponse {
	if d == nil {
		return nil
	}
	lines := make([]dto.DocumentLineResponse, 0, len(d.Lines))
	for _, l := range d.Lines {
		lines = append(lines, dto.DocumentLineResponse{
			ID:           l.ID,
			AssetID:      l.AssetID,
			PartNumber:   l.PartNumber,
			AssetName:    l.AssetName,
			UnitName:     l.UnitName,
			Amount:       l.Amount,
			SignedAmount: d.SignedAmount(l),
		})
	}
	return &dto.DocumentResponse{
		ID:             d.ID,
		Number:         d.Number,
		TypeID:         d.TypeID,
		TypeName:       d.TypeName,
		Direction:      d.Direction,
		WarehouseID:    d.WarehouseID,
		WarehouseName:  d.WarehouseName,
		ContractorID:   d.ContractorID,
		ContractorName: d.ContractorName,
		TransferID:     d.TransferID,
		Date:           d.Date,
		Notes:          d.Notes,
		Lines:          lines,
		CreatedBy:      d.CreatedBy,
		CreatedAt:      d.CreatedAt,
	}
}
