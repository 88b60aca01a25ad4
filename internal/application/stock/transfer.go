package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// TransferUseCase traslada bienes entre dos almacenes creando atómicamente un
// par de documentos (salida en origen, entrada en destino) unidos por un
// TransferID común.
type TransferUseCase struct {
	txRunner       TxRunner
	typeRepo       repository.DocumentTypeRepository
	warehouseRepo  repository.WarehouseRepository
	contractorRepo repository.ContractorRepository
	assetRepo      repository.MaterialAssetRepository
}

// NewTransferUseCase construye el caso de uso.
func NewTransferUseCase(
	txRunner TxRunner,
	typeRepo repository.DocumentTypeRepository,
	warehouseRepo repository.WarehouseRepository,
	contractorRepo repository.ContractorRepository,
	assetRepo repository.MaterialAssetRepository,
) *TransferUseCase {
	return &TransferUseCase{
		txRunner:       txRunner,
		typeRepo:       typeRepo,
		warehouseRepo:  warehouseRepo,
		contractorRepo: contractorRepo,
		assetRepo:      assetRepo,
	}
}

// Transfer valida origen, destino, tipos y líneas, y registra los dos
// documentos en una sola transacción. La existencia del origen debe alcanzar
// para todas las líneas.
func (uc *TransferUseCase) Transfer(ctx context.Context, userID string, in dto.TransferRequest) (*dto.TransferResponse, error) {
	if in.FromWarehouseID == in.ToWarehouseID {
		return nil, domain.ErrInvalidInput
	}
	from, err := uc.warehouseRepo.GetByID(in.FromWarehouseID)
	if err != nil {
		return nil, err
	}
	to, err := uc.warehouseRepo.GetByID(in.ToWarehouseID)
	if err != nil {
		return nil, err
	}
	if from == nil || to == nil {
		return nil, domain.ErrNotFound
	}
	outType, err := uc.typeRepo.GetByID(in.OutTypeID)
	if err != nil {
		return nil, err
	}
	inType, err := uc.typeRepo.GetByID(in.InTypeID)
	if err != nil {
		return nil, err
	}
	if outType == nil || inType == nil {
		return nil, domain.ErrNotFound
	}
	// El tipo de salida debe restar y el de entrada sumar.
	if outType.Direction != entity.DirectionOut || inType.Direction != entity.DirectionIn {
		return nil, domain.ErrInvalidInput
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

	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}
	transferID := uuid.New().String()
	now := time.Now()

	outDoc := &entity.Document{
		ID:             uuid.New().String(),
		Number:         GenerateNumber(now),
		TypeID:         outType.ID,
		TypeName:       outType.Name,
		Direction:      outType.Direction,
		WarehouseID:    from.ID,
		WarehouseName:  from.Name,
		ContractorID:   contractor.ID,
		ContractorName: contractor.Name,
		TransferID:     transferID,
		Date:           date,
		Notes:          in.Notes,
		Lines:          cloneLines(lines, ""),
		CreatedBy:      userID,
		CreatedAt:      now,
	}
	inDoc := &entity.Document{
		ID:             uuid.New().String(),
		Number:         GenerateNumber(now),
		TypeID:         inType.ID,
		TypeName:       inType.Name,
		Direction:      inType.Direction,
		WarehouseID:    to.ID,
		WarehouseName:  to.Name,
		ContractorID:   contractor.ID,
		ContractorName: contractor.Name,
		TransferID:     transferID,
		Date:           date,
		Notes:          in.Notes,
		Lines:          cloneLines(lines, ""),
		CreatedBy:      userID,
		CreatedAt:      now,
	}
	for i := range outDoc.Lines {
		outDoc.Lines[i].DocumentID = outDoc.ID
	}
	for i := range inDoc.Lines {
		inDoc.Lines[i].DocumentID = inDoc.ID
	}

	err = uc.txRunner.Run(ctx, func(docRepo repository.DocumentRepository, stockRepo repository.StockRepository) error {
		if err := checkSufficientStock(stockRepo, from.ID, outDoc.Lines); err != nil {
			return err
		}
		if err := docRepo.Create(outDoc); err != nil {
			return err
		}
		return docRepo.Create(inDoc)
	})
	if err != nil {
		return nil, err
	}
	return &dto.TransferResponse{
		TransferID: transferID,
		Out:        *ToDocumentResponse(outDoc),
		In:         *ToDocumentResponse(inDoc),
	}, nil
}

func (uc *TransferUseCase) buildLines(in []dto.DocumentLineRequest) ([]entity.DocumentLine, error) {
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
			AssetID:    asset.ID,
			PartNumber: asset.PartNumber,
			AssetName:  asset.Name,
			UnitName:   asset.UnitName,
			Amount:     l.Amount,
		})
	}
	return lines, nil
}

// cloneLines copia el detalle con IDs de línea nuevos para cada documento.
func cloneLines(lines []entity.DocumentLine, documentID string) []entity.DocumentLine {
	out := make([]entity.DocumentLine, len(lines))
	for i, l := range lines {
		l.ID = uuid.New().String()
		l.DocumentID = documentID
		out[i] = l
	}
	return out
}
