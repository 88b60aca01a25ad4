package stock

import (
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// DocumentQueryUseCase consultas de documentos registrados.
type DocumentQueryUseCase struct {
	docRepo repository.DocumentRepository
}

// NewDocumentQueryUseCase construye el caso de uso.
func NewDocumentQueryUseCase(docRepo repository.DocumentRepository) *DocumentQueryUseCase {
	return &DocumentQueryUseCase{docRepo: docRepo}
}

// GetByID obtiene un documento con su detalle.
func (uc *DocumentQueryUseCase) GetByID(id string) (*dto.DocumentResponse, error) {
	doc, err := uc.docRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}
	return ToDocumentResponse(doc), nil
}

// List lista documentos (sin líneas) con filtros y paginación.
func (uc *DocumentQueryUseCase) List(filter repository.DocumentFilter) (*dto.DocumentListResponse, error) {
	list, err := uc.docRepo.List(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DocumentResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *ToDocumentResponse(d))
	}
	return &dto.DocumentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	}, nil
}
