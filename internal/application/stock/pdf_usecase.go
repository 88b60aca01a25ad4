package stock

import (
	"context"
	"fmt"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// DocumentPDFUseCase genera la representación imprimible de un documento
// registrado.
type DocumentPDFUseCase struct {
	docRepo   repository.DocumentRepository
	generator DocumentPDFGenerator
}

// NewDocumentPDFUseCase construye el caso de uso.
func NewDocumentPDFUseCase(docRepo repository.DocumentRepository, generator DocumentPDFGenerator) *DocumentPDFUseCase {
	return &DocumentPDFUseCase{docRepo: docRepo, generator: generator}
}

// Generate devuelve los bytes del PDF y el nombre de archivo sugerido.
// Devuelve domain.ErrNotFound si el documento no existe.
func (uc *DocumentPDFUseCase) Generate(ctx context.Context, documentID string) ([]byte, string, error) {
	doc, err := uc.docRepo.GetByID(documentID)
	if err != nil {
		return nil, "", err
	}
	if doc == nil {
		return nil, "", domain.ErrNotFound
	}
	data, err := uc.generator.GenerateDocumentPDF(ctx, doc)
	if err != nil {
		return nil, "", err
	}
	return data, fmt.Sprintf("documento-%s.pdf", doc.Number), nil
}
