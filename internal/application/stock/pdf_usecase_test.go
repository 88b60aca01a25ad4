package stock

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

type fakePDFGenerator struct {
	lastDoc *entity.Document
}

func (g *fakePDFGenerator) GenerateDocumentPDF(_ context.Context, doc *entity.Document) ([]byte, error) {
	g.lastDoc = doc
	return []byte("%PDF-1.7"), nil
}

func TestDocumentPDF_Generate(t *testing.T) {
	docs := newFakeDocStore()
	doc := &entity.Document{ID: "d1", Number: "D-20260829-ABC123"}
	require.NoError(t, docs.Create(doc))

	gen := &fakePDFGenerator{}
	uc := NewDocumentPDFUseCase(docs, gen)

	data, filename, err := uc.Generate(context.Background(), "d1")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.7"), data)
	assert.Equal(t, "documento-D-20260829-ABC123.pdf", filename)
	assert.Same(t, doc, gen.lastDoc)
}

func TestDocumentPDF_DocumentoInexistente(t *testing.T) {
	uc := NewDocumentPDFUseCase(newFakeDocStore(), &fakePDFGenerator{})

	_, _, err := uc.Generate(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
