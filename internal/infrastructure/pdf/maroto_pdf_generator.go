// Package pdf implementa la representación imprimible de un documento de
// movimiento de inventario usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Tipo de documento + Dirección  │  N° + Fecha       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ALMACÉN: ruta completa en el árbol                         │
//	│  CONTRATISTA: nombre + datos de contacto                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: N° Parte | Descripción | Unidad | Cantidad | Delta  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de líneas + leyenda                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorIn      = &props.Color{Red: 0, Green: 120, Blue: 60}
	colorOut     = &props.Color{Red: 170, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa stock.DocumentPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateDocumentPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateDocumentPDF(_ context.Context, doc *entity.Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Documento de inventario "+doc.Number, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(almacenRow(doc))
	m.AddRows(contratistaRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(doc) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(footerRows(doc)...)

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: tipo + dirección (izq) y número + fecha (der).
func headerRow(doc *entity.Document) core.Row {
	dirLabel, dirColor := "ENTRADA", colorIn
	if doc.Direction == entity.DirectionOut {
		dirLabel, dirColor = "SALIDA", colorOut
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(doc.TypeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(dirLabel, props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 9, Color: dirColor,
			}),
		),
		col.New(5).Add(
			text.New("DOCUMENTO DE MOVIMIENTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(doc.Number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+doc.Date.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// almacenRow: almacén afectado por el movimiento.
func almacenRow(doc *entity.Document) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("ALMACÉN", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(doc.WarehouseName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
		),
	)
}

// contratistaRow: contraparte del movimiento.
func contratistaRow(doc *entity.Document) core.Row {
	notas := nonEmpty(doc.Notes, "—")
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CONTRATISTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(doc.ContractorName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New("Notas: "+notas, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("N° Parte", 3, align.Left),
		h("Descripción del bien", 4, align.Left),
		h("Unidad", 2, align.Center),
		h("Cantidad", 2, align.Right),
		h("Delta", 1, align.Right),
	)
}

// tableLineRows: una fila por línea del documento, con el delta firmado.
func tableLineRows(doc *entity.Document) []core.Row {
	result := make([]core.Row, 0, len(doc.Lines))
	for _, l := range doc.Lines {
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(
				l.PartNumber,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				l.AssetName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				l.UnitName,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				l.Amount.String(),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				doc.SignedAmount(l).String(),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// footerRows: resumen y leyenda.
func footerRows(doc *entity.Document) []core.Row {
	rows := []core.Row{
		row.New(8).Add(
			col.New(8),
			col.New(4).Add(text.New(
				fmt.Sprintf("Total de líneas: %d", len(doc.Lines)),
				props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2, Right: 1},
			)),
		),
	}
	if doc.TransferID != "" {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New("Parte de un traslado entre almacenes. Traslado: "+doc.TransferID, props.Text{
				Size: 7, Color: colorGray, Top: 1,
			}),
		)))
	}
	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New(
			"Documento de movimiento de inventario. Conserve este soporte para auditoría de existencias.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	)))
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
