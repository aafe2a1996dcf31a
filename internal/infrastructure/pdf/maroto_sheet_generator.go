// Package pdf genera la representación imprimible de una planilla de conteo.
//
// Layout de la página A4, el mismo de la vista de detalle de la app:
//
//	┌──────────────────────────────────────────────────────────────┐
//	│  HEADER: Boliche  │  Planilla + Fecha del evento             │
//	│  ──────────────────────────────────────────────────────────  │
//	│  TABLA: Producto │ C U D T (inicial) │ C U D T (final) │ GASTO │
//	│  ──────────────────────────────────────────────────────────  │
//	│  Glosario: C=CAJA  U=UNI  D=DEC  T=TOTAL                     │
//	└──────────────────────────────────────────────────────────────┘
package pdf

import (
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

	"github.com/tu-usuario/todo-barras/internal/application/usecase"
	"github.com/tu-usuario/todo-barras/internal/domain/entity"
	"github.com/tu-usuario/todo-barras/internal/domain/tally"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorInitial = &props.Color{Red: 6, Green: 95, Blue: 70}    // verde stock inicial
	colorFinal   = &props.Color{Red: 30, Green: 64, Blue: 175}  // azul stock final
	colorGasto   = &props.Color{Red: 153, Green: 27, Blue: 27}  // rojo gasto
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// Asegura que MarotoSheetGenerator implementa el puerto de exportación.
var _ usecase.SheetPDFGenerator = (*MarotoSheetGenerator)(nil)

// MarotoSheetGenerator implementa usecase.SheetPDFGenerator usando Maroto v2.
type MarotoSheetGenerator struct{}

// NewMarotoSheetGenerator construye el generador.
func NewMarotoSheetGenerator() *MarotoSheetGenerator { return &MarotoSheetGenerator{} }

// GenerateSheetPDF genera el PDF de la planilla y devuelve sus bytes.
func (g *MarotoSheetGenerator) GenerateSheetPDF(sheet *entity.StockSheet, venue *entity.VenueProfile) ([]byte, error) {
	venueName := "TODO BARRAS"
	if venue != nil {
		venueName = venue.Name
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Planilla "+sheet.Name, true).
		WithAuthor(venueName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(sheet, venueName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range sheet.Rows {
		m.AddRows(detailRow(r))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(glossaryRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: boliche (izq) y nombre + fecha de la planilla (der).
func headerRow(sheet *entity.StockSheet, venueName string) core.Row {
	fecha := sheet.EventDate.Format("02/01/2006")
	return row.New(16).Add(
		col.New(7).Add(
			text.New(venueName, props.Text{
				Style: fontstyle.Bold, Size: 13, Top: 1,
			}),
			text.New("PLANILLA DE CONTEO", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(sheet.Name, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: Producto | C U D T inicial | C U D T final | GASTO.
func tableHeaderRow() core.Row {
	h := func(label string, size int, color *props.Color) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: align.Center,
			Color: color, Top: 2,
		}))
	}
	return row.New(8).Add(
		col.New(3).Add(text.New("PRODUCTO", props.Text{
			Style: fontstyle.Bold, Size: 7, Align: align.Left, Top: 2,
		})),
		h("C", 1, colorInitial), h("U", 1, colorInitial),
		h("D", 1, colorInitial), h("T INI", 1, colorInitial),
		h("C", 1, colorFinal), h("U", 1, colorFinal),
		h("D", 1, colorFinal), h("T FIN", 1, colorFinal),
		h("GASTO", 1, colorGasto),
	)
}

// detailRow: una fila por producto, con totales y gasto calculados.
func detailRow(r entity.StockRow) core.Row {
	upc := r.Product.UnitsPerCase
	gasto := tally.Consumption(r)
	gastoColor := colorGasto
	if tally.IsRestock(gasto) {
		// reposición: se resalta en azul para distinguirla del gasto normal
		gastoColor = colorFinal
	}
	cell := func(v string, size int, color *props.Color, bold bool) core.Col {
		st := fontstyle.Normal
		if bold {
			st = fontstyle.Bold
		}
		return col.New(size).Add(text.New(v, props.Text{
			Size: 7, Align: align.Center, Top: 1, Color: color, Style: st,
		}))
	}
	return row.New(6).Add(
		col.New(3).Add(
			text.New(fmt.Sprintf("%s  (caja x%d)", r.Product.Name, upc), props.Text{
				Size: 7, Align: align.Left, Top: 1,
			}),
		),
		cell(fmt.Sprintf("%d", r.Initial.Cases), 1, nil, false),
		cell(fmt.Sprintf("%d", r.Initial.Units), 1, nil, false),
		cell(r.Initial.Fraction.StringFixed(1), 1, nil, false),
		cell(tally.Display(tally.ToUnits(r.Initial, upc)), 1, colorInitial, true),
		cell(fmt.Sprintf("%d", r.Final.Cases), 1, nil, false),
		cell(fmt.Sprintf("%d", r.Final.Units), 1, nil, false),
		cell(r.Final.Fraction.StringFixed(1), 1, nil, false),
		cell(tally.Display(tally.ToUnits(r.Final, upc)), 1, colorFinal, true),
		cell(tally.Display(gasto), 1, gastoColor, true),
	)
}

// glossaryRow: el glosario de la esquina de la vista original.
func glossaryRow() core.Row {
	return row.New(6).Add(
		col.New(12).Add(text.New(
			"C = CAJAS   U = UNIDADES   D = DÉCIMAS   T = TOTAL EN UNIDADES   GASTO = INICIAL - FINAL",
			props.Text{Size: 7, Color: colorGray, Top: 1},
		)),
	)
}
