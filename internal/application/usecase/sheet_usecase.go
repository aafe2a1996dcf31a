package usecase

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/tu-usuario/todo-barras/internal/application/dto"
	"github.com/tu-usuario/todo-barras/internal/domain"
	"github.com/tu-usuario/todo-barras/internal/domain/entity"
	"github.com/tu-usuario/todo-barras/internal/domain/repository"
	"github.com/tu-usuario/todo-barras/internal/domain/tally"
)

// Órdenes soportados para el historial de planillas.
const (
	SortDateDesc = "date_desc" // por defecto: más recientes primero
	SortDateAsc  = "date_asc"
	SortNameAsc  = "name_asc"
	SortNameDesc = "name_desc"
)

// placeholderSheetName es el texto con que el formulario precarga el campo
// de nombre; crear una planilla con ese literal se rechaza igual que el vacío.
const placeholderSheetName = "EVENTO."

const eventDateLayout = "2006-01-02"

// SheetUseCase casos de uso de planillas: creación desde el catálogo,
// ajustes de contadores, historial ordenado, borrado y exportación.
type SheetUseCase struct {
	sheets  repository.SheetRepository
	catalog repository.CatalogRepository
	venue   repository.VenueRepository
	pdf     SheetPDFGenerator
}

// NewSheetUseCase construye el caso de uso. El generador de PDF puede ser
// nil si la instalación no exporta planillas.
func NewSheetUseCase(sheets repository.SheetRepository, catalog repository.CatalogRepository, venue repository.VenueRepository, pdf SheetPDFGenerator) *SheetUseCase {
	return &SheetUseCase{sheets: sheets, catalog: catalog, venue: venue, pdf: pdf}
}

// Create crea una planilla nueva copiando el catálogo actual con todos los
// contadores en cero y la antepone al historial.
//
// Rechaza con ErrValidation el nombre vacío o igual al texto de precarga del
// formulario, y la fecha ausente o mal formada. El nombre se guarda en
// mayúsculas; cada fila congela el UnitsPerCase vigente del catálogo.
func (uc *SheetUseCase) Create(in dto.CreateSheetRequest) (*dto.SheetResponse, error) {
	name := strings.ToUpper(strings.TrimSpace(in.Name))
	if name == "" || strings.EqualFold(name, placeholderSheetName) {
		return nil, domain.ErrValidation
	}
	eventDate, err := time.Parse(eventDateLayout, in.EventDate)
	if err != nil {
		return nil, domain.ErrValidation
	}
	catalog, err := uc.catalog.List()
	if err != nil {
		return nil, err
	}
	rows := make([]entity.StockRow, 0, len(catalog))
	for _, p := range catalog {
		rows = append(rows, entity.StockRow{
			Product: p,
			Initial: entity.ZeroTriple(),
			Final:   entity.ZeroTriple(),
		})
	}
	sheet := &entity.StockSheet{
		ID:        uuid.New().String(),
		Name:      name,
		EventDate: eventDate,
		CreatedAt: time.Now(),
		Rows:      rows,
	}
	if err := uc.sheets.Insert(sheet); err != nil {
		return nil, err
	}
	return toSheetResponse(sheet), nil
}

// List devuelve el historial en el orden pedido. La vista es no destructiva:
// el orden de inserción del store no cambia y los empates conservan el orden
// relativo previo (ordenamiento estable).
func (uc *SheetUseCase) List(order string) (*dto.SheetListResponse, error) {
	if order == "" {
		order = SortDateDesc
	}
	switch order {
	case SortDateDesc, SortDateAsc, SortNameAsc, SortNameDesc:
	default:
		return nil, domain.ErrValidation
	}
	sheets, err := uc.sheets.List()
	if err != nil {
		return nil, err
	}
	view := make([]*entity.StockSheet, len(sheets))
	copy(view, sheets)

	cl := collate.New(language.Spanish, collate.IgnoreCase)
	sort.SliceStable(view, func(i, j int) bool {
		a, b := view[i], view[j]
		switch order {
		case SortDateAsc:
			return a.CreatedAt.Before(b.CreatedAt)
		case SortNameAsc:
			return cl.CompareString(a.Name, b.Name) < 0
		case SortNameDesc:
			return cl.CompareString(a.Name, b.Name) > 0
		default:
			return b.CreatedAt.Before(a.CreatedAt)
		}
	})

	items := make([]dto.SheetSummaryResponse, 0, len(view))
	for _, s := range view {
		items = append(items, dto.SheetSummaryResponse{
			ID:        s.ID,
			Name:      s.Name,
			EventDate: s.EventDate.Format(eventDateLayout),
			CreatedAt: s.CreatedAt,
		})
	}
	return &dto.SheetListResponse{Items: items, Total: len(items), Sort: order}, nil
}

// Get devuelve una planilla completa con totales y gasto por fila.
func (uc *SheetUseCase) Get(id string) (*dto.SheetResponse, error) {
	sheet, err := uc.sheets.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sheet == nil {
		return nil, domain.ErrNotFound
	}
	return toSheetResponse(sheet), nil
}

// Adjust aplica un incremento/decremento a un contador de una fila y
// devuelve la planilla recalculada. Muta exactamente la planilla con ese id.
func (uc *SheetUseCase) Adjust(id string, rowIndex int, in dto.AdjustCountRequest) (*dto.SheetResponse, error) {
	field, ok := parseField(in.Field)
	if !ok || in.Delta == 0 {
		return nil, domain.ErrValidation
	}
	if in.Section != "initial" && in.Section != "final" {
		return nil, domain.ErrValidation
	}
	sheet, err := uc.sheets.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sheet == nil {
		return nil, domain.ErrNotFound
	}
	if rowIndex < 0 || rowIndex >= len(sheet.Rows) {
		return nil, domain.ErrNotFound
	}

	delta := decimal.NewFromInt(int64(in.Delta))
	if field == tally.FieldFraction {
		// el paso de las décimas es fijo: solo importa el signo del delta
		delta = decimal.NewFromFloat(0.1)
		if in.Delta < 0 {
			delta = delta.Neg()
		}
	}

	row := &sheet.Rows[rowIndex]
	if in.Section == "initial" {
		row.Initial = tally.ApplyDelta(row.Initial, field, delta)
	} else {
		row.Final = tally.ApplyDelta(row.Final, field, delta)
	}

	if err := uc.sheets.Update(sheet); err != nil {
		return nil, err
	}
	return toSheetResponse(sheet), nil
}

// Delete elimina la planilla con ese id. La confirmación previa es asunto
// del cliente; acá el borrado es incondicional. Id ausente → ErrNotFound.
func (uc *SheetUseCase) Delete(id string) error {
	return uc.sheets.Delete(id)
}

// ExportPDF genera la representación imprimible de una planilla.
func (uc *SheetUseCase) ExportPDF(id string) ([]byte, error) {
	if uc.pdf == nil {
		return nil, domain.ErrNotFound
	}
	sheet, err := uc.sheets.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sheet == nil {
		return nil, domain.ErrNotFound
	}
	venue, err := uc.venue.Get()
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateSheetPDF(sheet, venue)
}

func parseField(s string) (tally.Field, bool) {
	switch s {
	case "cases":
		return tally.FieldCases, true
	case "units":
		return tally.FieldUnits, true
	case "fraction":
		return tally.FieldFraction, true
	default:
		return 0, false
	}
}

func toTripleResponse(t entity.CountTriple, unitsPerCase int) dto.CountTripleResponse {
	return dto.CountTripleResponse{
		Cases:    t.Cases,
		Units:    t.Units,
		Fraction: t.Fraction.StringFixed(1),
		Total:    tally.Display(tally.ToUnits(t, unitsPerCase)),
	}
}

func toSheetResponse(s *entity.StockSheet) *dto.SheetResponse {
	rows := make([]dto.SheetRowResponse, 0, len(s.Rows))
	for _, r := range s.Rows {
		gasto := tally.Consumption(r)
		rows = append(rows, dto.SheetRowResponse{
			Product:      r.Product.Name,
			UnitsPerCase: r.Product.UnitsPerCase,
			Initial:      toTripleResponse(r.Initial, r.Product.UnitsPerCase),
			Final:        toTripleResponse(r.Final, r.Product.UnitsPerCase),
			Gasto:        tally.Display(gasto),
			Restocked:    tally.IsRestock(gasto),
		})
	}
	return &dto.SheetResponse{
		ID:        s.ID,
		Name:      s.Name,
		EventDate: s.EventDate.Format(eventDateLayout),
		CreatedAt: s.CreatedAt,
		Rows:      rows,
	}
}
