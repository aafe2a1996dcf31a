package memstate

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/todo-barras/internal/domain/entity"
)

// Formas persistidas de los tres blobs JSON. Los nombres de campo replican
// el formato del almacenamiento local de la app original para que un blob
// exportado de ella siga siendo legible.

type configRecord struct {
	Title        string    `json:"title"`
	Operator     string    `json:"operator,omitempty"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type templateRecord struct {
	Product     string `json:"product"`
	UnitsPerBox int    `json:"unitsPerBox"`
}

type rowRecord struct {
	Product     string  `json:"product"`
	UnitsPerBox int     `json:"unitsPerBox"`
	IniC        int     `json:"iniC"`
	IniU        int     `json:"iniU"`
	IniQ        float64 `json:"iniQ"`
	FinC        int     `json:"finC"`
	FinU        int     `json:"finU"`
	FinQ        float64 `json:"finQ"`
}

type sheetRecord struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Date      string      `json:"date"` // fecha del evento, "2006-01-02"
	CreatedAt time.Time   `json:"createdAt"`
	Data      []rowRecord `json:"data"`
}

const sheetDateLayout = "2006-01-02"

// fromTenths reconstruye la décima persistida como número JSON.
// Round(1) garantiza el punto fijo aunque el float venga con ruido binario.
func fromTenths(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(1)
}

func toConfigRecord(p *entity.VenueProfile) configRecord {
	return configRecord{
		Title:        p.Name,
		Operator:     p.Operator,
		PasswordHash: p.PasswordHash,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func fromConfigRecord(r configRecord) *entity.VenueProfile {
	return &entity.VenueProfile{
		Name:         r.Title,
		Operator:     r.Operator,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func toTemplateRecords(catalog []entity.ProductDefinition) []templateRecord {
	out := make([]templateRecord, 0, len(catalog))
	for _, p := range catalog {
		out = append(out, templateRecord{Product: p.Name, UnitsPerBox: p.UnitsPerCase})
	}
	return out
}

func fromTemplateRecords(records []templateRecord) []entity.ProductDefinition {
	out := make([]entity.ProductDefinition, 0, len(records))
	for _, r := range records {
		out = append(out, entity.ProductDefinition{Name: r.Product, UnitsPerCase: r.UnitsPerBox})
	}
	return out
}

func toSheetRecord(s *entity.StockSheet) sheetRecord {
	data := make([]rowRecord, 0, len(s.Rows))
	for _, row := range s.Rows {
		data = append(data, rowRecord{
			Product:     row.Product.Name,
			UnitsPerBox: row.Product.UnitsPerCase,
			IniC:        row.Initial.Cases,
			IniU:        row.Initial.Units,
			IniQ:        row.Initial.Fraction.InexactFloat64(),
			FinC:        row.Final.Cases,
			FinU:        row.Final.Units,
			FinQ:        row.Final.Fraction.InexactFloat64(),
		})
	}
	return sheetRecord{
		ID:        s.ID,
		Name:      s.Name,
		Date:      s.EventDate.Format(sheetDateLayout),
		CreatedAt: s.CreatedAt,
		Data:      data,
	}
}

func fromSheetRecord(r sheetRecord) *entity.StockSheet {
	eventDate, _ := time.Parse(sheetDateLayout, r.Date)
	rows := make([]entity.StockRow, 0, len(r.Data))
	for _, d := range r.Data {
		rows = append(rows, entity.StockRow{
			Product: entity.ProductDefinition{Name: d.Product, UnitsPerCase: d.UnitsPerBox},
			Initial: entity.CountTriple{Cases: d.IniC, Units: d.IniU, Fraction: fromTenths(d.IniQ)},
			Final:   entity.CountTriple{Cases: d.FinC, Units: d.FinU, Fraction: fromTenths(d.FinQ)},
		})
	}
	return &entity.StockSheet{
		ID:        r.ID,
		Name:      r.Name,
		EventDate: eventDate,
		CreatedAt: r.CreatedAt,
		Rows:      rows,
	}
}
