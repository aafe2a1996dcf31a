package memstate

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/todo-barras/internal/domain/entity"
	"github.com/tu-usuario/todo-barras/internal/infrastructure/storage"
	"github.com/tu-usuario/todo-barras/pkg/logger"
)

// fakeGateway almacén clave/valor en memoria para los tests.
type fakeGateway struct {
	data map[string][]byte
	puts int
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{data: map[string][]byte{}}
}

func (g *fakeGateway) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := g.data[key]
	return v, ok, nil
}

func (g *fakeGateway) Put(_ context.Context, key string, value []byte) error {
	g.data[key] = append([]byte(nil), value...)
	g.puts++
	return nil
}

func (g *fakeGateway) Close() error { return nil }

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func loadedStore(t *testing.T, gw storage.Gateway) *Store {
	t.Helper()
	s := New(gw, testLogger())
	require.NoError(t, s.Load(context.Background()))
	return s
}

func sampleSheet() *entity.StockSheet {
	return &entity.StockSheet{
		ID:        "p-1",
		Name:      "SÁBADO",
		EventDate: time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Date(2026, 8, 29, 22, 15, 0, 0, time.UTC),
		Rows: []entity.StockRow{
			{
				Product: entity.ProductDefinition{Name: "CAMPARI", UnitsPerCase: 6},
				Initial: entity.CountTriple{Cases: 2, Units: 3, Fraction: decimal.NewFromFloat(0.5)},
				Final:   entity.CountTriple{Cases: 1, Units: 1, Fraction: decimal.NewFromFloat(0.2)},
			},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Carga inicial
// ──────────────────────────────────────────────────────────────────────────────

func TestLoad_SinDatosArrancaConCatalogoSemilla(t *testing.T) {
	s := loadedStore(t, newFakeGateway())

	catalog, err := s.Catalog().List()
	require.NoError(t, err)
	assert.Equal(t, DefaultCatalog(), catalog)

	venue, err := s.Venue().Get()
	require.NoError(t, err)
	assert.Nil(t, venue, "sin onboarding no hay perfil")

	sheets, err := s.Sheets().List()
	require.NoError(t, err)
	assert.Empty(t, sheets)
}

// TestLoad_JSONMalformadoSeTrataComoAusente: un blob ilegible no tira la
// aplicación; se arranca con estado limpio para esa clave.
func TestLoad_JSONMalformadoSeTrataComoAusente(t *testing.T) {
	gw := newFakeGateway()
	gw.data[storage.KeyTemplate] = []byte("{esto no es json")
	gw.data[storage.KeyEvents] = []byte("[tampoco")

	s := loadedStore(t, gw)

	catalog, err := s.Catalog().List()
	require.NoError(t, err)
	assert.Equal(t, DefaultCatalog(), catalog, "plantilla ilegible cae a la semilla")

	sheets, err := s.Sheets().List()
	require.NoError(t, err)
	assert.Empty(t, sheets)
}

// ──────────────────────────────────────────────────────────────────────────────
// Write-through y viaje de ida y vuelta
// ──────────────────────────────────────────────────────────────────────────────

func TestRoundTrip_PlanillasConservanIdsOrdenYContadores(t *testing.T) {
	gw := newFakeGateway()
	s := loadedStore(t, gw)

	older := sampleSheet()
	newer := sampleSheet()
	newer.ID = "p-2"
	newer.Name = "DOMINGO"
	require.NoError(t, s.Sheets().Insert(older))
	require.NoError(t, s.Sheets().Insert(newer))

	// un proceso nuevo sobre el mismo gateway ve exactamente lo mismo
	s2 := loadedStore(t, gw)
	sheets, err := s2.Sheets().List()
	require.NoError(t, err)

	require.Len(t, sheets, 2)
	assert.Equal(t, "p-2", sheets[0].ID, "la más reciente sigue primera")
	assert.Equal(t, "p-1", sheets[1].ID)

	got := sheets[1]
	assert.Equal(t, "SÁBADO", got.Name)
	assert.Equal(t, "2026-08-29", got.EventDate.Format("2006-01-02"))
	assert.True(t, got.CreatedAt.Equal(older.CreatedAt))
	require.Len(t, got.Rows, 1)
	row := got.Rows[0]
	assert.Equal(t, 6, row.Product.UnitsPerCase)
	assert.Equal(t, 2, row.Initial.Cases)
	assert.Equal(t, 3, row.Initial.Units)
	assert.Equal(t, "0.5", row.Initial.Fraction.StringFixed(1), "la décima sobrevive el paso por float")
	assert.Equal(t, "0.2", row.Final.Fraction.StringFixed(1))
}

func TestRoundTrip_PerfilYCatalogo(t *testing.T) {
	gw := newFakeGateway()
	s := loadedStore(t, gw)

	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	require.NoError(t, s.Venue().Save(&entity.VenueProfile{
		Name: "LA FÁBRICA", Operator: "Juan", PasswordHash: "$2a$hash", CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, s.Catalog().Replace([]entity.ProductDefinition{
		{Name: "APEROL", UnitsPerCase: 12},
	}))

	s2 := loadedStore(t, gw)
	venue, err := s2.Venue().Get()
	require.NoError(t, err)
	require.NotNil(t, venue)
	assert.Equal(t, "LA FÁBRICA", venue.Name)
	assert.Equal(t, "$2a$hash", venue.PasswordHash)

	catalog, err := s2.Catalog().List()
	require.NoError(t, err)
	assert.Equal(t, []entity.ProductDefinition{{Name: "APEROL", UnitsPerCase: 12}}, catalog)
}

func TestMutaciones_EscribenElGateway(t *testing.T) {
	gw := newFakeGateway()
	s := loadedStore(t, gw)

	require.NoError(t, s.Sheets().Insert(sampleSheet()))
	assert.Equal(t, 1, gw.puts, "insertar refleja el historial")

	sheet, err := s.Sheets().GetByID("p-1")
	require.NoError(t, err)
	sheet.Rows[0].Initial.Units = 9
	require.NoError(t, s.Sheets().Update(sheet))
	assert.Equal(t, 2, gw.puts, "actualizar vuelve a reflejar")

	require.NoError(t, s.Sheets().Delete("p-1"))
	assert.Equal(t, 3, gw.puts, "borrar también")
}

func TestGetByID_DevuelveCopia(t *testing.T) {
	s := loadedStore(t, newFakeGateway())
	require.NoError(t, s.Sheets().Insert(sampleSheet()))

	a, err := s.Sheets().GetByID("p-1")
	require.NoError(t, err)
	a.Rows[0].Initial.Units = 99

	b, err := s.Sheets().GetByID("p-1")
	require.NoError(t, err)
	assert.Equal(t, 3, b.Rows[0].Initial.Units, "mutar la copia no toca el store")
}
