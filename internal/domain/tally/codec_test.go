package tally_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/todo-barras/internal/domain/entity"
	"github.com/tu-usuario/todo-barras/internal/domain/tally"
)

var (
	stepUp   = decimal.NewFromFloat(0.1)
	stepDown = decimal.NewFromFloat(-0.1)
)

// ──────────────────────────────────────────────────────────────────────────────
// Códec: tripla → unidades reales
// ──────────────────────────────────────────────────────────────────────────────

func TestToUnits_ConversionExacta(t *testing.T) {
	triple := entity.CountTriple{Cases: 2, Units: 3, Fraction: decimal.NewFromFloat(0.5)}

	total := tally.ToUnits(triple, 6)

	// 2 cajas x 6 + 3 sueltas + 0.5 = 15.5
	assert.True(t, total.Equal(decimal.NewFromFloat(15.5)),
		"2 cajas de 6 más 3 unidades y media deben ser 15.5, fue %s", total)
}

func TestToUnits_TriplaEnCero(t *testing.T) {
	total := tally.ToUnits(entity.ZeroTriple(), 12)
	assert.True(t, total.IsZero(), "una tripla en cero debe dar 0 unidades")
}

// ──────────────────────────────────────────────────────────────────────────────
// ApplyDelta: campos enteros
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyDelta_EnterosNuncaNegativos(t *testing.T) {
	triple := entity.ZeroTriple()

	triple = tally.ApplyDelta(triple, tally.FieldCases, decimal.NewFromInt(-1))
	assert.Equal(t, 0, triple.Cases, "decrementar cajas en cero debe quedar en cero")

	triple.Units = 2
	triple = tally.ApplyDelta(triple, tally.FieldUnits, decimal.NewFromInt(-50))
	assert.Equal(t, 0, triple.Units, "un delta grande negativo se acota en cero, no queda negativo")
}

func TestApplyDelta_EnterosSinTopeSuperior(t *testing.T) {
	triple := entity.ZeroTriple()
	triple = tally.ApplyDelta(triple, tally.FieldCases, decimal.NewFromInt(1000))
	assert.Equal(t, 1000, triple.Cases, "los campos enteros aceptan deltas arbitrarios")
}

func TestApplyDelta_NoTocaOtrosCampos(t *testing.T) {
	triple := entity.CountTriple{Cases: 1, Units: 2, Fraction: decimal.NewFromFloat(0.3)}
	out := tally.ApplyDelta(triple, tally.FieldUnits, decimal.NewFromInt(1))

	assert.Equal(t, 1, out.Cases)
	assert.Equal(t, 3, out.Units)
	assert.True(t, out.Fraction.Equal(decimal.NewFromFloat(0.3)))
}

// ──────────────────────────────────────────────────────────────────────────────
// ApplyDelta: contador circular de décimas
// ──────────────────────────────────────────────────────────────────────────────

// TestApplyDelta_DecimasEnvuelvenSinAcarreo verifica el invariante del
// contador circular: subir de 0.9 vuelve a 0.0 (no suma una unidad) y bajar
// de 0.0 vuelve a 0.9.
func TestApplyDelta_DecimasEnvuelvenSinAcarreo(t *testing.T) {
	triple := entity.ZeroTriple()
	triple.Fraction = decimal.NewFromFloat(0.9)
	triple.Units = 5

	triple = tally.ApplyDelta(triple, tally.FieldFraction, stepUp)
	assert.True(t, triple.Fraction.IsZero(), "0.9 + 0.1 debe envolver a 0.0, fue %s", triple.Fraction)
	assert.Equal(t, 5, triple.Units, "el envolvimiento no acarrea a las unidades")

	triple = tally.ApplyDelta(triple, tally.FieldFraction, stepDown)
	assert.True(t, triple.Fraction.Equal(decimal.NewFromFloat(0.9)),
		"0.0 - 0.1 debe envolver a 0.9, fue %s", triple.Fraction)
}

// TestApplyDelta_DecimasSiempreEnRango recorre muchas vueltas del contador en
// ambos sentidos y exige que la décima viva siempre en {0.0 ... 0.9}, nunca
// llegue a 1.0 ni a -0.1, y no acumule deriva de coma flotante.
func TestApplyDelta_DecimasSiempreEnRango(t *testing.T) {
	valid := map[string]bool{}
	for i := 0; i <= 9; i++ {
		valid[decimal.NewFromInt(int64(i)).Div(decimal.NewFromInt(10)).StringFixed(1)] = true
	}

	triple := entity.ZeroTriple()
	for i := 0; i < 173; i++ {
		triple = tally.ApplyDelta(triple, tally.FieldFraction, stepUp)
		require.True(t, valid[triple.Fraction.StringFixed(1)],
			"tras %d incrementos la décima quedó fuera de rango: %s", i+1, triple.Fraction)
	}
	// 173 mod 10 = 3
	assert.True(t, triple.Fraction.Equal(decimal.NewFromFloat(0.3)),
		"173 incrementos de 0.1 desde cero deben dejar exactamente 0.3, fue %s", triple.Fraction)

	for i := 0; i < 200; i++ {
		triple = tally.ApplyDelta(triple, tally.FieldFraction, stepDown)
		require.True(t, valid[triple.Fraction.StringFixed(1)],
			"tras %d decrementos la décima quedó fuera de rango: %s", i+1, triple.Fraction)
	}
	// 3 - 200 mod 10 = 3
	assert.True(t, triple.Fraction.Equal(decimal.NewFromFloat(0.3)),
		"200 decrementos completos de ciclo deben volver a 0.3, fue %s", triple.Fraction)
}
