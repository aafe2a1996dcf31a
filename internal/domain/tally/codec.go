// Package tally implementa el códec de conteos y el cálculo de gasto
// (servicios de dominio puros, sin I/O).
//
// Un conteo físico se captura como tripla C/U/D: cajas, unidades sueltas y
// décimas. El códec convierte la tripla a unidades reales y aplica los
// incrementos de los contadores de la planilla.
package tally

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/todo-barras/internal/domain/entity"
)

// Field identifica cuál de los tres contadores de una tripla se ajusta.
type Field int

const (
	FieldCases Field = iota
	FieldUnits
	FieldFraction
)

var (
	fractionStep = decimal.NewFromFloat(0.1)
	fractionMax  = decimal.NewFromFloat(0.9)
)

// ToUnits convierte una tripla a unidades reales:
//
//	unidades = cajas*unidadesPorCaja + sueltas + décimas
//
// No hay condiciones de error: los valores llegan ya acotados por ApplyDelta.
// El resultado se redondea solo para mostrar, nunca antes de acumular.
func ToUnits(t entity.CountTriple, unitsPerCase int) decimal.Decimal {
	whole := int64(t.Cases)*int64(unitsPerCase) + int64(t.Units)
	return decimal.NewFromInt(whole).Add(t.Fraction)
}

// ApplyDelta aplica un incremento/decremento a un solo campo de la tripla y
// devuelve la tripla resultante.
//
// Campos enteros: se suma el delta (arbitrario, no solo ±1) y se acota en 0,
// sin tope superior. Campo de décimas: paso fijo de 0.1 con redondeo a un
// decimal; es un contador circular de diez posiciones, pasar de 0.9 vuelve a
// 0.0 y bajar de 0.0 vuelve a 0.9. Nunca acarrea hacia las unidades.
func ApplyDelta(t entity.CountTriple, field Field, delta decimal.Decimal) entity.CountTriple {
	switch field {
	case FieldCases:
		t.Cases = clampNonNegative(int64(t.Cases) + delta.IntPart())
	case FieldUnits:
		t.Units = clampNonNegative(int64(t.Units) + delta.IntPart())
	case FieldFraction:
		candidate := t.Fraction.Add(delta).Round(1)
		switch {
		case candidate.IsNegative():
			t.Fraction = fractionMax
		case candidate.GreaterThan(fractionMax):
			t.Fraction = decimal.Zero
		default:
			t.Fraction = candidate
		}
	}
	return t
}

func clampNonNegative(v int64) int {
	if v < 0 {
		return 0
	}
	return int(v)
}
