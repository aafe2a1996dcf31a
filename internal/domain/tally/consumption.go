package tally

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/todo-barras/internal/domain/entity"
)

// epsilon por debajo del cual un gasto se presenta como cero exacto, para no
// mostrar ruido tipo "-0.0" en planillas recién igualadas.
var consumptionEpsilon = decimal.NewFromFloat(0.01)

// Consumption calcula el gasto de una fila: total inicial menos total final,
// en unidades reales.
//
// Un valor negativo significa que el conteo final supera al inicial
// (reposición a mitad del evento o error de carga). Es un estado válido y
// representable: se marca para la vista pero nunca se rechaza ni se acota.
func Consumption(row entity.StockRow) decimal.Decimal {
	ini := ToUnits(row.Initial, row.Product.UnitsPerCase)
	fin := ToUnits(row.Final, row.Product.UnitsPerCase)
	gasto := ini.Sub(fin)
	if gasto.Abs().LessThan(consumptionEpsilon) {
		return decimal.Zero
	}
	return gasto
}

// IsRestock informa si el gasto indica reposición (final > inicial).
func IsRestock(gasto decimal.Decimal) bool {
	return gasto.IsNegative()
}

// Display formatea una cantidad en unidades reales para mostrar: un decimal,
// redondeo half-away-from-zero.
func Display(v decimal.Decimal) string {
	return v.Round(1).StringFixed(1)
}
