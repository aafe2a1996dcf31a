package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CountTriple es un conteo físico crudo en tres niveles: cajas enteras,
// unidades sueltas y un resto decimal en décimas (botellas a medio consumir).
// Fraction vive siempre en {0.0, 0.1, ..., 0.9} con un solo dígito decimal;
// se usa decimal fijo para que incrementos repetidos de 0.1 nunca acumulen
// deriva binaria.
type CountTriple struct {
	Cases    int             // cajas enteras, >= 0
	Units    int             // unidades sueltas, >= 0
	Fraction decimal.Decimal // décimas, en [0.0, 0.9]
}

// ZeroTriple devuelve un conteo en cero con la fracción inicializada.
func ZeroTriple() CountTriple {
	return CountTriple{Fraction: decimal.Zero}
}

// StockRow es la fila de una planilla para un producto: la definición
// congelada al crear la planilla más los conteos inicial y final.
// El UnitsPerCase es una copia; cambios posteriores del catálogo no la tocan.
type StockRow struct {
	Product ProductDefinition
	Initial CountTriple
	Final   CountTriple
}

// StockSheet es una planilla de conteo: una sesión de inventario fechada para
// un evento, con una fila por producto del catálogo al momento de crearla.
type StockSheet struct {
	ID        string // UUID, estable durante toda la vida de la planilla
	Name      string // normalizado a mayúsculas
	EventDate time.Time
	CreatedAt time.Time
	Rows      []StockRow
}
