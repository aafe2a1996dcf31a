package entity

// ProductDefinition es una entrada del catálogo maestro de productos: el
// nombre (identidad, siempre en mayúsculas) y cuántas unidades trae una caja.
// Cada planilla nueva copia estas definiciones como plantilla; editar el
// catálogo después no altera las planillas ya creadas.
type ProductDefinition struct {
	Name         string // identidad, normalizado a mayúsculas
	UnitsPerCase int    // unidades por caja, siempre > 0
}
