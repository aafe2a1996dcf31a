package usecase

import "github.com/tu-usuario/todo-barras/internal/domain/entity"

// SheetPDFGenerator puerto de exportación: genera la representación
// imprimible de una planilla. venue puede ser nil si el perfil aún no existe.
type SheetPDFGenerator interface {
	GenerateSheetPDF(sheet *entity.StockSheet, venue *entity.VenueProfile) ([]byte, error)
}
