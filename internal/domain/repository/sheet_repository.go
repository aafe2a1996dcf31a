package repository

import "github.com/tu-usuario/todo-barras/internal/domain/entity"

// SheetRepository define el puerto de persistencia de las planillas.
// List devuelve las planillas en orden de inserción (la más reciente
// primero); cualquier otro orden es una vista que arma el caso de uso.
type SheetRepository interface {
	Insert(sheet *entity.StockSheet) error
	GetByID(id string) (*entity.StockSheet, error)
	Update(sheet *entity.StockSheet) error
	Delete(id string) error
	List() ([]*entity.StockSheet, error)
}
