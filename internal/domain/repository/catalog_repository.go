package repository

import "github.com/tu-usuario/todo-barras/internal/domain/entity"

// CatalogRepository define el puerto de persistencia del catálogo maestro.
// El catálogo se reemplaza completo en cada mutación: es una lista corta y
// el orden (alfabético) lo decide el caso de uso.
type CatalogRepository interface {
	List() ([]entity.ProductDefinition, error)
	Replace(catalog []entity.ProductDefinition) error
}
