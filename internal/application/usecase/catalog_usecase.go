package usecase

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/tu-usuario/todo-barras/internal/application/dto"
	"github.com/tu-usuario/todo-barras/internal/domain"
	"github.com/tu-usuario/todo-barras/internal/domain/entity"
	"github.com/tu-usuario/todo-barras/internal/domain/repository"
)

// CatalogUseCase administra el catálogo maestro de productos que sirve de
// plantilla para cada planilla nueva. Quitar o editar productos acá nunca
// modifica planillas ya creadas (cada fila congela su UnitsPerCase).
type CatalogUseCase struct {
	repo repository.CatalogRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// Add agrega un producto y reordena el catálogo por nombre ascendente.
// Valida nombre no vacío y unidades por caja positivas; el nombre se
// normaliza a mayúsculas y debe ser único.
func (uc *CatalogUseCase) Add(in dto.AddProductRequest) (*dto.CatalogResponse, error) {
	name := strings.ToUpper(strings.TrimSpace(in.Name))
	if name == "" || in.UnitsPerCase <= 0 {
		return nil, domain.ErrValidation
	}
	catalog, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	for _, p := range catalog {
		if p.Name == name {
			return nil, domain.ErrDuplicate
		}
	}
	catalog = append(catalog, entity.ProductDefinition{Name: name, UnitsPerCase: in.UnitsPerCase})
	sortCatalog(catalog)
	if err := uc.repo.Replace(catalog); err != nil {
		return nil, err
	}
	return toCatalogResponse(catalog), nil
}

// Remove quita el producto en la posición dada. Fuera de rango devuelve
// ErrNotFound y no muta nada.
func (uc *CatalogUseCase) Remove(index int) (*dto.CatalogResponse, error) {
	catalog, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(catalog) {
		return nil, domain.ErrNotFound
	}
	catalog = append(catalog[:index], catalog[index+1:]...)
	if err := uc.repo.Replace(catalog); err != nil {
		return nil, err
	}
	return toCatalogResponse(catalog), nil
}

// List devuelve el catálogo completo.
func (uc *CatalogUseCase) List() (*dto.CatalogResponse, error) {
	catalog, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toCatalogResponse(catalog), nil
}

// sortCatalog ordena por nombre ascendente con colación española
// (insensible a mayúsculas; los nombres ya vienen normalizados).
func sortCatalog(catalog []entity.ProductDefinition) {
	cl := collate.New(language.Spanish, collate.IgnoreCase)
	sort.SliceStable(catalog, func(i, j int) bool {
		return cl.CompareString(catalog[i].Name, catalog[j].Name) < 0
	})
}

func toCatalogResponse(catalog []entity.ProductDefinition) *dto.CatalogResponse {
	items := make([]dto.ProductResponse, 0, len(catalog))
	for _, p := range catalog {
		items = append(items, dto.ProductResponse{Name: p.Name, UnitsPerCase: p.UnitsPerCase})
	}
	return &dto.CatalogResponse{Items: items, Total: len(items)}
}
