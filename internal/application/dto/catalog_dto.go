package dto

// AddProductRequest entrada para agregar un producto al catálogo maestro.
type AddProductRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=120"`
	UnitsPerCase int    `json:"units_per_case" validate:"required,gt=0"`
}

// ProductResponse una entrada del catálogo.
type ProductResponse struct {
	Name         string `json:"name"`
	UnitsPerCase int    `json:"units_per_case"`
}

// CatalogResponse el catálogo completo, ordenado por nombre.
type CatalogResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
