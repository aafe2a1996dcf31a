package dto

import "time"

// CreateSheetRequest entrada para crear una planilla nueva.
// EventDate en formato "2006-01-02".
type CreateSheetRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=120"`
	EventDate string `json:"event_date" validate:"required"`
}

// AdjustCountRequest entrada para ajustar un contador de una fila.
// Section: "initial" | "final". Field: "cases" | "units" | "fraction".
// Delta: para cajas/unidades un entero con signo; para décimas el paso es
// fijo de 0.1 y solo importa el signo del delta.
type AdjustCountRequest struct {
	Section string `json:"section" validate:"required,oneof=initial final"`
	Field   string `json:"field" validate:"required,oneof=cases units fraction"`
	Delta   int    `json:"delta" validate:"required"`
}

// CountTripleResponse un conteo C/U/D con su total en unidades reales.
type CountTripleResponse struct {
	Cases    int    `json:"cases"`
	Units    int    `json:"units"`
	Fraction string `json:"fraction"` // "0.0" ... "0.9"
	Total    string `json:"total"`    // unidades reales con un decimal
}

// SheetRowResponse una fila de planilla con su gasto calculado.
type SheetRowResponse struct {
	Product      string              `json:"product"`
	UnitsPerCase int                 `json:"units_per_case"`
	Initial      CountTripleResponse `json:"initial"`
	Final        CountTripleResponse `json:"final"`
	Gasto        string              `json:"gasto"`    // un decimal, con signo
	Restocked    bool                `json:"restocked"` // final > inicial
}

// SheetResponse planilla completa con filas y totales calculados.
type SheetResponse struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	EventDate string             `json:"event_date"`
	CreatedAt time.Time          `json:"created_at"`
	Rows      []SheetRowResponse `json:"rows"`
}

// SheetSummaryResponse entrada liviana del historial.
type SheetSummaryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	EventDate string    `json:"event_date"`
	CreatedAt time.Time `json:"created_at"`
}

// SheetListResponse historial de planillas en el orden pedido.
type SheetListResponse struct {
	Items []SheetSummaryResponse `json:"items"`
	Total int                    `json:"total"`
	Sort  string                 `json:"sort"`
}
