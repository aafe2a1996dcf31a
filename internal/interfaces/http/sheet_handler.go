package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/todo-barras/internal/application/dto"
	"github.com/tu-usuario/todo-barras/internal/application/usecase"
)

// SheetHandler maneja las planillas de conteo (protegido).
type SheetHandler struct {
	uc *usecase.SheetUseCase
}

// NewSheetHandler construye el handler.
func NewSheetHandler(uc *usecase.SheetUseCase) *SheetHandler {
	return &SheetHandler{uc: uc}
}

// Create godoc
// @Summary      Crear planilla nueva desde el catálogo
// @Tags         sheets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSheetRequest  true  "Nombre del evento y fecha"
// @Success      201   {object}  dto.SheetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sheets [post]
func (h *SheetHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSheetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Historial de planillas
// @Tags         sheets
// @Security     Bearer
// @Produce      json
// @Param        sort  query  string  false  "date_desc | date_asc | name_asc | name_desc"  default(date_desc)
// @Success      200   {object}  dto.SheetListResponse
// @Router       /api/sheets [get]
func (h *SheetHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("sort"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Detalle de una planilla con totales y gasto
// @Tags         sheets
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la planilla"
// @Success      200  {object}  dto.SheetResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sheets/{id} [get]
func (h *SheetHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// Adjust godoc
// @Summary      Ajustar un contador de una fila
// @Description  Section initial|final, field cases|units|fraction, delta con signo.
// @Tags         sheets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id     path  string  true  "ID de la planilla"
// @Param        index  path  int     true  "Posición de la fila"
// @Param        body   body  dto.AdjustCountRequest  true  "Ajuste"
// @Success      200    {object}  dto.SheetResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/sheets/{id}/rows/{index} [patch]
func (h *SheetHandler) Adjust(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "index debe ser numérico"})
	}
	var in dto.AdjustCountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Adjust(c.Params("id"), index, in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar una planilla
// @Description  El borrado es incondicional; la confirmación es del cliente.
// @Tags         sheets
// @Security     Bearer
// @Param        id  path  string  true  "ID de la planilla"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sheets/{id} [delete]
func (h *SheetHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return writeDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ExportPDF godoc
// @Summary      Exportar la planilla como PDF imprimible
// @Tags         sheets
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la planilla"
// @Success      200  {file}  byte
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sheets/{id}/pdf [get]
func (h *SheetHandler) ExportPDF(c *fiber.Ctx) error {
	raw, err := h.uc.ExportPDF(c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="planilla.pdf"`)
	return c.Send(raw)
}
