package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/todo-barras/internal/application/dto"
	"github.com/tu-usuario/todo-barras/internal/application/usecase"
)

// VenueHandler maneja el perfil del boliche: onboarding y opciones.
type VenueHandler struct {
	uc *usecase.VenueUseCase
}

// NewVenueHandler construye el handler.
func NewVenueHandler(uc *usecase.VenueUseCase) *VenueHandler {
	return &VenueHandler{uc: uc}
}

// Get godoc
// @Summary      Obtener el perfil del boliche
// @Description  404 significa primera ejecución: el cliente debe mostrar el onboarding.
// @Tags         venue
// @Produce      json
// @Success      200  {object}  dto.VenueResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/venue [get]
func (h *VenueHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get()
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// Setup godoc
// @Summary      Onboarding: crear el perfil del boliche
// @Tags         venue
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetupVenueRequest  true  "Nombre y clave de admin"
// @Success      201   {object}  dto.VenueResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/venue [post]
func (h *VenueHandler) Setup(c *fiber.Ctx) error {
	var in dto.SetupVenueRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Setup(in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Rename godoc
// @Summary      Cambiar el nombre del boliche
// @Tags         venue
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RenameVenueRequest  true  "Nombre nuevo"
// @Success      200   {object}  dto.VenueResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/venue/name [put]
func (h *VenueHandler) Rename(c *fiber.Ctx) error {
	var in dto.RenameVenueRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Rename(in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// ChangePassword godoc
// @Summary      Cambiar la clave de admin
// @Tags         venue
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChangePasswordRequest  true  "Clave anterior y nueva"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/venue/password [put]
func (h *VenueHandler) ChangePassword(c *fiber.Ctx) error {
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.ChangePassword(in); err != nil {
		return writeDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
