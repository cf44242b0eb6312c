package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eco-stock/eco-stock-api/internal/application/dto"
	"github.com/eco-stock/eco-stock-api/internal/application/usecase"
)

// UnitHandler maneja las peticiones HTTP de unidades de medida (protegido).
type UnitHandler struct {
	uc *usecase.UnitUseCase
}

// NewUnitHandler construye el handler.
func NewUnitHandler(uc *usecase.UnitUseCase) *UnitHandler {
	return &UnitHandler{uc: uc}
}

// Create POST /api/unidades-medida
func (h *UnitHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUnitRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	unit, err := h.uc.Create(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(unit)
}

// GetByID GET /api/unidades-medida/:id
func (h *UnitHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondDomainError(c, err)
	}
	unit, err := h.uc.GetByID(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	if unit == nil {
		return respondNotFound(c)
	}
	return c.JSON(unit)
}

// List GET /api/unidades-medida
func (h *UnitHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	units, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"count": len(units), "results": units})
}

// Update PUT /api/unidades-medida/:id
func (h *UnitHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondDomainError(c, err)
	}
	var in dto.UpdateUnitRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	unit, err := h.uc.Update(id, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(unit)
}

// Delete DELETE /api/unidades-medida/:id
func (h *UnitHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondDomainError(c, err)
	}
	if err := h.uc.Delete(id); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "unidad de medida eliminada"})
}
