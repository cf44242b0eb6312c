package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eco-stock/eco-stock-api/internal/application/dto"
	"github.com/eco-stock/eco-stock-api/internal/application/usecase"
)

// SupplierHandler maneja las peticiones HTTP de proveedores (protegido).
type SupplierHandler struct {
	uc *usecase.SupplierUseCase
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(uc *usecase.SupplierUseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

// Create POST /api/proveedores
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	supplier, err := h.uc.Create(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(supplier)
}

// GetByID GET /api/proveedores/:id
func (h *SupplierHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondDomainError(c, err)
	}
	supplier, err := h.uc.GetByID(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	if supplier == nil {
		return respondNotFound(c)
	}
	return c.JSON(supplier)
}

// List GET /api/proveedores
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	suppliers, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"count": len(suppliers), "results": suppliers})
}

// ListActive GET /api/proveedores/activos
func (h *SupplierHandler) ListActive(c *fiber.Ctx) error {
	suppliers, err := h.uc.ListActive()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"count": len(suppliers), "results": suppliers})
}

// Update PUT /api/proveedores/:id
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondDomainError(c, err)
	}
	var in dto.UpdateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	supplier, err := h.uc.Update(id, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(supplier)
}

// Delete DELETE /api/proveedores/:id
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondDomainError(c, err)
	}
	if err := h.uc.Delete(id); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "proveedor eliminado"})
}
