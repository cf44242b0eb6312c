package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eco-stock/eco-stock-api/internal/application/dto"
	"github.com/eco-stock/eco-stock-api/internal/application/usecase"
)

// CategoryHandler maneja las peticiones HTTP de categorías (protegido).
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// Create POST /api/categorias
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	category, err := h.uc.Create(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// GetByID GET /api/categorias/:id
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondDomainError(c, err)
	}
	category, err := h.uc.GetByID(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	if category == nil {
		return respondNotFound(c)
	}
	return c.JSON(category)
}

// List GET /api/categorias
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	categories, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"count": len(categories), "results": categories})
}

// Update PUT /api/categorias/:id
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondDomainError(c, err)
	}
	var in dto.UpdateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	category, err := h.uc.Update(id, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(category)
}

// Delete DELETE /api/categorias/:id
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondDomainError(c, err)
	}
	if err := h.uc.Delete(id); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "categoría eliminada"})
}
