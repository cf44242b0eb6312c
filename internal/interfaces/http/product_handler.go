package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/eco-stock/eco-stock-api/internal/application/dto"
	"github.com/eco-stock/eco-stock-api/internal/application/reports"
	"github.com/eco-stock/eco-stock-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP de productos y sus asociaciones
// con proveedores (protegido). Las estadísticas del catálogo delegan en el
// agregador de reportes para que las cifras salgan de datos reales.
type ProductHandler struct {
	uc        *usecase.ProductUseCase
	reportsUC *reports.UseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, reportsUC *reports.UseCase) *ProductHandler {
	return &ProductHandler{uc: uc, reportsUC: reportsUC}
}

// Statistics godoc
// @Summary      Estadísticas del catálogo de productos
// @Description  Totales de productos, categorías y proveedores, disponibilidad,
//
//	vencimientos y valorización, calculados de datos reales almacenados.
//
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventorySummaryResponse
// @Router       /api/productos/estadisticas [get]
func (h *ProductHandler) Statistics(c *fiber.Ctx) error {
	s, err := h.reportsUC.GetSummary(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toSummaryResponse(s))
}

// Create godoc
// @Summary      Crear producto
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/productos [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	product, err := h.uc.Create(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// GetByID GET /api/productos/:id
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondDomainError(c, err)
	}
	product, err := h.uc.GetByID(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	if product == nil {
		return respondNotFound(c)
	}
	return c.JSON(product)
}

// List GET /api/productos
func (h *ProductHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	list, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(list)
}

// Search GET /api/productos/buscar?q=
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	term := c.Query("q")
	page := pageFromQuery(c)
	list, err := h.uc.Search(term, page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(list)
}

// ByCategory GET /api/productos/por_categoria?idcategoria=
func (h *ProductHandler) ByCategory(c *fiber.Ctx) error {
	categoryID, err := strconv.ParseInt(c.Query("idcategoria"), 10, 64)
	if err != nil || categoryID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "idcategoria requerido y numérico",
		})
	}
	list, err := h.uc.ListByCategory(categoryID)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(list)
}

// ByLot GET /api/productos/por_lote?lote=
func (h *ProductHandler) ByLot(c *fiber.Ctx) error {
	list, err := h.uc.ListByLot(c.Query("lote"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(list)
}

// Dashboard GET /api/productos/dashboard
// Lista productos con stock y estado reales calculados del inventario.
func (h *ProductHandler) Dashboard(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	list, err := h.uc.Dashboard(page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(list)
}

// Update PUT /api/productos/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondDomainError(c, err)
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	product, err := h.uc.Update(id, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(product)
}

// Delete DELETE /api/productos/:id
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondDomainError(c, err)
	}
	if err := h.uc.Delete(id); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "producto eliminado"})
}

// AssignSupplier POST /api/producto-proveedor
func (h *ProductHandler) AssignSupplier(c *fiber.Ctx) error {
	var in dto.AssignSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	if err := h.uc.AssignSupplier(in); err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "proveedor asociado"})
}

// SuppliersForProduct GET /api/producto-proveedor/por_producto/:id
func (h *ProductHandler) SuppliersForProduct(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondDomainError(c, err)
	}
	suppliers, err := h.uc.SuppliersForProduct(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"count": len(suppliers), "results": suppliers})
}

// ProductsForSupplier GET /api/producto-proveedor/por_proveedor/:id
func (h *ProductHandler) ProductsForSupplier(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondDomainError(c, err)
	}
	list, err := h.uc.ProductsForSupplier(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(list)
}

// UnassignSupplier DELETE /api/producto-proveedor?producto_id=&proveedor_id=
func (h *ProductHandler) UnassignSupplier(c *fiber.Ctx) error {
	productID, err1 := strconv.ParseInt(c.Query("producto_id"), 10, 64)
	supplierID, err2 := strconv.ParseInt(c.Query("proveedor_id"), 10, 64)
	if err1 != nil || err2 != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "producto_id y proveedor_id requeridos y numéricos",
		})
	}
	if err := h.uc.UnassignSupplier(productID, supplierID); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "asociación eliminada"})
}
