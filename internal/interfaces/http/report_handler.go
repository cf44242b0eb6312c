package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/eco-stock/eco-stock-api/internal/application/dto"
	"github.com/eco-stock/eco-stock-api/internal/application/reports"
	"github.com/eco-stock/eco-stock-api/internal/domain/entity"
	"github.com/eco-stock/eco-stock-api/internal/domain/repository"
)

// ReportHandler maneja las peticiones HTTP de reportes (protegido).
type ReportHandler struct {
	uc *reports.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen global del inventario
// @Description  Totales, disponibilidad, vencimientos y valorización (Σ cantidad × precio_costo),
//
//	calculados de datos reales almacenados.
//
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventorySummaryResponse
// @Router       /api/reportes/resumen [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	s, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toSummaryResponse(s))
}

func toSummaryResponse(s *reports.Summary) dto.InventorySummaryResponse {
	return dto.InventorySummaryResponse{
		TotalProducts:   s.TotalProducts,
		TotalCategories: s.TotalCategories,
		TotalSuppliers:  s.TotalSuppliers,
		Available:       s.Available,
		LowStock:        s.LowStock,
		Depleted:        s.Depleted,
		NearExpiry:      s.NearExpiry,
		Expired:         s.Expired,
		StockValue:      s.StockValue,
	}
}

// ByCategory GET /api/reportes/por_categoria
func (h *ReportHandler) ByCategory(c *fiber.Ctx) error {
	rollups, err := h.uc.RollupByCategory(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	results := make([]dto.CategoryRollupResponse, 0, len(rollups))
	for _, r := range rollups {
		results = append(results, dto.CategoryRollupResponse{
			CategoryID:   r.CategoryID,
			CategoryName: r.CategoryName,
			Products:     r.Products,
			Quantity:     r.Quantity,
			StockValue:   r.StockValue,
		})
	}
	return c.JSON(fiber.Map{"count": len(results), "results": results})
}

// BySupplier GET /api/reportes/por_proveedor
func (h *ReportHandler) BySupplier(c *fiber.Ctx) error {
	rollups, err := h.uc.RollupBySupplier(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	results := make([]dto.SupplierRollupResponse, 0, len(rollups))
	for _, r := range rollups {
		results = append(results, dto.SupplierRollupResponse{
			SupplierID:   r.SupplierID,
			SupplierName: r.SupplierName,
			Products:     r.Products,
			Quantity:     r.Quantity,
			StockValue:   r.StockValue,
		})
	}
	return c.JSON(fiber.Map{"count": len(results), "results": results})
}

// TopProducts GET /api/reportes/top_productos
func (h *ReportHandler) TopProducts(c *fiber.Ctx) error {
	rows, err := h.uc.TopProductsByValue(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	results := make([]dto.TopProductResponse, 0, len(rows))
	for _, r := range rows {
		results = append(results, toTopProductResponse(r))
	}
	return c.JSON(fiber.Map{"count": len(results), "results": results})
}

// ListTypes GET /api/reportes/tipos
func (h *ReportHandler) ListTypes(c *fiber.Ctx) error {
	types, err := h.uc.ListTypes(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	results := make([]dto.ReportTypeResponse, 0, len(types))
	for _, t := range types {
		results = append(results, dto.ReportTypeResponse{
			ID: t.ID, Name: t.Name, Description: t.Description, Active: t.Active,
		})
	}
	return c.JSON(fiber.Map{"count": len(results), "results": results})
}

// Generate godoc
// @Summary      Generar instantánea de reporte
// @Tags         reportes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GenerateReportRequest  true  "tipo_reporte, nombre, fechas"
// @Success      201   {object}  dto.ReportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/reportes [post]
func (h *ReportHandler) Generate(c *fiber.Ctx) error {
	var in dto.GenerateReportRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	input := reports.GenerateInput{
		Type:        in.Type,
		Name:        in.Name,
		Description: in.Description,
		CategoryID:  in.CategoryID,
	}
	if in.StartDate != "" {
		start, err := time.Parse("2006-01-02", in.StartDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "VALIDATION", Message: "fecha_inicio inválida (YYYY-MM-DD)",
			})
		}
		input.StartDate = start
	}
	if in.EndDate != "" {
		end, err := time.Parse("2006-01-02", in.EndDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "VALIDATION", Message: "fecha_fin inválida (YYYY-MM-DD)",
			})
		}
		input.EndDate = end
	}
	report, err := h.uc.Generate(c.Context(), GetUserID(c), input)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toReportResponse(report))
}

// List GET /api/reportes
func (h *ReportHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	list, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	results := make([]dto.ReportResponse, 0, len(list))
	for _, r := range list {
		results = append(results, toReportResponse(r))
	}
	return c.JSON(fiber.Map{"count": len(results), "results": results})
}

// Get GET /api/reportes/:id (id = uuid de la instantánea)
func (h *ReportHandler) Get(c *fiber.Ctx) error {
	report, details, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	detailOut := make([]dto.ReportDetailResponse, 0, len(details))
	for _, d := range details {
		detailOut = append(detailOut, dto.ReportDetailResponse{
			ProductID:   d.ProductID,
			ProductName: d.ProductName,
			CategoryID:  d.CategoryID,
			Quantity:    d.Quantity,
			UnitCost:    d.UnitCost,
			SalePrice:   d.SalePrice,
			StockValue:  d.StockValue,
			StockState:  d.StockState,
		})
	}
	return c.JSON(fiber.Map{"reporte": toReportResponse(report), "detalles": detailOut})
}

// ExportPDF GET /api/reportes/:id/pdf
func (h *ReportHandler) ExportPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.ExportPDF(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte.pdf"`)
	return c.Send(pdfBytes)
}

func toReportResponse(r *entity.Report) dto.ReportResponse {
	return dto.ReportResponse{
		ID:          r.ID,
		Type:        r.TypeName,
		UserID:      r.UserID,
		Name:        r.Name,
		Description: r.Description,
		StartDate:   r.StartDate.Format("2006-01-02"),
		EndDate:     r.EndDate.Format("2006-01-02"),
		Status:      r.Status,
		GeneratedAt: r.GeneratedAt,
	}
}

func toTopProductResponse(r repository.StockRow) dto.TopProductResponse {
	return dto.TopProductResponse{
		ProductID:   r.ProductID,
		ProductName: r.ProductName,
		Quantity:    r.Quantity,
		UnitCost:    r.UnitCost,
		StockValue:  r.UnitCost.Mul(decimal.NewFromInt(r.Quantity)),
	}
}
