package http

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/eco-stock/eco-stock-api/internal/application/dto"
	"github.com/eco-stock/eco-stock-api/internal/application/ledger"
	"github.com/eco-stock/eco-stock-api/internal/domain"
	"github.com/eco-stock/eco-stock-api/internal/domain/entity"
)

// InventoryHandler maneja las peticiones HTTP de movimientos e inventario (protegido).
type InventoryHandler struct {
	uc *ledger.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *ledger.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// RegisterEntry godoc
// @Summary      Registrar entrada de inventario
// @Tags         movimientos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "producto_id, cantidad, usuario_id"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movimientos/registrar_entrada [post]
func (h *InventoryHandler) RegisterEntry(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	userID := in.UserID
	if userID == 0 {
		userID = GetUserID(c)
	}
	mov, err := h.uc.RegisterEntry(c.Context(), in.ProductID, in.Quantity, userID)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(mov))
}

// RegisterExit godoc
// @Summary      Registrar salida de inventario
// @Description  Verifica el stock en mano y rechaza con 400 si la cantidad lo excede.
// @Tags         movimientos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "producto_id, cantidad, usuario_id"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movimientos/registrar_salida [post]
func (h *InventoryHandler) RegisterExit(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	userID := in.UserID
	if userID == 0 {
		userID = GetUserID(c)
	}
	mov, err := h.uc.RegisterExit(c.Context(), in.ProductID, in.Quantity, userID)
	if err != nil {
		// En salidas, stock insuficiente es un error de la petición (400)
		if errors.Is(err, domain.ErrInsufficientStock) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "INSUFFICIENT_STOCK", Message: domain.ErrInsufficientStock.Error(),
			})
		}
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(mov))
}

// CurrentStock GET /api/inventario/stock_actual?producto_id=
func (h *InventoryHandler) CurrentStock(c *fiber.Ctx) error {
	productID, err := strconv.ParseInt(c.Query("producto_id"), 10, 64)
	if err != nil || productID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "producto_id requerido y numérico",
		})
	}
	stock, err := h.uc.CurrentStock(c.Context(), productID)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.StockResponse{ProductID: productID, Stock: stock})
}

// LowStock GET /api/inventario/bajo_stock?limite=
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	limite := c.Query("limite", "10")
	threshold, err := strconv.ParseInt(limite, 10, 64)
	if err != nil || threshold < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "limite debe ser numérico",
		})
	}
	records, err := h.uc.ListLowStock(c.Context(), threshold)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toInventoryListResponse(records))
}

// OutOfStock GET /api/inventario/agotados
func (h *InventoryHandler) OutOfStock(c *fiber.Ctx) error {
	records, err := h.uc.ListOutOfStock(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toInventoryListResponse(records))
}

// AdjustQuantity godoc
// @Summary      Ajustar cantidad de un registro de inventario
// @Description  Fija la cantidad y deja rastro de auditoría (movimiento AJUSTE con el delta).
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "id del registro de inventario"
// @Param        body  body  dto.AdjustQuantityRequest  true  "cantidad, usuario_id"
// @Success      200   {object}  dto.InventoryRecordResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventario/{id}/ajustar [patch]
func (h *InventoryHandler) AdjustQuantity(c *fiber.Ctx) error {
	recordID, err := parseIDParam(c, "id")
	if err != nil {
		return respondDomainError(c, err)
	}
	var in dto.AdjustQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	userID := in.UserID
	if userID == 0 {
		userID = GetUserID(c)
	}
	record, err := h.uc.AdjustQuantity(c.Context(), recordID, in.Quantity, userID)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toInventoryRecordResponse(record))
}

// MovementsByProduct GET /api/movimientos/por_producto?producto_id=
func (h *InventoryHandler) MovementsByProduct(c *fiber.Ctx) error {
	productID, err := strconv.ParseInt(c.Query("producto_id"), 10, 64)
	if err != nil || productID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "producto_id requerido y numérico",
		})
	}
	page := pageFromQuery(c)
	movs, err := h.uc.MovementsForProduct(c.Context(), productID, page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toMovementListResponse(movs))
}

// MovementsByPeriod GET /api/movimientos/por_periodo?fecha_inicio=&fecha_fin= (YYYY-MM-DD)
func (h *InventoryHandler) MovementsByPeriod(c *fiber.Ctx) error {
	from, err1 := time.Parse("2006-01-02", c.Query("fecha_inicio"))
	to, err2 := time.Parse("2006-01-02", c.Query("fecha_fin"))
	if err1 != nil || err2 != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "fecha_inicio y fecha_fin requeridas (YYYY-MM-DD)",
		})
	}
	// fecha_fin inclusiva hasta el final del día
	to = to.AddDate(0, 0, 1).Add(-time.Nanosecond)
	page := pageFromQuery(c)
	movs, err := h.uc.MovementsInDateRange(c.Context(), from, to, page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toMovementListResponse(movs))
}

// MovementsByUser GET /api/movimientos/por_usuario?usuario_id=
func (h *InventoryHandler) MovementsByUser(c *fiber.Ctx) error {
	userID, err := strconv.ParseInt(c.Query("usuario_id"), 10, 64)
	if err != nil || userID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "usuario_id requerido y numérico",
		})
	}
	page := pageFromQuery(c)
	movs, err := h.uc.MovementsForActor(c.Context(), userID, page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toMovementListResponse(movs))
}

func pageFromQuery(c *fiber.Ctx) dto.PageRequest {
	var page dto.PageRequest
	_ = c.QueryParser(&page)
	page.DefaultPage()
	return page
}

func toMovementResponse(m *entity.Movement) dto.MovementResponse {
	out := dto.MovementResponse{
		ID:          m.ID,
		Date:        m.Date,
		Type:        m.Type,
		UserID:      m.UserID,
		InventoryID: m.InventoryID,
		Details:     make([]dto.MovementDetailResponse, 0, len(m.Details)),
	}
	for _, d := range m.Details {
		out.Details = append(out.Details, dto.MovementDetailResponse{ID: d.ID, Quantity: d.Quantity})
	}
	return out
}

func toMovementListResponse(movs []*entity.Movement) fiber.Map {
	results := make([]dto.MovementResponse, 0, len(movs))
	for _, m := range movs {
		results = append(results, toMovementResponse(m))
	}
	return fiber.Map{"count": len(results), "results": results}
}

func toInventoryRecordResponse(r *entity.InventoryRecord) dto.InventoryRecordResponse {
	return dto.InventoryRecordResponse{
		ID:        r.ID,
		ProductID: r.ProductID,
		Quantity:  r.Quantity,
		UpdatedAt: r.UpdatedAt,
	}
}

func toInventoryListResponse(records []*entity.InventoryRecord) fiber.Map {
	results := make([]dto.InventoryRecordResponse, 0, len(records))
	for _, r := range records {
		results = append(results, toInventoryRecordResponse(r))
	}
	return fiber.Map{"count": len(results), "results": results}
}
