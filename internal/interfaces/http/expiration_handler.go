package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/eco-stock/eco-stock-api/internal/application/dto"
	"github.com/eco-stock/eco-stock-api/internal/application/expiration"
	"github.com/eco-stock/eco-stock-api/internal/domain/entity"
)

// ExpirationHandler maneja las peticiones HTTP de vencimientos (protegido).
type ExpirationHandler struct {
	uc *expiration.UseCase
}

// NewExpirationHandler construye el handler.
func NewExpirationHandler(uc *expiration.UseCase) *ExpirationHandler {
	return &ExpirationHandler{uc: uc}
}

// Record godoc
// @Summary      Registrar fecha de vencimiento
// @Tags         vencimientos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordExpirationRequest  true  "producto_id, fecha_vencimiento (YYYY-MM-DD)"
// @Success      201   {object}  dto.ExpirationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/vencimientos [post]
func (h *ExpirationHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordExpirationRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "fecha_vencimiento requerida (YYYY-MM-DD)",
		})
	}
	record, err := h.uc.RecordExpiration(c.Context(), in.ProductID, date)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(h.toResponse(record))
}

// Expiring GET /api/vencimientos/por_vencer?dias=
func (h *ExpirationHandler) Expiring(c *fiber.Ctx) error {
	days := 0
	if raw := c.Query("dias"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "VALIDATION", Message: "dias debe ser numérico",
			})
		}
		days = parsed
	}
	records, err := h.uc.ListExpiringWithin(c.Context(), days)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(h.toListResponse(records))
}

// Expired GET /api/vencimientos/vencidos
func (h *ExpirationHandler) Expired(c *fiber.Ctx) error {
	records, err := h.uc.ListExpired(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(h.toListResponse(records))
}

// Unnotified GET /api/vencimientos/no_notificados
func (h *ExpirationHandler) Unnotified(c *fiber.Ctx) error {
	records, err := h.uc.ListUnnotified(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(h.toListResponse(records))
}

// MarkNotified PATCH /api/vencimientos/:id/marcar_notificado
func (h *ExpirationHandler) MarkNotified(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondDomainError(c, err)
	}
	record, err := h.uc.MarkNotified(c.Context(), id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(h.toResponse(record))
}

func (h *ExpirationHandler) toResponse(r *entity.ExpirationRecord) dto.ExpirationResponse {
	status, days := h.uc.Classify(r)
	return dto.ExpirationResponse{
		ID:            r.ID,
		ProductID:     r.ProductID,
		Date:          r.ExpiresAt.Format("2006-01-02"),
		Notified:      r.Notified,
		DaysRemaining: days,
		Status:        status,
	}
}

func (h *ExpirationHandler) toListResponse(records []*entity.ExpirationRecord) dto.ExpirationListResponse {
	out := dto.ExpirationListResponse{Results: make([]dto.ExpirationResponse, 0, len(records))}
	for _, r := range records {
		out.Results = append(out.Results, h.toResponse(r))
	}
	out.Count = len(out.Results)
	return out
}
