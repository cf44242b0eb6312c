// Package expiration implementa el seguimiento de vencimientos de productos:
// registro de fechas, consultas por ventana y marcado de notificaciones.
package expiration

import (
	"context"
	"time"

	"github.com/eco-stock/eco-stock-api/internal/domain"
	"github.com/eco-stock/eco-stock-api/internal/domain/entity"
	domexp "github.com/eco-stock/eco-stock-api/internal/domain/expiration"
	"github.com/eco-stock/eco-stock-api/internal/domain/repository"
)

// UseCase casos de uso del seguimiento de vencimientos.
type UseCase struct {
	expRepo     repository.ExpirationRepository
	productRepo repository.ProductRepository
	now         func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(expRepo repository.ExpirationRepository, productRepo repository.ProductRepository) *UseCase {
	return &UseCase{expRepo: expRepo, productRepo: productRepo, now: time.Now}
}

// RecordExpiration registra una fecha de vencimiento para un producto.
// Devuelve ErrDuplicate si el par (producto, fecha) ya existe y
// ErrNotFound si el producto no existe.
func (uc *UseCase) RecordExpiration(ctx context.Context, productID int64, date time.Time) (*entity.ExpirationRecord, error) {
	if productID <= 0 || date.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	record := &entity.ExpirationRecord{
		ProductID: productID,
		ExpiresAt: truncateDate(date),
	}
	if err := uc.expRepo.Create(record); err != nil {
		return nil, err
	}
	return record, nil
}

// ListExpiringWithin devuelve los vencimientos con fecha en [hoy, hoy+días],
// ascendente por fecha. days == 0 usa la ventana por defecto (30 días);
// un valor negativo es entrada inválida, no una ventana más amplia.
func (uc *UseCase) ListExpiringWithin(ctx context.Context, days int) ([]*entity.ExpirationRecord, error) {
	if days < 0 {
		return nil, domain.ErrInvalidInput
	}
	if days == 0 {
		days = domexp.DefaultWindowDays
	}
	today := truncateDate(uc.now())
	return uc.expRepo.ListBetween(today, today.AddDate(0, 0, days))
}

// ListExpired devuelve los vencimientos con fecha anterior a hoy, ascendente.
func (uc *UseCase) ListExpired(ctx context.Context) ([]*entity.ExpirationRecord, error) {
	return uc.expRepo.ListExpiredBefore(truncateDate(uc.now()))
}

// ListUnnotified devuelve los vencimientos aún no notificados.
func (uc *UseCase) ListUnnotified(ctx context.Context) ([]*entity.ExpirationRecord, error) {
	return uc.expRepo.ListUnnotified()
}

// MarkNotified marca el registro como notificado. Idempotente: marcar dos
// veces no tiene efecto adicional ni produce error.
func (uc *UseCase) MarkNotified(ctx context.Context, id int64) (*entity.ExpirationRecord, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidInput
	}
	record, err := uc.expRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}
	if !record.Notified {
		if err := uc.expRepo.MarkNotified(id); err != nil {
			return nil, err
		}
		record.Notified = true
	}
	return record, nil
}

// Classify clasifica un registro respecto a hoy (Vencido / Próximo a vencer / Vigente).
func (uc *UseCase) Classify(record *entity.ExpirationRecord) (status string, daysRemaining int) {
	today := uc.now()
	return domexp.Classify(record.ExpiresAt, today, domexp.DefaultWindowDays),
		domexp.DaysRemaining(record.ExpiresAt, today)
}

func truncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
