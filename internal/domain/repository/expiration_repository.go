package repository

import (
	"time"

	"github.com/eco-stock/eco-stock-api/internal/domain/entity"
)

// ExpirationRepository define el puerto de persistencia para vencimientos.
type ExpirationRepository interface {
	// Create persiste el vencimiento; ErrDuplicate si (producto, fecha) ya existe.
	Create(record *entity.ExpirationRecord) error
	GetByID(id int64) (*entity.ExpirationRecord, error)
	// ListBetween devuelve vencimientos con fecha en [from, to], ascendente.
	ListBetween(from, to time.Time) ([]*entity.ExpirationRecord, error)
	// ListExpiredBefore devuelve vencimientos con fecha < before, ascendente.
	ListExpiredBefore(before time.Time) ([]*entity.ExpirationRecord, error)
	ListUnnotified() ([]*entity.ExpirationRecord, error)
	// MarkNotified fija notified=true; idempotente.
	MarkNotified(id int64) error
}
