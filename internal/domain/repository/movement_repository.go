package repository

import (
	"time"

	"github.com/eco-stock/eco-stock-api/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia para el log de movimientos.
// Los movimientos son append-only: no hay Update ni Delete.
type MovementRepository interface {
	// Create persiste el movimiento y sus detalles en una sola operación lógica.
	Create(movement *entity.Movement) error
	GetByID(id int64) (*entity.Movement, error)
	// Listados de historial, ordenados por fecha descendente.
	ListByProduct(productID int64, limit, offset int) ([]*entity.Movement, error)
	ListByDateRange(from, to time.Time, limit, offset int) ([]*entity.Movement, error)
	ListByUser(userID int64, limit, offset int) ([]*entity.Movement, error)
}
