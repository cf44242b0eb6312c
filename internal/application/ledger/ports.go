package ledger

import (
	"context"

	"github.com/eco-stock/eco-stock-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el libro de inventario:
// leer stock, validar, escribir stock y anexar movimiento son todo-o-nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		invRepo repository.InventoryRepository,
	) error) error
}
