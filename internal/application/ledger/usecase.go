// Package ledger implementa el libro de inventario: registro transaccional de
// entradas y salidas, mantenimiento del stock derivado y consultas de historial.
package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/eco-stock/eco-stock-api/internal/domain"
	"github.com/eco-stock/eco-stock-api/internal/domain/entity"
	"github.com/eco-stock/eco-stock-api/internal/domain/repository"
)

// UseCase registra movimientos de inventario de forma transaccional
// (ENTRADA, SALIDA, AJUSTE) con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
type UseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	invRepo     repository.InventoryRepository
	movRepo     repository.MovementRepository
}

// NewUseCase construye el caso de uso. invRepo y movRepo atados al pool se usan
// para consultas de solo lectura; las mutaciones pasan por txRunner.
func NewUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	invRepo repository.InventoryRepository,
	movRepo repository.MovementRepository,
) *UseCase {
	return &UseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		invRepo:     invRepo,
		movRepo:     movRepo,
	}
}

// RegisterEntry registra una entrada: crea la fila de inventario si no existe,
// suma la cantidad, actualiza la fecha y anexa Movement(ENTRADA) + detalle.
// Todo dentro de una sola transacción con la fila de stock bloqueada.
func (uc *UseCase) RegisterEntry(ctx context.Context, productID, quantity, userID int64) (*entity.Movement, error) {
	if productID <= 0 || userID <= 0 || quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	var mov *entity.Movement
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		invRepo repository.InventoryRepository,
	) error {
		// Bloquea la fila de inventario para evitar condiciones de carrera
		record, err := invRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if record == nil {
			// Primer movimiento del producto: inventario inicia en cero
			record = &entity.InventoryRecord{ProductID: productID, Quantity: 0, UpdatedAt: now}
			switch err := invRepo.Create(record); {
			case errors.Is(err, domain.ErrDuplicate):
				// Otra transacción creó la fila entre el SELECT y el INSERT:
				// releer con bloqueo y continuar sobre la fila existente.
				record, err = invRepo.GetForUpdate(productID)
				if err != nil {
					return err
				}
				if record == nil {
					return domain.ErrDuplicate
				}
			case err != nil:
				return err
			}
		}
		record.Quantity += quantity
		record.UpdatedAt = now
		if err := invRepo.UpdateQuantity(record); err != nil {
			return err
		}
		mov = &entity.Movement{
			Date:        now,
			Type:        entity.MovementEntry,
			UserID:      userID,
			InventoryID: record.ID,
			Details:     []entity.MovementDetail{{Quantity: quantity}},
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// RegisterExit registra una salida: verifica que exista inventario y que la
// cantidad solicitada no exceda el stock en mano; resta y anexa Movement(SALIDA).
// La verificación y la escritura ocurren con la fila bloqueada, en una transacción.
func (uc *UseCase) RegisterExit(ctx context.Context, productID, quantity, userID int64) (*entity.Movement, error) {
	if productID <= 0 || userID <= 0 || quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var mov *entity.Movement
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		invRepo repository.InventoryRepository,
	) error {
		record, err := invRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if record == nil {
			return domain.ErrNotFound
		}
		if quantity > record.Quantity {
			return domain.ErrInsufficientStock
		}
		record.Quantity -= quantity
		record.UpdatedAt = now
		if err := invRepo.UpdateQuantity(record); err != nil {
			return err
		}
		mov = &entity.Movement{
			Date:        now,
			Type:        entity.MovementExit,
			UserID:      userID,
			InventoryID: record.ID,
			Details:     []entity.MovementDetail{{Quantity: quantity}},
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// AdjustQuantity fija la cantidad de un registro de inventario directamente.
// Para que el invariante de auditoría se mantenga, el ajuste genera un
// Movement(AJUSTE) cuyo detalle lleva el delta con signo.
func (uc *UseCase) AdjustQuantity(ctx context.Context, recordID, newQuantity, userID int64) (*entity.InventoryRecord, error) {
	if recordID <= 0 || userID <= 0 || newQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var updated *entity.InventoryRecord
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		invRepo repository.InventoryRepository,
	) error {
		record, err := invRepo.GetByIDForUpdate(recordID)
		if err != nil {
			return err
		}
		if record == nil {
			return domain.ErrNotFound
		}
		delta := newQuantity - record.Quantity
		record.Quantity = newQuantity
		record.UpdatedAt = now
		if err := invRepo.UpdateQuantity(record); err != nil {
			return err
		}
		if delta != 0 {
			mov := &entity.Movement{
				Date:        now,
				Type:        entity.MovementAdjustment,
				UserID:      userID,
				InventoryID: record.ID,
				Details:     []entity.MovementDetail{{Quantity: delta}},
			}
			if err := movRepo.Create(mov); err != nil {
				return err
			}
		}
		updated = record
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// CurrentStock devuelve el stock en mano de un producto. Un producto sin
// fila de inventario tiene stock cero por definición (no es un error).
func (uc *UseCase) CurrentStock(ctx context.Context, productID int64) (int64, error) {
	if productID <= 0 {
		return 0, domain.ErrInvalidInput
	}
	record, err := uc.invRepo.GetByProduct(productID)
	if err != nil {
		return 0, err
	}
	if record == nil {
		return 0, nil
	}
	return record.Quantity, nil
}

// ListLowStock lista registros con cantidad <= threshold.
func (uc *UseCase) ListLowStock(ctx context.Context, threshold int64) ([]*entity.InventoryRecord, error) {
	if threshold < 0 {
		return nil, domain.ErrInvalidInput
	}
	return uc.invRepo.ListLowStock(threshold)
}

// ListOutOfStock lista registros con cantidad cero.
func (uc *UseCase) ListOutOfStock(ctx context.Context) ([]*entity.InventoryRecord, error) {
	return uc.invRepo.ListOutOfStock()
}

// MovementsForProduct historial de movimientos de un producto, fecha descendente.
func (uc *UseCase) MovementsForProduct(ctx context.Context, productID int64, limit, offset int) ([]*entity.Movement, error) {
	if productID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	return uc.movRepo.ListByProduct(productID, limit, offset)
}

// MovementsInDateRange historial de movimientos en [from, to], fecha descendente.
func (uc *UseCase) MovementsInDateRange(ctx context.Context, from, to time.Time, limit, offset int) ([]*entity.Movement, error) {
	if to.Before(from) {
		return nil, domain.ErrInvalidInput
	}
	return uc.movRepo.ListByDateRange(from, to, limit, offset)
}

// MovementsForActor historial de movimientos registrados por un usuario.
func (uc *UseCase) MovementsForActor(ctx context.Context, userID int64, limit, offset int) ([]*entity.Movement, error) {
	if userID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	return uc.movRepo.ListByUser(userID, limit, offset)
}
