package repository

import "github.com/eco-stock/eco-stock-api/internal/domain/entity"

// InventoryRepository define el puerto para consultar/actualizar el stock por producto.
// Las mutaciones se usan dentro de transacciones para garantizar consistencia.
type InventoryRepository interface {
	// GetByProduct devuelve la fila de inventario o nil si el producto no tiene.
	GetByProduct(productID int64) (*entity.InventoryRecord, error)
	GetByID(id int64) (*entity.InventoryRecord, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE); nil si no existe.
	GetForUpdate(productID int64) (*entity.InventoryRecord, error)
	// GetByIDForUpdate bloquea la fila por id de registro; nil si no existe.
	GetByIDForUpdate(id int64) (*entity.InventoryRecord, error)
	// Create crea la fila de inventario (primer movimiento de un producto).
	Create(record *entity.InventoryRecord) error
	// UpdateQuantity fija la cantidad y la fecha de actualización.
	UpdateQuantity(record *entity.InventoryRecord) error
	ListLowStock(threshold int64) ([]*entity.InventoryRecord, error)
	ListOutOfStock() ([]*entity.InventoryRecord, error)
	List(limit, offset int) ([]*entity.InventoryRecord, error)
}
