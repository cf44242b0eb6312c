package entity

import "time"

// InventoryRecord representa el stock actual de un producto.
// Una fila por producto; es la fuente de verdad del stock en mano.
// Se crea en el primer movimiento y solo se modifica vía movimientos.
type InventoryRecord struct {
	ID        int64
	ProductID int64
	Quantity  int64 // >= 0 por política del libro de inventario
	UpdatedAt time.Time
	Status    string
}
