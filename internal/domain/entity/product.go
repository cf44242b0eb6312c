package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo. El stock no vive aquí:
// se mantiene en InventoryRecord y se modifica solo vía movimientos.
type Product struct {
	ID          int64
	Name        string
	Description string
	Lot         string // lote de producción
	CategoryID  int64
	UnitID      int64
	UnitCost    decimal.Decimal // precio de costo, usado por reportes de valorización
	SalePrice   decimal.Decimal // precio de venta
}

// ProductSupplier asocia un producto con un proveedor.
// Unicidad por par (ProductID, SupplierID).
type ProductSupplier struct {
	ID         int64
	ProductID  int64
	SupplierID int64
}
