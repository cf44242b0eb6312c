package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// StockRow fila cruda para reportes: producto + stock + costos de referencia.
// Los costos ausentes llegan en cero (COALESCE); el agregador nunca falla por ellos.
type StockRow struct {
	ProductID    int64
	ProductName  string
	CategoryID   int64
	CategoryName string
	Quantity     int64
	UnitCost     decimal.Decimal
	SalePrice    decimal.Decimal
}

// CategoryRollup resumen por categoría.
type CategoryRollup struct {
	CategoryID   int64
	CategoryName string
	Products     int
	Quantity     int64
	StockValue   decimal.Decimal
}

// SupplierRollup resumen por proveedor.
type SupplierRollup struct {
	SupplierID   int64
	SupplierName string
	Products     int
	Quantity     int64
	StockValue   decimal.Decimal
}

// ReportingRepository define las consultas de solo lectura del agregador de reportes.
// Las implementaciones no modifican datos.
type ReportingRepository interface {
	// ListStockRows devuelve todos los productos con su stock y costos.
	// Productos sin fila de inventario aparecen con cantidad cero.
	ListStockRows(ctx context.Context) ([]StockRow, error)
	// ListStockRowsByCategory filtra por categoría (0 = todas).
	ListStockRowsByCategory(ctx context.Context, categoryID int64) ([]StockRow, error)
	RollupByCategory(ctx context.Context) ([]CategoryRollup, error)
	RollupBySupplier(ctx context.Context) ([]SupplierRollup, error)
	CountCategories(ctx context.Context) (int, error)
	CountSuppliers(ctx context.Context) (int, error)
}
