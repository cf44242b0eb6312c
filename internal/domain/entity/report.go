package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Nombres de tipo de reporte soportados.
const (
	ReportInventory  = "inventario"
	ReportLowStock   = "stock_bajo"
	ReportByCategory = "productos_categoria"
	ReportSuppliers  = "proveedores"
)

// Estados de un reporte persistido.
const (
	ReportStatusGenerating = "generando"
	ReportStatusCompleted  = "completado"
	ReportStatusError      = "error"
)

// Estados de stock usados en los detalles de reporte.
const (
	StockStateNormal   = "normal"
	StockStateLow      = "bajo"
	StockStateDepleted = "agotado"
)

// ReportType es el catálogo de tipos de reporte disponibles.
type ReportType struct {
	ID          int64
	Name        string
	Description string
	Active      bool
}

// Report es una instantánea persistida de la salida del agregador.
// No es estado autoritativo de inventario; es puramente derivado.
type Report struct {
	ID          string // uuid
	TypeID      int64
	TypeName    string
	UserID      int64
	Name        string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	Status      string // generando, completado, error
	GeneratedAt time.Time
}

// ReportDetail es una fila de detalle de un reporte de inventario:
// el estado de un producto al momento de generarse el reporte.
type ReportDetail struct {
	ID          int64
	ReportID    string
	ProductID   int64
	ProductName string
	CategoryID  int64
	Quantity    int64
	UnitCost    decimal.Decimal
	SalePrice   decimal.Decimal
	StockValue  decimal.Decimal // Quantity × UnitCost
	StockState  string          // normal, bajo, agotado
}
