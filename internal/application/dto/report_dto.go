package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventorySummaryResponse resumen de inventario (GET /api/reportes/resumen).
// Calculado desde datos reales; nunca simulado.
type InventorySummaryResponse struct {
	TotalProducts   int             `json:"total_productos"`
	TotalCategories int             `json:"total_categorias"`
	TotalSuppliers  int             `json:"total_proveedores"`
	Available       int             `json:"productos_disponibles"`
	LowStock        int             `json:"productos_bajo_stock"`
	Depleted        int             `json:"productos_agotados"`
	NearExpiry      int             `json:"productos_proximos_vencer"`
	Expired         int             `json:"productos_vencidos"`
	StockValue      decimal.Decimal `json:"valor_inventario"`
}

// CategoryRollupResponse resumen por categoría.
type CategoryRollupResponse struct {
	CategoryID   int64           `json:"idcategoria"`
	CategoryName string          `json:"categoria"`
	Products     int             `json:"total_productos"`
	Quantity     int64           `json:"cantidad_total"`
	StockValue   decimal.Decimal `json:"valor_total"`
}

// SupplierRollupResponse resumen por proveedor.
type SupplierRollupResponse struct {
	SupplierID   int64           `json:"idproveedor"`
	SupplierName string          `json:"proveedor"`
	Products     int             `json:"total_productos"`
	Quantity     int64           `json:"cantidad_total"`
	StockValue   decimal.Decimal `json:"valor_total"`
}

// TopProductResponse producto en el top por valor de inventario.
type TopProductResponse struct {
	ProductID   int64           `json:"idproducto"`
	ProductName string          `json:"nombre"`
	Quantity    int64           `json:"cantidad"`
	UnitCost    decimal.Decimal `json:"precio_costo"`
	StockValue  decimal.Decimal `json:"valor_total"`
}

// GenerateReportRequest body para POST /api/reportes.
type GenerateReportRequest struct {
	Type        string `json:"tipo_reporte"` // inventario, stock_bajo, productos_categoria, proveedores
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
	StartDate   string `json:"fecha_inicio"` // YYYY-MM-DD
	EndDate     string `json:"fecha_fin"`    // YYYY-MM-DD
	CategoryID  int64  `json:"categoria_id"` // solo para productos_categoria
}

// ReportResponse cabecera de un reporte persistido.
type ReportResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"tipo_reporte"`
	UserID      int64     `json:"usuario_id"`
	Name        string    `json:"nombre"`
	Description string    `json:"descripcion"`
	StartDate   string    `json:"fecha_inicio"`
	EndDate     string    `json:"fecha_fin"`
	Status      string    `json:"estado"`
	GeneratedAt time.Time `json:"fecha_generacion"`
}

// ReportDetailResponse fila de detalle de un reporte de inventario.
type ReportDetailResponse struct {
	ProductID   int64           `json:"idproducto"`
	ProductName string          `json:"producto"`
	CategoryID  int64           `json:"idcategoria"`
	Quantity    int64           `json:"stock_actual"`
	UnitCost    decimal.Decimal `json:"precio_costo"`
	SalePrice   decimal.Decimal `json:"precio_venta"`
	StockValue  decimal.Decimal `json:"valor_total_stock"`
	StockState  string          `json:"estado_stock"`
}

// ReportTypeResponse tipo de reporte del catálogo.
type ReportTypeResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
	Active      bool   `json:"activo"`
}
