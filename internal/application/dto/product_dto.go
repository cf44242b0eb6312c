package dto

import "github.com/shopspring/decimal"

// CreateProductRequest body para crear un producto.
type CreateProductRequest struct {
	Name        string          `json:"nombre"`
	Description string          `json:"descripcion"`
	Lot         string          `json:"lote"`
	CategoryID  int64           `json:"idcategoria"`
	UnitID      int64           `json:"unidad_medida_id"`
	UnitCost    decimal.Decimal `json:"precio_costo"`
	SalePrice   decimal.Decimal `json:"precio_venta"`
}

// UpdateProductRequest actualización parcial con campos permitidos explícitos.
// El stock no es actualizable por esta vía: se maneja vía movimientos.
type UpdateProductRequest struct {
	Name        *string          `json:"nombre"`
	Description *string          `json:"descripcion"`
	Lot         *string          `json:"lote"`
	CategoryID  *int64           `json:"idcategoria"`
	UnitID      *int64           `json:"unidad_medida_id"`
	UnitCost    *decimal.Decimal `json:"precio_costo"`
	SalePrice   *decimal.Decimal `json:"precio_venta"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          int64           `json:"idproducto"`
	Name        string          `json:"nombre"`
	Description string          `json:"descripcion"`
	Lot         string          `json:"lote"`
	CategoryID  int64           `json:"idcategoria"`
	UnitID      int64           `json:"unidad_medida_id"`
	UnitCost    decimal.Decimal `json:"precio_costo"`
	SalePrice   decimal.Decimal `json:"precio_venta"`
}

// ProductDashboardResponse producto enriquecido con stock y estado reales
// para el dashboard (antes simulado; ahora calculado del inventario).
type ProductDashboardResponse struct {
	ProductResponse
	Stock  int64  `json:"stock"`
	Status string `json:"estado"` // Disponible, Bajo stock, Agotado
}

// ProductListResponse listado de productos.
type ProductListResponse struct {
	Count   int               `json:"count"`
	Results []ProductResponse `json:"results"`
}

// DashboardListResponse listado para el dashboard de productos.
type DashboardListResponse struct {
	Count   int                        `json:"count"`
	Results []ProductDashboardResponse `json:"results"`
}

// AssignSupplierRequest body para asociar un proveedor con un producto.
type AssignSupplierRequest struct {
	ProductID  int64 `json:"producto_id"`
	SupplierID int64 `json:"proveedor_id"`
}
