package dto

import "time"

// RegisterMovementRequest body para POST /api/movimientos/registrar_entrada y registrar_salida.
type RegisterMovementRequest struct {
	ProductID int64 `json:"producto_id"`
	Quantity  int64 `json:"cantidad"`
	UserID    int64 `json:"usuario_id"`
}

// AdjustQuantityRequest body para PATCH /api/inventario/:id/ajustar.
type AdjustQuantityRequest struct {
	Quantity int64 `json:"cantidad"`
	UserID   int64 `json:"usuario_id"`
}

// MovementDetailResponse línea de detalle de un movimiento.
type MovementDetailResponse struct {
	ID       int64 `json:"id"`
	Quantity int64 `json:"cantidad"`
}

// MovementResponse salida de un movimiento registrado.
type MovementResponse struct {
	ID          int64                    `json:"id"`
	Date        time.Time                `json:"fecha"`
	Type        string                   `json:"tipo_movimiento"`
	UserID      int64                    `json:"usuario_id"`
	InventoryID int64                    `json:"inventario_id"`
	Details     []MovementDetailResponse `json:"detalles"`
}

// StockResponse salida de GET /api/inventario/stock_actual.
type StockResponse struct {
	ProductID int64 `json:"producto_id"`
	Stock     int64 `json:"stock_actual"`
}

// InventoryRecordResponse fila de inventario para listados (bajo stock, agotados).
type InventoryRecordResponse struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"producto_id"`
	Quantity  int64     `json:"cantidad"`
	UpdatedAt time.Time `json:"fecha_actualizacion"`
}
