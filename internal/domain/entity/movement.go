package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementEntry      = "ENTRADA"
	MovementExit       = "SALIDA"
	MovementAdjustment = "AJUSTE" // ajuste administrativo con rastro de auditoría
)

// Movement representa un movimiento de inventario (entrada, salida o ajuste).
// Es un registro de auditoría append-only: inmutable una vez creado.
type Movement struct {
	ID          int64
	Date        time.Time
	Type        string
	UserID      int64
	InventoryID int64
	Details     []MovementDetail
}

// MovementDetail es la línea de detalle de un movimiento. Hoy se crea
// exactamente una por movimiento; el modelo admite varias.
type MovementDetail struct {
	ID         int64
	MovementID int64
	Quantity   int64 // con signo en AJUSTE; positiva en ENTRADA/SALIDA
}
