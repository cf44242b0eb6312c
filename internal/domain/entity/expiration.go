package entity

import "time"

// ExpirationRecord asocia un producto con una fecha de vencimiento.
// Unicidad por par (ProductID, ExpiresAt). Notified marca si ya se
// envió la notificación de vencimiento.
type ExpirationRecord struct {
	ID        int64
	ProductID int64
	ExpiresAt time.Time // solo fecha, sin hora
	Notified  bool
}
