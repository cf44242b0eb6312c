package dto

// RecordExpirationRequest body para POST /api/vencimientos.
// La fecha viaja como "YYYY-MM-DD".
type RecordExpirationRequest struct {
	ProductID int64  `json:"producto_id"`
	Date      string `json:"fecha_vencimiento"`
}

// ExpirationResponse salida de un registro de vencimiento.
type ExpirationResponse struct {
	ID            int64  `json:"id"`
	ProductID     int64  `json:"producto_id"`
	Date          string `json:"fecha_vencimiento"`
	Notified      bool   `json:"notificado"`
	DaysRemaining int    `json:"dias_restantes"`
	Status        string `json:"estado_vencimiento"` // Vencido, Próximo a vencer, Vigente
}

// ExpirationListResponse listado de vencimientos.
type ExpirationListResponse struct {
	Count   int                  `json:"count"`
	Results []ExpirationResponse `json:"results"`
}
