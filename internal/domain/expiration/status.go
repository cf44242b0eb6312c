// Package expiration contiene la lógica pura de clasificación de vencimientos
// (servicio de dominio, sin dependencias de infraestructura).
package expiration

import "time"

// DefaultWindowDays es el umbral de "próximo a vencer" en días.
// Es una constante de política; las consultas pueden sobreescribirla vía parámetro.
const DefaultWindowDays = 30

// Estados de vencimiento de un producto.
const (
	StatusExpired = "Vencido"
	StatusNear    = "Próximo a vencer"
	StatusCurrent = "Vigente"
)

// DaysRemaining devuelve los días calendario entre hoy y la fecha de
// vencimiento (negativo si ya venció). Ambas fechas se truncan a medianoche
// para que el cálculo no dependa de la hora del día.
func DaysRemaining(expiresAt, today time.Time) int {
	d1 := time.Date(expiresAt.Year(), expiresAt.Month(), expiresAt.Day(), 0, 0, 0, 0, time.UTC)
	d2 := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(d1.Sub(d2).Hours() / 24)
}

// Classify clasifica una fecha de vencimiento respecto a hoy:
// días < 0 → Vencido; 0..window → Próximo a vencer; > window → Vigente.
func Classify(expiresAt, today time.Time, windowDays int) string {
	days := DaysRemaining(expiresAt, today)
	switch {
	case days < 0:
		return StatusExpired
	case days <= windowDays:
		return StatusNear
	default:
		return StatusCurrent
	}
}
