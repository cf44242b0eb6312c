package expiration_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/eco-stock/eco-stock-api/internal/domain/expiration"
)

var hoy = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

func dia(offset int) time.Time { return hoy.AddDate(0, 0, offset) }

func TestDaysRemaining(t *testing.T) {
	assert.Equal(t, 0, expiration.DaysRemaining(hoy, hoy))
	assert.Equal(t, 1, expiration.DaysRemaining(dia(1), hoy))
	assert.Equal(t, -1, expiration.DaysRemaining(dia(-1), hoy))
	assert.Equal(t, 45, expiration.DaysRemaining(dia(45), hoy))
}

func TestDaysRemaining_IgnoraLaHora(t *testing.T) {
	// Vence mañana a las 06:00, consultado hoy a las 23:00: sigue siendo 1 día.
	vence := time.Date(2025, 6, 16, 6, 0, 0, 0, time.UTC)
	ahora := time.Date(2025, 6, 15, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, expiration.DaysRemaining(vence, ahora))
}

func TestClassify_Bordes(t *testing.T) {
	casos := []struct {
		nombre string
		offset int
		estado string
	}{
		{"vencido ayer", -1, expiration.StatusExpired},
		{"vence hoy", 0, expiration.StatusNear},
		{"ultimo dia de la ventana", 30, expiration.StatusNear},
		{"un dia despues de la ventana", 31, expiration.StatusCurrent},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			got := expiration.Classify(dia(c.offset), hoy, expiration.DefaultWindowDays)
			assert.Equal(t, c.estado, got)
		})
	}
}

func TestClassify_VentanaPersonalizada(t *testing.T) {
	assert.Equal(t, expiration.StatusNear, expiration.Classify(dia(7), hoy, 7))
	assert.Equal(t, expiration.StatusCurrent, expiration.Classify(dia(8), hoy, 7))
}
