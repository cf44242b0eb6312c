package expiration

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eco-stock/eco-stock-api/internal/domain"
	"github.com/eco-stock/eco-stock-api/internal/domain/entity"
	domexp "github.com/eco-stock/eco-stock-api/internal/domain/expiration"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeExpirationRepo struct {
	mu      sync.Mutex
	nextID  int64
	records map[int64]*entity.ExpirationRecord
}

func newFakeExpirationRepo() *fakeExpirationRepo {
	return &fakeExpirationRepo{nextID: 1, records: make(map[int64]*entity.ExpirationRecord)}
}

func (r *fakeExpirationRepo) Create(record *entity.ExpirationRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.records {
		if existing.ProductID == record.ProductID && existing.ExpiresAt.Equal(record.ExpiresAt) {
			return domain.ErrDuplicate
		}
	}
	record.ID = r.nextID
	r.nextID++
	cp := *record
	r.records[record.ID] = &cp
	return nil
}

func (r *fakeExpirationRepo) GetByID(id int64) (*entity.ExpirationRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (r *fakeExpirationRepo) ListBetween(from, to time.Time) ([]*entity.ExpirationRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.ExpirationRecord
	for _, rec := range r.records {
		if !rec.ExpiresAt.Before(from) && !rec.ExpiresAt.After(to) {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeExpirationRepo) ListExpiredBefore(before time.Time) ([]*entity.ExpirationRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.ExpirationRecord
	for _, rec := range r.records {
		if rec.ExpiresAt.Before(before) {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeExpirationRepo) ListUnnotified() ([]*entity.ExpirationRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.ExpirationRecord
	for _, rec := range r.records {
		if !rec.Notified {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeExpirationRepo) MarkNotified(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		return domain.ErrNotFound
	}
	rec.Notified = true
	return nil
}

type stubProductRepo struct {
	products map[int64]*entity.Product
}

func (r *stubProductRepo) Create(product *entity.Product) error { return nil }

func (r *stubProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (r *stubProductRepo) List(limit, offset int) ([]*entity.Product, error)    { return nil, nil }
func (r *stubProductRepo) Search(t string, l, o int) ([]*entity.Product, error) { return nil, nil }
func (r *stubProductRepo) ListByCategory(id int64) ([]*entity.Product, error)   { return nil, nil }
func (r *stubProductRepo) ListByLot(lot string) ([]*entity.Product, error)      { return nil, nil }
func (r *stubProductRepo) Update(product *entity.Product) error                 { return nil }
func (r *stubProductRepo) Delete(id int64) error                                { return nil }

// hoy fija para los tests: 2025-06-15 a mediodía (la hora no debe importar).
var testToday = time.Date(2025, 6, 15, 12, 30, 0, 0, time.UTC)

func newExpirationUC(productIDs ...int64) (*UseCase, *fakeExpirationRepo) {
	repo := newFakeExpirationRepo()
	products := make(map[int64]*entity.Product)
	for _, id := range productIDs {
		products[id] = &entity.Product{ID: id, Name: "producto"}
	}
	uc := NewUseCase(repo, &stubProductRepo{products: products})
	uc.now = func() time.Time { return testToday }
	return uc, repo
}

func fecha(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RecordExpiration
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordExpiration_RegistraYTruncaFecha(t *testing.T) {
	uc, _ := newExpirationUC(1)

	rec, err := uc.RecordExpiration(context.Background(), 1, time.Date(2025, 7, 1, 18, 45, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, fecha(2025, 7, 1), rec.ExpiresAt, "la fecha debe truncarse a medianoche")
	assert.False(t, rec.Notified)
	assert.NotZero(t, rec.ID)
}

func TestRecordExpiration_ParDuplicado(t *testing.T) {
	uc, _ := newExpirationUC(1)
	ctx := context.Background()

	_, err := uc.RecordExpiration(ctx, 1, fecha(2025, 7, 1))
	require.NoError(t, err)

	_, err = uc.RecordExpiration(ctx, 1, fecha(2025, 7, 1))
	assert.ErrorIs(t, err, domain.ErrDuplicate,
		"el mismo par producto+fecha no debe registrarse dos veces")

	// Mismo producto, otra fecha: permitido.
	_, err = uc.RecordExpiration(ctx, 1, fecha(2025, 8, 1))
	assert.NoError(t, err)
}

func TestRecordExpiration_ProductoInexistente(t *testing.T) {
	uc, _ := newExpirationUC()
	_, err := uc.RecordExpiration(context.Background(), 99, fecha(2025, 7, 1))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordExpiration_EntradasInvalidas(t *testing.T) {
	uc, _ := newExpirationUC(1)
	ctx := context.Background()

	_, err := uc.RecordExpiration(ctx, 0, fecha(2025, 7, 1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.RecordExpiration(ctx, 1, time.Time{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de ventanas de consulta
// ──────────────────────────────────────────────────────────────────────────────

func TestListExpiringWithin_LimitesDeVentana(t *testing.T) {
	uc, _ := newExpirationUC(1)
	ctx := context.Background()

	// día 0, día 30 (borde incluido), día 31 (fuera), ayer (vencido, fuera)
	_, err := uc.RecordExpiration(ctx, 1, testToday)
	require.NoError(t, err)
	_, err = uc.RecordExpiration(ctx, 1, fecha(2025, 7, 15)) // +30
	require.NoError(t, err)
	_, err = uc.RecordExpiration(ctx, 1, fecha(2025, 7, 16)) // +31
	require.NoError(t, err)
	_, err = uc.RecordExpiration(ctx, 1, fecha(2025, 6, 14)) // -1
	require.NoError(t, err)

	out, err := uc.ListExpiringWithin(ctx, 30)
	require.NoError(t, err)
	assert.Len(t, out, 2, "la ventana [hoy, hoy+30] incluye el día 0 y el día 30")
}

func TestListExpiringWithin_DiasCeroUsaVentanaPorDefecto(t *testing.T) {
	uc, _ := newExpirationUC(1)
	ctx := context.Background()

	_, err := uc.RecordExpiration(ctx, 1, fecha(2025, 7, 15)) // +30
	require.NoError(t, err)
	_, err = uc.RecordExpiration(ctx, 1, fecha(2025, 7, 16)) // +31
	require.NoError(t, err)

	out, err := uc.ListExpiringWithin(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, out, 1, "days == 0 aplica la ventana por defecto de 30 días")
}

func TestListExpiringWithin_DiasNegativoEsInvalido(t *testing.T) {
	uc, _ := newExpirationUC(1)

	out, err := uc.ListExpiringWithin(context.Background(), -5)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, out)
}

func TestListExpired_SoloFechasPasadas(t *testing.T) {
	uc, _ := newExpirationUC(1)
	ctx := context.Background()

	_, err := uc.RecordExpiration(ctx, 1, fecha(2025, 6, 14)) // ayer
	require.NoError(t, err)
	_, err = uc.RecordExpiration(ctx, 1, testToday) // hoy: aún no vencido
	require.NoError(t, err)

	out, err := uc.ListExpired(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, fecha(2025, 6, 14), out[0].ExpiresAt)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests MarkNotified
// ──────────────────────────────────────────────────────────────────────────────

func TestMarkNotified_EsIdempotente(t *testing.T) {
	uc, _ := newExpirationUC(1)
	ctx := context.Background()

	rec, err := uc.RecordExpiration(ctx, 1, fecha(2025, 7, 1))
	require.NoError(t, err)

	marked, err := uc.MarkNotified(ctx, rec.ID)
	require.NoError(t, err)
	assert.True(t, marked.Notified)

	// Segunda marca: sin error, mismo estado.
	marked, err = uc.MarkNotified(ctx, rec.ID)
	require.NoError(t, err)
	assert.True(t, marked.Notified)

	pending, err := uc.ListUnnotified(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestMarkNotified_RegistroInexistente(t *testing.T) {
	uc, _ := newExpirationUC(1)
	_, err := uc.MarkNotified(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Classify (vía caso de uso, con reloj fijo)
// ──────────────────────────────────────────────────────────────────────────────

func TestClassify_EstadosSegunDiasRestantes(t *testing.T) {
	uc, _ := newExpirationUC(1)

	casos := []struct {
		nombre string
		fecha  time.Time
		estado string
		dias   int
	}{
		{"vencido ayer", fecha(2025, 6, 14), domexp.StatusExpired, -1},
		{"vence hoy", fecha(2025, 6, 15), domexp.StatusNear, 0},
		{"borde de ventana", fecha(2025, 7, 15), domexp.StatusNear, 30},
		{"fuera de ventana", fecha(2025, 7, 16), domexp.StatusCurrent, 31},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			estado, dias := uc.Classify(&entity.ExpirationRecord{ExpiresAt: c.fecha})
			assert.Equal(t, c.estado, estado)
			assert.Equal(t, c.dias, dias)
		})
	}
}
