package ledger_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eco-stock/eco-stock-api/internal/application/ledger"
	"github.com/eco-stock/eco-stock-api/internal/domain"
	"github.com/eco-stock/eco-stock-api/internal/domain/entity"
	"github.com/eco-stock/eco-stock-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeInventoryRepo struct {
	mu      sync.Mutex
	nextID  int64
	records map[int64]*entity.InventoryRecord // por ID de registro
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{nextID: 1, records: make(map[int64]*entity.InventoryRecord)}
}

func (r *fakeInventoryRepo) byProduct(productID int64) *entity.InventoryRecord {
	for _, rec := range r.records {
		if rec.ProductID == productID {
			return rec
		}
	}
	return nil
}

func (r *fakeInventoryRepo) GetByProduct(productID int64) (*entity.InventoryRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec := r.byProduct(productID)
	if rec == nil {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (r *fakeInventoryRepo) GetByID(id int64) (*entity.InventoryRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (r *fakeInventoryRepo) GetForUpdate(productID int64) (*entity.InventoryRecord, error) {
	return r.GetByProduct(productID)
}

func (r *fakeInventoryRepo) GetByIDForUpdate(id int64) (*entity.InventoryRecord, error) {
	return r.GetByID(id)
}

func (r *fakeInventoryRepo) Create(record *entity.InventoryRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.byProduct(record.ProductID) != nil {
		return domain.ErrDuplicate
	}
	record.ID = r.nextID
	r.nextID++
	cp := *record
	r.records[record.ID] = &cp
	return nil
}

func (r *fakeInventoryRepo) UpdateQuantity(record *entity.InventoryRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.records[record.ID]
	if !ok {
		return domain.ErrNotFound
	}
	stored.Quantity = record.Quantity
	stored.UpdatedAt = record.UpdatedAt
	return nil
}

func (r *fakeInventoryRepo) ListLowStock(threshold int64) ([]*entity.InventoryRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.InventoryRecord
	for _, rec := range r.records {
		if rec.Quantity <= threshold {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeInventoryRepo) ListOutOfStock() ([]*entity.InventoryRecord, error) {
	return r.ListLowStock(0)
}

func (r *fakeInventoryRepo) List(limit, offset int) ([]*entity.InventoryRecord, error) {
	return r.ListLowStock(1 << 40)
}

type fakeMovementRepo struct {
	mu        sync.Mutex
	nextID    int64
	movements []*entity.Movement
}

func newFakeMovementRepo() *fakeMovementRepo {
	return &fakeMovementRepo{nextID: 1}
}

func (r *fakeMovementRepo) Create(movement *entity.Movement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	movement.ID = r.nextID
	r.nextID++
	for i := range movement.Details {
		movement.Details[i].MovementID = movement.ID
	}
	cp := *movement
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) GetByID(id int64) (*entity.Movement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.movements {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeMovementRepo) ListByProduct(productID int64, limit, offset int) ([]*entity.Movement, error) {
	return r.all(), nil
}

func (r *fakeMovementRepo) ListByDateRange(from, to time.Time, limit, offset int) ([]*entity.Movement, error) {
	return r.all(), nil
}

func (r *fakeMovementRepo) ListByUser(userID int64, limit, offset int) ([]*entity.Movement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Movement
	for _, m := range r.movements {
		if m.UserID == userID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) all() []*entity.Movement {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Movement, 0, len(r.movements))
	for _, m := range r.movements {
		cp := *m
		out = append(out, &cp)
	}
	return out
}

func (r *fakeMovementRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.movements)
}

// fakeTxRunner serializa las "transacciones" con un mutex, igual que haría el
// bloqueo de fila en Postgres.
type fakeTxRunner struct {
	mu      sync.Mutex
	movRepo repository.MovementRepository
	invRepo repository.InventoryRepository
}

func (tr *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	invRepo repository.InventoryRepository,
) error) error {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	return fn(tr.movRepo, tr.invRepo)
}

type fakeProductRepo struct {
	products map[int64]*entity.Product
}

func (r *fakeProductRepo) Create(product *entity.Product) error { return nil }

func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error)    { return nil, nil }
func (r *fakeProductRepo) Search(t string, l, o int) ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) ListByCategory(id int64) ([]*entity.Product, error)   { return nil, nil }
func (r *fakeProductRepo) ListByLot(lot string) ([]*entity.Product, error)      { return nil, nil }
func (r *fakeProductRepo) Update(product *entity.Product) error                 { return nil }
func (r *fakeProductRepo) Delete(id int64) error                                { return nil }

func newLedger(productIDs ...int64) (*ledger.UseCase, *fakeInventoryRepo, *fakeMovementRepo) {
	invRepo := newFakeInventoryRepo()
	movRepo := newFakeMovementRepo()
	products := make(map[int64]*entity.Product)
	for _, id := range productIDs {
		products[id] = &entity.Product{ID: id, Name: "producto"}
	}
	uc := ledger.NewUseCase(
		&fakeTxRunner{movRepo: movRepo, invRepo: invRepo},
		&fakeProductRepo{products: products},
		invRepo,
		movRepo,
	)
	return uc, invRepo, movRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RegisterEntry
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterEntry_PrimerMovimientoCreaInventario(t *testing.T) {
	uc, invRepo, movRepo := newLedger(1)
	ctx := context.Background()

	mov, err := uc.RegisterEntry(ctx, 1, 10, 7)
	require.NoError(t, err)
	require.NotNil(t, mov)

	assert.Equal(t, entity.MovementEntry, mov.Type)
	assert.Equal(t, int64(7), mov.UserID)
	require.Len(t, mov.Details, 1)
	assert.Equal(t, int64(10), mov.Details[0].Quantity)

	rec, err := invRepo.GetByProduct(1)
	require.NoError(t, err)
	require.NotNil(t, rec, "la fila de inventario debe crearse en el primer movimiento")
	assert.Equal(t, int64(10), rec.Quantity)
	assert.Equal(t, 1, movRepo.count())
}

func TestRegisterEntry_SumaSobreStockExistente(t *testing.T) {
	uc, invRepo, _ := newLedger(1)
	ctx := context.Background()

	_, err := uc.RegisterEntry(ctx, 1, 10, 7)
	require.NoError(t, err)
	_, err = uc.RegisterEntry(ctx, 1, 5, 7)
	require.NoError(t, err)

	rec, _ := invRepo.GetByProduct(1)
	assert.Equal(t, int64(15), rec.Quantity)
}

func TestRegisterEntry_ProductoInexistente(t *testing.T) {
	uc, _, movRepo := newLedger() // catálogo vacío
	_, err := uc.RegisterEntry(context.Background(), 99, 10, 7)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 0, movRepo.count(), "un error no debe dejar movimiento registrado")
}

func TestRegisterEntry_EntradasInvalidas(t *testing.T) {
	uc, _, movRepo := newLedger(1)
	ctx := context.Background()

	casos := []struct {
		nombre                  string
		producto, cant, usuario int64
	}{
		{"cantidad cero", 1, 0, 7},
		{"cantidad negativa", 1, -5, 7},
		{"producto cero", 0, 10, 7},
		{"usuario cero", 1, 10, 0},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			_, err := uc.RegisterEntry(ctx, c.producto, c.cant, c.usuario)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Equal(t, 0, movRepo.count())
}

// inventarioCarrera simula una fila de inventario creada por otra transacción
// entre el SELECT FOR UPDATE y el INSERT: la primera lectura no ve la fila,
// pero Create la encuentra ya creada y devuelve ErrDuplicate.
type inventarioCarrera struct {
	*fakeInventoryRepo
	mu       sync.Mutex
	primeras int
}

func (r *inventarioCarrera) GetForUpdate(productID int64) (*entity.InventoryRecord, error) {
	r.mu.Lock()
	primera := r.primeras == 0
	r.primeras++
	r.mu.Unlock()
	if primera {
		return nil, nil
	}
	return r.fakeInventoryRepo.GetForUpdate(productID)
}

func TestRegisterEntry_CreacionConcurrenteReintentaSobreFilaExistente(t *testing.T) {
	invRepo := newFakeInventoryRepo()
	movRepo := newFakeMovementRepo()
	require.NoError(t, invRepo.Create(&entity.InventoryRecord{ProductID: 1, Quantity: 5}))

	carrera := &inventarioCarrera{fakeInventoryRepo: invRepo}
	uc := ledger.NewUseCase(
		&fakeTxRunner{movRepo: movRepo, invRepo: carrera},
		&fakeProductRepo{products: map[int64]*entity.Product{1: {ID: 1, Name: "producto"}}},
		invRepo,
		movRepo,
	)

	mov, err := uc.RegisterEntry(context.Background(), 1, 10, 7)
	require.NoError(t, err, "perder la carrera de creación no debe fallar la entrada")
	require.NotNil(t, mov)

	rec, err := invRepo.GetByProduct(1)
	require.NoError(t, err)
	assert.Equal(t, int64(15), rec.Quantity, "la entrada suma sobre la fila creada por la otra transacción")
	assert.Equal(t, 1, movRepo.count())
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RegisterExit
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterExit_RestaStock(t *testing.T) {
	uc, invRepo, movRepo := newLedger(1)
	ctx := context.Background()

	_, err := uc.RegisterEntry(ctx, 1, 10, 7)
	require.NoError(t, err)

	mov, err := uc.RegisterExit(ctx, 1, 3, 7)
	require.NoError(t, err)
	assert.Equal(t, entity.MovementExit, mov.Type)
	require.Len(t, mov.Details, 1)
	assert.Equal(t, int64(3), mov.Details[0].Quantity)

	rec, _ := invRepo.GetByProduct(1)
	assert.Equal(t, int64(7), rec.Quantity)
	assert.Equal(t, 2, movRepo.count())
}

func TestRegisterExit_StockInsuficiente(t *testing.T) {
	uc, invRepo, movRepo := newLedger(1)
	ctx := context.Background()

	_, err := uc.RegisterEntry(ctx, 1, 10, 7)
	require.NoError(t, err)

	_, err = uc.RegisterExit(ctx, 1, 100, 7)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	rec, _ := invRepo.GetByProduct(1)
	assert.Equal(t, int64(10), rec.Quantity, "el stock no debe cambiar si la salida falla")
	assert.Equal(t, 1, movRepo.count(), "no debe quedar movimiento de la salida fallida")
}

func TestRegisterExit_SalidaExacta_DejaCero(t *testing.T) {
	uc, invRepo, _ := newLedger(1)
	ctx := context.Background()

	_, err := uc.RegisterEntry(ctx, 1, 10, 7)
	require.NoError(t, err)
	_, err = uc.RegisterExit(ctx, 1, 10, 7)
	require.NoError(t, err)

	rec, _ := invRepo.GetByProduct(1)
	assert.Equal(t, int64(0), rec.Quantity)
}

func TestRegisterExit_SalidasConcurrentesNoSobregiran(t *testing.T) {
	uc, invRepo, _ := newLedger(1)
	ctx := context.Background()

	_, err := uc.RegisterEntry(ctx, 1, 10, 7)
	require.NoError(t, err)

	// 20 salidas de 1 unidad compitiendo por 10 unidades de stock:
	// exactamente 10 deben tener éxito y el stock final debe ser 0.
	var wg sync.WaitGroup
	var okCount int64
	var mu sync.Mutex
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := uc.RegisterExit(ctx, 1, 1, 7); err == nil {
				mu.Lock()
				okCount++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(10), okCount)
	rec, _ := invRepo.GetByProduct(1)
	assert.Equal(t, int64(0), rec.Quantity, "el stock nunca queda negativo")
}

func TestRegisterExit_SinInventario(t *testing.T) {
	uc, _, _ := newLedger(1)
	_, err := uc.RegisterExit(context.Background(), 1, 5, 7)
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"salida de un producto sin inventario debe fallar con not found")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AdjustQuantity
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjustQuantity_EmiteMovimientoAjuste(t *testing.T) {
	uc, _, movRepo := newLedger(1)
	ctx := context.Background()

	mov, err := uc.RegisterEntry(ctx, 1, 10, 7)
	require.NoError(t, err)

	updated, err := uc.AdjustQuantity(ctx, mov.InventoryID, 4, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(4), updated.Quantity)

	movs := movRepo.all()
	require.Len(t, movs, 2)
	ajuste := movs[1]
	assert.Equal(t, entity.MovementAdjustment, ajuste.Type)
	require.Len(t, ajuste.Details, 1)
	assert.Equal(t, int64(-6), ajuste.Details[0].Quantity,
		"el detalle del ajuste lleva el delta con signo")
}

func TestAdjustQuantity_SinCambio_NoEmiteMovimiento(t *testing.T) {
	uc, _, movRepo := newLedger(1)
	ctx := context.Background()

	mov, err := uc.RegisterEntry(ctx, 1, 10, 7)
	require.NoError(t, err)

	_, err = uc.AdjustQuantity(ctx, mov.InventoryID, 10, 7)
	require.NoError(t, err)
	assert.Equal(t, 1, movRepo.count(), "ajuste a la misma cantidad no genera movimiento")
}

func TestAdjustQuantity_CantidadNegativa(t *testing.T) {
	uc, _, _ := newLedger(1)
	_, err := uc.AdjustQuantity(context.Background(), 1, -1, 7)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdjustQuantity_RegistroInexistente(t *testing.T) {
	uc, _, _ := newLedger(1)
	_, err := uc.AdjustQuantity(context.Background(), 99, 5, 7)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de consulta
// ──────────────────────────────────────────────────────────────────────────────

func TestCurrentStock_SinInventarioEsCero(t *testing.T) {
	uc, _, _ := newLedger(1)
	stock, err := uc.CurrentStock(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stock, "producto sin fila de inventario tiene stock cero")
}

func TestCurrentStock_ReflejaMovimientos(t *testing.T) {
	uc, _, _ := newLedger(1)
	ctx := context.Background()

	_, err := uc.RegisterEntry(ctx, 1, 10, 7)
	require.NoError(t, err)
	_, err = uc.RegisterExit(ctx, 1, 3, 7)
	require.NoError(t, err)

	stock, err := uc.CurrentStock(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(7), stock)
}

func TestListLowStock_UmbralNegativo(t *testing.T) {
	uc, _, _ := newLedger(1)
	_, err := uc.ListLowStock(context.Background(), -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMovementsInDateRange_RangoInvertido(t *testing.T) {
	uc, _, _ := newLedger(1)
	from := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	_, err := uc.MovementsInDateRange(context.Background(), from, to, 50, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
