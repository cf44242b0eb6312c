package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eco-stock/eco-stock-api/internal/application/reports"
	"github.com/eco-stock/eco-stock-api/internal/domain/entity"
	"github.com/eco-stock/eco-stock-api/internal/domain/repository"
	apphttp "github.com/eco-stock/eco-stock-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs mínimos para el agregador de reportes
// ──────────────────────────────────────────────────────────────────────────────

type stubReportingRepo struct {
	rows       []repository.StockRow
	categories int
	suppliers  int
}

func (r *stubReportingRepo) ListStockRows(ctx context.Context) ([]repository.StockRow, error) {
	return r.rows, nil
}

func (r *stubReportingRepo) ListStockRowsByCategory(ctx context.Context, categoryID int64) ([]repository.StockRow, error) {
	return r.rows, nil
}

func (r *stubReportingRepo) RollupByCategory(ctx context.Context) ([]repository.CategoryRollup, error) {
	return nil, nil
}

func (r *stubReportingRepo) RollupBySupplier(ctx context.Context) ([]repository.SupplierRollup, error) {
	return nil, nil
}

func (r *stubReportingRepo) CountCategories(ctx context.Context) (int, error) {
	return r.categories, nil
}

func (r *stubReportingRepo) CountSuppliers(ctx context.Context) (int, error) {
	return r.suppliers, nil
}

type stubReportRepo struct{}

func (stubReportRepo) ListTypes() ([]*entity.ReportType, error)             { return nil, nil }
func (stubReportRepo) GetTypeByName(name string) (*entity.ReportType, error) { return nil, nil }
func (stubReportRepo) Create(report *entity.Report) error                   { return nil }
func (stubReportRepo) UpdateStatus(id, status string) error                 { return nil }
func (stubReportRepo) GetByID(id string) (*entity.Report, error)            { return nil, nil }
func (stubReportRepo) List(limit, offset int) ([]*entity.Report, error)     { return nil, nil }
func (stubReportRepo) CreateDetails(details []*entity.ReportDetail) error   { return nil }
func (stubReportRepo) ListDetails(reportID string) ([]*entity.ReportDetail, error) {
	return nil, nil
}

type stubExpirationRepo struct{}

func (stubExpirationRepo) Create(record *entity.ExpirationRecord) error      { return nil }
func (stubExpirationRepo) GetByID(id int64) (*entity.ExpirationRecord, error) { return nil, nil }
func (stubExpirationRepo) ListBetween(from, to time.Time) ([]*entity.ExpirationRecord, error) {
	return nil, nil
}
func (stubExpirationRepo) ListExpiredBefore(before time.Time) ([]*entity.ExpirationRecord, error) {
	return nil, nil
}
func (stubExpirationRepo) ListUnnotified() ([]*entity.ExpirationRecord, error) { return nil, nil }
func (stubExpirationRepo) MarkNotified(id int64) error                         { return nil }

type stubPDFGenerator struct{}

func (stubPDFGenerator) GenerateReportPDF(ctx context.Context, report *entity.Report, details []*entity.ReportDetail) ([]byte, error) {
	return []byte("%PDF-"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/productos/estadisticas
// ──────────────────────────────────────────────────────────────────────────────

func TestProductos_Estadisticas_DevuelveResumenDelCatalogo(t *testing.T) {
	reporting := &stubReportingRepo{
		rows: []repository.StockRow{
			{ProductID: 1, ProductName: "abono", CategoryID: 1, Quantity: 50, UnitCost: decimal.NewFromInt(100)},
			{ProductID: 2, ProductName: "semillas", CategoryID: 1, Quantity: 5, UnitCost: decimal.NewFromInt(20)},
			{ProductID: 3, ProductName: "macetas", CategoryID: 2, Quantity: 0, UnitCost: decimal.NewFromInt(30)},
		},
		categories: 2,
		suppliers:  4,
	}
	reportsUC := reports.NewUseCase(reporting, stubReportRepo{}, stubExpirationRepo{}, stubPDFGenerator{})
	handler := apphttp.NewProductHandler(nil, reportsUC)

	app := fiber.New()
	app.Get("/api/productos/estadisticas", handler.Statistics)

	req := httptest.NewRequest(http.MethodGet, "/api/productos/estadisticas", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))

	assert.EqualValues(t, 3, body["total_productos"])
	assert.EqualValues(t, 2, body["total_categorias"])
	assert.EqualValues(t, 4, body["total_proveedores"])
	assert.EqualValues(t, 1, body["productos_disponibles"])
	assert.EqualValues(t, 1, body["productos_bajo_stock"])
	assert.EqualValues(t, 1, body["productos_agotados"])
	assert.Contains(t, body, "valor_inventario")
}
