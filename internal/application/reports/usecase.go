// Package reports implementa el agregador de reportes: resúmenes de solo
// lectura sobre catálogo + inventario + vencimientos, e instantáneas
// persistidas de esos resúmenes.
package reports

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/eco-stock/eco-stock-api/internal/domain"
	"github.com/eco-stock/eco-stock-api/internal/domain/entity"
	domexp "github.com/eco-stock/eco-stock-api/internal/domain/expiration"
	"github.com/eco-stock/eco-stock-api/internal/domain/repository"
)

const (
	// lowStockThreshold umbral de "bajo stock" para resúmenes (unidades).
	lowStockThreshold = 10
	// topProductsPageSize tamaño fijo de página del top por valor.
	topProductsPageSize = 10
)

// UseCase agregador de reportes. Todas las cifras se calculan de datos
// reales almacenados; los valores de referencia ausentes cuentan como cero
// en lugar de fallar el reporte (agregación best-effort).
type UseCase struct {
	reportingRepo repository.ReportingRepository
	reportRepo    repository.ReportRepository
	expRepo       repository.ExpirationRepository
	pdf           PDFGenerator
	now           func() time.Time
}

// NewUseCase construye el agregador.
func NewUseCase(
	reportingRepo repository.ReportingRepository,
	reportRepo repository.ReportRepository,
	expRepo repository.ExpirationRepository,
	pdf PDFGenerator,
) *UseCase {
	return &UseCase{
		reportingRepo: reportingRepo,
		reportRepo:    reportRepo,
		expRepo:       expRepo,
		pdf:           pdf,
		now:           time.Now,
	}
}

// Summary resumen global del inventario: totales, disponibilidad,
// vencimientos y valorización (Σ cantidad × precio_costo).
type Summary struct {
	TotalProducts   int
	TotalCategories int
	TotalSuppliers  int
	Available       int
	LowStock        int
	Depleted        int
	NearExpiry      int
	Expired         int
	StockValue      decimal.Decimal
}

// GetSummary calcula el resumen del inventario.
func (uc *UseCase) GetSummary(ctx context.Context) (*Summary, error) {
	rows, err := uc.reportingRepo.ListStockRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("resumen: filas de stock: %w", err)
	}
	categories, err := uc.reportingRepo.CountCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("resumen: categorías: %w", err)
	}
	suppliers, err := uc.reportingRepo.CountSuppliers(ctx)
	if err != nil {
		return nil, fmt.Errorf("resumen: proveedores: %w", err)
	}

	s := &Summary{
		TotalProducts:   len(rows),
		TotalCategories: categories,
		TotalSuppliers:  suppliers,
		StockValue:      decimal.Zero,
	}
	for _, r := range rows {
		switch {
		case r.Quantity == 0:
			s.Depleted++
		case r.Quantity <= lowStockThreshold:
			s.LowStock++
		default:
			s.Available++
		}
		s.StockValue = s.StockValue.Add(stockValue(r.Quantity, r.UnitCost))
	}

	today := uc.now()
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	near, err := uc.expRepo.ListBetween(start, start.AddDate(0, 0, domexp.DefaultWindowDays))
	if err != nil {
		return nil, fmt.Errorf("resumen: próximos a vencer: %w", err)
	}
	expired, err := uc.expRepo.ListExpiredBefore(start)
	if err != nil {
		return nil, fmt.Errorf("resumen: vencidos: %w", err)
	}
	s.NearExpiry = len(near)
	s.Expired = len(expired)
	return s, nil
}

// RollupByCategory agrupa productos por categoría (conteo, cantidad, valor).
func (uc *UseCase) RollupByCategory(ctx context.Context) ([]repository.CategoryRollup, error) {
	return uc.reportingRepo.RollupByCategory(ctx)
}

// RollupBySupplier agrupa productos por proveedor (conteo, cantidad, valor).
func (uc *UseCase) RollupBySupplier(ctx context.Context) ([]repository.SupplierRollup, error) {
	return uc.reportingRepo.RollupBySupplier(ctx)
}

// TopProductsByValue devuelve los productos con mayor valor de inventario
// (cantidad × precio_costo), descendente, acotado a una página fija.
func (uc *UseCase) TopProductsByValue(ctx context.Context) ([]repository.StockRow, error) {
	rows, err := uc.reportingRepo.ListStockRows(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(rows, func(i, j int) bool {
		vi := stockValue(rows[i].Quantity, rows[i].UnitCost)
		vj := stockValue(rows[j].Quantity, rows[j].UnitCost)
		return vi.GreaterThan(vj)
	})
	if len(rows) > topProductsPageSize {
		rows = rows[:topProductsPageSize]
	}
	return rows, nil
}

// GenerateInput parámetros para generar una instantánea de reporte.
type GenerateInput struct {
	Type        string
	Name        string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	CategoryID  int64 // solo para productos_categoria; 0 = todas
}

// Generate crea la cabecera del reporte (estado generando), materializa los
// detalles según el tipo y deja el estado en completado o error.
func (uc *UseCase) Generate(ctx context.Context, userID int64, in GenerateInput) (*entity.Report, error) {
	if userID <= 0 || in.Type == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	reportType, err := uc.reportRepo.GetTypeByName(in.Type)
	if err != nil {
		return nil, err
	}
	if reportType == nil {
		return nil, domain.ErrNotFound
	}

	report := &entity.Report{
		ID:          uuid.New().String(),
		TypeID:      reportType.ID,
		TypeName:    reportType.Name,
		UserID:      userID,
		Name:        in.Name,
		Description: in.Description,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Status:      entity.ReportStatusGenerating,
		GeneratedAt: uc.now(),
	}
	if err := uc.reportRepo.Create(report); err != nil {
		return nil, err
	}

	if err := uc.populateDetails(ctx, report, in); err != nil {
		_ = uc.reportRepo.UpdateStatus(report.ID, entity.ReportStatusError)
		report.Status = entity.ReportStatusError
		return report, err
	}
	if err := uc.reportRepo.UpdateStatus(report.ID, entity.ReportStatusCompleted); err != nil {
		return nil, err
	}
	report.Status = entity.ReportStatusCompleted
	return report, nil
}

func (uc *UseCase) populateDetails(ctx context.Context, report *entity.Report, in GenerateInput) error {
	var rows []repository.StockRow
	var err error
	switch report.TypeName {
	case entity.ReportInventory, entity.ReportLowStock:
		rows, err = uc.reportingRepo.ListStockRows(ctx)
	case entity.ReportByCategory:
		rows, err = uc.reportingRepo.ListStockRowsByCategory(ctx, in.CategoryID)
	case entity.ReportSuppliers:
		// El reporte de proveedores no materializa detalle por producto;
		// el rollup se consulta en vivo vía RollupBySupplier.
		return nil
	default:
		return domain.ErrInvalidInput
	}
	if err != nil {
		return err
	}

	var details []*entity.ReportDetail
	for _, r := range rows {
		state := stockState(r.Quantity)
		if report.TypeName == entity.ReportLowStock && state == entity.StockStateNormal {
			continue
		}
		details = append(details, &entity.ReportDetail{
			ReportID:    report.ID,
			ProductID:   r.ProductID,
			ProductName: r.ProductName,
			CategoryID:  r.CategoryID,
			Quantity:    r.Quantity,
			UnitCost:    r.UnitCost,
			SalePrice:   r.SalePrice,
			StockValue:  stockValue(r.Quantity, r.UnitCost),
			StockState:  state,
		})
	}
	if len(details) == 0 {
		return nil
	}
	return uc.reportRepo.CreateDetails(details)
}

// ListTypes catálogo de tipos de reporte activos.
func (uc *UseCase) ListTypes(ctx context.Context) ([]*entity.ReportType, error) {
	return uc.reportRepo.ListTypes()
}

// List lista cabeceras de reportes generados, más reciente primero.
func (uc *UseCase) List(ctx context.Context, limit, offset int) ([]*entity.Report, error) {
	return uc.reportRepo.List(limit, offset)
}

// Get devuelve un reporte con sus detalles.
func (uc *UseCase) Get(ctx context.Context, id string) (*entity.Report, []*entity.ReportDetail, error) {
	report, err := uc.reportRepo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if report == nil {
		return nil, nil, domain.ErrNotFound
	}
	details, err := uc.reportRepo.ListDetails(id)
	if err != nil {
		return nil, nil, err
	}
	return report, details, nil
}

// ExportPDF genera el PDF de un reporte completado.
func (uc *UseCase) ExportPDF(ctx context.Context, id string) ([]byte, error) {
	report, details, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if report.Status != entity.ReportStatusCompleted {
		return nil, domain.ErrInvalidInput
	}
	return uc.pdf.GenerateReportPDF(ctx, report, details)
}

func stockValue(quantity int64, unitCost decimal.Decimal) decimal.Decimal {
	// Costo ausente cuenta como cero: la valorización nunca falla el reporte
	return unitCost.Mul(decimal.NewFromInt(quantity))
}

func stockState(quantity int64) string {
	switch {
	case quantity <= 0:
		return entity.StockStateDepleted
	case quantity <= lowStockThreshold:
		return entity.StockStateLow
	default:
		return entity.StockStateNormal
	}
}
