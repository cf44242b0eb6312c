package reports

import (
	"context"

	"github.com/eco-stock/eco-stock-api/internal/domain/entity"
)

// PDFGenerator genera la representación en PDF de un reporte de inventario.
type PDFGenerator interface {
	GenerateReportPDF(ctx context.Context, report *entity.Report, details []*entity.ReportDetail) ([]byte, error)
}
