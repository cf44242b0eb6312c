package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/eco-stock/eco-stock-api/internal/domain"
	"github.com/eco-stock/eco-stock-api/internal/domain/entity"
	"github.com/eco-stock/eco-stock-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo persistencia de instantáneas de reportes y su catálogo de tipos.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes persistidos.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// ListTypes catálogo de tipos de reporte activos.
func (r *ReportRepo) ListTypes() ([]*entity.ReportType, error) {
	query := `
		SELECT idtipo_reporte, nombre, descripcion, activo
		FROM tipo_reporte WHERE activo = true ORDER BY idtipo_reporte`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list tipos de reporte: %w", err)
	}
	defer rows.Close()

	var out []*entity.ReportType
	for rows.Next() {
		var t entity.ReportType
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.Active); err != nil {
			return nil, fmt.Errorf("scan tipo de reporte: %w", err)
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}

// GetTypeByName obtiene un tipo de reporte por nombre; nil si no existe.
func (r *ReportRepo) GetTypeByName(name string) (*entity.ReportType, error) {
	var t entity.ReportType
	err := r.q.QueryRow(context.Background(),
		`SELECT idtipo_reporte, nombre, descripcion, activo FROM tipo_reporte WHERE nombre = $1`, name,
	).Scan(&t.ID, &t.Name, &t.Description, &t.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tipo de reporte: %w", err)
	}
	return &t, nil
}

// Create inserta la cabecera del reporte.
func (r *ReportRepo) Create(report *entity.Report) error {
	query := `
		INSERT INTO reporte (idreporte, tipo_reporte_id, usuario_id, nombre, descripcion,
		                     fecha_inicio, fecha_fin, estado, fecha_generacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		report.ID, report.TypeID, report.UserID, report.Name, report.Description,
		report.StartDate, report.EndDate, report.Status, report.GeneratedAt,
	)
	if err != nil {
		return fmt.Errorf("create reporte: %w", err)
	}
	return nil
}

// UpdateStatus cambia el estado del reporte (generando -> completado/error).
func (r *ReportRepo) UpdateStatus(id, status string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE reporte SET estado = $2 WHERE idreporte = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update estado reporte: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID obtiene la cabecera del reporte con su tipo; nil si no existe.
func (r *ReportRepo) GetByID(id string) (*entity.Report, error) {
	query := `
		SELECT r.idreporte, r.tipo_reporte_id, t.nombre, r.usuario_id, r.nombre, r.descripcion,
		       r.fecha_inicio, r.fecha_fin, r.estado, r.fecha_generacion
		FROM reporte r JOIN tipo_reporte t ON t.idtipo_reporte = r.tipo_reporte_id
		WHERE r.idreporte = $1`
	var rep entity.Report
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rep.ID, &rep.TypeID, &rep.TypeName, &rep.UserID, &rep.Name, &rep.Description,
		&rep.StartDate, &rep.EndDate, &rep.Status, &rep.GeneratedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reporte: %w", err)
	}
	return &rep, nil
}

// List reportes más recientes primero.
func (r *ReportRepo) List(limit, offset int) ([]*entity.Report, error) {
	query := `
		SELECT r.idreporte, r.tipo_reporte_id, t.nombre, r.usuario_id, r.nombre, r.descripcion,
		       r.fecha_inicio, r.fecha_fin, r.estado, r.fecha_generacion
		FROM reporte r JOIN tipo_reporte t ON t.idtipo_reporte = r.tipo_reporte_id
		ORDER BY r.fecha_generacion DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list reportes: %w", err)
	}
	defer rows.Close()

	var out []*entity.Report
	for rows.Next() {
		var rep entity.Report
		err := rows.Scan(&rep.ID, &rep.TypeID, &rep.TypeName, &rep.UserID, &rep.Name, &rep.Description,
			&rep.StartDate, &rep.EndDate, &rep.Status, &rep.GeneratedAt)
		if err != nil {
			return nil, fmt.Errorf("scan reporte: %w", err)
		}
		out = append(out, &rep)
	}
	return out, rows.Err()
}

// CreateDetails inserta las filas de detalle de un reporte.
func (r *ReportRepo) CreateDetails(details []*entity.ReportDetail) error {
	query := `
		INSERT INTO detalle_reporte (reporte_id, producto_id, nombre_producto, idcategoria,
		                             cantidad, precio_costo, precio_venta, valor_stock, estado_stock)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	for _, d := range details {
		err := r.q.QueryRow(context.Background(), query,
			d.ReportID, d.ProductID, d.ProductName, d.CategoryID,
			d.Quantity, d.UnitCost, d.SalePrice, d.StockValue, d.StockState,
		).Scan(&d.ID)
		if err != nil {
			return fmt.Errorf("create detalle reporte: %w", err)
		}
	}
	return nil
}

// ListDetails filas de detalle de un reporte, por nombre de producto.
func (r *ReportRepo) ListDetails(reportID string) ([]*entity.ReportDetail, error) {
	query := `
		SELECT id, reporte_id, producto_id, nombre_producto, idcategoria,
		       cantidad, precio_costo, precio_venta, valor_stock, estado_stock
		FROM detalle_reporte WHERE reporte_id = $1
		ORDER BY nombre_producto`
	rows, err := r.q.Query(context.Background(), query, reportID)
	if err != nil {
		return nil, fmt.Errorf("list detalles reporte: %w", err)
	}
	defer rows.Close()

	var out []*entity.ReportDetail
	for rows.Next() {
		var d entity.ReportDetail
		err := rows.Scan(&d.ID, &d.ReportID, &d.ProductID, &d.ProductName, &d.CategoryID,
			&d.Quantity, &d.UnitCost, &d.SalePrice, &d.StockValue, &d.StockState)
		if err != nil {
			return nil, fmt.Errorf("scan detalle reporte: %w", err)
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}
