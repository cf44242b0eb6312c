package postgres

import (
	"context"
	"fmt"

	"github.com/eco-stock/eco-stock-api/internal/domain/repository"
)

var _ repository.ReportingRepository = (*ReportingRepo)(nil)

// ReportingRepo consultas de solo lectura para el agregador de reportes.
// Los productos sin fila de inventario aparecen con cantidad cero
// (LEFT JOIN + COALESCE); los costos ausentes llegan en cero.
type ReportingRepo struct {
	q Querier
}

// NewReportingRepository construye el adaptador de reportes.
func NewReportingRepository(q Querier) *ReportingRepo {
	return &ReportingRepo{q: q}
}

const stockRowQuery = `
	SELECT p.idproducto, p.nombre, c.idcategoria, c.nombre,
	       COALESCE(i.cantidad_disponible, 0),
	       COALESCE(p.precio_costo, 0),
	       COALESCE(p.precio_venta, 0)
	FROM producto p
	JOIN categoria c ON c.idcategoria = p.idcategoria
	LEFT JOIN inventario i ON i.producto_id = p.idproducto`

// ListStockRows devuelve todos los productos con su stock y costos.
func (r *ReportingRepo) ListStockRows(ctx context.Context) ([]repository.StockRow, error) {
	return r.queryStockRows(ctx, stockRowQuery+` ORDER BY p.nombre`)
}

// ListStockRowsByCategory filtra por categoría (0 = todas).
func (r *ReportingRepo) ListStockRowsByCategory(ctx context.Context, categoryID int64) ([]repository.StockRow, error) {
	if categoryID == 0 {
		return r.ListStockRows(ctx)
	}
	return r.queryStockRows(ctx, stockRowQuery+` WHERE p.idcategoria = $1 ORDER BY p.nombre`, categoryID)
}

// RollupByCategory resume productos, unidades y valor de stock por categoría.
func (r *ReportingRepo) RollupByCategory(ctx context.Context) ([]repository.CategoryRollup, error) {
	query := `
		SELECT c.idcategoria, c.nombre,
		       COUNT(p.idproducto),
		       COALESCE(SUM(COALESCE(i.cantidad_disponible, 0)), 0),
		       COALESCE(SUM(COALESCE(i.cantidad_disponible, 0) * COALESCE(p.precio_costo, 0)), 0)
		FROM categoria c
		LEFT JOIN producto p ON p.idcategoria = c.idcategoria
		LEFT JOIN inventario i ON i.producto_id = p.idproducto
		GROUP BY c.idcategoria, c.nombre
		ORDER BY c.nombre`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("rollup por categoria: %w", err)
	}
	defer rows.Close()

	var out []repository.CategoryRollup
	for rows.Next() {
		var ru repository.CategoryRollup
		if err := rows.Scan(&ru.CategoryID, &ru.CategoryName, &ru.Products, &ru.Quantity, &ru.StockValue); err != nil {
			return nil, fmt.Errorf("scan rollup categoria: %w", err)
		}
		out = append(out, ru)
	}
	return out, rows.Err()
}

// RollupBySupplier resume productos, unidades y valor de stock por proveedor.
func (r *ReportingRepo) RollupBySupplier(ctx context.Context) ([]repository.SupplierRollup, error) {
	query := `
		SELECT pr.idproveedor, pr.nombre,
		       COUNT(pp.producto_id),
		       COALESCE(SUM(COALESCE(i.cantidad_disponible, 0)), 0),
		       COALESCE(SUM(COALESCE(i.cantidad_disponible, 0) * COALESCE(p.precio_costo, 0)), 0)
		FROM proveedor pr
		LEFT JOIN productos_proveedores pp ON pp.proveedor_id = pr.idproveedor
		LEFT JOIN producto p ON p.idproducto = pp.producto_id
		LEFT JOIN inventario i ON i.producto_id = p.idproducto
		GROUP BY pr.idproveedor, pr.nombre
		ORDER BY pr.nombre`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("rollup por proveedor: %w", err)
	}
	defer rows.Close()

	var out []repository.SupplierRollup
	for rows.Next() {
		var ru repository.SupplierRollup
		if err := rows.Scan(&ru.SupplierID, &ru.SupplierName, &ru.Products, &ru.Quantity, &ru.StockValue); err != nil {
			return nil, fmt.Errorf("scan rollup proveedor: %w", err)
		}
		out = append(out, ru)
	}
	return out, rows.Err()
}

// CountCategories cantidad total de categorías.
func (r *ReportingRepo) CountCategories(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM categoria`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count categorias: %w", err)
	}
	return n, nil
}

// CountSuppliers cantidad total de proveedores.
func (r *ReportingRepo) CountSuppliers(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM proveedor`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count proveedores: %w", err)
	}
	return n, nil
}

func (r *ReportingRepo) queryStockRows(ctx context.Context, query string, args ...any) ([]repository.StockRow, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock rows: %w", err)
	}
	defer rows.Close()

	var out []repository.StockRow
	for rows.Next() {
		var sr repository.StockRow
		err := rows.Scan(&sr.ProductID, &sr.ProductName, &sr.CategoryID, &sr.CategoryName,
			&sr.Quantity, &sr.UnitCost, &sr.SalePrice)
		if err != nil {
			return nil, fmt.Errorf("scan stock row: %w", err)
		}
		out = append(out, sr)
	}
	return out, rows.Err()
}
