package postgres

import (
	"context"
	"fmt"

	"github.com/eco-stock/eco-stock-api/internal/domain"
	"github.com/eco-stock/eco-stock-api/internal/domain/entity"
	"github.com/eco-stock/eco-stock-api/internal/domain/repository"
)

var _ repository.ProductSupplierRepository = (*ProductSupplierRepo)(nil)

// ProductSupplierRepo implementación de la asociación producto-proveedor.
type ProductSupplierRepo struct {
	q Querier
}

// NewProductSupplierRepository construye el adaptador de asociaciones.
func NewProductSupplierRepository(q Querier) *ProductSupplierRepo {
	return &ProductSupplierRepo{q: q}
}

// Assign asocia un proveedor con un producto. ErrDuplicate si el par ya existe.
func (r *ProductSupplierRepo) Assign(link *entity.ProductSupplier) error {
	query := `
		INSERT INTO productos_proveedores (producto_id, proveedor_id)
		VALUES ($1, $2)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query, link.ProductID, link.SupplierID).Scan(&link.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("assign producto-proveedor: %w", err)
	}
	return nil
}

// SuppliersForProduct lista los proveedores asociados a un producto.
func (r *ProductSupplierRepo) SuppliersForProduct(productID int64) ([]*entity.Supplier, error) {
	query := `
		SELECT p.idproveedor, p.tipo, p.nombre, p.direccion, p.correo, p.telefono, p.estado
		FROM proveedor p
		JOIN productos_proveedores pp ON pp.proveedor_id = p.idproveedor
		WHERE pp.producto_id = $1
		ORDER BY p.nombre`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("proveedores por producto: %w", err)
	}
	defer rows.Close()

	var out []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Type, &s.Name, &s.Address, &s.Email, &s.Phone, &s.Active); err != nil {
			return nil, fmt.Errorf("scan proveedor: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

// ProductsForSupplier lista los productos asociados a un proveedor.
func (r *ProductSupplierRepo) ProductsForSupplier(supplierID int64) ([]*entity.Product, error) {
	query := `
		SELECT p.idproducto, p.nombre, p.descripcion, p.lote, p.idcategoria,
		       p.unidad_medida_id, p.precio_costo, p.precio_venta
		FROM producto p
		JOIN productos_proveedores pp ON pp.producto_id = p.idproducto
		WHERE pp.proveedor_id = $1
		ORDER BY p.nombre`
	rows, err := r.q.Query(context.Background(), query, supplierID)
	if err != nil {
		return nil, fmt.Errorf("productos por proveedor: %w", err)
	}
	defer rows.Close()

	var out []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Unassign elimina la asociación por par; ErrNotFound si no existe.
func (r *ProductSupplierRepo) Unassign(productID, supplierID int64) error {
	query := `DELETE FROM productos_proveedores WHERE producto_id = $1 AND proveedor_id = $2`
	tag, err := r.q.Exec(context.Background(), query, productID, supplierID)
	if err != nil {
		return fmt.Errorf("unassign producto-proveedor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
