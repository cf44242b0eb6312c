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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación de SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de proveedores.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO proveedor (tipo, nombre, direccion, correo, telefono, estado)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING idproveedor`
	err := r.q.QueryRow(context.Background(), query,
		supplier.Type, supplier.Name, supplier.Address, supplier.Email, supplier.Phone, supplier.Active,
	).Scan(&supplier.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create proveedor: %w", err)
	}
	return nil
}

func (r *SupplierRepo) GetByID(id int64) (*entity.Supplier, error) {
	query := `
		SELECT idproveedor, tipo, nombre, direccion, correo, telefono, estado
		FROM proveedor WHERE idproveedor = $1`
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Type, &s.Name, &s.Address, &s.Email, &s.Phone, &s.Active,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proveedor: %w", err)
	}
	return &s, nil
}

func (r *SupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) {
	query := `
		SELECT idproveedor, tipo, nombre, direccion, correo, telefono, estado
		FROM proveedor ORDER BY nombre LIMIT $1 OFFSET $2`
	return r.querySuppliers(query, limit, offset)
}

// ListActive lista solo los proveedores con estado activo.
func (r *SupplierRepo) ListActive() ([]*entity.Supplier, error) {
	query := `
		SELECT idproveedor, tipo, nombre, direccion, correo, telefono, estado
		FROM proveedor WHERE estado = true ORDER BY nombre`
	return r.querySuppliers(query)
}

func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	query := `
		UPDATE proveedor
		SET tipo = $2, nombre = $3, direccion = $4, correo = $5, telefono = $6, estado = $7
		WHERE idproveedor = $1`
	tag, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.Type, supplier.Name, supplier.Address, supplier.Email, supplier.Phone, supplier.Active,
	)
	if err != nil {
		return fmt.Errorf("update proveedor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SupplierRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM proveedor WHERE idproveedor = $1`, id)
	if err != nil {
		return fmt.Errorf("delete proveedor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SupplierRepo) querySuppliers(query string, args ...any) ([]*entity.Supplier, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list proveedores: %w", err)
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
