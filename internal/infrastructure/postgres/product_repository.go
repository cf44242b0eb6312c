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

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `idproducto, nombre, descripcion, lote, idcategoria, unidad_medida_id, precio_costo, precio_venta`

// ProductRepo implementación de ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create inserta el producto y asigna el id generado.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO producto (nombre, descripcion, lote, idcategoria, unidad_medida_id, precio_costo, precio_venta)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING idproducto`
	err := r.q.QueryRow(context.Background(), query,
		product.Name, product.Description, product.Lot,
		product.CategoryID, product.UnitID, product.UnitCost, product.SalePrice,
	).Scan(&product.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por id; nil si no existe.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM producto WHERE idproducto = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return p, nil
}

// List lista productos ordenados por nombre.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM producto ORDER BY nombre LIMIT $1 OFFSET $2`
	return r.queryProducts(query, limit, offset)
}

// Search busca por nombre, descripción o lote (ILIKE).
func (r *ProductRepo) Search(term string, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM producto
		WHERE nombre ILIKE '%' || $1 || '%'
		   OR descripcion ILIKE '%' || $1 || '%'
		   OR lote ILIKE '%' || $1 || '%'
		ORDER BY nombre LIMIT $2 OFFSET $3`
	return r.queryProducts(query, term, limit, offset)
}

// ListByCategory lista productos de una categoría.
func (r *ProductRepo) ListByCategory(categoryID int64) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM producto WHERE idcategoria = $1 ORDER BY nombre`
	return r.queryProducts(query, categoryID)
}

// ListByLot lista productos de un lote exacto.
func (r *ProductRepo) ListByLot(lot string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM producto WHERE lote = $1 ORDER BY nombre`
	return r.queryProducts(query, lot)
}

// Update actualiza todos los campos editables del producto.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE producto
		SET nombre = $2, descripcion = $3, lote = $4, idcategoria = $5,
		    unidad_medida_id = $6, precio_costo = $7, precio_venta = $8
		WHERE idproducto = $1`
	tag, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Lot,
		product.CategoryID, product.UnitID, product.UnitCost, product.SalePrice,
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el producto; inventario, movimientos y vencimientos caen por cascada.
func (r *ProductRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM producto WHERE idproducto = $1`, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductRepo) queryProducts(query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
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

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Lot,
		&p.CategoryID, &p.UnitID, &p.UnitCost, &p.SalePrice,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
