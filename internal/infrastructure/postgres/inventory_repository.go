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

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

const inventoryColumns = `idinventario, producto_id, cantidad_disponible, fecha_actualizacion, estado`

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL
// (usable con pool o tx). Las mutaciones deben correr dentro de una tx
// iniciada por el TxRunner.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de inventario. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// GetByProduct devuelve la fila de inventario de un producto; nil si no tiene.
func (r *InventoryRepo) GetByProduct(productID int64) (*entity.InventoryRecord, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventario WHERE producto_id = $1`
	return r.getOne(query, productID)
}

// GetByID devuelve la fila de inventario por id; nil si no existe.
func (r *InventoryRepo) GetByID(id int64) (*entity.InventoryRecord, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventario WHERE idinventario = $1`
	return r.getOne(query, id)
}

// GetForUpdate bloquea la fila del producto para update (SELECT FOR UPDATE); nil si no existe.
func (r *InventoryRepo) GetForUpdate(productID int64) (*entity.InventoryRecord, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventario WHERE producto_id = $1 FOR UPDATE`
	return r.getOne(query, productID)
}

// GetByIDForUpdate bloquea la fila por id de registro; nil si no existe.
func (r *InventoryRepo) GetByIDForUpdate(id int64) (*entity.InventoryRecord, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventario WHERE idinventario = $1 FOR UPDATE`
	return r.getOne(query, id)
}

// Create crea la fila de inventario (primer movimiento de un producto).
// ON CONFLICT DO NOTHING: si otra transacción creó la fila primero devuelve
// ErrDuplicate sin abortar la transacción en curso, para que el llamador
// pueda releer la fila con FOR UPDATE.
func (r *InventoryRepo) Create(record *entity.InventoryRecord) error {
	query := `
		INSERT INTO inventario (producto_id, cantidad_disponible, fecha_actualizacion, estado)
		VALUES ($1, $2, now(), $3)
		ON CONFLICT (producto_id) DO NOTHING
		RETURNING idinventario, fecha_actualizacion`
	err := r.q.QueryRow(context.Background(), query,
		record.ProductID, record.Quantity, record.Status,
	).Scan(&record.ID, &record.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create inventario: %w", err)
	}
	return nil
}

// UpdateQuantity fija la cantidad y refresca la fecha de actualización.
func (r *InventoryRepo) UpdateQuantity(record *entity.InventoryRecord) error {
	query := `
		UPDATE inventario
		SET cantidad_disponible = $2, fecha_actualizacion = now()
		WHERE idinventario = $1
		RETURNING fecha_actualizacion`
	err := r.q.QueryRow(context.Background(), query, record.ID, record.Quantity).Scan(&record.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update cantidad inventario: %w", err)
	}
	return nil
}

// ListLowStock lista filas con cantidad menor o igual al umbral, incluidas las agotadas.
func (r *InventoryRepo) ListLowStock(threshold int64) ([]*entity.InventoryRecord, error) {
	query := `
		SELECT ` + inventoryColumns + `
		FROM inventario WHERE cantidad_disponible <= $1
		ORDER BY cantidad_disponible ASC`
	return r.queryRecords(query, threshold)
}

// ListOutOfStock lista filas con cantidad cero.
func (r *InventoryRepo) ListOutOfStock() ([]*entity.InventoryRecord, error) {
	query := `
		SELECT ` + inventoryColumns + `
		FROM inventario WHERE cantidad_disponible = 0
		ORDER BY producto_id`
	return r.queryRecords(query)
}

// List lista el inventario completo paginado.
func (r *InventoryRepo) List(limit, offset int) ([]*entity.InventoryRecord, error) {
	query := `
		SELECT ` + inventoryColumns + `
		FROM inventario ORDER BY producto_id LIMIT $1 OFFSET $2`
	return r.queryRecords(query, limit, offset)
}

func (r *InventoryRepo) getOne(query string, arg any) (*entity.InventoryRecord, error) {
	var rec entity.InventoryRecord
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&rec.ID, &rec.ProductID, &rec.Quantity, &rec.UpdatedAt, &rec.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventario: %w", err)
	}
	return &rec, nil
}

func (r *InventoryRepo) queryRecords(query string, args ...any) ([]*entity.InventoryRecord, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventario: %w", err)
	}
	defer rows.Close()

	var out []*entity.InventoryRecord
	for rows.Next() {
		var rec entity.InventoryRecord
		if err := rows.Scan(&rec.ID, &rec.ProductID, &rec.Quantity, &rec.UpdatedAt, &rec.Status); err != nil {
			return nil, fmt.Errorf("scan inventario: %w", err)
		}
		out = append(out, &rec)
	}
	return out, rows.Err()
}
