package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/eco-stock/eco-stock-api/internal/domain/entity"
	"github.com/eco-stock/eco-stock-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del log de movimientos sobre PostgreSQL.
// Append-only: solo inserta y lee; no hay UPDATE ni DELETE.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador de movimientos. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste el movimiento y sus detalles. Debe correr dentro de la
// misma transacción que la actualización de inventario.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movimiento_inventario (fecha_movimiento, tipo_movimiento, usuario_id, inventario_id)
		VALUES (now(), $1, $2, $3)
		RETURNING idmovimiento, fecha_movimiento`
	err := r.q.QueryRow(context.Background(), query,
		movement.Type, movement.UserID, movement.InventoryID,
	).Scan(&movement.ID, &movement.Date)
	if err != nil {
		return fmt.Errorf("create movimiento: %w", err)
	}

	for i := range movement.Details {
		d := &movement.Details[i]
		d.MovementID = movement.ID
		err := r.q.QueryRow(context.Background(),
			`INSERT INTO detalle_entrada_salida (movimiento_id, cantidad) VALUES ($1, $2) RETURNING id`,
			d.MovementID, d.Quantity,
		).Scan(&d.ID)
		if err != nil {
			return fmt.Errorf("create detalle movimiento: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un movimiento con sus detalles; nil si no existe.
func (r *MovementRepo) GetByID(id int64) (*entity.Movement, error) {
	query := `
		SELECT idmovimiento, fecha_movimiento, tipo_movimiento, usuario_id, inventario_id
		FROM movimiento_inventario WHERE idmovimiento = $1`
	var m entity.Movement
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.Date, &m.Type, &m.UserID, &m.InventoryID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimiento: %w", err)
	}
	if err := r.loadDetails(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

// ListByProduct historial de un producto, fecha descendente.
func (r *MovementRepo) ListByProduct(productID int64, limit, offset int) ([]*entity.Movement, error) {
	query := `
		SELECT m.idmovimiento, m.fecha_movimiento, m.tipo_movimiento, m.usuario_id, m.inventario_id
		FROM movimiento_inventario m
		JOIN inventario i ON i.idinventario = m.inventario_id
		WHERE i.producto_id = $1
		ORDER BY m.fecha_movimiento DESC
		LIMIT $2 OFFSET $3`
	return r.queryMovements(query, productID, limit, offset)
}

// ListByDateRange historial en [from, to], fecha descendente.
func (r *MovementRepo) ListByDateRange(from, to time.Time, limit, offset int) ([]*entity.Movement, error) {
	query := `
		SELECT idmovimiento, fecha_movimiento, tipo_movimiento, usuario_id, inventario_id
		FROM movimiento_inventario
		WHERE fecha_movimiento >= $1 AND fecha_movimiento <= $2
		ORDER BY fecha_movimiento DESC
		LIMIT $3 OFFSET $4`
	return r.queryMovements(query, from, to, limit, offset)
}

// ListByUser historial de un usuario, fecha descendente.
func (r *MovementRepo) ListByUser(userID int64, limit, offset int) ([]*entity.Movement, error) {
	query := `
		SELECT idmovimiento, fecha_movimiento, tipo_movimiento, usuario_id, inventario_id
		FROM movimiento_inventario
		WHERE usuario_id = $1
		ORDER BY fecha_movimiento DESC
		LIMIT $2 OFFSET $3`
	return r.queryMovements(query, userID, limit, offset)
}

func (r *MovementRepo) queryMovements(query string, args ...any) ([]*entity.Movement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()

	var out []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.Date, &m.Type, &m.UserID, &m.InventoryID); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		out = append(out, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, m := range out {
		if err := r.loadDetails(m); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *MovementRepo) loadDetails(m *entity.Movement) error {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, movimiento_id, cantidad FROM detalle_entrada_salida WHERE movimiento_id = $1 ORDER BY id`,
		m.ID,
	)
	if err != nil {
		return fmt.Errorf("list detalles movimiento: %w", err)
	}
	defer rows.Close()

	m.Details = m.Details[:0]
	for rows.Next() {
		var d entity.MovementDetail
		if err := rows.Scan(&d.ID, &d.MovementID, &d.Quantity); err != nil {
			return fmt.Errorf("scan detalle movimiento: %w", err)
		}
		m.Details = append(m.Details, d)
	}
	return rows.Err()
}
