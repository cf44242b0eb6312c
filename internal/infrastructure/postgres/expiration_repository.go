package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/eco-stock/eco-stock-api/internal/domain"
	"github.com/eco-stock/eco-stock-api/internal/domain/entity"
	"github.com/eco-stock/eco-stock-api/internal/domain/repository"
)

var _ repository.ExpirationRepository = (*ExpirationRepo)(nil)

// ExpirationRepo implementación de ExpirationRepository sobre PostgreSQL.
type ExpirationRepo struct {
	q Querier
}

// NewExpirationRepository construye el adaptador de vencimientos.
func NewExpirationRepository(q Querier) *ExpirationRepo {
	return &ExpirationRepo{q: q}
}

// Create inserta el vencimiento. ErrDuplicate si el par (producto, fecha) ya existe.
func (r *ExpirationRepo) Create(record *entity.ExpirationRecord) error {
	query := `
		INSERT INTO productos_vencimiento (producto_id, fecha_vencimiento, notificado)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		record.ProductID, record.ExpiresAt, record.Notified,
	).Scan(&record.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create vencimiento: %w", err)
	}
	return nil
}

// GetByID obtiene un vencimiento; nil si no existe.
func (r *ExpirationRepo) GetByID(id int64) (*entity.ExpirationRecord, error) {
	query := `
		SELECT id, producto_id, fecha_vencimiento, notificado
		FROM productos_vencimiento WHERE id = $1`
	var rec entity.ExpirationRecord
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rec.ID, &rec.ProductID, &rec.ExpiresAt, &rec.Notified,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vencimiento: %w", err)
	}
	return &rec, nil
}

// ListBetween vencimientos con fecha en [from, to], ascendente.
func (r *ExpirationRepo) ListBetween(from, to time.Time) ([]*entity.ExpirationRecord, error) {
	query := `
		SELECT id, producto_id, fecha_vencimiento, notificado
		FROM productos_vencimiento
		WHERE fecha_vencimiento >= $1 AND fecha_vencimiento <= $2
		ORDER BY fecha_vencimiento ASC`
	return r.queryRecords(query, from, to)
}

// ListExpiredBefore vencimientos con fecha anterior a before, ascendente.
func (r *ExpirationRepo) ListExpiredBefore(before time.Time) ([]*entity.ExpirationRecord, error) {
	query := `
		SELECT id, producto_id, fecha_vencimiento, notificado
		FROM productos_vencimiento
		WHERE fecha_vencimiento < $1
		ORDER BY fecha_vencimiento ASC`
	return r.queryRecords(query, before)
}

// ListUnnotified vencimientos pendientes de notificación, ascendente por fecha.
func (r *ExpirationRepo) ListUnnotified() ([]*entity.ExpirationRecord, error) {
	query := `
		SELECT id, producto_id, fecha_vencimiento, notificado
		FROM productos_vencimiento
		WHERE notificado = false
		ORDER BY fecha_vencimiento ASC`
	return r.queryRecords(query)
}

// MarkNotified fija notificado=true. Idempotente: no falla si ya estaba marcado.
func (r *ExpirationRepo) MarkNotified(id int64) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE productos_vencimiento SET notificado = true WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("marcar notificado: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ExpirationRepo) queryRecords(query string, args ...any) ([]*entity.ExpirationRecord, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list vencimientos: %w", err)
	}
	defer rows.Close()

	var out []*entity.ExpirationRecord
	for rows.Next() {
		var rec entity.ExpirationRecord
		if err := rows.Scan(&rec.ID, &rec.ProductID, &rec.ExpiresAt, &rec.Notified); err != nil {
			return nil, fmt.Errorf("scan vencimiento: %w", err)
		}
		out = append(out, &rec)
	}
	return out, rows.Err()
}
