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

var _ repository.UnitRepository = (*UnitRepo)(nil)

// UnitRepo implementación de UnitRepository sobre PostgreSQL.
type UnitRepo struct {
	q Querier
}

// NewUnitRepository construye el adaptador de unidades de medida.
func NewUnitRepository(q Querier) *UnitRepo {
	return &UnitRepo{q: q}
}

func (r *UnitRepo) Create(unit *entity.UnitOfMeasure) error {
	query := `
		INSERT INTO unidades_medida (nombre, abreviatura)
		VALUES ($1, $2)
		RETURNING idunidad_medida`
	err := r.q.QueryRow(context.Background(), query, unit.Name, unit.Abbreviation).Scan(&unit.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create unidad de medida: %w", err)
	}
	return nil
}

func (r *UnitRepo) GetByID(id int64) (*entity.UnitOfMeasure, error) {
	query := `
		SELECT idunidad_medida, nombre, abreviatura
		FROM unidades_medida WHERE idunidad_medida = $1`
	var u entity.UnitOfMeasure
	err := r.q.QueryRow(context.Background(), query, id).Scan(&u.ID, &u.Name, &u.Abbreviation)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get unidad de medida: %w", err)
	}
	return &u, nil
}

func (r *UnitRepo) List(limit, offset int) ([]*entity.UnitOfMeasure, error) {
	query := `
		SELECT idunidad_medida, nombre, abreviatura
		FROM unidades_medida ORDER BY nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list unidades de medida: %w", err)
	}
	defer rows.Close()

	var out []*entity.UnitOfMeasure
	for rows.Next() {
		var u entity.UnitOfMeasure
		if err := rows.Scan(&u.ID, &u.Name, &u.Abbreviation); err != nil {
			return nil, fmt.Errorf("scan unidad de medida: %w", err)
		}
		out = append(out, &u)
	}
	return out, rows.Err()
}

func (r *UnitRepo) Update(unit *entity.UnitOfMeasure) error {
	query := `
		UPDATE unidades_medida SET nombre = $2, abreviatura = $3
		WHERE idunidad_medida = $1`
	tag, err := r.q.Exec(context.Background(), query, unit.ID, unit.Name, unit.Abbreviation)
	if err != nil {
		return fmt.Errorf("update unidad de medida: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *UnitRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM unidades_medida WHERE idunidad_medida = $1`, id)
	if err != nil {
		return fmt.Errorf("delete unidad de medida: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
