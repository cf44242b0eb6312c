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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación de CategoryRepository sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de categorías. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create inserta la categoría y asigna el id generado.
func (r *CategoryRepo) Create(category *entity.Category) error {
	query := `
		INSERT INTO categoria (nombre, descripcion, tipo, vida_util, presentacion)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING idcategoria`
	err := r.q.QueryRow(context.Background(), query,
		category.Name, category.Description, category.Type, category.ShelfLife, category.Packaging,
	).Scan(&category.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create categoria: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por id; nil si no existe.
func (r *CategoryRepo) GetByID(id int64) (*entity.Category, error) {
	query := `
		SELECT idcategoria, nombre, descripcion, tipo, vida_util, presentacion
		FROM categoria WHERE idcategoria = $1`
	var c entity.Category
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.Description, &c.Type, &c.ShelfLife, &c.Packaging,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoria: %w", err)
	}
	return &c, nil
}

// List lista categorías ordenadas por nombre.
func (r *CategoryRepo) List(limit, offset int) ([]*entity.Category, error) {
	query := `
		SELECT idcategoria, nombre, descripcion, tipo, vida_util, presentacion
		FROM categoria ORDER BY nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()

	var out []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Type, &c.ShelfLife, &c.Packaging); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// Update actualiza todos los campos editables de la categoría.
func (r *CategoryRepo) Update(category *entity.Category) error {
	query := `
		UPDATE categoria
		SET nombre = $2, descripcion = $3, tipo = $4, vida_util = $5, presentacion = $6
		WHERE idcategoria = $1`
	tag, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.Description, category.Type, category.ShelfLife, category.Packaging,
	)
	if err != nil {
		return fmt.Errorf("update categoria: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la categoría.
func (r *CategoryRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM categoria WHERE idcategoria = $1`, id)
	if err != nil {
		return fmt.Errorf("delete categoria: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
