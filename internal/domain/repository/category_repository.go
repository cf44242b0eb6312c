package repository

import "github.com/eco-stock/eco-stock-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id int64) (*entity.Category, error)
	List(limit, offset int) ([]*entity.Category, error)
	Update(category *entity.Category) error
	Delete(id int64) error
}
