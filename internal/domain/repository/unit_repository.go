package repository

import "github.com/eco-stock/eco-stock-api/internal/domain/entity"

// UnitRepository define el puerto de persistencia para UnitOfMeasure.
type UnitRepository interface {
	Create(unit *entity.UnitOfMeasure) error
	GetByID(id int64) (*entity.UnitOfMeasure, error)
	List(limit, offset int) ([]*entity.UnitOfMeasure, error)
	Update(unit *entity.UnitOfMeasure) error
	Delete(id int64) error
}
