package repository

import "github.com/eco-stock/eco-stock-api/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id int64) (*entity.Supplier, error)
	List(limit, offset int) ([]*entity.Supplier, error)
	ListActive() ([]*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	Delete(id int64) error
}
