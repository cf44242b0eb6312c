package repository

import "github.com/eco-stock/eco-stock-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	// Search busca por nombre, descripción o lote (ILIKE).
	Search(term string, limit, offset int) ([]*entity.Product, error)
	ListByCategory(categoryID int64) ([]*entity.Product, error)
	ListByLot(lot string) ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id int64) error
}

// ProductSupplierRepository define el puerto para la asociación producto-proveedor.
type ProductSupplierRepository interface {
	Assign(link *entity.ProductSupplier) error
	SuppliersForProduct(productID int64) ([]*entity.Supplier, error)
	ProductsForSupplier(supplierID int64) ([]*entity.Product, error)
	// Unassign elimina la asociación por par; devuelve ErrNotFound si no existe.
	Unassign(productID, supplierID int64) error
}
