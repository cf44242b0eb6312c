package usecase

import (
	"strings"

	"github.com/eco-stock/eco-stock-api/internal/application/dto"
	"github.com/eco-stock/eco-stock-api/internal/domain"
	"github.com/eco-stock/eco-stock-api/internal/domain/entity"
	"github.com/eco-stock/eco-stock-api/internal/domain/repository"
)

// Estados de disponibilidad para el dashboard de productos.
const (
	availabilityOK       = "Disponible"
	availabilityLow      = "Bajo stock"
	availabilityDepleted = "Agotado"

	dashboardLowStock = 10 // unidades
)

// ProductUseCase casos de uso CRUD y consultas de productos.
// El stock no se modifica por aquí: se maneja vía movimientos.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	unitRepo     repository.UnitRepository
	invRepo      repository.InventoryRepository
	linkRepo     repository.ProductSupplierRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	unitRepo repository.UnitRepository,
	invRepo repository.InventoryRepository,
	linkRepo repository.ProductSupplierRepository,
) *ProductUseCase {
	return &ProductUseCase{
		repo:         repo,
		categoryRepo: categoryRepo,
		unitRepo:     unitRepo,
		invRepo:      invRepo,
		linkRepo:     linkRepo,
	}
}

// Create crea un producto. La categoría y la unidad referenciadas deben existir.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := validateProductFields(in.Name, in.Description, in.Lot); err != nil {
		return nil, err
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	unit, err := uc.unitRepo.GetByID(in.UnitID)
	if err != nil {
		return nil, err
	}
	if category == nil || unit == nil {
		return nil, domain.ErrNotFound
	}
	product := &entity.Product{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Lot:         strings.TrimSpace(in.Lot),
		CategoryID:  in.CategoryID,
		UnitID:      in.UnitID,
		UnitCost:    in.UnitCost,
		SalePrice:   in.SalePrice,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto; nil si no existe.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil || product == nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toProductListResponse(list), nil
}

// Search busca por nombre, descripción o lote.
func (uc *ProductUseCase) Search(term string, limit, offset int) (*dto.ProductListResponse, error) {
	if strings.TrimSpace(term) == "" {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.Search(term, limit, offset)
	if err != nil {
		return nil, err
	}
	return toProductListResponse(list), nil
}

// ListByCategory lista productos de una categoría.
func (uc *ProductUseCase) ListByCategory(categoryID int64) (*dto.ProductListResponse, error) {
	if categoryID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.ListByCategory(categoryID)
	if err != nil {
		return nil, err
	}
	return toProductListResponse(list), nil
}

// ListByLot lista productos de un lote.
func (uc *ProductUseCase) ListByLot(lot string) (*dto.ProductListResponse, error) {
	if strings.TrimSpace(lot) == "" {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.ListByLot(lot)
	if err != nil {
		return nil, err
	}
	return toProductListResponse(list), nil
}

// Dashboard lista productos con su stock y estado reales, calculados del
// inventario almacenado.
func (uc *ProductUseCase) Dashboard(limit, offset int) (*dto.DashboardListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.DashboardListResponse{Results: make([]dto.ProductDashboardResponse, 0, len(list))}
	for _, p := range list {
		record, err := uc.invRepo.GetByProduct(p.ID)
		if err != nil {
			return nil, err
		}
		var stock int64
		if record != nil {
			stock = record.Quantity
		}
		out.Results = append(out.Results, dto.ProductDashboardResponse{
			ProductResponse: *toProductResponse(p),
			Stock:           stock,
			Status:          availability(stock),
		})
	}
	out.Count = len(out.Results)
	return out, nil
}

// Update actualización parcial con campos permitidos explícitos.
func (uc *ProductUseCase) Update(id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		product.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		product.Description = strings.TrimSpace(*in.Description)
	}
	if in.Lot != nil {
		product.Lot = strings.TrimSpace(*in.Lot)
	}
	if in.CategoryID != nil {
		category, err := uc.categoryRepo.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
		product.CategoryID = *in.CategoryID
	}
	if in.UnitID != nil {
		unit, err := uc.unitRepo.GetByID(*in.UnitID)
		if err != nil {
			return nil, err
		}
		if unit == nil {
			return nil, domain.ErrNotFound
		}
		product.UnitID = *in.UnitID
	}
	if in.UnitCost != nil {
		product.UnitCost = *in.UnitCost
	}
	if in.SalePrice != nil {
		product.SalePrice = *in.SalePrice
	}
	if err := validateProductFields(product.Name, product.Description, product.Lot); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto; inventario, movimientos y vencimientos caen por cascada.
func (uc *ProductUseCase) Delete(id int64) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// AssignSupplier asocia un proveedor con un producto (único por par).
func (uc *ProductUseCase) AssignSupplier(in dto.AssignSupplierRequest) error {
	if in.ProductID <= 0 || in.SupplierID <= 0 {
		return domain.ErrInvalidInput
	}
	return uc.linkRepo.Assign(&entity.ProductSupplier{ProductID: in.ProductID, SupplierID: in.SupplierID})
}

// SuppliersForProduct lista los proveedores asociados a un producto.
func (uc *ProductUseCase) SuppliersForProduct(productID int64) ([]*dto.SupplierResponse, error) {
	if productID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	suppliers, err := uc.linkRepo.SuppliersForProduct(productID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, toSupplierResponse(s))
	}
	return out, nil
}

// ProductsForSupplier lista los productos asociados a un proveedor.
func (uc *ProductUseCase) ProductsForSupplier(supplierID int64) (*dto.ProductListResponse, error) {
	if supplierID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.linkRepo.ProductsForSupplier(supplierID)
	if err != nil {
		return nil, err
	}
	return toProductListResponse(list), nil
}

// UnassignSupplier elimina la asociación producto-proveedor por par.
func (uc *ProductUseCase) UnassignSupplier(productID, supplierID int64) error {
	if productID <= 0 || supplierID <= 0 {
		return domain.ErrInvalidInput
	}
	return uc.linkRepo.Unassign(productID, supplierID)
}

// validateProductFields reglas mínimas heredadas del catálogo: nombre >= 2,
// descripción >= 5, lote obligatorio.
func validateProductFields(name, description, lot string) error {
	if len(strings.TrimSpace(name)) < 2 ||
		len(strings.TrimSpace(description)) < 5 ||
		strings.TrimSpace(lot) == "" {
		return domain.ErrInvalidInput
	}
	return nil
}

func availability(stock int64) string {
	switch {
	case stock == 0:
		return availabilityDepleted
	case stock <= dashboardLowStock:
		return availabilityLow
	default:
		return availabilityOK
	}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Lot:         p.Lot,
		CategoryID:  p.CategoryID,
		UnitID:      p.UnitID,
		UnitCost:    p.UnitCost,
		SalePrice:   p.SalePrice,
	}
}

func toProductListResponse(list []*entity.Product) *dto.ProductListResponse {
	out := &dto.ProductListResponse{Results: make([]dto.ProductResponse, 0, len(list))}
	for _, p := range list {
		out.Results = append(out.Results, *toProductResponse(p))
	}
	out.Count = len(out.Results)
	return out
}
