package usecase

import (
	"strings"

	"github.com/eco-stock/eco-stock-api/internal/application/dto"
	"github.com/eco-stock/eco-stock-api/internal/domain"
	"github.com/eco-stock/eco-stock-api/internal/domain/entity"
	"github.com/eco-stock/eco-stock-api/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD de proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create crea un proveedor activo.
func (uc *SupplierUseCase) Create(in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	supplier := &entity.Supplier{
		Type:    strings.TrimSpace(in.Type),
		Name:    strings.TrimSpace(in.Name),
		Address: strings.TrimSpace(in.Address),
		Email:   strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:   strings.TrimSpace(in.Phone),
		Active:  true,
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// GetByID obtiene un proveedor; nil si no existe.
func (uc *SupplierUseCase) GetByID(id int64) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil || supplier == nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// List lista proveedores con paginación.
func (uc *SupplierUseCase) List(limit, offset int) ([]*dto.SupplierResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toSupplierResponses(list), nil
}

// ListActive lista solo los proveedores con estado activo.
func (uc *SupplierUseCase) ListActive() ([]*dto.SupplierResponse, error) {
	list, err := uc.repo.ListActive()
	if err != nil {
		return nil, err
	}
	return toSupplierResponses(list), nil
}

// Update actualización parcial de proveedor.
func (uc *SupplierUseCase) Update(id int64, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	if in.Type != nil {
		supplier.Type = strings.TrimSpace(*in.Type)
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		supplier.Name = strings.TrimSpace(*in.Name)
	}
	if in.Address != nil {
		supplier.Address = strings.TrimSpace(*in.Address)
	}
	if in.Email != nil {
		supplier.Email = strings.ToLower(strings.TrimSpace(*in.Email))
	}
	if in.Phone != nil {
		supplier.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Active != nil {
		supplier.Active = *in.Active
	}
	if err := uc.repo.Update(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// Delete elimina un proveedor.
func (uc *SupplierUseCase) Delete(id int64) error {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:      s.ID,
		Type:    s.Type,
		Name:    s.Name,
		Address: s.Address,
		Email:   s.Email,
		Phone:   s.Phone,
		Active:  s.Active,
	}
}

func toSupplierResponses(list []*entity.Supplier) []*dto.SupplierResponse {
	out := make([]*dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSupplierResponse(s))
	}
	return out
}
