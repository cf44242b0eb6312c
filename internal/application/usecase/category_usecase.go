package usecase

import (
	"github.com/eco-stock/eco-stock-api/internal/application/dto"
	"github.com/eco-stock/eco-stock-api/internal/domain"
	"github.com/eco-stock/eco-stock-api/internal/domain/entity"
	"github.com/eco-stock/eco-stock-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	category := &entity.Category{
		Name:        in.Name,
		Description: in.Description,
		Type:        in.Type,
		ShelfLife:   in.ShelfLife,
		Packaging:   in.Packaging,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// GetByID obtiene una categoría; nil si no existe.
func (uc *CategoryUseCase) GetByID(id int64) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil || category == nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// List lista categorías con paginación.
func (uc *CategoryUseCase) List(limit, offset int) ([]*dto.CategoryResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCategoryResponse(c))
	}
	return out, nil
}

// Update actualización parcial con campos permitidos explícitos.
func (uc *CategoryUseCase) Update(id int64, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		category.Name = *in.Name
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	if in.Type != nil {
		category.Type = *in.Type
	}
	if in.ShelfLife != nil {
		category.ShelfLife = *in.ShelfLife
	}
	if in.Packaging != nil {
		category.Packaging = *in.Packaging
	}
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Delete elimina una categoría; las filas dependientes caen por cascada en la DB.
func (uc *CategoryUseCase) Delete(id int64) error {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Type:        c.Type,
		ShelfLife:   c.ShelfLife,
		Packaging:   c.Packaging,
	}
}
