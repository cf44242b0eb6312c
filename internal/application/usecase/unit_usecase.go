package usecase

import (
	"github.com/eco-stock/eco-stock-api/internal/application/dto"
	"github.com/eco-stock/eco-stock-api/internal/domain"
	"github.com/eco-stock/eco-stock-api/internal/domain/entity"
	"github.com/eco-stock/eco-stock-api/internal/domain/repository"
)

// UnitUseCase casos de uso CRUD para unidades de medida.
type UnitUseCase struct {
	repo repository.UnitRepository
}

// NewUnitUseCase construye el caso de uso.
func NewUnitUseCase(repo repository.UnitRepository) *UnitUseCase {
	return &UnitUseCase{repo: repo}
}

// Create crea una unidad de medida.
func (uc *UnitUseCase) Create(in dto.CreateUnitRequest) (*dto.UnitResponse, error) {
	if in.Name == "" || in.Abbreviation == "" {
		return nil, domain.ErrInvalidInput
	}
	unit := &entity.UnitOfMeasure{Name: in.Name, Abbreviation: in.Abbreviation}
	if err := uc.repo.Create(unit); err != nil {
		return nil, err
	}
	return toUnitResponse(unit), nil
}

// GetByID obtiene una unidad; nil si no existe.
func (uc *UnitUseCase) GetByID(id int64) (*dto.UnitResponse, error) {
	unit, err := uc.repo.GetByID(id)
	if err != nil || unit == nil {
		return nil, err
	}
	return toUnitResponse(unit), nil
}

// List lista unidades con paginación.
func (uc *UnitUseCase) List(limit, offset int) ([]*dto.UnitResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UnitResponse, 0, len(list))
	for _, u := range list {
		out = append(out, toUnitResponse(u))
	}
	return out, nil
}

// Update actualización parcial.
func (uc *UnitUseCase) Update(id int64, in dto.UpdateUnitRequest) (*dto.UnitResponse, error) {
	unit, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		unit.Name = *in.Name
	}
	if in.Abbreviation != nil {
		unit.Abbreviation = *in.Abbreviation
	}
	if err := uc.repo.Update(unit); err != nil {
		return nil, err
	}
	return toUnitResponse(unit), nil
}

// Delete elimina una unidad de medida.
func (uc *UnitUseCase) Delete(id int64) error {
	unit, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if unit == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toUnitResponse(u *entity.UnitOfMeasure) *dto.UnitResponse {
	return &dto.UnitResponse{ID: u.ID, Name: u.Name, Abbreviation: u.Abbreviation}
}
