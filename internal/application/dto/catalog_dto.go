package dto

// CreateCategoryRequest body para crear una categoría.
type CreateCategoryRequest struct {
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
	Type        string `json:"tipo"`
	ShelfLife   string `json:"vida_util"`
	Packaging   string `json:"presentacion"`
}

// UpdateCategoryRequest actualización parcial con campos permitidos explícitos.
type UpdateCategoryRequest struct {
	Name        *string `json:"nombre"`
	Description *string `json:"descripcion"`
	Type        *string `json:"tipo"`
	ShelfLife   *string `json:"vida_util"`
	Packaging   *string `json:"presentacion"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          int64  `json:"idcategoria"`
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
	Type        string `json:"tipo"`
	ShelfLife   string `json:"vida_util"`
	Packaging   string `json:"presentacion"`
}

// CreateUnitRequest body para crear una unidad de medida.
type CreateUnitRequest struct {
	Name         string `json:"nombre"`
	Abbreviation string `json:"abreviatura"`
}

// UpdateUnitRequest actualización parcial de unidad de medida.
type UpdateUnitRequest struct {
	Name         *string `json:"nombre"`
	Abbreviation *string `json:"abreviatura"`
}

// UnitResponse salida de una unidad de medida.
type UnitResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"nombre"`
	Abbreviation string `json:"abreviatura"`
}
