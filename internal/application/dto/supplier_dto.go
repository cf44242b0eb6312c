package dto

// CreateSupplierRequest body para crear un proveedor.
type CreateSupplierRequest struct {
	Type    string `json:"tipo"`
	Name    string `json:"nombre"`
	Address string `json:"direccion"`
	Email   string `json:"correo"`
	Phone   string `json:"telefono"`
}

// UpdateSupplierRequest actualización parcial de proveedor.
type UpdateSupplierRequest struct {
	Type    *string `json:"tipo"`
	Name    *string `json:"nombre"`
	Address *string `json:"direccion"`
	Email   *string `json:"correo"`
	Phone   *string `json:"telefono"`
	Active  *bool   `json:"estado"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID      int64  `json:"idproveedor"`
	Type    string `json:"tipo"`
	Name    string `json:"nombre"`
	Address string `json:"direccion"`
	Email   string `json:"correo"`
	Phone   string `json:"telefono"`
	Active  bool   `json:"estado"`
}
