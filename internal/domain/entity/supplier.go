package entity

// Supplier representa un proveedor de productos.
type Supplier struct {
	ID      int64
	Type    string
	Name    string
	Address string
	Email   string
	Phone   string
	Active  bool
}
