package entity

// Category representa una categoría de productos.
type Category struct {
	ID          int64
	Name        string
	Description string
	Type        string // perecedero, no perecedero, insumo...
	ShelfLife   string // vida útil descriptiva ("6 meses", "2 años")
	Packaging   string // presentación ("caja x 12", "bolsa 500g")
}
