package entity

// UnitOfMeasure representa una unidad de medida (kilogramo, litro, unidad...).
type UnitOfMeasure struct {
	ID           int64
	Name         string
	Abbreviation string
}
