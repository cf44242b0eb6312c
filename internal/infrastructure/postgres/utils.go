package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Código SQLSTATE de violación de constraint único.
const uniqueViolationCode = "23505"

// isUniqueViolation reporta si err es una violación de unicidad de PostgreSQL.
// Los repositorios lo traducen a los sentinelas de duplicado del dominio.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
