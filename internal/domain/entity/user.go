package entity

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleOperario = "operario"
)

// Role representa un rol de usuario.
type Role struct {
	ID   int64
	Name string
}

// User representa un usuario del sistema.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	RoleID       int64
	RoleName     string // denormalizado para respuestas y claims JWT
}
