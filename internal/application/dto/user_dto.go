package dto

// RegisterRequest body para POST /api/usuarios/register.
// El rol es opcional; por defecto se asigna el rol operario.
type RegisterRequest struct {
	Name     string `json:"nombre"`
	Email    string `json:"correo_electronico"`
	Password string `json:"contraseña"`
	RoleID   int64  `json:"idrol"`
}

// LoginRequest body para POST /api/usuarios/autenticar.
type LoginRequest struct {
	Email    string `json:"correo_electronico"`
	Password string `json:"contraseña"`
}

// RefreshRequest body para POST /api/usuarios/refresh.
type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

// UserResponse salida de un usuario (sin contraseña).
type UserResponse struct {
	ID     int64  `json:"idusuario"`
	Name   string `json:"nombre"`
	Email  string `json:"correo_electronico"`
	RoleID int64  `json:"idrol"`
	Role   string `json:"rol"`
}

// TokenPairResponse salida de register/autenticar/refresh: par de tokens + usuario.
type TokenPairResponse struct {
	Access  string       `json:"access"`
	Refresh string       `json:"refresh"`
	User    UserResponse `json:"user"`
}

// UpdateUserRequest actualización parcial de usuario (la contraseña se
// vuelve a hashear en el caso de uso si viene presente).
type UpdateUserRequest struct {
	Name     *string `json:"nombre"`
	Email    *string `json:"correo_electronico"`
	Password *string `json:"contraseña"`
	RoleID   *int64  `json:"idrol"`
}

// RoleRequest body para crear/actualizar un rol.
type RoleRequest struct {
	Name string `json:"nombre"`
}

// RoleResponse salida de un rol.
type RoleResponse struct {
	ID   int64  `json:"idrol"`
	Name string `json:"nombre"`
}
