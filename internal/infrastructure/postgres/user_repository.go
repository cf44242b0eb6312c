package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/eco-stock/eco-stock-api/internal/domain"
	"github.com/eco-stock/eco-stock-api/internal/domain/entity"
	"github.com/eco-stock/eco-stock-api/internal/domain/repository"
)

var (
	_ repository.UserRepository = (*UserRepo)(nil)
	_ repository.RoleRepository = (*RoleRepo)(nil)
)

const userColumns = `u.idusuario, u.nombre, u.correo_electronico, u.contrasena, u.idrol, r.nombre`

// UserRepo implementación de UserRepository sobre PostgreSQL.
// Siempre trae el nombre del rol denormalizado para respuestas y claims.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO usuario (nombre, correo_electronico, contrasena, idrol)
		VALUES ($1, $2, $3, $4)
		RETURNING idusuario`
	err := r.q.QueryRow(context.Background(), query,
		user.Name, user.Email, user.PasswordHash, user.RoleID,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("create usuario: %w", err)
	}
	return nil
}

func (r *UserRepo) GetByID(id int64) (*entity.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM usuario u JOIN rol r ON r.idrol = u.idrol
		WHERE u.idusuario = $1`
	return r.getOne(query, id)
}

func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM usuario u JOIN rol r ON r.idrol = u.idrol
		WHERE u.correo_electronico = $1`
	return r.getOne(query, email)
}

func (r *UserRepo) List(limit, offset int) ([]*entity.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM usuario u JOIN rol r ON r.idrol = u.idrol
		ORDER BY u.nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()

	var out []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.RoleID, &u.RoleName); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		out = append(out, &u)
	}
	return out, rows.Err()
}

func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE usuario
		SET nombre = $2, correo_electronico = $3, contrasena = $4, idrol = $5
		WHERE idusuario = $1`
	tag, err := r.q.Exec(context.Background(), query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.RoleID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update usuario: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM usuario WHERE idusuario = $1`, id)
	if err != nil {
		return fmt.Errorf("delete usuario: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepo) getOne(query string, arg any) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.RoleID, &u.RoleName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// RoleRepo implementación de RoleRepository sobre PostgreSQL.
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador de roles.
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

func (r *RoleRepo) Create(role *entity.Role) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO rol (nombre) VALUES ($1) RETURNING idrol`, role.Name,
	).Scan(&role.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create rol: %w", err)
	}
	return nil
}

func (r *RoleRepo) GetByID(id int64) (*entity.Role, error) {
	var role entity.Role
	err := r.q.QueryRow(context.Background(),
		`SELECT idrol, nombre FROM rol WHERE idrol = $1`, id,
	).Scan(&role.ID, &role.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rol: %w", err)
	}
	return &role, nil
}

func (r *RoleRepo) List() ([]*entity.Role, error) {
	rows, err := r.q.Query(context.Background(), `SELECT idrol, nombre FROM rol ORDER BY idrol`)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()

	var out []*entity.Role
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, fmt.Errorf("scan rol: %w", err)
		}
		out = append(out, &role)
	}
	return out, rows.Err()
}

func (r *RoleRepo) Update(role *entity.Role) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE rol SET nombre = $2 WHERE idrol = $1`, role.ID, role.Name)
	if err != nil {
		return fmt.Errorf("update rol: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *RoleRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM rol WHERE idrol = $1`, id)
	if err != nil {
		return fmt.Errorf("delete rol: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
