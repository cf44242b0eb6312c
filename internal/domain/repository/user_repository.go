package repository

import "github.com/eco-stock/eco-stock-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	List(limit, offset int) ([]*entity.User, error)
	Update(user *entity.User) error
	Delete(id int64) error
}

// RoleRepository define el puerto de persistencia para Role.
type RoleRepository interface {
	Create(role *entity.Role) error
	GetByID(id int64) (*entity.Role, error)
	List() ([]*entity.Role, error)
	Update(role *entity.Role) error
	Delete(id int64) error
}
