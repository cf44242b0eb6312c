package usecase

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/eco-stock/eco-stock-api/internal/application/dto"
	"github.com/eco-stock/eco-stock-api/internal/domain"
	"github.com/eco-stock/eco-stock-api/internal/domain/entity"
	"github.com/eco-stock/eco-stock-api/internal/domain/repository"
)

// UserUseCase administración de usuarios y roles. El registro y la
// autenticación viven en el caso de uso de auth; aquí solo gestión.
type UserUseCase struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository, roleRepo repository.RoleRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, roleRepo: roleRepo}
}

// GetByID obtiene un usuario; nil si no existe. Nunca expone el hash.
func (uc *UserUseCase) GetByID(id int64) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil || user == nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// List lista usuarios con paginación.
func (uc *UserUseCase) List(limit, offset int) ([]*dto.UserResponse, error) {
	list, err := uc.userRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

// Update actualización parcial. Si viene contraseña se vuelve a hashear.
func (uc *UserUseCase) Update(id int64, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		user.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*in.Email))
		if email == "" {
			return nil, domain.ErrInvalidInput
		}
		if email != user.Email {
			existing, err := uc.userRepo.FindByEmail(email)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, domain.ErrEmailAlreadyExists
			}
		}
		user.Email = email
	}
	if in.Password != nil {
		if *in.Password == "" {
			return nil, domain.ErrInvalidInput
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if in.RoleID != nil {
		role, err := uc.roleRepo.GetByID(*in.RoleID)
		if err != nil {
			return nil, err
		}
		if role == nil {
			return nil, domain.ErrNotFound
		}
		user.RoleID = role.ID
		user.RoleName = role.Name
	}
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Delete elimina un usuario.
func (uc *UserUseCase) Delete(id int64) error {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.userRepo.Delete(id)
}

// CreateRole crea un rol.
func (uc *UserUseCase) CreateRole(in dto.RoleRequest) (*dto.RoleResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	role := &entity.Role{Name: strings.TrimSpace(in.Name)}
	if err := uc.roleRepo.Create(role); err != nil {
		return nil, err
	}
	return &dto.RoleResponse{ID: role.ID, Name: role.Name}, nil
}

// GetRole obtiene un rol; nil si no existe.
func (uc *UserUseCase) GetRole(id int64) (*dto.RoleResponse, error) {
	role, err := uc.roleRepo.GetByID(id)
	if err != nil || role == nil {
		return nil, err
	}
	return &dto.RoleResponse{ID: role.ID, Name: role.Name}, nil
}

// ListRoles lista todos los roles.
func (uc *UserUseCase) ListRoles() ([]*dto.RoleResponse, error) {
	roles, err := uc.roleRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.RoleResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, &dto.RoleResponse{ID: r.ID, Name: r.Name})
	}
	return out, nil
}

// UpdateRole renombra un rol.
func (uc *UserUseCase) UpdateRole(id int64, in dto.RoleRequest) (*dto.RoleResponse, error) {
	role, err := uc.roleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrNotFound
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	role.Name = strings.TrimSpace(in.Name)
	if err := uc.roleRepo.Update(role); err != nil {
		return nil, err
	}
	return &dto.RoleResponse{ID: role.ID, Name: role.Name}, nil
}

// DeleteRole elimina un rol.
func (uc *UserUseCase) DeleteRole(id int64) error {
	role, err := uc.roleRepo.GetByID(id)
	if err != nil {
		return err
	}
	if role == nil {
		return domain.ErrNotFound
	}
	return uc.roleRepo.Delete(id)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		RoleID: u.RoleID,
		Role:   u.RoleName,
	}
}
