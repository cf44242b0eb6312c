package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/eco-stock/eco-stock-api/internal/application/dto"
	"github.com/eco-stock/eco-stock-api/internal/domain"
	"github.com/eco-stock/eco-stock-api/internal/domain/entity"
	"github.com/eco-stock/eco-stock-api/internal/domain/repository"
	"github.com/eco-stock/eco-stock-api/pkg/jwt"
)

// JWTConfig configuración para emisión de tokens.
type JWTConfig struct {
	Secret         string
	AccessMinutes  int
	RefreshMinutes int
	Issuer         string
}

// UseCase casos de uso de autenticación: registro, login y refresh.
// La emisión de tokens es un servicio de firma sin estado; no hay sesión
// en memoria del proceso.
type UseCase struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
	jwtCfg   JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository, roleRepo repository.RoleRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, roleRepo: roleRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario: hashea la contraseña con bcrypt, asigna rol por
// defecto si no viene, persiste y devuelve el par de tokens.
// Devuelve ErrEmailAlreadyExists si el correo ya está registrado.
func (uc *UseCase) Register(in dto.RegisterRequest) (*dto.TokenPairResponse, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" || in.Password == "" || strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	roleID := in.RoleID
	roleName := entity.RoleOperario
	if roleID != 0 {
		role, err := uc.roleRepo.GetByID(roleID)
		if err != nil {
			return nil, err
		}
		if role == nil {
			return nil, domain.ErrNotFound
		}
		roleName = role.Name
	} else {
		roles, err := uc.roleRepo.List()
		if err != nil {
			return nil, err
		}
		for _, r := range roles {
			if r.Name == entity.RoleOperario {
				roleID = r.ID
				break
			}
		}
		if roleID == 0 {
			return nil, domain.ErrNotFound // rol por defecto no provisionado
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: string(hash),
		RoleID:       roleID,
		RoleName:     roleName,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return uc.tokenPair(user)
}

// Authenticate verifica email/contraseña y devuelve el par de tokens + usuario.
func (uc *UseCase) Authenticate(in dto.LoginRequest) (*dto.TokenPairResponse, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.tokenPair(user)
}

// Refresh valida un refresh token y emite un nuevo par de tokens.
func (uc *UseCase) Refresh(refreshToken string) (*dto.TokenPairResponse, error) {
	claims, err := jwt.ParseRefresh(uc.jwtCfg.Secret, refreshToken)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByID(claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return uc.tokenPair(user)
}

func (uc *UseCase) tokenPair(user *entity.User) (*dto.TokenPairResponse, error) {
	access, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.RoleName, jwt.TokenAccess, uc.jwtCfg.Issuer, uc.jwtCfg.AccessMinutes)
	if err != nil {
		return nil, err
	}
	refresh, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.RoleName, jwt.TokenRefresh, uc.jwtCfg.Issuer, uc.jwtCfg.RefreshMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.TokenPairResponse{
		Access:  access,
		Refresh: refresh,
		User: dto.UserResponse{
			ID:     user.ID,
			Name:   user.Name,
			Email:  user.Email,
			RoleID: user.RoleID,
			Role:   user.RoleName,
		},
	}, nil
}
