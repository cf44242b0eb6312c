package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eco-stock/eco-stock-api/internal/application/auth"
	"github.com/eco-stock/eco-stock-api/internal/application/dto"
	"github.com/eco-stock/eco-stock-api/internal/domain"
	"github.com/eco-stock/eco-stock-api/internal/domain/entity"
	pkgjwt "github.com/eco-stock/eco-stock-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	nextID int64
	users  map[int64]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: make(map[int64]*entity.User)}
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	user.ID = r.nextID
	r.nextID++
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) { return nil, nil }
func (r *fakeUserRepo) Update(user *entity.User) error                 { return nil }
func (r *fakeUserRepo) Delete(id int64) error                          { return nil }

type fakeRoleRepo struct {
	roles map[int64]*entity.Role
}

func newFakeRoleRepo() *fakeRoleRepo {
	return &fakeRoleRepo{roles: map[int64]*entity.Role{
		1: {ID: 1, Name: entity.RoleAdmin},
		2: {ID: 2, Name: entity.RoleOperario},
	}}
}

func (r *fakeRoleRepo) Create(role *entity.Role) error { return nil }

func (r *fakeRoleRepo) GetByID(id int64) (*entity.Role, error) {
	role, ok := r.roles[id]
	if !ok {
		return nil, nil
	}
	return role, nil
}

func (r *fakeRoleRepo) List() ([]*entity.Role, error) {
	out := []*entity.Role{r.roles[1], r.roles[2]}
	return out, nil
}

func (r *fakeRoleRepo) Update(role *entity.Role) error { return nil }
func (r *fakeRoleRepo) Delete(id int64) error          { return nil }

const authTestSecret = "auth-test-secret"

func newAuthUC() (*auth.UseCase, *fakeUserRepo) {
	userRepo := newFakeUserRepo()
	uc := auth.NewUseCase(userRepo, newFakeRoleRepo(), auth.JWTConfig{
		Secret:         authTestSecret,
		AccessMinutes:  15,
		RefreshMinutes: 60 * 24,
		Issuer:         "eco-stock-test",
	})
	return uc, userRepo
}

func registrar(t *testing.T, uc *auth.UseCase) *dto.TokenPairResponse {
	t.Helper()
	pair, err := uc.Register(dto.RegisterRequest{
		Name:     "Ana Torres",
		Email:    "ana@ecostock.com",
		Password: "secreta123",
	})
	require.NoError(t, err)
	return pair
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaUsuarioConRolPorDefecto(t *testing.T) {
	uc, userRepo := newAuthUC()

	pair := registrar(t, uc)
	assert.NotEmpty(t, pair.Access)
	assert.NotEmpty(t, pair.Refresh)
	assert.Equal(t, entity.RoleOperario, pair.User.Role,
		"sin rol explícito se asigna operario")

	stored, _ := userRepo.GetByID(pair.User.ID)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta123", stored.PasswordHash,
		"la contraseña nunca se persiste en plano")

	claims, err := pkgjwt.ParseAccess(authTestSecret, pair.Access)
	require.NoError(t, err)
	assert.Equal(t, pair.User.ID, claims.UserID)
	assert.Equal(t, entity.RoleOperario, claims.Role)
}

func TestRegister_NormalizaEmail(t *testing.T) {
	uc, userRepo := newAuthUC()

	pair, err := uc.Register(dto.RegisterRequest{
		Name:     "Ana",
		Email:    "  ANA@EcoStock.com ",
		Password: "secreta123",
	})
	require.NoError(t, err)

	stored, _ := userRepo.GetByID(pair.User.ID)
	assert.Equal(t, "ana@ecostock.com", stored.Email)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _ := newAuthUC()
	registrar(t, uc)

	_, err := uc.Register(dto.RegisterRequest{
		Name:     "Otra Ana",
		Email:    "ana@ecostock.com",
		Password: "otraclave",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_RolExplicito(t *testing.T) {
	uc, _ := newAuthUC()

	pair, err := uc.Register(dto.RegisterRequest{
		Name:     "Admin",
		Email:    "admin@ecostock.com",
		Password: "secreta123",
		RoleID:   1,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, pair.User.Role)
}

func TestRegister_RolInexistente(t *testing.T) {
	uc, _ := newAuthUC()
	_, err := uc.Register(dto.RegisterRequest{
		Name:     "Ana",
		Email:    "ana@ecostock.com",
		Password: "secreta123",
		RoleID:   99,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegister_CamposObligatorios(t *testing.T) {
	uc, _ := newAuthUC()

	casos := []dto.RegisterRequest{
		{Name: "", Email: "a@b.com", Password: "x"},
		{Name: "Ana", Email: "", Password: "x"},
		{Name: "Ana", Email: "a@b.com", Password: ""},
	}
	for _, c := range casos {
		_, err := uc.Register(c)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Authenticate
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthenticate_CredencialesValidas(t *testing.T) {
	uc, _ := newAuthUC()
	registrar(t, uc)

	pair, err := uc.Authenticate(dto.LoginRequest{
		Email:    "ana@ecostock.com",
		Password: "secreta123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, pair.Access)
	assert.Equal(t, "ana@ecostock.com", pair.User.Email)
}

func TestAuthenticate_EmailConMayusculas(t *testing.T) {
	uc, _ := newAuthUC()
	registrar(t, uc)

	_, err := uc.Authenticate(dto.LoginRequest{
		Email:    "ANA@ecostock.com",
		Password: "secreta123",
	})
	assert.NoError(t, err, "el login no distingue mayúsculas en el email")
}

func TestAuthenticate_ContrasenaIncorrecta(t *testing.T) {
	uc, _ := newAuthUC()
	registrar(t, uc)

	_, err := uc.Authenticate(dto.LoginRequest{
		Email:    "ana@ecostock.com",
		Password: "equivocada",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthenticate_UsuarioInexistente(t *testing.T) {
	uc, _ := newAuthUC()
	_, err := uc.Authenticate(dto.LoginRequest{
		Email:    "nadie@ecostock.com",
		Password: "secreta123",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"usuario inexistente responde igual que contraseña incorrecta")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Refresh
// ──────────────────────────────────────────────────────────────────────────────

func TestRefresh_EmiteNuevoPar(t *testing.T) {
	uc, _ := newAuthUC()
	pair := registrar(t, uc)

	renewed, err := uc.Refresh(pair.Refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, renewed.Access)
	assert.NotEmpty(t, renewed.Refresh)
	assert.Equal(t, pair.User.ID, renewed.User.ID)
}

func TestRefresh_RechazaAccessToken(t *testing.T) {
	uc, _ := newAuthUC()
	pair := registrar(t, uc)

	_, err := uc.Refresh(pair.Access)
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"un access token no sirve como refresh")
}

func TestRefresh_TokenInvalido(t *testing.T) {
	uc, _ := newAuthUC()
	_, err := uc.Refresh("token.basura.aqui")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
