package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/eco-stock/eco-stock-api/internal/application/auth"
	"github.com/eco-stock/eco-stock-api/internal/application/dto"
	"github.com/eco-stock/eco-stock-api/internal/application/usecase"
	"github.com/eco-stock/eco-stock-api/internal/domain"
)

// UserHandler maneja autenticación y administración de usuarios y roles.
// Register/Login/Refresh son públicos; el resto requiere token.
type UserHandler struct {
	authUC *auth.UseCase
	userUC *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(authUC *auth.UseCase, userUC *usecase.UserUseCase) *UserHandler {
	return &UserHandler{authUC: authUC, userUC: userUC}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "nombre, correo_electronico, contraseña, idrol (opcional)"
// @Success      201   {object}  dto.TokenPairResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/usuarios/register [post]
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	tokens, err := h.authUC.Register(in)
	if err != nil {
		// En el registro el correo duplicado se trata como entrada inválida (400)
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code:    "EMAIL_EXISTS",
				Message: "el correo electrónico ya está registrado",
			})
		}
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(tokens)
}

// Login POST /api/usuarios/autenticar
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	tokens, err := h.authUC.Authenticate(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(tokens)
}

// Refresh POST /api/usuarios/refresh
func (h *UserHandler) Refresh(c *fiber.Ctx) error {
	var in dto.RefreshRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	tokens, err := h.authUC.Refresh(in.Refresh)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(tokens)
}

// GetByID GET /api/usuarios/:id
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondDomainError(c, err)
	}
	user, err := h.userUC.GetByID(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	if user == nil {
		return respondNotFound(c)
	}
	return c.JSON(user)
}

// List GET /api/usuarios
func (h *UserHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	users, err := h.userUC.List(page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"count": len(users), "results": users})
}

// Update PUT /api/usuarios/:id
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondDomainError(c, err)
	}
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	user, err := h.userUC.Update(id, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(user)
}

// Delete DELETE /api/usuarios/:id
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondDomainError(c, err)
	}
	if err := h.userUC.Delete(id); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "usuario eliminado"})
}

// CreateRole POST /api/roles
func (h *UserHandler) CreateRole(c *fiber.Ctx) error {
	var in dto.RoleRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	role, err := h.userUC.CreateRole(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(role)
}

// ListRoles GET /api/roles
func (h *UserHandler) ListRoles(c *fiber.Ctx) error {
	roles, err := h.userUC.ListRoles()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"count": len(roles), "results": roles})
}

// GetRole GET /api/roles/:id
func (h *UserHandler) GetRole(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondDomainError(c, err)
	}
	role, err := h.userUC.GetRole(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	if role == nil {
		return respondNotFound(c)
	}
	return c.JSON(role)
}

// UpdateRole PUT /api/roles/:id
func (h *UserHandler) UpdateRole(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondDomainError(c, err)
	}
	var in dto.RoleRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	role, err := h.userUC.UpdateRole(id, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(role)
}

// DeleteRole DELETE /api/roles/:id
func (h *UserHandler) DeleteRole(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondDomainError(c, err)
	}
	if err := h.userUC.DeleteRole(id); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "rol eliminado"})
}
