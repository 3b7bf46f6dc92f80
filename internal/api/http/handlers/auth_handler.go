package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mbraun22/privatechef/internal/api/dto"
	"github.com/mbraun22/privatechef/internal/auth"
	"github.com/mbraun22/privatechef/internal/domain"
	"github.com/mbraun22/privatechef/internal/service"
	apperrors "github.com/mbraun22/privatechef/pkg/util"
)

// AuthHandler manages registration, login and the current-user endpoint.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{service: authService}
}

// Register POST /api/auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return apperrors.NewValidationError("email, password required", nil)
	}

	var role *domain.Role
	if req.Role != nil {
		// Unrecognized role names register the account as a diner.
		parsed, _ := domain.ParseRole(*req.Role)
		role = &parsed
	}

	user, tokens, err := h.service.Register(c.Context(), req.Email, req.Password, role)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(authResponse(user, tokens))
}

// Login POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return apperrors.NewValidationError("email, password required", nil)
	}

	user, tokens, err := h.service.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(authResponse(user, tokens))
}

// Me GET /api/users/me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	user, err := h.service.Me(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromUser(user)})
}

func authResponse(user *domain.User, tokens service.TokenPair) dto.AuthResponse {
	return dto.AuthResponse{
		User:         dto.FromUser(user),
		Token:        tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresAt:    tokens.ExpiresAt,
	}
}
