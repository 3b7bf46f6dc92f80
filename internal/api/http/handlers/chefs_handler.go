package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mbraun22/privatechef/internal/api/dto"
	"github.com/mbraun22/privatechef/internal/auth"
	"github.com/mbraun22/privatechef/internal/service"
	apperrors "github.com/mbraun22/privatechef/pkg/util"
)

// ChefsHandler manages chef profile endpoints.
type ChefsHandler struct {
	service *service.ChefService
}

// NewChefsHandler constructs handler.
func NewChefsHandler(chefService *service.ChefService) *ChefsHandler {
	return &ChefsHandler{service: chefService}
}

// Create POST /api/chefs.
func (h *ChefsHandler) Create(c *fiber.Ctx) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.CreateChefRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.ChefName) == "" {
		return apperrors.NewValidationError("chef_name required", nil)
	}

	chef, err := h.service.CreateProfile(c.Context(), userID, req.ToInput())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.FromChef(chef)})
}

// GetOwn GET /api/chefs/profile.
func (h *ChefsHandler) GetOwn(c *fiber.Ctx) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	chef, err := h.service.GetProfile(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromChef(chef)})
}

// UpdateOwn PUT /api/chefs/profile.
func (h *ChefsHandler) UpdateOwn(c *fiber.Ctx) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.UpdateChefRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	chef, err := h.service.UpdateProfile(c.Context(), userID, req.ToPatch())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromChef(chef)})
}

// GetBySlug GET /api/chefs/:slug.
func (h *ChefsHandler) GetBySlug(c *fiber.Ctx) error {
	profile, err := h.service.PublicProfile(c.Context(), c.Params("slug"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromPublicProfile(profile)})
}
