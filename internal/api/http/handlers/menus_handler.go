package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mbraun22/privatechef/internal/api/dto"
	"github.com/mbraun22/privatechef/internal/auth"
	"github.com/mbraun22/privatechef/internal/service"
	apperrors "github.com/mbraun22/privatechef/pkg/util"
)

// MenusHandler manages menu endpoints.
type MenusHandler struct {
	service *service.MenuService
}

// NewMenusHandler constructs handler.
func NewMenusHandler(menuService *service.MenuService) *MenusHandler {
	return &MenusHandler{service: menuService}
}

// Create POST /api/menus.
func (h *MenusHandler) Create(c *fiber.Ctx) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.CreateMenuRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Name) == "" {
		return apperrors.NewValidationError("name required", nil)
	}

	menu, err := h.service.CreateMenu(c.Context(), userID, req.ToInput())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.FromMenu(menu)})
}

// List GET /api/menus.
func (h *MenusHandler) List(c *fiber.Ctx) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	menus, err := h.service.ListMenus(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromMenus(menus)})
}

// Update PUT /api/menus/:menu_id.
func (h *MenusHandler) Update(c *fiber.Ctx) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.UpdateMenuRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	menu, err := h.service.UpdateMenu(c.Context(), userID, c.Params("menu_id"), req.ToPatch())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromMenu(menu)})
}

// Delete DELETE /api/menus/:menu_id.
func (h *MenusHandler) Delete(c *fiber.Ctx) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	if err := h.service.DeleteMenu(c.Context(), userID, c.Params("menu_id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
