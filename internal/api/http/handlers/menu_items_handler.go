package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mbraun22/privatechef/internal/api/dto"
	"github.com/mbraun22/privatechef/internal/auth"
	"github.com/mbraun22/privatechef/internal/service"
	apperrors "github.com/mbraun22/privatechef/pkg/util"
)

// MenuItemsHandler manages menu item endpoints.
type MenuItemsHandler struct {
	service *service.MenuService
}

// NewMenuItemsHandler constructs handler.
func NewMenuItemsHandler(menuService *service.MenuService) *MenuItemsHandler {
	return &MenuItemsHandler{service: menuService}
}

// List GET /api/menus/:menu_id/items.
func (h *MenuItemsHandler) List(c *fiber.Ctx) error {
	items, err := h.service.ListItems(c.Context(), c.Params("menu_id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromMenuItems(items)})
}

// Create POST /api/menus/:menu_id/items.
func (h *MenuItemsHandler) Create(c *fiber.Ctx) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.CreateMenuItemRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Name) == "" {
		return apperrors.NewValidationError("name required", nil)
	}

	item, err := h.service.CreateItem(c.Context(), userID, c.Params("menu_id"), req.ToInput())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.FromMenuItem(item)})
}

// Update PUT /api/menus/:menu_id/items/:item_id.
func (h *MenuItemsHandler) Update(c *fiber.Ctx) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.UpdateMenuItemRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	item, err := h.service.UpdateItem(c.Context(), userID, c.Params("menu_id"), c.Params("item_id"), req.ToPatch())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromMenuItem(item)})
}

// Delete DELETE /api/menus/:menu_id/items/:item_id.
func (h *MenuItemsHandler) Delete(c *fiber.Ctx) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	if err := h.service.DeleteItem(c.Context(), userID, c.Params("menu_id"), c.Params("item_id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
