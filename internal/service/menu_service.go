package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/mbraun22/privatechef/internal/domain"
	"github.com/mbraun22/privatechef/internal/repository"
	apperrors "github.com/mbraun22/privatechef/pkg/util"
)

const defaultMinimumGuests = 2

// MenuCreateInput carries the fields of a new menu.
type MenuCreateInput struct {
	Name           string
	Description    *string
	PricePerPerson *float64
	MinimumGuests  *int
	CuisineType    *string
	DietaryOptions []string
	DurationHours  *float64
}

// MenuItemCreateInput carries the fields of a new menu item.
type MenuItemCreateInput struct {
	Name         string
	Description  *string
	CourseType   *string
	ImageURL     *string
	IsFeatured   *bool
	DisplayOrder *int
	Quantity     *int
}

// MenuService manages menus and their items. All mutations walk the
// user->chef->menu ownership chain before touching rows.
type MenuService struct {
	chefs repository.ChefRepository
	menus repository.MenuRepository
	items repository.MenuItemRepository
}

// NewMenuService builds the service.
func NewMenuService(chefs repository.ChefRepository, menus repository.MenuRepository, items repository.MenuItemRepository) *MenuService {
	return &MenuService{chefs: chefs, menus: menus, items: items}
}

// CreateMenu creates a menu under the caller's chef profile.
func (s *MenuService) CreateMenu(ctx context.Context, userID string, input MenuCreateInput) (*domain.Menu, error) {
	chef, err := s.chefs.GetByUserID(ctx, userID)
	if err == pgx.ErrNoRows {
		return nil, apperrors.NewUnauthorized("user is not a chef")
	}
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	minimumGuests := defaultMinimumGuests
	if input.MinimumGuests != nil {
		minimumGuests = *input.MinimumGuests
	}

	menu := &domain.Menu{
		ChefID:         chef.ID,
		Name:           input.Name,
		Description:    input.Description,
		PricePerPerson: input.PricePerPerson,
		MinimumGuests:  minimumGuests,
		CuisineType:    input.CuisineType,
		DietaryOptions: input.DietaryOptions,
		DurationHours:  input.DurationHours,
		IsActive:       true,
	}
	if err := s.menus.Create(ctx, menu); err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return menu, nil
}

// ListMenus lists the caller's menus, newest first.
func (s *MenuService) ListMenus(ctx context.Context, userID string) ([]domain.Menu, error) {
	chef, err := s.chefs.GetByUserID(ctx, userID)
	if err == pgx.ErrNoRows {
		return nil, apperrors.NewUnauthorized("user is not a chef")
	}
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	menus, err := s.menus.ListByChef(ctx, chef.ID)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return menus, nil
}

// UpdateMenu applies a partial update after an ownership check.
func (s *MenuService) UpdateMenu(ctx context.Context, userID, menuID string, patch repository.MenuPatch) (*domain.Menu, error) {
	if err := s.requireMenuOwnership(ctx, userID, menuID); err != nil {
		return nil, err
	}

	menu, err := s.menus.Update(ctx, menuID, patch)
	if err == repository.ErrEmptyPatch {
		return nil, apperrors.NewValidationError("no fields to update", nil)
	}
	if err == pgx.ErrNoRows {
		return nil, apperrors.NewNotFound("menu", nil)
	}
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return menu, nil
}

// DeleteMenu removes a menu after an ownership check.
func (s *MenuService) DeleteMenu(ctx context.Context, userID, menuID string) error {
	if err := s.requireMenuOwnership(ctx, userID, menuID); err != nil {
		return err
	}

	err := s.menus.Delete(ctx, menuID)
	if err == pgx.ErrNoRows {
		return apperrors.NewNotFound("menu", nil)
	}
	if err != nil {
		return apperrors.NewDatabaseError(err)
	}
	return nil
}

// ListItems lists a menu's items.
func (s *MenuService) ListItems(ctx context.Context, menuID string) ([]domain.MenuItem, error) {
	items, err := s.items.ListByMenu(ctx, menuID)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return items, nil
}

// CreateItem adds an item to a menu the caller owns.
func (s *MenuService) CreateItem(ctx context.Context, userID, menuID string, input MenuItemCreateInput) (*domain.MenuItem, error) {
	if err := s.requireMenuOwnership(ctx, userID, menuID); err != nil {
		return nil, err
	}

	item := &domain.MenuItem{
		MenuID:      menuID,
		Name:        input.Name,
		Description: input.Description,
		CourseType:  input.CourseType,
		ImageURL:    input.ImageURL,
		Quantity:    input.Quantity,
	}
	if input.IsFeatured != nil {
		item.IsFeatured = *input.IsFeatured
	}
	if input.DisplayOrder != nil {
		item.DisplayOrder = *input.DisplayOrder
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return item, nil
}

// UpdateItem applies a partial update to an item of a menu the caller owns.
func (s *MenuService) UpdateItem(ctx context.Context, userID, menuID, itemID string, patch repository.MenuItemPatch) (*domain.MenuItem, error) {
	if err := s.requireMenuOwnership(ctx, userID, menuID); err != nil {
		return nil, err
	}

	item, err := s.items.Update(ctx, menuID, itemID, patch)
	if err == repository.ErrEmptyPatch {
		return nil, apperrors.NewValidationError("no fields to update", nil)
	}
	if err == pgx.ErrNoRows {
		return nil, apperrors.NewNotFound("menu item", nil)
	}
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return item, nil
}

// DeleteItem removes an item of a menu the caller owns.
func (s *MenuService) DeleteItem(ctx context.Context, userID, menuID, itemID string) error {
	if err := s.requireMenuOwnership(ctx, userID, menuID); err != nil {
		return err
	}

	err := s.items.Delete(ctx, menuID, itemID)
	if err == pgx.ErrNoRows {
		return apperrors.NewNotFound("menu item", nil)
	}
	if err != nil {
		return apperrors.NewDatabaseError(err)
	}
	return nil
}

func (s *MenuService) requireMenuOwnership(ctx context.Context, userID, menuID string) error {
	owned, err := s.menus.IsOwnedBy(ctx, menuID, userID)
	if err != nil {
		return apperrors.NewDatabaseError(err)
	}
	if !owned {
		return apperrors.NewUnauthorized("not authorized")
	}
	return nil
}
