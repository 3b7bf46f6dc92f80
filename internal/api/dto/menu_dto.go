package dto

import (
	"time"

	"github.com/mbraun22/privatechef/internal/domain"
	"github.com/mbraun22/privatechef/internal/repository"
	"github.com/mbraun22/privatechef/internal/service"
)

// CreateMenuRequest payload for a new menu.
type CreateMenuRequest struct {
	Name           string   `json:"name"`
	Description    *string  `json:"description"`
	PricePerPerson *float64 `json:"price_per_person"`
	MinimumGuests  *int     `json:"minimum_guests"`
	CuisineType    *string  `json:"cuisine_type"`
	DietaryOptions []string `json:"dietary_options"`
	DurationHours  *float64 `json:"duration_hours"`
}

// UpdateMenuRequest payload for a menu partial update.
type UpdateMenuRequest struct {
	Name           *string  `json:"name"`
	Description    *string  `json:"description"`
	PricePerPerson *float64 `json:"price_per_person"`
	MinimumGuests  *int     `json:"minimum_guests"`
	CuisineType    *string  `json:"cuisine_type"`
	DietaryOptions []string `json:"dietary_options"`
	DurationHours  *float64 `json:"duration_hours"`
	IsActive       *bool    `json:"is_active"`
}

// CreateMenuItemRequest payload for a new menu item.
type CreateMenuItemRequest struct {
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	CourseType   *string `json:"course_type"`
	ImageURL     *string `json:"image_url"`
	IsFeatured   *bool   `json:"is_featured"`
	DisplayOrder *int    `json:"display_order"`
	Quantity     *int    `json:"quantity"`
}

// UpdateMenuItemRequest payload for a menu item partial update.
type UpdateMenuItemRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	CourseType   *string `json:"course_type"`
	ImageURL     *string `json:"image_url"`
	IsFeatured   *bool   `json:"is_featured"`
	DisplayOrder *int    `json:"display_order"`
	Quantity     *int    `json:"quantity"`
}

// ToInput converts the request into the service input.
func (r CreateMenuRequest) ToInput() service.MenuCreateInput {
	return service.MenuCreateInput{
		Name:           r.Name,
		Description:    r.Description,
		PricePerPerson: r.PricePerPerson,
		MinimumGuests:  r.MinimumGuests,
		CuisineType:    r.CuisineType,
		DietaryOptions: r.DietaryOptions,
		DurationHours:  r.DurationHours,
	}
}

// ToPatch converts the request into the repository patch.
func (r UpdateMenuRequest) ToPatch() repository.MenuPatch {
	return repository.MenuPatch{
		Name:           r.Name,
		Description:    r.Description,
		PricePerPerson: r.PricePerPerson,
		MinimumGuests:  r.MinimumGuests,
		CuisineType:    r.CuisineType,
		DietaryOptions: r.DietaryOptions,
		DurationHours:  r.DurationHours,
		IsActive:       r.IsActive,
	}
}

// ToInput converts the request into the service input.
func (r CreateMenuItemRequest) ToInput() service.MenuItemCreateInput {
	return service.MenuItemCreateInput{
		Name:         r.Name,
		Description:  r.Description,
		CourseType:   r.CourseType,
		ImageURL:     r.ImageURL,
		IsFeatured:   r.IsFeatured,
		DisplayOrder: r.DisplayOrder,
		Quantity:     r.Quantity,
	}
}

// ToPatch converts the request into the repository patch.
func (r UpdateMenuItemRequest) ToPatch() repository.MenuItemPatch {
	return repository.MenuItemPatch{
		Name:         r.Name,
		Description:  r.Description,
		CourseType:   r.CourseType,
		ImageURL:     r.ImageURL,
		IsFeatured:   r.IsFeatured,
		DisplayOrder: r.DisplayOrder,
		Quantity:     r.Quantity,
	}
}

// MenuResponse is the API shape of a menu.
type MenuResponse struct {
	ID             string    `json:"id"`
	ChefID         string    `json:"chef_id"`
	Name           string    `json:"name"`
	Description    *string   `json:"description,omitempty"`
	PricePerPerson *float64  `json:"price_per_person,omitempty"`
	MinimumGuests  int       `json:"minimum_guests"`
	CuisineType    *string   `json:"cuisine_type,omitempty"`
	DietaryOptions []string  `json:"dietary_options,omitempty"`
	DurationHours  *float64  `json:"duration_hours,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// MenuItemResponse is the API shape of a menu item.
type MenuItemResponse struct {
	ID           string    `json:"id"`
	MenuID       string    `json:"menu_id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description,omitempty"`
	CourseType   *string   `json:"course_type,omitempty"`
	ImageURL     *string   `json:"image_url,omitempty"`
	IsFeatured   bool      `json:"is_featured"`
	DisplayOrder int       `json:"display_order"`
	Quantity     *int      `json:"quantity,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// FromMenu maps a domain menu to its response shape.
func FromMenu(menu *domain.Menu) MenuResponse {
	return MenuResponse{
		ID:             menu.ID,
		ChefID:         menu.ChefID,
		Name:           menu.Name,
		Description:    menu.Description,
		PricePerPerson: menu.PricePerPerson,
		MinimumGuests:  menu.MinimumGuests,
		CuisineType:    menu.CuisineType,
		DietaryOptions: menu.DietaryOptions,
		DurationHours:  menu.DurationHours,
		IsActive:       menu.IsActive,
		CreatedAt:      menu.CreatedAt,
		UpdatedAt:      menu.UpdatedAt,
	}
}

// FromMenus maps a menu slice to response shapes.
func FromMenus(menus []domain.Menu) []MenuResponse {
	out := make([]MenuResponse, 0, len(menus))
	for i := range menus {
		out = append(out, FromMenu(&menus[i]))
	}
	return out
}

// FromMenuItem maps a domain menu item to its response shape.
func FromMenuItem(item *domain.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:           item.ID,
		MenuID:       item.MenuID,
		Name:         item.Name,
		Description:  item.Description,
		CourseType:   item.CourseType,
		ImageURL:     item.ImageURL,
		IsFeatured:   item.IsFeatured,
		DisplayOrder: item.DisplayOrder,
		Quantity:     item.Quantity,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}

// FromMenuItems maps an item slice to response shapes.
func FromMenuItems(items []domain.MenuItem) []MenuItemResponse {
	out := make([]MenuItemResponse, 0, len(items))
	for i := range items {
		out = append(out, FromMenuItem(&items[i]))
	}
	return out
}
