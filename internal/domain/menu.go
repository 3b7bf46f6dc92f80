package domain

import "time"

// Menu is a chef-owned offering diners can book.
type Menu struct {
	ID             string
	ChefID         string
	Name           string
	Description    *string
	PricePerPerson *float64
	MinimumGuests  int
	CuisineType    *string
	DietaryOptions []string
	DurationHours  *float64
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// MenuItem is a single course within a menu.
type MenuItem struct {
	ID           string
	MenuID       string
	Name         string
	Description  *string
	CourseType   *string
	ImageURL     *string
	IsFeatured   bool
	DisplayOrder int
	Quantity     *int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
