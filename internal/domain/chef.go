package domain

import "time"

// Chef models a chef profile owned by a user account.
type Chef struct {
	ID              string
	UserID          string
	BusinessName    *string
	ChefName        string
	Bio             *string
	CuisineTypes    []string
	Location        *string
	Phone           *string
	Email           *string
	Website         *string
	ProfileImageURL *string
	CoverImageURL   *string
	HourlyRate      *float64
	MinimumHours    int
	TravelRadius    *int
	IsActive        bool
	Slug            *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
