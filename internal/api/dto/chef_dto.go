package dto

import (
	"time"

	"github.com/mbraun22/privatechef/internal/domain"
	"github.com/mbraun22/privatechef/internal/repository"
	"github.com/mbraun22/privatechef/internal/service"
)

// CreateChefRequest payload for a new chef profile.
type CreateChefRequest struct {
	BusinessName    *string  `json:"business_name"`
	ChefName        string   `json:"chef_name"`
	Bio             *string  `json:"bio"`
	CuisineTypes    []string `json:"cuisine_types"`
	Location        *string  `json:"location"`
	Phone           *string  `json:"phone"`
	Email           *string  `json:"email"`
	Website         *string  `json:"website"`
	ProfileImageURL *string  `json:"profile_image_url"`
	CoverImageURL   *string  `json:"cover_image_url"`
	HourlyRate      *float64 `json:"hourly_rate"`
	MinimumHours    *int     `json:"minimum_hours"`
	TravelRadius    *int     `json:"travel_radius"`
}

// UpdateChefRequest payload for a chef profile partial update. Absent
// fields are left untouched.
type UpdateChefRequest struct {
	BusinessName    *string  `json:"business_name"`
	ChefName        *string  `json:"chef_name"`
	Bio             *string  `json:"bio"`
	CuisineTypes    []string `json:"cuisine_types"`
	Location        *string  `json:"location"`
	Phone           *string  `json:"phone"`
	Email           *string  `json:"email"`
	Website         *string  `json:"website"`
	ProfileImageURL *string  `json:"profile_image_url"`
	CoverImageURL   *string  `json:"cover_image_url"`
	HourlyRate      *float64 `json:"hourly_rate"`
	MinimumHours    *int     `json:"minimum_hours"`
	TravelRadius    *int     `json:"travel_radius"`
	IsActive        *bool    `json:"is_active"`
}

// ToInput converts the request into the service input.
func (r CreateChefRequest) ToInput() service.ChefCreateInput {
	return service.ChefCreateInput{
		BusinessName:    r.BusinessName,
		ChefName:        r.ChefName,
		Bio:             r.Bio,
		CuisineTypes:    r.CuisineTypes,
		Location:        r.Location,
		Phone:           r.Phone,
		Email:           r.Email,
		Website:         r.Website,
		ProfileImageURL: r.ProfileImageURL,
		CoverImageURL:   r.CoverImageURL,
		HourlyRate:      r.HourlyRate,
		MinimumHours:    r.MinimumHours,
		TravelRadius:    r.TravelRadius,
	}
}

// ToPatch converts the request into the repository patch.
func (r UpdateChefRequest) ToPatch() repository.ChefPatch {
	return repository.ChefPatch{
		BusinessName:    r.BusinessName,
		ChefName:        r.ChefName,
		Bio:             r.Bio,
		CuisineTypes:    r.CuisineTypes,
		Location:        r.Location,
		Phone:           r.Phone,
		Email:           r.Email,
		Website:         r.Website,
		ProfileImageURL: r.ProfileImageURL,
		CoverImageURL:   r.CoverImageURL,
		HourlyRate:      r.HourlyRate,
		MinimumHours:    r.MinimumHours,
		TravelRadius:    r.TravelRadius,
		IsActive:        r.IsActive,
	}
}

// ChefResponse is the owner's view of a chef profile.
type ChefResponse struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	BusinessName    *string   `json:"business_name,omitempty"`
	ChefName        string    `json:"chef_name"`
	Bio             *string   `json:"bio,omitempty"`
	CuisineTypes    []string  `json:"cuisine_types,omitempty"`
	Location        *string   `json:"location,omitempty"`
	Phone           *string   `json:"phone,omitempty"`
	Email           *string   `json:"email,omitempty"`
	Website         *string   `json:"website,omitempty"`
	ProfileImageURL *string   `json:"profile_image_url,omitempty"`
	CoverImageURL   *string   `json:"cover_image_url,omitempty"`
	HourlyRate      *float64  `json:"hourly_rate,omitempty"`
	MinimumHours    int       `json:"minimum_hours"`
	TravelRadius    *int      `json:"travel_radius,omitempty"`
	IsActive        bool      `json:"is_active"`
	Slug            *string   `json:"slug,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// PublicChefResponse is the marketing view of an active chef.
type PublicChefResponse struct {
	ID                string               `json:"id"`
	BusinessName      *string              `json:"business_name,omitempty"`
	ChefName          string               `json:"chef_name"`
	Bio               *string              `json:"bio,omitempty"`
	CuisineTypes      []string             `json:"cuisine_types,omitempty"`
	Location          *string              `json:"location,omitempty"`
	ProfileImageURL   *string              `json:"profile_image_url,omitempty"`
	CoverImageURL     *string              `json:"cover_image_url,omitempty"`
	HourlyRate        *float64             `json:"hourly_rate,omitempty"`
	MinimumHours      int                  `json:"minimum_hours"`
	Slug              *string              `json:"slug,omitempty"`
	FeaturedMenuItems []PublicMenuItemView `json:"featured_menu_items"`
}

// PublicMenuItemView is the public shape of a featured menu item.
type PublicMenuItemView struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	CourseType  *string `json:"course_type,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
}

// FromChef maps a domain chef to its response shape.
func FromChef(chef *domain.Chef) ChefResponse {
	return ChefResponse{
		ID:              chef.ID,
		UserID:          chef.UserID,
		BusinessName:    chef.BusinessName,
		ChefName:        chef.ChefName,
		Bio:             chef.Bio,
		CuisineTypes:    chef.CuisineTypes,
		Location:        chef.Location,
		Phone:           chef.Phone,
		Email:           chef.Email,
		Website:         chef.Website,
		ProfileImageURL: chef.ProfileImageURL,
		CoverImageURL:   chef.CoverImageURL,
		HourlyRate:      chef.HourlyRate,
		MinimumHours:    chef.MinimumHours,
		TravelRadius:    chef.TravelRadius,
		IsActive:        chef.IsActive,
		Slug:            chef.Slug,
		CreatedAt:       chef.CreatedAt,
		UpdatedAt:       chef.UpdatedAt,
	}
}

// FromPublicProfile maps a public profile to its response shape.
func FromPublicProfile(profile *service.PublicChefProfile) PublicChefResponse {
	items := make([]PublicMenuItemView, 0, len(profile.FeaturedItems))
	for _, item := range profile.FeaturedItems {
		items = append(items, PublicMenuItemView{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			CourseType:  item.CourseType,
			ImageURL:    item.ImageURL,
		})
	}
	chef := profile.Chef
	return PublicChefResponse{
		ID:                chef.ID,
		BusinessName:      chef.BusinessName,
		ChefName:          chef.ChefName,
		Bio:               chef.Bio,
		CuisineTypes:      chef.CuisineTypes,
		Location:          chef.Location,
		ProfileImageURL:   chef.ProfileImageURL,
		CoverImageURL:     chef.CoverImageURL,
		HourlyRate:        chef.HourlyRate,
		MinimumHours:      chef.MinimumHours,
		Slug:              chef.Slug,
		FeaturedMenuItems: items,
	}
}
