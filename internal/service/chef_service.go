package service

import (
	"context"

	"github.com/gosimple/slug"
	"github.com/jackc/pgx/v5"

	"github.com/mbraun22/privatechef/internal/domain"
	"github.com/mbraun22/privatechef/internal/repository"
	apperrors "github.com/mbraun22/privatechef/pkg/util"
)

const defaultMinimumHours = 2

// ChefCreateInput carries the fields of a new chef profile.
type ChefCreateInput struct {
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
	MinimumHours    *int
	TravelRadius    *int
}

// PublicChefProfile is the marketing view of an active chef.
type PublicChefProfile struct {
	Chef          *domain.Chef
	FeaturedItems []domain.MenuItem
}

// ChefService manages chef profiles.
type ChefService struct {
	chefs repository.ChefRepository
	items repository.MenuItemRepository
}

// NewChefService builds the service.
func NewChefService(chefs repository.ChefRepository, items repository.MenuItemRepository) *ChefService {
	return &ChefService{chefs: chefs, items: items}
}

// CreateProfile creates the caller's chef profile; one per user.
func (s *ChefService) CreateProfile(ctx context.Context, userID string, input ChefCreateInput) (*domain.Chef, error) {
	if _, err := s.chefs.GetByUserID(ctx, userID); err == nil {
		return nil, apperrors.NewValidationError("chef profile already exists", nil)
	} else if err != pgx.ErrNoRows {
		return nil, apperrors.NewDatabaseError(err)
	}

	minimumHours := defaultMinimumHours
	if input.MinimumHours != nil {
		minimumHours = *input.MinimumHours
	}
	profileSlug := slug.Make(input.ChefName)

	chef := &domain.Chef{
		UserID:          userID,
		BusinessName:    input.BusinessName,
		ChefName:        input.ChefName,
		Bio:             input.Bio,
		CuisineTypes:    input.CuisineTypes,
		Location:        input.Location,
		Phone:           input.Phone,
		Email:           input.Email,
		Website:         input.Website,
		ProfileImageURL: input.ProfileImageURL,
		CoverImageURL:   input.CoverImageURL,
		HourlyRate:      input.HourlyRate,
		MinimumHours:    minimumHours,
		TravelRadius:    input.TravelRadius,
		IsActive:        true,
		Slug:            &profileSlug,
	}
	if err := s.chefs.Create(ctx, chef); err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return chef, nil
}

// GetProfile loads the caller's own chef profile.
func (s *ChefService) GetProfile(ctx context.Context, userID string) (*domain.Chef, error) {
	chef, err := s.chefs.GetByUserID(ctx, userID)
	if err == pgx.ErrNoRows {
		return nil, apperrors.NewNotFound("chef profile", nil)
	}
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return chef, nil
}

// UpdateProfile applies a partial update to the caller's chef profile.
func (s *ChefService) UpdateProfile(ctx context.Context, userID string, patch repository.ChefPatch) (*domain.Chef, error) {
	chef, err := s.chefs.UpdateByUserID(ctx, userID, patch)
	if err == repository.ErrEmptyPatch {
		return nil, apperrors.NewValidationError("no fields to update", nil)
	}
	if err == pgx.ErrNoRows {
		return nil, apperrors.NewNotFound("chef profile", nil)
	}
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return chef, nil
}

// PublicProfile loads an active chef by slug with up to six featured
// menu items.
func (s *ChefService) PublicProfile(ctx context.Context, profileSlug string) (*PublicChefProfile, error) {
	chef, err := s.chefs.GetActiveBySlug(ctx, profileSlug)
	if err == pgx.ErrNoRows {
		return nil, apperrors.NewNotFound("chef profile", nil)
	}
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	items, err := s.items.FeaturedByChef(ctx, chef.ID, 6)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return &PublicChefProfile{Chef: chef, FeaturedItems: items}, nil
}
