package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mbraun22/privatechef/internal/domain"
)

// ChefPatch carries the optional fields of a chef profile partial update.
// Nil fields are left untouched.
type ChefPatch struct {
	BusinessName    *string
	ChefName        *string
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
	IsActive        *bool
}

// ChefRepository encapsulates chef profile persistence.
type ChefRepository interface {
	Create(ctx context.Context, chef *domain.Chef) error
	GetByUserID(ctx context.Context, userID string) (*domain.Chef, error)
	GetActiveByID(ctx context.Context, id string) (*domain.Chef, error)
	GetActiveBySlug(ctx context.Context, slug string) (*domain.Chef, error)
	UpdateByUserID(ctx context.Context, userID string, patch ChefPatch) (*domain.Chef, error)
}

type chefRepository struct {
	pool *pgxpool.Pool
}

// NewChefRepository returns a Postgres-backed implementation.
func NewChefRepository(pool *pgxpool.Pool) ChefRepository {
	return &chefRepository{pool: pool}
}

const chefColumns = `id, user_id, business_name, chef_name, bio, cuisine_types, location,
    phone, email, website, profile_image_url, cover_image_url,
    hourly_rate, minimum_hours, travel_radius, is_active, slug, created_at, updated_at`

func (r *chefRepository) Create(ctx context.Context, chef *domain.Chef) error {
	const query = `
        INSERT INTO chefs (
            user_id, business_name, chef_name, bio, cuisine_types, location,
            phone, email, website, profile_image_url, cover_image_url,
            hourly_rate, minimum_hours, travel_radius, is_active, slug
        )
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		chef.UserID,
		chef.BusinessName,
		chef.ChefName,
		chef.Bio,
		chef.CuisineTypes,
		chef.Location,
		chef.Phone,
		chef.Email,
		chef.Website,
		chef.ProfileImageURL,
		chef.CoverImageURL,
		chef.HourlyRate,
		chef.MinimumHours,
		chef.TravelRadius,
		chef.IsActive,
		chef.Slug,
	).Scan(&chef.ID, &chef.CreatedAt, &chef.UpdatedAt)
}

func (r *chefRepository) GetByUserID(ctx context.Context, userID string) (*domain.Chef, error) {
	query := fmt.Sprintf(`SELECT %s FROM chefs WHERE user_id=$1`, chefColumns)
	return r.fetchSingle(ctx, query, userID)
}

func (r *chefRepository) GetActiveByID(ctx context.Context, id string) (*domain.Chef, error) {
	query := fmt.Sprintf(`SELECT %s FROM chefs WHERE id=$1 AND is_active=true`, chefColumns)
	return r.fetchSingle(ctx, query, id)
}

func (r *chefRepository) GetActiveBySlug(ctx context.Context, slug string) (*domain.Chef, error) {
	query := fmt.Sprintf(`SELECT %s FROM chefs WHERE slug=$1 AND is_active=true`, chefColumns)
	return r.fetchSingle(ctx, query, slug)
}

func (r *chefRepository) UpdateByUserID(ctx context.Context, userID string, patch ChefPatch) (*domain.Chef, error) {
	var sc setClause
	if patch.BusinessName != nil {
		sc.set("business_name", *patch.BusinessName)
	}
	if patch.ChefName != nil {
		sc.set("chef_name", *patch.ChefName)
	}
	if patch.Bio != nil {
		sc.set("bio", *patch.Bio)
	}
	if patch.CuisineTypes != nil {
		sc.set("cuisine_types", patch.CuisineTypes)
	}
	if patch.Location != nil {
		sc.set("location", *patch.Location)
	}
	if patch.Phone != nil {
		sc.set("phone", *patch.Phone)
	}
	if patch.Email != nil {
		sc.set("email", *patch.Email)
	}
	if patch.Website != nil {
		sc.set("website", *patch.Website)
	}
	if patch.ProfileImageURL != nil {
		sc.set("profile_image_url", *patch.ProfileImageURL)
	}
	if patch.CoverImageURL != nil {
		sc.set("cover_image_url", *patch.CoverImageURL)
	}
	if patch.HourlyRate != nil {
		sc.set("hourly_rate", *patch.HourlyRate)
	}
	if patch.MinimumHours != nil {
		sc.set("minimum_hours", *patch.MinimumHours)
	}
	if patch.TravelRadius != nil {
		sc.set("travel_radius", *patch.TravelRadius)
	}
	if patch.IsActive != nil {
		sc.set("is_active", *patch.IsActive)
	}
	if sc.empty() {
		return nil, ErrEmptyPatch
	}

	body, next := sc.build()
	query := fmt.Sprintf(`UPDATE chefs SET %s WHERE user_id=$%d RETURNING %s`, body, next, chefColumns)
	args := append(sc.args, userID)

	return scanChef(r.pool.QueryRow(ctx, query, args...))
}

func (r *chefRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Chef, error) {
	return scanChef(r.pool.QueryRow(ctx, query, arg))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanChef(row rowScanner) (*domain.Chef, error) {
	var chef domain.Chef
	if err := row.Scan(
		&chef.ID,
		&chef.UserID,
		&chef.BusinessName,
		&chef.ChefName,
		&chef.Bio,
		&chef.CuisineTypes,
		&chef.Location,
		&chef.Phone,
		&chef.Email,
		&chef.Website,
		&chef.ProfileImageURL,
		&chef.CoverImageURL,
		&chef.HourlyRate,
		&chef.MinimumHours,
		&chef.TravelRadius,
		&chef.IsActive,
		&chef.Slug,
		&chef.CreatedAt,
		&chef.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &chef, nil
}
