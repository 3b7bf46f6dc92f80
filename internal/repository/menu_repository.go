package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mbraun22/privatechef/internal/domain"
)

// MenuPatch carries the optional fields of a menu partial update.
type MenuPatch struct {
	Name           *string
	Description    *string
	PricePerPerson *float64
	MinimumGuests  *int
	CuisineType    *string
	DietaryOptions []string
	DurationHours  *float64
	IsActive       *bool
}

// MenuRepository encapsulates menu persistence.
type MenuRepository interface {
	Create(ctx context.Context, menu *domain.Menu) error
	ListByChef(ctx context.Context, chefID string) ([]domain.Menu, error)
	Update(ctx context.Context, menuID string, patch MenuPatch) (*domain.Menu, error)
	Delete(ctx context.Context, menuID string) error
	// IsOwnedBy reports whether the menu belongs to a chef profile owned
	// by the user, via the user->chef->menu join.
	IsOwnedBy(ctx context.Context, menuID, userID string) (bool, error)
}

type menuRepository struct {
	pool *pgxpool.Pool
}

// NewMenuRepository returns a Postgres-backed implementation.
func NewMenuRepository(pool *pgxpool.Pool) MenuRepository {
	return &menuRepository{pool: pool}
}

const menuColumns = `id, chef_id, name, description, price_per_person, minimum_guests,
    cuisine_type, dietary_options, duration_hours, is_active, created_at, updated_at`

func (r *menuRepository) Create(ctx context.Context, menu *domain.Menu) error {
	const query = `
        INSERT INTO menus (
            chef_id, name, description, price_per_person, minimum_guests,
            cuisine_type, dietary_options, duration_hours, is_active
        )
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		menu.ChefID,
		menu.Name,
		menu.Description,
		menu.PricePerPerson,
		menu.MinimumGuests,
		menu.CuisineType,
		menu.DietaryOptions,
		menu.DurationHours,
		menu.IsActive,
	).Scan(&menu.ID, &menu.CreatedAt, &menu.UpdatedAt)
}

func (r *menuRepository) ListByChef(ctx context.Context, chefID string) ([]domain.Menu, error) {
	query := fmt.Sprintf(`SELECT %s FROM menus WHERE chef_id=$1 ORDER BY created_at DESC`, menuColumns)
	rows, err := r.pool.Query(ctx, query, chefID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMenus(rows)
}

func (r *menuRepository) Update(ctx context.Context, menuID string, patch MenuPatch) (*domain.Menu, error) {
	var sc setClause
	if patch.Name != nil {
		sc.set("name", *patch.Name)
	}
	if patch.Description != nil {
		sc.set("description", *patch.Description)
	}
	if patch.PricePerPerson != nil {
		sc.set("price_per_person", *patch.PricePerPerson)
	}
	if patch.MinimumGuests != nil {
		sc.set("minimum_guests", *patch.MinimumGuests)
	}
	if patch.CuisineType != nil {
		sc.set("cuisine_type", *patch.CuisineType)
	}
	if patch.DietaryOptions != nil {
		sc.set("dietary_options", patch.DietaryOptions)
	}
	if patch.DurationHours != nil {
		sc.set("duration_hours", *patch.DurationHours)
	}
	if patch.IsActive != nil {
		sc.set("is_active", *patch.IsActive)
	}
	if sc.empty() {
		return nil, ErrEmptyPatch
	}

	body, next := sc.build()
	query := fmt.Sprintf(`UPDATE menus SET %s WHERE id=$%d RETURNING %s`, body, next, menuColumns)
	args := append(sc.args, menuID)

	var menu domain.Menu
	if err := scanMenu(r.pool.QueryRow(ctx, query, args...), &menu); err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *menuRepository) Delete(ctx context.Context, menuID string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM menus WHERE id=$1`, menuID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *menuRepository) IsOwnedBy(ctx context.Context, menuID, userID string) (bool, error) {
	const query = `
        SELECT c.id FROM chefs c
        INNER JOIN menus m ON m.chef_id = c.id
        WHERE c.user_id=$1 AND m.id=$2`

	var chefID string
	err := r.pool.QueryRow(ctx, query, userID, menuID).Scan(&chefID)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func scanMenu(row rowScanner, menu *domain.Menu) error {
	return row.Scan(
		&menu.ID,
		&menu.ChefID,
		&menu.Name,
		&menu.Description,
		&menu.PricePerPerson,
		&menu.MinimumGuests,
		&menu.CuisineType,
		&menu.DietaryOptions,
		&menu.DurationHours,
		&menu.IsActive,
		&menu.CreatedAt,
		&menu.UpdatedAt,
	)
}

func scanMenus(rows pgx.Rows) ([]domain.Menu, error) {
	var result []domain.Menu
	for rows.Next() {
		var menu domain.Menu
		if err := scanMenu(rows, &menu); err != nil {
			return nil, err
		}
		result = append(result, menu)
	}
	return result, rows.Err()
}
