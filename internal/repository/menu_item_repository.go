package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mbraun22/privatechef/internal/domain"
)

// MenuItemPatch carries the optional fields of a menu item partial update.
type MenuItemPatch struct {
	Name         *string
	Description  *string
	CourseType   *string
	ImageURL     *string
	IsFeatured   *bool
	DisplayOrder *int
	Quantity     *int
}

// MenuItemRepository encapsulates menu item persistence.
type MenuItemRepository interface {
	Create(ctx context.Context, item *domain.MenuItem) error
	ListByMenu(ctx context.Context, menuID string) ([]domain.MenuItem, error)
	// FeaturedByChef loads featured items across the chef's active menus,
	// ordered by display order.
	FeaturedByChef(ctx context.Context, chefID string, limit int) ([]domain.MenuItem, error)
	Update(ctx context.Context, menuID, itemID string, patch MenuItemPatch) (*domain.MenuItem, error)
	Delete(ctx context.Context, menuID, itemID string) error
}

type menuItemRepository struct {
	pool *pgxpool.Pool
}

// NewMenuItemRepository returns a Postgres-backed implementation.
func NewMenuItemRepository(pool *pgxpool.Pool) MenuItemRepository {
	return &menuItemRepository{pool: pool}
}

const menuItemColumns = `id, menu_id, name, description, course_type, image_url,
    is_featured, display_order, quantity, created_at, updated_at`

func (r *menuItemRepository) Create(ctx context.Context, item *domain.MenuItem) error {
	const query = `
        INSERT INTO menu_items (
            menu_id, name, description, course_type, image_url,
            is_featured, display_order, quantity
        )
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		item.MenuID,
		item.Name,
		item.Description,
		item.CourseType,
		item.ImageURL,
		item.IsFeatured,
		item.DisplayOrder,
		item.Quantity,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *menuItemRepository) ListByMenu(ctx context.Context, menuID string) ([]domain.MenuItem, error) {
	query := fmt.Sprintf(`SELECT %s FROM menu_items WHERE menu_id=$1
        ORDER BY display_order ASC, created_at ASC`, menuItemColumns)
	rows, err := r.pool.Query(ctx, query, menuID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMenuItems(rows)
}

func (r *menuItemRepository) FeaturedByChef(ctx context.Context, chefID string, limit int) ([]domain.MenuItem, error) {
	if limit <= 0 {
		limit = 6
	}
	query := fmt.Sprintf(`
        SELECT mi.id, mi.menu_id, mi.name, mi.description, mi.course_type, mi.image_url,
               mi.is_featured, mi.display_order, mi.quantity, mi.created_at, mi.updated_at
        FROM menu_items mi
        INNER JOIN menus m ON mi.menu_id = m.id
        WHERE m.chef_id=$1 AND mi.is_featured=true AND m.is_active=true
        ORDER BY mi.display_order ASC
        LIMIT %d`, limit)
	rows, err := r.pool.Query(ctx, query, chefID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMenuItems(rows)
}

func (r *menuItemRepository) Update(ctx context.Context, menuID, itemID string, patch MenuItemPatch) (*domain.MenuItem, error) {
	var sc setClause
	if patch.Name != nil {
		sc.set("name", *patch.Name)
	}
	if patch.Description != nil {
		sc.set("description", *patch.Description)
	}
	if patch.CourseType != nil {
		sc.set("course_type", *patch.CourseType)
	}
	if patch.ImageURL != nil {
		sc.set("image_url", *patch.ImageURL)
	}
	if patch.IsFeatured != nil {
		sc.set("is_featured", *patch.IsFeatured)
	}
	if patch.DisplayOrder != nil {
		sc.set("display_order", *patch.DisplayOrder)
	}
	if patch.Quantity != nil {
		sc.set("quantity", *patch.Quantity)
	}
	if sc.empty() {
		return nil, ErrEmptyPatch
	}

	body, next := sc.build()
	query := fmt.Sprintf(`UPDATE menu_items SET %s WHERE id=$%d AND menu_id=$%d RETURNING %s`,
		body, next, next+1, menuItemColumns)
	args := append(sc.args, itemID, menuID)

	var item domain.MenuItem
	if err := scanMenuItem(r.pool.QueryRow(ctx, query, args...), &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuItemRepository) Delete(ctx context.Context, menuID, itemID string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM menu_items WHERE id=$1 AND menu_id=$2`, itemID, menuID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanMenuItem(row rowScanner, item *domain.MenuItem) error {
	return row.Scan(
		&item.ID,
		&item.MenuID,
		&item.Name,
		&item.Description,
		&item.CourseType,
		&item.ImageURL,
		&item.IsFeatured,
		&item.DisplayOrder,
		&item.Quantity,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
}

func scanMenuItems(rows pgx.Rows) ([]domain.MenuItem, error) {
	var result []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		if err := scanMenuItem(rows, &item); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}
