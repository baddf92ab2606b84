package postgres

import (
	"context"

	"github.com/chrisdamba/cafedatasim/internal/models"
	"github.com/jackc/pgx/v5"
)

type MenuItemRepository struct {
	db DBTX
}

func NewMenuItemRepository(db DBTX) *MenuItemRepository {
	return &MenuItemRepository{db: db}
}

func (r *MenuItemRepository) BulkCreate(ctx context.Context, menuItems []models.MenuItem) error {
	_, err := r.db.CopyFrom(
		ctx,
		pgx.Identifier{"menu_items"},
		[]string{"id", "name", "base_price_cents"},
		pgx.CopyFromSlice(len(menuItems), func(i int) ([]interface{}, error) {
			return []interface{}{
				menuItems[i].ID,
				menuItems[i].Name,
				menuItems[i].PriceCents,
			}, nil
		}),
	)
	return err
}

// GetAll returns the menu ordered by id so catalog loading is deterministic.
func (r *MenuItemRepository) GetAll(ctx context.Context) ([]models.MenuItem, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, base_price_cents FROM menu_items ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var menuItems []models.MenuItem
	for rows.Next() {
		var item models.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.PriceCents); err != nil {
			return nil, err
		}
		menuItems = append(menuItems, item)
	}
	return menuItems, rows.Err()
}

func (r *MenuItemRepository) Count(ctx context.Context) (int, error) {
	return count(ctx, r.db, "menu_items")
}

func (r *MenuItemRepository) DeleteAll(ctx context.Context) error {
	return deleteAll(ctx, r.db, "menu_items")
}
