package repositories

import (
	"context"

	"github.com/chrisdamba/cafedatasim/internal/models"
)

type MenuItemRepository interface {
	BulkCreate(ctx context.Context, menuItems []models.MenuItem) error
	GetAll(ctx context.Context) ([]models.MenuItem, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type IngredientRepository interface {
	BulkCreate(ctx context.Context, ingredients []models.Ingredient) error
	GetAll(ctx context.Context) ([]models.Ingredient, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type InventoryRepository interface {
	BulkCreate(ctx context.Context, records []models.InventoryRecord) error
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type OrderRepository interface {
	BulkCreate(ctx context.Context, orders []models.Order) error
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type TicketRepository interface {
	BulkCreate(ctx context.Context, tickets []models.Ticket) error
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}
