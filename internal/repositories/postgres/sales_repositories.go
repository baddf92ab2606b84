package postgres

import (
	"context"

	"github.com/chrisdamba/cafedatasim/internal/models"
	"github.com/jackc/pgx/v5"
)

type InventoryRepository struct {
	db DBTX
}

func NewInventoryRepository(db DBTX) *InventoryRepository {
	return &InventoryRepository{db: db}
}

func (r *InventoryRepository) BulkCreate(ctx context.Context, records []models.InventoryRecord) error {
	_, err := r.db.CopyFrom(
		ctx,
		pgx.Identifier{"inventory"},
		models.InventoryHeader,
		pgx.CopyFromSlice(len(records), func(i int) ([]interface{}, error) {
			return InventoryValues(records[i]), nil
		}),
	)
	return err
}

func (r *InventoryRepository) Count(ctx context.Context) (int, error) {
	return count(ctx, r.db, "inventory")
}

func (r *InventoryRepository) DeleteAll(ctx context.Context) error {
	return deleteAll(ctx, r.db, "inventory")
}

type OrderRepository struct {
	db DBTX
}

func NewOrderRepository(db DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) BulkCreate(ctx context.Context, orders []models.Order) error {
	_, err := r.db.CopyFrom(
		ctx,
		pgx.Identifier{"orders"},
		models.OrderHeader,
		pgx.CopyFromSlice(len(orders), func(i int) ([]interface{}, error) {
			return OrderValues(orders[i]), nil
		}),
	)
	return err
}

func (r *OrderRepository) Count(ctx context.Context) (int, error) {
	return count(ctx, r.db, "orders")
}

func (r *OrderRepository) DeleteAll(ctx context.Context) error {
	return deleteAll(ctx, r.db, "orders")
}

type TicketRepository struct {
	db DBTX
}

func NewTicketRepository(db DBTX) *TicketRepository {
	return &TicketRepository{db: db}
}

func (r *TicketRepository) BulkCreate(ctx context.Context, tickets []models.Ticket) error {
	_, err := r.db.CopyFrom(
		ctx,
		pgx.Identifier{"tickets"},
		models.TicketHeader,
		pgx.CopyFromSlice(len(tickets), func(i int) ([]interface{}, error) {
			return TicketValues(tickets[i]), nil
		}),
	)
	return err
}

func (r *TicketRepository) Count(ctx context.Context) (int, error) {
	return count(ctx, r.db, "tickets")
}

func (r *TicketRepository) DeleteAll(ctx context.Context) error {
	return deleteAll(ctx, r.db, "tickets")
}

// InventoryValues, OrderValues and TicketValues return column values in the
// order of the matching models header.
func InventoryValues(r models.InventoryRecord) []interface{} {
	return []interface{}{r.ID, r.IngredientID, r.Stock}
}

func OrderValues(o models.Order) []interface{} {
	return []interface{}{
		o.ID, o.EmployeeID, o.CustomerID, o.Status,
		o.SubtotalCents, o.TaxCents, o.TotalCents, o.CreatedAt,
	}
}

func TicketValues(t models.Ticket) []interface{} {
	return []interface{}{t.ID, t.OrderID, t.MenuItemID, t.Qty, t.LineTotalCents}
}
