package output

import (
	"context"
	"fmt"

	"github.com/chrisdamba/cafedatasim/internal/models"
	"github.com/chrisdamba/cafedatasim/internal/repositories"
	"github.com/chrisdamba/cafedatasim/internal/repositories/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresWriter replaces the inventory, orders and tickets tables in a
// single transaction, so the database holds either the whole run or the
// previous one.
type PostgresWriter struct {
	pool *pgxpool.Pool
}

func NewPostgresWriter(ctx context.Context, config models.DatabaseConfig) (*PostgresWriter, error) {
	pool, err := postgres.Connect(ctx, config.ConnString())
	if err != nil {
		return nil, err
	}
	return &PostgresWriter{pool: pool}, nil
}

func (p *PostgresWriter) WriteDataset(ctx context.Context, ds *models.Dataset) error {
	err := postgres.InTx(ctx, p.pool, func(tx pgx.Tx) error {
		if err := postgres.EnsureSchema(ctx, tx); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
		return replaceSales(ctx, salesRepositories{
			inventory: postgres.NewInventoryRepository(tx),
			orders:    postgres.NewOrderRepository(tx),
			tickets:   postgres.NewTicketRepository(tx),
		}, ds)
	})
	if err != nil {
		return err
	}
	log.Infof("Copied %d orders, %d tickets, %d inventory rows into postgres", len(ds.Orders), len(ds.Tickets), len(ds.Inventory))
	return nil
}

func (p *PostgresWriter) Close() error {
	p.pool.Close()
	return nil
}

type salesRepositories struct {
	inventory repositories.InventoryRepository
	orders    repositories.OrderRepository
	tickets   repositories.TicketRepository
}

// replaceSales clears and reloads the sales tables, then checks every table
// holds exactly the rows of ds.
func replaceSales(ctx context.Context, repos salesRepositories, ds *models.Dataset) error {
	// tickets reference orders, so they go first on delete and last on insert
	if err := repos.tickets.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to clear tickets: %w", err)
	}
	if err := repos.orders.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to clear orders: %w", err)
	}
	if err := repos.inventory.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to clear inventory: %w", err)
	}

	if err := repos.inventory.BulkCreate(ctx, ds.Inventory); err != nil {
		return fmt.Errorf("failed to insert inventory: %w", err)
	}
	if err := repos.orders.BulkCreate(ctx, ds.Orders); err != nil {
		return fmt.Errorf("failed to insert orders: %w", err)
	}
	if err := repos.tickets.BulkCreate(ctx, ds.Tickets); err != nil {
		return fmt.Errorf("failed to insert tickets: %w", err)
	}

	checks := []struct {
		table string
		count func(context.Context) (int, error)
		want  int
	}{
		{InventoryTable, repos.inventory.Count, len(ds.Inventory)},
		{OrdersTable, repos.orders.Count, len(ds.Orders)},
		{TicketsTable, repos.tickets.Count, len(ds.Tickets)},
	}
	for _, c := range checks {
		got, err := c.count(ctx)
		if err != nil {
			return fmt.Errorf("failed to count %s: %w", c.table, err)
		}
		if got != c.want {
			return fmt.Errorf("%s holds %d rows after copy, expected %d", c.table, got, c.want)
		}
	}
	return nil
}
