package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx, so repositories
// can run either directly on the pool or inside a transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

const schema = `
CREATE TABLE IF NOT EXISTS menu_items (
    id               BIGINT PRIMARY KEY,
    name             TEXT NOT NULL,
    base_price_cents BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS ingredients (
    id           BIGINT PRIMARY KEY,
    name         TEXT NOT NULL DEFAULT '',
    qty_per_unit INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS inventory (
    id            BIGINT PRIMARY KEY,
    ingredient_id BIGINT NOT NULL,
    stock         BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS orders (
    id             BIGINT PRIMARY KEY,
    employee_id    BIGINT NOT NULL,
    customer_id    BIGINT NOT NULL,
    status         BIGINT NOT NULL,
    subtotal_cents BIGINT NOT NULL,
    tax_cents      BIGINT NOT NULL,
    total_cents    BIGINT NOT NULL,
    created_at     TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS tickets (
    id               BIGINT PRIMARY KEY,
    order_id         BIGINT NOT NULL REFERENCES orders (id),
    menu_item_id     BIGINT NOT NULL,
    qty              BIGINT NOT NULL,
    line_total_cents BIGINT NOT NULL
);
`

// EnsureSchema creates the cafe tables when they do not exist yet.
func EnsureSchema(ctx context.Context, db DBTX) error {
	_, err := db.Exec(ctx, schema)
	return err
}

func count(ctx context.Context, db DBTX, table string) (int, error) {
	var n int
	err := db.QueryRow(ctx, "SELECT COUNT(*) FROM "+pgx.Identifier{table}.Sanitize()).Scan(&n)
	return n, err
}

func deleteAll(ctx context.Context, db DBTX, table string) error {
	_, err := db.Exec(ctx, "DELETE FROM "+pgx.Identifier{table}.Sanitize())
	return err
}

// Connect opens a pool and checks the server is reachable.
func Connect(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("error pinging database: %w", err)
	}
	return pool, nil
}

// InTx runs fn inside a transaction on pool and commits only if fn succeeds.
func InTx(ctx context.Context, pool *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
