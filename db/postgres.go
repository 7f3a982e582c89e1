package db

import (
	"context"
	"fmt"

	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresDB struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

func newPostgres(ctx context.Context, connString string, clock clock.Clock) (DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	ddl, err := schemaFor("postgres.sql")
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("error reading postgres schema: %w", err)
	}
	if _, err := pool.Exec(ctx, ddl); err != nil {
		pool.Close()
		return nil, fmt.Errorf("error applying postgres schema: %w", err)
	}

	return &postgresDB{pool: pool, clock: clock}, nil
}

func (db *postgresDB) Close() {
	db.pool.Close()
}
