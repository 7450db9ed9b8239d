package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PoolSize is the connection ceiling shared by readers and writers. The
// traveller fan-out in the bajaj package bounds itself to PoolSize-1 so the
// header row's connection is never starved.
const PoolSize = 10

// NewPool constructs a pgx connection pool using the provided connection string.
func NewPool(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	if connString == "" {
		return nil, fmt.Errorf("db: empty connection string")
	}

	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("db: parse config: %w", err)
	}
	cfg.MaxConns = PoolSize

	return pgxpool.NewWithConfig(ctx, cfg)
}
