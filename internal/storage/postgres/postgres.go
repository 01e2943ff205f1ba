// Package postgres stores converted documents in PostgreSQL using pgx v5.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/mudconvert/internal/config"
)

// ApplicationName is reported to the server for every pooled connection.
const ApplicationName = "mudconvert"

// ErrSchemaMissing is returned when the converted_documents table does not
// exist; run cmd/migrate first.
var ErrSchemaMissing = errors.New("converted_documents table missing; apply migrations")

// NewPool creates a PostgreSQL connection pool from the given configuration.
//
// Precondition: cfg must contain valid database connection parameters.
// Postcondition: Returns a connected pool or a non-nil error. The pool is ready
// for queries upon successful return.
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parsing database config: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.ConnConfig.RuntimeParams["application_name"] = ApplicationName

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return pool, nil
}

// CheckSchema verifies that migrations have created the documents table.
//
// Postcondition: Returns ErrSchemaMissing when the table is absent.
func CheckSchema(ctx context.Context, db *pgxpool.Pool) error {
	var present bool
	if err := db.QueryRow(ctx, `SELECT to_regclass('converted_documents') IS NOT NULL`).Scan(&present); err != nil {
		return fmt.Errorf("checking schema: %w", err)
	}
	if !present {
		return ErrSchemaMissing
	}
	return nil
}
