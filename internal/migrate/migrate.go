// Package migrate applies the knowledge base SQL schema to Postgres.
package migrate

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var defaultSchema string

var (
	ErrMissingDatabaseURL = errors.New("DATABASE_URL environment variable is not set")
	ErrMigrationFailed    = errors.New("migration failed")
)

// LoadSchema returns the SQL at path, or the embedded schema when path is empty.
func LoadSchema(path string) (string, error) {
	if path == "" {
		return defaultSchema, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read schema %s: %w", path, err)
	}
	return string(b), nil
}

// Run executes schema as a single batch. The pool is always closed before
// returning. An empty databaseURL fails before any connection is attempted.
func Run(ctx context.Context, databaseURL, schema string) error {
	if databaseURL == "" {
		return ErrMissingDatabaseURL
	}

	config, err := poolConfig(databaseURL)
	if err != nil {
		return err
	}
	config.MaxConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return fmt.Errorf("%w: create pool: %v", ErrMigrationFailed, err)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("%w: %v", ErrMigrationFailed, err)
	}
	return nil
}

// poolConfig parses databaseURL. Hosted Postgres commonly presents
// certificates that do not chain to a local root, so TLS, when negotiated,
// skips verification.
func poolConfig(databaseURL string) (*pgxpool.Config, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_URL: %w", err)
	}
	cc := config.ConnConfig
	if cc.TLSConfig != nil {
		cc.TLSConfig.InsecureSkipVerify = true
	}
	for _, fb := range cc.Fallbacks {
		if fb.TLSConfig != nil {
			fb.TLSConfig.InsecureSkipVerify = true
		}
	}
	return config, nil
}
