package config

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
)

func GetDatabaseURL() string {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		os.Getenv("DB_HOST"), os.Getenv("DB_PORT"), os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"), os.Getenv("DB_DATABASE"))
	return dsn
}

// StoreConfigured reports whether the required database environment is
// present. When it is not, the app must come up in its setup-required
// state instead of crashing.
func StoreConfigured() bool {
	for _, key := range []string{"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_DATABASE"} {
		if os.Getenv(key) == "" {
			return false
		}
	}
	return true
}

func BootDB(ctx context.Context) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, GetDatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

// Migrate brings the schema up on the given pool. BootDB runs it on
// startup; repository tests run it against their own database.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	// The UNIQUE constraint on card_number and the cascading foreign key
	// are what make the allocator's check-then-insert and the member
	// delete safe under concurrent staff sessions.
	query := `
	CREATE TABLE IF NOT EXISTS members (
	id UUID PRIMARY KEY,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	full_name VARCHAR(150) NOT NULL,
	card_number CHAR(4) NOT NULL UNIQUE,
	phone VARCHAR(20) NOT NULL,
	email VARCHAR(255) NOT NULL,
	validity_start TIMESTAMPTZ NOT NULL,
	validity_end TIMESTAMPTZ NOT NULL
	);

	CREATE TABLE IF NOT EXISTS play_history (
	id UUID PRIMARY KEY,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	member_id UUID NOT NULL REFERENCES members(id) ON DELETE CASCADE,
	play_date TIMESTAMPTZ NOT NULL,
	is_free_play BOOLEAN NOT NULL DEFAULT FALSE
	);

	CREATE INDEX IF NOT EXISTS idx_play_history_member_id ON play_history (member_id);
	`
	if _, err := pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
