package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// BootGorm opens the gorm connection used by the staff auth vertical and
// keeps its table migrated. Member and play data stay on the pgx pool.
func BootGorm() (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(GetDatabaseURL()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm connection: %w", err)
	}

	query := `
	CREATE TABLE IF NOT EXISTS staff_users (
	id SERIAL PRIMARY KEY,
	email VARCHAR(255) NOT NULL UNIQUE,
	password VARCHAR(72) NOT NULL,
	role VARCHAR(20) NOT NULL DEFAULT 'staff',
	confirmed_at TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`
	if err := db.Exec(query).Error; err != nil {
		return nil, fmt.Errorf("failed to migrate staff_users: %w", err)
	}

	return db, nil
}
