package postgres

import (
	"fmt"

	"warehouse/internal/adapters/out/postgres/completedrepo"
	"warehouse/internal/adapters/out/postgres/snapshotrepo"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects to the database described by dsn.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	return db, nil
}

// Migrate creates or updates every table the repositories use.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&snapshotrepo.InventorySnapshotDTO{},
		&snapshotrepo.InventoryLevelDTO{},
		&completedrepo.CompletedRequestDTO{},
		&completedrepo.CompletedOrderDTO{},
	)
}

// DSN builds a key/value connection string.
func DSN(host, port, user, password, name, sslmode string) string {
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, name, sslmode)
}
