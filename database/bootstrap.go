package database

import (
	"fmt"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"farmtwin/entities"
)

// Open opens (or creates) the sqlite database at path and migrates the schema.
// Pass ":memory:" for an ephemeral database in tests.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// single connection: sqlite serializes writes anyway, the foreign_keys
	// pragma is per-connection, and ":memory:" is per-connection too
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	// sqlite does not enforce foreign keys unless asked; cascades depend on it.
	if err := db.Exec(`PRAGMA foreign_keys = ON`).Error; err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	if err := db.AutoMigrate(
		&entities.Farm{},
		&entities.Crop{},
		&entities.Plot{},
		&entities.Sensor{},
		&entities.SensorReading{},
		&entities.Action{},
		&entities.Recommendation{},
		&entities.Prediction{},
		&entities.ActualGrid{},
		&entities.ExperimentalGrid{},
	); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}

	return db, nil
}
