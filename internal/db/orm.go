package db

import (
	"fmt"

	"hit4power/clubhouse/internal/config"
	"hit4power/clubhouse/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var ORM *gorm.DB

// InitORM opens the GORM handle and creates the schema. Defaults to a
// sqlite file under the data dir; uses Postgres when PG_HOST is set.
func InitORM(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if cfg.UsePostgres() {
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
			cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDatabase)
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(cfg.SQLitePath())
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	ORM = db
	return db, nil
}

// Migrate creates or updates the schema for all entities.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Instructor{},
		&models.Player{},
		&models.InstructorPlayer{},
		&models.Metric{},
		&models.CoachNote{},
		&models.Drill{},
		&models.AssignedDrill{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
