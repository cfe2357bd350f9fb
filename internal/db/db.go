package db

import (
	"fmt"
	"time"

	"hit4power/clubhouse/internal/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

var DB *sqlx.DB

// Init opens the raw sqlx handle used for health pings and the chart
// series query. Shares the same database as the GORM handle.
func Init(cfg *config.Config) error {
	driver, dsn := dataSource(cfg)

	var err error
	for i := 0; i < 10; i++ {
		DB, err = sqlx.Connect(driver, dsn)
		if err == nil {
			return nil
		}
		time.Sleep(500 * time.Millisecond)
	}
	return err
}

func dataSource(cfg *config.Config) (driver, dsn string) {
	if cfg.UsePostgres() {
		return "postgres", fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
			cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDatabase)
	}
	return "sqlite3", cfg.SQLitePath()
}
