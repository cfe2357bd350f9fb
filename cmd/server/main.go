package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"hit4power/clubhouse/internal/config"
	"hit4power/clubhouse/internal/db"
	"hit4power/clubhouse/internal/logging"
	"hit4power/clubhouse/internal/routes"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Clubhouse starting up",
		"environment", cfg.AppEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	if err := cfg.EnsureDirs(); err != nil {
		logging.Fatal("Failed to create data directories", "error", err.Error())
	}

	// GORM handle first: it creates the schema the raw handle reads
	if _, err := db.InitORM(cfg); err != nil {
		logging.Fatal("Failed to open database (GORM)", "error", err.Error())
	}
	logging.Info("Database connected (GORM)")

	if err := db.Init(cfg); err != nil {
		logging.Fatal("Failed to open database (sqlx)", "error", err.Error())
	}
	logging.Info("Database connected (sqlx)")

	upSince := time.Now()

	router := routes.RegisterRoutes(cfg, upSince)

	// Metrics endpoint outside the Chi router
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)

	listenAddr := ":" + cfg.Port
	logging.Info("Server starting", "addr", listenAddr)
	log.Fatal(http.ListenAndServe(listenAddr, mux))
}
