package main

import (
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"gobayes/adapters/postgres"
	"gobayes/app"
	"gobayes/internal"
	"gobayes/internal/config"
	"gobayes/internal/testkit"
	"gobayes/ports"
	"gobayes/ui"
)

func main() {
	logger := internal.DefaultLogger

	// .env is optional; real environments set the variables directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration: %v", err)
	}

	var repo ports.ResultRepository
	if cfg.Database.URL != "" {
		db, err := sqlx.Connect("postgres", cfg.Database.URL)
		if err != nil {
			logger.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()
		repo = postgres.NewResultRepository(db)
		logger.Info("Persisting analyses to PostgreSQL")
	} else {
		repo = testkit.NewMemoryRepository()
		logger.Info("DATABASE_URL not set, keeping analyses in memory")
	}

	service := app.NewAnalysisService(repo, cfg.Analysis.BatchConcurrency)
	api := ui.NewApp(service)

	logger.Info("Starting API server on :%s", cfg.Server.Port)
	if err := api.Start(ui.Config{Port: cfg.Server.Port}); err != nil {
		logger.Fatal("Server failed: %v", err)
	}
}
