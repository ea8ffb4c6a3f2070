package main

import (
	"context"
	"flag"
	"log"

	"edugenie/internal/config"
	"edugenie/internal/database"
	"edugenie/internal/logger"

	"go.uber.org/zap"
)

func main() {
	direction := flag.String("direction", string(database.Up), "migration direction: up or down")
	flag.Parse()

	dir := database.Direction(*direction)
	if dir != database.Up && dir != database.Down {
		log.Fatalf("Unknown migration direction %q", *direction)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	db, err := database.NewPostgresDB(context.Background(), cfg.DB)
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(db.DB, dir); err != nil {
		l.Fatal("Failed to run migrations", zap.String("direction", string(dir)), zap.Error(err))
	}
}
