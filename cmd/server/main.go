package main

import (
	"log"

	"medbid-backend/internal/config"
	"medbid-backend/internal/database"
	"medbid-backend/internal/server"
	"medbid-backend/internal/store"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("cannot connect to database", zap.Error(err))
	}

	srv := server.New(cfg, store.New(db), logger)
	if err := srv.Run(); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
