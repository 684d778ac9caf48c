package main

import (
	"context"
	"fmt"

	"sales-analytics/internal/api"
	"sales-analytics/internal/api/handler"
	"sales-analytics/internal/config"
	"sales-analytics/internal/session"
	"sales-analytics/internal/store"
	"sales-analytics/pkg/router"
)

// @title Sales Analytics API
// @version 1.0
// @description Upload a sales file, detect column roles and read back metrics and chart series.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	cfg := config.LoadFromEnv()

	// Init upload history DB
	db, err := store.Open(cfg.DBPath)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	// In-memory sessions with background eviction
	sessions := session.NewMemoryStore(cfg.SessionTTL)
	sessions.StartSweeper(context.Background(), cfg.SweepInterval)

	h := handler.New(sessions, db)
	h.MaxUploadBytes = cfg.MaxUploadBytes

	// Create router and register routes
	r := router.New()
	api.RegisterRoutes(r, h)

	fmt.Printf("📊 Sales analytics ready, upload history at %s\n", cfg.DBPath)
	r.Start(cfg.ListenAddr)
}
