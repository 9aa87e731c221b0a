package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"stocktake/infrastructure/audit"
	"stocktake/infrastructure/cache"
	httpserver "stocktake/infrastructure/http"
	"stocktake/infrastructure/sqlite"
)

func main() {
	addr := getenv("APP_ADDR", ":8080")
	dbName := getenv("STOCKTAKE_DB", "stocktake")

	db, err := sqlite.OpenDB(dbName)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := sqlite.ApplyMigrations(context.Background(), db); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}
	if err := sqlite.SeedDemoData(context.Background(), db); err != nil {
		log.Fatalf("seed demo data: %v", err)
	}

	countStates := cache.NewCountScreenCache()
	listState := cache.NewSheetListCache()
	auditSvc := audit.NewService()

	server := httpserver.NewServer(addr, db, countStates, listState, auditSvc)
	if err := server.Start(); err != nil {
		log.Fatalf("start server: %v", err)
	}
	log.Printf("stocktake listening on %s", addr)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	if err := server.Stop(); err != nil {
		log.Printf("graceful shutdown error: %v", err)
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
