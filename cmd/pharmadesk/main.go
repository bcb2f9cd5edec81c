package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"pharmadesk/infrastructure/api"
	"pharmadesk/infrastructure/config"
	"pharmadesk/infrastructure/diag"
	httpserver "pharmadesk/infrastructure/http"
	"pharmadesk/infrastructure/sqlite"
)

func main() {
	cfg := config.Load()

	db, err := sqlite.OpenDB(cfg.SQLitePath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := sqlite.ApplyMigrations(context.Background(), db); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}

	diagSvc := diag.NewService(db)
	client := api.NewClient(cfg.APIBaseURL, diagSvc)

	server := httpserver.NewServer(cfg.Addr, client, diagSvc)
	if err := server.Start(); err != nil {
		log.Fatalf("start server: %v", err)
	}
	log.Printf("pharmadesk listening on %s (backend %s)", cfg.Addr, cfg.APIBaseURL)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	if err := server.Stop(); err != nil {
		log.Printf("graceful shutdown error: %v", err)
	}
}
