package main

import (
	"log"
	"net/http"
	"time"

	"gamevault/internal/audit"
	"gamevault/internal/auth"
	"gamevault/internal/config"
	"gamevault/internal/handlers"
	"gamevault/internal/notify"
	"gamevault/internal/service"
	"gamevault/internal/storage"
)

func main() {
	cfg := config.Load()

	if cfg.JWTSecret == "" {
		log.Fatal("[server] JWT_SECRET must be set")
	}
	if cfg.AdminPassword == "" {
		log.Fatal("[server] ADMIN_PASSWORD must be set")
	}

	store, err := storage.NewSQLite(cfg.DataDir)
	if err != nil {
		log.Fatalf("[server] failed to open storage: %v", err)
	}
	defer store.Close()

	hub := notify.NewHub()
	go hub.Run()

	sink := audit.NewSink(store, hub)
	svc := service.New(store, hub, sink)

	if err := sink.Bootstrap(); err != nil {
		log.Fatalf("[server] failed to bootstrap audit log: %v", err)
	}
	if err := svc.Bootstrap(cfg.AdminUsername, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("[server] failed to bootstrap collections: %v", err)
	}
	log.Println("[server] collections bootstrapped")

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	server := handlers.NewServer(svc, sink, hub, tokens)

	log.Printf("[server] starting on port %s", cfg.Port)
	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      server,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if err := httpServer.ListenAndServe(); err != nil {
		log.Fatalf("[server] server failed: %v", err)
	}
}
