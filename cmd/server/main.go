package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"copiloto/internal/bot"
	"copiloto/internal/config"
	"copiloto/internal/db"
	"copiloto/internal/handlers"
	"copiloto/internal/services"
	"copiloto/internal/store"
	"copiloto/internal/telegram"
	"copiloto/internal/websocket"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer database.Close()
	if err := db.EnsureSchema(context.Background(), database); err != nil {
		log.Fatalf("failed to ensure schema: %v", err)
	}

	botAPI, err := telegram.NewBot(cfg.TelegramToken, cfg.Debug)
	if err != nil {
		log.Fatalf("failed to reach Telegram: %v", err)
	}
	log.Printf("bot authorized as @%s", botAPI.Self.UserName)

	users := store.NewUserStore(database)
	movements := store.NewMovementStore(database)
	debts := store.NewDebtStore(database)
	hub := websocket.NewHub()
	advice := services.NewAdviceService(movements)
	dispatcher := bot.NewDispatcher(movements, debts, advice, hub)

	handler := handlers.New(cfg, users, movements, debts, dispatcher, botAPI, hub)
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("copiloto webhook listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	<-shutdown

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}
}
