package handlers

import (
	"net/http"

	"copiloto/internal/auth"
	"copiloto/internal/config"
	"copiloto/internal/middleware"
	"copiloto/internal/telegram"
	"copiloto/internal/websocket"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Handler struct {
	cfg        config.Config
	users      UserStore
	movements  MovementStore
	debts      DebtStore
	dispatcher Dispatcher
	sender     telegram.Sender
	hub        *websocket.Hub
	adminHash  string
}

func New(cfg config.Config, users UserStore, movements MovementStore, debts DebtStore, dispatcher Dispatcher, sender telegram.Sender, hub *websocket.Hub) *Handler {
	// bcrypt only fails on an out-of-range cost, which DefaultCost never is.
	adminHash, _ := auth.HashPassword(cfg.AdminPassword)
	return &Handler{
		cfg:        cfg,
		users:      users,
		movements:  movements,
		debts:      debts,
		dispatcher: dispatcher,
		sender:     sender,
		hub:        hub,
		adminHash:  adminHash,
	}
}

func (h *Handler) Routes() http.Handler {
	router := chi.NewRouter()
	router.Use(chimiddleware.Logger)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{h.cfg.AllowedOrigins},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Get("/", h.Health)
	router.Get("/webhook", h.WebhookAlive)
	router.Post("/webhook", h.Webhook)
	router.Post("/auth/login", h.Login)

	router.Route("/admin", func(r chi.Router) {
		r.Use(middleware.Auth(h.cfg.JWTSecret))
		r.Get("/users", h.ListUsers)
		r.Get("/users/{id}/movements", h.ListUserMovements)
		r.Get("/users/{id}/debts", h.ListUserDebts)
	})
	router.Get("/ws/feed", h.WSFeed)

	return router
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (h *Handler) WSFeed(w http.ResponseWriter, r *http.Request) {
	if _, err := auth.ParseToken(h.cfg.JWTSecret, r.URL.Query().Get("token")); err != nil {
		respondError(w, http.StatusUnauthorized, "invalid token")
		return
	}
	websocket.ServeWS(w, r, h.hub)
}
