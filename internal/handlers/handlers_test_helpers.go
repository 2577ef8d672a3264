package handlers

import (
	"context"
	"time"

	"copiloto/internal/config"
	"copiloto/internal/models"
	"copiloto/internal/store"
	"copiloto/internal/websocket"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func testConfig() config.Config {
	return config.Config{
		AppEnv:         "test",
		Port:           "8080",
		JWTSecret:      "secret",
		TokenTTL:       time.Minute,
		AdminPassword:  "hunter22",
		AllowedOrigins: "*",
	}
}

type stubUserStore struct {
	resolveFn func(ctx context.Context, chatID string) (int64, error)
	listFn    func(ctx context.Context) ([]store.UserTotals, error)
}

func (s stubUserStore) ResolveOrCreate(ctx context.Context, chatID string) (int64, error) {
	if s.resolveFn == nil {
		return 1, nil
	}
	return s.resolveFn(ctx, chatID)
}

func (s stubUserStore) ListWithTotals(ctx context.Context) ([]store.UserTotals, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx)
}

type stubMovementStore struct {
	listFn func(ctx context.Context, userID int64, limit, offset int) ([]models.Movement, error)
}

func (s stubMovementStore) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]models.Movement, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx, userID, limit, offset)
}

type stubDebtStore struct {
	listFn func(ctx context.Context, userID int64) ([]models.Debt, error)
}

func (s stubDebtStore) ListByUser(ctx context.Context, userID int64) ([]models.Debt, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx, userID)
}

type stubDispatcher struct {
	handleFn func(ctx context.Context, text string, userID int64) string
}

func (s stubDispatcher) Handle(ctx context.Context, text string, userID int64) string {
	if s.handleFn == nil {
		return ""
	}
	return s.handleFn(ctx, text, userID)
}

type stubSender struct {
	sent []tgbotapi.Chattable
	err  error
}

func (s *stubSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	s.sent = append(s.sent, c)
	return tgbotapi.Message{}, s.err
}

func newTestHandler(cfg config.Config, users UserStore, movements MovementStore, debts DebtStore, dispatcher Dispatcher, sender *stubSender) *Handler {
	return New(cfg, users, movements, debts, dispatcher, sender, websocket.NewHub())
}
