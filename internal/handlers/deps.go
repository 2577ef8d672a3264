package handlers

import (
	"context"

	"copiloto/internal/models"
	"copiloto/internal/store"
)

type UserStore interface {
	ResolveOrCreate(ctx context.Context, chatID string) (int64, error)
	ListWithTotals(ctx context.Context) ([]store.UserTotals, error)
}

type MovementStore interface {
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]models.Movement, error)
}

type DebtStore interface {
	ListByUser(ctx context.Context, userID int64) ([]models.Debt, error)
}

type Dispatcher interface {
	Handle(ctx context.Context, text string, userID int64) string
}
