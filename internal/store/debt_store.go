package store

import (
	"context"
	"time"

	"copiloto/internal/models"

	"github.com/shopspring/decimal"
)

type DebtStore struct {
	db DB
}

func NewDebtStore(db DB) *DebtStore {
	return &DebtStore{db: db}
}

// Record inserts a debt. annualRate is the stored fraction (0.45 for a
// user-entered 45). closedAt stays nil until a closing flow exists.
func (s *DebtStore) Record(ctx context.Context, id string, userID int64, name string, balance, annualRate decimal.Decimal, closedAt *time.Time) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO debts (id, user_id, name, balance, annual_rate, closed_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, id, userID, name, balance, annualRate, closedAt)
	return err
}

func (s *DebtStore) ListByUser(ctx context.Context, userID int64) ([]models.Debt, error) {
	var rows []models.Debt
	err := s.db.SelectContext(ctx, &rows, `
		SELECT id, user_id, name, balance, annual_rate, closed_at, created_at
		FROM debts
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
