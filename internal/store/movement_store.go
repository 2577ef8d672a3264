package store

import (
	"context"

	"copiloto/internal/models"

	"github.com/shopspring/decimal"
)

type MovementStore struct {
	db DB
}

func NewMovementStore(db DB) *MovementStore {
	return &MovementStore{db: db}
}

func (s *MovementStore) Record(ctx context.Context, id string, userID int64, kind string, amount decimal.Decimal, category string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO movements (id, user_id, kind, amount, category)
		VALUES ($1, $2, $3, $4, $5)
	`, id, userID, kind, amount, category)
	return err
}

type Summary struct {
	Income  decimal.Decimal `db:"income"`
	Expense decimal.Decimal `db:"expense"`
}

// Summarize sums every movement ever recorded for the user. The
// COALESCE keeps both totals at zero for users with no rows yet.
func (s *MovementStore) Summarize(ctx context.Context, userID int64) (Summary, error) {
	var summary Summary
	err := s.db.GetContext(ctx, &summary, `
		SELECT COALESCE(SUM(CASE WHEN kind = 'ingreso' THEN amount ELSE 0 END), 0) AS income,
		       COALESCE(SUM(CASE WHEN kind = 'gasto' THEN amount ELSE 0 END), 0) AS expense
		FROM movements
		WHERE user_id = $1
	`, userID)
	if err != nil {
		return Summary{}, err
	}
	return summary, nil
}

func (s *MovementStore) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]models.Movement, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	var rows []models.Movement
	err := s.db.SelectContext(ctx, &rows, `
		SELECT id, user_id, kind, amount, category, created_at
		FROM movements
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
