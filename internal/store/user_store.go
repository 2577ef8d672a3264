package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type UserStore struct {
	db DB
}

func NewUserStore(db DB) *UserStore {
	return &UserStore{db: db}
}

// ResolveOrCreate returns the internal id for an external chat id,
// inserting the user row on first contact. The unique constraint on
// chat_id makes the insert a no-op for known chats, so this is safe to
// run on every inbound message.
func (s *UserStore) ResolveOrCreate(ctx context.Context, chatID string) (int64, error) {
	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO users (chat_id)
		VALUES ($1)
		ON CONFLICT (chat_id) DO NOTHING
	`, chatID); err != nil {
		return 0, err
	}
	var id int64
	if err := s.db.GetContext(ctx, &id, `SELECT id FROM users WHERE chat_id = $1`, chatID); err != nil {
		return 0, err
	}
	return id, nil
}

type UserTotals struct {
	ID        int64           `db:"id"`
	ChatID    string          `db:"chat_id"`
	CreatedAt time.Time       `db:"created_at"`
	Income    decimal.Decimal `db:"income"`
	Expense   decimal.Decimal `db:"expense"`
}

func (s *UserStore) ListWithTotals(ctx context.Context) ([]UserTotals, error) {
	var rows []UserTotals
	err := s.db.SelectContext(ctx, &rows, `
		SELECT u.id, u.chat_id, u.created_at,
		       COALESCE(SUM(CASE WHEN m.kind = 'ingreso' THEN m.amount ELSE 0 END), 0) AS income,
		       COALESCE(SUM(CASE WHEN m.kind = 'gasto' THEN m.amount ELSE 0 END), 0) AS expense
		FROM users u
		LEFT JOIN movements m ON m.user_id = u.id
		GROUP BY u.id, u.chat_id, u.created_at
		ORDER BY u.id
	`)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
