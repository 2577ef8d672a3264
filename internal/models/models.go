package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Movement kinds as stored on disk. The Spanish values match the
// command vocabulary users type.
const (
	KindIncome  = "ingreso"
	KindExpense = "gasto"
)

type User struct {
	ID        int64     `db:"id" json:"id"`
	ChatID    string    `db:"chat_id" json:"chat_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Movement is a single recorded income or expense event. Rows are
// append-only; nothing ever updates or deletes one.
type Movement struct {
	ID        string          `db:"id" json:"id"`
	UserID    int64           `db:"user_id" json:"user_id"`
	Kind      string          `db:"kind" json:"kind"`
	Amount    decimal.Decimal `db:"amount" json:"amount"`
	Category  string          `db:"category" json:"category"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
}

// Debt is an outstanding balance with its annual nominal rate (TNA),
// stored as a fraction (user enters 45, we keep 0.45). ClosedAt exists
// in the schema but no code path populates it yet.
type Debt struct {
	ID         string          `db:"id" json:"id"`
	UserID     int64           `db:"user_id" json:"user_id"`
	Name       string          `db:"name" json:"name"`
	Balance    decimal.Decimal `db:"balance" json:"balance"`
	AnnualRate decimal.Decimal `db:"annual_rate" json:"annual_rate"`
	ClosedAt   *time.Time      `db:"closed_at" json:"closed_at,omitempty"`
	CreatedAt  time.Time       `db:"created_at" json:"created_at"`
}
