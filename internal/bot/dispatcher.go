package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"copiloto/internal/models"
	"copiloto/internal/money"
	"copiloto/internal/store"
	"copiloto/internal/websocket"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	helpReply = "¡Hola! Soy tu Copiloto Financiero 🇦🇷.\n" +
		"Comandos:\n" +
		"• /ingreso 750000\n• /gasto 120000 supermercado\n" +
		"• /deuda VISA 250000 45\n• /resumen\n• /recomendar\n• /dolar"
	dollarReply   = "Dólar (mock): Oficial $1000 | MEP $1250 | Blue $1280"
	fallbackReply = "No te entendí. Probá /start"
)

// Replies for storage trouble. The webhook still acknowledges the
// update with 200 so Telegram does not re-deliver it.
const (
	StorageFailureReply = "⚠️ No pude guardar eso. Probá de nuevo en un rato."
	readFailureReply    = "⚠️ No pude leer tus datos. Probá de nuevo en un rato."
)

type MovementStore interface {
	Record(ctx context.Context, id string, userID int64, kind string, amount decimal.Decimal, category string) error
	Summarize(ctx context.Context, userID int64) (store.Summary, error)
}

type DebtStore interface {
	Record(ctx context.Context, id string, userID int64, name string, balance, annualRate decimal.Decimal, closedAt *time.Time) error
}

type AdviceService interface {
	Recommend(ctx context.Context, userID int64) (string, error)
}

type FeedHub interface {
	BroadcastMovement(event websocket.MovementEvent)
}

type Dispatcher struct {
	movements MovementStore
	debts     DebtStore
	advice    AdviceService
	hub       FeedHub
}

func NewDispatcher(movements MovementStore, debts DebtStore, advice AdviceService, hub FeedHub) *Dispatcher {
	return &Dispatcher{
		movements: movements,
		debts:     debts,
		advice:    advice,
		hub:       hub,
	}
}

// Handle produces the reply for one inbound message. It never returns
// an error to the caller: malformed commands get their usage hint and
// storage failures get a generic apology, with the cause logged.
func (d *Dispatcher) Handle(ctx context.Context, text string, userID int64) string {
	cmd, err := Parse(text)
	if err != nil {
		var usage *UsageError
		if errors.As(err, &usage) {
			return usage.Hint
		}
		return fallbackReply
	}
	switch cmd.Intent {
	case IntentStart:
		return helpReply
	case IntentIncome:
		if err := d.recordMovement(ctx, userID, models.KindIncome, cmd.Amount, "general"); err != nil {
			log.Printf("record income for user %d: %v", userID, err)
			return StorageFailureReply
		}
		return "Ingreso registrado ✅"
	case IntentExpense:
		if err := d.recordMovement(ctx, userID, models.KindExpense, cmd.Amount, cmd.Category); err != nil {
			log.Printf("record expense for user %d: %v", userID, err)
			return StorageFailureReply
		}
		return fmt.Sprintf("Gasto registrado ✅ (%s)", cmd.Category)
	case IntentDebt:
		if err := d.debts.Record(ctx, uuid.NewString(), userID, cmd.DebtName, cmd.Balance, cmd.Rate, nil); err != nil {
			log.Printf("record debt for user %d: %v", userID, err)
			return StorageFailureReply
		}
		return "Deuda registrada ✅"
	case IntentSummary:
		summary, err := d.movements.Summarize(ctx, userID)
		if err != nil {
			log.Printf("summarize user %d: %v", userID, err)
			return readFailureReply
		}
		return fmt.Sprintf("Resumen mensual:\nIngresos: %s\nGastos: %s\nBalance: %s",
			money.FormatPeso(summary.Income),
			money.FormatPeso(summary.Expense),
			money.FormatPeso(summary.Income.Sub(summary.Expense)))
	case IntentAdvice:
		reply, err := d.advice.Recommend(ctx, userID)
		if err != nil {
			log.Printf("recommend for user %d: %v", userID, err)
			return readFailureReply
		}
		return reply
	case IntentDollar:
		return dollarReply
	}
	return fallbackReply
}

func (d *Dispatcher) recordMovement(ctx context.Context, userID int64, kind string, amount decimal.Decimal, category string) error {
	if err := d.movements.Record(ctx, uuid.NewString(), userID, kind, amount, category); err != nil {
		return err
	}
	if d.hub != nil {
		d.hub.BroadcastMovement(websocket.MovementEvent{
			UserID:   userID,
			Kind:     kind,
			Amount:   amount.String(),
			Category: category,
		})
	}
	return nil
}
