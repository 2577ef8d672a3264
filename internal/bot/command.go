package bot

import (
	"errors"
	"strings"
	"unicode"

	"copiloto/internal/money"

	"github.com/shopspring/decimal"
)

type Intent int

const (
	IntentUnknown Intent = iota
	IntentStart
	IntentIncome
	IntentExpense
	IntentDebt
	IntentSummary
	IntentAdvice
	IntentDollar
)

// Command is one parsed user instruction. Only the fields relevant to
// the intent are populated.
type Command struct {
	Intent   Intent
	Amount   decimal.Decimal
	Category string
	DebtName string
	Balance  decimal.Decimal
	Rate     decimal.Decimal
}

const (
	usageIncome  = "Formato: /ingreso 750000"
	usageExpense = "Formato: /gasto 120000 supermercado"
	usageDebt    = "Formato: /deuda VISA 250000 45"
)

var (
	ErrMissingArgument = errors.New("missing argument")
	ErrMalformedValue  = errors.New("malformed value")
)

// UsageError reports a malformed command. Reason distinguishes a
// missing argument from a value that failed numeric conversion; the
// user-facing reply is the same usage hint either way.
type UsageError struct {
	Hint   string
	Reason error
}

func (e *UsageError) Error() string { return e.Hint }
func (e *UsageError) Unwrap() error { return e.Reason }

var hundred = decimal.NewFromInt(100)

// Parse maps raw trimmed text to a Command. Matching is prefix-based
// and case-sensitive, except for the currency lookup.
func Parse(text string) (Command, error) {
	switch {
	case text == "/start":
		return Command{Intent: IntentStart}, nil
	case strings.HasPrefix(text, "/ingreso"):
		return parseIncome(text)
	case strings.HasPrefix(text, "/gasto"):
		return parseExpense(text)
	case strings.HasPrefix(text, "/deuda"):
		return parseDebt(text)
	case text == "/resumen":
		return Command{Intent: IntentSummary}, nil
	case text == "/recomendar":
		return Command{Intent: IntentAdvice}, nil
	}
	switch strings.ToLower(text) {
	case "dolar", "/dolar", "/usd":
		return Command{Intent: IntentDollar}, nil
	}
	return Command{Intent: IntentUnknown}, nil
}

func parseIncome(text string) (Command, error) {
	parts := splitTokens(text, 1)
	if len(parts) < 2 {
		return Command{}, &UsageError{Hint: usageIncome, Reason: ErrMissingArgument}
	}
	amount, err := money.ParseAmount(parts[1])
	if err != nil {
		return Command{}, &UsageError{Hint: usageIncome, Reason: ErrMalformedValue}
	}
	return Command{Intent: IntentIncome, Amount: amount}, nil
}

func parseExpense(text string) (Command, error) {
	parts := splitTokens(text, 2)
	if len(parts) < 2 {
		return Command{}, &UsageError{Hint: usageExpense, Reason: ErrMissingArgument}
	}
	amount, err := money.ParseAmount(parts[1])
	if err != nil {
		return Command{}, &UsageError{Hint: usageExpense, Reason: ErrMalformedValue}
	}
	category := "general"
	if len(parts) > 2 {
		category = parts[2]
	}
	return Command{Intent: IntentExpense, Amount: amount, Category: category}, nil
}

func parseDebt(text string) (Command, error) {
	parts := splitTokens(text, 3)
	if len(parts) < 4 {
		return Command{}, &UsageError{Hint: usageDebt, Reason: ErrMissingArgument}
	}
	balance, err := money.ParseAmount(parts[2])
	if err != nil {
		return Command{}, &UsageError{Hint: usageDebt, Reason: ErrMalformedValue}
	}
	rate, err := money.ParseAmount(parts[3])
	if err != nil {
		return Command{}, &UsageError{Hint: usageDebt, Reason: ErrMalformedValue}
	}
	return Command{
		Intent:   IntentDebt,
		DebtName: parts[1],
		Balance:  balance,
		Rate:     rate.Div(hundred),
	}, nil
}

// splitTokens splits on runs of whitespace into at most max+1 parts;
// the final part keeps the remainder verbatim, so multi-word expense
// categories survive.
func splitTokens(text string, max int) []string {
	var parts []string
	rest := strings.TrimSpace(text)
	for i := 0; i < max && rest != ""; i++ {
		idx := strings.IndexFunc(rest, unicode.IsSpace)
		if idx < 0 {
			break
		}
		parts = append(parts, rest[:idx])
		rest = strings.TrimLeftFunc(rest[idx:], unicode.IsSpace)
	}
	if rest != "" {
		parts = append(parts, rest)
	}
	return parts
}
