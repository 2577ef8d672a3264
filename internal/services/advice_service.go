package services

import (
	"context"
	"fmt"

	"copiloto/internal/money"
	"copiloto/internal/store"

	"github.com/shopspring/decimal"
)

// Default assumptions when the user supplies no figures of their own:
// monthly inflation and the annual nominal rate (TNA) of a typical
// credit card.
var (
	DefaultMonthlyInflation = decimal.NewFromFloat(0.03)
	DefaultAnnualRate       = decimal.NewFromFloat(0.45)
)

var (
	monthsPerYear = decimal.NewFromInt(12)
	demoScale     = decimal.NewFromInt(100000)
)

const (
	payNowAdvice = "Pagá en pesos cuanto antes; financiar cuesta más que la inflación."
	deferAdvice  = "Podés diferir parte del pago en pesos; el costo estimado es menor que la inflación."
)

type SummaryStore interface {
	Summarize(ctx context.Context, userID int64) (store.Summary, error)
}

type AdviceService struct {
	movements SummaryStore
}

func NewAdviceService(movements SummaryStore) *AdviceService {
	return &AdviceService{movements: movements}
}

func (s *AdviceService) Recommend(ctx context.Context, userID int64) (string, error) {
	return s.RecommendWith(ctx, userID, DefaultMonthlyInflation, DefaultAnnualRate)
}

// RecommendWith compares the monthly financing cost of the annual
// nominal rate against monthly inflation and suggests paying now or
// deferring. The savings figure is an illustrative demo value scaled by
// an arbitrary constant, not a projection.
func (s *AdviceService) RecommendWith(ctx context.Context, userID int64, monthlyInflation, annualRate decimal.Decimal) (string, error) {
	monthlyCost := annualRate.Div(monthsPerYear)
	advice := deferAdvice
	if monthlyCost.GreaterThan(monthlyInflation) {
		advice = payNowAdvice
	}
	summary, err := s.movements.Summarize(ctx, userID)
	if err != nil {
		return "", err
	}
	savings := monthlyCost.Sub(monthlyInflation).Mul(demoScale).IntPart()
	if savings < 0 {
		savings = 0
	}
	return fmt.Sprintf("%s\nIngresos mes: %s | Gastos mes: %s\nAhorro estimado (demo): $%d",
		advice,
		money.FormatPeso(summary.Income),
		money.FormatPeso(summary.Expense),
		savings), nil
}
