package money

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid amount")

// ParseAmount converts a user-typed amount to a decimal. Both "." and
// "," are accepted as the decimal separator. Amounts are non-negative;
// a leading minus is treated like any other malformed input.
func ParseAmount(input string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	normalized := strings.ReplaceAll(trimmed, ",", ".")
	value, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if value.IsNegative() {
		return decimal.Zero, ErrInvalidAmount
	}
	return value, nil
}

// FormatPeso renders a whole-peso figure, truncating any cents.
func FormatPeso(value decimal.Decimal) string {
	return "$" + strconv.FormatInt(value.IntPart(), 10)
}
