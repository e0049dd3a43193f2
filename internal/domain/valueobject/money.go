// Package valueobject contains value objects for the domain layer.
package valueobject

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ErrInvalidWholeAmount is returned when a raw amount is not a positive whole number.
var ErrInvalidWholeAmount = errors.New("amount must be a positive whole number")

var (
	hundred      = decimal.NewFromInt(100)
	rupeePrinter = message.NewPrinter(language.English)
)

// Progress returns round(100 * saved / target) using round-half-up.
// The result is not clamped, so over-saving yields values above 100.
// A non-positive target yields 0.
func Progress(saved, target int64) int {
	if target <= 0 {
		return 0
	}
	pct := decimal.NewFromInt(saved).
		Mul(hundred).
		Div(decimal.NewFromInt(target))
	return int(RoundHalfUp(pct))
}

// RoundHalfUp rounds d to the nearest integer, ties away from zero.
// All amounts in the ledger are non-negative, so this is half-up.
func RoundHalfUp(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}

// ClampPercent bounds a percentage to 0..100 for progress bars.
func ClampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// FormatRupees renders an amount as "₹50,000".
func FormatRupees(amount int64) string {
	return rupeePrinter.Sprintf("₹%d", amount)
}

// ParseWholeAmount parses a positive integer typed into a form field.
func ParseWholeAmount(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrInvalidWholeAmount
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return 0, ErrInvalidWholeAmount
	}
	return v, nil
}
