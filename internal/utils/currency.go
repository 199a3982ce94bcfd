package utils

import (
	"fmt"
	"strings"

	money "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/dgarcia1724/prestige-finance/internal/constants"
)

var centsPerUnit = decimal.NewFromInt(constants.CentsPerUnit)

// ParseToCents converts a user-entered decimal amount ("150", "150.5",
// "150.50") into cents. Extra fractional digits are rounded.
func ParseToCents(amountStr string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(amountStr))
	if err != nil {
		return 0, fmt.Errorf("invalid amount: %s", amountStr)
	}
	return d.Mul(centsPerUnit).Round(0).IntPart(), nil
}

// CentsFromFloat converts a decimal currency amount (a seed value such
// as 5400.89) into cents without float drift.
func CentsFromFloat(amount float64) int64 {
	return decimal.NewFromFloat(amount).Mul(centsPerUnit).Round(0).IntPart()
}

// FormatCents renders signed cents as a currency string,
// e.g. 550089 -> "$5,500.89".
func FormatCents(cents int64, currency string) string {
	return money.New(cents, currency).Display()
}

// FormatAbsCents renders the magnitude only; callers show direction
// with a separate sign or color.
func FormatAbsCents(cents int64, currency string) string {
	if cents < 0 {
		cents = -cents
	}
	return money.New(cents, currency).Display()
}
