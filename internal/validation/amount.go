// Package validation holds the input checks shared by commands and
// interactive prompts.
package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/dgarcia1724/prestige-finance/internal/constants"
	"github.com/dgarcia1724/prestige-finance/internal/utils"
)

// ParsePositiveAmount parses a user-entered amount and enforces > 0.
func ParsePositiveAmount(input string) (int64, error) {
	cents, err := utils.ParseToCents(input)
	if err != nil {
		return 0, err
	}
	if cents <= 0 {
		return 0, fmt.Errorf("amount must be greater than zero")
	}
	return cents, nil
}

// ValidateDate checks the YYYY-MM-DD layout used everywhere dates are
// typed in. Empty input is allowed; callers treat it as "unset".
func ValidateDate(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil
	}
	if _, err := time.Parse(constants.DateFormat, input); err != nil {
		return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", input)
	}
	return nil
}
