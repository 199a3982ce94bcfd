package utils

import (
	"time"

	"github.com/dgarcia1724/prestige-finance/internal/constants"
)

// FormatDisplayDate turns a stored "2006-01-02" date into the long
// form shown on transaction pages ("March 10, 2025"). Unparseable
// dates are shown as stored.
func FormatDisplayDate(date string) string {
	t, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		return date
	}
	return t.Format("January 2, 2006")
}
