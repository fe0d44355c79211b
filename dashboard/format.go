package dashboard

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var koreanPrinter = message.NewPrinter(language.Korean)

// FormatCurrency renders a won amount in the denomination bands the dashboard
// uses: 억 (hundred million) when the value qualifies, then 만 (ten
// thousand), plain grouped digits otherwise.
func FormatCurrency(value float64) string {
	switch {
	case value >= 100_000_000:
		return fmt.Sprintf("%.1f억", value/100_000_000)
	case value >= 10_000:
		return fmt.Sprintf("%.0f만", value/10_000)
	}
	return koreanPrinter.Sprintf("%v", number.Decimal(value))
}

// DaysRemaining counts whole days from now until the program target date,
// clamped at zero once the date has passed.
func DaysRemaining(target, now time.Time) int {
	days := int(math.Ceil(target.Sub(now).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}

// formatKoreanDate renders a date the way the dashboard tables show them,
// e.g. "2025. 12. 31.".
func formatKoreanDate(t time.Time) string {
	return fmt.Sprintf("%d. %d. %d.", t.Year(), int(t.Month()), t.Day())
}
