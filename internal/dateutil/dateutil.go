// Package dateutil provides the pure date and currency computations the
// dashboard and workflows are built on.
package dateutil

import (
	"fmt"
	"math"
	"time"
)

// NotApplicable is rendered in place of a currency amount that is zero
// or absent.
const NotApplicable = "N/A"

// DaysInMonth returns the number of days in the month containing t.
func DaysInMonth(year int, month time.Month) int {
	// Day zero of the following month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// clampDay resolves a statement day against a month's actual length. A
// day past the end of the month clamps to the month's last day rather
// than rolling into the following month: a card that cuts on the 31st
// cuts on the 30th in a 30-day month.
func clampDay(year int, month time.Month, day int) int {
	if last := DaysInMonth(year, month); day > last {
		return last
	}
	return day
}

// NextStatementDate returns the first occurrence of statementDay at or
// after today. The comparison is date-only: when statementDay equals
// today's day of month the result is today. Days beyond the month's
// length clamp to the month's last day.
func NextStatementDate(statementDay int, today time.Time) time.Time {
	year, month, day := today.Date()

	if resolved := clampDay(year, month, statementDay); resolved >= day {
		return time.Date(year, month, resolved, 0, 0, 0, 0, today.Location())
	}

	firstOfNext := time.Date(year, month, 1, 0, 0, 0, 0, today.Location()).AddDate(0, 1, 0)
	year, month = firstOfNext.Year(), firstOfNext.Month()
	return time.Date(year, month, clampDay(year, month, statementDay), 0, 0, 0, 0, today.Location())
}

// RecommendedPaymentDate returns the suggested pay-by date: seven
// calendar days before the due date.
func RecommendedPaymentDate(dueDate time.Time) time.Time {
	return dueDate.AddDate(0, 0, -7)
}

// DaysUntilDue returns the number of whole days between the statement
// date and the due date, rounding any partial day up. Display only; it
// performs no validation.
func DaysUntilDue(statementDate, dueDate time.Time) int {
	return int(math.Ceil(dueDate.Sub(statementDate).Hours() / 24))
}

// FormatOrdinal renders a day of month with its English ordinal suffix
// (1st, 2nd, 3rd, 4th, ... 11th, 12th, 13th, 21st).
func FormatOrdinal(day int) string {
	j, k := day%10, day%100
	switch {
	case j == 1 && k != 11:
		return fmt.Sprintf("%dst", day)
	case j == 2 && k != 12:
		return fmt.Sprintf("%dnd", day)
	case j == 3 && k != 13:
		return fmt.Sprintf("%drd", day)
	default:
		return fmt.Sprintf("%dth", day)
	}
}

// FormatCurrency renders an amount as a fixed two-decimal dollar
// string. Zero or absent amounts render as NotApplicable rather than
// "$0.00".
func FormatCurrency(amount float64) string {
	if amount == 0 {
		return NotApplicable
	}
	return fmt.Sprintf("$%.2f", amount)
}

// FormatShortDate renders a date in the dashboard's compact "Jan 2"
// style.
func FormatShortDate(t time.Time) string {
	return t.Format("Jan 2")
}

// FormatLastFour renders masked card digits for display.
func FormatLastFour(digits string) string {
	return "•••• " + digits
}
