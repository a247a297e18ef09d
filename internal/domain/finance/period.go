package finance

import (
	"fmt"
	"time"
)

// monthKeyLayout is the canonical YYYY-MM month key format. Keys sort
// lexicographically in chronological order, so string comparison is used for
// billing-period range filters.
const monthKeyLayout = "2006-01"

// MonthKey returns the zero-padded YYYY-MM key for the calendar month
// containing the given date.
func MonthKey(date time.Time) string {
	return date.Format(monthKeyLayout)
}

// MonthStart returns the first day of the calendar month containing the given
// date, at midnight in the date's location.
func MonthStart(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// MonthsSpanned returns the inclusive count of whole calendar months touched
// by [from, to], regardless of day-of-month. A range within a single month
// spans 1 month. This is the pro-rating divisor for period-scoped reports.
func MonthsSpanned(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month()) + 1
}

// MonthSeries returns the first days of `count` consecutive calendar months
// starting with the month containing `start`. Month arithmetic is done from
// the month start so that end-of-month dates cannot skew the grid.
func MonthSeries(start time.Time, count int) []time.Time {
	base := MonthStart(start)
	months := make([]time.Time, 0, count)
	for i := 0; i < count; i++ {
		months = append(months, base.AddDate(0, i, 0))
	}
	return months
}

// TrailingMonths returns the first days of the `count` calendar months ending
// with the month containing `end`, in chronological order.
func TrailingMonths(end time.Time, count int) []time.Time {
	base := MonthStart(end)
	months := make([]time.Time, 0, count)
	for i := count - 1; i >= 0; i-- {
		months = append(months, base.AddDate(0, -i, 0))
	}
	return months
}

// MonthLabel returns a short human-readable label for the month containing the
// given date, e.g. "Mar 2025".
func MonthLabel(date time.Time) string {
	return fmt.Sprintf("%s %d", date.Month().String()[:3], date.Year())
}
