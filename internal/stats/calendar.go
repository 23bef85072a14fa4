package stats

import (
	"fmt"
	"time"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
)

// formatDate renders a calendar date as YYYY-MM-DD in t's location.
// ISO date strings compare lexicographically in chronological order, so all
// date arithmetic below is done on strings rather than re-parsing, which
// avoids timezone drift.
func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// monthBounds returns the first and last day of t's calendar month as date
// strings (both inclusive)
func monthBounds(t time.Time) (string, string) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 1, -1)
	return start.Format(dateLayout), end.Format(dateLayout)
}

// monthStart returns the first day of the month i months before t's month
// (i == 0 is the current month)
func monthStart(t time.Time, i int) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, -i, 0)
}

// hourLabel converts a 24h hour to its 12-hour clock label: 0 -> 12am,
// 12 -> 12pm
func hourLabel(hour int) string {
	switch {
	case hour == 0:
		return "12am"
	case hour < 12:
		return fmt.Sprintf("%dam", hour)
	case hour == 12:
		return "12pm"
	default:
		return fmt.Sprintf("%dpm", hour-12)
	}
}

// dayName returns the English weekday name for a 0-6 day index (0 = Sunday)
func dayName(day int) string {
	return time.Weekday(day).String()
}
