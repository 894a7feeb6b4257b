// Package calendar provides working-day arithmetic over reference months.
package calendar

import "time"

// MonthStart returns the first day of t's month, truncated to midnight UTC.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthEnd returns the last day of t's month.
func MonthEnd(t time.Time) time.Time {
	return MonthStart(t).AddDate(0, 1, -1)
}

// WorkingDays counts the working days in the reference month for a schedule
// of daysPerWeek working days. The working week always starts on Monday:
// 5 days/week is Mon-Fri, 6 is Mon-Sat, 7 counts every day. Values outside
// 1..7 are clamped.
func WorkingDays(referenceMonth time.Time, daysPerWeek int) int {
	if daysPerWeek < 1 {
		daysPerWeek = 1
	}
	if daysPerWeek > 7 {
		daysPerWeek = 7
	}

	start := MonthStart(referenceMonth)
	end := MonthEnd(referenceMonth)

	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if isWorkingDay(d.Weekday(), daysPerWeek) {
			count++
		}
	}
	return count
}

func isWorkingDay(day time.Weekday, daysPerWeek int) bool {
	// time.Weekday starts on Sunday; shift so Monday is index 0.
	idx := (int(day) + 6) % 7
	return idx < daysPerWeek
}

// SameMonth reports whether a and b fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
