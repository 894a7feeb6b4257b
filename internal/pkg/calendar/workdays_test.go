package calendar

import (
	"testing"
	"time"
)

func month(year int, m time.Month) time.Time {
	return time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
}

func TestWorkingDays(t *testing.T) {
	cases := []struct {
		name        string
		month       time.Time
		daysPerWeek int
		want        int
	}{
		{"september 2025 five-day week", month(2025, time.September), 5, 22},
		{"july 2025 five-day week", month(2025, time.July), 5, 23},
		{"august 2025 five-day week", month(2025, time.August), 5, 21},
		{"february 2025 five-day week", month(2025, time.February), 5, 20},
		{"september 2025 six-day week", month(2025, time.September), 6, 26},
		{"september 2025 seven-day week", month(2025, time.September), 7, 30},
		{"zero clamps to one day per week", month(2025, time.September), 0, 5},
		{"eight clamps to seven", month(2025, time.September), 8, 30},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := WorkingDays(c.month, c.daysPerWeek)
			if got != c.want {
				t.Errorf("WorkingDays(%v, %d) = %d, want %d", c.month, c.daysPerWeek, got, c.want)
			}
		})
	}
}

func TestMonthBounds(t *testing.T) {
	ref := time.Date(2025, time.February, 17, 14, 30, 0, 0, time.UTC)

	start := MonthStart(ref)
	if start.Day() != 1 || start.Hour() != 0 {
		t.Errorf("MonthStart(%v) = %v, want midnight on the 1st", ref, start)
	}

	end := MonthEnd(ref)
	if end.Day() != 28 {
		t.Errorf("MonthEnd(%v) = %v, want the 28th", ref, end)
	}
}

func TestSameMonth(t *testing.T) {
	a := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2025, time.March, 31, 23, 0, 0, 0, time.UTC)
	c := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	if !SameMonth(a, b) {
		t.Error("expected same month for two March 2025 dates")
	}
	if SameMonth(a, c) {
		t.Error("expected different months across years")
	}
}
