package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidCode(t *testing.T) {
	valid := []string{"IRPS", "INSS", "SB001", "HE"}
	invalid := []string{"x", "irps", "TOO-LONG-CODE", "WITH SPACE", ""}
	for _, code := range valid {
		if !IsValidCode(code) {
			t.Errorf("IsValidCode(%q) = false, want true", code)
		}
	}
	for _, code := range invalid {
		if IsValidCode(code) {
			t.Errorf("IsValidCode(%q) = true, want false", code)
		}
	}
}

func TestIsValidColor(t *testing.T) {
	valid := []string{"#ffcc00", "#FFFFFF", "#123abc"}
	invalid := []string{"ffcc00", "#fff", "#gggggg", ""}
	for _, color := range valid {
		if !IsValidColor(color) {
			t.Errorf("IsValidColor(%q) = false, want true", color)
		}
	}
	for _, color := range invalid {
		if IsValidColor(color) {
			t.Errorf("IsValidColor(%q) = true, want false", color)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	month, ok := IsValidMonth("2025-07")
	if !ok {
		t.Fatal("IsValidMonth(\"2025-07\") = false, want true")
	}
	if month.Day() != 1 || month.Month() != 7 || month.Year() != 2025 {
		t.Errorf("IsValidMonth(\"2025-07\") = %v, want first day of July 2025", month)
	}

	for _, bad := range []string{"2025-13", "2025/07", "07-2025", ""} {
		if _, ok := IsValidMonth(bad); ok {
			t.Errorf("IsValidMonth(%q) = true, want false", bad)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-07-15"); !ok {
		t.Error("IsValidDate(\"2025-07-15\") = false, want true")
	}
	if _, ok := IsValidDate("15/07/2025"); ok {
		t.Error("IsValidDate(\"15/07/2025\") = true, want false")
	}
}
