package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Rule and attendance-type codes: 2-10 chars, uppercase letters and digits.
var codeRegex = regexp.MustCompile(`^[A-Z0-9]{2,10}$`)

func IsValidCode(code string) bool {
	return codeRegex.MatchString(code)
}

// Hex display color, e.g. "#ffcc00".
var colorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func IsValidColor(color string) bool {
	return colorRegex.MatchString(color)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// Month validation, "YYYY-MM". Returns the first day of the month.
func IsValidMonth(monthStr string) (time.Time, bool) {
	month, err := time.Parse("2006-01", monthStr)
	return month, err == nil
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
