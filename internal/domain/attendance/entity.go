package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// AttendanceType classifies a day. DeductsPay drives the attendance
// deduction in pay-line computation.
type AttendanceType struct {
	ID         string
	Code       string
	Name       string
	DeductsPay bool
	Color      string
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Record holds one classification per employee per date. OvertimeHours is
// informational for the pay line; it never changes gross pay.
type Record struct {
	ID            string
	EmployeeID    string
	Date          time.Time
	TypeID        string
	Note          *string
	OvertimeHours decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined fields
	TypeCode   *string
	TypeName   *string
	DeductsPay *bool
}
