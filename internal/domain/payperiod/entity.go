package payperiod

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusOpen   Status = "OPEN"
	StatusClosed Status = "CLOSED"
	StatusPaid   Status = "PAID"
)

// PayPeriod is one calendar month of payroll processing. ReferenceMonth is
// always the first day of the month. TotalsStale flips on every line-level
// edit and clears when RecomputeAll writes fresh totals.
type PayPeriod struct {
	ID             string
	ReferenceMonth time.Time
	Status         Status
	CloseDate      *time.Time
	PayDate        *time.Time
	Notes          *string
	EmployeeCount  int
	GrossTotal     decimal.Decimal
	DiscountTotal  decimal.Decimal
	NetTotal       decimal.Decimal
	TotalsStale    bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// PayLine is the per-employee computed payroll record within a period.
// All monetary fields are snapshots frozen by the last recompute.
type PayLine struct {
	ID                  string
	PayPeriodID         string
	EmployeeID          string
	BaseWage            decimal.Decimal
	WorkingDays         int
	DaysWorked          int
	HoursWorked         decimal.Decimal
	OvertimeHours       decimal.Decimal
	AttendanceDeduction decimal.Decimal
	BenefitsTotal       decimal.Decimal
	DiscountsTotal      decimal.Decimal
	Gross               decimal.Decimal
	Net                 decimal.Decimal
	CreatedAt           time.Time
	UpdatedAt           time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}

// AppliedLine is one benefit or discount applied to a pay line. The computed
// value is frozen at apply time; later rule changes never alter it. Manual
// lines survive recomputes untouched.
type AppliedLine struct {
	ID            string
	PayLineID     string
	RuleID        string
	ComputedValue decimal.Decimal
	Note          *string
	Manual        bool
	CreatedAt     time.Time

	// Joined fields
	RuleCode *string
	RuleName *string
	RuleKind *string
}

// ValidationReport is the structured outcome of Validate. Errors block
// closing; warnings do not.
type ValidationReport struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (r ValidationReport) Valid() bool {
	return len(r.Errors) == 0
}
