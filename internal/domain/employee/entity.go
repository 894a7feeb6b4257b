package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID              string
	Code            string
	FullName        string
	BranchID        string
	AdmissionDate   time.Time
	TerminationDate *time.Time
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields
	BranchName *string
}

// Branch carries the working schedule used for working-day computation.
type Branch struct {
	ID                 string
	Name               string
	WorkingDaysPerWeek int // default 5 (Mon-Fri)
	HoursPerDay        decimal.Decimal
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type WageStatus string

const (
	WageStatusActive   WageStatus = "active"
	WageStatusInactive WageStatus = "inactive"
)

// WageHistoryEntry is append-only. Exactly one entry per employee is active
// at any time; rotation happens only through ChangeWage/RevertWage.
type WageHistoryEntry struct {
	ID         string
	EmployeeID string
	Value      decimal.Decimal
	StartDate  time.Time
	EndDate    *time.Time
	Status     WageStatus
	Note       *string
	CreatedAt  time.Time
}
