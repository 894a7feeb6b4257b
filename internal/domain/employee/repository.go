package employee

import (
	"context"
	"time"
)

type EmployeeRepository interface {
	// GetByID retrieves an employee; returns ErrEmployeeNotFound when absent.
	GetByID(ctx context.Context, id string) (Employee, error)

	// ListActive retrieves all active employees ordered by full name.
	ListActive(ctx context.Context) ([]Employee, error)

	// GetBranch retrieves the branch and its working schedule.
	GetBranch(ctx context.Context, id string) (Branch, error)

	// GetActiveWage retrieves the single active wage entry for an employee.
	// Returns ErrNoActiveWage when the employee has no wage configured.
	GetActiveWage(ctx context.Context, employeeID string) (WageHistoryEntry, error)

	// ListWageHistory retrieves all wage entries, newest first.
	ListWageHistory(ctx context.Context, employeeID string) ([]WageHistoryEntry, error)

	// CloseActiveWage marks the active entry inactive with the given end date.
	// No-op when there is no active entry.
	CloseActiveWage(ctx context.Context, employeeID string, endDate time.Time) error

	// InsertWageEntry appends a new wage entry.
	InsertWageEntry(ctx context.Context, entry WageHistoryEntry) (WageHistoryEntry, error)
}
