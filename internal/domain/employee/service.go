package employee

import "context"

type EmployeeService interface {
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	ListActive(ctx context.Context) ([]EmployeeResponse, error)
	GetWageHistory(ctx context.Context, employeeID string) ([]WageHistoryEntryResponse, error)

	// ChangeWage is the only operation that rotates wage history: it closes
	// the active entry and opens a new one atomically.
	ChangeWage(ctx context.Context, req ChangeWageRequest) (WageHistoryEntryResponse, error)

	// RevertWage rotates back to the previous wage value as a new entry.
	RevertWage(ctx context.Context, req RevertWageRequest) (WageHistoryEntryResponse, error)
}
