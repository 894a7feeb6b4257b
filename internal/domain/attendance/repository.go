package attendance

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type AttendanceRepository interface {
	// UpsertRecord inserts or overwrites the (employee, date) record.
	UpsertRecord(ctx context.Context, record Record) (Record, error)

	// ListByEmployeeRange retrieves records for an employee within [start, end].
	ListByEmployeeRange(ctx context.Context, employeeID string, start, end time.Time) ([]Record, error)

	// CountDeducting counts records whose type deducts pay within [start, end].
	CountDeducting(ctx context.Context, employeeID string, start, end time.Time) (int, error)

	// CountNonDeducting counts records whose type does not deduct pay.
	CountNonDeducting(ctx context.Context, employeeID string, start, end time.Time) (int, error)

	// CountRecords counts all records for an employee within [start, end].
	CountRecords(ctx context.Context, employeeID string, start, end time.Time) (int, error)

	// SumOvertimeHours sums overtime hours within [start, end].
	SumOvertimeHours(ctx context.Context, employeeID string, start, end time.Time) (decimal.Decimal, error)

	// Attendance type catalog
	CreateType(ctx context.Context, t AttendanceType) (AttendanceType, error)
	GetTypeByID(ctx context.Context, id string) (AttendanceType, error)
	GetTypeByCode(ctx context.Context, code string) (AttendanceType, error)
	ListTypes(ctx context.Context, activeOnly bool) ([]AttendanceType, error)
	UpdateType(ctx context.Context, t AttendanceType) error
}
