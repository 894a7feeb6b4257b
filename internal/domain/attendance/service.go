package attendance

import (
	"context"
	"time"
)

type AttendanceService interface {
	// RecordAttendance upserts the (employee, date) record. Dates inside a
	// CLOSED or PAID pay period are rejected with payperiod.ErrPeriodLocked.
	RecordAttendance(ctx context.Context, req RecordAttendanceRequest) (RecordResponse, error)

	ListRecords(ctx context.Context, employeeID string, start, end time.Time) ([]RecordResponse, error)

	CreateType(ctx context.Context, req CreateAttendanceTypeRequest) (AttendanceTypeResponse, error)
	ListTypes(ctx context.Context, activeOnly bool) ([]AttendanceTypeResponse, error)
	UpdateType(ctx context.Context, req UpdateAttendanceTypeRequest) error
}
