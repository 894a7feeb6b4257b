package payperiod

import "context"

type PayPeriodService interface {
	CreatePeriod(ctx context.Context, req CreatePeriodRequest) (PeriodResponse, error)
	ListPeriods(ctx context.Context) ([]PeriodResponse, error)

	// Enroll creates a zeroed pay line for every active employee that does
	// not yet have one. Allowed only while the period is OPEN.
	Enroll(ctx context.Context, periodID string) (EnrollResult, error)

	// RecomputeAll recomputes every line in the period and writes fresh
	// aggregate totals after all lines have been computed.
	RecomputeAll(ctx context.Context, periodID string) (RecomputeResult, error)

	// Validate collects every blocking error and warning in one pass.
	// Read-only; never mutates the period.
	Validate(ctx context.Context, periodID string) (ValidationReport, error)

	// Close transitions OPEN -> CLOSED: validate, recompute, then flip
	// status. All-or-nothing.
	Close(ctx context.Context, req CloseRequest) (CloseResult, error)

	// Reopen transitions CLOSED -> OPEN with a mandatory audited reason.
	Reopen(ctx context.Context, req ReopenRequest) (PeriodResponse, error)

	// MarkPaid transitions CLOSED -> PAID. PAID is terminal.
	MarkPaid(ctx context.Context, req MarkPaidRequest) (PeriodResponse, error)

	// AddManualLine attaches a manual applied line; never overwritten by
	// recompute. Allowed only while the period is OPEN.
	AddManualLine(ctx context.Context, req AddManualLineRequest) (PayLineResponse, error)

	// Read-only projections; never trigger recomputation.
	GetSummary(ctx context.Context, periodID string) (PeriodSummaryResponse, error)
	GetLine(ctx context.Context, periodID, employeeID string) (PayLineResponse, error)
}
