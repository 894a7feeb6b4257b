package payperiod

import (
	"context"
	"time"
)

type PayPeriodRepository interface {
	Create(ctx context.Context, period PayPeriod) (PayPeriod, error)
	GetByID(ctx context.Context, id string) (PayPeriod, error)

	// GetByMonth retrieves the period owning the given month, if any.
	GetByMonth(ctx context.Context, referenceMonth time.Time) (PayPeriod, error)

	// GetForUpdate retrieves the period holding an exclusive row lock for the
	// duration of the surrounding transaction. Lifecycle transitions go
	// through this to serialize concurrent callers.
	GetForUpdate(ctx context.Context, id string) (PayPeriod, error)

	List(ctx context.Context) ([]PayPeriod, error)

	// UpdateLifecycle persists status, close date, pay date and notes.
	UpdateLifecycle(ctx context.Context, period PayPeriod) error

	// SaveTotals persists the aggregate totals and clears the stale flag.
	SaveTotals(ctx context.Context, period PayPeriod) error

	// MarkTotalsStale flags the period after a line-level edit.
	MarkTotalsStale(ctx context.Context, periodID string) error

	// Pay lines
	CreateLine(ctx context.Context, line PayLine) (PayLine, error)
	GetLine(ctx context.Context, periodID, employeeID string) (PayLine, error)
	ListLines(ctx context.Context, periodID string) ([]PayLine, error)

	// SaveLineComputation overwrites the line's computed fields, replaces all
	// non-manual applied lines with autoLines and leaves manual lines intact.
	SaveLineComputation(ctx context.Context, line PayLine, autoLines []AppliedLine) error

	// Applied lines
	ListAppliedLines(ctx context.Context, payLineID string) ([]AppliedLine, error)
	UpsertManualLine(ctx context.Context, line AppliedLine) (AppliedLine, error)
}
