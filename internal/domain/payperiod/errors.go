package payperiod

import (
	"errors"
	"fmt"
)

var (
	ErrPeriodNotFound  = errors.New("pay period not found")
	ErrPeriodExists    = errors.New("pay period already exists for this month")
	ErrPayLineNotFound = errors.New("pay line not found")

	// ErrPeriodLocked rejects line-level edits (attendance, manual lines)
	// against a CLOSED or PAID period.
	ErrPeriodLocked = errors.New("pay period is closed for this date")

	// ErrConcurrentModification signals a lost race for the period-level lock.
	ErrConcurrentModification = errors.New("pay period is being modified by another operation")
)

// StateTransitionError reports a lifecycle operation attempted from the
// wrong state. The period is always left unchanged.
type StateTransitionError struct {
	Current   Status
	Attempted Status
}

func (e *StateTransitionError) Error() string {
	return fmt.Sprintf("invalid pay period transition: %s -> %s", e.Current, e.Attempted)
}
