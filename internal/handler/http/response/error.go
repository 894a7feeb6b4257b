package response

import (
	"errors"
	"net/http"

	"github.com/paylinehq/payroll-engine-go/internal/domain/attendance"
	"github.com/paylinehq/payroll-engine-go/internal/domain/compensation"
	"github.com/paylinehq/payroll-engine-go/internal/domain/employee"
	"github.com/paylinehq/payroll-engine-go/internal/domain/payperiod"
	"github.com/paylinehq/payroll-engine-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Lifecycle transition errors carry both states
	var transitionErr *payperiod.StateTransitionError
	if errors.As(err, &transitionErr) {
		Conflict(w, transitionErr.Error())
		return
	}

	switch {
	// Pay period domain errors
	case errors.Is(err, payperiod.ErrPeriodNotFound):
		NotFound(w, "Pay period not found")
	case errors.Is(err, payperiod.ErrPeriodExists):
		Conflict(w, "A pay period already exists for this month")
	case errors.Is(err, payperiod.ErrPayLineNotFound):
		NotFound(w, "Pay line not found")
	case errors.Is(err, payperiod.ErrPeriodLocked):
		Locked(w, "Pay period is closed or paid; reopen it first")
	case errors.Is(err, payperiod.ErrConcurrentModification):
		Conflict(w, "Pay period is being modified by another request")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrBranchNotFound):
		NotFound(w, "Branch not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		BadRequest(w, "Employee is inactive", nil)
	case errors.Is(err, employee.ErrNoActiveWage):
		BadRequest(w, "Employee has no active wage entry", nil)
	case errors.Is(err, employee.ErrNoPreviousWage):
		BadRequest(w, "Employee has no previous wage entry to revert to", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceTypeNotFound):
		NotFound(w, "Attendance type not found")
	case errors.Is(err, attendance.ErrAttendanceTypeCodeExists):
		Conflict(w, "Attendance type code already exists")

	// Compensation rule errors
	case errors.Is(err, compensation.ErrRuleNotFound):
		NotFound(w, "Compensation rule not found")
	case errors.Is(err, compensation.ErrRuleCodeExists):
		Conflict(w, "Compensation rule code already exists")
	case errors.Is(err, compensation.ErrRuleInactive):
		BadRequest(w, "Compensation rule is inactive", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
