package employee

import "errors"

var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrBranchNotFound      = errors.New("branch not found")
	ErrNoActiveWage        = errors.New("employee has no active wage entry")
	ErrNoPreviousWage      = errors.New("employee has no previous wage entry to revert to")
	ErrEmployeeCodeExists  = errors.New("employee code already exists")
	ErrEmployeeInactive    = errors.New("employee is inactive")
	ErrWageHistoryConflict = errors.New("wage history entries overlap")
)
