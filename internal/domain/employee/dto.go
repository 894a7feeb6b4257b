package employee

import (
	"github.com/paylinehq/payroll-engine-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type EmployeeResponse struct {
	ID              string  `json:"id"`
	Code            string  `json:"code"`
	FullName        string  `json:"full_name"`
	BranchID        string  `json:"branch_id"`
	BranchName      *string `json:"branch_name,omitempty"`
	AdmissionDate   string  `json:"admission_date"`
	TerminationDate *string `json:"termination_date,omitempty"`
	Active          bool    `json:"active"`
}

type WageHistoryEntryResponse struct {
	ID        string          `json:"id"`
	Value     decimal.Decimal `json:"value"`
	StartDate string          `json:"start_date"`
	EndDate   *string         `json:"end_date,omitempty"`
	Status    string          `json:"status"`
	Note      *string         `json:"note,omitempty"`
}

type ChangeWageRequest struct {
	EmployeeID string          `json:"-"`
	NewValue   decimal.Decimal `json:"new_value"`
	Note       *string         `json:"note,omitempty"`
}

func (r *ChangeWageRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.NewValue.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "new_value", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RevertWageRequest struct {
	EmployeeID string  `json:"-"`
	Note       *string `json:"note,omitempty"`
}
