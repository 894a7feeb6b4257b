package payperiod

import (
	"github.com/paylinehq/payroll-engine-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreatePeriodRequest struct {
	ReferenceMonth string  `json:"reference_month"` // YYYY-MM
	Notes          *string `json:"notes,omitempty"`
}

func (r *CreatePeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidMonth(r.ReferenceMonth); !ok {
		errs = append(errs, validator.ValidationError{Field: "reference_month", Message: "must be a valid month (YYYY-MM)"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CloseRequest struct {
	PeriodID string
	Note     *string `json:"note,omitempty"`
}

type ReopenRequest struct {
	PeriodID string
	Reason   string `json:"reason"`
}

func (r *ReopenRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "is required to reopen a closed period"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MarkPaidRequest struct {
	PeriodID string
	PayDate  *string `json:"pay_date,omitempty"` // YYYY-MM-DD, defaults to today
	Note     *string `json:"note,omitempty"`
}

func (r *MarkPaidRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PayDate != nil {
		if _, ok := validator.IsValidDate(*r.PayDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "pay_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AddManualLineRequest struct {
	PeriodID   string
	EmployeeID string
	RuleCode   string           `json:"rule_code"`
	Value      *decimal.Decimal `json:"value,omitempty"` // overrides the rule's computed value
	Note       *string          `json:"note,omitempty"`
}

func (r *AddManualLineRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RuleCode) {
		errs = append(errs, validator.ValidationError{Field: "rule_code", Message: "is required"})
	}
	if r.Value != nil && r.Value.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "value", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type Totals struct {
	EmployeeCount int             `json:"employee_count"`
	GrossTotal    decimal.Decimal `json:"gross_total"`
	DiscountTotal decimal.Decimal `json:"discount_total"`
	NetTotal      decimal.Decimal `json:"net_total"`
}

type PeriodResponse struct {
	ID             string  `json:"id"`
	ReferenceMonth string  `json:"reference_month"`
	Status         string  `json:"status"`
	CloseDate      *string `json:"close_date,omitempty"`
	PayDate        *string `json:"pay_date,omitempty"`
	Notes          *string `json:"notes,omitempty"`
	Totals         Totals  `json:"totals"`
	TotalsStale    bool    `json:"totals_stale"`
}

type AppliedLineResponse struct {
	RuleCode      string          `json:"rule_code"`
	RuleName      string          `json:"rule_name"`
	RuleKind      string          `json:"rule_kind"`
	ComputedValue decimal.Decimal `json:"computed_value"`
	Manual        bool            `json:"manual"`
	Note          *string         `json:"note,omitempty"`
}

type PayLineResponse struct {
	EmployeeID          string                `json:"employee_id"`
	EmployeeName        string                `json:"employee_name,omitempty"`
	EmployeeCode        string                `json:"employee_code,omitempty"`
	BaseWage            decimal.Decimal       `json:"base_wage"`
	WorkingDays         int                   `json:"working_days"`
	DaysWorked          int                   `json:"days_worked"`
	HoursWorked         decimal.Decimal       `json:"hours_worked"`
	OvertimeHours       decimal.Decimal       `json:"overtime_hours"`
	AttendanceDeduction decimal.Decimal       `json:"attendance_deduction"`
	BenefitsTotal       decimal.Decimal       `json:"benefits_total"`
	DiscountsTotal      decimal.Decimal       `json:"discounts_total"`
	Gross               decimal.Decimal       `json:"gross"`
	Net                 decimal.Decimal       `json:"net"`
	AppliedLines        []AppliedLineResponse `json:"applied_lines,omitempty"`
}

type PeriodSummaryResponse struct {
	ID             string            `json:"id"`
	ReferenceMonth string            `json:"reference_month"`
	Status         string            `json:"status"`
	Totals         Totals            `json:"totals"`
	TotalsStale    bool              `json:"totals_stale"`
	Lines          []PayLineResponse `json:"per_employee_breakdown"`
}

type CloseResult struct {
	Period   PeriodResponse `json:"period"`
	Warnings []string       `json:"warnings,omitempty"`
}

type RecomputeResult struct {
	Period       PeriodResponse `json:"period"`
	LinesUpdated int            `json:"lines_updated"`
}

type EnrollResult struct {
	Period        PeriodResponse `json:"period"`
	LinesCreated  int            `json:"lines_created"`
	LinesExisting int            `json:"lines_existing"`
}
