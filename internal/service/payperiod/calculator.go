package payperiod

import (
	"github.com/paylinehq/payroll-engine-go/internal/domain/compensation"
	"github.com/paylinehq/payroll-engine-go/internal/domain/payperiod"
	"github.com/shopspring/decimal"
)

// LineInput is the full snapshot a single pay-line computation needs. It is
// assembled in one batch read so the computation itself stays pure.
type LineInput struct {
	EmployeeID        string
	BaseWage          decimal.Decimal
	WorkingDays       int
	DeductingAbsences int
	AttendanceRecords int
	OvertimeHours     decimal.Decimal
	HoursPerDay       decimal.Decimal
	AutoBenefits      []compensation.Rule
	AutoDiscounts     []compensation.Rule

	// Existing manual applied lines. Never overwritten, only summed.
	ManualLines []payperiod.AppliedLine
}

// LineResult carries the computed snapshot plus the auto applied lines that
// replace the previous non-manual ones.
type LineResult struct {
	EmployeeID          string
	BaseWage            decimal.Decimal
	WorkingDays         int
	DaysWorked          int
	HoursWorked         decimal.Decimal
	OvertimeHours       decimal.Decimal
	AttendanceDeduction decimal.Decimal
	BenefitsTotal       decimal.Decimal
	DiscountsTotal      decimal.Decimal
	Gross               decimal.Decimal
	Net                 decimal.Decimal
	AutoLines           []AutoLine
}

// AutoLine is an applied line produced by the auto-apply pass.
type AutoLine struct {
	RuleID        string
	ComputedValue decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// ComputeLine runs the pay-line algorithm. It is deterministic and
// idempotent: the same input always yields the same result, and recomputing
// replaces rather than accumulates. Negative net is preserved as-is.
func ComputeLine(in LineInput) LineResult {
	out := LineResult{
		EmployeeID:    in.EmployeeID,
		BaseWage:      in.BaseWage.Round(2),
		WorkingDays:   in.WorkingDays,
		OvertimeHours: in.OvertimeHours.Round(2),
	}

	out.DaysWorked = in.WorkingDays - in.DeductingAbsences
	if out.DaysWorked < 0 {
		out.DaysWorked = 0
	}
	out.HoursWorked = decimal.NewFromInt(int64(out.DaysWorked)).Mul(in.HoursPerDay).Round(2)

	// Daily wage is guarded, never raised: zero working days yields zero.
	dailyWage := decimal.Zero
	if in.WorkingDays > 0 {
		dailyWage = in.BaseWage.Div(decimal.NewFromInt(int64(in.WorkingDays))).Round(2)
	}
	out.AttendanceDeduction = dailyWage.Mul(decimal.NewFromInt(int64(in.DeductingAbsences))).Round(2)

	// First pass: benefits resolve their basis against the base wage, since
	// gross is not known yet.
	benefitsTotal := decimal.Zero
	for _, rule := range in.AutoBenefits {
		basis := rule.BasisValue(out.BaseWage, out.BaseWage)
		if !rule.ShouldApply(basis) {
			continue
		}
		value := rule.Amount(basis)
		out.AutoLines = append(out.AutoLines, AutoLine{RuleID: rule.ID, ComputedValue: value})
		benefitsTotal = benefitsTotal.Add(value)
	}
	for _, manual := range in.ManualLines {
		if manual.RuleKind != nil && *manual.RuleKind == string(compensation.RuleKindBenefit) {
			benefitsTotal = benefitsTotal.Add(manual.ComputedValue)
		}
	}
	out.BenefitsTotal = benefitsTotal

	out.Gross = out.BaseWage.Add(out.BenefitsTotal)

	// Second pass: discounts may resolve against base or gross.
	discountsTotal := out.AttendanceDeduction
	for _, rule := range in.AutoDiscounts {
		basis := rule.BasisValue(out.BaseWage, out.Gross)
		if !rule.ShouldApply(basis) {
			continue
		}
		value := rule.Amount(basis)
		out.AutoLines = append(out.AutoLines, AutoLine{RuleID: rule.ID, ComputedValue: value})
		discountsTotal = discountsTotal.Add(value)
	}
	for _, manual := range in.ManualLines {
		if manual.RuleKind != nil && *manual.RuleKind == string(compensation.RuleKindDiscount) {
			discountsTotal = discountsTotal.Add(manual.ComputedValue)
		}
	}
	out.DiscountsTotal = discountsTotal

	out.Net = out.Gross.Sub(out.DiscountsTotal)
	return out
}
