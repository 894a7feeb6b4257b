package payperiod

import (
	"testing"

	"github.com/paylinehq/payroll-engine-go/internal/domain/compensation"
	"github.com/paylinehq/payroll-engine-go/internal/domain/payperiod"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestComputeLine_AttendanceDeduction(t *testing.T) {
	in := LineInput{
		EmployeeID:        "emp-1",
		BaseWage:          dec("116160"),
		WorkingDays:       22,
		DeductingAbsences: 1,
		HoursPerDay:       dec("8"),
	}

	out := ComputeLine(in)

	// 116160 / 22 = 5280 daily, one absence deducted
	assert.True(t, dec("5280").Equal(out.AttendanceDeduction), "deduction = %s", out.AttendanceDeduction)
	assert.Equal(t, 21, out.DaysWorked)
	assert.True(t, dec("168").Equal(out.HoursWorked), "hours = %s", out.HoursWorked)
	assert.True(t, dec("116160").Equal(out.Gross))
	assert.True(t, dec("110880").Equal(out.Net), "net = %s", out.Net)
}

func TestComputeLine_Idempotent(t *testing.T) {
	in := LineInput{
		EmployeeID:        "emp-1",
		BaseWage:          dec("25000"),
		WorkingDays:       20,
		DeductingAbsences: 2,
		HoursPerDay:       dec("8"),
		AutoDiscounts: []compensation.Rule{{
			ID:        "r-inss",
			Kind:      compensation.RuleKindDiscount,
			ValueKind: compensation.ValueKindPercentage,
			Value:     dec("5"),
			Basis:     compensation.BasisBaseWage,
			Active:    true,
		}},
	}

	first := ComputeLine(in)
	second := ComputeLine(in)

	assert.True(t, first.Net.Equal(second.Net))
	assert.True(t, first.DiscountsTotal.Equal(second.DiscountsTotal))
	assert.Len(t, second.AutoLines, 1)
}

func TestComputeLine_PercentageDiscountWithExemption(t *testing.T) {
	rule := compensation.Rule{
		ID:                 "r-tax",
		Kind:               compensation.RuleKindDiscount,
		ValueKind:          compensation.ValueKindPercentage,
		Value:              dec("5"),
		Basis:              compensation.BasisBaseWage,
		ExemptionThreshold: dec("19000"),
		Active:             true,
	}

	above := ComputeLine(LineInput{
		BaseWage:      dec("25000"),
		WorkingDays:   22,
		HoursPerDay:   dec("8"),
		AutoDiscounts: []compensation.Rule{rule},
	})
	assert.True(t, dec("1250").Equal(above.DiscountsTotal), "discounts = %s", above.DiscountsTotal)
	assert.Len(t, above.AutoLines, 1)

	// At or below the threshold the rule is exempt entirely.
	exempt := ComputeLine(LineInput{
		BaseWage:      dec("19000"),
		WorkingDays:   22,
		HoursPerDay:   dec("8"),
		AutoDiscounts: []compensation.Rule{rule},
	})
	assert.True(t, exempt.DiscountsTotal.IsZero())
	assert.Empty(t, exempt.AutoLines)
}

func TestComputeLine_BenefitRaisesGross(t *testing.T) {
	out := ComputeLine(LineInput{
		BaseWage:    dec("10000"),
		WorkingDays: 20,
		HoursPerDay: dec("8"),
		AutoBenefits: []compensation.Rule{{
			ID:        "r-meal",
			Kind:      compensation.RuleKindBenefit,
			ValueKind: compensation.ValueKindFixed,
			Value:     dec("600"),
			Active:    true,
		}},
		AutoDiscounts: []compensation.Rule{{
			ID:        "r-pension",
			Kind:      compensation.RuleKindDiscount,
			ValueKind: compensation.ValueKindPercentage,
			Value:     dec("10"),
			Basis:     compensation.BasisGrossWage,
			Active:    true,
		}},
	})

	assert.True(t, dec("600").Equal(out.BenefitsTotal))
	assert.True(t, dec("10600").Equal(out.Gross))
	// 10% over gross, not base
	assert.True(t, dec("1060").Equal(out.DiscountsTotal), "discounts = %s", out.DiscountsTotal)
	assert.True(t, dec("9540").Equal(out.Net))
}

func TestComputeLine_ManualLinesSummedNotRecomputed(t *testing.T) {
	benefitKind := string(compensation.RuleKindBenefit)
	discountKind := string(compensation.RuleKindDiscount)

	out := ComputeLine(LineInput{
		BaseWage:    dec("8000"),
		WorkingDays: 20,
		HoursPerDay: dec("8"),
		ManualLines: []payperiod.AppliedLine{
			{RuleID: "r-bonus", ComputedValue: dec("1500"), Manual: true, RuleKind: &benefitKind},
			{RuleID: "r-advance", ComputedValue: dec("500"), Manual: true, RuleKind: &discountKind},
		},
	})

	assert.True(t, dec("1500").Equal(out.BenefitsTotal))
	assert.True(t, dec("9500").Equal(out.Gross))
	assert.True(t, dec("500").Equal(out.DiscountsTotal))
	assert.True(t, dec("9000").Equal(out.Net))
	// Manual lines never show up as auto lines.
	assert.Empty(t, out.AutoLines)
}

func TestComputeLine_NegativeNetPreserved(t *testing.T) {
	out := ComputeLine(LineInput{
		BaseWage:    dec("1000"),
		WorkingDays: 20,
		HoursPerDay: dec("8"),
		AutoDiscounts: []compensation.Rule{{
			ID:        "r-loan",
			Kind:      compensation.RuleKindDiscount,
			ValueKind: compensation.ValueKindFixed,
			Value:     dec("2500"),
			Active:    true,
		}},
	})

	assert.True(t, out.Net.IsNegative())
	assert.True(t, dec("-1500").Equal(out.Net), "net = %s", out.Net)
}

func TestComputeLine_ZeroWorkingDaysGuarded(t *testing.T) {
	out := ComputeLine(LineInput{
		BaseWage:          dec("5000"),
		WorkingDays:       0,
		DeductingAbsences: 3,
		HoursPerDay:       dec("8"),
	})

	assert.Equal(t, 0, out.DaysWorked)
	assert.True(t, out.AttendanceDeduction.IsZero())
	assert.True(t, dec("5000").Equal(out.Net))
}

func TestComputeLine_AbsencesExceedWorkingDays(t *testing.T) {
	out := ComputeLine(LineInput{
		BaseWage:          dec("4400"),
		WorkingDays:       22,
		DeductingAbsences: 25,
		HoursPerDay:       dec("8"),
	})

	assert.Equal(t, 0, out.DaysWorked)
	assert.True(t, out.HoursWorked.IsZero())
	// 200 daily * 25 absences; the deduction is not capped at the base wage.
	assert.True(t, dec("5000").Equal(out.AttendanceDeduction))
	assert.True(t, dec("-600").Equal(out.Net))
}

func TestComputeLine_HalfUpRounding(t *testing.T) {
	out := ComputeLine(LineInput{
		BaseWage:    dec("100.25"),
		WorkingDays: 22,
		HoursPerDay: dec("8"),
		AutoDiscounts: []compensation.Rule{{
			ID:        "r-fee",
			Kind:      compensation.RuleKindDiscount,
			ValueKind: compensation.ValueKindPercentage,
			Value:     dec("3"),
			Basis:     compensation.BasisBaseWage,
			Active:    true,
		}},
	})

	// 3% of 100.25 = 3.0075, rounds half-up to 3.01
	assert.True(t, dec("3.01").Equal(out.DiscountsTotal), "discounts = %s", out.DiscountsTotal)
}
