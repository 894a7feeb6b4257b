package compensation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func percentRule(value, threshold string, basis Basis) Rule {
	return Rule{
		Code:               "IRPS",
		Name:               "Income tax",
		Kind:               RuleKindDiscount,
		ValueKind:          ValueKindPercentage,
		Value:              dec(value),
		Basis:              basis,
		ExemptionThreshold: dec(threshold),
		AutoApply:          true,
		Active:             true,
	}
}

func TestRule_ShouldApply(t *testing.T) {
	rule := percentRule("5", "19000", BasisGrossWage)

	cases := []struct {
		name  string
		basis string
		want  bool
	}{
		{"above threshold", "25000", true},
		{"exactly at threshold is exempt", "19000", false},
		{"below threshold", "15000", false},
		{"just above threshold", "19000.01", true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, rule.ShouldApply(dec(c.basis)))
		})
	}
}

func TestRule_ShouldApply_NoThreshold(t *testing.T) {
	rule := percentRule("3", "0", BasisGrossWage)

	assert.True(t, rule.ShouldApply(dec("1")))
	assert.True(t, rule.ShouldApply(dec("0")))
}

func TestRule_ShouldApply_InactiveNeverApplies(t *testing.T) {
	rule := percentRule("5", "0", BasisBaseWage)
	rule.Active = false

	assert.False(t, rule.ShouldApply(dec("25000")))
}

func TestRule_Amount_Percentage(t *testing.T) {
	rule := percentRule("5", "19000", BasisGrossWage)

	got := rule.Amount(dec("25000"))
	assert.True(t, got.Equal(dec("1250.00")), "got %s", got)
}

func TestRule_Amount_PercentageRoundsHalfUp(t *testing.T) {
	rule := percentRule("3", "0", BasisGrossWage)

	// 3% of 100.15 = 3.0045 -> 3.00; 3% of 100.25 = 3.0075 -> 3.01
	assert.True(t, rule.Amount(dec("100.15")).Equal(dec("3.00")))
	assert.True(t, rule.Amount(dec("100.25")).Equal(dec("3.01")))
}

func TestRule_Amount_Fixed(t *testing.T) {
	rule := Rule{
		Code:      "SB001",
		Kind:      RuleKindBenefit,
		ValueKind: ValueKindFixed,
		Value:     dec("2500"),
		Basis:     BasisBaseWage,
		Active:    true,
	}

	// Fixed rules ignore the basis value.
	assert.True(t, rule.Amount(dec("116160")).Equal(dec("2500.00")))
	assert.True(t, rule.Amount(decimal.Zero).Equal(dec("2500.00")))
}

func TestRule_BasisValue(t *testing.T) {
	base := dec("20000")
	gross := dec("25000")

	baseRule := percentRule("5", "0", BasisBaseWage)
	grossRule := percentRule("5", "0", BasisGrossWage)

	assert.True(t, baseRule.BasisValue(base, gross).Equal(base))
	assert.True(t, grossRule.BasisValue(base, gross).Equal(gross))
}
