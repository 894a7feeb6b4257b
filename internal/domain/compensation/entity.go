package compensation

import (
	"time"

	"github.com/shopspring/decimal"
)

type RuleKind string

const (
	RuleKindBenefit  RuleKind = "benefit"
	RuleKindDiscount RuleKind = "discount"
)

var RuleKindValues = []string{
	string(RuleKindBenefit),
	string(RuleKindDiscount),
}

type ValueKind string

const (
	ValueKindFixed      ValueKind = "fixed"
	ValueKindPercentage ValueKind = "percentage"
)

var ValueKindValues = []string{
	string(ValueKindFixed),
	string(ValueKindPercentage),
}

type Basis string

const (
	BasisBaseWage  Basis = "base_wage"
	BasisGrossWage Basis = "gross_wage"
)

var BasisValues = []string{
	string(BasisBaseWage),
	string(BasisGrossWage),
}

// Rule defines one benefit or discount. ExemptionThreshold zero means the
// rule always applies.
type Rule struct {
	ID                 string
	Code               string
	Name               string
	Kind               RuleKind
	ValueKind          ValueKind
	Value              decimal.Decimal
	Basis              Basis
	ExemptionThreshold decimal.Decimal
	AutoApply          bool
	Active             bool
	Note               *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// BasisValue resolves the monetary figure the rule is evaluated against.
func (r Rule) BasisValue(baseWage, grossWage decimal.Decimal) decimal.Decimal {
	switch r.Basis {
	case BasisGrossWage:
		return grossWage
	default:
		return baseWage
	}
}

// ShouldApply reports whether the rule contributes for the given basis value.
// The exemption is inclusive: a basis exactly at the threshold is exempt.
// Inactive rules never apply.
func (r Rule) ShouldApply(basisValue decimal.Decimal) bool {
	if !r.Active {
		return false
	}
	if r.ExemptionThreshold.IsPositive() && basisValue.LessThanOrEqual(r.ExemptionThreshold) {
		return false
	}
	return true
}

// Amount computes the rule's contribution for the given basis value,
// rounded half-up to the currency's two decimal places.
func (r Rule) Amount(basisValue decimal.Decimal) decimal.Decimal {
	switch r.ValueKind {
	case ValueKindFixed:
		return r.Value.Round(2)
	case ValueKindPercentage:
		return r.Value.Mul(basisValue).Div(decimal.NewFromInt(100)).Round(2)
	default:
		return decimal.Zero
	}
}
