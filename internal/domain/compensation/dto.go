package compensation

import (
	"github.com/paylinehq/payroll-engine-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateRuleRequest struct {
	Code               string           `json:"code"`
	Name               string           `json:"name"`
	Kind               string           `json:"kind"`       // "benefit" or "discount"
	ValueKind          string           `json:"value_kind"` // "fixed" or "percentage"
	Value              decimal.Decimal  `json:"value"`
	Basis              string           `json:"basis"` // "base_wage" or "gross_wage"
	ExemptionThreshold *decimal.Decimal `json:"exemption_threshold,omitempty"`
	AutoApply          bool             `json:"auto_apply"`
	Note               *string          `json:"note,omitempty"`
}

func (r *CreateRuleRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidCode(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "must be 2-10 uppercase letters or digits"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsInSlice(r.Kind, RuleKindValues) {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "must be 'benefit' or 'discount'"})
	}
	if !validator.IsInSlice(r.ValueKind, ValueKindValues) {
		errs = append(errs, validator.ValidationError{Field: "value_kind", Message: "must be 'fixed' or 'percentage'"})
	}
	if r.Basis != "" && !validator.IsInSlice(r.Basis, BasisValues) {
		errs = append(errs, validator.ValidationError{Field: "basis", Message: "must be 'base_wage' or 'gross_wage'"})
	}
	if r.Value.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "value", Message: "must be non-negative"})
	}
	if r.ExemptionThreshold != nil && r.ExemptionThreshold.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "exemption_threshold", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRuleRequest struct {
	ID                 string
	Name               *string          `json:"name,omitempty"`
	Value              *decimal.Decimal `json:"value,omitempty"`
	ExemptionThreshold *decimal.Decimal `json:"exemption_threshold,omitempty"`
	AutoApply          *bool            `json:"auto_apply,omitempty"`
	Active             *bool            `json:"active,omitempty"`
	Note               *string          `json:"note,omitempty"`
}

type RuleResponse struct {
	ID                 string          `json:"id"`
	Code               string          `json:"code"`
	Name               string          `json:"name"`
	Kind               string          `json:"kind"`
	ValueKind          string          `json:"value_kind"`
	Value              decimal.Decimal `json:"value"`
	Basis              string          `json:"basis"`
	ExemptionThreshold decimal.Decimal `json:"exemption_threshold"`
	AutoApply          bool            `json:"auto_apply"`
	Active             bool            `json:"active"`
	Note               *string         `json:"note,omitempty"`
}
