package compensation

import (
	"context"
	"errors"

	"github.com/paylinehq/payroll-engine-go/internal/domain/compensation"
	"github.com/paylinehq/payroll-engine-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type RuleServiceImpl struct {
	ruleRepo compensation.RuleRepository
}

func NewRuleService(ruleRepo compensation.RuleRepository) compensation.RuleService {
	return &RuleServiceImpl{ruleRepo: ruleRepo}
}

func (s *RuleServiceImpl) CreateRule(ctx context.Context, req compensation.CreateRuleRequest) (compensation.RuleResponse, error) {
	if err := req.Validate(); err != nil {
		return compensation.RuleResponse{}, err
	}

	_, err := s.ruleRepo.GetByCode(ctx, req.Code)
	if err == nil {
		return compensation.RuleResponse{}, compensation.ErrRuleCodeExists
	}
	if !errors.Is(err, compensation.ErrRuleNotFound) {
		return compensation.RuleResponse{}, err
	}

	basis := compensation.BasisBaseWage
	if req.Basis != "" {
		basis = compensation.Basis(req.Basis)
	}
	threshold := decimal.Zero
	if req.ExemptionThreshold != nil {
		threshold = *req.ExemptionThreshold
	}

	created, err := s.ruleRepo.Create(ctx, compensation.Rule{
		Code:               req.Code,
		Name:               req.Name,
		Kind:               compensation.RuleKind(req.Kind),
		ValueKind:          compensation.ValueKind(req.ValueKind),
		Value:              req.Value,
		Basis:              basis,
		ExemptionThreshold: threshold,
		AutoApply:          req.AutoApply,
		Active:             true,
		Note:               req.Note,
	})
	if err != nil {
		return compensation.RuleResponse{}, err
	}

	return mapRuleResponse(created), nil
}

func (s *RuleServiceImpl) GetRule(ctx context.Context, id string) (compensation.RuleResponse, error) {
	rule, err := s.ruleRepo.GetByID(ctx, id)
	if err != nil {
		return compensation.RuleResponse{}, err
	}
	return mapRuleResponse(rule), nil
}

func (s *RuleServiceImpl) ListRules(ctx context.Context, activeOnly bool) ([]compensation.RuleResponse, error) {
	rules, err := s.ruleRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	result := make([]compensation.RuleResponse, 0, len(rules))
	for _, rule := range rules {
		result = append(result, mapRuleResponse(rule))
	}
	return result, nil
}

// UpdateRule edits the rule going forward. Values already applied to pay
// lines were frozen at apply time and are not touched here.
func (s *RuleServiceImpl) UpdateRule(ctx context.Context, req compensation.UpdateRuleRequest) error {
	rule, err := s.ruleRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	if req.Name != nil {
		if validator.IsEmpty(*req.Name) {
			return validator.ValidationErrors{{Field: "name", Message: "is required"}}
		}
		rule.Name = *req.Name
	}
	if req.Value != nil {
		if req.Value.IsNegative() {
			return validator.ValidationErrors{{Field: "value", Message: "must be non-negative"}}
		}
		rule.Value = *req.Value
	}
	if req.ExemptionThreshold != nil {
		if req.ExemptionThreshold.IsNegative() {
			return validator.ValidationErrors{{Field: "exemption_threshold", Message: "must be non-negative"}}
		}
		rule.ExemptionThreshold = *req.ExemptionThreshold
	}
	if req.AutoApply != nil {
		rule.AutoApply = *req.AutoApply
	}
	if req.Active != nil {
		rule.Active = *req.Active
	}
	if req.Note != nil {
		rule.Note = req.Note
	}

	return s.ruleRepo.Update(ctx, rule)
}

func mapRuleResponse(rule compensation.Rule) compensation.RuleResponse {
	return compensation.RuleResponse{
		ID:                 rule.ID,
		Code:               rule.Code,
		Name:               rule.Name,
		Kind:               string(rule.Kind),
		ValueKind:          string(rule.ValueKind),
		Value:              rule.Value,
		Basis:              string(rule.Basis),
		ExemptionThreshold: rule.ExemptionThreshold,
		AutoApply:          rule.AutoApply,
		Active:             rule.Active,
		Note:               rule.Note,
	}
}
