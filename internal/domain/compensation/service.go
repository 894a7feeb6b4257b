package compensation

import "context"

type RuleService interface {
	CreateRule(ctx context.Context, req CreateRuleRequest) (RuleResponse, error)
	GetRule(ctx context.Context, id string) (RuleResponse, error)
	ListRules(ctx context.Context, activeOnly bool) ([]RuleResponse, error)
	UpdateRule(ctx context.Context, req UpdateRuleRequest) error
}
