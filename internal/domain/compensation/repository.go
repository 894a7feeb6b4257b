package compensation

import "context"

type RuleRepository interface {
	Create(ctx context.Context, rule Rule) (Rule, error)
	GetByID(ctx context.Context, id string) (Rule, error)
	GetByCode(ctx context.Context, code string) (Rule, error)
	List(ctx context.Context, activeOnly bool) ([]Rule, error)

	// ListAutoApply retrieves active, auto-apply rules of the given kind.
	ListAutoApply(ctx context.Context, kind RuleKind) ([]Rule, error)

	Update(ctx context.Context, rule Rule) error
}
