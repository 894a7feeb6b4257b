package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/paylinehq/payroll-engine-go/internal/domain/compensation"
)

// RuleRepository is an in-memory compensation.RuleRepository used in tests
// and local development.
type RuleRepository struct {
	mu    sync.RWMutex
	rules map[string]compensation.Rule
}

func NewRuleRepository() *RuleRepository {
	return &RuleRepository{rules: make(map[string]compensation.Rule)}
}

func (r *RuleRepository) Create(ctx context.Context, rule compensation.Rule) (compensation.Rule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.rules {
		if existing.Code == rule.Code {
			return compensation.Rule{}, compensation.ErrRuleCodeExists
		}
	}

	rule.ID = uuid.NewString()
	rule.CreatedAt = time.Now()
	rule.UpdatedAt = rule.CreatedAt
	r.rules[rule.ID] = rule
	return rule, nil
}

func (r *RuleRepository) GetByID(ctx context.Context, id string) (compensation.Rule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rule, ok := r.rules[id]
	if !ok {
		return compensation.Rule{}, compensation.ErrRuleNotFound
	}
	return rule, nil
}

func (r *RuleRepository) GetByCode(ctx context.Context, code string) (compensation.Rule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rule := range r.rules {
		if rule.Code == code {
			return rule, nil
		}
	}
	return compensation.Rule{}, compensation.ErrRuleNotFound
}

func (r *RuleRepository) List(ctx context.Context, activeOnly bool) ([]compensation.Rule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []compensation.Rule
	for _, rule := range r.rules {
		if activeOnly && !rule.Active {
			continue
		}
		result = append(result, rule)
	}
	sortRules(result)
	return result, nil
}

func (r *RuleRepository) ListAutoApply(ctx context.Context, kind compensation.RuleKind) ([]compensation.Rule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []compensation.Rule
	for _, rule := range r.rules {
		if rule.Kind == kind && rule.AutoApply && rule.Active {
			result = append(result, rule)
		}
	}
	sortRules(result)
	return result, nil
}

func (r *RuleRepository) Update(ctx context.Context, rule compensation.Rule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.rules[rule.ID]
	if !ok {
		return compensation.ErrRuleNotFound
	}
	rule.Code = existing.Code
	rule.CreatedAt = existing.CreatedAt
	rule.UpdatedAt = time.Now()
	r.rules[rule.ID] = rule
	return nil
}

func sortRules(rules []compensation.Rule) {
	sort.Slice(rules, func(i, j int) bool { return rules[i].Code < rules[j].Code })
}
