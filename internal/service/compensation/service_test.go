package compensation

import (
	"context"
	"testing"

	"github.com/paylinehq/payroll-engine-go/internal/domain/compensation"
	"github.com/paylinehq/payroll-engine-go/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRule(t *testing.T) {
	svc := NewRuleService(memory.NewRuleRepository())
	ctx := context.Background()

	created, err := svc.CreateRule(ctx, compensation.CreateRuleRequest{
		Code:      "INSS",
		Name:      "Social security",
		Kind:      "discount",
		ValueKind: "percentage",
		Value:     decimal.NewFromInt(5),
		AutoApply: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "INSS", created.Code)
	assert.True(t, created.Active)
	// Basis defaults to the base wage when omitted.
	assert.Equal(t, string(compensation.BasisBaseWage), created.Basis)

	_, err = svc.CreateRule(ctx, compensation.CreateRuleRequest{
		Code:      "INSS",
		Name:      "Duplicate",
		Kind:      "discount",
		ValueKind: "fixed",
		Value:     decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, compensation.ErrRuleCodeExists)
}

func TestCreateRule_Validation(t *testing.T) {
	svc := NewRuleService(memory.NewRuleRepository())

	_, err := svc.CreateRule(context.Background(), compensation.CreateRuleRequest{
		Code:      "bad code",
		Name:      "",
		Kind:      "refund",
		ValueKind: "ratio",
		Value:     decimal.NewFromInt(-1),
	})
	assert.Error(t, err)
}

func TestUpdateRule(t *testing.T) {
	repo := memory.NewRuleRepository()
	svc := NewRuleService(repo)
	ctx := context.Background()

	created, err := svc.CreateRule(ctx, compensation.CreateRuleRequest{
		Code:      "VT",
		Name:      "Transport allowance",
		Kind:      "benefit",
		ValueKind: "fixed",
		Value:     decimal.NewFromInt(300),
		AutoApply: true,
	})
	require.NoError(t, err)

	newValue := decimal.NewFromInt(350)
	inactive := false
	err = svc.UpdateRule(ctx, compensation.UpdateRuleRequest{
		ID:     created.ID,
		Value:  &newValue,
		Active: &inactive,
	})
	require.NoError(t, err)

	updated, err := svc.GetRule(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, newValue.Equal(updated.Value))
	assert.False(t, updated.Active)

	// Deactivated rules drop out of the auto-apply set.
	auto, err := repo.ListAutoApply(ctx, compensation.RuleKindBenefit)
	require.NoError(t, err)
	assert.Empty(t, auto)
}

func TestUpdateRule_NotFound(t *testing.T) {
	svc := NewRuleService(memory.NewRuleRepository())

	err := svc.UpdateRule(context.Background(), compensation.UpdateRuleRequest{ID: "missing"})
	assert.ErrorIs(t, err, compensation.ErrRuleNotFound)
}
