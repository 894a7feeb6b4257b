package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/paylinehq/payroll-engine-go/internal/domain/compensation"
	"github.com/paylinehq/payroll-engine-go/internal/pkg/database"
)

type ruleRepositoryImpl struct {
	db *database.DB
}

func NewRuleRepository(db *database.DB) compensation.RuleRepository {
	return &ruleRepositoryImpl{db: db}
}

// Create implements compensation.RuleRepository.
func (r *ruleRepositoryImpl) Create(ctx context.Context, rule compensation.Rule) (compensation.Rule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO compensation_rules (
			code, name, kind, value_kind, value, basis, exemption_threshold, auto_apply, active, note
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, code, name, kind, value_kind, value, basis, exemption_threshold,
			auto_apply, active, note, created_at, updated_at
	`

	var created compensation.Rule
	err := q.QueryRow(ctx, query,
		rule.Code, rule.Name, rule.Kind, rule.ValueKind, rule.Value, rule.Basis,
		rule.ExemptionThreshold, rule.AutoApply, rule.Active, rule.Note,
	).Scan(
		&created.ID, &created.Code, &created.Name, &created.Kind, &created.ValueKind,
		&created.Value, &created.Basis, &created.ExemptionThreshold, &created.AutoApply,
		&created.Active, &created.Note, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return compensation.Rule{}, compensation.ErrRuleCodeExists
		}
		return compensation.Rule{}, err
	}

	return created, nil
}

// GetByID implements compensation.RuleRepository.
func (r *ruleRepositoryImpl) GetByID(ctx context.Context, id string) (compensation.Rule, error) {
	return r.get(ctx, "id", id)
}

// GetByCode implements compensation.RuleRepository.
func (r *ruleRepositoryImpl) GetByCode(ctx context.Context, code string) (compensation.Rule, error) {
	return r.get(ctx, "code", code)
}

func (r *ruleRepositoryImpl) get(ctx context.Context, column, value string) (compensation.Rule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, code, name, kind, value_kind, value, basis, exemption_threshold,
			auto_apply, active, note, created_at, updated_at
		FROM compensation_rules
		WHERE ` + column + ` = $1
	`

	var rule compensation.Rule
	err := q.QueryRow(ctx, query, value).Scan(
		&rule.ID, &rule.Code, &rule.Name, &rule.Kind, &rule.ValueKind, &rule.Value,
		&rule.Basis, &rule.ExemptionThreshold, &rule.AutoApply, &rule.Active,
		&rule.Note, &rule.CreatedAt, &rule.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return compensation.Rule{}, compensation.ErrRuleNotFound
		}
		return compensation.Rule{}, err
	}

	return rule, nil
}

// List implements compensation.RuleRepository.
func (r *ruleRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]compensation.Rule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, code, name, kind, value_kind, value, basis, exemption_threshold,
			auto_apply, active, note, created_at, updated_at
		FROM compensation_rules
		WHERE ($1 = FALSE OR active = TRUE)
		ORDER BY code
	`

	return r.list(ctx, q, query, activeOnly)
}

// ListAutoApply implements compensation.RuleRepository.
func (r *ruleRepositoryImpl) ListAutoApply(ctx context.Context, kind compensation.RuleKind) ([]compensation.Rule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, code, name, kind, value_kind, value, basis, exemption_threshold,
			auto_apply, active, note, created_at, updated_at
		FROM compensation_rules
		WHERE kind = $1 AND auto_apply = TRUE AND active = TRUE
		ORDER BY code
	`

	return r.list(ctx, q, query, kind)
}

func (r *ruleRepositoryImpl) list(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]compensation.Rule, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []compensation.Rule
	for rows.Next() {
		var rule compensation.Rule
		err := rows.Scan(
			&rule.ID, &rule.Code, &rule.Name, &rule.Kind, &rule.ValueKind, &rule.Value,
			&rule.Basis, &rule.ExemptionThreshold, &rule.AutoApply, &rule.Active,
			&rule.Note, &rule.CreatedAt, &rule.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return rules, nil
}

// Update implements compensation.RuleRepository.
func (r *ruleRepositoryImpl) Update(ctx context.Context, rule compensation.Rule) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE compensation_rules
		SET name = $1, value = $2, exemption_threshold = $3, auto_apply = $4,
			active = $5, note = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		rule.Name, rule.Value, rule.ExemptionThreshold, rule.AutoApply,
		rule.Active, rule.Note, rule.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return compensation.ErrRuleNotFound
		}
		return err
	}

	return nil
}
