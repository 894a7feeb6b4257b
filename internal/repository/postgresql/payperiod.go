package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/paylinehq/payroll-engine-go/internal/domain/payperiod"
	"github.com/paylinehq/payroll-engine-go/internal/pkg/database"
)

type payPeriodRepositoryImpl struct {
	db *database.DB
}

func NewPayPeriodRepository(db *database.DB) payperiod.PayPeriodRepository {
	return &payPeriodRepositoryImpl{db: db}
}

const periodColumns = `
	id, reference_month, status, close_date, pay_date, notes,
	employee_count, gross_total, discount_total, net_total, totals_stale,
	created_at, updated_at
`

func scanPeriod(row pgx.Row) (payperiod.PayPeriod, error) {
	var p payperiod.PayPeriod
	err := row.Scan(
		&p.ID, &p.ReferenceMonth, &p.Status, &p.CloseDate, &p.PayDate, &p.Notes,
		&p.EmployeeCount, &p.GrossTotal, &p.DiscountTotal, &p.NetTotal, &p.TotalsStale,
		&p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// Create implements payperiod.PayPeriodRepository.
func (r *payPeriodRepositoryImpl) Create(ctx context.Context, period payperiod.PayPeriod) (payperiod.PayPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO pay_periods (
			reference_month, status, notes, employee_count,
			gross_total, discount_total, net_total, totals_stale
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + periodColumns

	created, err := scanPeriod(q.QueryRow(ctx, query,
		period.ReferenceMonth, period.Status, period.Notes, period.EmployeeCount,
		period.GrossTotal, period.DiscountTotal, period.NetTotal, period.TotalsStale,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return payperiod.PayPeriod{}, payperiod.ErrPeriodExists
		}
		return payperiod.PayPeriod{}, err
	}

	return created, nil
}

// GetByID implements payperiod.PayPeriodRepository.
func (r *payPeriodRepositoryImpl) GetByID(ctx context.Context, id string) (payperiod.PayPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + periodColumns + ` FROM pay_periods WHERE id = $1`

	p, err := scanPeriod(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payperiod.PayPeriod{}, payperiod.ErrPeriodNotFound
		}
		return payperiod.PayPeriod{}, err
	}

	return p, nil
}

// GetByMonth implements payperiod.PayPeriodRepository.
func (r *payPeriodRepositoryImpl) GetByMonth(ctx context.Context, referenceMonth time.Time) (payperiod.PayPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + periodColumns + ` FROM pay_periods WHERE reference_month = $1`

	p, err := scanPeriod(q.QueryRow(ctx, query, referenceMonth))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payperiod.PayPeriod{}, payperiod.ErrPeriodNotFound
		}
		return payperiod.PayPeriod{}, err
	}

	return p, nil
}

// GetForUpdate implements payperiod.PayPeriodRepository. Concurrent
// transitions queue on the row lock; the loser re-reads the new status and
// fails its state check. A configured lock_timeout surfaces as
// ErrConcurrentModification instead of queueing forever.
func (r *payPeriodRepositoryImpl) GetForUpdate(ctx context.Context, id string) (payperiod.PayPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + periodColumns + ` FROM pay_periods WHERE id = $1 FOR UPDATE`

	p, err := scanPeriod(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payperiod.PayPeriod{}, payperiod.ErrPeriodNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "55P03" {
			return payperiod.PayPeriod{}, payperiod.ErrConcurrentModification
		}
		return payperiod.PayPeriod{}, err
	}

	return p, nil
}

// List implements payperiod.PayPeriodRepository.
func (r *payPeriodRepositoryImpl) List(ctx context.Context) ([]payperiod.PayPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + periodColumns + ` FROM pay_periods ORDER BY reference_month DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var periods []payperiod.PayPeriod
	for rows.Next() {
		p, err := scanPeriod(rows)
		if err != nil {
			return nil, err
		}
		periods = append(periods, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return periods, nil
}

// UpdateLifecycle implements payperiod.PayPeriodRepository.
func (r *payPeriodRepositoryImpl) UpdateLifecycle(ctx context.Context, period payperiod.PayPeriod) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE pay_periods
		SET status = $1, close_date = $2, pay_date = $3, notes = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		period.Status, period.CloseDate, period.PayDate, period.Notes, period.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payperiod.ErrPeriodNotFound
		}
		return err
	}

	return nil
}

// SaveTotals implements payperiod.PayPeriodRepository.
func (r *payPeriodRepositoryImpl) SaveTotals(ctx context.Context, period payperiod.PayPeriod) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE pay_periods
		SET employee_count = $1, gross_total = $2, discount_total = $3, net_total = $4,
			totals_stale = FALSE, updated_at = NOW()
		WHERE id = $5
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		period.EmployeeCount, period.GrossTotal, period.DiscountTotal, period.NetTotal, period.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payperiod.ErrPeriodNotFound
		}
		return err
	}

	return nil
}

// MarkTotalsStale implements payperiod.PayPeriodRepository.
func (r *payPeriodRepositoryImpl) MarkTotalsStale(ctx context.Context, periodID string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE pay_periods SET totals_stale = TRUE, updated_at = NOW() WHERE id = $1`

	_, err := q.Exec(ctx, query, periodID)
	return err
}

const lineColumns = `
	l.id, l.pay_period_id, l.employee_id, l.base_wage, l.working_days, l.days_worked,
	l.hours_worked, l.overtime_hours, l.attendance_deduction, l.benefits_total,
	l.discounts_total, l.gross, l.net, l.created_at, l.updated_at, e.full_name, e.code
`

func scanLine(row pgx.Row) (payperiod.PayLine, error) {
	var l payperiod.PayLine
	err := row.Scan(
		&l.ID, &l.PayPeriodID, &l.EmployeeID, &l.BaseWage, &l.WorkingDays, &l.DaysWorked,
		&l.HoursWorked, &l.OvertimeHours, &l.AttendanceDeduction, &l.BenefitsTotal,
		&l.DiscountsTotal, &l.Gross, &l.Net, &l.CreatedAt, &l.UpdatedAt,
		&l.EmployeeName, &l.EmployeeCode,
	)
	return l, err
}

// CreateLine implements payperiod.PayPeriodRepository.
func (r *payPeriodRepositoryImpl) CreateLine(ctx context.Context, line payperiod.PayLine) (payperiod.PayLine, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO pay_lines (
			pay_period_id, employee_id, base_wage, working_days, days_worked,
			hours_worked, overtime_hours, attendance_deduction, benefits_total,
			discounts_total, gross, net
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, pay_period_id, employee_id, base_wage, working_days, days_worked,
			hours_worked, overtime_hours, attendance_deduction, benefits_total,
			discounts_total, gross, net, created_at, updated_at
	`

	var created payperiod.PayLine
	err := q.QueryRow(ctx, query,
		line.PayPeriodID, line.EmployeeID, line.BaseWage, line.WorkingDays, line.DaysWorked,
		line.HoursWorked, line.OvertimeHours, line.AttendanceDeduction, line.BenefitsTotal,
		line.DiscountsTotal, line.Gross, line.Net,
	).Scan(
		&created.ID, &created.PayPeriodID, &created.EmployeeID, &created.BaseWage,
		&created.WorkingDays, &created.DaysWorked, &created.HoursWorked, &created.OvertimeHours,
		&created.AttendanceDeduction, &created.BenefitsTotal, &created.DiscountsTotal,
		&created.Gross, &created.Net, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return payperiod.PayLine{}, err
	}

	return created, nil
}

// GetLine implements payperiod.PayPeriodRepository.
func (r *payPeriodRepositoryImpl) GetLine(ctx context.Context, periodID, employeeID string) (payperiod.PayLine, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + lineColumns + `
		FROM pay_lines l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.pay_period_id = $1 AND l.employee_id = $2
	`

	line, err := scanLine(q.QueryRow(ctx, query, periodID, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payperiod.PayLine{}, payperiod.ErrPayLineNotFound
		}
		return payperiod.PayLine{}, err
	}

	return line, nil
}

// ListLines implements payperiod.PayPeriodRepository.
func (r *payPeriodRepositoryImpl) ListLines(ctx context.Context, periodID string) ([]payperiod.PayLine, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + lineColumns + `
		FROM pay_lines l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.pay_period_id = $1
		ORDER BY e.full_name
	`

	rows, err := q.Query(ctx, query, periodID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []payperiod.PayLine
	for rows.Next() {
		line, err := scanLine(rows)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// SaveLineComputation implements payperiod.PayPeriodRepository. Non-manual
// applied lines are replaced wholesale; manual lines are left untouched.
func (r *payPeriodRepositoryImpl) SaveLineComputation(ctx context.Context, line payperiod.PayLine, autoLines []payperiod.AppliedLine) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE pay_lines
		SET base_wage = $1, working_days = $2, days_worked = $3, hours_worked = $4,
			overtime_hours = $5, attendance_deduction = $6, benefits_total = $7,
			discounts_total = $8, gross = $9, net = $10, updated_at = NOW()
		WHERE id = $11
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		line.BaseWage, line.WorkingDays, line.DaysWorked, line.HoursWorked,
		line.OvertimeHours, line.AttendanceDeduction, line.BenefitsTotal,
		line.DiscountsTotal, line.Gross, line.Net, line.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payperiod.ErrPayLineNotFound
		}
		return err
	}

	if _, err := q.Exec(ctx, `DELETE FROM applied_lines WHERE pay_line_id = $1 AND manual = FALSE`, line.ID); err != nil {
		return err
	}

	insert := `
		INSERT INTO applied_lines (pay_line_id, rule_id, computed_value, note, manual)
		VALUES ($1, $2, $3, $4, FALSE)
	`
	for _, al := range autoLines {
		if _, err := q.Exec(ctx, insert, line.ID, al.RuleID, al.ComputedValue, al.Note); err != nil {
			return err
		}
	}

	return nil
}

// ListAppliedLines implements payperiod.PayPeriodRepository.
func (r *payPeriodRepositoryImpl) ListAppliedLines(ctx context.Context, payLineID string) ([]payperiod.AppliedLine, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.pay_line_id, a.rule_id, a.computed_value, a.note, a.manual,
			a.created_at, c.code, c.name, c.kind
		FROM applied_lines a
		JOIN compensation_rules c ON c.id = a.rule_id
		WHERE a.pay_line_id = $1
		ORDER BY a.manual, c.code
	`

	rows, err := q.Query(ctx, query, payLineID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []payperiod.AppliedLine
	for rows.Next() {
		var al payperiod.AppliedLine
		err := rows.Scan(
			&al.ID, &al.PayLineID, &al.RuleID, &al.ComputedValue, &al.Note, &al.Manual,
			&al.CreatedAt, &al.RuleCode, &al.RuleName, &al.RuleKind,
		)
		if err != nil {
			return nil, err
		}
		lines = append(lines, al)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// UpsertManualLine implements payperiod.PayPeriodRepository. One manual line
// per (pay line, rule); re-adding replaces the value and note.
func (r *payPeriodRepositoryImpl) UpsertManualLine(ctx context.Context, line payperiod.AppliedLine) (payperiod.AppliedLine, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO applied_lines (pay_line_id, rule_id, computed_value, note, manual)
		VALUES ($1, $2, $3, $4, TRUE)
		ON CONFLICT (pay_line_id, rule_id, manual) DO UPDATE
		SET computed_value = EXCLUDED.computed_value, note = EXCLUDED.note
		RETURNING id, pay_line_id, rule_id, computed_value, note, manual, created_at
	`

	var saved payperiod.AppliedLine
	err := q.QueryRow(ctx, query,
		line.PayLineID, line.RuleID, line.ComputedValue, line.Note,
	).Scan(
		&saved.ID, &saved.PayLineID, &saved.RuleID, &saved.ComputedValue,
		&saved.Note, &saved.Manual, &saved.CreatedAt,
	)
	if err != nil {
		return payperiod.AppliedLine{}, err
	}

	saved.RuleCode = line.RuleCode
	saved.RuleName = line.RuleName
	saved.RuleKind = line.RuleKind
	return saved, nil
}
