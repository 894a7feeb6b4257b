package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/paylinehq/payroll-engine-go/internal/domain/employee"
	"github.com/paylinehq/payroll-engine-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT e.id, e.code, e.full_name, e.branch_id, e.admission_date, e.termination_date,
			e.active, e.created_at, e.updated_at, b.name
		FROM employees e
		LEFT JOIN branches b ON b.id = e.branch_id
		WHERE e.id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.Code, &emp.FullName, &emp.BranchID, &emp.AdmissionDate,
		&emp.TerminationDate, &emp.Active, &emp.CreatedAt, &emp.UpdatedAt, &emp.BranchName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}

	return emp, nil
}

// ListActive implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT e.id, e.code, e.full_name, e.branch_id, e.admission_date, e.termination_date,
			e.active, e.created_at, e.updated_at, b.name
		FROM employees e
		LEFT JOIN branches b ON b.id = e.branch_id
		WHERE e.active = TRUE
		ORDER BY e.full_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.Code, &emp.FullName, &emp.BranchID, &emp.AdmissionDate,
			&emp.TerminationDate, &emp.Active, &emp.CreatedAt, &emp.UpdatedAt, &emp.BranchName,
		)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// GetBranch implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetBranch(ctx context.Context, id string) (employee.Branch, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, name, working_days_per_week, hours_per_day, created_at, updated_at
		FROM branches
		WHERE id = $1
	`

	var branch employee.Branch
	err := q.QueryRow(ctx, query, id).Scan(
		&branch.ID, &branch.Name, &branch.WorkingDaysPerWeek, &branch.HoursPerDay,
		&branch.CreatedAt, &branch.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Branch{}, employee.ErrBranchNotFound
		}
		return employee.Branch{}, err
	}

	return branch, nil
}

// GetActiveWage implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetActiveWage(ctx context.Context, employeeID string) (employee.WageHistoryEntry, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, employee_id, value, start_date, end_date, status, note, created_at
		FROM wage_history
		WHERE employee_id = $1 AND status = $2
		ORDER BY start_date DESC
		LIMIT 1
	`

	var entry employee.WageHistoryEntry
	err := q.QueryRow(ctx, query, employeeID, employee.WageStatusActive).Scan(
		&entry.ID, &entry.EmployeeID, &entry.Value, &entry.StartDate, &entry.EndDate,
		&entry.Status, &entry.Note, &entry.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.WageHistoryEntry{}, employee.ErrNoActiveWage
		}
		return employee.WageHistoryEntry{}, err
	}

	return entry, nil
}

// ListWageHistory implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListWageHistory(ctx context.Context, employeeID string) ([]employee.WageHistoryEntry, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, employee_id, value, start_date, end_date, status, note, created_at
		FROM wage_history
		WHERE employee_id = $1
		ORDER BY start_date DESC, created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []employee.WageHistoryEntry
	for rows.Next() {
		var entry employee.WageHistoryEntry
		err := rows.Scan(
			&entry.ID, &entry.EmployeeID, &entry.Value, &entry.StartDate, &entry.EndDate,
			&entry.Status, &entry.Note, &entry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// CloseActiveWage implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) CloseActiveWage(ctx context.Context, employeeID string, endDate time.Time) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE wage_history
		SET status = $1, end_date = $2
		WHERE employee_id = $3 AND status = $4
	`

	_, err := q.Exec(ctx, query, employee.WageStatusInactive, endDate, employeeID, employee.WageStatusActive)
	return err
}

// InsertWageEntry implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) InsertWageEntry(ctx context.Context, entry employee.WageHistoryEntry) (employee.WageHistoryEntry, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO wage_history (employee_id, value, start_date, end_date, status, note)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, employee_id, value, start_date, end_date, status, note, created_at
	`

	var created employee.WageHistoryEntry
	err := q.QueryRow(ctx, query,
		entry.EmployeeID, entry.Value, entry.StartDate, entry.EndDate, entry.Status, entry.Note,
	).Scan(
		&created.ID, &created.EmployeeID, &created.Value, &created.StartDate, &created.EndDate,
		&created.Status, &created.Note, &created.CreatedAt,
	)
	if err != nil {
		return employee.WageHistoryEntry{}, err
	}

	return created, nil
}
