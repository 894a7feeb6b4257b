package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/paylinehq/payroll-engine-go/internal/domain/attendance"
	"github.com/paylinehq/payroll-engine-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// UpsertRecord implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) UpsertRecord(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (employee_id, date, type_id, note, overtime_hours)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (employee_id, date) DO UPDATE
		SET type_id = EXCLUDED.type_id,
			note = EXCLUDED.note,
			overtime_hours = EXCLUDED.overtime_hours,
			updated_at = NOW()
		RETURNING id, employee_id, date, type_id, note, overtime_hours, created_at, updated_at
	`

	var saved attendance.Record
	err := q.QueryRow(ctx, query,
		record.EmployeeID, record.Date, record.TypeID, record.Note, record.OvertimeHours,
	).Scan(
		&saved.ID, &saved.EmployeeID, &saved.Date, &saved.TypeID, &saved.Note,
		&saved.OvertimeHours, &saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return attendance.Record{}, err
	}

	return saved, nil
}

// ListByEmployeeRange implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) ListByEmployeeRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT r.id, r.employee_id, r.date, r.type_id, r.note, r.overtime_hours,
			r.created_at, r.updated_at, t.code, t.name, t.deducts_pay
		FROM attendance_records r
		JOIN attendance_types t ON t.id = r.type_id
		WHERE r.employee_id = $1 AND r.date BETWEEN $2 AND $3
		ORDER BY r.date
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var r attendance.Record
		err := rows.Scan(
			&r.ID, &r.EmployeeID, &r.Date, &r.TypeID, &r.Note, &r.OvertimeHours,
			&r.CreatedAt, &r.UpdatedAt, &r.TypeCode, &r.TypeName, &r.DeductsPay,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func (a *attendanceRepositoryImpl) countByDeduction(ctx context.Context, employeeID string, start, end time.Time, deductsPay bool) (int, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT COUNT(*)
		FROM attendance_records r
		JOIN attendance_types t ON t.id = r.type_id
		WHERE r.employee_id = $1 AND r.date BETWEEN $2 AND $3 AND t.deducts_pay = $4
	`

	var count int
	if err := q.QueryRow(ctx, query, employeeID, start, end, deductsPay).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// CountDeducting implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) CountDeducting(ctx context.Context, employeeID string, start, end time.Time) (int, error) {
	return a.countByDeduction(ctx, employeeID, start, end, true)
}

// CountNonDeducting implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) CountNonDeducting(ctx context.Context, employeeID string, start, end time.Time) (int, error) {
	return a.countByDeduction(ctx, employeeID, start, end, false)
}

// CountRecords implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) CountRecords(ctx context.Context, employeeID string, start, end time.Time) (int, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT COUNT(*)
		FROM attendance_records
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3
	`

	var count int
	if err := q.QueryRow(ctx, query, employeeID, start, end).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// SumOvertimeHours implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) SumOvertimeHours(ctx context.Context, employeeID string, start, end time.Time) (decimal.Decimal, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT COALESCE(SUM(overtime_hours), 0)
		FROM attendance_records
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3
	`

	var total decimal.Decimal
	if err := q.QueryRow(ctx, query, employeeID, start, end).Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// CreateType implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) CreateType(ctx context.Context, t attendance.AttendanceType) (attendance.AttendanceType, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_types (code, name, deducts_pay, color, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, code, name, deducts_pay, color, active, created_at, updated_at
	`

	var created attendance.AttendanceType
	err := q.QueryRow(ctx, query, t.Code, t.Name, t.DeductsPay, t.Color, t.Active).Scan(
		&created.ID, &created.Code, &created.Name, &created.DeductsPay,
		&created.Color, &created.Active, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.AttendanceType{}, attendance.ErrAttendanceTypeCodeExists
		}
		return attendance.AttendanceType{}, err
	}

	return created, nil
}

// GetTypeByID implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) GetTypeByID(ctx context.Context, id string) (attendance.AttendanceType, error) {
	return a.getType(ctx, "id", id)
}

// GetTypeByCode implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) GetTypeByCode(ctx context.Context, code string) (attendance.AttendanceType, error) {
	return a.getType(ctx, "code", code)
}

func (a *attendanceRepositoryImpl) getType(ctx context.Context, column, value string) (attendance.AttendanceType, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, code, name, deducts_pay, color, active, created_at, updated_at
		FROM attendance_types
		WHERE ` + column + ` = $1
	`

	var t attendance.AttendanceType
	err := q.QueryRow(ctx, query, value).Scan(
		&t.ID, &t.Code, &t.Name, &t.DeductsPay, &t.Color, &t.Active, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceType{}, attendance.ErrAttendanceTypeNotFound
		}
		return attendance.AttendanceType{}, err
	}

	return t, nil
}

// ListTypes implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) ListTypes(ctx context.Context, activeOnly bool) ([]attendance.AttendanceType, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, code, name, deducts_pay, color, active, created_at, updated_at
		FROM attendance_types
		WHERE ($1 = FALSE OR active = TRUE)
		ORDER BY code
	`

	rows, err := q.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []attendance.AttendanceType
	for rows.Next() {
		var t attendance.AttendanceType
		err := rows.Scan(
			&t.ID, &t.Code, &t.Name, &t.DeductsPay, &t.Color, &t.Active, &t.CreatedAt, &t.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return types, nil
}

// UpdateType implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) UpdateType(ctx context.Context, t attendance.AttendanceType) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_types
		SET name = $1, deducts_pay = $2, color = $3, active = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, t.Name, t.DeductsPay, t.Color, t.Active, t.ID).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrAttendanceTypeNotFound
		}
		return err
	}

	return nil
}
