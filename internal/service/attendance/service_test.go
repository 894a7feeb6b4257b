package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/paylinehq/payroll-engine-go/internal/domain/attendance"
	"github.com/paylinehq/payroll-engine-go/internal/domain/employee"
	"github.com/paylinehq/payroll-engine-go/internal/domain/payperiod"
	"github.com/paylinehq/payroll-engine-go/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (attendance.AttendanceService, *memory.AttendanceRepository, *memory.PayPeriodRepository) {
	t.Helper()

	attendanceRepo := memory.NewAttendanceRepository()
	employeeRepo := memory.NewEmployeeRepository()
	employeeRepo.SeedEmployee(employee.Employee{ID: "emp-1", FullName: "Alice", Active: true})
	periodRepo := memory.NewPayPeriodRepository(nil, nil)
	svc := NewAttendanceService(memory.NewTxManager(), attendanceRepo, employeeRepo, periodRepo)
	return svc, attendanceRepo, periodRepo
}

func seedType(t *testing.T, repo *memory.AttendanceRepository, code string, deducts bool) attendance.AttendanceType {
	t.Helper()

	created, err := repo.CreateType(context.Background(), attendance.AttendanceType{
		Code:       code,
		Name:       code,
		DeductsPay: deducts,
		Active:     true,
	})
	require.NoError(t, err)
	return created
}

func TestRecordAttendance(t *testing.T) {
	svc, repo, _ := setup(t)
	ctx := context.Background()
	seedType(t, repo, "FALTA", true)

	rec, err := svc.RecordAttendance(ctx, attendance.RecordAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2025-09-10",
		TypeCode:   "FALTA",
	})
	require.NoError(t, err)
	assert.Equal(t, "FALTA", rec.TypeCode)
	assert.True(t, rec.DeductsPay)

	// Same employee and date replaces the record rather than duplicating it.
	seedType(t, repo, "FERIAS", false)
	rec2, err := svc.RecordAttendance(ctx, attendance.RecordAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2025-09-10",
		TypeCode:   "FERIAS",
	})
	require.NoError(t, err)
	assert.Equal(t, rec.ID, rec2.ID)
	assert.Equal(t, "FERIAS", rec2.TypeCode)

	count, err := repo.CountRecords(ctx, "emp-1",
		time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRecordAttendance_UnknownEmployee(t *testing.T) {
	svc, repo, _ := setup(t)
	ctx := context.Background()
	seedType(t, repo, "FALTA", true)

	_, err := svc.RecordAttendance(ctx, attendance.RecordAttendanceRequest{
		EmployeeID: "no-such-employee",
		Date:       "2025-09-10",
		TypeCode:   "FALTA",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	count, err := repo.CountRecords(ctx, "no-such-employee",
		time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestRecordAttendance_UnknownType(t *testing.T) {
	svc, _, _ := setup(t)

	_, err := svc.RecordAttendance(context.Background(), attendance.RecordAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2025-09-10",
		TypeCode:   "NOPE",
	})
	assert.ErrorIs(t, err, attendance.ErrAttendanceTypeNotFound)
}

func TestRecordAttendance_LockedPeriod(t *testing.T) {
	svc, repo, periodRepo := setup(t)
	ctx := context.Background()
	seedType(t, repo, "FALTA", true)

	p, err := periodRepo.Create(ctx, payperiod.PayPeriod{
		ReferenceMonth: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		Status:         payperiod.StatusClosed,
		GrossTotal:     decimal.Zero,
		DiscountTotal:  decimal.Zero,
		NetTotal:       decimal.Zero,
	})
	require.NoError(t, err)

	_, err = svc.RecordAttendance(ctx, attendance.RecordAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2025-09-10",
		TypeCode:   "FALTA",
	})
	assert.ErrorIs(t, err, payperiod.ErrPeriodLocked)

	// An open period accepts the record and its totals go stale.
	require.NoError(t, periodRepo.UpdateLifecycle(ctx, payperiod.PayPeriod{
		ID:     p.ID,
		Status: payperiod.StatusOpen,
	}))

	_, err = svc.RecordAttendance(ctx, attendance.RecordAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2025-09-10",
		TypeCode:   "FALTA",
	})
	require.NoError(t, err)

	updated, err := periodRepo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, updated.TotalsStale)
}

// closingPeriodRepo reports the period as CLOSED once the row lock is taken,
// standing in for a close that commits between the month lookup and the lock.
type closingPeriodRepo struct {
	*memory.PayPeriodRepository
}

func (r *closingPeriodRepo) GetForUpdate(ctx context.Context, id string) (payperiod.PayPeriod, error) {
	p, err := r.PayPeriodRepository.GetForUpdate(ctx, id)
	if err != nil {
		return p, err
	}
	p.Status = payperiod.StatusClosed
	return p, nil
}

func TestRecordAttendance_PeriodClosesBeforeLock(t *testing.T) {
	ctx := context.Background()

	attendanceRepo := memory.NewAttendanceRepository()
	employeeRepo := memory.NewEmployeeRepository()
	employeeRepo.SeedEmployee(employee.Employee{ID: "emp-1", FullName: "Alice", Active: true})
	periodRepo := &closingPeriodRepo{memory.NewPayPeriodRepository(nil, nil)}
	svc := NewAttendanceService(memory.NewTxManager(), attendanceRepo, employeeRepo, periodRepo)

	seedType(t, attendanceRepo, "FALTA", true)
	p, err := periodRepo.Create(ctx, payperiod.PayPeriod{
		ReferenceMonth: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		Status:         payperiod.StatusOpen,
		GrossTotal:     decimal.Zero,
		DiscountTotal:  decimal.Zero,
		NetTotal:       decimal.Zero,
	})
	require.NoError(t, err)

	// The month lookup sees OPEN, but the status re-check under the lock
	// sees the concurrent close and rejects the write.
	_, err = svc.RecordAttendance(ctx, attendance.RecordAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2025-09-10",
		TypeCode:   "FALTA",
	})
	assert.ErrorIs(t, err, payperiod.ErrPeriodLocked)

	count, err := attendanceRepo.CountRecords(ctx, "emp-1",
		time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Zero(t, count)

	stale, err := periodRepo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, stale.TotalsStale)
}

func TestRecordAttendance_OvertimeMustBeNonNegative(t *testing.T) {
	svc, repo, _ := setup(t)
	seedType(t, repo, "HORAEX", false)

	negative := decimal.NewFromInt(-2)
	_, err := svc.RecordAttendance(context.Background(), attendance.RecordAttendanceRequest{
		EmployeeID:    "emp-1",
		Date:          "2025-09-10",
		TypeCode:      "HORAEX",
		OvertimeHours: &negative,
	})
	assert.Error(t, err)
}

func TestCreateType_DuplicateCode(t *testing.T) {
	svc, _, _ := setup(t)
	ctx := context.Background()

	_, err := svc.CreateType(ctx, attendance.CreateAttendanceTypeRequest{Code: "FALTA", Name: "Absence", DeductsPay: true})
	require.NoError(t, err)

	_, err = svc.CreateType(ctx, attendance.CreateAttendanceTypeRequest{Code: "FALTA", Name: "Absence again", DeductsPay: true})
	assert.ErrorIs(t, err, attendance.ErrAttendanceTypeCodeExists)
}

func TestUpdateType(t *testing.T) {
	svc, repo, _ := setup(t)
	ctx := context.Background()
	created := seedType(t, repo, "FERIAS", false)

	deducts := true
	err := svc.UpdateType(ctx, attendance.UpdateAttendanceTypeRequest{
		ID:         created.ID,
		DeductsPay: &deducts,
	})
	require.NoError(t, err)

	updated, err := repo.GetTypeByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, updated.DeductsPay)
	assert.Equal(t, "FERIAS", updated.Code)
}
