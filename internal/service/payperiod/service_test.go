package payperiod

import (
	"context"
	"testing"
	"time"

	"github.com/paylinehq/payroll-engine-go/internal/domain/attendance"
	"github.com/paylinehq/payroll-engine-go/internal/domain/compensation"
	"github.com/paylinehq/payroll-engine-go/internal/domain/employee"
	"github.com/paylinehq/payroll-engine-go/internal/domain/payperiod"
	"github.com/paylinehq/payroll-engine-go/internal/pkg/validator"
	"github.com/paylinehq/payroll-engine-go/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	employees  *memory.EmployeeRepository
	attendance *memory.AttendanceRepository
	rules      *memory.RuleRepository
	periods    *memory.PayPeriodRepository
	service    payperiod.PayPeriodService

	branch employee.Branch
	absent attendance.AttendanceType
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	employees := memory.NewEmployeeRepository()
	attendanceRepo := memory.NewAttendanceRepository()
	rules := memory.NewRuleRepository()
	periods := memory.NewPayPeriodRepository(employees, rules)

	f := &fixture{
		employees:  employees,
		attendance: attendanceRepo,
		rules:      rules,
		periods:    periods,
		service:    NewPayPeriodService(memory.NewTxManager(), periods, employees, attendanceRepo, rules),
	}

	f.branch = employees.SeedBranch(employee.Branch{
		Name:               "Matriz",
		WorkingDaysPerWeek: 5,
		HoursPerDay:        dec("8"),
	})

	var err error
	f.absent, err = attendanceRepo.CreateType(context.Background(), attendance.AttendanceType{
		Code:       "FALTA",
		Name:       "Unjustified absence",
		DeductsPay: true,
		Active:     true,
	})
	require.NoError(t, err)

	return f
}

func (f *fixture) seedEmployee(t *testing.T, name string, wage decimal.Decimal) employee.Employee {
	t.Helper()

	emp := f.employees.SeedEmployee(employee.Employee{
		Code:          "E-" + name,
		FullName:      name,
		BranchID:      f.branch.ID,
		AdmissionDate: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		Active:        true,
	})
	_, err := f.employees.InsertWageEntry(context.Background(), employee.WageHistoryEntry{
		EmployeeID: emp.ID,
		Value:      wage,
		StartDate:  emp.AdmissionDate,
		Status:     employee.WageStatusActive,
	})
	require.NoError(t, err)
	return emp
}

func (f *fixture) markAbsent(t *testing.T, employeeID string, date time.Time) {
	t.Helper()

	_, err := f.attendance.UpsertRecord(context.Background(), attendance.Record{
		EmployeeID:    employeeID,
		Date:          date,
		TypeID:        f.absent.ID,
		OvertimeHours: decimal.Zero,
	})
	require.NoError(t, err)
}

func (f *fixture) createPeriod(t *testing.T, month string) payperiod.PeriodResponse {
	t.Helper()

	p, err := f.service.CreatePeriod(context.Background(), payperiod.CreatePeriodRequest{ReferenceMonth: month})
	require.NoError(t, err)
	return p
}

func TestCreatePeriod_DuplicateMonth(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.createPeriod(t, "2025-09")

	_, err := f.service.CreatePeriod(ctx, payperiod.CreatePeriodRequest{ReferenceMonth: "2025-09"})
	assert.ErrorIs(t, err, payperiod.ErrPeriodExists)
}

func TestCreatePeriod_InvalidMonth(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.CreatePeriod(context.Background(), payperiod.CreatePeriodRequest{ReferenceMonth: "09/2025"})

	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestEnrollAndRecompute(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	alice := f.seedEmployee(t, "Alice", dec("116160"))
	bob := f.seedEmployee(t, "Bob", dec("22000"))
	f.markAbsent(t, alice.ID, time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC))

	p := f.createPeriod(t, "2025-09")

	enroll, err := f.service.Enroll(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, enroll.LinesCreated)

	// Enrolling again is a no-op.
	enroll, err = f.service.Enroll(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, enroll.LinesCreated)
	assert.Equal(t, 2, enroll.LinesExisting)

	recompute, err := f.service.RecomputeAll(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, recompute.LinesUpdated)
	assert.False(t, recompute.Period.TotalsStale)

	// September 2025 has 22 working days; one absence costs one daily wage.
	aliceLine, err := f.service.GetLine(ctx, p.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, dec("5280").Equal(aliceLine.AttendanceDeduction), "deduction = %s", aliceLine.AttendanceDeduction)
	assert.True(t, dec("110880").Equal(aliceLine.Net))
	assert.Equal(t, 22, aliceLine.WorkingDays)
	assert.Equal(t, 21, aliceLine.DaysWorked)

	bobLine, err := f.service.GetLine(ctx, p.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, dec("22000").Equal(bobLine.Net))

	// Aggregate totals match the sum of the lines.
	summary, err := f.service.GetSummary(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Totals.EmployeeCount)
	assert.True(t, dec("138160").Equal(summary.Totals.GrossTotal), "gross = %s", summary.Totals.GrossTotal)
	assert.True(t, dec("5280").Equal(summary.Totals.DiscountTotal))
	assert.True(t, dec("132880").Equal(summary.Totals.NetTotal))
}

func TestClose_BlockedWithoutLines(t *testing.T) {
	f := newFixture(t)
	p := f.createPeriod(t, "2025-09")

	_, err := f.service.Close(context.Background(), payperiod.CloseRequest{PeriodID: p.ID})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
}

func TestClose_BlockedBeforeFirstRecompute(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.seedEmployee(t, "Alice", dec("10000"))
	p := f.createPeriod(t, "2025-09")

	_, err := f.service.Enroll(ctx, p.ID)
	require.NoError(t, err)

	_, err = f.service.Close(ctx, payperiod.CloseRequest{PeriodID: p.ID})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
}

func TestLifecycle_CloseReopenPay(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.seedEmployee(t, "Alice", dec("10000"))
	p := f.createPeriod(t, "2025-09")

	_, err := f.service.Enroll(ctx, p.ID)
	require.NoError(t, err)
	_, err = f.service.RecomputeAll(ctx, p.ID)
	require.NoError(t, err)

	// MarkPaid straight from OPEN is an invalid transition.
	_, err = f.service.MarkPaid(ctx, payperiod.MarkPaidRequest{PeriodID: p.ID})
	var transitionErr *payperiod.StateTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, payperiod.StatusOpen, transitionErr.Current)
	assert.Equal(t, payperiod.StatusPaid, transitionErr.Attempted)

	closed, err := f.service.Close(ctx, payperiod.CloseRequest{PeriodID: p.ID})
	require.NoError(t, err)
	assert.Equal(t, string(payperiod.StatusClosed), closed.Period.Status)
	assert.NotNil(t, closed.Period.CloseDate)

	// Closing twice fails.
	_, err = f.service.Close(ctx, payperiod.CloseRequest{PeriodID: p.ID})
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, payperiod.StatusClosed, transitionErr.Current)

	// Reopen demands a reason.
	_, err = f.service.Reopen(ctx, payperiod.ReopenRequest{PeriodID: p.ID, Reason: ""})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	reopened, err := f.service.Reopen(ctx, payperiod.ReopenRequest{PeriodID: p.ID, Reason: "wage correction"})
	require.NoError(t, err)
	assert.Equal(t, string(payperiod.StatusOpen), reopened.Status)
	assert.Nil(t, reopened.CloseDate)
	require.NotNil(t, reopened.Notes)
	assert.Contains(t, *reopened.Notes, "Reopened: wage correction")

	_, err = f.service.Close(ctx, payperiod.CloseRequest{PeriodID: p.ID})
	require.NoError(t, err)

	paid, err := f.service.MarkPaid(ctx, payperiod.MarkPaidRequest{PeriodID: p.ID})
	require.NoError(t, err)
	assert.Equal(t, string(payperiod.StatusPaid), paid.Status)
	assert.NotNil(t, paid.PayDate)

	// PAID is terminal: no reopen, no second payment.
	_, err = f.service.Reopen(ctx, payperiod.ReopenRequest{PeriodID: p.ID, Reason: "oops"})
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, payperiod.StatusPaid, transitionErr.Current)

	_, err = f.service.MarkPaid(ctx, payperiod.MarkPaidRequest{PeriodID: p.ID})
	require.ErrorAs(t, err, &transitionErr)
}

func TestRecompute_RejectedWhenLocked(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.seedEmployee(t, "Alice", dec("10000"))
	p := f.createPeriod(t, "2025-09")

	_, err := f.service.Enroll(ctx, p.ID)
	require.NoError(t, err)
	_, err = f.service.RecomputeAll(ctx, p.ID)
	require.NoError(t, err)
	_, err = f.service.Close(ctx, payperiod.CloseRequest{PeriodID: p.ID})
	require.NoError(t, err)

	_, err = f.service.RecomputeAll(ctx, p.ID)
	assert.ErrorIs(t, err, payperiod.ErrPeriodLocked)

	_, err = f.service.Enroll(ctx, p.ID)
	assert.ErrorIs(t, err, payperiod.ErrPeriodLocked)
}

func TestAddManualLine(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	alice := f.seedEmployee(t, "Alice", dec("8000"))
	p := f.createPeriod(t, "2025-09")

	_, err := f.service.Enroll(ctx, p.ID)
	require.NoError(t, err)
	_, err = f.service.RecomputeAll(ctx, p.ID)
	require.NoError(t, err)

	_, err = f.rules.Create(ctx, compensation.Rule{
		Code:      "BONUS",
		Name:      "Performance bonus",
		Kind:      compensation.RuleKindBenefit,
		ValueKind: compensation.ValueKindFixed,
		Value:     dec("1500"),
		Basis:     compensation.BasisBaseWage,
		AutoApply: false,
		Active:    true,
	})
	require.NoError(t, err)

	line, err := f.service.AddManualLine(ctx, payperiod.AddManualLineRequest{
		PeriodID:   p.ID,
		EmployeeID: alice.ID,
		RuleCode:   "BONUS",
	})
	require.NoError(t, err)
	assert.True(t, dec("1500").Equal(line.BenefitsTotal))
	assert.True(t, dec("9500").Equal(line.Gross))
	require.Len(t, line.AppliedLines, 1)
	assert.True(t, line.AppliedLines[0].Manual)
	assert.Equal(t, "BONUS", line.AppliedLines[0].RuleCode)

	// The line-level edit leaves the period totals stale until a recompute.
	summary, err := f.service.GetSummary(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, summary.TotalsStale)

	// A full recompute keeps the manual line and folds it into the totals.
	_, err = f.service.RecomputeAll(ctx, p.ID)
	require.NoError(t, err)

	summary, err = f.service.GetSummary(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, summary.TotalsStale)
	assert.True(t, dec("9500").Equal(summary.Totals.GrossTotal), "gross = %s", summary.Totals.GrossTotal)

	line, err = f.service.GetLine(ctx, p.ID, alice.ID)
	require.NoError(t, err)
	require.Len(t, line.AppliedLines, 1)
	assert.True(t, line.AppliedLines[0].Manual)
}

func TestAddManualLine_InactiveRule(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	alice := f.seedEmployee(t, "Alice", dec("8000"))
	p := f.createPeriod(t, "2025-09")

	_, err := f.service.Enroll(ctx, p.ID)
	require.NoError(t, err)

	_, err = f.rules.Create(ctx, compensation.Rule{
		Code:      "OLD",
		Name:      "Retired benefit",
		Kind:      compensation.RuleKindBenefit,
		ValueKind: compensation.ValueKindFixed,
		Value:     dec("100"),
		Basis:     compensation.BasisBaseWage,
		Active:    false,
	})
	require.NoError(t, err)

	_, err = f.service.AddManualLine(ctx, payperiod.AddManualLineRequest{
		PeriodID:   p.ID,
		EmployeeID: alice.ID,
		RuleCode:   "OLD",
	})
	assert.ErrorIs(t, err, compensation.ErrRuleInactive)
}

func TestValidate_Warnings(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Alice has a wage but no attendance; Carol is active but never enrolled.
	f.seedEmployee(t, "Alice", dec("10000"))
	p := f.createPeriod(t, "2025-09")

	_, err := f.service.Enroll(ctx, p.ID)
	require.NoError(t, err)
	_, err = f.service.RecomputeAll(ctx, p.ID)
	require.NoError(t, err)

	f.seedEmployee(t, "Carol", dec("9000"))

	report, err := f.service.Validate(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, report.Valid())
	assert.Contains(t, report.Warnings, "Alice has no attendance records in the period")
	assert.Contains(t, report.Warnings, "active employee Carol is not enrolled in this period")
}

func TestCloseResult_CarriesWarnings(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.seedEmployee(t, "Alice", dec("10000"))
	p := f.createPeriod(t, "2025-09")

	_, err := f.service.Enroll(ctx, p.ID)
	require.NoError(t, err)
	_, err = f.service.RecomputeAll(ctx, p.ID)
	require.NoError(t, err)

	closed, err := f.service.Close(ctx, payperiod.CloseRequest{PeriodID: p.ID})
	require.NoError(t, err)
	assert.Contains(t, closed.Warnings, "Alice has no attendance records in the period")
}
