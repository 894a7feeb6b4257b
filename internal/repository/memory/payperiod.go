package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/paylinehq/payroll-engine-go/internal/domain/payperiod"
)

// PayPeriodRepository is an in-memory payperiod.PayPeriodRepository used in
// tests and local development. It joins against the employee and rule stores
// the same way the SQL queries do.
type PayPeriodRepository struct {
	mu      sync.RWMutex
	periods map[string]payperiod.PayPeriod
	lines   map[string]payperiod.PayLine    // keyed by line ID
	applied map[string]payperiod.AppliedLine // keyed by applied line ID

	employees *EmployeeRepository
	rules     *RuleRepository
}

func NewPayPeriodRepository(employees *EmployeeRepository, rules *RuleRepository) *PayPeriodRepository {
	return &PayPeriodRepository{
		periods:   make(map[string]payperiod.PayPeriod),
		lines:     make(map[string]payperiod.PayLine),
		applied:   make(map[string]payperiod.AppliedLine),
		employees: employees,
		rules:     rules,
	}
}

func (r *PayPeriodRepository) Create(ctx context.Context, period payperiod.PayPeriod) (payperiod.PayPeriod, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.periods {
		if existing.ReferenceMonth.Equal(period.ReferenceMonth) {
			return payperiod.PayPeriod{}, payperiod.ErrPeriodExists
		}
	}

	period.ID = uuid.NewString()
	period.CreatedAt = time.Now()
	period.UpdatedAt = period.CreatedAt
	r.periods[period.ID] = period
	return period, nil
}

func (r *PayPeriodRepository) GetByID(ctx context.Context, id string) (payperiod.PayPeriod, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.periods[id]
	if !ok {
		return payperiod.PayPeriod{}, payperiod.ErrPeriodNotFound
	}
	return p, nil
}

func (r *PayPeriodRepository) GetByMonth(ctx context.Context, referenceMonth time.Time) (payperiod.PayPeriod, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.periods {
		if p.ReferenceMonth.Equal(referenceMonth) {
			return p, nil
		}
	}
	return payperiod.PayPeriod{}, payperiod.ErrPeriodNotFound
}

// GetForUpdate behaves like GetByID; exclusion comes from the memory
// TxManager serializing units of work.
func (r *PayPeriodRepository) GetForUpdate(ctx context.Context, id string) (payperiod.PayPeriod, error) {
	return r.GetByID(ctx, id)
}

func (r *PayPeriodRepository) List(ctx context.Context) ([]payperiod.PayPeriod, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []payperiod.PayPeriod
	for _, p := range r.periods {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ReferenceMonth.After(result[j].ReferenceMonth)
	})
	return result, nil
}

func (r *PayPeriodRepository) UpdateLifecycle(ctx context.Context, period payperiod.PayPeriod) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.periods[period.ID]
	if !ok {
		return payperiod.ErrPeriodNotFound
	}
	existing.Status = period.Status
	existing.CloseDate = period.CloseDate
	existing.PayDate = period.PayDate
	existing.Notes = period.Notes
	existing.UpdatedAt = time.Now()
	r.periods[period.ID] = existing
	return nil
}

func (r *PayPeriodRepository) SaveTotals(ctx context.Context, period payperiod.PayPeriod) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.periods[period.ID]
	if !ok {
		return payperiod.ErrPeriodNotFound
	}
	existing.EmployeeCount = period.EmployeeCount
	existing.GrossTotal = period.GrossTotal
	existing.DiscountTotal = period.DiscountTotal
	existing.NetTotal = period.NetTotal
	existing.TotalsStale = false
	existing.UpdatedAt = time.Now()
	r.periods[period.ID] = existing
	return nil
}

func (r *PayPeriodRepository) MarkTotalsStale(ctx context.Context, periodID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.periods[periodID]
	if !ok {
		return nil
	}
	existing.TotalsStale = true
	existing.UpdatedAt = time.Now()
	r.periods[periodID] = existing
	return nil
}

func (r *PayPeriodRepository) CreateLine(ctx context.Context, line payperiod.PayLine) (payperiod.PayLine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	line.ID = uuid.NewString()
	line.CreatedAt = time.Now()
	line.UpdatedAt = line.CreatedAt
	r.lines[line.ID] = line
	return line, nil
}

func (r *PayPeriodRepository) GetLine(ctx context.Context, periodID, employeeID string) (payperiod.PayLine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, line := range r.lines {
		if line.PayPeriodID == periodID && line.EmployeeID == employeeID {
			return r.joinLine(line), nil
		}
	}
	return payperiod.PayLine{}, payperiod.ErrPayLineNotFound
}

func (r *PayPeriodRepository) ListLines(ctx context.Context, periodID string) ([]payperiod.PayLine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []payperiod.PayLine
	for _, line := range r.lines {
		if line.PayPeriodID == periodID {
			result = append(result, r.joinLine(line))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return displayName(result[i]) < displayName(result[j])
	})
	return result, nil
}

func displayName(line payperiod.PayLine) string {
	if line.EmployeeName != nil {
		return *line.EmployeeName
	}
	return line.EmployeeID
}

func (r *PayPeriodRepository) joinLine(line payperiod.PayLine) payperiod.PayLine {
	if r.employees == nil {
		return line
	}
	r.employees.mu.RLock()
	defer r.employees.mu.RUnlock()

	if emp, ok := r.employees.employees[line.EmployeeID]; ok {
		name, code := emp.FullName, emp.Code
		line.EmployeeName = &name
		line.EmployeeCode = &code
	}
	return line
}

func (r *PayPeriodRepository) SaveLineComputation(ctx context.Context, line payperiod.PayLine, autoLines []payperiod.AppliedLine) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.lines[line.ID]
	if !ok {
		return payperiod.ErrPayLineNotFound
	}

	existing.BaseWage = line.BaseWage
	existing.WorkingDays = line.WorkingDays
	existing.DaysWorked = line.DaysWorked
	existing.HoursWorked = line.HoursWorked
	existing.OvertimeHours = line.OvertimeHours
	existing.AttendanceDeduction = line.AttendanceDeduction
	existing.BenefitsTotal = line.BenefitsTotal
	existing.DiscountsTotal = line.DiscountsTotal
	existing.Gross = line.Gross
	existing.Net = line.Net
	existing.UpdatedAt = time.Now()
	r.lines[line.ID] = existing

	for id, al := range r.applied {
		if al.PayLineID == line.ID && !al.Manual {
			delete(r.applied, id)
		}
	}
	for _, al := range autoLines {
		al.ID = uuid.NewString()
		al.PayLineID = line.ID
		al.Manual = false
		al.CreatedAt = time.Now()
		r.applied[al.ID] = al
	}

	return nil
}

func (r *PayPeriodRepository) ListAppliedLines(ctx context.Context, payLineID string) ([]payperiod.AppliedLine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []payperiod.AppliedLine
	for _, al := range r.applied {
		if al.PayLineID == payLineID {
			result = append(result, r.joinApplied(al))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Manual != result[j].Manual {
			return !result[i].Manual
		}
		return ruleCode(result[i]) < ruleCode(result[j])
	})
	return result, nil
}

func ruleCode(al payperiod.AppliedLine) string {
	if al.RuleCode != nil {
		return *al.RuleCode
	}
	return al.RuleID
}

func (r *PayPeriodRepository) joinApplied(al payperiod.AppliedLine) payperiod.AppliedLine {
	if r.rules == nil {
		return al
	}
	r.rules.mu.RLock()
	defer r.rules.mu.RUnlock()

	if rule, ok := r.rules.rules[al.RuleID]; ok {
		code, name, kind := rule.Code, rule.Name, string(rule.Kind)
		al.RuleCode = &code
		al.RuleName = &name
		al.RuleKind = &kind
	}
	return al
}

func (r *PayPeriodRepository) UpsertManualLine(ctx context.Context, line payperiod.AppliedLine) (payperiod.AppliedLine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, existing := range r.applied {
		if existing.PayLineID == line.PayLineID && existing.RuleID == line.RuleID && existing.Manual {
			existing.ComputedValue = line.ComputedValue
			existing.Note = line.Note
			r.applied[id] = existing
			return r.joinApplied(existing), nil
		}
	}

	line.ID = uuid.NewString()
	line.Manual = true
	line.CreatedAt = time.Now()
	r.applied[line.ID] = line
	return r.joinApplied(line), nil
}
