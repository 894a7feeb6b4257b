package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/paylinehq/payroll-engine-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
)

// AttendanceRepository is an in-memory attendance.AttendanceRepository used
// in tests and local development.
type AttendanceRepository struct {
	mu      sync.RWMutex
	records map[string]attendance.Record // keyed by employeeID + "|" + date
	types   map[string]attendance.AttendanceType
}

func NewAttendanceRepository() *AttendanceRepository {
	return &AttendanceRepository{
		records: make(map[string]attendance.Record),
		types:   make(map[string]attendance.AttendanceType),
	}
}

func recordKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (r *AttendanceRepository) UpsertRecord(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := recordKey(record.EmployeeID, record.Date)
	if existing, ok := r.records[key]; ok {
		record.ID = existing.ID
		record.CreatedAt = existing.CreatedAt
	} else {
		record.ID = uuid.NewString()
		record.CreatedAt = time.Now()
	}
	record.UpdatedAt = time.Now()

	if t, ok := r.types[record.TypeID]; ok {
		record.TypeCode = &t.Code
		record.TypeName = &t.Name
		record.DeductsPay = &t.DeductsPay
	}

	r.records[key] = record
	return record, nil
}

func (r *AttendanceRepository) ListByEmployeeRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []attendance.Record
	for _, rec := range r.records {
		if rec.EmployeeID == employeeID && inRange(rec.Date, start, end) {
			result = append(result, rec)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result, nil
}

func inRange(date, start, end time.Time) bool {
	return !date.Before(start) && !date.After(end)
}

func (r *AttendanceRepository) CountDeducting(ctx context.Context, employeeID string, start, end time.Time) (int, error) {
	return r.countByDeduction(employeeID, start, end, true)
}

func (r *AttendanceRepository) CountNonDeducting(ctx context.Context, employeeID string, start, end time.Time) (int, error) {
	return r.countByDeduction(employeeID, start, end, false)
}

func (r *AttendanceRepository) countByDeduction(employeeID string, start, end time.Time, deductsPay bool) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, rec := range r.records {
		if rec.EmployeeID != employeeID || !inRange(rec.Date, start, end) {
			continue
		}
		if t, ok := r.types[rec.TypeID]; ok && t.DeductsPay == deductsPay {
			count++
		}
	}
	return count, nil
}

func (r *AttendanceRepository) CountRecords(ctx context.Context, employeeID string, start, end time.Time) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, rec := range r.records {
		if rec.EmployeeID == employeeID && inRange(rec.Date, start, end) {
			count++
		}
	}
	return count, nil
}

func (r *AttendanceRepository) SumOvertimeHours(ctx context.Context, employeeID string, start, end time.Time) (decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := decimal.Zero
	for _, rec := range r.records {
		if rec.EmployeeID == employeeID && inRange(rec.Date, start, end) {
			total = total.Add(rec.OvertimeHours)
		}
	}
	return total, nil
}

func (r *AttendanceRepository) CreateType(ctx context.Context, t attendance.AttendanceType) (attendance.AttendanceType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.types {
		if existing.Code == t.Code {
			return attendance.AttendanceType{}, attendance.ErrAttendanceTypeCodeExists
		}
	}

	t.ID = uuid.NewString()
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	r.types[t.ID] = t
	return t, nil
}

func (r *AttendanceRepository) GetTypeByID(ctx context.Context, id string) (attendance.AttendanceType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.types[id]
	if !ok {
		return attendance.AttendanceType{}, attendance.ErrAttendanceTypeNotFound
	}
	return t, nil
}

func (r *AttendanceRepository) GetTypeByCode(ctx context.Context, code string) (attendance.AttendanceType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.types {
		if t.Code == code {
			return t, nil
		}
	}
	return attendance.AttendanceType{}, attendance.ErrAttendanceTypeNotFound
}

func (r *AttendanceRepository) ListTypes(ctx context.Context, activeOnly bool) ([]attendance.AttendanceType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []attendance.AttendanceType
	for _, t := range r.types {
		if activeOnly && !t.Active {
			continue
		}
		result = append(result, t)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Code < result[j].Code })
	return result, nil
}

func (r *AttendanceRepository) UpdateType(ctx context.Context, t attendance.AttendanceType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.types[t.ID]; !ok {
		return attendance.ErrAttendanceTypeNotFound
	}
	t.UpdatedAt = time.Now()
	r.types[t.ID] = t
	return nil
}
