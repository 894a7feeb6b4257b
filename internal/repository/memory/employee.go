package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/paylinehq/payroll-engine-go/internal/domain/employee"
)

// EmployeeRepository is an in-memory employee.EmployeeRepository used in
// tests and local development.
type EmployeeRepository struct {
	mu        sync.RWMutex
	employees map[string]employee.Employee
	branches  map[string]employee.Branch
	wages     map[string][]employee.WageHistoryEntry // employeeID -> entries, insertion order
}

func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{
		employees: make(map[string]employee.Employee),
		branches:  make(map[string]employee.Branch),
		wages:     make(map[string][]employee.WageHistoryEntry),
	}
}

// SeedBranch stores a branch, assigning an ID when absent.
func (r *EmployeeRepository) SeedBranch(branch employee.Branch) employee.Branch {
	r.mu.Lock()
	defer r.mu.Unlock()

	if branch.ID == "" {
		branch.ID = uuid.NewString()
	}
	r.branches[branch.ID] = branch
	return branch
}

// SeedEmployee stores an employee, assigning an ID when absent.
func (r *EmployeeRepository) SeedEmployee(emp employee.Employee) employee.Employee {
	r.mu.Lock()
	defer r.mu.Unlock()

	if emp.ID == "" {
		emp.ID = uuid.NewString()
	}
	r.employees[emp.ID] = emp
	return emp
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if branch, ok := r.branches[emp.BranchID]; ok {
		name := branch.Name
		emp.BranchName = &name
	}
	return emp, nil
}

func (r *EmployeeRepository) ListActive(ctx context.Context) ([]employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []employee.Employee
	for _, emp := range r.employees {
		if emp.Active {
			result = append(result, emp)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].FullName < result[j].FullName })
	return result, nil
}

func (r *EmployeeRepository) GetBranch(ctx context.Context, id string) (employee.Branch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	branch, ok := r.branches[id]
	if !ok {
		return employee.Branch{}, employee.ErrBranchNotFound
	}
	return branch, nil
}

func (r *EmployeeRepository) GetActiveWage(ctx context.Context, employeeID string) (employee.WageHistoryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, entry := range r.wages[employeeID] {
		if entry.Status == employee.WageStatusActive {
			return entry, nil
		}
	}
	return employee.WageHistoryEntry{}, employee.ErrNoActiveWage
}

func (r *EmployeeRepository) ListWageHistory(ctx context.Context, employeeID string) ([]employee.WageHistoryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := r.wages[employeeID]
	result := make([]employee.WageHistoryEntry, len(entries))
	copy(result, entries)

	// Newest first, matching the SQL ordering.
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].StartDate.Equal(result[j].StartDate) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].StartDate.After(result[j].StartDate)
	})
	return result, nil
}

func (r *EmployeeRepository) CloseActiveWage(ctx context.Context, employeeID string, endDate time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := r.wages[employeeID]
	for i := range entries {
		if entries[i].Status == employee.WageStatusActive {
			end := endDate
			entries[i].Status = employee.WageStatusInactive
			entries[i].EndDate = &end
		}
	}
	return nil
}

func (r *EmployeeRepository) InsertWageEntry(ctx context.Context, entry employee.WageHistoryEntry) (employee.WageHistoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry.ID = uuid.NewString()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	r.wages[entry.EmployeeID] = append(r.wages[entry.EmployeeID], entry)
	return entry, nil
}
