package employee

import (
	"context"
	"time"

	"github.com/paylinehq/payroll-engine-go/internal/domain/employee"
	"github.com/paylinehq/payroll-engine-go/internal/pkg/database"
)

type EmployeeServiceImpl struct {
	tx           database.TxManager
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(tx database.TxManager, employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		tx:           tx,
		employeeRepo: employeeRepo,
	}
}

func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeResponse(emp), nil
}

func (s *EmployeeServiceImpl) ListActive(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		result = append(result, mapEmployeeResponse(emp))
	}
	return result, nil
}

func (s *EmployeeServiceImpl) GetWageHistory(ctx context.Context, employeeID string) ([]employee.WageHistoryEntryResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	entries, err := s.employeeRepo.ListWageHistory(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	result := make([]employee.WageHistoryEntryResponse, 0, len(entries))
	for _, entry := range entries {
		result = append(result, mapWageEntryResponse(entry))
	}
	return result, nil
}

func (s *EmployeeServiceImpl) ChangeWage(ctx context.Context, req employee.ChangeWageRequest) (employee.WageHistoryEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.WageHistoryEntryResponse{}, err
	}

	var result employee.WageHistoryEntryResponse

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
		if err != nil {
			return err
		}
		if !emp.Active {
			return employee.ErrEmployeeInactive
		}

		// The rotation is atomic: the old entry closes and the new one opens
		// in the same transaction, keeping exactly one entry active.
		now := time.Now()
		if err := s.employeeRepo.CloseActiveWage(ctx, emp.ID, now); err != nil {
			return err
		}

		entry, err := s.employeeRepo.InsertWageEntry(ctx, employee.WageHistoryEntry{
			EmployeeID: emp.ID,
			Value:      req.NewValue,
			StartDate:  now,
			Status:     employee.WageStatusActive,
			Note:       req.Note,
		})
		if err != nil {
			return err
		}

		result = mapWageEntryResponse(entry)
		return nil
	})

	return result, err
}

// RevertWage rotates back to the most recent inactive value as a fresh
// entry. History stays append-only; nothing is deleted.
func (s *EmployeeServiceImpl) RevertWage(ctx context.Context, req employee.RevertWageRequest) (employee.WageHistoryEntryResponse, error) {
	var result employee.WageHistoryEntryResponse

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
		if err != nil {
			return err
		}

		entries, err := s.employeeRepo.ListWageHistory(ctx, emp.ID)
		if err != nil {
			return err
		}

		var previous *employee.WageHistoryEntry
		for i := range entries {
			if entries[i].Status == employee.WageStatusInactive {
				previous = &entries[i]
				break
			}
		}
		if previous == nil {
			return employee.ErrNoPreviousWage
		}

		now := time.Now()
		if err := s.employeeRepo.CloseActiveWage(ctx, emp.ID, now); err != nil {
			return err
		}

		entry, err := s.employeeRepo.InsertWageEntry(ctx, employee.WageHistoryEntry{
			EmployeeID: emp.ID,
			Value:      previous.Value,
			StartDate:  now,
			Status:     employee.WageStatusActive,
			Note:       req.Note,
		})
		if err != nil {
			return err
		}

		result = mapWageEntryResponse(entry)
		return nil
	})

	return result, err
}

func mapEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:            emp.ID,
		Code:          emp.Code,
		FullName:      emp.FullName,
		BranchID:      emp.BranchID,
		BranchName:    emp.BranchName,
		AdmissionDate: emp.AdmissionDate.Format("2006-01-02"),
		Active:        emp.Active,
	}
	if emp.TerminationDate != nil {
		str := emp.TerminationDate.Format("2006-01-02")
		resp.TerminationDate = &str
	}
	return resp
}

func mapWageEntryResponse(entry employee.WageHistoryEntry) employee.WageHistoryEntryResponse {
	resp := employee.WageHistoryEntryResponse{
		ID:        entry.ID,
		Value:     entry.Value,
		StartDate: entry.StartDate.Format("2006-01-02"),
		Status:    string(entry.Status),
		Note:      entry.Note,
	}
	if entry.EndDate != nil {
		str := entry.EndDate.Format("2006-01-02")
		resp.EndDate = &str
	}
	return resp
}
