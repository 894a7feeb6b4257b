package attendance

import (
	"context"
	"errors"
	"time"

	"github.com/paylinehq/payroll-engine-go/internal/domain/attendance"
	"github.com/paylinehq/payroll-engine-go/internal/domain/employee"
	"github.com/paylinehq/payroll-engine-go/internal/domain/payperiod"
	"github.com/paylinehq/payroll-engine-go/internal/pkg/calendar"
	"github.com/paylinehq/payroll-engine-go/internal/pkg/database"
	"github.com/paylinehq/payroll-engine-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type AttendanceServiceImpl struct {
	tx             database.TxManager
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	periodRepo     payperiod.PayPeriodRepository
}

func NewAttendanceService(
	tx database.TxManager,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	periodRepo payperiod.PayPeriodRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		tx:             tx,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		periodRepo:     periodRepo,
	}
}

func (s *AttendanceServiceImpl) RecordAttendance(ctx context.Context, req attendance.RecordAttendanceRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	var result attendance.RecordResponse

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
			return err
		}

		// A record inside a closed or paid period would silently diverge
		// from the frozen pay lines, so it is rejected outright. GetByMonth
		// only finds the period; the row lock serializes this write against
		// a close or pay transition committing in between, and the status is
		// re-checked under the lock.
		p, err := s.periodRepo.GetByMonth(ctx, calendar.MonthStart(date))
		switch {
		case err == nil:
			p, err = s.periodRepo.GetForUpdate(ctx, p.ID)
			if err != nil {
				return err
			}
			if p.Status != payperiod.StatusOpen {
				return payperiod.ErrPeriodLocked
			}
		case errors.Is(err, payperiod.ErrPeriodNotFound):
			// No period owns this month yet; the record is free-standing.
		default:
			return err
		}

		t, err := s.attendanceRepo.GetTypeByCode(ctx, req.TypeCode)
		if err != nil {
			return err
		}
		if !t.Active {
			return attendance.ErrAttendanceTypeNotFound
		}

		overtime := decimal.Zero
		if req.OvertimeHours != nil {
			overtime = *req.OvertimeHours
		}

		record, err := s.attendanceRepo.UpsertRecord(ctx, attendance.Record{
			EmployeeID:    req.EmployeeID,
			Date:          date,
			TypeID:        t.ID,
			Note:          req.Note,
			OvertimeHours: overtime,
		})
		if err != nil {
			return err
		}

		if record.TypeCode == nil {
			record.TypeCode = &t.Code
			record.TypeName = &t.Name
			record.DeductsPay = &t.DeductsPay
		}

		// The edit invalidates any computed totals for the owning period.
		if p.ID != "" {
			if err := s.periodRepo.MarkTotalsStale(ctx, p.ID); err != nil {
				return err
			}
		}

		result = mapRecordResponse(record)
		return nil
	})

	return result, err
}

func (s *AttendanceServiceImpl) ListRecords(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.RecordResponse, error) {
	records, err := s.attendanceRepo.ListByEmployeeRange(ctx, employeeID, start, end)
	if err != nil {
		return nil, err
	}

	result := make([]attendance.RecordResponse, 0, len(records))
	for _, r := range records {
		result = append(result, mapRecordResponse(r))
	}
	return result, nil
}

func (s *AttendanceServiceImpl) CreateType(ctx context.Context, req attendance.CreateAttendanceTypeRequest) (attendance.AttendanceTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceTypeResponse{}, err
	}

	_, err := s.attendanceRepo.GetTypeByCode(ctx, req.Code)
	if err == nil {
		return attendance.AttendanceTypeResponse{}, attendance.ErrAttendanceTypeCodeExists
	}
	if !errors.Is(err, attendance.ErrAttendanceTypeNotFound) {
		return attendance.AttendanceTypeResponse{}, err
	}

	created, err := s.attendanceRepo.CreateType(ctx, attendance.AttendanceType{
		Code:       req.Code,
		Name:       req.Name,
		DeductsPay: req.DeductsPay,
		Color:      req.Color,
		Active:     true,
	})
	if err != nil {
		return attendance.AttendanceTypeResponse{}, err
	}

	return mapTypeResponse(created), nil
}

func (s *AttendanceServiceImpl) ListTypes(ctx context.Context, activeOnly bool) ([]attendance.AttendanceTypeResponse, error) {
	types, err := s.attendanceRepo.ListTypes(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	result := make([]attendance.AttendanceTypeResponse, 0, len(types))
	for _, t := range types {
		result = append(result, mapTypeResponse(t))
	}
	return result, nil
}

func (s *AttendanceServiceImpl) UpdateType(ctx context.Context, req attendance.UpdateAttendanceTypeRequest) error {
	t, err := s.attendanceRepo.GetTypeByID(ctx, req.ID)
	if err != nil {
		return err
	}

	if req.Name != nil {
		if validator.IsEmpty(*req.Name) {
			return validator.ValidationErrors{{Field: "name", Message: "is required"}}
		}
		t.Name = *req.Name
	}
	if req.DeductsPay != nil {
		t.DeductsPay = *req.DeductsPay
	}
	if req.Color != nil {
		if *req.Color != "" && !validator.IsValidColor(*req.Color) {
			return validator.ValidationErrors{{Field: "color", Message: "must be a hex color like #ffcc00"}}
		}
		t.Color = *req.Color
	}
	if req.Active != nil {
		t.Active = *req.Active
	}

	return s.attendanceRepo.UpdateType(ctx, t)
}

func mapRecordResponse(r attendance.Record) attendance.RecordResponse {
	resp := attendance.RecordResponse{
		ID:            r.ID,
		EmployeeID:    r.EmployeeID,
		Date:          r.Date.Format("2006-01-02"),
		Note:          r.Note,
		OvertimeHours: r.OvertimeHours,
	}
	if r.TypeCode != nil {
		resp.TypeCode = *r.TypeCode
	}
	if r.TypeName != nil {
		resp.TypeName = *r.TypeName
	}
	if r.DeductsPay != nil {
		resp.DeductsPay = *r.DeductsPay
	}
	return resp
}

func mapTypeResponse(t attendance.AttendanceType) attendance.AttendanceTypeResponse {
	return attendance.AttendanceTypeResponse{
		ID:         t.ID,
		Code:       t.Code,
		Name:       t.Name,
		DeductsPay: t.DeductsPay,
		Color:      t.Color,
		Active:     t.Active,
	}
}
