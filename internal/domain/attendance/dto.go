package attendance

import (
	"github.com/paylinehq/payroll-engine-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type RecordAttendanceRequest struct {
	EmployeeID    string           `json:"employee_id"`
	Date          string           `json:"date"` // YYYY-MM-DD
	TypeCode      string           `json:"type_code"`
	Note          *string          `json:"note,omitempty"`
	OvertimeHours *decimal.Decimal `json:"overtime_hours,omitempty"`
}

func (r *RecordAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if validator.IsEmpty(r.TypeCode) {
		errs = append(errs, validator.ValidationError{Field: "type_code", Message: "is required"})
	}
	if r.OvertimeHours != nil && r.OvertimeHours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "overtime_hours", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	Date          string          `json:"date"`
	TypeCode      string          `json:"type_code"`
	TypeName      string          `json:"type_name"`
	DeductsPay    bool            `json:"deducts_pay"`
	Note          *string         `json:"note,omitempty"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
}

type CreateAttendanceTypeRequest struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	DeductsPay bool   `json:"deducts_pay"`
	Color      string `json:"color"`
}

func (r *CreateAttendanceTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidCode(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "must be 2-10 uppercase letters or digits"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.Color != "" && !validator.IsValidColor(r.Color) {
		errs = append(errs, validator.ValidationError{Field: "color", Message: "must be a hex color like #ffcc00"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAttendanceTypeRequest struct {
	ID         string
	Name       *string `json:"name,omitempty"`
	DeductsPay *bool   `json:"deducts_pay,omitempty"`
	Color      *string `json:"color,omitempty"`
	Active     *bool   `json:"active,omitempty"`
}

type AttendanceTypeResponse struct {
	ID         string `json:"id"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	DeductsPay bool   `json:"deducts_pay"`
	Color      string `json:"color"`
	Active     bool   `json:"active"`
}
