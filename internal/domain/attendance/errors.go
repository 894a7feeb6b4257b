package attendance

import "errors"

var (
	ErrAttendanceTypeNotFound   = errors.New("attendance type not found")
	ErrAttendanceTypeCodeExists = errors.New("attendance type code already exists")
)
