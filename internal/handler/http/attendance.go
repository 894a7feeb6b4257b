package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/paylinehq/payroll-engine-go/internal/domain/attendance"
	"github.com/paylinehq/payroll-engine-go/internal/handler/http/response"
	"github.com/paylinehq/payroll-engine-go/internal/pkg/validator"
)

type AttendanceHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	ListRecords(w http.ResponseWriter, r *http.Request)

	CreateType(w http.ResponseWriter, r *http.Request)
	ListTypes(w http.ResponseWriter, r *http.Request)
	UpdateType(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

func (h *attendanceHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	var req attendance.RecordAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.attendanceService.RecordAttendance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance recorded", result)
}

func (h *attendanceHandlerImpl) ListRecords(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	start, ok := validator.IsValidDate(r.URL.Query().Get("start"))
	if !ok {
		response.BadRequest(w, "Query parameter 'start' must be a valid date (YYYY-MM-DD)", nil)
		return
	}
	end, ok := validator.IsValidDate(r.URL.Query().Get("end"))
	if !ok {
		response.BadRequest(w, "Query parameter 'end' must be a valid date (YYYY-MM-DD)", nil)
		return
	}

	result, err := h.attendanceService.ListRecords(r.Context(), employeeID, start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *attendanceHandlerImpl) CreateType(w http.ResponseWriter, r *http.Request) {
	var req attendance.CreateAttendanceTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.attendanceService.CreateType(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance type created", result)
}

func (h *attendanceHandlerImpl) ListTypes(w http.ResponseWriter, r *http.Request) {
	activeOnly, _ := strconv.ParseBool(r.URL.Query().Get("active_only"))

	result, err := h.attendanceService.ListTypes(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *attendanceHandlerImpl) UpdateType(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpdateAttendanceTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "typeID")

	if err := h.attendanceService.UpdateType(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance type updated", nil)
}
