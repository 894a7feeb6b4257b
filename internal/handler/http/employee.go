package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/paylinehq/payroll-engine-go/internal/domain/employee"
	"github.com/paylinehq/payroll-engine-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	ListActive(w http.ResponseWriter, r *http.Request)

	GetWageHistory(w http.ResponseWriter, r *http.Request)
	ChangeWage(w http.ResponseWriter, r *http.Request)
	RevertWage(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{employeeService: employeeService}
}

func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	result, err := h.employeeService.GetEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *employeeHandlerImpl) ListActive(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.ListActive(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *employeeHandlerImpl) GetWageHistory(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	result, err := h.employeeService.GetWageHistory(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *employeeHandlerImpl) ChangeWage(w http.ResponseWriter, r *http.Request) {
	var req employee.ChangeWageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "employeeID")

	result, err := h.employeeService.ChangeWage(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Wage changed", result)
}

func (h *employeeHandlerImpl) RevertWage(w http.ResponseWriter, r *http.Request) {
	var req employee.RevertWageRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request body", nil)
			return
		}
	}
	req.EmployeeID = chi.URLParam(r, "employeeID")

	result, err := h.employeeService.RevertWage(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Wage reverted", result)
}
