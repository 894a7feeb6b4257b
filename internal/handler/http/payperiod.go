package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/paylinehq/payroll-engine-go/internal/domain/payperiod"
	"github.com/paylinehq/payroll-engine-go/internal/handler/http/response"
)

type PayPeriodHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetSummary(w http.ResponseWriter, r *http.Request)

	Enroll(w http.ResponseWriter, r *http.Request)
	Recompute(w http.ResponseWriter, r *http.Request)
	Validate(w http.ResponseWriter, r *http.Request)

	Close(w http.ResponseWriter, r *http.Request)
	Reopen(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)

	GetLine(w http.ResponseWriter, r *http.Request)
	AddManualLine(w http.ResponseWriter, r *http.Request)
}

type payPeriodHandlerImpl struct {
	payPeriodService payperiod.PayPeriodService
}

func NewPayPeriodHandler(payPeriodService payperiod.PayPeriodService) PayPeriodHandler {
	return &payPeriodHandlerImpl{payPeriodService: payPeriodService}
}

func (h *payPeriodHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req payperiod.CreatePeriodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payPeriodService.CreatePeriod(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Pay period created", result)
}

func (h *payPeriodHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.payPeriodService.ListPeriods(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payPeriodHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	periodID := chi.URLParam(r, "periodID")

	result, err := h.payPeriodService.GetSummary(r.Context(), periodID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payPeriodHandlerImpl) Enroll(w http.ResponseWriter, r *http.Request) {
	periodID := chi.URLParam(r, "periodID")

	result, err := h.payPeriodService.Enroll(r.Context(), periodID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employees enrolled", result)
}

func (h *payPeriodHandlerImpl) Recompute(w http.ResponseWriter, r *http.Request) {
	periodID := chi.URLParam(r, "periodID")

	result, err := h.payPeriodService.RecomputeAll(r.Context(), periodID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Pay period recomputed", result)
}

func (h *payPeriodHandlerImpl) Validate(w http.ResponseWriter, r *http.Request) {
	periodID := chi.URLParam(r, "periodID")

	result, err := h.payPeriodService.Validate(r.Context(), periodID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payPeriodHandlerImpl) Close(w http.ResponseWriter, r *http.Request) {
	var req payperiod.CloseRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request body", nil)
			return
		}
	}
	req.PeriodID = chi.URLParam(r, "periodID")

	result, err := h.payPeriodService.Close(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Pay period closed", result)
}

func (h *payPeriodHandlerImpl) Reopen(w http.ResponseWriter, r *http.Request) {
	var req payperiod.ReopenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.PeriodID = chi.URLParam(r, "periodID")

	result, err := h.payPeriodService.Reopen(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Pay period reopened", result)
}

func (h *payPeriodHandlerImpl) MarkPaid(w http.ResponseWriter, r *http.Request) {
	var req payperiod.MarkPaidRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request body", nil)
			return
		}
	}
	req.PeriodID = chi.URLParam(r, "periodID")

	result, err := h.payPeriodService.MarkPaid(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Pay period marked as paid", result)
}

func (h *payPeriodHandlerImpl) GetLine(w http.ResponseWriter, r *http.Request) {
	periodID := chi.URLParam(r, "periodID")
	employeeID := chi.URLParam(r, "employeeID")

	result, err := h.payPeriodService.GetLine(r.Context(), periodID, employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payPeriodHandlerImpl) AddManualLine(w http.ResponseWriter, r *http.Request) {
	var req payperiod.AddManualLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.PeriodID = chi.URLParam(r, "periodID")
	req.EmployeeID = chi.URLParam(r, "employeeID")

	result, err := h.payPeriodService.AddManualLine(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Manual line added", result)
}
