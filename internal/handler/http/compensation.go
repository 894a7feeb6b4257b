package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/paylinehq/payroll-engine-go/internal/domain/compensation"
	"github.com/paylinehq/payroll-engine-go/internal/handler/http/response"
)

type CompensationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type compensationHandlerImpl struct {
	ruleService compensation.RuleService
}

func NewCompensationHandler(ruleService compensation.RuleService) CompensationHandler {
	return &compensationHandlerImpl{ruleService: ruleService}
}

func (h *compensationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req compensation.CreateRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.ruleService.CreateRule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Compensation rule created", result)
}

func (h *compensationHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	ruleID := chi.URLParam(r, "ruleID")

	result, err := h.ruleService.GetRule(r.Context(), ruleID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *compensationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	activeOnly, _ := strconv.ParseBool(r.URL.Query().Get("active_only"))

	result, err := h.ruleService.ListRules(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *compensationHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req compensation.UpdateRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "ruleID")

	if err := h.ruleService.UpdateRule(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Compensation rule updated", nil)
}
