package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/salonhq/salon-backend-go/internal/domain/payroll"
	"github.com/salonhq/salon-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	CreateCycle(w http.ResponseWriter, r *http.Request)
	ListCycles(w http.ResponseWriter, r *http.Request)
	GetCycle(w http.ResponseWriter, r *http.Request)
	ProcessCycle(w http.ResponseWriter, r *http.Request)
	ApproveCycle(w http.ResponseWriter, r *http.Request)
	MarkCyclePaid(w http.ResponseWriter, r *http.Request)
	ListEntries(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// CreateCycle implements PayrollHandler.
func (h *PayrollHandlerImpl) CreateCycle(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreateCycleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	cycle, err := h.payrollService.CreateCycle(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll cycle created", cycle)
}

// ListCycles implements PayrollHandler.
func (h *PayrollHandlerImpl) ListCycles(w http.ResponseWriter, r *http.Request) {
	cycles, err := h.payrollService.ListCycles(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, cycles)
}

// GetCycle implements PayrollHandler.
func (h *PayrollHandlerImpl) GetCycle(w http.ResponseWriter, r *http.Request) {
	cycleID := chi.URLParam(r, "id")

	cycle, err := h.payrollService.GetCycle(r.Context(), cycleID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, cycle)
}

// ProcessCycle implements PayrollHandler.
func (h *PayrollHandlerImpl) ProcessCycle(w http.ResponseWriter, r *http.Request) {
	cycleID := chi.URLParam(r, "id")

	report, err := h.payrollService.ProcessCycle(r.Context(), cycleID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll cycle processed", report)
}

// ApproveCycle implements PayrollHandler.
func (h *PayrollHandlerImpl) ApproveCycle(w http.ResponseWriter, r *http.Request) {
	cycleID := chi.URLParam(r, "id")

	cycle, err := h.payrollService.ApproveCycle(r.Context(), cycleID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll cycle approved", cycle)
}

// MarkCyclePaid implements PayrollHandler.
func (h *PayrollHandlerImpl) MarkCyclePaid(w http.ResponseWriter, r *http.Request) {
	cycleID := chi.URLParam(r, "id")

	cycle, err := h.payrollService.MarkCyclePaid(r.Context(), cycleID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll cycle marked paid", cycle)
}

// ListEntries implements PayrollHandler.
func (h *PayrollHandlerImpl) ListEntries(w http.ResponseWriter, r *http.Request) {
	cycleID := chi.URLParam(r, "id")

	entries, err := h.payrollService.ListEntries(r.Context(), cycleID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}
