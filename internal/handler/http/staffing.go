package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/salonhq/salon-backend-go/internal/domain/staffing"
	"github.com/salonhq/salon-backend-go/internal/handler/http/response"
)

type StaffingHandler interface {
	CreateProfile(w http.ResponseWriter, r *http.Request)
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)

	ReplaceSalary(w http.ResponseWriter, r *http.Request)
	GetSalary(w http.ResponseWriter, r *http.Request)
	SalaryHistory(w http.ResponseWriter, r *http.Request)

	RecordExit(w http.ResponseWriter, r *http.Request)
	GetExitRecord(w http.ResponseWriter, r *http.Request)
}

type StaffingHandlerImpl struct {
	staffingService staffing.StaffingService
}

func NewStaffingHandler(staffingService staffing.StaffingService) StaffingHandler {
	return &StaffingHandlerImpl{staffingService: staffingService}
}

// CreateProfile implements StaffingHandler.
func (h *StaffingHandlerImpl) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var req staffing.CreateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	profile, err := h.staffingService.CreateProfile(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employment profile created", profile)
}

// GetProfile implements StaffingHandler.
func (h *StaffingHandlerImpl) GetProfile(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffID")
	if staffID == "" {
		response.BadRequest(w, "Staff ID is required", nil)
		return
	}

	profile, err := h.staffingService.GetProfile(r.Context(), staffID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, profile)
}

// UpdateProfile implements StaffingHandler.
func (h *StaffingHandlerImpl) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req staffing.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	profile, err := h.staffingService.UpdateProfile(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employment profile updated", profile)
}

// ReplaceSalary implements StaffingHandler.
func (h *StaffingHandlerImpl) ReplaceSalary(w http.ResponseWriter, r *http.Request) {
	var req staffing.ReplaceSalaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.StaffID = chi.URLParam(r, "staffID")

	component, err := h.staffingService.ReplaceActiveSalary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary replaced", component)
}

// GetSalary returns the active component, or the component effective at
// ?as_of=YYYY-MM-DD when given.
func (h *StaffingHandlerImpl) GetSalary(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffID")

	if asOf := r.URL.Query().Get("as_of"); asOf != "" {
		at, err := time.Parse("2006-01-02", asOf)
		if err != nil {
			response.BadRequest(w, "as_of must be a date in YYYY-MM-DD format", nil)
			return
		}

		component, err := h.staffingService.GetSalaryAsOf(r.Context(), staffID, at)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, component)
		return
	}

	component, err := h.staffingService.GetActiveSalary(r.Context(), staffID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, component)
}

// SalaryHistory implements StaffingHandler.
func (h *StaffingHandlerImpl) SalaryHistory(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffID")

	history, err := h.staffingService.SalaryHistory(r.Context(), staffID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, history)
}

// RecordExit implements StaffingHandler.
func (h *StaffingHandlerImpl) RecordExit(w http.ResponseWriter, r *http.Request) {
	var req staffing.RecordExitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := h.staffingService.RecordExit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Exit recorded", record)
}

// GetExitRecord implements StaffingHandler.
func (h *StaffingHandlerImpl) GetExitRecord(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffID")

	record, err := h.staffingService.GetExitRecord(r.Context(), staffID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}
