package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/salonhq/salon-backend-go/internal/domain/commission"
	"github.com/salonhq/salon-backend-go/internal/handler/http/response"
)

type CommissionHandler interface {
	CreateStructure(w http.ResponseWriter, r *http.Request)
	ListStructures(w http.ResponseWriter, r *http.Request)
	GetStructure(w http.ResponseWriter, r *http.Request)
	DeactivateStructure(w http.ResponseWriter, r *http.Request)
	DeleteStructure(w http.ResponseWriter, r *http.Request)

	AssignStaff(w http.ResponseWriter, r *http.Request)
	UnassignStaff(w http.ResponseWriter, r *http.Request)

	RecordSale(w http.ResponseWriter, r *http.Request)
	ListEarnings(w http.ResponseWriter, r *http.Request)
}

type CommissionHandlerImpl struct {
	commissionService commission.CommissionService
}

func NewCommissionHandler(commissionService commission.CommissionService) CommissionHandler {
	return &CommissionHandlerImpl{commissionService: commissionService}
}

// CreateStructure implements CommissionHandler.
func (h *CommissionHandlerImpl) CreateStructure(w http.ResponseWriter, r *http.Request) {
	var req commission.CreateStructureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	structure, err := h.commissionService.CreateStructure(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Commission structure created", structure)
}

// ListStructures implements CommissionHandler.
func (h *CommissionHandlerImpl) ListStructures(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	structures, err := h.commissionService.ListStructures(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, structures)
}

// GetStructure implements CommissionHandler.
func (h *CommissionHandlerImpl) GetStructure(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	structure, err := h.commissionService.GetStructure(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, structure)
}

// DeactivateStructure implements CommissionHandler.
func (h *CommissionHandlerImpl) DeactivateStructure(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.commissionService.DeactivateStructure(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Commission structure deactivated", nil)
}

// DeleteStructure implements CommissionHandler.
func (h *CommissionHandlerImpl) DeleteStructure(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.commissionService.DeleteStructure(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Commission structure deleted", nil)
}

// AssignStaff implements CommissionHandler.
func (h *CommissionHandlerImpl) AssignStaff(w http.ResponseWriter, r *http.Request) {
	structureID := chi.URLParam(r, "id")

	var req commission.AssignStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.commissionService.AssignStaff(r.Context(), structureID, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Staff assigned to commission structure", nil)
}

// UnassignStaff implements CommissionHandler.
func (h *CommissionHandlerImpl) UnassignStaff(w http.ResponseWriter, r *http.Request) {
	structureID := chi.URLParam(r, "id")
	staffID := chi.URLParam(r, "staffID")

	if err := h.commissionService.UnassignStaff(r.Context(), structureID, staffID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Staff unassigned from commission structure", nil)
}

// RecordSale implements CommissionHandler.
func (h *CommissionHandlerImpl) RecordSale(w http.ResponseWriter, r *http.Request) {
	var req commission.RecordSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	earning, err := h.commissionService.RecordServiceSale(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Commission earning recorded", earning)
}

// ListEarnings implements CommissionHandler.
func (h *CommissionHandlerImpl) ListEarnings(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffID")

	earnings, err := h.commissionService.ListEarnings(r.Context(), staffID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, earnings)
}
