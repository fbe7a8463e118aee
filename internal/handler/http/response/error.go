package response

import (
	"errors"
	"net/http"

	"github.com/salonhq/salon-backend-go/internal/domain/auth"
	"github.com/salonhq/salon-backend-go/internal/domain/commission"
	"github.com/salonhq/salon-backend-go/internal/domain/leave"
	"github.com/salonhq/salon-backend-go/internal/domain/payroll"
	"github.com/salonhq/salon-backend-go/internal/domain/staffing"
	"github.com/salonhq/salon-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrBusinessScopeMissing):
		Unauthorized(w, "Business scope missing from token")
	case errors.Is(err, auth.ErrOwnerPrivilegeRequired):
		Forbidden(w, "Owner or admin privilege required")

	// Staffing
	case errors.Is(err, staffing.ErrProfileNotFound):
		NotFound(w, "Employment profile not found")
	case errors.Is(err, staffing.ErrProfileExists):
		Conflict(w, "Employment profile already exists for this staff member")
	case errors.Is(err, staffing.ErrProfileFrozen):
		Conflict(w, "Employment profile is resigned or terminated")
	case errors.Is(err, staffing.ErrSalaryComponentNotFound):
		NotFound(w, "No salary component found")
	case errors.Is(err, staffing.ErrExitRecordExists):
		Conflict(w, "Exit record already exists for this staff member")
	case errors.Is(err, staffing.ErrExitRecordNotFound):
		NotFound(w, "Exit record not found")

	// Leave
	case errors.Is(err, leave.ErrLeaveTypeNotFound):
		NotFound(w, "Leave type not found")
	case errors.Is(err, leave.ErrLeaveTypeCodeExists):
		Conflict(w, "Leave type code already exists")
	case errors.Is(err, leave.ErrLeaveBalanceNotFound):
		NotFound(w, "Leave balance not found")
	case errors.Is(err, leave.ErrLeaveBalanceExists):
		Conflict(w, "Leave balance already allocated for this staff, type and year")
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInsufficientBalance):
		Conflict(w, "Insufficient leave balance")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "Start date must not be after end date", nil)
	case errors.Is(err, leave.ErrStartDateInPast):
		BadRequest(w, "Leave request cannot start in the past", nil)
	case errors.Is(err, leave.ErrHalfDayMultipleDays):
		BadRequest(w, "Half-day leave must cover a single day", nil)
	case errors.Is(err, leave.ErrNotRequestOwner):
		Forbidden(w, "Only the requester can cancel a leave request")

	// Commission
	case errors.Is(err, commission.ErrStructureNotFound):
		NotFound(w, "Commission structure not found")
	case errors.Is(err, commission.ErrStructureAssigned):
		Conflict(w, "Commission structure still assigned to staff; deactivate instead")
	case errors.Is(err, commission.ErrStructureInactive):
		Conflict(w, "Commission structure is inactive")
	case errors.Is(err, commission.ErrAssignmentNotFound):
		NotFound(w, "Commission assignment not found")
	case errors.Is(err, commission.ErrAssignmentExists):
		Conflict(w, "Staff member already assigned to this structure")
	case errors.Is(err, commission.ErrNoStructureForStaff):
		NotFound(w, "No active commission structure assigned to staff member")
	case errors.Is(err, commission.ErrNoTierMatch):
		BadRequest(w, "Service value not covered by any tier", nil)
	case errors.Is(err, commission.ErrAmbiguousTiers):
		BadRequest(w, "Service value covered by more than one tier", nil)
	case errors.Is(err, commission.ErrCategoryNotApplicable):
		BadRequest(w, "Structure does not apply to this service category", nil)

	// Payroll
	case errors.Is(err, payroll.ErrCycleNotFound):
		NotFound(w, "Payroll cycle not found")
	case errors.Is(err, payroll.ErrCycleExists):
		Conflict(w, "Payroll cycle already exists for this period")
	case errors.Is(err, payroll.ErrCycleNotDraft):
		Conflict(w, "Payroll cycle already processed")
	case errors.Is(err, payroll.ErrCycleNotProcessed):
		Conflict(w, "Payroll cycle is not in processed state")
	case errors.Is(err, payroll.ErrCycleNotApproved):
		Conflict(w, "Payroll cycle is not in approved state")
	case errors.Is(err, payroll.ErrCyclePaid):
		Conflict(w, "Payroll cycle is paid and immutable")
	case errors.Is(err, payroll.ErrEntryNotFound):
		NotFound(w, "Payroll entry not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
