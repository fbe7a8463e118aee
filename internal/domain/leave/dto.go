package leave

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/salonhq/salon-backend-go/internal/pkg/validator"
)

// ========== LEAVE TYPE DTOs ==========

type CreateLeaveTypeRequest struct {
	Name                  string   `json:"name"`
	Code                  string   `json:"code"`
	AnnualQuotaDays       int      `json:"annual_quota_days"`
	IsPaid                *bool    `json:"is_paid,omitempty"`
	CarryForwardAllowed   bool     `json:"carry_forward_allowed"`
	MaxCarryForwardDays   int      `json:"max_carry_forward_days"`
	EncashmentAllowed     bool     `json:"encashment_allowed"`
	EncashmentRatePercent *float64 `json:"encashment_rate_percent,omitempty"`
	MinEncashmentDays     int      `json:"min_encashment_days"`
}

func (r *CreateLeaveTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsValidLeaveTypeCode(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "must be 1-10 uppercase letters, digits or underscores"})
	}
	if r.AnnualQuotaDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "annual_quota_days", Message: "must be non-negative"})
	}
	if r.MaxCarryForwardDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "max_carry_forward_days", Message: "must be non-negative"})
	}
	if r.EncashmentRatePercent != nil && !validator.IsValidPercent(*r.EncashmentRatePercent) {
		errs = append(errs, validator.ValidationError{Field: "encashment_rate_percent", Message: "must be between 0 and 100"})
	}
	if r.MinEncashmentDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "min_encashment_days", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateLeaveTypeRequest struct {
	ID                    string
	Name                  *string  `json:"name,omitempty"`
	AnnualQuotaDays       *int     `json:"annual_quota_days,omitempty"`
	IsPaid                *bool    `json:"is_paid,omitempty"`
	CarryForwardAllowed   *bool    `json:"carry_forward_allowed,omitempty"`
	MaxCarryForwardDays   *int     `json:"max_carry_forward_days,omitempty"`
	EncashmentAllowed     *bool    `json:"encashment_allowed,omitempty"`
	EncashmentRatePercent *float64 `json:"encashment_rate_percent,omitempty"`
	MinEncashmentDays     *int     `json:"min_encashment_days,omitempty"`
	IsActive              *bool    `json:"is_active,omitempty"`
}

func (r *UpdateLeaveTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.AnnualQuotaDays != nil && *r.AnnualQuotaDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "annual_quota_days", Message: "must be non-negative"})
	}
	if r.MaxCarryForwardDays != nil && *r.MaxCarryForwardDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "max_carry_forward_days", Message: "must be non-negative"})
	}
	if r.EncashmentRatePercent != nil && !validator.IsValidPercent(*r.EncashmentRatePercent) {
		errs = append(errs, validator.ValidationError{Field: "encashment_rate_percent", Message: "must be between 0 and 100"})
	}
	if r.MinEncashmentDays != nil && *r.MinEncashmentDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "min_encashment_days", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveTypeResponse struct {
	ID                    string          `json:"id"`
	BusinessID            string          `json:"business_id"`
	Name                  string          `json:"name"`
	Code                  string          `json:"code"`
	AnnualQuotaDays       int             `json:"annual_quota_days"`
	IsPaid                bool            `json:"is_paid"`
	CarryForwardAllowed   bool            `json:"carry_forward_allowed"`
	MaxCarryForwardDays   int             `json:"max_carry_forward_days"`
	EncashmentAllowed     bool            `json:"encashment_allowed"`
	EncashmentRatePercent decimal.Decimal `json:"encashment_rate_percent"`
	MinEncashmentDays     int             `json:"min_encashment_days"`
	IsActive              bool            `json:"is_active"`
}

// ========== BALANCE DTOs ==========

type AllocateBalanceRequest struct {
	StaffID       string          `json:"staff_id"`
	LeaveTypeID   string          `json:"leave_type_id"`
	Year          int             `json:"year"`
	AllocatedDays decimal.Decimal `json:"allocated_days"`
}

func (r *AllocateBalanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{Field: "staff_id", Message: "is required"})
	}
	if validator.IsEmpty(r.LeaveTypeID) {
		errs = append(errs, validator.ValidationError{Field: "leave_type_id", Message: "is required"})
	} else if !validator.IsValidUUID(r.LeaveTypeID) {
		errs = append(errs, validator.ValidationError{Field: "leave_type_id", Message: "must be a valid UUID"})
	}
	if r.Year < 2020 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be 2020 or later"})
	}
	if r.AllocatedDays.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "allocated_days", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BalanceResponse struct {
	ID            string          `json:"id"`
	StaffID       string          `json:"staff_id"`
	LeaveTypeID   string          `json:"leave_type_id"`
	LeaveTypeName *string         `json:"leave_type_name,omitempty"`
	LeaveTypeCode *string         `json:"leave_type_code,omitempty"`
	Year          int             `json:"year"`
	AllocatedDays decimal.Decimal `json:"allocated_days"`
	UsedDays      decimal.Decimal `json:"used_days"`
	RemainingDays decimal.Decimal `json:"remaining_days"`
}

// ========== REQUEST DTOs ==========

type SubmitRequestRequest struct {
	StaffID      string          `json:"-"`
	LeaveTypeID  string          `json:"leave_type_id"`
	StartDate    string          `json:"start_date"`
	EndDate      string          `json:"end_date"`
	NumberOfDays decimal.Decimal `json:"number_of_days"`
	Reason       *string         `json:"reason,omitempty"`
	IsHalfDay    bool            `json:"is_half_day"`
	HalfDaySlot  *string         `json:"half_day_slot,omitempty"`
}

func (r *SubmitRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveTypeID) {
		errs = append(errs, validator.ValidationError{Field: "leave_type_id", Message: "is required"})
	} else if !validator.IsValidUUID(r.LeaveTypeID) {
		errs = append(errs, validator.ValidationError{Field: "leave_type_id", Message: "must be a valid UUID"})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a date in YYYY-MM-DD format"})
	}
	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a date in YYYY-MM-DD format"})
	}
	if !r.NumberOfDays.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "number_of_days", Message: "must be positive"})
	}
	if r.IsHalfDay {
		if r.HalfDaySlot == nil || !validator.IsInSlice(*r.HalfDaySlot, []string{"first_half", "second_half"}) {
			errs = append(errs, validator.ValidationError{Field: "half_day_slot", Message: "must be first_half or second_half for half-day requests"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectRequestRequest struct {
	Reason *string `json:"reason,omitempty"`
}

type UpdateRequestStatus struct {
	ID              string
	BusinessID      string
	Status          RequestStatus
	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectionReason *string
}

type RequestFilter struct {
	Status  *string
	StaffID *string
}

type RequestResponse struct {
	ID              string          `json:"id"`
	StaffID         string          `json:"staff_id"`
	LeaveTypeID     string          `json:"leave_type_id"`
	LeaveTypeName   *string         `json:"leave_type_name,omitempty"`
	LeaveBalanceID  *string         `json:"leave_balance_id,omitempty"`
	StartDate       string          `json:"start_date"`
	EndDate         string          `json:"end_date"`
	NumberOfDays    decimal.Decimal `json:"number_of_days"`
	Reason          *string         `json:"reason,omitempty"`
	IsHalfDay       bool            `json:"is_half_day"`
	HalfDaySlot     *string         `json:"half_day_slot,omitempty"`
	IsPaid          bool            `json:"is_paid"`
	Status          string          `json:"status"`
	ApprovedBy      *string         `json:"approved_by,omitempty"`
	ApprovedAt      *string         `json:"approved_at,omitempty"`
	RejectionReason *string         `json:"rejection_reason,omitempty"`
}
