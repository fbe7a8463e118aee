package leave

import "errors"

var (
	ErrLeaveTypeNotFound    = errors.New("leave type not found")
	ErrLeaveTypeCodeExists  = errors.New("leave type code already exists for this business")
	ErrLeaveBalanceNotFound = errors.New("leave balance not found")
	ErrLeaveBalanceExists   = errors.New("leave balance already allocated for this staff, type and year")
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrAlreadyProcessed     = errors.New("leave request already processed")
	ErrInvalidDateRange     = errors.New("start date must not be after end date")
	ErrStartDateInPast      = errors.New("leave request cannot start in the past")
	ErrNotRequestOwner      = errors.New("only the requester can cancel a leave request")
	ErrHalfDayMultipleDays  = errors.New("half-day leave must cover a single day")
	ErrInsufficientBalance  = errors.New("insufficient leave balance")
)
