package leave

import (
	"time"

	"github.com/shopspring/decimal"
)

// LeaveType - per-business leave policy
type LeaveType struct {
	ID         string
	BusinessID string
	Name       string
	Code       string // unique per business, <= 10 chars

	AnnualQuotaDays int
	IsPaid          bool

	CarryForwardAllowed bool
	MaxCarryForwardDays int

	EncashmentAllowed     bool
	EncashmentRatePercent decimal.Decimal
	MinEncashmentDays     int

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LeaveBalance - per (staff, leaveType, year). Day counts are decimal so that
// half-day requests consume 0.5.
type LeaveBalance struct {
	ID          string
	StaffID     string
	BusinessID  string
	LeaveTypeID string
	Year        int

	AllocatedDays decimal.Decimal
	UsedDays      decimal.Decimal
	RemainingDays decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	LeaveTypeName *string
	LeaveTypeCode *string
}

type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusApproved  RequestStatus = "approved"
	RequestStatusRejected  RequestStatus = "rejected"
	RequestStatusCancelled RequestStatus = "cancelled"
)

type HalfDaySlot string

const (
	HalfDayFirstHalf  HalfDaySlot = "first_half"
	HalfDaySecondHalf HalfDaySlot = "second_half"
)

// LeaveRequest - individual time-off application.
// IsPaid is copied from the leave type at creation time; later policy changes
// must not retroactively alter submitted requests.
type LeaveRequest struct {
	ID             string
	StaffID        string
	BusinessID     string
	LeaveTypeID    string
	LeaveBalanceID *string

	StartDate    time.Time
	EndDate      time.Time
	NumberOfDays decimal.Decimal
	Reason       *string
	IsHalfDay    bool
	HalfDaySlot  *HalfDaySlot
	IsPaid       bool

	Status          RequestStatus
	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectionReason *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	LeaveTypeName *string
}
