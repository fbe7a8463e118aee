package leave

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type LeaveTypeRepository interface {
	Create(ctx context.Context, lt LeaveType) (LeaveType, error)
	GetByID(ctx context.Context, id string, businessID string) (LeaveType, error)
	ListByBusinessID(ctx context.Context, businessID string, activeOnly bool) ([]LeaveType, error)
	Update(ctx context.Context, businessID string, req UpdateLeaveTypeRequest) error
}

type LeaveBalanceRepository interface {
	Create(ctx context.Context, balance LeaveBalance) (LeaveBalance, error)
	GetByStaffTypeYear(ctx context.Context, staffID, leaveTypeID string, year int, businessID string) (LeaveBalance, error)
	ListByStaff(ctx context.Context, staffID string, year int, businessID string) ([]LeaveBalance, error)
	Consume(ctx context.Context, id string, days decimal.Decimal) error
}

type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string, businessID string) (LeaveRequest, error)
	List(ctx context.Context, businessID string, filter RequestFilter) ([]LeaveRequest, error)
	// ListApprovedUnpaidInPeriod returns approved unpaid requests whose date
	// range overlaps [from, to]. Callers clip the overlap themselves.
	ListApprovedUnpaidInPeriod(ctx context.Context, staffID string, businessID string, from, to time.Time) ([]LeaveRequest, error)
	UpdateStatus(ctx context.Context, req UpdateRequestStatus) error
}
