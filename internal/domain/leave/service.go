package leave

import (
	"context"
)

type LeaveService interface {
	// Type
	CreateLeaveType(ctx context.Context, req CreateLeaveTypeRequest) (LeaveTypeResponse, error)
	ListLeaveTypes(ctx context.Context, activeOnly bool) ([]LeaveTypeResponse, error)
	UpdateLeaveType(ctx context.Context, req UpdateLeaveTypeRequest) (LeaveTypeResponse, error)
	// Balance
	AllocateBalance(ctx context.Context, req AllocateBalanceRequest) (BalanceResponse, error)
	GetBalances(ctx context.Context, staffID string, year int) ([]BalanceResponse, error)
	// Request
	SubmitLeaveRequest(ctx context.Context, req SubmitRequestRequest) (RequestResponse, error)
	ApproveLeaveRequest(ctx context.Context, requestID string) error
	RejectLeaveRequest(ctx context.Context, requestID string, req RejectRequestRequest) error
	CancelLeaveRequest(ctx context.Context, requestID string) error
	ListLeaveRequests(ctx context.Context, filter RequestFilter) ([]RequestResponse, error)
}
