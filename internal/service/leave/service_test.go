package leave

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonhq/salon-backend-go/internal/domain/leave"
)

const (
	testBusinessID = "business-1"
	testUserID     = "user-1"
	testStaffID    = "staff-1"
)

// ========== FAKES ==========

type fakeTypeRepo struct {
	types map[string]leave.LeaveType
}

func (f *fakeTypeRepo) Create(_ context.Context, lt leave.LeaveType) (leave.LeaveType, error) {
	lt.ID = fmt.Sprintf("lt-%d", len(f.types)+1)
	f.types[lt.ID] = lt
	return lt, nil
}

func (f *fakeTypeRepo) GetByID(_ context.Context, id string, businessID string) (leave.LeaveType, error) {
	lt, ok := f.types[id]
	if !ok || lt.BusinessID != businessID {
		return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
	}
	return lt, nil
}

func (f *fakeTypeRepo) ListByBusinessID(_ context.Context, businessID string, activeOnly bool) ([]leave.LeaveType, error) {
	var out []leave.LeaveType
	for _, lt := range f.types {
		if lt.BusinessID != businessID || (activeOnly && !lt.IsActive) {
			continue
		}
		out = append(out, lt)
	}
	return out, nil
}

func (f *fakeTypeRepo) Update(_ context.Context, businessID string, req leave.UpdateLeaveTypeRequest) error {
	lt, ok := f.types[req.ID]
	if !ok || lt.BusinessID != businessID {
		return leave.ErrLeaveTypeNotFound
	}
	if req.IsPaid != nil {
		lt.IsPaid = *req.IsPaid
	}
	f.types[req.ID] = lt
	return nil
}

type fakeBalanceRepo struct {
	balances map[string]leave.LeaveBalance
}

func (f *fakeBalanceRepo) Create(_ context.Context, balance leave.LeaveBalance) (leave.LeaveBalance, error) {
	balance.ID = fmt.Sprintf("bal-%d", len(f.balances)+1)
	f.balances[balance.ID] = balance
	return balance, nil
}

func (f *fakeBalanceRepo) GetByStaffTypeYear(_ context.Context, staffID, leaveTypeID string, year int, businessID string) (leave.LeaveBalance, error) {
	for _, b := range f.balances {
		if b.StaffID == staffID && b.LeaveTypeID == leaveTypeID && b.Year == year && b.BusinessID == businessID {
			return b, nil
		}
	}
	return leave.LeaveBalance{}, leave.ErrLeaveBalanceNotFound
}

func (f *fakeBalanceRepo) ListByStaff(_ context.Context, staffID string, year int, businessID string) ([]leave.LeaveBalance, error) {
	var out []leave.LeaveBalance
	for _, b := range f.balances {
		if b.StaffID == staffID && b.Year == year && b.BusinessID == businessID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBalanceRepo) Consume(_ context.Context, id string, days decimal.Decimal) error {
	b, ok := f.balances[id]
	if !ok || b.RemainingDays.LessThan(days) {
		return leave.ErrInsufficientBalance
	}
	b.UsedDays = b.UsedDays.Add(days)
	b.RemainingDays = b.RemainingDays.Sub(days)
	f.balances[id] = b
	return nil
}

type fakeRequestRepo struct {
	requests map[string]leave.LeaveRequest
}

func (f *fakeRequestRepo) Create(_ context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	request.ID = fmt.Sprintf("req-%d", len(f.requests)+1)
	f.requests[request.ID] = request
	return request, nil
}

func (f *fakeRequestRepo) GetByID(_ context.Context, id string, businessID string) (leave.LeaveRequest, error) {
	r, ok := f.requests[id]
	if !ok || r.BusinessID != businessID {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return r, nil
}

func (f *fakeRequestRepo) List(_ context.Context, businessID string, filter leave.RequestFilter) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, r := range f.requests {
		if r.BusinessID != businessID {
			continue
		}
		if filter.Status != nil && string(r.Status) != *filter.Status {
			continue
		}
		if filter.StaffID != nil && r.StaffID != *filter.StaffID {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRequestRepo) ListApprovedUnpaidInPeriod(_ context.Context, _, _ string, _, _ time.Time) ([]leave.LeaveRequest, error) {
	return nil, nil
}

// Mirrors the guarded UPDATE: only pending rows transition.
func (f *fakeRequestRepo) UpdateStatus(_ context.Context, req leave.UpdateRequestStatus) error {
	r, ok := f.requests[req.ID]
	if !ok || r.BusinessID != req.BusinessID || r.Status != leave.RequestStatusPending {
		return leave.ErrAlreadyProcessed
	}
	r.Status = req.Status
	r.ApprovedBy = req.ApprovedBy
	r.ApprovedAt = req.ApprovedAt
	r.RejectionReason = req.RejectionReason
	f.requests[req.ID] = r
	return nil
}

// ========== HELPERS ==========

func newTestService() (*LeaveServiceImpl, *fakeTypeRepo, *fakeBalanceRepo, *fakeRequestRepo) {
	typeRepo := &fakeTypeRepo{types: map[string]leave.LeaveType{}}
	balanceRepo := &fakeBalanceRepo{balances: map[string]leave.LeaveBalance{}}
	requestRepo := &fakeRequestRepo{requests: map[string]leave.LeaveRequest{}}
	svc := &LeaveServiceImpl{
		typeRepo:    typeRepo,
		balanceRepo: balanceRepo,
		requestRepo: requestRepo,
	}
	return svc, typeRepo, balanceRepo, requestRepo
}

func authedContext(t *testing.T, staffID *string) context.Context {
	ja := jwtauth.New("HS256", []byte("test-secret-key-for-jwt"), nil)
	claims := map[string]interface{}{
		"business_id": testBusinessID,
		"user_id":     testUserID,
		"type":        "access",
	}
	if staffID != nil {
		claims["staff_id"] = *staffID
	}
	token, _, err := ja.Encode(claims)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func seedLeaveType(typeRepo *fakeTypeRepo, isPaid bool) leave.LeaveType {
	lt := leave.LeaveType{
		ID:              "7c9fb1de-5c0a-4b9e-9d3c-1a2b3c4d5e6f",
		BusinessID:      testBusinessID,
		Name:            "Casual Leave",
		Code:            "CL",
		AnnualQuotaDays: 12,
		IsPaid:          isPaid,
		IsActive:        true,
	}
	typeRepo.types[lt.ID] = lt
	return lt
}

func submitRequestFixture(leaveTypeID string, start, end time.Time) leave.SubmitRequestRequest {
	return leave.SubmitRequestRequest{
		LeaveTypeID:  leaveTypeID,
		StartDate:    start.Format("2006-01-02"),
		EndDate:      end.Format("2006-01-02"),
		NumberOfDays: decimal.NewFromInt(int64(end.Sub(start).Hours()/24) + 1),
	}
}

// ========== SUBMIT ==========

func TestSubmitLeaveRequest_ReversedRange(t *testing.T) {
	svc, typeRepo, _, _ := newTestService()
	lt := seedLeaveType(typeRepo, true)
	staffID := testStaffID
	ctx := authedContext(t, &staffID)

	start := time.Now().AddDate(0, 0, 10)
	end := time.Now().AddDate(0, 0, 7)
	req := submitRequestFixture(lt.ID, start, end)
	req.NumberOfDays = decimal.NewFromInt(3)

	_, err := svc.SubmitLeaveRequest(ctx, req)
	assert.ErrorIs(t, err, leave.ErrInvalidDateRange)
}

func TestSubmitLeaveRequest_StartDateYesterday(t *testing.T) {
	svc, typeRepo, _, _ := newTestService()
	lt := seedLeaveType(typeRepo, true)
	staffID := testStaffID
	ctx := authedContext(t, &staffID)

	yesterday := time.Now().AddDate(0, 0, -1)
	req := submitRequestFixture(lt.ID, yesterday, yesterday)

	_, err := svc.SubmitLeaveRequest(ctx, req)
	assert.ErrorIs(t, err, leave.ErrStartDateInPast)
}

func TestSubmitLeaveRequest_IsPaidCopiedAtCreation(t *testing.T) {
	svc, typeRepo, _, requestRepo := newTestService()
	lt := seedLeaveType(typeRepo, true)
	staffID := testStaffID
	ctx := authedContext(t, &staffID)

	start := time.Now().AddDate(0, 0, 7)
	first, err := svc.SubmitLeaveRequest(ctx, submitRequestFixture(lt.ID, start, start))
	require.NoError(t, err)
	assert.True(t, first.IsPaid)

	// Flip the policy after submission; the stored request must keep the
	// paid flag it was created with.
	changed := typeRepo.types[lt.ID]
	changed.IsPaid = false
	typeRepo.types[lt.ID] = changed

	stored := requestRepo.requests[first.ID]
	assert.True(t, stored.IsPaid)

	second, err := svc.SubmitLeaveRequest(ctx, submitRequestFixture(lt.ID, start, start))
	require.NoError(t, err)
	assert.False(t, second.IsPaid)
}

func TestSubmitLeaveRequest_StaffIDFromClaim(t *testing.T) {
	svc, typeRepo, _, _ := newTestService()
	lt := seedLeaveType(typeRepo, true)
	staffID := testStaffID
	ctx := authedContext(t, &staffID)

	start := time.Now().AddDate(0, 0, 7)
	created, err := svc.SubmitLeaveRequest(ctx, submitRequestFixture(lt.ID, start, start))
	require.NoError(t, err)
	assert.Equal(t, testStaffID, created.StaffID)
	assert.Equal(t, string(leave.RequestStatusPending), created.Status)
}

// ========== APPROVE / REJECT ==========

func seedPendingRequest(requestRepo *fakeRequestRepo, status leave.RequestStatus) leave.LeaveRequest {
	r := leave.LeaveRequest{
		ID:           "req-seed",
		StaffID:      testStaffID,
		BusinessID:   testBusinessID,
		LeaveTypeID:  "7c9fb1de-5c0a-4b9e-9d3c-1a2b3c4d5e6f",
		StartDate:    time.Now().AddDate(0, 0, 7),
		EndDate:      time.Now().AddDate(0, 0, 8),
		NumberOfDays: decimal.NewFromInt(2),
		IsPaid:       true,
		Status:       status,
	}
	requestRepo.requests[r.ID] = r
	return r
}

func TestApproveLeaveRequest_Pending(t *testing.T) {
	svc, _, _, requestRepo := newTestService()
	r := seedPendingRequest(requestRepo, leave.RequestStatusPending)
	ctx := authedContext(t, nil)

	require.NoError(t, svc.ApproveLeaveRequest(ctx, r.ID))

	stored := requestRepo.requests[r.ID]
	assert.Equal(t, leave.RequestStatusApproved, stored.Status)
	require.NotNil(t, stored.ApprovedBy)
	assert.Equal(t, testUserID, *stored.ApprovedBy)
	assert.NotNil(t, stored.ApprovedAt)
}

func TestApproveLeaveRequest_AlreadyApproved(t *testing.T) {
	svc, _, _, requestRepo := newTestService()
	r := seedPendingRequest(requestRepo, leave.RequestStatusApproved)
	ctx := authedContext(t, nil)

	err := svc.ApproveLeaveRequest(ctx, r.ID)
	assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)
}

func TestApproveLeaveRequest_NotFound(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := authedContext(t, nil)

	err := svc.ApproveLeaveRequest(ctx, "no-such-request")
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestRejectLeaveRequest_Pending(t *testing.T) {
	svc, _, _, requestRepo := newTestService()
	r := seedPendingRequest(requestRepo, leave.RequestStatusPending)
	ctx := authedContext(t, nil)

	reason := "understaffed that week"
	require.NoError(t, svc.RejectLeaveRequest(ctx, r.ID, leave.RejectRequestRequest{Reason: &reason}))

	stored := requestRepo.requests[r.ID]
	assert.Equal(t, leave.RequestStatusRejected, stored.Status)
	require.NotNil(t, stored.RejectionReason)
	assert.Equal(t, reason, *stored.RejectionReason)
}

func TestRejectLeaveRequest_AlreadyCancelled(t *testing.T) {
	svc, _, _, requestRepo := newTestService()
	r := seedPendingRequest(requestRepo, leave.RequestStatusCancelled)
	ctx := authedContext(t, nil)

	err := svc.RejectLeaveRequest(ctx, r.ID, leave.RejectRequestRequest{})
	assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)
}

func TestRejectLeaveRequest_NotFound(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := authedContext(t, nil)

	err := svc.RejectLeaveRequest(ctx, "no-such-request", leave.RejectRequestRequest{})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

// ========== CANCEL ==========

func TestCancelLeaveRequest_NotOwner(t *testing.T) {
	svc, _, _, requestRepo := newTestService()
	r := seedPendingRequest(requestRepo, leave.RequestStatusPending)
	other := "staff-2"
	ctx := authedContext(t, &other)

	err := svc.CancelLeaveRequest(ctx, r.ID)
	assert.ErrorIs(t, err, leave.ErrNotRequestOwner)
}

func TestCancelLeaveRequest_Owner(t *testing.T) {
	svc, _, _, requestRepo := newTestService()
	r := seedPendingRequest(requestRepo, leave.RequestStatusPending)
	staffID := testStaffID
	ctx := authedContext(t, &staffID)

	require.NoError(t, svc.CancelLeaveRequest(ctx, r.ID))
	assert.Equal(t, leave.RequestStatusCancelled, requestRepo.requests[r.ID].Status)
}
