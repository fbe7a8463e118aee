package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"

	"github.com/salonhq/salon-backend-go/internal/domain/auth"
	"github.com/salonhq/salon-backend-go/internal/domain/leave"
	"github.com/salonhq/salon-backend-go/internal/pkg/database"
	"github.com/salonhq/salon-backend-go/internal/repository/postgresql"
)

type LeaveServiceImpl struct {
	db          *database.DB
	typeRepo    leave.LeaveTypeRepository
	balanceRepo leave.LeaveBalanceRepository
	requestRepo leave.LeaveRequestRepository
}

func NewLeaveService(
	db *database.DB,
	typeRepo leave.LeaveTypeRepository,
	balanceRepo leave.LeaveBalanceRepository,
	requestRepo leave.LeaveRequestRepository,
) leave.LeaveService {
	return &LeaveServiceImpl{
		db:          db,
		typeRepo:    typeRepo,
		balanceRepo: balanceRepo,
		requestRepo: requestRepo,
	}
}

// Helper to get business_id, user_id and staff_id from JWT context
func getClaimsFromContext(ctx context.Context) (businessID, userID string, staffID *string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", nil, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	businessID, ok := claims["business_id"].(string)
	if !ok || businessID == "" {
		return "", "", nil, auth.ErrBusinessScopeMissing
	}

	userID, _ = claims["user_id"].(string)
	if sid, ok := claims["staff_id"].(string); ok && sid != "" {
		staffID = &sid
	}

	return businessID, userID, staffID, nil
}

// ========== TYPES ==========

func (s *LeaveServiceImpl) CreateLeaveType(ctx context.Context, req leave.CreateLeaveTypeRequest) (leave.LeaveTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	businessID, _, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	isPaid := true
	if req.IsPaid != nil {
		isPaid = *req.IsPaid
	}

	encashmentRate := decimal.Zero
	if req.EncashmentRatePercent != nil {
		encashmentRate = decimal.NewFromFloat(*req.EncashmentRatePercent)
	}

	lt := leave.LeaveType{
		BusinessID:            businessID,
		Name:                  req.Name,
		Code:                  req.Code,
		AnnualQuotaDays:       req.AnnualQuotaDays,
		IsPaid:                isPaid,
		CarryForwardAllowed:   req.CarryForwardAllowed,
		MaxCarryForwardDays:   req.MaxCarryForwardDays,
		EncashmentAllowed:     req.EncashmentAllowed,
		EncashmentRatePercent: encashmentRate,
		MinEncashmentDays:     req.MinEncashmentDays,
		IsActive:              true,
	}

	created, err := s.typeRepo.Create(ctx, lt)
	if err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	return toLeaveTypeResponse(created), nil
}

func (s *LeaveServiceImpl) ListLeaveTypes(ctx context.Context, activeOnly bool) ([]leave.LeaveTypeResponse, error) {
	businessID, _, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	types, err := s.typeRepo.ListByBusinessID(ctx, businessID, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveTypeResponse, 0, len(types))
	for _, lt := range types {
		responses = append(responses, toLeaveTypeResponse(lt))
	}

	return responses, nil
}

func (s *LeaveServiceImpl) UpdateLeaveType(ctx context.Context, req leave.UpdateLeaveTypeRequest) (leave.LeaveTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	businessID, _, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	if err := s.typeRepo.Update(ctx, businessID, req); err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	updated, err := s.typeRepo.GetByID(ctx, req.ID, businessID)
	if err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	return toLeaveTypeResponse(updated), nil
}

// ========== BALANCES ==========

func (s *LeaveServiceImpl) AllocateBalance(ctx context.Context, req leave.AllocateBalanceRequest) (leave.BalanceResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.BalanceResponse{}, err
	}

	businessID, _, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return leave.BalanceResponse{}, err
	}

	// Leave type must belong to the business.
	if _, err := s.typeRepo.GetByID(ctx, req.LeaveTypeID, businessID); err != nil {
		return leave.BalanceResponse{}, err
	}

	balance := leave.LeaveBalance{
		StaffID:       req.StaffID,
		BusinessID:    businessID,
		LeaveTypeID:   req.LeaveTypeID,
		Year:          req.Year,
		AllocatedDays: req.AllocatedDays,
		UsedDays:      decimal.Zero,
		RemainingDays: req.AllocatedDays,
	}

	created, err := s.balanceRepo.Create(ctx, balance)
	if err != nil {
		return leave.BalanceResponse{}, err
	}

	return toBalanceResponse(created), nil
}

func (s *LeaveServiceImpl) GetBalances(ctx context.Context, staffID string, year int) ([]leave.BalanceResponse, error) {
	businessID, _, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	balances, err := s.balanceRepo.ListByStaff(ctx, staffID, year, businessID)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.BalanceResponse, 0, len(balances))
	for _, b := range balances {
		responses = append(responses, toBalanceResponse(b))
	}

	return responses, nil
}

// ========== REQUESTS ==========

func (s *LeaveServiceImpl) SubmitLeaveRequest(ctx context.Context, req leave.SubmitRequestRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	businessID, _, staffIDClaim, err := getClaimsFromContext(ctx)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	staffID := req.StaffID
	if staffID == "" && staffIDClaim != nil {
		staffID = *staffIDClaim
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	if startDate.After(endDate) {
		return leave.RequestResponse{}, leave.ErrInvalidDateRange
	}
	today := time.Now().Truncate(24 * time.Hour)
	if startDate.Before(today) {
		return leave.RequestResponse{}, leave.ErrStartDateInPast
	}
	if req.IsHalfDay && !startDate.Equal(endDate) {
		return leave.RequestResponse{}, leave.ErrHalfDayMultipleDays
	}

	leaveType, err := s.typeRepo.GetByID(ctx, req.LeaveTypeID, businessID)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	numberOfDays := req.NumberOfDays
	if req.IsHalfDay {
		numberOfDays = decimal.NewFromFloat(0.5)
	}

	// Link the matching balance row when one exists; unallocated staff can
	// still submit, the request simply has nothing to consume on approval.
	var balanceID *string
	balance, err := s.balanceRepo.GetByStaffTypeYear(ctx, staffID, req.LeaveTypeID, startDate.Year(), businessID)
	if err == nil {
		balanceID = &balance.ID
	} else if err != leave.ErrLeaveBalanceNotFound {
		return leave.RequestResponse{}, err
	}

	var halfDaySlot *leave.HalfDaySlot
	if req.HalfDaySlot != nil {
		slot := leave.HalfDaySlot(*req.HalfDaySlot)
		halfDaySlot = &slot
	}

	request := leave.LeaveRequest{
		StaffID:        staffID,
		BusinessID:     businessID,
		LeaveTypeID:    req.LeaveTypeID,
		LeaveBalanceID: balanceID,
		StartDate:      startDate,
		EndDate:        endDate,
		NumberOfDays:   numberOfDays,
		Reason:         req.Reason,
		IsHalfDay:      req.IsHalfDay,
		HalfDaySlot:    halfDaySlot,
		IsPaid:         leaveType.IsPaid,
		Status:         leave.RequestStatusPending,
	}

	created, err := s.requestRepo.Create(ctx, request)
	if err != nil {
		return leave.RequestResponse{}, err
	}
	created.LeaveTypeName = &leaveType.Name

	return toRequestResponse(created), nil
}

// ApproveLeaveRequest transitions pending -> approved and consumes the linked
// balance in the same transaction. The status-guarded UPDATE still backstops
// the pending check against concurrent approvals.
func (s *LeaveServiceImpl) ApproveLeaveRequest(ctx context.Context, requestID string) error {
	businessID, userID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	request, err := s.requestRepo.GetByID(ctx, requestID, businessID)
	if err != nil {
		return err
	}
	if request.Status != leave.RequestStatusPending {
		return leave.ErrAlreadyProcessed
	}

	now := time.Now()
	update := leave.UpdateRequestStatus{
		ID:         requestID,
		BusinessID: businessID,
		Status:     leave.RequestStatusApproved,
		ApprovedBy: &userID,
		ApprovedAt: &now,
	}

	if request.LeaveBalanceID == nil {
		return s.requestRepo.UpdateStatus(ctx, update)
	}

	return postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		if err := s.requestRepo.UpdateStatus(ctx, update); err != nil {
			return err
		}
		return s.balanceRepo.Consume(ctx, *request.LeaveBalanceID, request.NumberOfDays)
	})
}

func (s *LeaveServiceImpl) RejectLeaveRequest(ctx context.Context, requestID string, req leave.RejectRequestRequest) error {
	businessID, userID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	request, err := s.requestRepo.GetByID(ctx, requestID, businessID)
	if err != nil {
		return err
	}
	if request.Status != leave.RequestStatusPending {
		return leave.ErrAlreadyProcessed
	}

	now := time.Now()
	return s.requestRepo.UpdateStatus(ctx, leave.UpdateRequestStatus{
		ID:              requestID,
		BusinessID:      businessID,
		Status:          leave.RequestStatusRejected,
		ApprovedBy:      &userID,
		ApprovedAt:      &now,
		RejectionReason: req.Reason,
	})
}

func (s *LeaveServiceImpl) CancelLeaveRequest(ctx context.Context, requestID string) error {
	businessID, _, staffIDClaim, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	request, err := s.requestRepo.GetByID(ctx, requestID, businessID)
	if err != nil {
		return err
	}

	if staffIDClaim == nil || request.StaffID != *staffIDClaim {
		return leave.ErrNotRequestOwner
	}

	return s.requestRepo.UpdateStatus(ctx, leave.UpdateRequestStatus{
		ID:         requestID,
		BusinessID: businessID,
		Status:     leave.RequestStatusCancelled,
	})
}

func (s *LeaveServiceImpl) ListLeaveRequests(ctx context.Context, filter leave.RequestFilter) ([]leave.RequestResponse, error) {
	businessID, _, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	requests, err := s.requestRepo.List(ctx, businessID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.RequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, toRequestResponse(r))
	}

	return responses, nil
}

// ========== MAPPERS ==========

func toLeaveTypeResponse(lt leave.LeaveType) leave.LeaveTypeResponse {
	return leave.LeaveTypeResponse{
		ID:                    lt.ID,
		BusinessID:            lt.BusinessID,
		Name:                  lt.Name,
		Code:                  lt.Code,
		AnnualQuotaDays:       lt.AnnualQuotaDays,
		IsPaid:                lt.IsPaid,
		CarryForwardAllowed:   lt.CarryForwardAllowed,
		MaxCarryForwardDays:   lt.MaxCarryForwardDays,
		EncashmentAllowed:     lt.EncashmentAllowed,
		EncashmentRatePercent: lt.EncashmentRatePercent,
		MinEncashmentDays:     lt.MinEncashmentDays,
		IsActive:              lt.IsActive,
	}
}

func toBalanceResponse(b leave.LeaveBalance) leave.BalanceResponse {
	return leave.BalanceResponse{
		ID:            b.ID,
		StaffID:       b.StaffID,
		LeaveTypeID:   b.LeaveTypeID,
		LeaveTypeName: b.LeaveTypeName,
		LeaveTypeCode: b.LeaveTypeCode,
		Year:          b.Year,
		AllocatedDays: b.AllocatedDays,
		UsedDays:      b.UsedDays,
		RemainingDays: b.RemainingDays,
	}
}

func toRequestResponse(r leave.LeaveRequest) leave.RequestResponse {
	var halfDaySlot *string
	if r.HalfDaySlot != nil {
		slot := string(*r.HalfDaySlot)
		halfDaySlot = &slot
	}
	var approvedAt *string
	if r.ApprovedAt != nil {
		formatted := r.ApprovedAt.Format(time.RFC3339)
		approvedAt = &formatted
	}

	return leave.RequestResponse{
		ID:              r.ID,
		StaffID:         r.StaffID,
		LeaveTypeID:     r.LeaveTypeID,
		LeaveTypeName:   r.LeaveTypeName,
		LeaveBalanceID:  r.LeaveBalanceID,
		StartDate:       r.StartDate.Format("2006-01-02"),
		EndDate:         r.EndDate.Format("2006-01-02"),
		NumberOfDays:    r.NumberOfDays,
		Reason:          r.Reason,
		IsHalfDay:       r.IsHalfDay,
		HalfDaySlot:     halfDaySlot,
		IsPaid:          r.IsPaid,
		Status:          string(r.Status),
		ApprovedBy:      r.ApprovedBy,
		ApprovedAt:      approvedAt,
		RejectionReason: r.RejectionReason,
	}
}
