package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/salonhq/salon-backend-go/internal/domain/leave"
	"github.com/salonhq/salon-backend-go/internal/pkg/database"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

const leaveRequestColumns = `
	r.id, r.staff_id, r.business_id, r.leave_type_id, r.leave_balance_id,
	r.start_date, r.end_date, r.number_of_days, r.reason,
	r.is_half_day, r.half_day_slot, r.is_paid,
	r.status, r.approved_by, r.approved_at, r.rejection_reason,
	r.created_at, r.updated_at`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	err := row.Scan(
		&lr.ID, &lr.StaffID, &lr.BusinessID, &lr.LeaveTypeID, &lr.LeaveBalanceID,
		&lr.StartDate, &lr.EndDate, &lr.NumberOfDays, &lr.Reason,
		&lr.IsHalfDay, &lr.HalfDaySlot, &lr.IsPaid,
		&lr.Status, &lr.ApprovedBy, &lr.ApprovedAt, &lr.RejectionReason,
		&lr.CreatedAt, &lr.UpdatedAt,
	)
	return lr, err
}

func (r *leaveRequestRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests AS r (
			staff_id, business_id, leave_type_id, leave_balance_id,
			start_date, end_date, number_of_days, reason,
			is_half_day, half_day_slot, is_paid, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING` + leaveRequestColumns

	created, err := scanLeaveRequest(q.QueryRow(ctx, query,
		request.StaffID, request.BusinessID, request.LeaveTypeID, request.LeaveBalanceID,
		request.StartDate, request.EndDate, request.NumberOfDays, request.Reason,
		request.IsHalfDay, request.HalfDaySlot, request.IsPaid, request.Status,
	))
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return created, nil
}

func (r *leaveRequestRepository) GetByID(ctx context.Context, id string, businessID string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + leaveRequestColumns + `
		FROM leave_requests r
		WHERE r.id = $1 AND r.business_id = $2`

	lr, err := scanLeaveRequest(q.QueryRow(ctx, query, id, businessID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return lr, nil
}

func (r *leaveRequestRepository) List(ctx context.Context, businessID string, filter leave.RequestFilter) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + leaveRequestColumns + `, lt.name
		FROM leave_requests r
		JOIN leave_types lt ON lt.id = r.leave_type_id
		WHERE r.business_id = $1`
	args := []interface{}{businessID}
	argPos := 2

	if filter.Status != nil {
		query += fmt.Sprintf(" AND r.status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.StaffID != nil {
		query += fmt.Sprintf(" AND r.staff_id = $%d", argPos)
		args = append(args, *filter.StaffID)
		argPos++
	}

	query += " ORDER BY r.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var lr leave.LeaveRequest
		if err := rows.Scan(
			&lr.ID, &lr.StaffID, &lr.BusinessID, &lr.LeaveTypeID, &lr.LeaveBalanceID,
			&lr.StartDate, &lr.EndDate, &lr.NumberOfDays, &lr.Reason,
			&lr.IsHalfDay, &lr.HalfDaySlot, &lr.IsPaid,
			&lr.Status, &lr.ApprovedBy, &lr.ApprovedAt, &lr.RejectionReason,
			&lr.CreatedAt, &lr.UpdatedAt,
			&lr.LeaveTypeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, lr)
	}

	return requests, rows.Err()
}

func (r *leaveRequestRepository) ListApprovedUnpaidInPeriod(ctx context.Context, staffID string, businessID string, from, to time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + leaveRequestColumns + `
		FROM leave_requests r
		WHERE r.staff_id = $1 AND r.business_id = $2
		  AND r.status = 'approved' AND r.is_paid = false
		  AND r.start_date <= $3 AND r.end_date >= $4
		ORDER BY r.start_date`

	rows, err := q.Query(ctx, query, staffID, businessID, to, from)
	if err != nil {
		return nil, fmt.Errorf("failed to list unpaid leave requests in period: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, lr)
	}

	return requests, rows.Err()
}

// UpdateStatus transitions a request out of pending. The WHERE clause guards
// on status = 'pending' so concurrent approve/reject calls cannot both win.
func (r *leaveRequestRepository) UpdateStatus(ctx context.Context, req leave.UpdateRequestStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, approved_by = $2, approved_at = $3, rejection_reason = $4, updated_at = NOW()
		WHERE id = $5 AND business_id = $6 AND status = 'pending'`

	tag, err := q.Exec(ctx, query,
		req.Status, req.ApprovedBy, req.ApprovedAt, req.RejectionReason,
		req.ID, req.BusinessID,
	)
	if err != nil {
		return fmt.Errorf("failed to update leave request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrAlreadyProcessed
	}

	return nil
}
