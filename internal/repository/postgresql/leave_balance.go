package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/salonhq/salon-backend-go/internal/domain/leave"
	"github.com/salonhq/salon-backend-go/internal/pkg/database"
)

type leaveBalanceRepository struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.LeaveBalanceRepository {
	return &leaveBalanceRepository{db: db}
}

func (r *leaveBalanceRepository) Create(ctx context.Context, balance leave.LeaveBalance) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_balances (
			staff_id, business_id, leave_type_id, year,
			allocated_days, used_days, remaining_days
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, staff_id, business_id, leave_type_id, year,
			allocated_days, used_days, remaining_days, created_at, updated_at`

	var b leave.LeaveBalance
	err := q.QueryRow(ctx, query,
		balance.StaffID, balance.BusinessID, balance.LeaveTypeID, balance.Year,
		balance.AllocatedDays, balance.UsedDays, balance.RemainingDays,
	).Scan(
		&b.ID, &b.StaffID, &b.BusinessID, &b.LeaveTypeID, &b.Year,
		&b.AllocatedDays, &b.UsedDays, &b.RemainingDays, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_leave_balance_staff_type_year") {
			return leave.LeaveBalance{}, leave.ErrLeaveBalanceExists
		}
		return leave.LeaveBalance{}, fmt.Errorf("failed to create leave balance: %w", err)
	}

	return b, nil
}

func (r *leaveBalanceRepository) GetByStaffTypeYear(ctx context.Context, staffID, leaveTypeID string, year int, businessID string) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, staff_id, business_id, leave_type_id, year,
			   allocated_days, used_days, remaining_days, created_at, updated_at
		FROM leave_balances
		WHERE staff_id = $1 AND leave_type_id = $2 AND year = $3 AND business_id = $4`

	var b leave.LeaveBalance
	err := q.QueryRow(ctx, query, staffID, leaveTypeID, year, businessID).Scan(
		&b.ID, &b.StaffID, &b.BusinessID, &b.LeaveTypeID, &b.Year,
		&b.AllocatedDays, &b.UsedDays, &b.RemainingDays, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveBalance{}, leave.ErrLeaveBalanceNotFound
		}
		return leave.LeaveBalance{}, fmt.Errorf("failed to get leave balance: %w", err)
	}

	return b, nil
}

func (r *leaveBalanceRepository) ListByStaff(ctx context.Context, staffID string, year int, businessID string) ([]leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT b.id, b.staff_id, b.business_id, b.leave_type_id, b.year,
			   b.allocated_days, b.used_days, b.remaining_days, b.created_at, b.updated_at,
			   lt.name, lt.code
		FROM leave_balances b
		JOIN leave_types lt ON lt.id = b.leave_type_id
		WHERE b.staff_id = $1 AND b.year = $2 AND b.business_id = $3
		ORDER BY lt.code`

	rows, err := q.Query(ctx, query, staffID, year, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave balances: %w", err)
	}
	defer rows.Close()

	var balances []leave.LeaveBalance
	for rows.Next() {
		var b leave.LeaveBalance
		if err := rows.Scan(
			&b.ID, &b.StaffID, &b.BusinessID, &b.LeaveTypeID, &b.Year,
			&b.AllocatedDays, &b.UsedDays, &b.RemainingDays, &b.CreatedAt, &b.UpdatedAt,
			&b.LeaveTypeName, &b.LeaveTypeCode,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave balance: %w", err)
		}
		balances = append(balances, b)
	}

	return balances, rows.Err()
}

// Consume deducts approved leave days from the balance row. The WHERE clause
// guards on remaining_days so the balance can never go negative.
func (r *leaveBalanceRepository) Consume(ctx context.Context, id string, days decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_balances
		SET used_days = used_days + $1,
			remaining_days = remaining_days - $1,
			updated_at = NOW()
		WHERE id = $2 AND remaining_days >= $1`

	tag, err := q.Exec(ctx, query, days, id)
	if err != nil {
		return fmt.Errorf("failed to consume leave balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrInsufficientBalance
	}

	return nil
}
