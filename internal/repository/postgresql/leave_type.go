package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/salonhq/salon-backend-go/internal/domain/leave"
	"github.com/salonhq/salon-backend-go/internal/pkg/database"
)

type leaveTypeRepository struct {
	db *database.DB
}

func NewLeaveTypeRepository(db *database.DB) leave.LeaveTypeRepository {
	return &leaveTypeRepository{db: db}
}

const leaveTypeColumns = `
	id, business_id, name, code, annual_quota_days, is_paid,
	carry_forward_allowed, max_carry_forward_days,
	encashment_allowed, encashment_rate_percent, min_encashment_days,
	is_active, created_at, updated_at`

func scanLeaveType(row pgx.Row) (leave.LeaveType, error) {
	var lt leave.LeaveType
	err := row.Scan(
		&lt.ID, &lt.BusinessID, &lt.Name, &lt.Code, &lt.AnnualQuotaDays, &lt.IsPaid,
		&lt.CarryForwardAllowed, &lt.MaxCarryForwardDays,
		&lt.EncashmentAllowed, &lt.EncashmentRatePercent, &lt.MinEncashmentDays,
		&lt.IsActive, &lt.CreatedAt, &lt.UpdatedAt,
	)
	return lt, err
}

func (r *leaveTypeRepository) Create(ctx context.Context, lt leave.LeaveType) (leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_types (
			business_id, name, code, annual_quota_days, is_paid,
			carry_forward_allowed, max_carry_forward_days,
			encashment_allowed, encashment_rate_percent, min_encashment_days, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING` + leaveTypeColumns

	created, err := scanLeaveType(q.QueryRow(ctx, query,
		lt.BusinessID, lt.Name, lt.Code, lt.AnnualQuotaDays, lt.IsPaid,
		lt.CarryForwardAllowed, lt.MaxCarryForwardDays,
		lt.EncashmentAllowed, lt.EncashmentRatePercent, lt.MinEncashmentDays, lt.IsActive,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_leave_type_code") {
			return leave.LeaveType{}, leave.ErrLeaveTypeCodeExists
		}
		return leave.LeaveType{}, fmt.Errorf("failed to create leave type: %w", err)
	}

	return created, nil
}

func (r *leaveTypeRepository) GetByID(ctx context.Context, id string, businessID string) (leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + leaveTypeColumns + `
		FROM leave_types
		WHERE id = $1 AND business_id = $2`

	lt, err := scanLeaveType(q.QueryRow(ctx, query, id, businessID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
		}
		return leave.LeaveType{}, fmt.Errorf("failed to get leave type: %w", err)
	}

	return lt, nil
}

func (r *leaveTypeRepository) ListByBusinessID(ctx context.Context, businessID string, activeOnly bool) ([]leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + leaveTypeColumns + `
		FROM leave_types
		WHERE business_id = $1`
	if activeOnly {
		query += ` AND is_active = true`
	}
	query += ` ORDER BY code`

	rows, err := q.Query(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}
	defer rows.Close()

	var types []leave.LeaveType
	for rows.Next() {
		lt, err := scanLeaveType(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave type: %w", err)
		}
		types = append(types, lt)
	}

	return types, rows.Err()
}

func (r *leaveTypeRepository) Update(ctx context.Context, businessID string, req leave.UpdateLeaveTypeRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{}
	args := []interface{}{}
	argPos := 1

	addSet := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if req.Name != nil {
		addSet("name", *req.Name)
	}
	if req.AnnualQuotaDays != nil {
		addSet("annual_quota_days", *req.AnnualQuotaDays)
	}
	if req.IsPaid != nil {
		addSet("is_paid", *req.IsPaid)
	}
	if req.CarryForwardAllowed != nil {
		addSet("carry_forward_allowed", *req.CarryForwardAllowed)
	}
	if req.MaxCarryForwardDays != nil {
		addSet("max_carry_forward_days", *req.MaxCarryForwardDays)
	}
	if req.EncashmentAllowed != nil {
		addSet("encashment_allowed", *req.EncashmentAllowed)
	}
	if req.EncashmentRatePercent != nil {
		addSet("encashment_rate_percent", *req.EncashmentRatePercent)
	}
	if req.MinEncashmentDays != nil {
		addSet("min_encashment_days", *req.MinEncashmentDays)
	}
	if req.IsActive != nil {
		addSet("is_active", *req.IsActive)
	}

	if len(setClauses) == 0 {
		return nil
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	query := fmt.Sprintf(`
		UPDATE leave_types SET %s
		WHERE id = $%d AND business_id = $%d`,
		strings.Join(setClauses, ", "), argPos, argPos+1)
	args = append(args, req.ID, businessID)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update leave type: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveTypeNotFound
	}

	return nil
}
