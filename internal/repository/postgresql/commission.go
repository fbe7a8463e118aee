package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/salonhq/salon-backend-go/internal/domain/commission"
	"github.com/salonhq/salon-backend-go/internal/pkg/database"
)

// ========== STRUCTURES ==========

type commissionStructureRepository struct {
	db *database.DB
}

func NewCommissionStructureRepository(db *database.DB) commission.StructureRepository {
	return &commissionStructureRepository{db: db}
}

const structureColumns = `
	id, business_id, name, type, service_category,
	flat_amount_paisa, base_percentage, tiers,
	is_active, created_at, updated_at`

func scanStructure(row pgx.Row) (commission.CommissionStructure, error) {
	var s commission.CommissionStructure
	err := row.Scan(
		&s.ID, &s.BusinessID, &s.Name, &s.Type, &s.ServiceCategory,
		&s.FlatAmountPaisa, &s.BasePercentage, &s.Tiers,
		&s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

func (r *commissionStructureRepository) Create(ctx context.Context, structure commission.CommissionStructure) (commission.CommissionStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO commission_structures (
			business_id, name, type, service_category,
			flat_amount_paisa, base_percentage, tiers, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING` + structureColumns

	created, err := scanStructure(q.QueryRow(ctx, query,
		structure.BusinessID, structure.Name, structure.Type, structure.ServiceCategory,
		structure.FlatAmountPaisa, structure.BasePercentage, structure.Tiers, structure.IsActive,
	))
	if err != nil {
		return commission.CommissionStructure{}, fmt.Errorf("failed to create commission structure: %w", err)
	}

	return created, nil
}

func (r *commissionStructureRepository) GetByID(ctx context.Context, id string, businessID string) (commission.CommissionStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + structureColumns + `
		FROM commission_structures
		WHERE id = $1 AND business_id = $2`

	s, err := scanStructure(q.QueryRow(ctx, query, id, businessID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return commission.CommissionStructure{}, commission.ErrStructureNotFound
		}
		return commission.CommissionStructure{}, fmt.Errorf("failed to get commission structure: %w", err)
	}

	return s, nil
}

func (r *commissionStructureRepository) ListByBusinessID(ctx context.Context, businessID string, activeOnly bool) ([]commission.CommissionStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.business_id, s.name, s.type, s.service_category,
			   s.flat_amount_paisa, s.base_percentage, s.tiers,
			   s.is_active, s.created_at, s.updated_at,
			   COUNT(a.id)
		FROM commission_structures s
		LEFT JOIN commission_assignments a ON a.structure_id = s.id
		WHERE s.business_id = $1`
	if activeOnly {
		query += ` AND s.is_active = true`
	}
	query += `
		GROUP BY s.id
		ORDER BY s.created_at DESC`

	rows, err := q.Query(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list commission structures: %w", err)
	}
	defer rows.Close()

	var structures []commission.CommissionStructure
	for rows.Next() {
		var s commission.CommissionStructure
		if err := rows.Scan(
			&s.ID, &s.BusinessID, &s.Name, &s.Type, &s.ServiceCategory,
			&s.FlatAmountPaisa, &s.BasePercentage, &s.Tiers,
			&s.IsActive, &s.CreatedAt, &s.UpdatedAt,
			&s.AssignedStaffCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan commission structure: %w", err)
		}
		structures = append(structures, s)
	}

	return structures, rows.Err()
}

func (r *commissionStructureRepository) SetActive(ctx context.Context, id string, businessID string, active bool) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE commission_structures
		SET is_active = $1, updated_at = NOW()
		WHERE id = $2 AND business_id = $3`

	tag, err := q.Exec(ctx, query, active, id, businessID)
	if err != nil {
		return fmt.Errorf("failed to update commission structure: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return commission.ErrStructureNotFound
	}

	return nil
}

func (r *commissionStructureRepository) Delete(ctx context.Context, id string, businessID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM commission_structures WHERE id = $1 AND business_id = $2`

	tag, err := q.Exec(ctx, query, id, businessID)
	if err != nil {
		return fmt.Errorf("failed to delete commission structure: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return commission.ErrStructureNotFound
	}

	return nil
}

func (r *commissionStructureRepository) CountAssignments(ctx context.Context, structureID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM commission_assignments WHERE structure_id = $1`, structureID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count commission assignments: %w", err)
	}

	return count, nil
}

// ========== ASSIGNMENTS ==========

type commissionAssignmentRepository struct {
	db *database.DB
}

func NewCommissionAssignmentRepository(db *database.DB) commission.AssignmentRepository {
	return &commissionAssignmentRepository{db: db}
}

func (r *commissionAssignmentRepository) Create(ctx context.Context, assignment commission.Assignment) (commission.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO commission_assignments (structure_id, staff_id, business_id)
		VALUES ($1, $2, $3)
		RETURNING id, structure_id, staff_id, business_id, created_at`

	var a commission.Assignment
	err := q.QueryRow(ctx, query, assignment.StructureID, assignment.StaffID, assignment.BusinessID).Scan(
		&a.ID, &a.StructureID, &a.StaffID, &a.BusinessID, &a.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_commission_assignment") {
			return commission.Assignment{}, commission.ErrAssignmentExists
		}
		return commission.Assignment{}, fmt.Errorf("failed to create commission assignment: %w", err)
	}

	return a, nil
}

func (r *commissionAssignmentRepository) Delete(ctx context.Context, structureID, staffID, businessID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM commission_assignments
		WHERE structure_id = $1 AND staff_id = $2 AND business_id = $3`

	tag, err := q.Exec(ctx, query, structureID, staffID, businessID)
	if err != nil {
		return fmt.Errorf("failed to delete commission assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return commission.ErrAssignmentNotFound
	}

	return nil
}

func (r *commissionAssignmentRepository) GetActiveStructureForStaff(ctx context.Context, staffID string, businessID string) (commission.CommissionStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.business_id, s.name, s.type, s.service_category,
			   s.flat_amount_paisa, s.base_percentage, s.tiers,
			   s.is_active, s.created_at, s.updated_at
		FROM commission_assignments a
		JOIN commission_structures s ON s.id = a.structure_id
		WHERE a.staff_id = $1 AND a.business_id = $2 AND s.is_active = true
		ORDER BY a.created_at DESC
		LIMIT 1`

	s, err := scanStructure(q.QueryRow(ctx, query, staffID, businessID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return commission.CommissionStructure{}, commission.ErrNoStructureForStaff
		}
		return commission.CommissionStructure{}, fmt.Errorf("failed to get structure for staff: %w", err)
	}

	return s, nil
}

// ========== EARNINGS ==========

type commissionEarningRepository struct {
	db *database.DB
}

func NewCommissionEarningRepository(db *database.DB) commission.EarningRepository {
	return &commissionEarningRepository{db: db}
}

func (r *commissionEarningRepository) Create(ctx context.Context, earning commission.Earning) (commission.Earning, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO commission_earnings (
			business_id, staff_id, structure_id, service_category,
			service_value_paisa, commission_paisa, earned_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, business_id, staff_id, structure_id, service_category,
			service_value_paisa, commission_paisa, earned_at, payroll_entry_id, created_at`

	var e commission.Earning
	err := q.QueryRow(ctx, query,
		earning.BusinessID, earning.StaffID, earning.StructureID, earning.ServiceCategory,
		earning.ServiceValuePaisa, earning.CommissionPaisa, earning.EarnedAt,
	).Scan(
		&e.ID, &e.BusinessID, &e.StaffID, &e.StructureID, &e.ServiceCategory,
		&e.ServiceValuePaisa, &e.CommissionPaisa, &e.EarnedAt, &e.PayrollEntryID, &e.CreatedAt,
	)
	if err != nil {
		return commission.Earning{}, fmt.Errorf("failed to create commission earning: %w", err)
	}

	return e, nil
}

func (r *commissionEarningRepository) SumUnsettledByStaff(ctx context.Context, staffID string, businessID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var sum int64
	err := q.QueryRow(ctx, `
		SELECT COALESCE(SUM(commission_paisa), 0)
		FROM commission_earnings
		WHERE staff_id = $1 AND business_id = $2 AND payroll_entry_id IS NULL`,
		staffID, businessID,
	).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("failed to sum unsettled earnings: %w", err)
	}

	return sum, nil
}

func (r *commissionEarningRepository) SumUnsettledByStaffInPeriod(ctx context.Context, staffID string, businessID string, from, to time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var sum int64
	err := q.QueryRow(ctx, `
		SELECT COALESCE(SUM(commission_paisa), 0)
		FROM commission_earnings
		WHERE staff_id = $1 AND business_id = $2 AND payroll_entry_id IS NULL
		  AND earned_at >= $3 AND earned_at < $4`,
		staffID, businessID, from, to,
	).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("failed to sum unsettled earnings in period: %w", err)
	}

	return sum, nil
}

func (r *commissionEarningRepository) SettleByStaffInPeriod(ctx context.Context, staffID string, businessID string, from, to time.Time, payrollEntryID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		UPDATE commission_earnings
		SET payroll_entry_id = $1
		WHERE staff_id = $2 AND business_id = $3 AND payroll_entry_id IS NULL
		  AND earned_at >= $4 AND earned_at < $5`,
		payrollEntryID, staffID, businessID, from, to,
	)
	if err != nil {
		return fmt.Errorf("failed to settle commission earnings: %w", err)
	}

	return nil
}

func (r *commissionEarningRepository) ListByStaff(ctx context.Context, staffID string, businessID string) ([]commission.Earning, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, business_id, staff_id, structure_id, service_category,
			   service_value_paisa, commission_paisa, earned_at, payroll_entry_id, created_at
		FROM commission_earnings
		WHERE staff_id = $1 AND business_id = $2
		ORDER BY earned_at DESC`

	rows, err := q.Query(ctx, query, staffID, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list commission earnings: %w", err)
	}
	defer rows.Close()

	var earnings []commission.Earning
	for rows.Next() {
		var e commission.Earning
		if err := rows.Scan(
			&e.ID, &e.BusinessID, &e.StaffID, &e.StructureID, &e.ServiceCategory,
			&e.ServiceValuePaisa, &e.CommissionPaisa, &e.EarnedAt, &e.PayrollEntryID, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan commission earning: %w", err)
		}
		earnings = append(earnings, e)
	}

	return earnings, rows.Err()
}
