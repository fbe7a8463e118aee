package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/salonhq/salon-backend-go/internal/domain/payroll"
	"github.com/salonhq/salon-backend-go/internal/pkg/database"
)

// ========== CYCLES ==========

type payrollCycleRepository struct {
	db *database.DB
}

func NewPayrollCycleRepository(db *database.DB) payroll.CycleRepository {
	return &payrollCycleRepository{db: db}
}

const cycleColumns = `
	id, business_id, period_year, period_month, period_start, period_end, status,
	total_staff_count, total_gross_salary_paisa, total_commissions_paisa,
	total_deductions_paisa, total_net_payable_paisa,
	processed_at, processed_by, approved_at, created_at, updated_at`

func scanCycle(row pgx.Row) (payroll.PayrollCycle, error) {
	var c payroll.PayrollCycle
	err := row.Scan(
		&c.ID, &c.BusinessID, &c.PeriodYear, &c.PeriodMonth, &c.PeriodStart, &c.PeriodEnd, &c.Status,
		&c.TotalStaffCount, &c.TotalGrossSalaryPaisa, &c.TotalCommissionsPaisa,
		&c.TotalDeductionsPaisa, &c.TotalNetPayablePaisa,
		&c.ProcessedAt, &c.ProcessedBy, &c.ApprovedAt, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

func (r *payrollCycleRepository) Create(ctx context.Context, cycle payroll.PayrollCycle) (payroll.PayrollCycle, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_cycles (
			business_id, period_year, period_month, period_start, period_end, status
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING` + cycleColumns

	created, err := scanCycle(q.QueryRow(ctx, query,
		cycle.BusinessID, cycle.PeriodYear, cycle.PeriodMonth, cycle.PeriodStart, cycle.PeriodEnd, cycle.Status,
	))
	if err != nil {
		// The unique constraint is the serialization point for concurrent
		// duplicate creation; surface it as the domain conflict.
		if strings.Contains(err.Error(), "uk_payroll_cycle_period") {
			return payroll.PayrollCycle{}, payroll.ErrCycleExists
		}
		return payroll.PayrollCycle{}, fmt.Errorf("failed to create payroll cycle: %w", err)
	}

	return created, nil
}

func (r *payrollCycleRepository) GetByID(ctx context.Context, id string, businessID string) (payroll.PayrollCycle, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + cycleColumns + `
		FROM payroll_cycles
		WHERE id = $1 AND business_id = $2`

	c, err := scanCycle(q.QueryRow(ctx, query, id, businessID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollCycle{}, payroll.ErrCycleNotFound
		}
		return payroll.PayrollCycle{}, fmt.Errorf("failed to get payroll cycle: %w", err)
	}

	return c, nil
}

func (r *payrollCycleRepository) LockByID(ctx context.Context, id string, businessID string) (payroll.PayrollCycle, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + cycleColumns + `
		FROM payroll_cycles
		WHERE id = $1 AND business_id = $2
		FOR UPDATE`

	c, err := scanCycle(q.QueryRow(ctx, query, id, businessID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollCycle{}, payroll.ErrCycleNotFound
		}
		return payroll.PayrollCycle{}, fmt.Errorf("failed to lock payroll cycle: %w", err)
	}

	return c, nil
}

func (r *payrollCycleRepository) ListByBusinessID(ctx context.Context, businessID string) ([]payroll.PayrollCycle, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + cycleColumns + `
		FROM payroll_cycles
		WHERE business_id = $1
		ORDER BY period_year DESC, period_month DESC`

	rows, err := q.Query(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll cycles: %w", err)
	}
	defer rows.Close()

	var cycles []payroll.PayrollCycle
	for rows.Next() {
		c, err := scanCycle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll cycle: %w", err)
		}
		cycles = append(cycles, c)
	}

	return cycles, rows.Err()
}

func (r *payrollCycleRepository) MarkProcessed(ctx context.Context, cycle payroll.PayrollCycle) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_cycles
		SET status = 'processed',
			total_staff_count = $1,
			total_gross_salary_paisa = $2,
			total_commissions_paisa = $3,
			total_deductions_paisa = $4,
			total_net_payable_paisa = $5,
			processed_at = $6,
			processed_by = $7,
			updated_at = NOW()
		WHERE id = $8 AND business_id = $9 AND status = 'draft'`

	tag, err := q.Exec(ctx, query,
		cycle.TotalStaffCount, cycle.TotalGrossSalaryPaisa, cycle.TotalCommissionsPaisa,
		cycle.TotalDeductionsPaisa, cycle.TotalNetPayablePaisa,
		cycle.ProcessedAt, cycle.ProcessedBy,
		cycle.ID, cycle.BusinessID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark payroll cycle processed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrCycleNotDraft
	}

	return nil
}

func (r *payrollCycleRepository) UpdateStatus(ctx context.Context, id string, businessID string, status payroll.CycleStatus) error {
	q := GetQuerier(ctx, r.db)

	var query string
	switch status {
	case payroll.CycleStatusApproved:
		query = `
			UPDATE payroll_cycles
			SET status = 'approved', approved_at = NOW(), updated_at = NOW()
			WHERE id = $1 AND business_id = $2 AND status = 'processed'`
	case payroll.CycleStatusPaid:
		query = `
			UPDATE payroll_cycles
			SET status = 'paid', updated_at = NOW()
			WHERE id = $1 AND business_id = $2 AND status = 'approved'`
	default:
		return fmt.Errorf("unsupported payroll cycle transition to %q", status)
	}

	tag, err := q.Exec(ctx, query, id, businessID)
	if err != nil {
		return fmt.Errorf("failed to update payroll cycle status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if status == payroll.CycleStatusApproved {
			return payroll.ErrCycleNotProcessed
		}
		return payroll.ErrCycleNotApproved
	}

	return nil
}

// ========== ENTRIES ==========

type payrollEntryRepository struct {
	db *database.DB
}

func NewPayrollEntryRepository(db *database.DB) payroll.EntryRepository {
	return &payrollEntryRepository{db: db}
}

const entryColumns = `
	id, payroll_cycle_id, staff_id, employment_profile_id, salary_component_id,
	base_salary_paisa, allowances_paisa, commission_paisa, gross_earnings_paisa,
	unpaid_leave_deduction_paisa, total_deductions_paisa, net_payable_paisa,
	payment_status, created_at`

func scanEntry(row pgx.Row) (payroll.PayrollEntry, error) {
	var e payroll.PayrollEntry
	err := row.Scan(
		&e.ID, &e.PayrollCycleID, &e.StaffID, &e.EmploymentProfileID, &e.SalaryComponentID,
		&e.BaseSalaryPaisa, &e.AllowancesPaisa, &e.CommissionPaisa, &e.GrossEarningsPaisa,
		&e.UnpaidLeaveDeductionPaisa, &e.TotalDeductionsPaisa, &e.NetPayablePaisa,
		&e.PaymentStatus, &e.CreatedAt,
	)
	return e, err
}

func (r *payrollEntryRepository) Create(ctx context.Context, entry payroll.PayrollEntry) (payroll.PayrollEntry, error) {
	q := GetQuerier(ctx, r.db)

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	query := `
		INSERT INTO payroll_entries (
			id, payroll_cycle_id, staff_id, employment_profile_id, salary_component_id,
			base_salary_paisa, allowances_paisa, commission_paisa, gross_earnings_paisa,
			unpaid_leave_deduction_paisa, total_deductions_paisa, net_payable_paisa,
			payment_status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING` + entryColumns

	created, err := scanEntry(q.QueryRow(ctx, query,
		entry.ID, entry.PayrollCycleID, entry.StaffID, entry.EmploymentProfileID, entry.SalaryComponentID,
		entry.BaseSalaryPaisa, entry.AllowancesPaisa, entry.CommissionPaisa, entry.GrossEarningsPaisa,
		entry.UnpaidLeaveDeductionPaisa, entry.TotalDeductionsPaisa, entry.NetPayablePaisa,
		entry.PaymentStatus,
	))
	if err != nil {
		return payroll.PayrollEntry{}, fmt.Errorf("failed to create payroll entry: %w", err)
	}

	return created, nil
}

func (r *payrollEntryRepository) ListByCycleID(ctx context.Context, cycleID string, businessID string) ([]payroll.PayrollEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.payroll_cycle_id, e.staff_id, e.employment_profile_id, e.salary_component_id,
			   e.base_salary_paisa, e.allowances_paisa, e.commission_paisa, e.gross_earnings_paisa,
			   e.unpaid_leave_deduction_paisa, e.total_deductions_paisa, e.net_payable_paisa,
			   e.payment_status, e.created_at
		FROM payroll_entries e
		JOIN payroll_cycles c ON c.id = e.payroll_cycle_id
		WHERE e.payroll_cycle_id = $1 AND c.business_id = $2
		ORDER BY e.created_at`

	rows, err := q.Query(ctx, query, cycleID, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll entries: %w", err)
	}
	defer rows.Close()

	var entries []payroll.PayrollEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (r *payrollEntryRepository) CountByCycleID(ctx context.Context, cycleID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM payroll_entries WHERE payroll_cycle_id = $1`, cycleID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count payroll entries: %w", err)
	}

	return count, nil
}

func (r *payrollEntryRepository) UpdatePaymentStatusByCycleID(ctx context.Context, cycleID string, status payroll.PaymentStatus) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		UPDATE payroll_entries
		SET payment_status = $1
		WHERE payroll_cycle_id = $2`,
		status, cycleID,
	)
	if err != nil {
		return fmt.Errorf("failed to update payroll entry payment status: %w", err)
	}

	return nil
}
