package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/salonhq/salon-backend-go/internal/domain/staffing"
	"github.com/salonhq/salon-backend-go/internal/pkg/database"
)

type salaryComponentRepository struct {
	db *database.DB
}

func NewSalaryComponentRepository(db *database.DB) staffing.SalaryComponentRepository {
	return &salaryComponentRepository{db: db}
}

const salaryColumns = `
	id, employment_profile_id,
	base_salary_paisa, hourly_rate_paisa, daily_rate_paisa,
	hra_paisa, travel_allowance_paisa, meal_allowance_paisa, other_allowances_paisa,
	pf_paisa, esi_paisa, professional_tax_paisa, tds_paisa,
	payout_frequency, payout_day_of_month, overtime_multiplier, weekly_work_hours,
	is_active, effective_from, effective_to, created_at, updated_at`

func scanSalaryComponent(row pgx.Row) (staffing.SalaryComponent, error) {
	var c staffing.SalaryComponent
	err := row.Scan(
		&c.ID, &c.EmploymentProfileID,
		&c.BaseSalaryPaisa, &c.HourlyRatePaisa, &c.DailyRatePaisa,
		&c.HRAPaisa, &c.TravelAllowancePaisa, &c.MealAllowancePaisa, &c.OtherAllowancesPaisa,
		&c.PFPaisa, &c.ESIPaisa, &c.ProfessionalTaxPaisa, &c.TDSPaisa,
		&c.PayoutFrequency, &c.PayoutDayOfMonth, &c.OvertimeMultiplier, &c.WeeklyWorkHours,
		&c.IsActive, &c.EffectiveFrom, &c.EffectiveTo, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

func (r *salaryComponentRepository) GetActive(ctx context.Context, employmentProfileID string) (staffing.SalaryComponent, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + salaryColumns + `
		FROM salary_components
		WHERE employment_profile_id = $1 AND is_active = true`

	c, err := scanSalaryComponent(q.QueryRow(ctx, query, employmentProfileID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return staffing.SalaryComponent{}, staffing.ErrSalaryComponentNotFound
		}
		return staffing.SalaryComponent{}, fmt.Errorf("failed to get active salary component: %w", err)
	}

	return c, nil
}

// GetAsOf resolves the component whose validity window [effective_from,
// effective_to) contains the given instant. History is append-only, so this
// is a pure range scan.
func (r *salaryComponentRepository) GetAsOf(ctx context.Context, employmentProfileID string, at time.Time) (staffing.SalaryComponent, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + salaryColumns + `
		FROM salary_components
		WHERE employment_profile_id = $1
		  AND effective_from <= $2
		  AND (effective_to IS NULL OR effective_to > $2)
		ORDER BY effective_from DESC
		LIMIT 1`

	c, err := scanSalaryComponent(q.QueryRow(ctx, query, employmentProfileID, at))
	if err != nil {
		if err == pgx.ErrNoRows {
			return staffing.SalaryComponent{}, staffing.ErrSalaryComponentNotFound
		}
		return staffing.SalaryComponent{}, fmt.Errorf("failed to get salary component as of %s: %w", at.Format("2006-01-02"), err)
	}

	return c, nil
}

func (r *salaryComponentRepository) History(ctx context.Context, employmentProfileID string) ([]staffing.SalaryComponent, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + salaryColumns + `
		FROM salary_components
		WHERE employment_profile_id = $1
		ORDER BY effective_from DESC`

	rows, err := q.Query(ctx, query, employmentProfileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary history: %w", err)
	}
	defer rows.Close()

	var components []staffing.SalaryComponent
	for rows.Next() {
		c, err := scanSalaryComponent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary component: %w", err)
		}
		components = append(components, c)
	}

	return components, rows.Err()
}

// DeactivateActive closes the current component's validity window. The
// previous record is never mutated beyond this; salary history stays
// reconstructable.
func (r *salaryComponentRepository) DeactivateActive(ctx context.Context, employmentProfileID string, effectiveTo time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE salary_components
		SET is_active = false, effective_to = $1, updated_at = NOW()
		WHERE employment_profile_id = $2 AND is_active = true`

	if _, err := q.Exec(ctx, query, effectiveTo, employmentProfileID); err != nil {
		return fmt.Errorf("failed to deactivate salary component: %w", err)
	}

	return nil
}

func (r *salaryComponentRepository) Insert(ctx context.Context, component staffing.SalaryComponent) (staffing.SalaryComponent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_components (
			employment_profile_id,
			base_salary_paisa, hourly_rate_paisa, daily_rate_paisa,
			hra_paisa, travel_allowance_paisa, meal_allowance_paisa, other_allowances_paisa,
			pf_paisa, esi_paisa, professional_tax_paisa, tds_paisa,
			payout_frequency, payout_day_of_month, overtime_multiplier, weekly_work_hours,
			is_active, effective_from
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING` + salaryColumns

	c, err := scanSalaryComponent(q.QueryRow(ctx, query,
		component.EmploymentProfileID,
		component.BaseSalaryPaisa, component.HourlyRatePaisa, component.DailyRatePaisa,
		component.HRAPaisa, component.TravelAllowancePaisa, component.MealAllowancePaisa, component.OtherAllowancesPaisa,
		component.PFPaisa, component.ESIPaisa, component.ProfessionalTaxPaisa, component.TDSPaisa,
		component.PayoutFrequency, component.PayoutDayOfMonth, component.OvertimeMultiplier, component.WeeklyWorkHours,
		component.IsActive, component.EffectiveFrom,
	))
	if err != nil {
		return staffing.SalaryComponent{}, fmt.Errorf("failed to insert salary component: %w", err)
	}

	return c, nil
}
