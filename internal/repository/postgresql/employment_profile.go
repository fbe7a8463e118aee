package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/salonhq/salon-backend-go/internal/domain/staffing"
	"github.com/salonhq/salon-backend-go/internal/pkg/database"
)

type profileRepository struct {
	db *database.DB
}

func NewProfileRepository(db *database.DB) staffing.ProfileRepository {
	return &profileRepository{db: db}
}

const profileColumns = `
	id, staff_id, business_id, employment_type, compensation_model, status,
	joining_date, notice_period_days, payout_method,
	bank_account_name, bank_account_number, bank_ifsc, upi_id, pan_number,
	onboarding_checklist, onboarding_status, created_at, updated_at`

func scanProfile(row pgx.Row) (staffing.EmploymentProfile, error) {
	var p staffing.EmploymentProfile
	err := row.Scan(
		&p.ID, &p.StaffID, &p.BusinessID, &p.EmploymentType, &p.CompensationModel, &p.Status,
		&p.JoiningDate, &p.NoticePeriodDays, &p.PayoutMethod,
		&p.BankAccountName, &p.BankAccountNumber, &p.BankIFSC, &p.UPIID, &p.PANNumber,
		&p.Onboarding, &p.OnboardingStatus, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (r *profileRepository) Create(ctx context.Context, profile staffing.EmploymentProfile) (staffing.EmploymentProfile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employment_profiles (
			staff_id, business_id, employment_type, compensation_model, status,
			joining_date, notice_period_days, payout_method,
			bank_account_name, bank_account_number, bank_ifsc, upi_id, pan_number,
			onboarding_checklist, onboarding_status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING` + profileColumns

	created, err := scanProfile(q.QueryRow(ctx, query,
		profile.StaffID, profile.BusinessID, profile.EmploymentType, profile.CompensationModel, profile.Status,
		profile.JoiningDate, profile.NoticePeriodDays, profile.PayoutMethod,
		profile.BankAccountName, profile.BankAccountNumber, profile.BankIFSC, profile.UPIID, profile.PANNumber,
		profile.Onboarding, profile.OnboardingStatus,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_employment_profile_staff_business") {
			return staffing.EmploymentProfile{}, staffing.ErrProfileExists
		}
		return staffing.EmploymentProfile{}, fmt.Errorf("failed to create employment profile: %w", err)
	}

	return created, nil
}

func (r *profileRepository) GetByID(ctx context.Context, id string, businessID string) (staffing.EmploymentProfile, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + profileColumns + `
		FROM employment_profiles
		WHERE id = $1 AND business_id = $2`

	p, err := scanProfile(q.QueryRow(ctx, query, id, businessID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return staffing.EmploymentProfile{}, staffing.ErrProfileNotFound
		}
		return staffing.EmploymentProfile{}, fmt.Errorf("failed to get employment profile: %w", err)
	}

	return p, nil
}

func (r *profileRepository) GetByStaffID(ctx context.Context, staffID string, businessID string) (staffing.EmploymentProfile, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + profileColumns + `
		FROM employment_profiles
		WHERE staff_id = $1 AND business_id = $2`

	p, err := scanProfile(q.QueryRow(ctx, query, staffID, businessID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return staffing.EmploymentProfile{}, staffing.ErrProfileNotFound
		}
		return staffing.EmploymentProfile{}, fmt.Errorf("failed to get employment profile by staff: %w", err)
	}

	return p, nil
}

// LockByID fetches the profile FOR UPDATE so concurrent salary replacements
// for the same profile serialize.
func (r *profileRepository) LockByID(ctx context.Context, id string, businessID string) (staffing.EmploymentProfile, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + profileColumns + `
		FROM employment_profiles
		WHERE id = $1 AND business_id = $2
		FOR UPDATE`

	p, err := scanProfile(q.QueryRow(ctx, query, id, businessID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return staffing.EmploymentProfile{}, staffing.ErrProfileNotFound
		}
		return staffing.EmploymentProfile{}, fmt.Errorf("failed to lock employment profile: %w", err)
	}

	return p, nil
}

func (r *profileRepository) GetActiveByBusinessID(ctx context.Context, businessID string) ([]staffing.EmploymentProfile, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + profileColumns + `
		FROM employment_profiles
		WHERE business_id = $1 AND status = 'active'
		ORDER BY created_at`

	rows, err := q.Query(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employment profiles: %w", err)
	}
	defer rows.Close()

	var profiles []staffing.EmploymentProfile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employment profile: %w", err)
		}
		profiles = append(profiles, p)
	}

	return profiles, rows.Err()
}

func (r *profileRepository) Update(ctx context.Context, businessID string, req staffing.UpdateProfileRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{}
	args := []interface{}{}
	argPos := 1

	addSet := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if req.EmploymentType != nil {
		addSet("employment_type", *req.EmploymentType)
	}
	if req.CompensationModel != nil {
		addSet("compensation_model", *req.CompensationModel)
	}
	if req.Status != nil {
		addSet("status", *req.Status)
	}
	if req.NoticePeriodDays != nil {
		addSet("notice_period_days", *req.NoticePeriodDays)
	}
	if req.PayoutMethod != nil {
		addSet("payout_method", *req.PayoutMethod)
	}
	if req.BankAccountName != nil {
		addSet("bank_account_name", *req.BankAccountName)
	}
	if req.BankAccountNumber != nil {
		addSet("bank_account_number", *req.BankAccountNumber)
	}
	if req.BankIFSC != nil {
		addSet("bank_ifsc", *req.BankIFSC)
	}
	if req.UPIID != nil {
		addSet("upi_id", *req.UPIID)
	}
	if req.PANNumber != nil {
		addSet("pan_number", *req.PANNumber)
	}
	if req.Onboarding != nil {
		addSet("onboarding_checklist", *req.Onboarding)
	}
	if req.OnboardingStatus != nil {
		addSet("onboarding_status", *req.OnboardingStatus)
	}

	if len(setClauses) == 0 {
		return nil
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	query := fmt.Sprintf(`
		UPDATE employment_profiles SET %s
		WHERE id = $%d AND business_id = $%d`,
		strings.Join(setClauses, ", "), argPos, argPos+1)
	args = append(args, req.ID, businessID)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update employment profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return staffing.ErrProfileNotFound
	}

	return nil
}

func (r *profileRepository) UpdateStatus(ctx context.Context, id string, businessID string, status staffing.ProfileStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employment_profiles
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND business_id = $3`

	tag, err := q.Exec(ctx, query, status, id, businessID)
	if err != nil {
		return fmt.Errorf("failed to update employment profile status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return staffing.ErrProfileNotFound
	}

	return nil
}
