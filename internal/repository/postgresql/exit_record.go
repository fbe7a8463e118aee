package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/salonhq/salon-backend-go/internal/domain/staffing"
	"github.com/salonhq/salon-backend-go/internal/pkg/database"
)

type exitRecordRepository struct {
	db *database.DB
}

func NewExitRecordRepository(db *database.DB) staffing.ExitRecordRepository {
	return &exitRecordRepository{db: db}
}

const exitColumns = `
	id, staff_id, business_id, employment_profile_id, exit_type,
	resignation_date, last_working_date,
	notice_period_served_days, notice_period_shortfall_days,
	pending_commissions_paisa, pending_tips_paisa, leave_encashment_paisa, net_settlement_paisa,
	settlement_status, created_at`

func scanExitRecord(row pgx.Row) (staffing.ExitRecord, error) {
	var e staffing.ExitRecord
	err := row.Scan(
		&e.ID, &e.StaffID, &e.BusinessID, &e.EmploymentProfileID, &e.ExitType,
		&e.ResignationDate, &e.LastWorkingDate,
		&e.NoticePeriodServedDays, &e.NoticePeriodShortfallDays,
		&e.PendingCommissionsPaisa, &e.PendingTipsPaisa, &e.LeaveEncashmentPaisa, &e.NetSettlementPaisa,
		&e.SettlementStatus, &e.CreatedAt,
	)
	return e, err
}

func (r *exitRecordRepository) Create(ctx context.Context, record staffing.ExitRecord) (staffing.ExitRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO exit_records (
			staff_id, business_id, employment_profile_id, exit_type,
			resignation_date, last_working_date,
			notice_period_served_days, notice_period_shortfall_days,
			pending_commissions_paisa, pending_tips_paisa, leave_encashment_paisa, net_settlement_paisa,
			settlement_status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING` + exitColumns

	created, err := scanExitRecord(q.QueryRow(ctx, query,
		record.StaffID, record.BusinessID, record.EmploymentProfileID, record.ExitType,
		record.ResignationDate, record.LastWorkingDate,
		record.NoticePeriodServedDays, record.NoticePeriodShortfallDays,
		record.PendingCommissionsPaisa, record.PendingTipsPaisa, record.LeaveEncashmentPaisa, record.NetSettlementPaisa,
		record.SettlementStatus,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_exit_record_staff") {
			return staffing.ExitRecord{}, staffing.ErrExitRecordExists
		}
		return staffing.ExitRecord{}, fmt.Errorf("failed to create exit record: %w", err)
	}

	return created, nil
}

func (r *exitRecordRepository) GetByStaffID(ctx context.Context, staffID string, businessID string) (staffing.ExitRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + exitColumns + `
		FROM exit_records
		WHERE staff_id = $1 AND business_id = $2`

	e, err := scanExitRecord(q.QueryRow(ctx, query, staffID, businessID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return staffing.ExitRecord{}, staffing.ErrExitRecordNotFound
		}
		return staffing.ExitRecord{}, fmt.Errorf("failed to get exit record: %w", err)
	}

	return e, nil
}
