package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"

	"github.com/salonhq/salon-backend-go/internal/domain/auth"
	"github.com/salonhq/salon-backend-go/internal/domain/commission"
	"github.com/salonhq/salon-backend-go/internal/domain/leave"
	"github.com/salonhq/salon-backend-go/internal/domain/payroll"
	"github.com/salonhq/salon-backend-go/internal/domain/staffing"
	"github.com/salonhq/salon-backend-go/internal/pkg/database"
	"github.com/salonhq/salon-backend-go/internal/repository/postgresql"
)

type PayrollServiceImpl struct {
	db          *database.DB
	logger      *slog.Logger
	cycleRepo   payroll.CycleRepository
	entryRepo   payroll.EntryRepository
	profileRepo staffing.ProfileRepository
	salaryRepo  staffing.SalaryComponentRepository
	earningRepo commission.EarningRepository
	requestRepo leave.LeaveRequestRepository
}

func NewPayrollService(
	db *database.DB,
	logger *slog.Logger,
	cycleRepo payroll.CycleRepository,
	entryRepo payroll.EntryRepository,
	profileRepo staffing.ProfileRepository,
	salaryRepo staffing.SalaryComponentRepository,
	earningRepo commission.EarningRepository,
	requestRepo leave.LeaveRequestRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:          db,
		logger:      logger,
		cycleRepo:   cycleRepo,
		entryRepo:   entryRepo,
		profileRepo: profileRepo,
		salaryRepo:  salaryRepo,
		earningRepo: earningRepo,
		requestRepo: requestRepo,
	}
}

// Helper to get business_id and user_id from JWT context
func getClaimsFromContext(ctx context.Context) (businessID, userID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	businessID, ok := claims["business_id"].(string)
	if !ok || businessID == "" {
		return "", "", auth.ErrBusinessScopeMissing
	}

	userID, _ = claims["user_id"].(string)

	return businessID, userID, nil
}

func (s *PayrollServiceImpl) CreateCycle(ctx context.Context, req payroll.CreateCycleRequest) (payroll.CycleResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.CycleResponse{}, err
	}

	businessID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.CycleResponse{}, err
	}

	periodStart, periodEnd := periodBounds(req.PeriodYear, req.PeriodMonth)

	cycle, err := s.cycleRepo.Create(ctx, payroll.PayrollCycle{
		BusinessID:  businessID,
		PeriodYear:  req.PeriodYear,
		PeriodMonth: req.PeriodMonth,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		Status:      payroll.CycleStatusDraft,
	})
	if err != nil {
		return payroll.CycleResponse{}, err
	}

	return toCycleResponse(cycle), nil
}

// ProcessCycle runs the whole computation in one transaction: the cycle row
// is locked FOR UPDATE and re-checked, so two concurrent runs cannot both
// insert entries, and a failure partway leaves no entries behind. Staff
// without an active salary component are reported as skipped, never dropped
// silently.
func (s *PayrollServiceImpl) ProcessCycle(ctx context.Context, cycleID string) (payroll.ProcessingReport, error) {
	businessID, userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.ProcessingReport{}, err
	}

	var report payroll.ProcessingReport
	err = postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		cycle, err := s.cycleRepo.LockByID(ctx, cycleID, businessID)
		if err != nil {
			return err
		}
		switch cycle.Status {
		case payroll.CycleStatusDraft:
		case payroll.CycleStatusPaid:
			return payroll.ErrCyclePaid
		default:
			return payroll.ErrCycleNotDraft
		}

		profiles, err := s.profileRepo.GetActiveByBusinessID(ctx, businessID)
		if err != nil {
			return err
		}

		periodStart, periodEnd := cycle.PeriodStart, cycle.PeriodEnd
		earningsUpper := periodEnd.AddDate(0, 0, 1)
		monthDays := daysInMonth(cycle.PeriodYear, cycle.PeriodMonth)

		for _, profile := range profiles {
			component, err := s.salaryRepo.GetActive(ctx, profile.ID)
			if err != nil {
				if errors.Is(err, staffing.ErrSalaryComponentNotFound) {
					s.logger.Warn("skipping staff without active salary component",
						slog.String("staff_id", profile.StaffID),
						slog.String("payroll_cycle_id", cycle.ID),
					)
					report.Skipped = append(report.Skipped, payroll.SkippedStaff{
						StaffID: profile.StaffID,
						Reason:  "no active salary component",
					})
					continue
				}
				return err
			}

			commissionPaisa, err := s.earningRepo.SumUnsettledByStaffInPeriod(ctx, profile.StaffID, businessID, periodStart, earningsUpper)
			if err != nil {
				return err
			}

			unpaidRequests, err := s.requestRepo.ListApprovedUnpaidInPeriod(ctx, profile.StaffID, businessID, periodStart, periodEnd)
			if err != nil {
				return err
			}
			unpaidDays := decimal.Zero
			for _, request := range unpaidRequests {
				unpaidDays = unpaidDays.Add(overlapDays(request, periodStart, periodEnd))
			}

			amounts := computeEntry(component, commissionPaisa, unpaidDays, monthDays)

			entry, err := s.entryRepo.Create(ctx, payroll.PayrollEntry{
				PayrollCycleID:            cycle.ID,
				StaffID:                   profile.StaffID,
				EmploymentProfileID:       profile.ID,
				SalaryComponentID:         component.ID,
				BaseSalaryPaisa:           amounts.BaseSalaryPaisa,
				AllowancesPaisa:           amounts.AllowancesPaisa,
				CommissionPaisa:           amounts.CommissionPaisa,
				GrossEarningsPaisa:        amounts.GrossEarningsPaisa,
				UnpaidLeaveDeductionPaisa: amounts.UnpaidLeaveDeductionPaisa,
				TotalDeductionsPaisa:      amounts.TotalDeductionsPaisa,
				NetPayablePaisa:           amounts.NetPayablePaisa,
				PaymentStatus:             payroll.PaymentStatusPending,
			})
			if err != nil {
				return err
			}

			if commissionPaisa > 0 {
				if err := s.earningRepo.SettleByStaffInPeriod(ctx, profile.StaffID, businessID, periodStart, earningsUpper, entry.ID); err != nil {
					return err
				}
			}

			cycle.TotalStaffCount++
			cycle.TotalGrossSalaryPaisa += amounts.GrossEarningsPaisa
			cycle.TotalCommissionsPaisa += amounts.CommissionPaisa
			cycle.TotalDeductionsPaisa += amounts.TotalDeductionsPaisa
			cycle.TotalNetPayablePaisa += amounts.NetPayablePaisa

			report.Processed = append(report.Processed, toEntryResponse(entry))
		}

		now := time.Now()
		cycle.ProcessedAt = &now
		cycle.ProcessedBy = &userID
		if err := s.cycleRepo.MarkProcessed(ctx, cycle); err != nil {
			return err
		}

		cycle.Status = payroll.CycleStatusProcessed
		report.Cycle = toCycleResponse(cycle)
		return nil
	})
	if err != nil {
		return payroll.ProcessingReport{}, err
	}

	return report, nil
}

func (s *PayrollServiceImpl) ApproveCycle(ctx context.Context, cycleID string) (payroll.CycleResponse, error) {
	businessID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.CycleResponse{}, err
	}

	// Existence first, so an unknown cycle is not reported as a state conflict.
	if _, err := s.cycleRepo.GetByID(ctx, cycleID, businessID); err != nil {
		return payroll.CycleResponse{}, err
	}

	if err := s.cycleRepo.UpdateStatus(ctx, cycleID, businessID, payroll.CycleStatusApproved); err != nil {
		return payroll.CycleResponse{}, err
	}

	cycle, err := s.cycleRepo.GetByID(ctx, cycleID, businessID)
	if err != nil {
		return payroll.CycleResponse{}, err
	}

	return toCycleResponse(cycle), nil
}

// MarkCyclePaid flips the cycle and every entry to paid in one transaction.
func (s *PayrollServiceImpl) MarkCyclePaid(ctx context.Context, cycleID string) (payroll.CycleResponse, error) {
	businessID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.CycleResponse{}, err
	}

	if _, err := s.cycleRepo.GetByID(ctx, cycleID, businessID); err != nil {
		return payroll.CycleResponse{}, err
	}

	err = postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		if err := s.cycleRepo.UpdateStatus(ctx, cycleID, businessID, payroll.CycleStatusPaid); err != nil {
			return err
		}
		return s.entryRepo.UpdatePaymentStatusByCycleID(ctx, cycleID, payroll.PaymentStatusPaid)
	})
	if err != nil {
		return payroll.CycleResponse{}, err
	}

	cycle, err := s.cycleRepo.GetByID(ctx, cycleID, businessID)
	if err != nil {
		return payroll.CycleResponse{}, err
	}

	return toCycleResponse(cycle), nil
}

func (s *PayrollServiceImpl) GetCycle(ctx context.Context, cycleID string) (payroll.CycleResponse, error) {
	businessID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.CycleResponse{}, err
	}

	cycle, err := s.cycleRepo.GetByID(ctx, cycleID, businessID)
	if err != nil {
		return payroll.CycleResponse{}, err
	}

	entryCount, err := s.entryRepo.CountByCycleID(ctx, cycleID)
	if err != nil {
		return payroll.CycleResponse{}, err
	}

	resp := toCycleResponse(cycle)
	resp.EntryCount = &entryCount
	return resp, nil
}

func (s *PayrollServiceImpl) ListCycles(ctx context.Context) ([]payroll.CycleResponse, error) {
	businessID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	cycles, err := s.cycleRepo.ListByBusinessID(ctx, businessID)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.CycleResponse, 0, len(cycles))
	for _, cycle := range cycles {
		responses = append(responses, toCycleResponse(cycle))
	}

	return responses, nil
}

func (s *PayrollServiceImpl) ListEntries(ctx context.Context, cycleID string) ([]payroll.EntryResponse, error) {
	businessID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.cycleRepo.GetByID(ctx, cycleID, businessID); err != nil {
		return nil, err
	}

	entries, err := s.entryRepo.ListByCycleID(ctx, cycleID, businessID)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.EntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, toEntryResponse(entry))
	}

	return responses, nil
}

// ========== MAPPERS ==========

func toCycleResponse(c payroll.PayrollCycle) payroll.CycleResponse {
	var processedAt, approvedAt *string
	if c.ProcessedAt != nil {
		formatted := c.ProcessedAt.Format(time.RFC3339)
		processedAt = &formatted
	}
	if c.ApprovedAt != nil {
		formatted := c.ApprovedAt.Format(time.RFC3339)
		approvedAt = &formatted
	}

	return payroll.CycleResponse{
		ID:                    c.ID,
		BusinessID:            c.BusinessID,
		PeriodYear:            c.PeriodYear,
		PeriodMonth:           c.PeriodMonth,
		PeriodStart:           c.PeriodStart.Format("2006-01-02"),
		PeriodEnd:             c.PeriodEnd.Format("2006-01-02"),
		Status:                string(c.Status),
		TotalStaffCount:       c.TotalStaffCount,
		TotalGrossSalaryPaisa: c.TotalGrossSalaryPaisa,
		TotalCommissionsPaisa: c.TotalCommissionsPaisa,
		TotalDeductionsPaisa:  c.TotalDeductionsPaisa,
		TotalNetPayablePaisa:  c.TotalNetPayablePaisa,
		ProcessedAt:           processedAt,
		ProcessedBy:           c.ProcessedBy,
		ApprovedAt:            approvedAt,
	}
}

func toEntryResponse(e payroll.PayrollEntry) payroll.EntryResponse {
	return payroll.EntryResponse{
		ID:                        e.ID,
		PayrollCycleID:            e.PayrollCycleID,
		StaffID:                   e.StaffID,
		EmploymentProfileID:       e.EmploymentProfileID,
		SalaryComponentID:         e.SalaryComponentID,
		BaseSalaryPaisa:           e.BaseSalaryPaisa,
		AllowancesPaisa:           e.AllowancesPaisa,
		CommissionPaisa:           e.CommissionPaisa,
		GrossEarningsPaisa:        e.GrossEarningsPaisa,
		UnpaidLeaveDeductionPaisa: e.UnpaidLeaveDeductionPaisa,
		TotalDeductionsPaisa:      e.TotalDeductionsPaisa,
		NetPayablePaisa:           e.NetPayablePaisa,
		PaymentStatus:             string(e.PaymentStatus),
	}
}
