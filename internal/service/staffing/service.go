package staffing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"

	"github.com/salonhq/salon-backend-go/internal/domain/auth"
	"github.com/salonhq/salon-backend-go/internal/domain/commission"
	"github.com/salonhq/salon-backend-go/internal/domain/leave"
	"github.com/salonhq/salon-backend-go/internal/domain/staffing"
	"github.com/salonhq/salon-backend-go/internal/pkg/database"
	"github.com/salonhq/salon-backend-go/internal/repository/postgresql"
)

type StaffingServiceImpl struct {
	db          *database.DB
	profileRepo staffing.ProfileRepository
	salaryRepo  staffing.SalaryComponentRepository
	exitRepo    staffing.ExitRecordRepository
	earningRepo commission.EarningRepository
	balanceRepo leave.LeaveBalanceRepository
	typeRepo    leave.LeaveTypeRepository
}

func NewStaffingService(
	db *database.DB,
	profileRepo staffing.ProfileRepository,
	salaryRepo staffing.SalaryComponentRepository,
	exitRepo staffing.ExitRecordRepository,
	earningRepo commission.EarningRepository,
	balanceRepo leave.LeaveBalanceRepository,
	typeRepo leave.LeaveTypeRepository,
) staffing.StaffingService {
	return &StaffingServiceImpl{
		db:          db,
		profileRepo: profileRepo,
		salaryRepo:  salaryRepo,
		exitRepo:    exitRepo,
		earningRepo: earningRepo,
		balanceRepo: balanceRepo,
		typeRepo:    typeRepo,
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

// ========== PROFILES ==========

func (s *StaffingServiceImpl) CreateProfile(ctx context.Context, req staffing.CreateProfileRequest) (staffing.ProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return staffing.ProfileResponse{}, err
	}

	businessID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return staffing.ProfileResponse{}, err
	}

	joiningDate, _ := time.Parse("2006-01-02", req.JoiningDate)

	noticePeriodDays := 30
	if req.NoticePeriodDays != nil {
		noticePeriodDays = *req.NoticePeriodDays
	}

	profile := staffing.EmploymentProfile{
		StaffID:           req.StaffID,
		BusinessID:        businessID,
		EmploymentType:    staffing.EmploymentType(req.EmploymentType),
		CompensationModel: staffing.CompensationModel(req.CompensationModel),
		Status:            staffing.ProfileStatusActive,
		JoiningDate:       joiningDate,
		NoticePeriodDays:  noticePeriodDays,
		PayoutMethod:      staffing.PayoutMethod(req.PayoutMethod),
		BankAccountName:   req.BankAccountName,
		BankAccountNumber: req.BankAccountNumber,
		BankIFSC:          req.BankIFSC,
		UPIID:             req.UPIID,
		PANNumber:         req.PANNumber,
		Onboarding:        req.Onboarding,
		OnboardingStatus:  deriveOnboardingStatus(req.Onboarding),
	}

	created, err := s.profileRepo.Create(ctx, profile)
	if err != nil {
		return staffing.ProfileResponse{}, err
	}

	return toProfileResponse(created), nil
}

func (s *StaffingServiceImpl) GetProfile(ctx context.Context, staffID string) (staffing.ProfileResponse, error) {
	businessID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return staffing.ProfileResponse{}, err
	}

	profile, err := s.profileRepo.GetByStaffID(ctx, staffID, businessID)
	if err != nil {
		return staffing.ProfileResponse{}, err
	}

	return toProfileResponse(profile), nil
}

func (s *StaffingServiceImpl) UpdateProfile(ctx context.Context, req staffing.UpdateProfileRequest) (staffing.ProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return staffing.ProfileResponse{}, err
	}

	businessID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return staffing.ProfileResponse{}, err
	}

	current, err := s.profileRepo.GetByID(ctx, req.ID, businessID)
	if err != nil {
		return staffing.ProfileResponse{}, err
	}
	if isFrozen(current.Status) {
		return staffing.ProfileResponse{}, staffing.ErrProfileFrozen
	}

	// Onboarding status follows the checklist unless the caller sets it.
	if req.Onboarding != nil && req.OnboardingStatus == nil {
		derived := string(deriveOnboardingStatus(*req.Onboarding))
		req.OnboardingStatus = &derived
	}

	if err := s.profileRepo.Update(ctx, businessID, req); err != nil {
		return staffing.ProfileResponse{}, err
	}

	updated, err := s.profileRepo.GetByID(ctx, req.ID, businessID)
	if err != nil {
		return staffing.ProfileResponse{}, err
	}

	return toProfileResponse(updated), nil
}

func isFrozen(status staffing.ProfileStatus) bool {
	return status == staffing.ProfileStatusResigned || status == staffing.ProfileStatusTerminated
}

func deriveOnboardingStatus(checklist staffing.OnboardingChecklist) staffing.OnboardingStatus {
	if checklist.Documents == nil && checklist.Training == nil && checklist.Access == nil {
		return staffing.OnboardingPending
	}
	if checklist.Complete() {
		return staffing.OnboardingComplete
	}
	return staffing.OnboardingInProgress
}

// ========== SALARY ==========

// ReplaceActiveSalary closes the active component's validity window and
// inserts the replacement in a single transaction, with the profile row
// locked so two concurrent replacements cannot interleave.
func (s *StaffingServiceImpl) ReplaceActiveSalary(ctx context.Context, req staffing.ReplaceSalaryRequest) (staffing.SalaryComponentResponse, error) {
	if err := req.Validate(); err != nil {
		return staffing.SalaryComponentResponse{}, err
	}

	businessID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return staffing.SalaryComponentResponse{}, err
	}

	effectiveFrom, _ := time.Parse("2006-01-02", req.EffectiveFrom)

	var created staffing.SalaryComponent
	err = postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		profile, err := s.profileRepo.GetByStaffID(ctx, req.StaffID, businessID)
		if err != nil {
			return err
		}
		if _, err := s.profileRepo.LockByID(ctx, profile.ID, businessID); err != nil {
			return err
		}
		if isFrozen(profile.Status) {
			return staffing.ErrProfileFrozen
		}

		if err := s.salaryRepo.DeactivateActive(ctx, profile.ID, effectiveFrom); err != nil {
			return err
		}

		component := staffing.SalaryComponent{
			EmploymentProfileID:  profile.ID,
			BaseSalaryPaisa:      req.BaseSalaryPaisa,
			HourlyRatePaisa:      req.HourlyRatePaisa,
			DailyRatePaisa:       req.DailyRatePaisa,
			HRAPaisa:             req.HRAPaisa,
			TravelAllowancePaisa: req.TravelAllowancePaisa,
			MealAllowancePaisa:   req.MealAllowancePaisa,
			OtherAllowancesPaisa: req.OtherAllowancesPaisa,
			PFPaisa:              req.PFPaisa,
			ESIPaisa:             req.ESIPaisa,
			ProfessionalTaxPaisa: req.ProfessionalTaxPaisa,
			TDSPaisa:             req.TDSPaisa,
			PayoutFrequency:      staffing.PayoutMonthly,
			PayoutDayOfMonth:     1,
			OvertimeMultiplier:   decimal.NewFromFloat(1.50),
			WeeklyWorkHours:      48,
			IsActive:             true,
			EffectiveFrom:        effectiveFrom,
		}
		if req.PayoutFrequency != nil {
			component.PayoutFrequency = staffing.PayoutFrequency(*req.PayoutFrequency)
		}
		if req.PayoutDayOfMonth != nil {
			component.PayoutDayOfMonth = *req.PayoutDayOfMonth
		}
		if req.OvertimeMultiplier != nil {
			component.OvertimeMultiplier = *req.OvertimeMultiplier
		}
		if req.WeeklyWorkHours != nil {
			component.WeeklyWorkHours = *req.WeeklyWorkHours
		}

		created, err = s.salaryRepo.Insert(ctx, component)
		return err
	})
	if err != nil {
		return staffing.SalaryComponentResponse{}, err
	}

	return toSalaryResponse(created), nil
}

func (s *StaffingServiceImpl) GetActiveSalary(ctx context.Context, staffID string) (staffing.SalaryComponentResponse, error) {
	businessID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return staffing.SalaryComponentResponse{}, err
	}

	profile, err := s.profileRepo.GetByStaffID(ctx, staffID, businessID)
	if err != nil {
		return staffing.SalaryComponentResponse{}, err
	}

	component, err := s.salaryRepo.GetActive(ctx, profile.ID)
	if err != nil {
		return staffing.SalaryComponentResponse{}, err
	}

	return toSalaryResponse(component), nil
}

func (s *StaffingServiceImpl) GetSalaryAsOf(ctx context.Context, staffID string, at time.Time) (staffing.SalaryComponentResponse, error) {
	businessID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return staffing.SalaryComponentResponse{}, err
	}

	profile, err := s.profileRepo.GetByStaffID(ctx, staffID, businessID)
	if err != nil {
		return staffing.SalaryComponentResponse{}, err
	}

	component, err := s.salaryRepo.GetAsOf(ctx, profile.ID, at)
	if err != nil {
		return staffing.SalaryComponentResponse{}, err
	}

	return toSalaryResponse(component), nil
}

func (s *StaffingServiceImpl) SalaryHistory(ctx context.Context, staffID string) ([]staffing.SalaryComponentResponse, error) {
	businessID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.GetByStaffID(ctx, staffID, businessID)
	if err != nil {
		return nil, err
	}

	components, err := s.salaryRepo.History(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	responses := make([]staffing.SalaryComponentResponse, 0, len(components))
	for _, c := range components {
		responses = append(responses, toSalaryResponse(c))
	}

	return responses, nil
}

// ========== EXIT ==========

// RecordExit computes the settlement from the subsystems that own the money:
// pending commissions from unsettled earnings, encashment from remaining
// encashable balances. Only tips come from the caller. The profile is frozen
// in the same transaction.
func (s *StaffingServiceImpl) RecordExit(ctx context.Context, req staffing.RecordExitRequest) (staffing.ExitRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return staffing.ExitRecordResponse{}, err
	}

	businessID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return staffing.ExitRecordResponse{}, err
	}

	resignationDate, _ := time.Parse("2006-01-02", req.ResignationDate)
	lastWorkingDate, _ := time.Parse("2006-01-02", req.LastWorkingDate)

	servedDays := int(lastWorkingDate.Sub(resignationDate).Hours() / 24)
	if req.NoticePeriodServedDays != nil {
		servedDays = *req.NoticePeriodServedDays
	}

	exitType := staffing.ExitType(req.ExitType)
	record := staffing.ExitRecord{
		StaffID:                req.StaffID,
		BusinessID:             businessID,
		ExitType:               exitType,
		ResignationDate:        resignationDate,
		LastWorkingDate:        lastWorkingDate,
		NoticePeriodServedDays: servedDays,
		PendingTipsPaisa:       req.PendingTipsPaisa,
		SettlementStatus:       staffing.SettlementPending,
	}

	// A profile is optional: staff who never got one can still be exited,
	// their settlement just has no salary-derived parts.
	profile, err := s.profileRepo.GetByStaffID(ctx, req.StaffID, businessID)
	if err != nil {
		if !errors.Is(err, staffing.ErrProfileNotFound) {
			return staffing.ExitRecordResponse{}, err
		}

		pendingCommissions, err := s.earningRepo.SumUnsettledByStaff(ctx, req.StaffID, businessID)
		if err != nil {
			return staffing.ExitRecordResponse{}, err
		}
		record.PendingCommissionsPaisa = pendingCommissions
		record.NetSettlementPaisa = pendingCommissions + req.PendingTipsPaisa

		created, err := s.exitRepo.Create(ctx, record)
		if err != nil {
			return staffing.ExitRecordResponse{}, err
		}
		return toExitResponse(created), nil
	}

	var created staffing.ExitRecord
	err = postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		locked, err := s.profileRepo.LockByID(ctx, profile.ID, businessID)
		if err != nil {
			return err
		}
		if isFrozen(locked.Status) {
			return staffing.ErrExitRecordExists
		}

		shortfallDays := locked.NoticePeriodDays - servedDays
		if shortfallDays < 0 {
			shortfallDays = 0
		}

		pendingCommissions, err := s.earningRepo.SumUnsettledByStaff(ctx, req.StaffID, businessID)
		if err != nil {
			return err
		}

		encashment, err := s.computeLeaveEncashment(ctx, locked, req.StaffID, businessID, lastWorkingDate)
		if err != nil {
			return err
		}

		record.EmploymentProfileID = &locked.ID
		record.NoticePeriodShortfallDays = shortfallDays
		record.PendingCommissionsPaisa = pendingCommissions
		record.LeaveEncashmentPaisa = encashment
		record.NetSettlementPaisa = pendingCommissions + req.PendingTipsPaisa + encashment

		created, err = s.exitRepo.Create(ctx, record)
		if err != nil {
			return err
		}

		return s.profileRepo.UpdateStatus(ctx, locked.ID, businessID, exitType.TerminalStatus())
	})
	if err != nil {
		return staffing.ExitRecordResponse{}, err
	}

	return toExitResponse(created), nil
}

// computeLeaveEncashment sums remaining days of encashable paid leave types,
// valued at the daily rate scaled by the type's encashment rate. Balances
// below a type's minimum encashable days pay nothing.
func (s *StaffingServiceImpl) computeLeaveEncashment(ctx context.Context, profile staffing.EmploymentProfile, staffID, businessID string, lastWorkingDate time.Time) (int64, error) {
	balances, err := s.balanceRepo.ListByStaff(ctx, staffID, lastWorkingDate.Year(), businessID)
	if err != nil {
		return 0, err
	}
	if len(balances) == 0 {
		return 0, nil
	}

	dailyRate, err := s.dailyRatePaisa(ctx, profile.ID)
	if err != nil {
		if errors.Is(err, staffing.ErrSalaryComponentNotFound) {
			return 0, nil
		}
		return 0, err
	}

	hundred := decimal.NewFromInt(100)
	var total int64
	for _, balance := range balances {
		if !balance.RemainingDays.IsPositive() {
			continue
		}

		leaveType, err := s.typeRepo.GetByID(ctx, balance.LeaveTypeID, businessID)
		if err != nil {
			return 0, err
		}
		if !leaveType.IsPaid || !leaveType.EncashmentAllowed {
			continue
		}
		if balance.RemainingDays.LessThan(decimal.NewFromInt(int64(leaveType.MinEncashmentDays))) {
			continue
		}

		amount := balance.RemainingDays.
			Mul(decimal.NewFromInt(dailyRate)).
			Mul(leaveType.EncashmentRatePercent).
			Div(hundred)
		total += amount.IntPart()
	}

	return total, nil
}

// dailyRatePaisa prefers the explicit daily rate, falling back to a
// thirty-day split of the base salary.
func (s *StaffingServiceImpl) dailyRatePaisa(ctx context.Context, employmentProfileID string) (int64, error) {
	component, err := s.salaryRepo.GetActive(ctx, employmentProfileID)
	if err != nil {
		return 0, err
	}
	if component.DailyRatePaisa > 0 {
		return component.DailyRatePaisa, nil
	}
	return component.BaseSalaryPaisa / 30, nil
}

func (s *StaffingServiceImpl) GetExitRecord(ctx context.Context, staffID string) (staffing.ExitRecordResponse, error) {
	businessID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return staffing.ExitRecordResponse{}, err
	}

	record, err := s.exitRepo.GetByStaffID(ctx, staffID, businessID)
	if err != nil {
		return staffing.ExitRecordResponse{}, err
	}

	return toExitResponse(record), nil
}

// ========== MAPPERS ==========

func toProfileResponse(p staffing.EmploymentProfile) staffing.ProfileResponse {
	return staffing.ProfileResponse{
		ID:                p.ID,
		StaffID:           p.StaffID,
		BusinessID:        p.BusinessID,
		EmploymentType:    string(p.EmploymentType),
		CompensationModel: string(p.CompensationModel),
		Status:            string(p.Status),
		JoiningDate:       p.JoiningDate.Format("2006-01-02"),
		NoticePeriodDays:  p.NoticePeriodDays,
		PayoutMethod:      string(p.PayoutMethod),
		BankAccountName:   p.BankAccountName,
		BankAccountNumber: p.BankAccountNumber,
		BankIFSC:          p.BankIFSC,
		UPIID:             p.UPIID,
		PANNumber:         p.PANNumber,
		Onboarding:        p.Onboarding,
		OnboardingStatus:  string(p.OnboardingStatus),
	}
}

func toSalaryResponse(c staffing.SalaryComponent) staffing.SalaryComponentResponse {
	var effectiveTo *string
	if c.EffectiveTo != nil {
		formatted := c.EffectiveTo.Format("2006-01-02")
		effectiveTo = &formatted
	}

	return staffing.SalaryComponentResponse{
		ID:                   c.ID,
		EmploymentProfileID:  c.EmploymentProfileID,
		BaseSalaryPaisa:      c.BaseSalaryPaisa,
		HourlyRatePaisa:      c.HourlyRatePaisa,
		DailyRatePaisa:       c.DailyRatePaisa,
		HRAPaisa:             c.HRAPaisa,
		TravelAllowancePaisa: c.TravelAllowancePaisa,
		MealAllowancePaisa:   c.MealAllowancePaisa,
		OtherAllowancesPaisa: c.OtherAllowancesPaisa,
		PFPaisa:              c.PFPaisa,
		ESIPaisa:             c.ESIPaisa,
		ProfessionalTaxPaisa: c.ProfessionalTaxPaisa,
		TDSPaisa:             c.TDSPaisa,
		PayoutFrequency:      string(c.PayoutFrequency),
		PayoutDayOfMonth:     c.PayoutDayOfMonth,
		OvertimeMultiplier:   c.OvertimeMultiplier,
		WeeklyWorkHours:      c.WeeklyWorkHours,
		IsActive:             c.IsActive,
		EffectiveFrom:        c.EffectiveFrom.Format("2006-01-02"),
		EffectiveTo:          effectiveTo,
	}
}

func toExitResponse(r staffing.ExitRecord) staffing.ExitRecordResponse {
	return staffing.ExitRecordResponse{
		ID:                        r.ID,
		StaffID:                   r.StaffID,
		BusinessID:                r.BusinessID,
		EmploymentProfileID:       r.EmploymentProfileID,
		ExitType:                  string(r.ExitType),
		ResignationDate:           r.ResignationDate.Format("2006-01-02"),
		LastWorkingDate:           r.LastWorkingDate.Format("2006-01-02"),
		NoticePeriodServedDays:    r.NoticePeriodServedDays,
		NoticePeriodShortfallDays: r.NoticePeriodShortfallDays,
		PendingCommissionsPaisa:   r.PendingCommissionsPaisa,
		PendingTipsPaisa:          r.PendingTipsPaisa,
		LeaveEncashmentPaisa:      r.LeaveEncashmentPaisa,
		NetSettlementPaisa:        r.NetSettlementPaisa,
		SettlementStatus:          string(r.SettlementStatus),
	}
}
