package staffing

import (
	"github.com/shopspring/decimal"

	"github.com/salonhq/salon-backend-go/internal/pkg/validator"
)

// ========== PROFILE DTOs ==========

type CreateProfileRequest struct {
	StaffID           string              `json:"staff_id"`
	EmploymentType    string              `json:"employment_type"`
	CompensationModel string              `json:"compensation_model"`
	JoiningDate       string              `json:"joining_date"`
	NoticePeriodDays  *int                `json:"notice_period_days,omitempty"`
	PayoutMethod      string              `json:"payout_method"`
	BankAccountName   *string             `json:"bank_account_name,omitempty"`
	BankAccountNumber *string             `json:"bank_account_number,omitempty"`
	BankIFSC          *string             `json:"bank_ifsc,omitempty"`
	UPIID             *string             `json:"upi_id,omitempty"`
	PANNumber         *string             `json:"pan_number,omitempty"`
	Onboarding        OnboardingChecklist `json:"onboarding,omitempty"`
}

func (r *CreateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{Field: "staff_id", Message: "is required"})
	}
	if !validator.IsInSlice(r.EmploymentType, []string{"full_time", "part_time", "contract", "freelancer"}) {
		errs = append(errs, validator.ValidationError{Field: "employment_type", Message: "must be one of full_time, part_time, contract, freelancer"})
	}
	if !validator.IsInSlice(r.CompensationModel, []string{"fixed_salary", "hourly", "commission_only", "salary_plus_commission"}) {
		errs = append(errs, validator.ValidationError{Field: "compensation_model", Message: "must be one of fixed_salary, hourly, commission_only, salary_plus_commission"})
	}
	if _, ok := validator.IsValidDate(r.JoiningDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "joining_date", Message: "must be a date in YYYY-MM-DD format"})
	}
	if !validator.IsInSlice(r.PayoutMethod, []string{"bank_transfer", "upi", "cash"}) {
		errs = append(errs, validator.ValidationError{Field: "payout_method", Message: "must be one of bank_transfer, upi, cash"})
	}
	if r.NoticePeriodDays != nil && *r.NoticePeriodDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "notice_period_days", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateProfileRequest struct {
	ID                string
	EmploymentType    *string              `json:"employment_type,omitempty"`
	CompensationModel *string              `json:"compensation_model,omitempty"`
	Status            *string              `json:"status,omitempty"` // active | on_leave | notice_period only; exits go through the exit handler
	NoticePeriodDays  *int                 `json:"notice_period_days,omitempty"`
	PayoutMethod      *string              `json:"payout_method,omitempty"`
	BankAccountName   *string              `json:"bank_account_name,omitempty"`
	BankAccountNumber *string              `json:"bank_account_number,omitempty"`
	BankIFSC          *string              `json:"bank_ifsc,omitempty"`
	UPIID             *string              `json:"upi_id,omitempty"`
	PANNumber         *string              `json:"pan_number,omitempty"`
	Onboarding        *OnboardingChecklist `json:"onboarding,omitempty"`
	OnboardingStatus  *string              `json:"onboarding_status,omitempty"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{"active", "on_leave", "notice_period"}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of active, on_leave, notice_period"})
	}
	if r.OnboardingStatus != nil && !validator.IsInSlice(*r.OnboardingStatus, []string{"pending", "in_progress", "complete"}) {
		errs = append(errs, validator.ValidationError{Field: "onboarding_status", Message: "must be one of pending, in_progress, complete"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProfileResponse struct {
	ID                string              `json:"id"`
	StaffID           string              `json:"staff_id"`
	BusinessID        string              `json:"business_id"`
	EmploymentType    string              `json:"employment_type"`
	CompensationModel string              `json:"compensation_model"`
	Status            string              `json:"status"`
	JoiningDate       string              `json:"joining_date"`
	NoticePeriodDays  int                 `json:"notice_period_days"`
	PayoutMethod      string              `json:"payout_method"`
	BankAccountName   *string             `json:"bank_account_name,omitempty"`
	BankAccountNumber *string             `json:"bank_account_number,omitempty"`
	BankIFSC          *string             `json:"bank_ifsc,omitempty"`
	UPIID             *string             `json:"upi_id,omitempty"`
	PANNumber         *string             `json:"pan_number,omitempty"`
	Onboarding        OnboardingChecklist `json:"onboarding"`
	OnboardingStatus  string              `json:"onboarding_status"`
}

// ========== SALARY DTOs ==========

type ReplaceSalaryRequest struct {
	StaffID string `json:"-"`

	BaseSalaryPaisa int64 `json:"base_salary_paisa"`
	HourlyRatePaisa int64 `json:"hourly_rate_paisa"`
	DailyRatePaisa  int64 `json:"daily_rate_paisa"`

	HRAPaisa             int64 `json:"hra_paisa"`
	TravelAllowancePaisa int64 `json:"travel_allowance_paisa"`
	MealAllowancePaisa   int64 `json:"meal_allowance_paisa"`
	OtherAllowancesPaisa int64 `json:"other_allowances_paisa"`

	PFPaisa              int64 `json:"pf_paisa"`
	ESIPaisa             int64 `json:"esi_paisa"`
	ProfessionalTaxPaisa int64 `json:"professional_tax_paisa"`
	TDSPaisa             int64 `json:"tds_paisa"`

	PayoutFrequency    *string          `json:"payout_frequency,omitempty"`
	PayoutDayOfMonth   *int             `json:"payout_day_of_month,omitempty"`
	OvertimeMultiplier *decimal.Decimal `json:"overtime_multiplier,omitempty"`
	WeeklyWorkHours    *int             `json:"weekly_work_hours,omitempty"`

	EffectiveFrom string `json:"effective_from"`
}

func (r *ReplaceSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	for _, f := range []struct {
		name  string
		value int64
	}{
		{"base_salary_paisa", r.BaseSalaryPaisa},
		{"hourly_rate_paisa", r.HourlyRatePaisa},
		{"daily_rate_paisa", r.DailyRatePaisa},
		{"hra_paisa", r.HRAPaisa},
		{"travel_allowance_paisa", r.TravelAllowancePaisa},
		{"meal_allowance_paisa", r.MealAllowancePaisa},
		{"other_allowances_paisa", r.OtherAllowancesPaisa},
		{"pf_paisa", r.PFPaisa},
		{"esi_paisa", r.ESIPaisa},
		{"professional_tax_paisa", r.ProfessionalTaxPaisa},
		{"tds_paisa", r.TDSPaisa},
	} {
		if f.value < 0 {
			errs = append(errs, validator.ValidationError{Field: f.name, Message: "must be non-negative"})
		}
	}

	if r.PayoutFrequency != nil && !validator.IsInSlice(*r.PayoutFrequency, []string{"weekly", "bi_weekly", "monthly"}) {
		errs = append(errs, validator.ValidationError{Field: "payout_frequency", Message: "must be one of weekly, bi_weekly, monthly"})
	}
	if r.PayoutDayOfMonth != nil && (*r.PayoutDayOfMonth < 1 || *r.PayoutDayOfMonth > 28) {
		errs = append(errs, validator.ValidationError{Field: "payout_day_of_month", Message: "must be between 1 and 28"})
	}
	if r.OvertimeMultiplier != nil && r.OvertimeMultiplier.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "overtime_multiplier", Message: "must be non-negative"})
	}
	if r.WeeklyWorkHours != nil && (*r.WeeklyWorkHours < 1 || *r.WeeklyWorkHours > 168) {
		errs = append(errs, validator.ValidationError{Field: "weekly_work_hours", Message: "must be between 1 and 168"})
	}
	if _, ok := validator.IsValidDate(r.EffectiveFrom); !ok {
		errs = append(errs, validator.ValidationError{Field: "effective_from", Message: "must be a date in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SalaryComponentResponse struct {
	ID                  string `json:"id"`
	EmploymentProfileID string `json:"employment_profile_id"`

	BaseSalaryPaisa int64 `json:"base_salary_paisa"`
	HourlyRatePaisa int64 `json:"hourly_rate_paisa"`
	DailyRatePaisa  int64 `json:"daily_rate_paisa"`

	HRAPaisa             int64 `json:"hra_paisa"`
	TravelAllowancePaisa int64 `json:"travel_allowance_paisa"`
	MealAllowancePaisa   int64 `json:"meal_allowance_paisa"`
	OtherAllowancesPaisa int64 `json:"other_allowances_paisa"`

	PFPaisa              int64 `json:"pf_paisa"`
	ESIPaisa             int64 `json:"esi_paisa"`
	ProfessionalTaxPaisa int64 `json:"professional_tax_paisa"`
	TDSPaisa             int64 `json:"tds_paisa"`

	PayoutFrequency    string          `json:"payout_frequency"`
	PayoutDayOfMonth   int             `json:"payout_day_of_month"`
	OvertimeMultiplier decimal.Decimal `json:"overtime_multiplier"`
	WeeklyWorkHours    int             `json:"weekly_work_hours"`

	IsActive      bool    `json:"is_active"`
	EffectiveFrom string  `json:"effective_from"`
	EffectiveTo   *string `json:"effective_to,omitempty"`
}

// ========== EXIT DTOs ==========

type RecordExitRequest struct {
	StaffID                string `json:"staff_id"`
	ExitType               string `json:"exit_type"`
	ResignationDate        string `json:"resignation_date"`
	LastWorkingDate        string `json:"last_working_date"`
	NoticePeriodServedDays *int   `json:"notice_period_served_days,omitempty"`
	PendingTipsPaisa       int64  `json:"pending_tips_paisa"`
}

func (r *RecordExitRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{Field: "staff_id", Message: "is required"})
	}
	if !validator.IsInSlice(r.ExitType, []string{"resignation", "termination", "retirement", "contract_end", "absconding"}) {
		errs = append(errs, validator.ValidationError{Field: "exit_type", Message: "must be one of resignation, termination, retirement, contract_end, absconding"})
	}
	resignation, okResignation := validator.IsValidDate(r.ResignationDate)
	if !okResignation {
		errs = append(errs, validator.ValidationError{Field: "resignation_date", Message: "must be a date in YYYY-MM-DD format"})
	}
	lastWorking, okLastWorking := validator.IsValidDate(r.LastWorkingDate)
	if !okLastWorking {
		errs = append(errs, validator.ValidationError{Field: "last_working_date", Message: "must be a date in YYYY-MM-DD format"})
	}
	if okResignation && okLastWorking && lastWorking.Before(resignation) {
		errs = append(errs, validator.ValidationError{Field: "last_working_date", Message: "must not be before resignation_date"})
	}
	if r.NoticePeriodServedDays != nil && *r.NoticePeriodServedDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "notice_period_served_days", Message: "must be non-negative"})
	}
	if r.PendingTipsPaisa < 0 {
		errs = append(errs, validator.ValidationError{Field: "pending_tips_paisa", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ExitRecordResponse struct {
	ID                        string  `json:"id"`
	StaffID                   string  `json:"staff_id"`
	BusinessID                string  `json:"business_id"`
	EmploymentProfileID       *string `json:"employment_profile_id,omitempty"`
	ExitType                  string  `json:"exit_type"`
	ResignationDate           string  `json:"resignation_date"`
	LastWorkingDate           string  `json:"last_working_date"`
	NoticePeriodServedDays    int     `json:"notice_period_served_days"`
	NoticePeriodShortfallDays int     `json:"notice_period_shortfall_days"`
	PendingCommissionsPaisa   int64   `json:"pending_commissions_paisa"`
	PendingTipsPaisa          int64   `json:"pending_tips_paisa"`
	LeaveEncashmentPaisa      int64   `json:"leave_encashment_paisa"`
	NetSettlementPaisa        int64   `json:"net_settlement_paisa"`
	SettlementStatus          string  `json:"settlement_status"`
}
