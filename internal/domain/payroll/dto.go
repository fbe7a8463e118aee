package payroll

import (
	"github.com/salonhq/salon-backend-go/internal/pkg/validator"
)

type CreateCycleRequest struct {
	PeriodYear  int `json:"period_year"`
	PeriodMonth int `json:"period_month"`
}

func (r *CreateCycleRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidPeriod(r.PeriodYear, r.PeriodMonth) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "month must be 1-12 and year 2020 or later"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CycleResponse struct {
	ID          string `json:"id"`
	BusinessID  string `json:"business_id"`
	PeriodYear  int    `json:"period_year"`
	PeriodMonth int    `json:"period_month"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`

	Status string `json:"status"`

	TotalStaffCount       int   `json:"total_staff_count"`
	TotalGrossSalaryPaisa int64 `json:"total_gross_salary_paisa"`
	TotalCommissionsPaisa int64 `json:"total_commissions_paisa"`
	TotalDeductionsPaisa  int64 `json:"total_deductions_paisa"`
	TotalNetPayablePaisa  int64 `json:"total_net_payable_paisa"`

	ProcessedAt *string `json:"processed_at,omitempty"`
	ProcessedBy *string `json:"processed_by,omitempty"`
	ApprovedAt  *string `json:"approved_at,omitempty"`

	// Populated on the detail endpoint only.
	EntryCount *int64 `json:"entry_count,omitempty"`
}

type EntryResponse struct {
	ID                  string `json:"id"`
	PayrollCycleID      string `json:"payroll_cycle_id"`
	StaffID             string `json:"staff_id"`
	EmploymentProfileID string `json:"employment_profile_id"`
	SalaryComponentID   string `json:"salary_component_id"`

	BaseSalaryPaisa           int64 `json:"base_salary_paisa"`
	AllowancesPaisa           int64 `json:"allowances_paisa"`
	CommissionPaisa           int64 `json:"commission_paisa"`
	GrossEarningsPaisa        int64 `json:"gross_earnings_paisa"`
	UnpaidLeaveDeductionPaisa int64 `json:"unpaid_leave_deduction_paisa"`
	TotalDeductionsPaisa      int64 `json:"total_deductions_paisa"`
	NetPayablePaisa           int64 `json:"net_payable_paisa"`

	PaymentStatus string `json:"payment_status"`
}

// SkippedStaff records one staff member the processor could not pay and why.
type SkippedStaff struct {
	StaffID string `json:"staff_id"`
	Reason  string `json:"reason"`
}

// ProcessingReport is the structured result of a cycle run: nothing is
// silently dropped, unconfigured staff show up under Skipped.
type ProcessingReport struct {
	Cycle     CycleResponse   `json:"cycle"`
	Processed []EntryResponse `json:"processed"`
	Skipped   []SkippedStaff  `json:"skipped"`
}
