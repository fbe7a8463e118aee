package payroll

import "time"

// CycleStatus enum. Transitions are strictly linear:
// draft -> processed -> approved -> paid. Paid cycles are immutable.
type CycleStatus string

const (
	CycleStatusDraft     CycleStatus = "draft"
	CycleStatusProcessed CycleStatus = "processed"
	CycleStatusApproved  CycleStatus = "approved"
	CycleStatusPaid      CycleStatus = "paid"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// PayrollCycle - one month's payroll run for a business.
// At most one cycle per (business, year, month), enforced by a DB constraint.
type PayrollCycle struct {
	ID          string
	BusinessID  string
	PeriodYear  int
	PeriodMonth int
	PeriodStart time.Time
	PeriodEnd   time.Time

	Status CycleStatus

	TotalStaffCount       int
	TotalGrossSalaryPaisa int64
	TotalCommissionsPaisa int64
	TotalDeductionsPaisa  int64
	TotalNetPayablePaisa  int64

	ProcessedAt *time.Time
	ProcessedBy *string
	ApprovedAt  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PayrollEntry - one staff member's computed pay for one cycle. Created only
// during processing and immutable afterwards; reprocessing is refused, not
// overwritten.
type PayrollEntry struct {
	ID                  string
	PayrollCycleID      string
	StaffID             string
	EmploymentProfileID string
	SalaryComponentID   string

	BaseSalaryPaisa           int64
	AllowancesPaisa           int64
	CommissionPaisa           int64
	GrossEarningsPaisa        int64
	UnpaidLeaveDeductionPaisa int64
	TotalDeductionsPaisa      int64
	NetPayablePaisa           int64

	PaymentStatus PaymentStatus
	CreatedAt     time.Time
}
