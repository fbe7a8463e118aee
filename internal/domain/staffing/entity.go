package staffing

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "full_time"
	EmploymentPartTime   EmploymentType = "part_time"
	EmploymentContract   EmploymentType = "contract"
	EmploymentFreelancer EmploymentType = "freelancer"
)

type CompensationModel string

const (
	CompensationFixedSalary          CompensationModel = "fixed_salary"
	CompensationHourly               CompensationModel = "hourly"
	CompensationCommissionOnly       CompensationModel = "commission_only"
	CompensationSalaryPlusCommission CompensationModel = "salary_plus_commission"
)

type ProfileStatus string

const (
	ProfileStatusActive       ProfileStatus = "active"
	ProfileStatusOnLeave      ProfileStatus = "on_leave"
	ProfileStatusNoticePeriod ProfileStatus = "notice_period"
	ProfileStatusResigned     ProfileStatus = "resigned"
	ProfileStatusTerminated   ProfileStatus = "terminated"
)

type PayoutMethod string

const (
	PayoutBankTransfer PayoutMethod = "bank_transfer"
	PayoutUPI          PayoutMethod = "upi"
	PayoutCash         PayoutMethod = "cash"
)

type OnboardingStatus string

const (
	OnboardingPending    OnboardingStatus = "pending"
	OnboardingInProgress OnboardingStatus = "in_progress"
	OnboardingComplete   OnboardingStatus = "complete"
)

// OnboardingChecklist tracks task completion per category, stored as JSONB.
type OnboardingChecklist struct {
	Documents map[string]bool `json:"documents,omitempty"`
	Training  map[string]bool `json:"training,omitempty"`
	Access    map[string]bool `json:"access,omitempty"`
}

// Value implements driver.Valuer for database storage
func (c OnboardingChecklist) Value() (driver.Value, error) {
	if c.Documents == nil && c.Training == nil && c.Access == nil {
		return nil, nil
	}
	return json.Marshal(c)
}

// Scan implements sql.Scanner for database retrieval
func (c *OnboardingChecklist) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan OnboardingChecklist: invalid type")
	}
	return json.Unmarshal(bytes, c)
}

// Complete reports whether every task in every category is done.
func (c OnboardingChecklist) Complete() bool {
	for _, category := range []map[string]bool{c.Documents, c.Training, c.Access} {
		for _, done := range category {
			if !done {
				return false
			}
		}
	}
	return true
}

// EmploymentProfile - one per (staff, business), never hard-deleted
type EmploymentProfile struct {
	ID                string
	StaffID           string
	BusinessID        string
	EmploymentType    EmploymentType
	CompensationModel CompensationModel
	Status            ProfileStatus
	JoiningDate       time.Time
	NoticePeriodDays  int
	PayoutMethod      PayoutMethod

	BankAccountName   *string
	BankAccountNumber *string
	BankIFSC          *string
	UPIID             *string
	PANNumber         *string

	Onboarding       OnboardingChecklist
	OnboardingStatus OnboardingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

type PayoutFrequency string

const (
	PayoutWeekly   PayoutFrequency = "weekly"
	PayoutBiWeekly PayoutFrequency = "bi_weekly"
	PayoutMonthly  PayoutFrequency = "monthly"
)

// SalaryComponent - versioned pay structure snapshot. History is append-only:
// replacing a salary closes the active component's validity window and inserts
// a new one, so "active salary as of date D" is a range scan, never a mutation.
type SalaryComponent struct {
	ID                  string
	EmploymentProfileID string

	BaseSalaryPaisa int64
	HourlyRatePaisa int64
	DailyRatePaisa  int64

	HRAPaisa             int64
	TravelAllowancePaisa int64
	MealAllowancePaisa   int64
	OtherAllowancesPaisa int64

	PFPaisa              int64
	ESIPaisa             int64
	ProfessionalTaxPaisa int64
	TDSPaisa             int64

	PayoutFrequency    PayoutFrequency
	PayoutDayOfMonth   int
	OvertimeMultiplier decimal.Decimal
	WeeklyWorkHours    int

	IsActive      bool
	EffectiveFrom time.Time
	EffectiveTo   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TotalAllowancesPaisa sums the four allowance categories.
func (s SalaryComponent) TotalAllowancesPaisa() int64 {
	return s.HRAPaisa + s.TravelAllowancePaisa + s.MealAllowancePaisa + s.OtherAllowancesPaisa
}

// TotalDeductionsPaisa sums the four statutory deduction categories.
func (s SalaryComponent) TotalDeductionsPaisa() int64 {
	return s.PFPaisa + s.ESIPaisa + s.ProfessionalTaxPaisa + s.TDSPaisa
}

type ExitType string

const (
	ExitResignation ExitType = "resignation"
	ExitTermination ExitType = "termination"
	ExitRetirement  ExitType = "retirement"
	ExitContractEnd ExitType = "contract_end"
	ExitAbsconding  ExitType = "absconding"
)

type SettlementStatus string

const (
	SettlementPending   SettlementStatus = "pending"
	SettlementCompleted SettlementStatus = "completed"
)

// ExitRecord - one per staff lifetime; creating it freezes the profile.
type ExitRecord struct {
	ID                  string
	StaffID             string
	BusinessID          string
	EmploymentProfileID *string

	ExitType        ExitType
	ResignationDate time.Time
	LastWorkingDate time.Time

	NoticePeriodServedDays    int
	NoticePeriodShortfallDays int

	PendingCommissionsPaisa int64
	PendingTipsPaisa        int64
	LeaveEncashmentPaisa    int64
	NetSettlementPaisa      int64

	SettlementStatus SettlementStatus
	CreatedAt        time.Time
}

// TerminalStatus maps an exit type onto the profile status it freezes the
// employment profile into. The exit type itself stays on the ExitRecord, so
// retirement and contract_end remain distinguishable after the fact.
func (t ExitType) TerminalStatus() ProfileStatus {
	if t == ExitResignation {
		return ProfileStatusResigned
	}
	return ProfileStatusTerminated
}
