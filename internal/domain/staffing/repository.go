package staffing

import (
	"context"
	"time"
)

// ProfileRepository defines data access for employment profiles.
// All methods take businessID to prevent cross-tenant access.
type ProfileRepository interface {
	Create(ctx context.Context, profile EmploymentProfile) (EmploymentProfile, error)
	GetByID(ctx context.Context, id string, businessID string) (EmploymentProfile, error)
	GetByStaffID(ctx context.Context, staffID string, businessID string) (EmploymentProfile, error)
	GetActiveByBusinessID(ctx context.Context, businessID string) ([]EmploymentProfile, error)
	Update(ctx context.Context, businessID string, req UpdateProfileRequest) error
	UpdateStatus(ctx context.Context, id string, businessID string, status ProfileStatus) error
	LockByID(ctx context.Context, id string, businessID string) (EmploymentProfile, error)
}

// SalaryComponentRepository defines data access for the versioned salary ledger.
type SalaryComponentRepository interface {
	GetActive(ctx context.Context, employmentProfileID string) (SalaryComponent, error)
	GetAsOf(ctx context.Context, employmentProfileID string, at time.Time) (SalaryComponent, error)
	History(ctx context.Context, employmentProfileID string) ([]SalaryComponent, error)
	DeactivateActive(ctx context.Context, employmentProfileID string, effectiveTo time.Time) error
	Insert(ctx context.Context, component SalaryComponent) (SalaryComponent, error)
}

type ExitRecordRepository interface {
	Create(ctx context.Context, record ExitRecord) (ExitRecord, error)
	GetByStaffID(ctx context.Context, staffID string, businessID string) (ExitRecord, error)
}
