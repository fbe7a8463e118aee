package commission

import (
	"context"
	"time"
)

type StructureRepository interface {
	Create(ctx context.Context, structure CommissionStructure) (CommissionStructure, error)
	GetByID(ctx context.Context, id string, businessID string) (CommissionStructure, error)
	ListByBusinessID(ctx context.Context, businessID string, activeOnly bool) ([]CommissionStructure, error)
	SetActive(ctx context.Context, id string, businessID string, active bool) error
	Delete(ctx context.Context, id string, businessID string) error
	CountAssignments(ctx context.Context, structureID string) (int64, error)
}

type AssignmentRepository interface {
	Create(ctx context.Context, assignment Assignment) (Assignment, error)
	Delete(ctx context.Context, structureID, staffID, businessID string) error
	GetActiveStructureForStaff(ctx context.Context, staffID string, businessID string) (CommissionStructure, error)
}

type EarningRepository interface {
	Create(ctx context.Context, earning Earning) (Earning, error)
	SumUnsettledByStaff(ctx context.Context, staffID string, businessID string) (int64, error)
	SumUnsettledByStaffInPeriod(ctx context.Context, staffID string, businessID string, from, to time.Time) (int64, error)
	SettleByStaffInPeriod(ctx context.Context, staffID string, businessID string, from, to time.Time, payrollEntryID string) error
	ListByStaff(ctx context.Context, staffID string, businessID string) ([]Earning, error)
}
