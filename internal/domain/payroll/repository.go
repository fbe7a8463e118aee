package payroll

import "context"

// CycleRepository defines data access for payroll cycles.
// All methods include businessID to prevent cross-business data access.
type CycleRepository interface {
	Create(ctx context.Context, cycle PayrollCycle) (PayrollCycle, error)
	GetByID(ctx context.Context, id string, businessID string) (PayrollCycle, error)
	// LockByID fetches the cycle FOR UPDATE so that concurrent processing
	// calls serialize on the row.
	LockByID(ctx context.Context, id string, businessID string) (PayrollCycle, error)
	ListByBusinessID(ctx context.Context, businessID string) ([]PayrollCycle, error)
	MarkProcessed(ctx context.Context, cycle PayrollCycle) error
	UpdateStatus(ctx context.Context, id string, businessID string, status CycleStatus) error
}

type EntryRepository interface {
	Create(ctx context.Context, entry PayrollEntry) (PayrollEntry, error)
	ListByCycleID(ctx context.Context, cycleID string, businessID string) ([]PayrollEntry, error)
	CountByCycleID(ctx context.Context, cycleID string) (int64, error)
	UpdatePaymentStatusByCycleID(ctx context.Context, cycleID string, status PaymentStatus) error
}
