package payroll

import (
	"context"
)

type PayrollService interface {
	CreateCycle(ctx context.Context, req CreateCycleRequest) (CycleResponse, error)
	ProcessCycle(ctx context.Context, cycleID string) (ProcessingReport, error)
	ApproveCycle(ctx context.Context, cycleID string) (CycleResponse, error)
	MarkCyclePaid(ctx context.Context, cycleID string) (CycleResponse, error)
	GetCycle(ctx context.Context, cycleID string) (CycleResponse, error)
	ListCycles(ctx context.Context) ([]CycleResponse, error)
	ListEntries(ctx context.Context, cycleID string) ([]EntryResponse, error)
}
