package commission

import (
	"context"
)

type CommissionService interface {
	// Structure
	CreateStructure(ctx context.Context, req CreateStructureRequest) (StructureResponse, error)
	ListStructures(ctx context.Context, activeOnly bool) ([]StructureResponse, error)
	GetStructure(ctx context.Context, id string) (StructureResponse, error)
	DeactivateStructure(ctx context.Context, id string) error
	DeleteStructure(ctx context.Context, id string) error
	// Assignment
	AssignStaff(ctx context.Context, structureID string, req AssignStaffRequest) error
	UnassignStaff(ctx context.Context, structureID string, staffID string) error
	// Earnings
	RecordServiceSale(ctx context.Context, req RecordSaleRequest) (EarningResponse, error)
	ListEarnings(ctx context.Context, staffID string) ([]EarningResponse, error)
}
