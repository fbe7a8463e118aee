package commission

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"

	"github.com/salonhq/salon-backend-go/internal/domain/auth"
	"github.com/salonhq/salon-backend-go/internal/domain/commission"
	"github.com/salonhq/salon-backend-go/internal/pkg/database"
)

type CommissionServiceImpl struct {
	db             *database.DB
	structureRepo  commission.StructureRepository
	assignmentRepo commission.AssignmentRepository
	earningRepo    commission.EarningRepository
}

func NewCommissionService(
	db *database.DB,
	structureRepo commission.StructureRepository,
	assignmentRepo commission.AssignmentRepository,
	earningRepo commission.EarningRepository,
) commission.CommissionService {
	return &CommissionServiceImpl{
		db:             db,
		structureRepo:  structureRepo,
		assignmentRepo: assignmentRepo,
		earningRepo:    earningRepo,
	}
}

// Helper to get business_id from JWT context
func getClaimsFromContext(ctx context.Context) (businessID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	businessID, ok := claims["business_id"].(string)
	if !ok || businessID == "" {
		return "", auth.ErrBusinessScopeMissing
	}

	return businessID, nil
}

// ========== STRUCTURES ==========

func (s *CommissionServiceImpl) CreateStructure(ctx context.Context, req commission.CreateStructureRequest) (commission.StructureResponse, error) {
	if err := req.Validate(); err != nil {
		return commission.StructureResponse{}, err
	}

	businessID, err := getClaimsFromContext(ctx)
	if err != nil {
		return commission.StructureResponse{}, err
	}

	basePercentage := decimal.Zero
	if req.BasePercentage != nil {
		basePercentage = *req.BasePercentage
	}

	structure := commission.CommissionStructure{
		BusinessID:      businessID,
		Name:            req.Name,
		Type:            commission.StructureType(req.Type),
		ServiceCategory: req.ServiceCategory,
		FlatAmountPaisa: req.FlatAmountPaisa,
		BasePercentage:  basePercentage,
		Tiers:           req.Tiers,
		IsActive:        true,
	}

	created, err := s.structureRepo.Create(ctx, structure)
	if err != nil {
		return commission.StructureResponse{}, err
	}

	return toStructureResponse(created), nil
}

func (s *CommissionServiceImpl) ListStructures(ctx context.Context, activeOnly bool) ([]commission.StructureResponse, error) {
	businessID, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	structures, err := s.structureRepo.ListByBusinessID(ctx, businessID, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]commission.StructureResponse, 0, len(structures))
	for _, structure := range structures {
		responses = append(responses, toStructureResponse(structure))
	}

	return responses, nil
}

func (s *CommissionServiceImpl) GetStructure(ctx context.Context, id string) (commission.StructureResponse, error) {
	businessID, err := getClaimsFromContext(ctx)
	if err != nil {
		return commission.StructureResponse{}, err
	}

	structure, err := s.structureRepo.GetByID(ctx, id, businessID)
	if err != nil {
		return commission.StructureResponse{}, err
	}

	return toStructureResponse(structure), nil
}

func (s *CommissionServiceImpl) DeactivateStructure(ctx context.Context, id string) error {
	businessID, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	return s.structureRepo.SetActive(ctx, id, businessID, false)
}

// DeleteStructure refuses to delete while staff are still assigned;
// deactivation is the path for retiring a structure in use.
func (s *CommissionServiceImpl) DeleteStructure(ctx context.Context, id string) error {
	businessID, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	if _, err := s.structureRepo.GetByID(ctx, id, businessID); err != nil {
		return err
	}

	count, err := s.structureRepo.CountAssignments(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return commission.ErrStructureAssigned
	}

	return s.structureRepo.Delete(ctx, id, businessID)
}

// ========== ASSIGNMENTS ==========

func (s *CommissionServiceImpl) AssignStaff(ctx context.Context, structureID string, req commission.AssignStaffRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	businessID, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	structure, err := s.structureRepo.GetByID(ctx, structureID, businessID)
	if err != nil {
		return err
	}
	if !structure.IsActive {
		return commission.ErrStructureInactive
	}

	_, err = s.assignmentRepo.Create(ctx, commission.Assignment{
		StructureID: structureID,
		StaffID:     req.StaffID,
		BusinessID:  businessID,
	})
	return err
}

func (s *CommissionServiceImpl) UnassignStaff(ctx context.Context, structureID string, staffID string) error {
	businessID, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	return s.assignmentRepo.Delete(ctx, structureID, staffID, businessID)
}

// ========== EARNINGS ==========

// RecordServiceSale evaluates the staff member's active structure against a
// completed sale and stores the result as an unsettled earning. Structures
// scoped to a service category only apply to sales in that category.
func (s *CommissionServiceImpl) RecordServiceSale(ctx context.Context, req commission.RecordSaleRequest) (commission.EarningResponse, error) {
	if err := req.Validate(); err != nil {
		return commission.EarningResponse{}, err
	}

	businessID, err := getClaimsFromContext(ctx)
	if err != nil {
		return commission.EarningResponse{}, err
	}

	structure, err := s.assignmentRepo.GetActiveStructureForStaff(ctx, req.StaffID, businessID)
	if err != nil {
		return commission.EarningResponse{}, err
	}

	if structure.ServiceCategory != nil {
		if req.ServiceCategory == nil || *req.ServiceCategory != *structure.ServiceCategory {
			return commission.EarningResponse{}, commission.ErrCategoryNotApplicable
		}
	}

	commissionPaisa, err := Evaluate(structure, req.ServiceValuePaisa)
	if err != nil {
		return commission.EarningResponse{}, err
	}

	earnedAt := time.Now()
	if req.EarnedAt != nil {
		earnedAt, _ = time.Parse(time.RFC3339, *req.EarnedAt)
	}

	earning := commission.Earning{
		BusinessID:        businessID,
		StaffID:           req.StaffID,
		StructureID:       structure.ID,
		ServiceCategory:   req.ServiceCategory,
		ServiceValuePaisa: req.ServiceValuePaisa,
		CommissionPaisa:   commissionPaisa,
		EarnedAt:          earnedAt,
	}

	created, err := s.earningRepo.Create(ctx, earning)
	if err != nil {
		return commission.EarningResponse{}, err
	}

	return toEarningResponse(created), nil
}

func (s *CommissionServiceImpl) ListEarnings(ctx context.Context, staffID string) ([]commission.EarningResponse, error) {
	businessID, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	earnings, err := s.earningRepo.ListByStaff(ctx, staffID, businessID)
	if err != nil {
		return nil, err
	}

	responses := make([]commission.EarningResponse, 0, len(earnings))
	for _, e := range earnings {
		responses = append(responses, toEarningResponse(e))
	}

	return responses, nil
}

// ========== MAPPERS ==========

func toStructureResponse(structure commission.CommissionStructure) commission.StructureResponse {
	return commission.StructureResponse{
		ID:                 structure.ID,
		BusinessID:         structure.BusinessID,
		Name:               structure.Name,
		Type:               string(structure.Type),
		ServiceCategory:    structure.ServiceCategory,
		FlatAmountPaisa:    structure.FlatAmountPaisa,
		BasePercentage:     structure.BasePercentage,
		Tiers:              structure.Tiers,
		IsActive:           structure.IsActive,
		AssignedStaffCount: structure.AssignedStaffCount,
	}
}

func toEarningResponse(e commission.Earning) commission.EarningResponse {
	return commission.EarningResponse{
		ID:                e.ID,
		StaffID:           e.StaffID,
		StructureID:       e.StructureID,
		ServiceCategory:   e.ServiceCategory,
		ServiceValuePaisa: e.ServiceValuePaisa,
		CommissionPaisa:   e.CommissionPaisa,
		EarnedAt:          e.EarnedAt.Format(time.RFC3339),
		PayrollEntryID:    e.PayrollEntryID,
	}
}
