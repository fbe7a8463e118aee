package commission

import (
	"github.com/shopspring/decimal"

	"github.com/salonhq/salon-backend-go/internal/pkg/validator"
)

type CreateStructureRequest struct {
	Name            string           `json:"name"`
	Type            string           `json:"type"` // flat | percentage | tiered
	ServiceCategory *string          `json:"service_category,omitempty"`
	FlatAmountPaisa int64            `json:"flat_amount_paisa"`
	BasePercentage  *decimal.Decimal `json:"base_percentage,omitempty"`
	Tiers           Tiers            `json:"tiers,omitempty"`
}

func (r *CreateStructureRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}

	switch r.Type {
	case "flat":
		if r.FlatAmountPaisa <= 0 {
			errs = append(errs, validator.ValidationError{Field: "flat_amount_paisa", Message: "must be positive for flat structures"})
		}
	case "percentage":
		if r.BasePercentage == nil {
			errs = append(errs, validator.ValidationError{Field: "base_percentage", Message: "is required for percentage structures"})
		} else if r.BasePercentage.IsNegative() || r.BasePercentage.GreaterThan(decimal.NewFromInt(100)) {
			errs = append(errs, validator.ValidationError{Field: "base_percentage", Message: "must be between 0 and 100"})
		}
	case "tiered":
		errs = append(errs, validateTiers(r.Tiers)...)
	default:
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be one of flat, percentage, tiered"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// validateTiers enforces ordering, contiguity and non-overlap at save time.
// A gap or overlap is a configuration error, never silently resolved.
func validateTiers(tiers Tiers) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if len(tiers) == 0 {
		return append(errs, validator.ValidationError{Field: "tiers", Message: "at least one tier is required for tiered structures"})
	}

	hundred := decimal.NewFromInt(100)
	for i, tier := range tiers {
		field := "tiers[" + validator.Itoa(i) + "]"
		if tier.MinPaisa < 0 {
			errs = append(errs, validator.ValidationError{Field: field + ".min_paisa", Message: "must be non-negative"})
		}
		if tier.MaxPaisa < tier.MinPaisa {
			errs = append(errs, validator.ValidationError{Field: field + ".max_paisa", Message: "must not be below min_paisa"})
		}
		if tier.RatePercent.IsNegative() || tier.RatePercent.GreaterThan(hundred) {
			errs = append(errs, validator.ValidationError{Field: field + ".rate_percent", Message: "must be between 0 and 100"})
		}
		if i > 0 && tier.MinPaisa != tiers[i-1].MaxPaisa+1 {
			errs = append(errs, validator.ValidationError{Field: field + ".min_paisa", Message: "tiers must be contiguous: min must equal previous max + 1"})
		}
	}

	return errs
}

type StructureResponse struct {
	ID                 string          `json:"id"`
	BusinessID         string          `json:"business_id"`
	Name               string          `json:"name"`
	Type               string          `json:"type"`
	ServiceCategory    *string         `json:"service_category,omitempty"`
	FlatAmountPaisa    int64           `json:"flat_amount_paisa"`
	BasePercentage     decimal.Decimal `json:"base_percentage"`
	Tiers              Tiers           `json:"tiers,omitempty"`
	IsActive           bool            `json:"is_active"`
	AssignedStaffCount int64           `json:"assigned_staff_count"`
}

type AssignStaffRequest struct {
	StaffID string `json:"staff_id"`
}

func (r *AssignStaffRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{Field: "staff_id", Message: "is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordSaleRequest struct {
	StaffID           string  `json:"staff_id"`
	ServiceCategory   *string `json:"service_category,omitempty"`
	ServiceValuePaisa int64   `json:"service_value_paisa"`
	EarnedAt          *string `json:"earned_at,omitempty"` // RFC3339, defaults to now
}

func (r *RecordSaleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{Field: "staff_id", Message: "is required"})
	}
	if r.ServiceValuePaisa <= 0 {
		errs = append(errs, validator.ValidationError{Field: "service_value_paisa", Message: "must be positive"})
	}
	if r.EarnedAt != nil {
		if _, ok := validator.IsValidDateTime(*r.EarnedAt); !ok {
			errs = append(errs, validator.ValidationError{Field: "earned_at", Message: "must be an RFC3339 timestamp"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EarningResponse struct {
	ID                string  `json:"id"`
	StaffID           string  `json:"staff_id"`
	StructureID       string  `json:"structure_id"`
	ServiceCategory   *string `json:"service_category,omitempty"`
	ServiceValuePaisa int64   `json:"service_value_paisa"`
	CommissionPaisa   int64   `json:"commission_paisa"`
	EarnedAt          string  `json:"earned_at"`
	PayrollEntryID    *string `json:"payroll_entry_id,omitempty"`
}
