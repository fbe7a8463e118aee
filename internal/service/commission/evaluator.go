package commission

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/salonhq/salon-backend-go/internal/domain/commission"
)

// Evaluate computes the commission in paisa for one completed service sale
// against a structure. Tiered structures must resolve to exactly one tier:
// zero matches and multiple matches are both hard errors, never guessed
// around.
func Evaluate(structure commission.CommissionStructure, serviceValuePaisa int64) (int64, error) {
	if !structure.IsActive {
		return 0, commission.ErrStructureInactive
	}

	switch structure.Type {
	case commission.StructureFlat:
		return structure.FlatAmountPaisa, nil

	case commission.StructurePercentage:
		return applyRate(serviceValuePaisa, structure.BasePercentage), nil

	case commission.StructureTiered:
		var matched *commission.Tier
		for i := range structure.Tiers {
			if structure.Tiers[i].Contains(serviceValuePaisa) {
				if matched != nil {
					return 0, commission.ErrAmbiguousTiers
				}
				matched = &structure.Tiers[i]
			}
		}
		if matched == nil {
			return 0, commission.ErrNoTierMatch
		}
		return applyRate(serviceValuePaisa, matched.RatePercent), nil

	default:
		return 0, fmt.Errorf("unknown commission structure type %q", structure.Type)
	}
}

// applyRate takes ratePercent of the value, truncating fractional paisa.
func applyRate(valuePaisa int64, ratePercent decimal.Decimal) int64 {
	return decimal.NewFromInt(valuePaisa).
		Mul(ratePercent).
		Div(decimal.NewFromInt(100)).
		IntPart()
}
