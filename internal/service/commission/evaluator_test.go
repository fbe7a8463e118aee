package commission

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonhq/salon-backend-go/internal/domain/commission"
)

func activeStructure(t commission.StructureType) commission.CommissionStructure {
	return commission.CommissionStructure{
		ID:       "structure-1",
		Type:     t,
		IsActive: true,
	}
}

func TestEvaluateFlat(t *testing.T) {
	structure := activeStructure(commission.StructureFlat)
	structure.FlatAmountPaisa = 5_00

	got, err := Evaluate(structure, 250_00)
	require.NoError(t, err)
	assert.Equal(t, int64(5_00), got)
}

func TestEvaluatePercentage(t *testing.T) {
	structure := activeStructure(commission.StructurePercentage)
	structure.BasePercentage = decimal.NewFromInt(15)

	got, err := Evaluate(structure, 100_00)
	require.NoError(t, err)
	assert.Equal(t, int64(15_00), got)
}

func TestEvaluatePercentageTruncatesFractionalPaisa(t *testing.T) {
	structure := activeStructure(commission.StructurePercentage)
	structure.BasePercentage = decimal.NewFromFloat(12.5)

	// 12.5% of 99 paisa = 12.375, truncated to 12.
	got, err := Evaluate(structure, 99)
	require.NoError(t, err)
	assert.Equal(t, int64(12), got)
}

func TestEvaluateTiered(t *testing.T) {
	structure := activeStructure(commission.StructureTiered)
	structure.Tiers = commission.Tiers{
		{MinPaisa: 0, MaxPaisa: 50_000, RatePercent: decimal.NewFromInt(10)},
		{MinPaisa: 50_001, MaxPaisa: 100_000, RatePercent: decimal.NewFromInt(15)},
	}

	got, err := Evaluate(structure, 60_000)
	require.NoError(t, err)
	assert.Equal(t, int64(9_000), got)
}

func TestEvaluateTieredBoundaries(t *testing.T) {
	structure := activeStructure(commission.StructureTiered)
	structure.Tiers = commission.Tiers{
		{MinPaisa: 0, MaxPaisa: 50_000, RatePercent: decimal.NewFromInt(10)},
		{MinPaisa: 50_001, MaxPaisa: 100_000, RatePercent: decimal.NewFromInt(15)},
	}

	// Bounds are inclusive: 50_000 still hits the first tier.
	got, err := Evaluate(structure, 50_000)
	require.NoError(t, err)
	assert.Equal(t, int64(5_000), got)

	got, err = Evaluate(structure, 50_001)
	require.NoError(t, err)
	assert.Equal(t, int64(7_500), got)
}

func TestEvaluateTieredNoMatch(t *testing.T) {
	structure := activeStructure(commission.StructureTiered)
	structure.Tiers = commission.Tiers{
		{MinPaisa: 0, MaxPaisa: 50_000, RatePercent: decimal.NewFromInt(10)},
	}

	_, err := Evaluate(structure, 60_000)
	assert.ErrorIs(t, err, commission.ErrNoTierMatch)
}

func TestEvaluateTieredAmbiguous(t *testing.T) {
	structure := activeStructure(commission.StructureTiered)
	structure.Tiers = commission.Tiers{
		{MinPaisa: 0, MaxPaisa: 60_000, RatePercent: decimal.NewFromInt(10)},
		{MinPaisa: 50_000, MaxPaisa: 100_000, RatePercent: decimal.NewFromInt(15)},
	}

	_, err := Evaluate(structure, 55_000)
	assert.ErrorIs(t, err, commission.ErrAmbiguousTiers)
}

func TestEvaluateInactiveStructure(t *testing.T) {
	structure := activeStructure(commission.StructureFlat)
	structure.IsActive = false

	_, err := Evaluate(structure, 100_00)
	assert.ErrorIs(t, err, commission.ErrStructureInactive)
}
