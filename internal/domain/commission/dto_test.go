package commission

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/salonhq/salon-backend-go/internal/pkg/validator"
)

func percent(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestCreateStructureRequestFlat(t *testing.T) {
	req := CreateStructureRequest{Name: "Per-service bonus", Type: "flat", FlatAmountPaisa: 5_00}
	assert.NoError(t, req.Validate())

	req.FlatAmountPaisa = 0
	assert.Error(t, req.Validate())
}

func TestCreateStructureRequestPercentage(t *testing.T) {
	rate := percent(15)
	req := CreateStructureRequest{Name: "Stylist cut", Type: "percentage", BasePercentage: &rate}
	assert.NoError(t, req.Validate())

	over := percent(150)
	req.BasePercentage = &over
	assert.Error(t, req.Validate())

	req.BasePercentage = nil
	assert.Error(t, req.Validate())
}

func TestCreateStructureRequestUnknownType(t *testing.T) {
	req := CreateStructureRequest{Name: "Mystery", Type: "stepped"}
	assert.Error(t, req.Validate())
}

func TestTierValidation(t *testing.T) {
	tests := []struct {
		name    string
		tiers   Tiers
		wantErr bool
	}{
		{
			name: "contiguous tiers pass",
			tiers: Tiers{
				{MinPaisa: 0, MaxPaisa: 50_000, RatePercent: percent(10)},
				{MinPaisa: 50_001, MaxPaisa: 100_000, RatePercent: percent(15)},
			},
		},
		{
			name:    "empty tiers rejected",
			tiers:   Tiers{},
			wantErr: true,
		},
		{
			name: "gap rejected",
			tiers: Tiers{
				{MinPaisa: 0, MaxPaisa: 50_000, RatePercent: percent(10)},
				{MinPaisa: 60_000, MaxPaisa: 100_000, RatePercent: percent(15)},
			},
			wantErr: true,
		},
		{
			name: "overlap rejected",
			tiers: Tiers{
				{MinPaisa: 0, MaxPaisa: 50_000, RatePercent: percent(10)},
				{MinPaisa: 40_000, MaxPaisa: 100_000, RatePercent: percent(15)},
			},
			wantErr: true,
		},
		{
			name: "inverted band rejected",
			tiers: Tiers{
				{MinPaisa: 50_000, MaxPaisa: 10_000, RatePercent: percent(10)},
			},
			wantErr: true,
		},
		{
			name: "rate above 100 rejected",
			tiers: Tiers{
				{MinPaisa: 0, MaxPaisa: 50_000, RatePercent: percent(120)},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := CreateStructureRequest{Name: "Tiered", Type: "tiered", Tiers: tt.tiers}
			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				var verrs validator.ValidationErrors
				assert.ErrorAs(t, err, &verrs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTierContains(t *testing.T) {
	tier := Tier{MinPaisa: 100, MaxPaisa: 200}
	assert.True(t, tier.Contains(100))
	assert.True(t, tier.Contains(200))
	assert.False(t, tier.Contains(99))
	assert.False(t, tier.Contains(201))
}
