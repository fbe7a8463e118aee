package leave

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonhq/salon-backend-go/internal/pkg/validator"
)

func TestCreateLeaveTypeRequestValidate(t *testing.T) {
	valid := CreateLeaveTypeRequest{
		Name:            "Casual Leave",
		Code:            "CL",
		AnnualQuotaDays: 12,
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(r *CreateLeaveTypeRequest)
		field  string
	}{
		{"missing name", func(r *CreateLeaveTypeRequest) { r.Name = "" }, "name"},
		{"lowercase code", func(r *CreateLeaveTypeRequest) { r.Code = "cl" }, "code"},
		{"code too long", func(r *CreateLeaveTypeRequest) { r.Code = "ABCDEFGHIJK" }, "code"},
		{"negative quota", func(r *CreateLeaveTypeRequest) { r.AnnualQuotaDays = -1 }, "annual_quota_days"},
		{"negative carry forward", func(r *CreateLeaveTypeRequest) { r.MaxCarryForwardDays = -5 }, "max_carry_forward_days"},
		{"rate over 100", func(r *CreateLeaveTypeRequest) {
			rate := 150.0
			r.EncashmentRatePercent = &rate
		}, "encashment_rate_percent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			err := req.Validate()
			require.Error(t, err)

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Equal(t, tt.field, verrs[0].Field)
		})
	}
}

func TestAllocateBalanceRequestValidate(t *testing.T) {
	valid := AllocateBalanceRequest{
		StaffID:       "staff-1",
		LeaveTypeID:   "0d382e5c-2a6f-4f5e-9a6f-0b1c2d3e4f5a",
		Year:          2025,
		AllocatedDays: decimal.NewFromInt(12),
	}
	assert.NoError(t, valid.Validate())

	negative := valid
	negative.AllocatedDays = decimal.NewFromInt(-1)
	assert.Error(t, negative.Validate())

	tooEarly := valid
	tooEarly.Year = 2019
	assert.Error(t, tooEarly.Validate())

	badID := valid
	badID.LeaveTypeID = "not-a-uuid"
	assert.Error(t, badID.Validate())
}

func TestUpdateLeaveTypeRequestValidate(t *testing.T) {
	empty := UpdateLeaveTypeRequest{ID: "lt-1"}
	assert.NoError(t, empty.Validate())

	rate := 150.0
	overRate := UpdateLeaveTypeRequest{ID: "lt-1", EncashmentRatePercent: &rate}
	assert.Error(t, overRate.Validate())

	carry := -1
	negativeCarry := UpdateLeaveTypeRequest{ID: "lt-1", MaxCarryForwardDays: &carry}
	assert.Error(t, negativeCarry.Validate())

	quota := -3
	negativeQuota := UpdateLeaveTypeRequest{ID: "lt-1", AnnualQuotaDays: &quota}
	assert.Error(t, negativeQuota.Validate())

	name := "  "
	blankName := UpdateLeaveTypeRequest{ID: "lt-1", Name: &name}
	assert.Error(t, blankName.Validate())
}

func TestSubmitRequestRequestValidate(t *testing.T) {
	valid := SubmitRequestRequest{
		LeaveTypeID:  "0d382e5c-2a6f-4f5e-9a6f-0b1c2d3e4f5a",
		StartDate:    "2025-06-10",
		EndDate:      "2025-06-12",
		NumberOfDays: decimal.NewFromInt(3),
	}
	assert.NoError(t, valid.Validate())

	t.Run("half day requires a slot", func(t *testing.T) {
		req := valid
		req.IsHalfDay = true
		assert.Error(t, req.Validate())

		slot := "first_half"
		req.HalfDaySlot = &slot
		assert.NoError(t, req.Validate())

		bad := "morning"
		req.HalfDaySlot = &bad
		assert.Error(t, req.Validate())
	})

	t.Run("zero days rejected", func(t *testing.T) {
		req := valid
		req.NumberOfDays = decimal.Zero
		assert.Error(t, req.Validate())
	})

	t.Run("bad dates rejected", func(t *testing.T) {
		req := valid
		req.StartDate = "10/06/2025"
		assert.Error(t, req.Validate())
	})
}
