package staffing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateProfileRequestValidate(t *testing.T) {
	valid := CreateProfileRequest{
		StaffID:           "staff-1",
		EmploymentType:    "full_time",
		CompensationModel: "salary_plus_commission",
		JoiningDate:       "2025-04-01",
		PayoutMethod:      "bank_transfer",
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(r *CreateProfileRequest)
	}{
		{"missing staff id", func(r *CreateProfileRequest) { r.StaffID = "" }},
		{"bad employment type", func(r *CreateProfileRequest) { r.EmploymentType = "intern" }},
		{"bad compensation model", func(r *CreateProfileRequest) { r.CompensationModel = "equity" }},
		{"bad joining date", func(r *CreateProfileRequest) { r.JoiningDate = "01-04-2025" }},
		{"bad payout method", func(r *CreateProfileRequest) { r.PayoutMethod = "cheque" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			assert.Error(t, req.Validate())
		})
	}
}

func TestReplaceSalaryRequestValidate(t *testing.T) {
	valid := ReplaceSalaryRequest{
		BaseSalaryPaisa: 50_000_00,
		EffectiveFrom:   "2025-05-01",
	}
	assert.NoError(t, valid.Validate())

	negative := valid
	negative.PFPaisa = -1
	assert.Error(t, negative.Validate())

	badDay := valid
	day := 31
	badDay.PayoutDayOfMonth = &day
	assert.Error(t, badDay.Validate())

	badDate := valid
	badDate.EffectiveFrom = "May 1st"
	assert.Error(t, badDate.Validate())
}

func TestRecordExitRequestValidate(t *testing.T) {
	valid := RecordExitRequest{
		StaffID:         "staff-1",
		ExitType:        "resignation",
		ResignationDate: "2025-05-01",
		LastWorkingDate: "2025-05-31",
	}
	assert.NoError(t, valid.Validate())

	reversed := valid
	reversed.LastWorkingDate = "2025-04-01"
	assert.Error(t, reversed.Validate())

	badType := valid
	badType.ExitType = "ghosted"
	assert.Error(t, badType.Validate())

	negativeTips := valid
	negativeTips.PendingTipsPaisa = -100
	assert.Error(t, negativeTips.Validate())
}

func TestExitTypeTerminalStatus(t *testing.T) {
	assert.Equal(t, ProfileStatusResigned, ExitResignation.TerminalStatus())
	assert.Equal(t, ProfileStatusTerminated, ExitTermination.TerminalStatus())
	assert.Equal(t, ProfileStatusTerminated, ExitRetirement.TerminalStatus())
	assert.Equal(t, ProfileStatusTerminated, ExitContractEnd.TerminalStatus())
	assert.Equal(t, ProfileStatusTerminated, ExitAbsconding.TerminalStatus())
}

func TestOnboardingChecklistComplete(t *testing.T) {
	empty := OnboardingChecklist{}
	assert.True(t, empty.Complete())

	partial := OnboardingChecklist{
		Documents: map[string]bool{"id_proof": true, "pan_card": false},
	}
	assert.False(t, partial.Complete())

	done := OnboardingChecklist{
		Documents: map[string]bool{"id_proof": true},
		Training:  map[string]bool{"pos_system": true},
	}
	assert.True(t, done.Complete())
}

func TestSalaryComponentTotals(t *testing.T) {
	c := SalaryComponent{
		HRAPaisa:             1_000,
		TravelAllowancePaisa: 2_000,
		MealAllowancePaisa:   500,
		OtherAllowancesPaisa: 250,
		PFPaisa:              1_800,
		ESIPaisa:             200,
		ProfessionalTaxPaisa: 208,
		TDSPaisa:             92,
	}
	assert.Equal(t, int64(3_750), c.TotalAllowancesPaisa())
	assert.Equal(t, int64(2_300), c.TotalDeductionsPaisa())
}
