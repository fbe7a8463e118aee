package staffing

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonhq/salon-backend-go/internal/domain/commission"
	"github.com/salonhq/salon-backend-go/internal/domain/staffing"
)

const (
	testBusinessID = "business-1"
	testStaffID    = "staff-1"
)

// ========== FAKES ==========

type fakeProfileRepo struct {
	profiles map[string]staffing.EmploymentProfile // keyed by staff ID
}

func (f *fakeProfileRepo) Create(_ context.Context, profile staffing.EmploymentProfile) (staffing.EmploymentProfile, error) {
	f.profiles[profile.StaffID] = profile
	return profile, nil
}

func (f *fakeProfileRepo) GetByID(_ context.Context, id string, businessID string) (staffing.EmploymentProfile, error) {
	for _, p := range f.profiles {
		if p.ID == id && p.BusinessID == businessID {
			return p, nil
		}
	}
	return staffing.EmploymentProfile{}, staffing.ErrProfileNotFound
}

func (f *fakeProfileRepo) GetByStaffID(_ context.Context, staffID string, businessID string) (staffing.EmploymentProfile, error) {
	p, ok := f.profiles[staffID]
	if !ok || p.BusinessID != businessID {
		return staffing.EmploymentProfile{}, staffing.ErrProfileNotFound
	}
	return p, nil
}

func (f *fakeProfileRepo) GetActiveByBusinessID(_ context.Context, businessID string) ([]staffing.EmploymentProfile, error) {
	var out []staffing.EmploymentProfile
	for _, p := range f.profiles {
		if p.BusinessID == businessID && p.Status == staffing.ProfileStatusActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProfileRepo) Update(_ context.Context, _ string, _ staffing.UpdateProfileRequest) error {
	return nil
}

func (f *fakeProfileRepo) UpdateStatus(_ context.Context, id string, businessID string, status staffing.ProfileStatus) error {
	for staffID, p := range f.profiles {
		if p.ID == id && p.BusinessID == businessID {
			p.Status = status
			f.profiles[staffID] = p
			return nil
		}
	}
	return staffing.ErrProfileNotFound
}

func (f *fakeProfileRepo) LockByID(ctx context.Context, id string, businessID string) (staffing.EmploymentProfile, error) {
	return f.GetByID(ctx, id, businessID)
}

type fakeExitRepo struct {
	records map[string]staffing.ExitRecord // keyed by staff ID
}

func (f *fakeExitRepo) Create(_ context.Context, record staffing.ExitRecord) (staffing.ExitRecord, error) {
	if _, ok := f.records[record.StaffID]; ok {
		return staffing.ExitRecord{}, staffing.ErrExitRecordExists
	}
	record.ID = "exit-" + record.StaffID
	f.records[record.StaffID] = record
	return record, nil
}

func (f *fakeExitRepo) GetByStaffID(_ context.Context, staffID string, businessID string) (staffing.ExitRecord, error) {
	r, ok := f.records[staffID]
	if !ok || r.BusinessID != businessID {
		return staffing.ExitRecord{}, staffing.ErrExitRecordNotFound
	}
	return r, nil
}

type fakeEarningRepo struct {
	unsettledPaisa map[string]int64 // keyed by staff ID
}

func (f *fakeEarningRepo) Create(_ context.Context, earning commission.Earning) (commission.Earning, error) {
	return earning, nil
}

func (f *fakeEarningRepo) SumUnsettledByStaff(_ context.Context, staffID string, _ string) (int64, error) {
	return f.unsettledPaisa[staffID], nil
}

func (f *fakeEarningRepo) SumUnsettledByStaffInPeriod(_ context.Context, staffID string, _ string, _, _ time.Time) (int64, error) {
	return f.unsettledPaisa[staffID], nil
}

func (f *fakeEarningRepo) SettleByStaffInPeriod(_ context.Context, _, _ string, _, _ time.Time, _ string) error {
	return nil
}

func (f *fakeEarningRepo) ListByStaff(_ context.Context, _ string, _ string) ([]commission.Earning, error) {
	return nil, nil
}

// ========== HELPERS ==========

func authedContext(t *testing.T) context.Context {
	ja := jwtauth.New("HS256", []byte("test-secret-key-for-jwt"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"business_id": testBusinessID,
		"user_id":     "user-1",
		"type":        "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func newExitTestService() (*StaffingServiceImpl, *fakeProfileRepo, *fakeExitRepo, *fakeEarningRepo) {
	profileRepo := &fakeProfileRepo{profiles: map[string]staffing.EmploymentProfile{}}
	exitRepo := &fakeExitRepo{records: map[string]staffing.ExitRecord{}}
	earningRepo := &fakeEarningRepo{unsettledPaisa: map[string]int64{}}
	svc := &StaffingServiceImpl{
		profileRepo: profileRepo,
		exitRepo:    exitRepo,
		earningRepo: earningRepo,
	}
	return svc, profileRepo, exitRepo, earningRepo
}

// ========== EXIT ==========

func TestRecordExit_WithoutProfile(t *testing.T) {
	svc, _, exitRepo, earningRepo := newExitTestService()
	earningRepo.unsettledPaisa[testStaffID] = 9_000_00
	ctx := authedContext(t)

	resp, err := svc.RecordExit(ctx, staffing.RecordExitRequest{
		StaffID:          testStaffID,
		ExitType:         "resignation",
		ResignationDate:  "2025-05-01",
		LastWorkingDate:  "2025-05-31",
		PendingTipsPaisa: 500_00,
	})
	require.NoError(t, err)

	assert.Nil(t, resp.EmploymentProfileID)
	assert.Equal(t, int64(9_000_00), resp.PendingCommissionsPaisa)
	assert.Equal(t, int64(500_00), resp.PendingTipsPaisa)
	assert.Equal(t, int64(0), resp.LeaveEncashmentPaisa)
	assert.Equal(t, int64(9_500_00), resp.NetSettlementPaisa)
	assert.Equal(t, 0, resp.NoticePeriodShortfallDays)

	stored, ok := exitRepo.records[testStaffID]
	require.True(t, ok)
	assert.Equal(t, staffing.ExitResignation, stored.ExitType)
}

func TestRecordExit_WithoutProfile_SecondExitConflicts(t *testing.T) {
	svc, _, _, _ := newExitTestService()
	ctx := authedContext(t)

	req := staffing.RecordExitRequest{
		StaffID:         testStaffID,
		ExitType:        "termination",
		ResignationDate: "2025-05-01",
		LastWorkingDate: "2025-05-31",
	}

	_, err := svc.RecordExit(ctx, req)
	require.NoError(t, err)

	_, err = svc.RecordExit(ctx, req)
	assert.ErrorIs(t, err, staffing.ErrExitRecordExists)
}
