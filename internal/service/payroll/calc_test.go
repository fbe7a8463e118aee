package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/salonhq/salon-backend-go/internal/domain/leave"
	"github.com/salonhq/salon-backend-go/internal/domain/staffing"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPeriodBounds(t *testing.T) {
	start, end := periodBounds(2025, 2)
	assert.Equal(t, date(2025, time.February, 1), start)
	assert.Equal(t, date(2025, time.February, 28), end)

	start, end = periodBounds(2024, 2)
	assert.Equal(t, date(2024, time.February, 1), start)
	assert.Equal(t, date(2024, time.February, 29), end)

	start, end = periodBounds(2025, 12)
	assert.Equal(t, date(2025, time.December, 1), start)
	assert.Equal(t, date(2025, time.December, 31), end)
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, daysInMonth(2025, 1))
	assert.Equal(t, 28, daysInMonth(2025, 2))
	assert.Equal(t, 29, daysInMonth(2024, 2))
	assert.Equal(t, 30, daysInMonth(2025, 4))
}

func TestOverlapDays(t *testing.T) {
	periodStart, periodEnd := periodBounds(2025, 3)

	tests := []struct {
		name    string
		request leave.LeaveRequest
		want    decimal.Decimal
	}{
		{
			name: "fully inside keeps request day count",
			request: leave.LeaveRequest{
				StartDate:    date(2025, time.March, 10),
				EndDate:      date(2025, time.March, 12),
				NumberOfDays: decimal.NewFromInt(3),
			},
			want: decimal.NewFromInt(3),
		},
		{
			name: "half day inside keeps the fraction",
			request: leave.LeaveRequest{
				StartDate:    date(2025, time.March, 10),
				EndDate:      date(2025, time.March, 10),
				NumberOfDays: decimal.NewFromFloat(0.5),
			},
			want: decimal.NewFromFloat(0.5),
		},
		{
			name: "spilling past the end is clipped",
			request: leave.LeaveRequest{
				StartDate:    date(2025, time.March, 30),
				EndDate:      date(2025, time.April, 3),
				NumberOfDays: decimal.NewFromInt(5),
			},
			want: decimal.NewFromInt(2),
		},
		{
			name: "starting before the period is clipped",
			request: leave.LeaveRequest{
				StartDate:    date(2025, time.February, 26),
				EndDate:      date(2025, time.March, 2),
				NumberOfDays: decimal.NewFromInt(5),
			},
			want: decimal.NewFromInt(2),
		},
		{
			name: "entirely outside contributes nothing",
			request: leave.LeaveRequest{
				StartDate:    date(2025, time.April, 1),
				EndDate:      date(2025, time.April, 2),
				NumberOfDays: decimal.NewFromInt(2),
			},
			want: decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := overlapDays(tt.request, periodStart, periodEnd)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestComputeEntryBaseOnly(t *testing.T) {
	component := staffing.SalaryComponent{BaseSalaryPaisa: 50_000}

	amounts := computeEntry(component, 0, decimal.Zero, 30)

	assert.Equal(t, int64(50_000), amounts.GrossEarningsPaisa)
	assert.Equal(t, int64(0), amounts.TotalDeductionsPaisa)
	assert.Equal(t, int64(50_000), amounts.NetPayablePaisa)
}

func TestComputeEntryAllowancesAndDeductions(t *testing.T) {
	component := staffing.SalaryComponent{
		BaseSalaryPaisa:      30_000,
		TravelAllowancePaisa: 2_000,
		PFPaisa:              1_000,
	}

	amounts := computeEntry(component, 0, decimal.Zero, 30)

	assert.Equal(t, int64(30_000), amounts.BaseSalaryPaisa)
	assert.Equal(t, int64(2_000), amounts.AllowancesPaisa)
	assert.Equal(t, int64(32_000), amounts.GrossEarningsPaisa)
	assert.Equal(t, int64(1_000), amounts.TotalDeductionsPaisa)
	assert.Equal(t, int64(31_000), amounts.NetPayablePaisa)
}

func TestComputeEntryCommissionRaisesGross(t *testing.T) {
	component := staffing.SalaryComponent{BaseSalaryPaisa: 50_000}

	amounts := computeEntry(component, 9_000, decimal.Zero, 30)

	assert.Equal(t, int64(9_000), amounts.CommissionPaisa)
	assert.Equal(t, int64(59_000), amounts.GrossEarningsPaisa)
	assert.Equal(t, int64(59_000), amounts.NetPayablePaisa)
}

func TestComputeEntryUnpaidLeaveDeduction(t *testing.T) {
	// No explicit daily rate: 30_000 / 30 days = 1_000 per day.
	component := staffing.SalaryComponent{BaseSalaryPaisa: 30_000}

	amounts := computeEntry(component, 0, decimal.NewFromInt(2), 30)

	assert.Equal(t, int64(2_000), amounts.UnpaidLeaveDeductionPaisa)
	assert.Equal(t, int64(2_000), amounts.TotalDeductionsPaisa)
	assert.Equal(t, int64(28_000), amounts.NetPayablePaisa)
}

func TestComputeEntryExplicitDailyRateWins(t *testing.T) {
	component := staffing.SalaryComponent{
		BaseSalaryPaisa: 30_000,
		DailyRatePaisa:  1_500,
	}

	amounts := computeEntry(component, 0, decimal.NewFromFloat(0.5), 30)

	assert.Equal(t, int64(750), amounts.UnpaidLeaveDeductionPaisa)
	assert.Equal(t, int64(29_250), amounts.NetPayablePaisa)
}
