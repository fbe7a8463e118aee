package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/salonhq/salon-backend-go/internal/domain/leave"
	"github.com/salonhq/salon-backend-go/internal/domain/staffing"
)

// periodBounds returns the first and last calendar day of the month, UTC.
func periodBounds(year, month int) (start, end time.Time) {
	start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, -1)
	return start, end
}

func daysInMonth(year, month int) int {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start.AddDate(0, 1, -1).Day()
}

// overlapDays returns how many of a leave request's days fall inside the
// period. A request fully inside the period keeps its own day count, which
// preserves half days; a request spilling over the edge is clipped to whole
// days inside the period.
func overlapDays(request leave.LeaveRequest, periodStart, periodEnd time.Time) decimal.Decimal {
	start := request.StartDate
	if start.Before(periodStart) {
		start = periodStart
	}
	end := request.EndDate
	if end.After(periodEnd) {
		end = periodEnd
	}
	if start.After(end) {
		return decimal.Zero
	}

	if !start.After(request.StartDate) && !end.Before(request.EndDate) {
		return request.NumberOfDays
	}

	days := int64(end.Sub(start).Hours()/24) + 1
	return decimal.NewFromInt(days)
}

// entryAmounts is one staff member's computed pay for a period.
type entryAmounts struct {
	BaseSalaryPaisa           int64
	AllowancesPaisa           int64
	CommissionPaisa           int64
	GrossEarningsPaisa        int64
	UnpaidLeaveDeductionPaisa int64
	TotalDeductionsPaisa      int64
	NetPayablePaisa           int64
}

// computeEntry applies the pay formula: gross is base plus allowances plus
// commission, deductions are statutory deductions plus unpaid leave valued at
// the daily rate, net is the difference. Fractional paisa truncate.
func computeEntry(component staffing.SalaryComponent, commissionPaisa int64, unpaidLeaveDays decimal.Decimal, monthDays int) entryAmounts {
	base := component.BaseSalaryPaisa
	allowances := component.TotalAllowancesPaisa()
	gross := base + allowances + commissionPaisa

	dailyRate := component.DailyRatePaisa
	if dailyRate == 0 && monthDays > 0 {
		dailyRate = base / int64(monthDays)
	}

	unpaidDeduction := unpaidLeaveDays.Mul(decimal.NewFromInt(dailyRate)).IntPart()
	totalDeductions := component.TotalDeductionsPaisa() + unpaidDeduction

	return entryAmounts{
		BaseSalaryPaisa:           base,
		AllowancesPaisa:           allowances,
		CommissionPaisa:           commissionPaisa,
		GrossEarningsPaisa:        gross,
		UnpaidLeaveDeductionPaisa: unpaidDeduction,
		TotalDeductionsPaisa:      totalDeductions,
		NetPayablePaisa:           gross - totalDeductions,
	}
}
