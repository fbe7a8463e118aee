package payroll

import "errors"

var (
	ErrCycleNotFound     = errors.New("payroll cycle not found")
	ErrCycleExists       = errors.New("payroll cycle already exists for this period")
	ErrCycleNotDraft     = errors.New("payroll cycle already processed")
	ErrCycleNotProcessed = errors.New("payroll cycle is not in processed state")
	ErrCycleNotApproved  = errors.New("payroll cycle is not in approved state")
	ErrCyclePaid         = errors.New("payroll cycle is paid and immutable")
	ErrEntryNotFound     = errors.New("payroll entry not found")
)
