package staffing

import "errors"

var (
	ErrProfileNotFound         = errors.New("employment profile not found")
	ErrProfileExists           = errors.New("employment profile already exists for this staff member")
	ErrProfileFrozen           = errors.New("employment profile is resigned or terminated")
	ErrSalaryComponentNotFound = errors.New("no salary component found for employment profile")
	ErrExitRecordExists        = errors.New("exit record already exists for this staff member")
	ErrExitRecordNotFound      = errors.New("exit record not found")
)
