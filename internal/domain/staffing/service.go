package staffing

import (
	"context"
	"time"
)

type StaffingService interface {
	// Profile
	CreateProfile(ctx context.Context, req CreateProfileRequest) (ProfileResponse, error)
	GetProfile(ctx context.Context, staffID string) (ProfileResponse, error)
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (ProfileResponse, error)
	// Salary
	ReplaceActiveSalary(ctx context.Context, req ReplaceSalaryRequest) (SalaryComponentResponse, error)
	GetActiveSalary(ctx context.Context, staffID string) (SalaryComponentResponse, error)
	GetSalaryAsOf(ctx context.Context, staffID string, at time.Time) (SalaryComponentResponse, error)
	SalaryHistory(ctx context.Context, staffID string) ([]SalaryComponentResponse, error)
	// Exit
	RecordExit(ctx context.Context, req RecordExitRequest) (ExitRecordResponse, error)
	GetExitRecord(ctx context.Context, staffID string) (ExitRecordResponse, error)
}
