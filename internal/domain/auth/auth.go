package auth

import "errors"

// Role of the authenticated user within their business.
type Role string

const (
	RoleOwner Role = "owner"
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

var (
	ErrInvalidToken           = errors.New("invalid or missing token")
	ErrOwnerPrivilegeRequired = errors.New("owner or admin privilege required")
	ErrBusinessScopeMissing   = errors.New("business scope missing from token")
)
