package domain

import "errors"

// Role represents a caller's access level. Authentication happens outside
// this system; by the time a call reaches a use case the caller has already
// been tagged with one of these roles.
type Role string

const (
	// RoleManagement can reconcile finances and generate reports
	RoleManagement Role = "management"

	// RoleStaff can view bookings and orders assigned to them
	RoleStaff Role = "staff"
)

var validRoles = map[Role]bool{
	RoleManagement: true,
	RoleStaff:      true,
}

// IsValid checks if the role is a valid role
func (r Role) IsValid() bool {
	return validRoles[r]
}

// Actor is the explicit capability context passed into every mutating
// operation, instead of an ambient per-call session lookup.
type Actor struct {
	ID   string
	Name string
	Role Role
}

// CanManageFinances reports whether the actor may save financial entries and
// generate reports.
func (a Actor) CanManageFinances() bool {
	return a.Role == RoleManagement
}

// Authentication errors
var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token expired")
	ErrInsufficientRole = errors.New("insufficient role for this operation")
)
