package models

import apperrors "github.com/planit-app/planit-api/internal/errors"

// Role is a closed enumeration of user roles.
type Role string

const (
	RoleAdmin          Role = "ADMIN"
	RoleUser           Role = "USER"
	RoleProjectManager Role = "PROJECT_MANAGER"
)

// ParseRole converts a raw string into a Role, rejecting anything outside
// the enumeration at the boundary instead of deep in business logic.
func ParseRole(value string) (Role, error) {
	switch Role(value) {
	case RoleAdmin, RoleUser, RoleProjectManager:
		return Role(value), nil
	default:
		return "", apperrors.NewValidation("unknown role: %s", value)
	}
}

// IsValid reports whether the role is one of the known values.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleProjectManager:
		return true
	}
	return false
}
