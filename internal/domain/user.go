package domain

import (
	"strings"
	"time"
)

// Role enumerates account roles. Persisted values are lowercase strings.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleMod   Role = "mod"
	RoleChef  Role = "chef"
	RoleDiner Role = "diner"
)

// ParseRole maps a persisted value to a Role, case-insensitively.
// Unrecognized values fall back to diner; ok reports whether the input
// matched a known role so callers can log the anomaly.
func ParseRole(value string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "admin":
		return RoleAdmin, true
	case "mod":
		return RoleMod, true
	case "chef":
		return RoleChef, true
	case "diner":
		return RoleDiner, true
	default:
		return RoleDiner, false
	}
}

// HasPermission reports whether the role is allowed to perform the action.
// Admins pass every check.
func HasPermission(role Role, action string) bool {
	switch role {
	case RoleAdmin:
		return true
	case RoleMod:
		switch action {
		case "manage_content", "manage_users", "view_reports":
			return true
		}
	case RoleChef:
		switch action {
		case "manage_own_chef_profile", "manage_own_menus", "manage_own_bookings":
			return true
		}
	case RoleDiner:
		switch action {
		case "view_chefs", "create_booking", "view_own_bookings":
			return true
		}
	}
	return false
}

// User is the domain model for marketplace accounts.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
