package model

// Environment represents the deployment environment
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentStaging     Environment = "staging"
	EnvironmentProduction  Environment = "production"
)

// Account statuses.
const (
	StatusActive  = "active"
	StatusBlocked = "blocked"
)

// Content statuses, shared by courses and posts.
const (
	StatusPublished = "published"
	StatusDraft     = "draft"
)

// Transaction statuses.
const (
	StatusPaid    = "paid"
	StatusPending = "pending"
	StatusFailed  = "failed"
)

// Roles recognized by the console.
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// ToggleStatus flips a two-state status to its counterpart.
// Unknown values are returned unchanged.
func ToggleStatus(s string) string {
	switch s {
	case StatusActive:
		return StatusBlocked
	case StatusBlocked:
		return StatusActive
	case StatusPublished:
		return StatusDraft
	case StatusDraft:
		return StatusPublished
	default:
		return s
	}
}
