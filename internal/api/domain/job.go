package domain

import (
	"errors"
	"fmt"
	"time"
)

// Job lifecycle statuses. Postings are created by the recruiter submission
// flow in "pending" and only moderator actions move them from there.
const (
	JobStatusPending   = "pending"
	JobStatusPublished = "published"
	JobStatusRejected  = "rejected"
	JobStatusClosed    = "closed"
)

// Moderation history actions. History rows are append-only.
const (
	ActionSubmitted    = "submitted"
	ActionApproved     = "approved"
	ActionRejected     = "rejected"
	ActionRepublished  = "republished"
	ActionBadgeUpdated = "badge_updated"
	ActionExpired      = "expired"
)

// Validity window bounds for a published posting, in days.
const (
	MinValidityDays = 1
	MaxValidityDays = 365

	// DefaultValidityDays is the fixed window used by bulk approval.
	DefaultValidityDays = 30
)

// ValidityPresets are the durations offered up front by moderation clients.
var ValidityPresets = []int{7, 15, 30, 45, 60, 90}

var (
	ErrJobNotFound = errors.New("job not found")

	// ErrInvalidTransition is returned when a moderation action is applied
	// to a job whose current status does not allow it.
	ErrInvalidTransition = errors.New("invalid status transition")

	ErrReasonRequired     = errors.New("rejection reason is required")
	ErrInvalidValidity    = fmt.Errorf("validity days must be between %d and %d", MinValidityDays, MaxValidityDays)
	ErrInsufficientCredit = errors.New("insufficient credit balance")
	ErrNotFound           = errors.New("record not found")
)

// ValidateValidityDays checks the 1-365 day bound shared by approve and
// republish.
func ValidateValidityDays(days int) error {
	if days < MinValidityDays || days > MaxValidityDays {
		return ErrInvalidValidity
	}
	return nil
}

// ExpiryDate computes when a posting published at the given time stops
// being visible.
func ExpiryDate(publishedAt time.Time, validityDays int) time.Time {
	return publishedAt.AddDate(0, 0, validityDays)
}

// IsValidStatus reports whether s is one of the four lifecycle statuses.
func IsValidStatus(s string) bool {
	switch s {
	case JobStatusPending, JobStatusPublished, JobStatusRejected, JobStatusClosed:
		return true
	}
	return false
}
