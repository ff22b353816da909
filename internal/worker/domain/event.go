package domain

import "time"

// Moderation event kinds consumed from the moderation exchange.
const (
	EventJobApproved      = "job.approved"
	EventJobRejected      = "job.rejected"
	EventJobRepublished   = "job.republished"
	EventJobBadgesUpdated = "job.badges_updated"
	EventJobExpired       = "job.expired"
)

// ModerationEvent is the wire shape of a moderation message.
type ModerationEvent struct {
	Kind        string    `json:"kind"`
	JobID       string    `json:"job_id"`
	JobTitle    string    `json:"job_title"`
	RecruiterID string    `json:"recruiter_id"`
	NewStatus   string    `json:"new_status"`
	Reason      string    `json:"reason,omitempty"`
	ModeratorID string    `json:"moderator_id,omitempty"`
	ExpiresAt   time.Time `json:"expires_at,omitzero"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// EventMessage pairs a parsed event with its broker delivery tag so the
// processing result can be acknowledged later.
type EventMessage struct {
	Event       ModerationEvent
	DeliveryTag uint64
}

// Notification is a recruiter-facing message produced from a moderation
// event, stored for the platform's notification feed.
type Notification struct {
	NotificationID string    `db:"notification_id"`
	UserID         string    `db:"user_id"`
	Kind           string    `db:"kind"`
	Title          string    `db:"title"`
	Body           string    `db:"body"`
	JobID          string    `db:"job_id"`
	CreatedAt      time.Time `db:"created_at"`
}

// ExpiredJob is one posting closed by the expiry sweep.
type ExpiredJob struct {
	JobID     string    `db:"job_id"`
	Title     string    `db:"title"`
	UserID    string    `db:"user_id"`
	ExpiresAt time.Time `db:"expires_at"`
}
