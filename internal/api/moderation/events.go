package moderation

import "time"

// Event kinds published to the moderation exchange. The worker service
// consumes these to deliver recruiter notifications.
const (
	EventJobApproved      = "job.approved"
	EventJobRejected      = "job.rejected"
	EventJobRepublished   = "job.republished"
	EventJobBadgesUpdated = "job.badges_updated"
	EventJobExpired       = "job.expired"
)

// Event is the message body for every moderation notification.
type Event struct {
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
