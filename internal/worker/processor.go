package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jobdeck/admin-be/internal/worker/domain"
)

// processEvent turns one moderation event into a recruiter notification.
func (w *Worker) processEvent(ctx context.Context, msg *domain.EventMessage) error {
	event := msg.Event

	w.logger.Info("Processing event",
		slog.String("kind", event.Kind),
		slog.String("job_id", event.JobID),
		slog.String("worker_id", w.workerID),
	)

	if event.RecruiterID == "" {
		return fmt.Errorf("%w: kind %s job %s", domain.ErrMissingRecruiter, event.Kind, event.JobID)
	}

	title, body, err := renderNotification(event)
	if err != nil {
		return err
	}

	notification := &domain.Notification{
		UserID:    event.RecruiterID,
		Kind:      event.Kind,
		Title:     title,
		Body:      body,
		JobID:     event.JobID,
		CreatedAt: notificationTimestamp(event),
	}

	if err := w.storage.InsertNotification(ctx, notification); err != nil {
		// Database errors are usually transient
		return domain.NewRetryableError(err)
	}

	return nil
}

// renderNotification builds the recruiter-facing text for one event kind.
func renderNotification(event domain.ModerationEvent) (title, body string, err error) {
	switch event.Kind {
	case domain.EventJobApproved:
		title = "Your job posting is live"
		body = fmt.Sprintf("%q has been approved and is now visible to candidates until %s.",
			event.JobTitle, event.ExpiresAt.Format("2 January 2006"))

	case domain.EventJobRejected:
		title = "Your job posting was rejected"
		body = fmt.Sprintf("%q was rejected by moderation. Reason: %s", event.JobTitle, event.Reason)

	case domain.EventJobRepublished:
		title = "Your job posting is live again"
		body = fmt.Sprintf("%q has been republished and is visible until %s.",
			event.JobTitle, event.ExpiresAt.Format("2 January 2006"))

	case domain.EventJobBadgesUpdated:
		title = "Your job posting badges changed"
		body = fmt.Sprintf("The visibility badges on %q were updated by an administrator.", event.JobTitle)

	case domain.EventJobExpired:
		title = "Your job posting has expired"
		body = fmt.Sprintf("%q reached the end of its validity window on %s and is no longer visible.",
			event.JobTitle, event.ExpiresAt.Format("2 January 2006"))

	default:
		return "", "", fmt.Errorf("%w: %s", domain.ErrUnknownEventKind, event.Kind)
	}

	return title, body, nil
}

// notificationTimestamp falls back to now for events without a timestamp.
func notificationTimestamp(event domain.ModerationEvent) time.Time {
	if event.OccurredAt.IsZero() {
		return time.Now()
	}
	return event.OccurredAt
}
