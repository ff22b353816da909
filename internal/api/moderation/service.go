package moderation

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/jobdeck/admin-be/internal/api/domain"
	"github.com/jobdeck/admin-be/internal/api/model"
)

// Store is the slice of job storage the moderation service needs. The
// sqlx-backed implementation lives in internal/api/storage.
type Store interface {
	GetJob(ctx context.Context, jobID string) (*model.Job, error)
	// ApplyModeration persists the mutated job together with its history
	// entry in a single transaction.
	ApplyModeration(ctx context.Context, job *model.Job, entry *model.ModerationHistory) error
}

// Publisher pushes moderation events to the message broker. Publishing is
// best-effort: a failed publish is logged, never rolled into the caller's
// error path, because the database transaction has already committed.
type Publisher interface {
	PublishWithRetry(ctx context.Context, body []byte, contentType string) error
}

// BulkResult aggregates per-item outcomes of a batch approval.
type BulkResult struct {
	Approved int      `json:"approved"`
	Errors   int      `json:"errors"`
	FailedID []string `json:"failed_ids,omitempty"`
}

// Service implements the moderation workflow: every status transition a
// moderator can trigger, plus the expiry preview.
type Service struct {
	store     Store
	publisher Publisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewService creates a moderation service. publisher may be nil in tests.
func NewService(store Store, publisher Publisher, logger *slog.Logger) *Service {
	return &Service{
		store:     store,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// PreviewExpiry returns the "visible until" date a job approved right now
// with the given validity would get. Shown to the moderator before the
// action is confirmed.
func (s *Service) PreviewExpiry(validityDays int) (time.Time, error) {
	if err := domain.ValidateValidityDays(validityDays); err != nil {
		return time.Time{}, err
	}
	return domain.ExpiryDate(s.now(), validityDays), nil
}

// Approve publishes a pending job with the given validity window and
// badge flags.
func (s *Service) Approve(ctx context.Context, jobID, moderatorID string, opts ApprovalOptions) (*model.Job, error) {
	job, err := s.store.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	entry, err := ApplyApprove(job, opts, moderatorID, now)
	if err != nil {
		return nil, err
	}

	if err := s.store.ApplyModeration(ctx, job, entry); err != nil {
		return nil, fmt.Errorf("failed to approve job: %w", err)
	}

	s.publish(ctx, Event{
		Kind:        EventJobApproved,
		JobID:       job.JobID,
		JobTitle:    job.Title,
		RecruiterID: job.UserID,
		NewStatus:   job.Status,
		ModeratorID: moderatorID,
		ExpiresAt:   job.ExpiresAt.Time,
		OccurredAt:  now,
	})

	return job, nil
}

// Reject moves a pending job to rejected with a mandatory reason.
func (s *Service) Reject(ctx context.Context, jobID, moderatorID, reason, notes string) (*model.Job, error) {
	job, err := s.store.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	entry, err := ApplyReject(job, reason, notes, moderatorID, now)
	if err != nil {
		return nil, err
	}

	if err := s.store.ApplyModeration(ctx, job, entry); err != nil {
		return nil, fmt.Errorf("failed to reject job: %w", err)
	}

	s.publish(ctx, Event{
		Kind:        EventJobRejected,
		JobID:       job.JobID,
		JobTitle:    job.Title,
		RecruiterID: job.UserID,
		NewStatus:   job.Status,
		Reason:      reason,
		ModeratorID: moderatorID,
		OccurredAt:  now,
	})

	return job, nil
}

// Republish reopens a closed job with a fresh validity window, bumping its
// renewal count.
func (s *Service) Republish(ctx context.Context, jobID, moderatorID string, opts RepublishOptions) (*model.Job, error) {
	job, err := s.store.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	entry, err := ApplyRepublish(job, opts, moderatorID, now)
	if err != nil {
		return nil, err
	}

	if err := s.store.ApplyModeration(ctx, job, entry); err != nil {
		return nil, fmt.Errorf("failed to republish job: %w", err)
	}

	s.publish(ctx, Event{
		Kind:        EventJobRepublished,
		JobID:       job.JobID,
		JobTitle:    job.Title,
		RecruiterID: job.UserID,
		NewStatus:   job.Status,
		ModeratorID: moderatorID,
		ExpiresAt:   job.ExpiresAt.Time,
		OccurredAt:  now,
	})

	return job, nil
}

// UpdateBadges changes the urgent/featured flags on a published job. The
// lifecycle status is untouched.
func (s *Service) UpdateBadges(ctx context.Context, jobID, moderatorID string, opts BadgeOptions) (*model.Job, error) {
	job, err := s.store.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	entry, err := ApplyBadgeUpdate(job, opts, moderatorID, now)
	if err != nil {
		return nil, err
	}

	if err := s.store.ApplyModeration(ctx, job, entry); err != nil {
		return nil, fmt.Errorf("failed to update badges: %w", err)
	}

	s.publish(ctx, Event{
		Kind:        EventJobBadgesUpdated,
		JobID:       job.JobID,
		JobTitle:    job.Title,
		RecruiterID: job.UserID,
		NewStatus:   job.Status,
		ModeratorID: moderatorID,
		OccurredAt:  now,
	})

	return job, nil
}

// BulkApprove approves the selected jobs one by one with the fixed default
// validity window. Items are processed sequentially so the aggregate count
// is deterministic relative to issuance order; a failed item is counted
// and skipped, never rolled back across the batch.
func (s *Service) BulkApprove(ctx context.Context, jobIDs []string, moderatorID string) BulkResult {
	var result BulkResult

	opts := ApprovalOptions{
		ValidityDays: domain.DefaultValidityDays,
		Notes:        fmt.Sprintf("Bulk approval - %d days", domain.DefaultValidityDays),
	}

	for _, id := range jobIDs {
		if _, err := s.Approve(ctx, id, moderatorID, opts); err != nil {
			s.logger.Warn("Bulk approval item failed",
				slog.String("job_id", id),
				slog.String("error", err.Error()),
			)
			result.Errors++
			result.FailedID = append(result.FailedID, id)
			continue
		}
		result.Approved++
	}

	return result
}

func (s *Service) publish(ctx context.Context, event Event) {
	if s.publisher == nil {
		return
	}

	body, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("Failed to marshal moderation event",
			slog.String("kind", event.Kind),
			slog.String("job_id", event.JobID),
			slog.String("error", err.Error()),
		)
		return
	}

	if err := s.publisher.PublishWithRetry(ctx, body, "application/json"); err != nil {
		s.logger.Error("Failed to publish moderation event",
			slog.String("kind", event.Kind),
			slog.String("job_id", event.JobID),
			slog.String("error", err.Error()),
		)
	}
}
