package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/jobdeck/admin-be/internal/worker/domain"
	"github.com/jobdeck/admin-be/shared/postgresql"
)

// Storage provides database operations for the worker service
type Storage struct {
	db *sqlx.DB
}

// NewStorage creates a new Storage instance
func NewStorage(pg *postgresql.Client) *Storage {
	return &Storage{db: pg.GetDB()}
}

// InsertNotification stores one recruiter notification.
func (s *Storage) InsertNotification(ctx context.Context, n *domain.Notification) error {
	if n.NotificationID == "" {
		n.NotificationID = uuid.New().String()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO notifications (notification_id, user_id, kind, title, body, job_id, created_at)
		VALUES (:notification_id, :user_id, :kind, :title, :body, :job_id, :created_at)`

	if _, err := s.db.NamedExecContext(ctx, query, n); err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}

	return nil
}

// ExpireDueJobs closes published jobs whose expiry date has passed and
// writes the matching audit entries in one transaction. SKIP LOCKED lets
// concurrent sweeps divide the batch instead of blocking on each other.
// The closed jobs are returned so the caller can publish expiry events.
func (s *Storage) ExpireDueJobs(ctx context.Context, batchSize int, now time.Time) ([]domain.ExpiredJob, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE jobs SET
			status = 'closed',
			moderation_notes = 'Automatic expiry'
		WHERE job_id IN (
			SELECT job_id FROM jobs
			WHERE status = 'published' AND expires_at <= $1
			ORDER BY expires_at ASC
			LIMIT $2
			FOR UPDATE SKIP LOCKED
		)
		RETURNING job_id, title, user_id, expires_at`

	var expired []domain.ExpiredJob
	if err := tx.SelectContext(ctx, &expired, query, now, batchSize); err != nil {
		return nil, fmt.Errorf("failed to expire jobs: %w", err)
	}

	if len(expired) == 0 {
		return nil, tx.Commit()
	}

	history := `
		INSERT INTO job_moderation_history (entry_id, job_id, moderator_id, action, previous_status, new_status, reason, notes, created_at)
		VALUES ($1, $2, NULL, 'expired', 'published', 'closed', NULL, 'Automatic expiry', $3)`

	for _, job := range expired {
		if _, err := tx.ExecContext(ctx, history, uuid.New().String(), job.JobID, now); err != nil {
			return nil, fmt.Errorf("failed to record expiry for job %s: %w", job.JobID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit expiry batch: %w", err)
	}

	return expired, nil
}
