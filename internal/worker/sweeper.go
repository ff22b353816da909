package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/jobdeck/admin-be/internal/worker/domain"
)

// runSweeper periodically closes published jobs whose expiry date has
// passed. Each sweep handles at most sweepBatchSize jobs; a full batch
// triggers an immediate follow-up sweep so a backlog drains quickly.
func (w *Worker) runSweeper(ctx context.Context) {
	w.logger.Info("Expiry sweeper started",
		slog.Duration("interval", w.sweepInterval),
		slog.Int("batch_size", w.sweepBatchSize),
	)

	ticker := time.NewTicker(w.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopChan:
			w.logger.Info("Expiry sweeper stopped - stopChan closed")
			return

		case <-ctx.Done():
			w.logger.Info("Expiry sweeper stopped - context canceled")
			return

		case <-ticker.C:
			for {
				full, err := w.sweepOnce(ctx)
				if err != nil {
					w.logger.Error("Expiry sweep failed",
						slog.String("error", err.Error()),
					)
					break
				}
				if !full {
					break
				}
			}
		}
	}
}

// sweepOnce expires one batch of due jobs and reports whether the batch
// was full.
func (w *Worker) sweepOnce(ctx context.Context) (bool, error) {
	now := time.Now()

	expired, err := w.storage.ExpireDueJobs(ctx, w.sweepBatchSize, now)
	if err != nil {
		return false, err
	}

	if len(expired) == 0 {
		return false, nil
	}

	w.logger.Info("Expired jobs closed",
		slog.Int("count", len(expired)),
	)

	for _, job := range expired {
		event := domain.ModerationEvent{
			Kind:        domain.EventJobExpired,
			JobID:       job.JobID,
			JobTitle:    job.Title,
			RecruiterID: job.UserID,
			NewStatus:   "closed",
			ExpiresAt:   job.ExpiresAt,
			OccurredAt:  now,
		}

		// Best effort: the job is already closed in the database, a
		// failed publish only loses the notification.
		body, err := json.Marshal(event)
		if err != nil {
			w.logger.Error("Failed to marshal expiry event",
				slog.String("job_id", job.JobID),
				slog.String("error", err.Error()),
			)
			continue
		}

		if err := w.rabbitClient.PublishWithRetry(ctx, body, "application/json"); err != nil {
			w.logger.Error("Failed to publish expiry event",
				slog.String("job_id", job.JobID),
				slog.String("error", err.Error()),
			)
		}
	}

	return len(expired) == w.sweepBatchSize, nil
}
