package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jobdeck/admin-be/internal/worker/domain"
)

// spawnWorkerPool spawns N worker goroutines based on concurrency
// configuration
func (w *Worker) spawnWorkerPool(ctx context.Context) {
	w.logger.Info("Spawning worker pool",
		slog.Int("concurrency", w.concurrency),
		slog.String("worker_id", w.workerID),
	)

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.workerLoop(ctx, i)
	}
}

// workerLoop is the main processing loop for each worker goroutine
func (w *Worker) workerLoop(ctx context.Context, workerNum int) {
	defer w.wg.Done()

	workerName := fmt.Sprintf("%s-%d", w.workerID, workerNum)
	w.logger.Info("Worker goroutine started",
		slog.String("worker_name", workerName),
	)

	for {
		select {
		case <-w.stopChan:
			w.logger.Info("Worker goroutine stopping - stopChan closed",
				slog.String("worker_name", workerName),
			)
			return

		case <-ctx.Done():
			w.logger.Info("Worker goroutine stopping - context canceled",
				slog.String("worker_name", workerName),
			)
			return

		case msg, ok := <-w.eventsChan:
			if !ok {
				return
			}

			err := w.processEvent(ctx, msg)

			channel := w.rabbitClient.GetChannel()
			if channel == nil {
				w.logger.Error("Failed to get RabbitMQ channel for ACK/NACK",
					slog.String("worker_name", workerName),
					slog.String("job_id", msg.Event.JobID),
				)
				continue
			}

			if err != nil {
				w.logger.Error("Event processing failed",
					slog.String("worker_name", workerName),
					slog.String("kind", msg.Event.Kind),
					slog.String("job_id", msg.Event.JobID),
					slog.String("error", err.Error()),
				)

				requeue := w.shouldRequeueEvent(err)
				if nackErr := channel.Nack(msg.DeliveryTag, false, requeue); nackErr != nil {
					w.logger.Error("Failed to NACK message",
						slog.String("worker_name", workerName),
						slog.String("error", nackErr.Error()),
					)
				} else {
					w.logger.Info("Message NACKed",
						slog.String("worker_name", workerName),
						slog.String("job_id", msg.Event.JobID),
						slog.Bool("requeue", requeue),
					)
				}
				continue
			}

			if ackErr := channel.Ack(msg.DeliveryTag, false); ackErr != nil {
				w.logger.Error("Failed to ACK message",
					slog.String("worker_name", workerName),
					slog.String("error", ackErr.Error()),
				)
			} else {
				w.logger.Debug("Event processed",
					slog.String("worker_name", workerName),
					slog.String("kind", msg.Event.Kind),
					slog.String("job_id", msg.Event.JobID),
				)
			}
		}
	}
}

// shouldRequeueEvent determines if an event should be requeued based on
// the error type
func (w *Worker) shouldRequeueEvent(err error) bool {
	// A kind we cannot handle will never succeed on retry
	if errors.Is(err, domain.ErrUnknownEventKind) {
		return false
	}

	if errors.Is(err, domain.ErrMissingRecruiter) {
		return false
	}

	// Requeue for transient/retryable errors
	var retryableErr *domain.RetryableError
	if errors.As(err, &retryableErr) {
		return true
	}

	// Default: don't requeue for unknown errors
	return false
}
