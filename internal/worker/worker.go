package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jobdeck/admin-be/internal/worker/domain"
	"github.com/jobdeck/admin-be/internal/worker/storage"
	"github.com/jobdeck/admin-be/shared/postgresql"
	"github.com/jobdeck/admin-be/shared/rabbitmq"
)

// Config holds worker configuration
type Config struct {
	Logger         *slog.Logger
	DBClient       *postgresql.Client
	RabbitClient   *rabbitmq.Client
	Concurrency    int
	PrefetchCount  int
	SweepInterval  time.Duration
	SweepBatchSize int
}

// Worker consumes moderation events and runs the expiry sweep
type Worker struct {
	logger         *slog.Logger
	storage        *storage.Storage
	rabbitClient   *rabbitmq.Client
	concurrency    int
	prefetchCount  int
	sweepInterval  time.Duration
	sweepBatchSize int
	workerID       string
	eventsChan     chan *domain.EventMessage
	wg             sync.WaitGroup
	stopChan       chan struct{}
}

// NewWorker creates a new worker instance
func NewWorker(cfg *Config) *Worker {
	prefetch := cfg.PrefetchCount
	if prefetch <= 0 {
		prefetch = cfg.Concurrency
	}

	return &Worker{
		logger:         cfg.Logger,
		storage:        storage.NewStorage(cfg.DBClient),
		rabbitClient:   cfg.RabbitClient,
		concurrency:    cfg.Concurrency,
		prefetchCount:  prefetch,
		sweepInterval:  cfg.SweepInterval,
		sweepBatchSize: cfg.SweepBatchSize,
		workerID:       fmt.Sprintf("moderation-worker-%s", uuid.New().String()[:8]),
		eventsChan:     make(chan *domain.EventMessage),
		stopChan:       make(chan struct{}),
	}
}

// Start begins consuming moderation events and sweeping expired jobs
func (w *Worker) Start(ctx context.Context) error {
	w.logger.Info("Starting worker",
		slog.String("worker_id", w.workerID),
		slog.Int("concurrency", w.concurrency),
		slog.Duration("sweep_interval", w.sweepInterval),
	)

	deliveries, err := w.setupConsumer(ctx)
	if err != nil {
		return fmt.Errorf("failed to set up consumer: %w", err)
	}

	w.spawnWorkerPool(ctx)

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.runSweeper(ctx)
	}()

	w.startMessageDispatcher(ctx, deliveries)

	return nil
}

// Stop gracefully stops the worker
func (w *Worker) Stop() {
	w.logger.Info("Stopping worker...")
	close(w.stopChan)
	w.wg.Wait()
	w.logger.Info("Worker stopped")
}
