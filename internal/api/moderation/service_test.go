package moderation

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jobdeck/admin-be/internal/api/domain"
	"github.com/jobdeck/admin-be/internal/api/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore serves jobs from a map and records every persisted history
// entry.
type fakeStore struct {
	jobs     map[string]*model.Job
	applied  []*model.ModerationHistory
	applyErr error
}

func newFakeStore(jobs ...*model.Job) *fakeStore {
	s := &fakeStore{jobs: make(map[string]*model.Job)}
	for _, job := range jobs {
		s.jobs[job.JobID] = job
	}
	return s
}

func (s *fakeStore) GetJob(ctx context.Context, jobID string) (*model.Job, error) {
	job, ok := s.jobs[jobID]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	copied := *job
	return &copied, nil
}

func (s *fakeStore) ApplyModeration(ctx context.Context, job *model.Job, entry *model.ModerationHistory) error {
	if s.applyErr != nil {
		return s.applyErr
	}
	s.jobs[job.JobID] = job
	s.applied = append(s.applied, entry)
	return nil
}

// fakePublisher captures published event bodies.
type fakePublisher struct {
	bodies [][]byte
	err    error
}

func (p *fakePublisher) PublishWithRetry(ctx context.Context, body []byte, contentType string) error {
	if p.err != nil {
		return p.err
	}
	p.bodies = append(p.bodies, body)
	return nil
}

func newTestService(store Store, publisher Publisher) *Service {
	svc := NewService(store, publisher, slog.New(slog.NewTextHandler(io.Discard, nil)))
	svc.now = func() time.Time { return testNow }
	return svc
}

func TestServiceApprove(t *testing.T) {
	t.Run("persists transition and publishes event", func(t *testing.T) {
		store := newFakeStore(pendingJob())
		publisher := &fakePublisher{}
		svc := newTestService(store, publisher)

		job, err := svc.Approve(context.Background(), pendingJob().JobID, "mod-1", ApprovalOptions{ValidityDays: 30})
		require.NoError(t, err)
		assert.Equal(t, domain.JobStatusPublished, job.Status)
		require.Len(t, store.applied, 1)

		require.Len(t, publisher.bodies, 1)
		var event Event
		require.NoError(t, json.Unmarshal(publisher.bodies[0], &event))
		assert.Equal(t, EventJobApproved, event.Kind)
		assert.Equal(t, job.JobID, event.JobID)
		assert.Equal(t, job.UserID, event.RecruiterID)
		assert.True(t, event.ExpiresAt.Equal(testNow.AddDate(0, 0, 30)))
	})

	t.Run("unknown job", func(t *testing.T) {
		svc := newTestService(newFakeStore(), &fakePublisher{})

		_, err := svc.Approve(context.Background(), "missing", "mod-1", ApprovalOptions{ValidityDays: 30})
		assert.ErrorIs(t, err, domain.ErrJobNotFound)
	})

	t.Run("storage failure does not publish", func(t *testing.T) {
		store := newFakeStore(pendingJob())
		store.applyErr = errors.New("connection reset")
		publisher := &fakePublisher{}
		svc := newTestService(store, publisher)

		_, err := svc.Approve(context.Background(), pendingJob().JobID, "mod-1", ApprovalOptions{ValidityDays: 30})
		assert.Error(t, err)
		assert.Empty(t, publisher.bodies)
	})

	t.Run("publish failure does not fail the action", func(t *testing.T) {
		store := newFakeStore(pendingJob())
		publisher := &fakePublisher{err: errors.New("broker down")}
		svc := newTestService(store, publisher)

		job, err := svc.Approve(context.Background(), pendingJob().JobID, "mod-1", ApprovalOptions{ValidityDays: 30})
		require.NoError(t, err)
		assert.Equal(t, domain.JobStatusPublished, job.Status)
	})
}

func TestServiceReject(t *testing.T) {
	store := newFakeStore(pendingJob())
	publisher := &fakePublisher{}
	svc := newTestService(store, publisher)

	job, err := svc.Reject(context.Background(), pendingJob().JobID, "mod-1", "duplicate posting", "")
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusRejected, job.Status)

	require.Len(t, publisher.bodies, 1)
	var event Event
	require.NoError(t, json.Unmarshal(publisher.bodies[0], &event))
	assert.Equal(t, EventJobRejected, event.Kind)
	assert.Equal(t, "duplicate posting", event.Reason)
}

func TestServicePreviewExpiry(t *testing.T) {
	svc := newTestService(newFakeStore(), nil)

	visible, err := svc.PreviewExpiry(45)
	require.NoError(t, err)
	assert.True(t, visible.Equal(testNow.AddDate(0, 0, 45)))

	_, err = svc.PreviewExpiry(0)
	assert.ErrorIs(t, err, domain.ErrInvalidValidity)
}

func TestServiceBulkApprove(t *testing.T) {
	t.Run("counts successes and failures per item", func(t *testing.T) {
		ok1 := pendingJob()
		ok1.JobID = "job-ok-1"
		alreadyPublished := pendingJob()
		alreadyPublished.JobID = "job-published"
		alreadyPublished.Status = domain.JobStatusPublished
		ok2 := pendingJob()
		ok2.JobID = "job-ok-2"

		store := newFakeStore(ok1, alreadyPublished, ok2)
		svc := newTestService(store, &fakePublisher{})

		result := svc.BulkApprove(context.Background(),
			[]string{"job-ok-1", "job-published", "job-missing", "job-ok-2"}, "mod-1")

		assert.Equal(t, 2, result.Approved)
		assert.Equal(t, 2, result.Errors)
		assert.Equal(t, []string{"job-published", "job-missing"}, result.FailedID)
	})

	t.Run("applies the default validity window", func(t *testing.T) {
		job := pendingJob()
		store := newFakeStore(job)
		svc := newTestService(store, &fakePublisher{})

		result := svc.BulkApprove(context.Background(), []string{job.JobID}, "mod-1")
		require.Equal(t, 1, result.Approved)

		stored := store.jobs[job.JobID]
		require.True(t, stored.ValidityDays.Valid)
		assert.Equal(t, int64(domain.DefaultValidityDays), stored.ValidityDays.Int64)
		assert.True(t, stored.ExpiresAt.Time.Equal(testNow.AddDate(0, 0, domain.DefaultValidityDays)))
	})
}
