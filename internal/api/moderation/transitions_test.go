package moderation

import (
	"testing"
	"time"

	"github.com/jobdeck/admin-be/internal/api/domain"
	"github.com/jobdeck/admin-be/internal/api/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

func pendingJob() *model.Job {
	return &model.Job{
		JobID:  "11111111-1111-1111-1111-111111111111",
		Title:  "Backend Engineer",
		UserID: "22222222-2222-2222-2222-222222222222",
		Status: domain.JobStatusPending,
	}
}

func TestApplyApprove(t *testing.T) {
	t.Run("publishes pending job with expiry", func(t *testing.T) {
		job := pendingJob()

		entry, err := ApplyApprove(job, ApprovalOptions{
			ValidityDays: 30,
			IsUrgent:     true,
			Notes:        "looks good",
		}, "mod-1", testNow)
		require.NoError(t, err)

		assert.Equal(t, domain.JobStatusPublished, job.Status)
		require.True(t, job.PublishedAt.Valid)
		assert.True(t, job.PublishedAt.Time.Equal(testNow))
		require.True(t, job.ExpiresAt.Valid)
		assert.True(t, job.ExpiresAt.Time.Equal(testNow.AddDate(0, 0, 30)))
		require.True(t, job.ValidityDays.Valid)
		assert.Equal(t, int64(30), job.ValidityDays.Int64)
		assert.True(t, job.IsUrgent)
		assert.False(t, job.IsFeatured)

		assert.Equal(t, domain.ActionApproved, entry.Action)
		assert.Equal(t, domain.JobStatusPending, entry.PreviousStatus)
		assert.Equal(t, domain.JobStatusPublished, entry.NewStatus)
		assert.Equal(t, "mod-1", entry.ModeratorID.String)
		assert.NotEmpty(t, entry.EntryID)
	})

	t.Run("clears a previous rejection reason", func(t *testing.T) {
		job := pendingJob()
		job.RejectionReason.String = "old reason"
		job.RejectionReason.Valid = true

		_, err := ApplyApprove(job, ApprovalOptions{ValidityDays: 7}, "mod-1", testNow)
		require.NoError(t, err)
		assert.False(t, job.RejectionReason.Valid)
	})

	t.Run("rejects out-of-range validity", func(t *testing.T) {
		for _, days := range []int{0, -1, 366} {
			job := pendingJob()
			_, err := ApplyApprove(job, ApprovalOptions{ValidityDays: days}, "mod-1", testNow)
			assert.ErrorIs(t, err, domain.ErrInvalidValidity)
			assert.Equal(t, domain.JobStatusPending, job.Status)
		}
	})

	t.Run("refuses non-pending statuses", func(t *testing.T) {
		for _, status := range []string{
			domain.JobStatusPublished,
			domain.JobStatusRejected,
			domain.JobStatusClosed,
		} {
			job := pendingJob()
			job.Status = status
			_, err := ApplyApprove(job, ApprovalOptions{ValidityDays: 30}, "mod-1", testNow)
			assert.ErrorIs(t, err, domain.ErrInvalidTransition, "status %s", status)
		}
	})
}

func TestApplyReject(t *testing.T) {
	t.Run("rejects pending job with reason", func(t *testing.T) {
		job := pendingJob()

		entry, err := ApplyReject(job, "incomplete description", "", "mod-1", testNow)
		require.NoError(t, err)

		assert.Equal(t, domain.JobStatusRejected, job.Status)
		require.True(t, job.RejectionReason.Valid)
		assert.Equal(t, "incomplete description", job.RejectionReason.String)
		assert.Equal(t, domain.ActionRejected, entry.Action)
		assert.Equal(t, "incomplete description", entry.Reason.String)
	})

	t.Run("requires a non-blank reason", func(t *testing.T) {
		for _, reason := range []string{"", "   ", "\t\n"} {
			job := pendingJob()
			_, err := ApplyReject(job, reason, "", "mod-1", testNow)
			assert.ErrorIs(t, err, domain.ErrReasonRequired)
			assert.Equal(t, domain.JobStatusPending, job.Status)
		}
	})

	t.Run("refuses non-pending statuses", func(t *testing.T) {
		job := pendingJob()
		job.Status = domain.JobStatusPublished
		_, err := ApplyReject(job, "reason", "", "mod-1", testNow)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})
}

func TestApplyRepublish(t *testing.T) {
	closedJob := func() *model.Job {
		job := pendingJob()
		job.Status = domain.JobStatusClosed
		job.RenewalCount = 2
		return job
	}

	t.Run("reopens closed job and bumps renewal count", func(t *testing.T) {
		job := closedJob()

		entry, err := ApplyRepublish(job, RepublishOptions{ValidityDays: 15}, "mod-1", testNow)
		require.NoError(t, err)

		assert.Equal(t, domain.JobStatusPublished, job.Status)
		assert.Equal(t, 3, job.RenewalCount)
		require.True(t, job.ExpiresAt.Valid)
		assert.True(t, job.ExpiresAt.Time.Equal(testNow.AddDate(0, 0, 15)))
		assert.Equal(t, domain.ActionRepublished, entry.Action)
		assert.Equal(t, domain.JobStatusClosed, entry.PreviousStatus)
	})

	t.Run("refuses non-closed statuses", func(t *testing.T) {
		for _, status := range []string{
			domain.JobStatusPending,
			domain.JobStatusPublished,
			domain.JobStatusRejected,
		} {
			job := closedJob()
			job.Status = status
			_, err := ApplyRepublish(job, RepublishOptions{ValidityDays: 15}, "mod-1", testNow)
			assert.ErrorIs(t, err, domain.ErrInvalidTransition, "status %s", status)
		}
	})

	t.Run("validates the new window", func(t *testing.T) {
		job := closedJob()
		_, err := ApplyRepublish(job, RepublishOptions{ValidityDays: 500}, "mod-1", testNow)
		assert.ErrorIs(t, err, domain.ErrInvalidValidity)
	})
}

func TestApplyBadgeUpdate(t *testing.T) {
	t.Run("updates flags without touching lifecycle", func(t *testing.T) {
		job := pendingJob()
		job.Status = domain.JobStatusPublished
		job.IsUrgent = true

		entry, err := ApplyBadgeUpdate(job, BadgeOptions{IsFeatured: true}, "mod-1", testNow)
		require.NoError(t, err)

		assert.Equal(t, domain.JobStatusPublished, job.Status)
		assert.False(t, job.IsUrgent)
		assert.True(t, job.IsFeatured)
		assert.Equal(t, domain.ActionBadgeUpdated, entry.Action)
		assert.Equal(t, domain.JobStatusPublished, entry.PreviousStatus)
		assert.Equal(t, domain.JobStatusPublished, entry.NewStatus)
	})

	t.Run("refuses non-published statuses", func(t *testing.T) {
		for _, status := range []string{
			domain.JobStatusPending,
			domain.JobStatusRejected,
			domain.JobStatusClosed,
		} {
			job := pendingJob()
			job.Status = status
			_, err := ApplyBadgeUpdate(job, BadgeOptions{IsUrgent: true}, "mod-1", testNow)
			assert.ErrorIs(t, err, domain.ErrInvalidTransition, "status %s", status)
		}
	})
}
