package moderation

import (
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jobdeck/admin-be/internal/api/domain"
	"github.com/jobdeck/admin-be/internal/api/model"
)

// ApprovalOptions carries the moderator input for approving a pending job.
type ApprovalOptions struct {
	ValidityDays int
	IsUrgent     bool
	IsFeatured   bool
	Notes        string
}

// RepublishOptions carries the moderator input for reopening a closed job.
type RepublishOptions struct {
	ValidityDays int
	Notes        string
}

// BadgeOptions carries the moderator input for a badge-only update.
type BadgeOptions struct {
	IsUrgent   bool
	IsFeatured bool
	Notes      string
}

// ApplyApprove moves a pending job to published in place and returns the
// history entry recording the transition. The job is published at `now`
// and expires after the given validity window.
func ApplyApprove(job *model.Job, opts ApprovalOptions, moderatorID string, now time.Time) (*model.ModerationHistory, error) {
	if job.Status != domain.JobStatusPending {
		return nil, domain.ErrInvalidTransition
	}
	if err := domain.ValidateValidityDays(opts.ValidityDays); err != nil {
		return nil, err
	}

	prev := job.Status
	job.Status = domain.JobStatusPublished
	job.PublishedAt = sql.NullTime{Time: now, Valid: true}
	job.ExpiresAt = sql.NullTime{Time: domain.ExpiryDate(now, opts.ValidityDays), Valid: true}
	job.ValidityDays = sql.NullInt64{Int64: int64(opts.ValidityDays), Valid: true}
	job.IsUrgent = opts.IsUrgent
	job.IsFeatured = opts.IsFeatured
	job.RejectionReason = sql.NullString{}
	stampModeration(job, moderatorID, opts.Notes, now)

	return newHistory(job, domain.ActionApproved, prev, moderatorID, "", opts.Notes, now), nil
}

// ApplyReject moves a pending job to rejected. The reason is mandatory and
// is later surfaced to the submitting recruiter.
func ApplyReject(job *model.Job, reason, notes, moderatorID string, now time.Time) (*model.ModerationHistory, error) {
	if job.Status != domain.JobStatusPending {
		return nil, domain.ErrInvalidTransition
	}
	if strings.TrimSpace(reason) == "" {
		return nil, domain.ErrReasonRequired
	}

	prev := job.Status
	job.Status = domain.JobStatusRejected
	job.RejectionReason = sql.NullString{String: reason, Valid: true}
	stampModeration(job, moderatorID, notes, now)

	return newHistory(job, domain.ActionRejected, prev, moderatorID, reason, notes, now), nil
}

// ApplyRepublish reopens a closed job with a fresh validity window and
// bumps its renewal count.
func ApplyRepublish(job *model.Job, opts RepublishOptions, moderatorID string, now time.Time) (*model.ModerationHistory, error) {
	if job.Status != domain.JobStatusClosed {
		return nil, domain.ErrInvalidTransition
	}
	if err := domain.ValidateValidityDays(opts.ValidityDays); err != nil {
		return nil, err
	}

	prev := job.Status
	job.Status = domain.JobStatusPublished
	job.PublishedAt = sql.NullTime{Time: now, Valid: true}
	job.ExpiresAt = sql.NullTime{Time: domain.ExpiryDate(now, opts.ValidityDays), Valid: true}
	job.ValidityDays = sql.NullInt64{Int64: int64(opts.ValidityDays), Valid: true}
	job.RenewalCount++
	stampModeration(job, moderatorID, opts.Notes, now)

	return newHistory(job, domain.ActionRepublished, prev, moderatorID, "", opts.Notes, now), nil
}

// ApplyBadgeUpdate changes the urgent/featured flags of a published job.
// Badges are only meaningful on published postings, so any other status is
// an invalid transition.
func ApplyBadgeUpdate(job *model.Job, opts BadgeOptions, moderatorID string, now time.Time) (*model.ModerationHistory, error) {
	if job.Status != domain.JobStatusPublished {
		return nil, domain.ErrInvalidTransition
	}

	job.IsUrgent = opts.IsUrgent
	job.IsFeatured = opts.IsFeatured
	stampModeration(job, moderatorID, opts.Notes, now)

	return newHistory(job, domain.ActionBadgeUpdated, job.Status, moderatorID, "", opts.Notes, now), nil
}

func stampModeration(job *model.Job, moderatorID, notes string, now time.Time) {
	job.ModeratedBy = sql.NullString{String: moderatorID, Valid: moderatorID != ""}
	job.ModeratedAt = sql.NullTime{Time: now, Valid: true}
	if notes != "" {
		job.ModerationNotes = sql.NullString{String: notes, Valid: true}
	}
}

func newHistory(job *model.Job, action, prevStatus, moderatorID, reason, notes string, now time.Time) *model.ModerationHistory {
	return &model.ModerationHistory{
		EntryID:        uuid.New().String(),
		JobID:          job.JobID,
		ModeratorID:    sql.NullString{String: moderatorID, Valid: moderatorID != ""},
		Action:         action,
		PreviousStatus: prevStatus,
		NewStatus:      job.Status,
		Reason:         sql.NullString{String: reason, Valid: reason != ""},
		Notes:          sql.NullString{String: notes, Valid: notes != ""},
		CreatedAt:      now,
	}
}
