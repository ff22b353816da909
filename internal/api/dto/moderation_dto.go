package dto

import (
	"time"

	"github.com/jobdeck/admin-be/internal/api/model"
)

type ListJobsRequest struct {
	Status       string `form:"status"`
	Sector       string `form:"sector"`
	ContractType string `form:"contract_type"`
	Location     string `form:"location"`
	Badge        string `form:"badge"`
	Query        string `form:"q"`
	PageSize     int    `form:"page_size"`
	Cursor       string `form:"cursor"`
}

type ListJobsResponse struct {
	Jobs       []JobDTO `json:"jobs"`
	NextCursor string   `json:"next_cursor,omitempty"`
}

type JobDTO struct {
	JobID           string `json:"job_id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Location        string `json:"location"`
	ContractType    string `json:"contract_type"`
	Sector          string `json:"sector"`
	SalaryRange     string `json:"salary_range"`
	CompanyName     string `json:"company_name"`
	Category        string `json:"category"`
	PositionCount   int    `json:"position_count"`
	ExperienceLevel string `json:"experience_level"`
	EducationLevel  string `json:"education_level"`
	RecruiterID     string `json:"recruiter_id"`
	RecruiterName   string `json:"recruiter_name,omitempty"`
	Status          string `json:"status"`
	SubmittedAt     string `json:"submitted_at"`
	PublishedAt     string `json:"published_at,omitempty"`
	ExpiresAt       string `json:"expires_at,omitempty"`
	ValidityDays    int    `json:"validity_days,omitempty"`
	RenewalCount    int    `json:"renewal_count"`
	IsUrgent        bool   `json:"is_urgent"`
	IsFeatured      bool   `json:"is_featured"`
	RejectionReason string `json:"rejection_reason,omitempty"`
	ModerationNotes string `json:"moderation_notes,omitempty"`
	ModeratedBy     string `json:"moderated_by,omitempty"`
	ModeratedAt     string `json:"moderated_at,omitempty"`
}

// FromJob flattens a job row into its response shape.
func FromJob(job *model.Job) JobDTO {
	d := JobDTO{
		JobID:           job.JobID,
		Title:           job.Title,
		Description:     job.Description,
		Location:        job.Location,
		ContractType:    job.ContractType,
		Sector:          job.Sector,
		SalaryRange:     job.SalaryRange,
		CompanyName:     job.CompanyName,
		Category:        job.Category,
		PositionCount:   job.PositionCount,
		ExperienceLevel: job.ExperienceLevel,
		EducationLevel:  job.EducationLevel,
		RecruiterID:     job.UserID,
		RecruiterName:   job.RecruiterName,
		Status:          job.Status,
		SubmittedAt:     job.SubmittedAt.Format(time.RFC3339),
		RenewalCount:    job.RenewalCount,
		IsUrgent:        job.IsUrgent,
		IsFeatured:      job.IsFeatured,
	}

	if job.PublishedAt.Valid {
		d.PublishedAt = job.PublishedAt.Time.Format(time.RFC3339)
	}
	if job.ExpiresAt.Valid {
		d.ExpiresAt = job.ExpiresAt.Time.Format(time.RFC3339)
	}
	if job.ValidityDays.Valid {
		d.ValidityDays = int(job.ValidityDays.Int64)
	}
	if job.RejectionReason.Valid {
		d.RejectionReason = job.RejectionReason.String
	}
	if job.ModerationNotes.Valid {
		d.ModerationNotes = job.ModerationNotes.String
	}
	if job.ModeratedBy.Valid {
		d.ModeratedBy = job.ModeratedBy.String
	}
	if job.ModeratedAt.Valid {
		d.ModeratedAt = job.ModeratedAt.Time.Format(time.RFC3339)
	}

	return d
}

type ApproveJobRequest struct {
	ValidityDays int    `json:"validity_days" binding:"required"`
	IsUrgent     bool   `json:"is_urgent"`
	IsFeatured   bool   `json:"is_featured"`
	Notes        string `json:"notes"`
}

type RejectJobRequest struct {
	Reason string `json:"reason" binding:"required"`
	Notes  string `json:"notes"`
}

type RepublishJobRequest struct {
	ValidityDays int    `json:"validity_days" binding:"required"`
	Notes        string `json:"notes"`
}

type UpdateBadgesRequest struct {
	IsUrgent   bool   `json:"is_urgent"`
	IsFeatured bool   `json:"is_featured"`
	Notes      string `json:"notes"`
}

type BulkApproveRequest struct {
	JobIDs []string `json:"job_ids" binding:"required,min=1"`
}

type ApprovalPreviewResponse struct {
	ValidityDays int    `json:"validity_days"`
	VisibleUntil string `json:"visible_until"`
	Presets      []int  `json:"presets"`
}

type HistoryEntryDTO struct {
	EntryID        string `json:"entry_id"`
	JobID          string `json:"job_id"`
	ModeratorID    string `json:"moderator_id,omitempty"`
	ModeratorName  string `json:"moderator_name"`
	Action         string `json:"action"`
	PreviousStatus string `json:"previous_status"`
	NewStatus      string `json:"new_status"`
	Reason         string `json:"reason,omitempty"`
	Notes          string `json:"notes,omitempty"`
	CreatedAt      string `json:"created_at"`
}

// FromHistory flattens a moderation history row.
func FromHistory(entry *model.ModerationHistory) HistoryEntryDTO {
	d := HistoryEntryDTO{
		EntryID:        entry.EntryID,
		JobID:          entry.JobID,
		ModeratorName:  entry.ModeratorName,
		Action:         entry.Action,
		PreviousStatus: entry.PreviousStatus,
		NewStatus:      entry.NewStatus,
		CreatedAt:      entry.CreatedAt.Format(time.RFC3339),
	}

	if entry.ModeratorID.Valid {
		d.ModeratorID = entry.ModeratorID.String
	}
	if entry.Reason.Valid {
		d.Reason = entry.Reason.String
	}
	if entry.Notes.Valid {
		d.Notes = entry.Notes.String
	}

	return d
}
