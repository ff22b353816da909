package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jobdeck/admin-be/internal/api/domain"
	"github.com/jobdeck/admin-be/internal/api/dto"
	"github.com/jobdeck/admin-be/internal/api/moderation"
	"github.com/jobdeck/admin-be/internal/api/storage"
)

// JobHandler handles job moderation HTTP requests
type JobHandler struct {
	logger     *slog.Logger
	storage    *storage.Storage
	moderation *moderation.Service
}

// NewJobHandler creates a new JobHandler instance
func NewJobHandler(deps *Dependencies) *JobHandler {
	return &JobHandler{
		logger:     deps.Logger,
		storage:    deps.Storage,
		moderation: deps.Moderation,
	}
}

// ListJobs handles GET /api/v1/admin/jobs
// Lists postings with filtering, search and keyset pagination
func (h *JobHandler) ListJobs(c *gin.Context) {
	var req dto.ListJobsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.logger.Error("Invalid query parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	if req.PageSize <= 0 {
		req.PageSize = 20
	}
	if req.PageSize > 100 {
		req.PageSize = 100
	}

	cursor, err := DecodeJobCursor(req.Cursor)
	if err != nil {
		h.logger.Error("Invalid cursor", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid cursor",
		})
		return
	}

	filter := storage.JobFilter{
		Status:       req.Status,
		Sector:       req.Sector,
		ContractType: req.ContractType,
		Location:     req.Location,
		Badge:        req.Badge,
		Query:        req.Query,
		PageSize:     req.PageSize,
		Cursor:       cursor,
	}

	jobs, err := h.storage.ListJobs(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("Failed to list jobs", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list jobs",
		})
		return
	}

	hasMore := len(jobs) > req.PageSize
	if hasMore {
		jobs = jobs[:req.PageSize]
	}

	jobResponse := make([]dto.JobDTO, len(jobs))
	for i := range jobs {
		jobResponse[i] = dto.FromJob(&jobs[i])
	}

	var nextCursor string
	if hasMore {
		last := jobs[len(jobs)-1]
		nextCursor = EncodeJobCursor(&storage.JobCursor{
			SubmittedAt: last.SubmittedAt,
			JobID:       last.JobID,
		})
	}

	c.JSON(http.StatusOK, dto.ListJobsResponse{
		Jobs:       jobResponse,
		NextCursor: nextCursor,
	})
}

// GetJob handles GET /api/v1/admin/jobs/:job_id
func (h *JobHandler) GetJob(c *gin.Context) {
	jobID := c.Param("job_id")
	if _, err := uuid.Parse(jobID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "job_id must be a valid UUID",
		})
		return
	}

	job, err := h.storage.GetJob(c.Request.Context(), jobID)
	if err != nil {
		respondDomainError(c, h.logger, err, "Failed to get job")
		return
	}

	c.JSON(http.StatusOK, dto.FromJob(job))
}

// ListHistory handles GET /api/v1/admin/jobs/:job_id/history
// Returns the moderation audit trail for one posting, newest first
func (h *JobHandler) ListHistory(c *gin.Context) {
	jobID := c.Param("job_id")
	if _, err := uuid.Parse(jobID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "job_id must be a valid UUID",
		})
		return
	}

	entries, err := h.storage.ListHistory(c.Request.Context(), jobID)
	if err != nil {
		h.logger.Error("Failed to list moderation history",
			slog.String("job_id", jobID),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list moderation history",
		})
		return
	}

	history := make([]dto.HistoryEntryDTO, len(entries))
	for i := range entries {
		history[i] = dto.FromHistory(&entries[i])
	}

	c.JSON(http.StatusOK, gin.H{"history": history})
}

// ModerationStats handles GET /api/v1/admin/jobs/stats
func (h *JobHandler) ModerationStats(c *gin.Context) {
	stats, err := h.storage.ModerationStats(c.Request.Context(), time.Now())
	if err != nil {
		h.logger.Error("Failed to compute moderation stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to compute moderation stats",
		})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// BadgeStats handles GET /api/v1/admin/jobs/badge-stats
func (h *JobHandler) BadgeStats(c *gin.Context) {
	stats, err := h.storage.BadgeStats(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to compute badge stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to compute badge stats",
		})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// ApprovalPreview handles GET /api/v1/admin/jobs/approval-preview
// Returns the expiry date an approval issued right now would produce.
func (h *JobHandler) ApprovalPreview(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("validity_days", "30"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "validity_days must be an integer",
		})
		return
	}

	visibleUntil, err := h.moderation.PreviewExpiry(days)
	if err != nil {
		respondDomainError(c, h.logger, err, "Failed to preview approval")
		return
	}

	c.JSON(http.StatusOK, dto.ApprovalPreviewResponse{
		ValidityDays: days,
		VisibleUntil: visibleUntil.Format(time.RFC3339),
		Presets:      domain.ValidityPresets,
	})
}

// ApproveJob handles POST /api/v1/admin/jobs/:job_id/approve
func (h *JobHandler) ApproveJob(c *gin.Context) {
	jobID := c.Param("job_id")
	if _, err := uuid.Parse(jobID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "job_id must be a valid UUID",
		})
		return
	}

	var req dto.ApproveJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	job, err := h.moderation.Approve(c.Request.Context(), jobID, adminID(c), moderation.ApprovalOptions{
		ValidityDays: req.ValidityDays,
		IsUrgent:     req.IsUrgent,
		IsFeatured:   req.IsFeatured,
		Notes:        req.Notes,
	})
	if err != nil {
		respondDomainError(c, h.logger, err, "Failed to approve job")
		return
	}

	c.JSON(http.StatusOK, dto.FromJob(job))
}

// RejectJob handles POST /api/v1/admin/jobs/:job_id/reject
func (h *JobHandler) RejectJob(c *gin.Context) {
	jobID := c.Param("job_id")
	if _, err := uuid.Parse(jobID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "job_id must be a valid UUID",
		})
		return
	}

	var req dto.RejectJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	job, err := h.moderation.Reject(c.Request.Context(), jobID, adminID(c), req.Reason, req.Notes)
	if err != nil {
		respondDomainError(c, h.logger, err, "Failed to reject job")
		return
	}

	c.JSON(http.StatusOK, dto.FromJob(job))
}

// RepublishJob handles POST /api/v1/admin/jobs/:job_id/republish
func (h *JobHandler) RepublishJob(c *gin.Context) {
	jobID := c.Param("job_id")
	if _, err := uuid.Parse(jobID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "job_id must be a valid UUID",
		})
		return
	}

	var req dto.RepublishJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	job, err := h.moderation.Republish(c.Request.Context(), jobID, adminID(c), moderation.RepublishOptions{
		ValidityDays: req.ValidityDays,
		Notes:        req.Notes,
	})
	if err != nil {
		respondDomainError(c, h.logger, err, "Failed to republish job")
		return
	}

	c.JSON(http.StatusOK, dto.FromJob(job))
}

// UpdateBadges handles PUT /api/v1/admin/jobs/:job_id/badges
func (h *JobHandler) UpdateBadges(c *gin.Context) {
	jobID := c.Param("job_id")
	if _, err := uuid.Parse(jobID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "job_id must be a valid UUID",
		})
		return
	}

	var req dto.UpdateBadgesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	job, err := h.moderation.UpdateBadges(c.Request.Context(), jobID, adminID(c), moderation.BadgeOptions{
		IsUrgent:   req.IsUrgent,
		IsFeatured: req.IsFeatured,
		Notes:      req.Notes,
	})
	if err != nil {
		respondDomainError(c, h.logger, err, "Failed to update badges")
		return
	}

	c.JSON(http.StatusOK, dto.FromJob(job))
}

// BulkApprove handles POST /api/v1/admin/jobs/bulk-approve
// Approves each selected posting with the default validity window. Items
// that cannot be approved are reported, not rolled back.
func (h *JobHandler) BulkApprove(c *gin.Context) {
	var req dto.BulkApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	result := h.moderation.BulkApprove(c.Request.Context(), req.JobIDs, adminID(c))

	h.logger.Info("Bulk approval finished",
		slog.Int("approved", result.Approved),
		slog.Int("errors", result.Errors),
	)

	c.JSON(http.StatusOK, result)
}
