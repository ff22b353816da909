package handler

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jobdeck/admin-be/internal/api/dto"
	"github.com/jobdeck/admin-be/internal/api/model"
	"github.com/jobdeck/admin-be/internal/api/storage"
)

// exportPageSize is the batch size used when walking the listing for a
// CSV export.
const exportPageSize = 500

// exportMaxRows caps one export file.
const exportMaxRows = 10000

// ExportHandler handles admin data export HTTP requests
type ExportHandler struct {
	logger  *slog.Logger
	storage *storage.Storage
}

// NewExportHandler creates a new ExportHandler instance
func NewExportHandler(deps *Dependencies) *ExportHandler {
	return &ExportHandler{
		logger:  deps.Logger,
		storage: deps.Storage,
	}
}

// ExportJobsCSV handles GET /api/v1/admin/export/jobs.csv
// Streams the filtered listing as CSV using the same filters as ListJobs.
func (h *ExportHandler) ExportJobsCSV(c *gin.Context) {
	var req dto.ListJobsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
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
		PageSize:     exportPageSize,
	}

	filename := fmt.Sprintf("jobs-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	w := csv.NewWriter(c.Writer)
	header := []string{
		"job_id", "title", "company_name", "recruiter_name", "location",
		"contract_type", "sector", "status", "submitted_at", "published_at",
		"expires_at", "validity_days", "renewal_count", "is_urgent", "is_featured",
	}
	if err := w.Write(header); err != nil {
		h.logger.Error("Failed to write CSV header", slog.String("error", err.Error()))
		return
	}

	written := 0
	for written < exportMaxRows {
		jobs, err := h.storage.ListJobs(c.Request.Context(), filter)
		if err != nil {
			// The header is already out, so abort the stream instead of
			// switching to a JSON error body.
			h.logger.Error("Failed to export jobs", slog.String("error", err.Error()))
			return
		}

		hasMore := len(jobs) > filter.PageSize
		if hasMore {
			jobs = jobs[:filter.PageSize]
		}

		for i := range jobs {
			if err := w.Write(jobCSVRow(&jobs[i])); err != nil {
				h.logger.Error("Failed to write CSV row", slog.String("error", err.Error()))
				return
			}
			written++
		}

		if !hasMore || len(jobs) == 0 {
			break
		}
		last := jobs[len(jobs)-1]
		filter.Cursor = &storage.JobCursor{
			SubmittedAt: last.SubmittedAt,
			JobID:       last.JobID,
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		h.logger.Error("CSV flush failed", slog.String("error", err.Error()))
		return
	}

	h.logger.Info("Jobs exported",
		slog.Int("rows", written),
		slog.String("status_filter", req.Status),
	)
}

func jobCSVRow(job *model.Job) []string {
	publishedAt := ""
	if job.PublishedAt.Valid {
		publishedAt = job.PublishedAt.Time.Format(time.RFC3339)
	}
	expiresAt := ""
	if job.ExpiresAt.Valid {
		expiresAt = job.ExpiresAt.Time.Format(time.RFC3339)
	}
	validityDays := ""
	if job.ValidityDays.Valid {
		validityDays = strconv.FormatInt(job.ValidityDays.Int64, 10)
	}

	return []string{
		job.JobID,
		job.Title,
		job.CompanyName,
		job.RecruiterName,
		job.Location,
		job.ContractType,
		job.Sector,
		job.Status,
		job.SubmittedAt.Format(time.RFC3339),
		publishedAt,
		expiresAt,
		validityDays,
		strconv.Itoa(job.RenewalCount),
		strconv.FormatBool(job.IsUrgent),
		strconv.FormatBool(job.IsFeatured),
	}
}

// ExportModerationStats handles GET /api/v1/admin/export/moderation-stats.txt
// Plain-text snapshot of the moderation dashboard aggregates.
func (h *ExportHandler) ExportModerationStats(c *gin.Context) {
	now := time.Now()
	stats, err := h.storage.ModerationStats(c.Request.Context(), now)
	if err != nil {
		h.logger.Error("Failed to compute moderation stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to compute moderation stats",
		})
		return
	}

	filename := fmt.Sprintf("moderation-stats-%s.txt", now.Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	body := fmt.Sprintf(
		"Moderation snapshot %s\n\npending: %d\npublished: %d\nrejected: %d\nclosed: %d\nexpiring within 7 days: %d\nexpiring within 3 days: %d\naverage moderation time: %.1fh\nmoderated today: %d\n",
		now.Format(time.RFC3339),
		stats.PendingCount,
		stats.PublishedCount,
		stats.RejectedCount,
		stats.ClosedCount,
		stats.ExpiringSoonCount,
		stats.ExpiringUrgent,
		stats.AvgModerationHours,
		stats.ModeratedToday,
	)

	c.String(http.StatusOK, body)
}
