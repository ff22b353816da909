package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/jobdeck/admin-be/internal/api/domain"
	"github.com/jobdeck/admin-be/internal/api/model"
)

// Badge filter values accepted by ListJobs.
const (
	BadgeFilterUrgent   = "urgent"
	BadgeFilterFeatured = "featured"
	BadgeFilterBoth     = "both"
)

// JobFilter narrows the moderation job listing. All predicates are applied
// at the query boundary; an empty field means "no filter".
type JobFilter struct {
	Status       string
	Sector       string
	ContractType string
	Location     string
	Badge        string
	Query        string
	PageSize     int
	Cursor       *JobCursor
}

// JobCursor is a keyset pagination position: the listing is ordered by
// (submitted_at DESC, job_id DESC) and the cursor points past the last
// returned row.
type JobCursor struct {
	SubmittedAt time.Time
	JobID       string
}

const jobColumns = `
	j.job_id, j.title, j.description, j.location, j.contract_type, j.sector,
	j.salary_range, j.company_name, j.category, j.position_count,
	j.experience_level, j.education_level, j.user_id, j.status,
	j.submitted_at, j.published_at, j.expires_at, j.validity_days,
	j.renewal_count, j.is_urgent, j.is_featured, j.rejection_reason,
	j.moderation_notes, j.moderated_by, j.moderated_at,
	COALESCE(p.full_name, '') AS recruiter_name
`

// GetJob loads a single job with its recruiter name joined in.
func (s *Storage) GetJob(ctx context.Context, jobID string) (*model.Job, error) {
	query := `
		SELECT ` + jobColumns + `
		FROM jobs j
		LEFT JOIN profiles p ON p.user_id = j.user_id
		WHERE j.job_id = $1
	`

	var job model.Job
	if err := s.db.GetContext(ctx, &job, query, jobID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	return &job, nil
}

// ListJobs returns jobs matching the filter, keyset paginated. One extra
// row beyond PageSize is fetched so the caller can detect more results.
func (s *Storage) ListJobs(ctx context.Context, filter JobFilter) ([]model.Job, error) {
	query, args := buildListJobsQuery(filter)

	var jobs []model.Job
	if err := s.db.SelectContext(ctx, &jobs, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	return jobs, nil
}

// buildListJobsQuery assembles the listing SQL. Every predicate lands in
// one WHERE conjunction, so filters combine the same way no matter which
// are set.
func buildListJobsQuery(filter JobFilter) (string, []interface{}) {
	query := `
		SELECT ` + jobColumns + `
		FROM jobs j
		LEFT JOIN profiles p ON p.user_id = j.user_id
		WHERE 1=1
	`
	args := []interface{}{}
	argIdx := 1

	if filter.Status != "" {
		query += fmt.Sprintf(" AND j.status = $%d", argIdx)
		args = append(args, filter.Status)
		argIdx++
	}

	if filter.Sector != "" {
		query += fmt.Sprintf(" AND j.sector = $%d", argIdx)
		args = append(args, filter.Sector)
		argIdx++
	}

	if filter.ContractType != "" {
		query += fmt.Sprintf(" AND j.contract_type = $%d", argIdx)
		args = append(args, filter.ContractType)
		argIdx++
	}

	if filter.Location != "" {
		query += fmt.Sprintf(" AND j.location ILIKE $%d", argIdx)
		args = append(args, "%"+filter.Location+"%")
		argIdx++
	}

	switch filter.Badge {
	case BadgeFilterUrgent:
		query += " AND j.is_urgent AND NOT j.is_featured"
	case BadgeFilterFeatured:
		query += " AND j.is_featured AND NOT j.is_urgent"
	case BadgeFilterBoth:
		query += " AND j.is_urgent AND j.is_featured"
	}

	if filter.Query != "" {
		// Case-insensitive substring match over title, company,
		// recruiter name and location.
		query += fmt.Sprintf(
			" AND (j.title ILIKE $%d OR j.company_name ILIKE $%d OR j.location ILIKE $%d OR COALESCE(p.full_name, '') ILIKE $%d)",
			argIdx, argIdx, argIdx, argIdx,
		)
		args = append(args, "%"+filter.Query+"%")
		argIdx++
	}

	if filter.Cursor != nil {
		query += fmt.Sprintf(" AND (j.submitted_at, j.job_id) < ($%d, $%d)", argIdx, argIdx+1)
		args = append(args, filter.Cursor.SubmittedAt, filter.Cursor.JobID)
		argIdx += 2
	}

	query += " ORDER BY j.submitted_at DESC, j.job_id DESC"
	query += fmt.Sprintf(" LIMIT $%d", argIdx)
	args = append(args, filter.PageSize+1)

	return query, args
}

// ApplyModeration persists a moderated job together with its history
// entry in one transaction. History is insert-only.
func (s *Storage) ApplyModeration(ctx context.Context, job *model.Job, entry *model.ModerationHistory) error {
	return s.inTx(ctx, func(tx *sqlx.Tx) error {
		if err := updateJobModeration(ctx, tx, job); err != nil {
			return err
		}
		return insertHistory(ctx, tx, entry)
	})
}

func updateJobModeration(ctx context.Context, tx *sqlx.Tx, job *model.Job) error {
	query := `
		UPDATE jobs
		SET status = :status,
		    published_at = :published_at,
		    expires_at = :expires_at,
		    validity_days = :validity_days,
		    renewal_count = :renewal_count,
		    is_urgent = :is_urgent,
		    is_featured = :is_featured,
		    rejection_reason = :rejection_reason,
		    moderation_notes = :moderation_notes,
		    moderated_by = :moderated_by,
		    moderated_at = :moderated_at
		WHERE job_id = :job_id
	`

	res, err := tx.NamedExecContext(ctx, query, job)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

func insertHistory(ctx context.Context, tx *sqlx.Tx, entry *model.ModerationHistory) error {
	query := `
		INSERT INTO job_moderation_history (
			entry_id, job_id, moderator_id, action,
			previous_status, new_status, reason, notes, created_at
		) VALUES (
			:entry_id, :job_id, :moderator_id, :action,
			:previous_status, :new_status, :reason, :notes, :created_at
		)
	`

	if _, err := tx.NamedExecContext(ctx, query, entry); err != nil {
		return fmt.Errorf("failed to insert moderation history: %w", err)
	}
	return nil
}

// ListHistory returns a job's moderation trail, newest first. Bounded by
// realistic history length, so no pagination.
func (s *Storage) ListHistory(ctx context.Context, jobID string) ([]model.ModerationHistory, error) {
	query := `
		SELECT h.entry_id, h.job_id, h.moderator_id, h.action,
		       h.previous_status, h.new_status, h.reason, h.notes, h.created_at,
		       COALESCE(p.full_name, 'system') AS moderator_name
		FROM job_moderation_history h
		LEFT JOIN profiles p ON p.user_id = h.moderator_id
		WHERE h.job_id = $1
		ORDER BY h.created_at DESC
	`

	var entries []model.ModerationHistory
	if err := s.db.SelectContext(ctx, &entries, query, jobID); err != nil {
		return nil, fmt.Errorf("failed to list moderation history: %w", err)
	}

	return entries, nil
}

// ModerationStats recomputes the dashboard aggregate on each call.
func (s *Storage) ModerationStats(ctx context.Context, now time.Time) (*model.ModerationStats, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'pending')   AS pending_count,
			COUNT(*) FILTER (WHERE status = 'published') AS published_count,
			COUNT(*) FILTER (WHERE status = 'rejected')  AS rejected_count,
			COUNT(*) FILTER (WHERE status = 'closed')    AS closed_count,
			COUNT(*) FILTER (WHERE status = 'published' AND expires_at <= $1::timestamptz + interval '7 days') AS expiring_soon_count,
			COUNT(*) FILTER (WHERE status = 'published' AND expires_at <= $1::timestamptz + interval '3 days') AS expiring_urgent_count,
			COALESCE(AVG(EXTRACT(EPOCH FROM (moderated_at - submitted_at)) / 3600.0)
				FILTER (WHERE moderated_at IS NOT NULL), 0) AS avg_moderation_hours,
			COUNT(*) FILTER (WHERE moderated_at >= date_trunc('day', $1::timestamptz)) AS moderated_today
		FROM jobs
	`

	var stats model.ModerationStats
	if err := s.db.GetContext(ctx, &stats, query, now); err != nil {
		return nil, fmt.Errorf("failed to compute moderation stats: %w", err)
	}

	return &stats, nil
}

// BadgeStats counts published postings per badge combination.
func (s *Storage) BadgeStats(ctx context.Context) (*model.BadgeStats, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE is_urgent AND NOT is_featured) AS urgent_count,
			COUNT(*) FILTER (WHERE is_featured AND NOT is_urgent) AS featured_count,
			COUNT(*) FILTER (WHERE is_urgent AND is_featured)     AS both_count,
			COUNT(*) AS total_published
		FROM jobs
		WHERE status = 'published'
	`

	var stats model.BadgeStats
	if err := s.db.GetContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("failed to compute badge stats: %w", err)
	}

	return &stats, nil
}
