package storage

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildListJobsQuery(t *testing.T) {
	tests := []struct {
		name        string
		filter      JobFilter
		wantClauses []string
		wantArgs    []interface{}
	}{
		{
			name:        "no filters",
			filter:      JobFilter{PageSize: 20},
			wantClauses: []string{"LIMIT $1"},
			wantArgs:    []interface{}{21},
		},
		{
			name:   "status only",
			filter: JobFilter{Status: "pending", PageSize: 20},
			wantClauses: []string{
				"AND j.status = $1",
				"LIMIT $2",
			},
			wantArgs: []interface{}{"pending", 21},
		},
		{
			name:   "sector only",
			filter: JobFilter{Sector: "tech", PageSize: 20},
			wantClauses: []string{
				"AND j.sector = $1",
				"LIMIT $2",
			},
			wantArgs: []interface{}{"tech", 21},
		},
		{
			name:   "search only",
			filter: JobFilter{Query: "engineer", PageSize: 20},
			wantClauses: []string{
				"AND (j.title ILIKE $1 OR j.company_name ILIKE $1 OR j.location ILIKE $1 OR COALESCE(p.full_name, '') ILIKE $1)",
				"LIMIT $2",
			},
			wantArgs: []interface{}{"%engineer%", 21},
		},
		{
			name:   "search with categorical filters",
			filter: JobFilter{Status: "published", Sector: "tech", Query: "engineer", PageSize: 20},
			wantClauses: []string{
				"AND j.status = $1",
				"AND j.sector = $2",
				"AND (j.title ILIKE $3 OR j.company_name ILIKE $3 OR j.location ILIKE $3 OR COALESCE(p.full_name, '') ILIKE $3)",
				"LIMIT $4",
			},
			wantArgs: []interface{}{"published", "tech", "%engineer%", 21},
		},
		{
			name:   "contract type and location",
			filter: JobFilter{ContractType: "full_time", Location: "Lyon", PageSize: 50},
			wantClauses: []string{
				"AND j.contract_type = $1",
				"AND j.location ILIKE $2",
				"LIMIT $3",
			},
			wantArgs: []interface{}{"full_time", "%Lyon%", 51},
		},
		{
			name:        "urgent badge",
			filter:      JobFilter{Badge: BadgeFilterUrgent, PageSize: 20},
			wantClauses: []string{"AND j.is_urgent AND NOT j.is_featured"},
			wantArgs:    []interface{}{21},
		},
		{
			name:        "featured badge",
			filter:      JobFilter{Badge: BadgeFilterFeatured, PageSize: 20},
			wantClauses: []string{"AND j.is_featured AND NOT j.is_urgent"},
			wantArgs:    []interface{}{21},
		},
		{
			name:        "both badges",
			filter:      JobFilter{Badge: BadgeFilterBoth, PageSize: 20},
			wantClauses: []string{"AND j.is_urgent AND j.is_featured"},
			wantArgs:    []interface{}{21},
		},
		{
			name: "cursor adds keyset condition",
			filter: JobFilter{
				PageSize: 20,
				Cursor: &JobCursor{
					SubmittedAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
					JobID:       "job-42",
				},
			},
			wantClauses: []string{
				"AND (j.submitted_at, j.job_id) < ($1, $2)",
				"LIMIT $3",
			},
			wantArgs: []interface{}{time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC), "job-42", 21},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := buildListJobsQuery(tt.filter)

			for _, clause := range tt.wantClauses {
				assert.Contains(t, query, clause)
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBuildListJobsQueryShape(t *testing.T) {
	query, args := buildListJobsQuery(JobFilter{Status: "pending", Query: "dev", PageSize: 10})

	// Keyset ordering, then the limit, in that order at the tail.
	orderIdx := strings.Index(query, "ORDER BY j.submitted_at DESC, j.job_id DESC")
	limitIdx := strings.Index(query, "LIMIT")
	require.Greater(t, orderIdx, 0)
	require.Greater(t, limitIdx, orderIdx)

	// One extra row beyond the page so the caller can detect more results.
	assert.Equal(t, 11, args[len(args)-1])
}

func TestBuildListJobsQueryFiltersCommute(t *testing.T) {
	// Search narrowed by a categorical filter must select the same rows
	// as the categorical filter narrowed by search. Both land in one
	// WHERE conjunction, so each single-filter predicate must reappear
	// verbatim (modulo placeholder numbering) in the combined query.
	sectorOnly, _ := buildListJobsQuery(JobFilter{Sector: "tech", PageSize: 20})
	searchOnly, _ := buildListJobsQuery(JobFilter{Query: "dev", PageSize: 20})
	combined, combinedArgs := buildListJobsQuery(JobFilter{Sector: "tech", Query: "dev", PageSize: 20})

	sectorClause := "AND j.sector = $"
	searchClause := "OR COALESCE(p.full_name, '') ILIKE $"
	assert.Contains(t, sectorOnly, sectorClause)
	assert.Contains(t, searchOnly, searchClause)
	assert.Contains(t, combined, sectorClause)
	assert.Contains(t, combined, searchClause)

	// Placeholders stay aligned with the arg list when both are present.
	assert.Equal(t, []interface{}{"tech", "%dev%", 21}, combinedArgs)
}
