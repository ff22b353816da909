package worker

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jobdeck/admin-be/internal/worker/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderNotification(t *testing.T) {
	expires := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		event      domain.ModerationEvent
		wantTitle  string
		wantInBody string
		wantErr    error
	}{
		{
			name: "approved",
			event: domain.ModerationEvent{
				Kind:      domain.EventJobApproved,
				JobTitle:  "Data Engineer",
				ExpiresAt: expires,
			},
			wantTitle:  "Your job posting is live",
			wantInBody: "15 September 2026",
		},
		{
			name: "rejected includes reason",
			event: domain.ModerationEvent{
				Kind:     domain.EventJobRejected,
				JobTitle: "Data Engineer",
				Reason:   "salary range missing",
			},
			wantTitle:  "Your job posting was rejected",
			wantInBody: "salary range missing",
		},
		{
			name: "republished",
			event: domain.ModerationEvent{
				Kind:      domain.EventJobRepublished,
				JobTitle:  "Data Engineer",
				ExpiresAt: expires,
			},
			wantTitle: "Your job posting is live again",
		},
		{
			name: "badges updated",
			event: domain.ModerationEvent{
				Kind:     domain.EventJobBadgesUpdated,
				JobTitle: "Data Engineer",
			},
			wantTitle: "Your job posting badges changed",
		},
		{
			name: "expired",
			event: domain.ModerationEvent{
				Kind:      domain.EventJobExpired,
				JobTitle:  "Data Engineer",
				ExpiresAt: expires,
			},
			wantTitle:  "Your job posting has expired",
			wantInBody: "15 September 2026",
		},
		{
			name:    "unknown kind",
			event:   domain.ModerationEvent{Kind: "job.vanished"},
			wantErr: domain.ErrUnknownEventKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, body, err := renderNotification(tt.event)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTitle, title)
			if tt.wantInBody != "" {
				assert.Contains(t, body, tt.wantInBody)
			}
		})
	}
}

func TestShouldRequeueEvent(t *testing.T) {
	w := &Worker{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"unknown kind never requeues", domain.ErrUnknownEventKind, false},
		{"missing recruiter never requeues", domain.ErrMissingRecruiter, false},
		{"wrapped unknown kind never requeues", errors.Join(errors.New("ctx"), domain.ErrUnknownEventKind), false},
		{"retryable error requeues", domain.NewRetryableError(errors.New("db timeout")), true},
		{"plain error does not requeue", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.shouldRequeueEvent(tt.err))
		})
	}
}

func TestNotificationTimestamp(t *testing.T) {
	occurred := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, occurred, notificationTimestamp(domain.ModerationEvent{OccurredAt: occurred}))

	fallback := notificationTimestamp(domain.ModerationEvent{})
	assert.WithinDuration(t, time.Now(), fallback, time.Minute)
}
