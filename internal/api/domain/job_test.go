package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateValidityDays(t *testing.T) {
	tests := []struct {
		name    string
		days    int
		wantErr bool
	}{
		{"minimum", 1, false},
		{"default", 30, false},
		{"maximum", 365, false},
		{"zero", 0, true},
		{"negative", -7, true},
		{"above maximum", 366, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateValidityDays(tt.days)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidValidity)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExpiryDate(t *testing.T) {
	published := time.Date(2026, 1, 31, 18, 30, 0, 0, time.UTC)

	// Calendar-day arithmetic, not 24h multiples: 31 Jan + 30 days lands
	// on 2 Mar regardless of February's length.
	assert.Equal(t, time.Date(2026, 3, 2, 18, 30, 0, 0, time.UTC), ExpiryDate(published, 30))
	assert.Equal(t, time.Date(2026, 2, 1, 18, 30, 0, 0, time.UTC), ExpiryDate(published, 1))
}

func TestIsValidStatus(t *testing.T) {
	for _, status := range []string{JobStatusPending, JobStatusPublished, JobStatusRejected, JobStatusClosed} {
		assert.True(t, IsValidStatus(status), status)
	}
	assert.False(t, IsValidStatus("archived"))
	assert.False(t, IsValidStatus("PENDING"))
}
