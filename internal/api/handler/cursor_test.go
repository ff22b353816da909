package handler

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/jobdeck/admin-be/internal/api/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobCursorRoundTrip(t *testing.T) {
	submitted := time.Date(2026, 3, 14, 9, 26, 53, 589793238, time.UTC)
	in := &storage.JobCursor{
		SubmittedAt: submitted,
		JobID:       "a3f1c8e2-0b6d-4c41-9f7a-2d5e8b901c34",
	}

	encoded := EncodeJobCursor(in)

	out, err := DecodeJobCursor(encoded)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.True(t, out.SubmittedAt.Equal(in.SubmittedAt))
	assert.Equal(t, in.JobID, out.JobID)
}

func TestDecodeJobCursor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantNil bool
		wantErr bool
	}{
		{
			name:    "empty cursor means first page",
			input:   "",
			wantNil: true,
		},
		{
			name:    "not base64",
			input:   "%%%not-base64%%%",
			wantErr: true,
		},
		{
			name:    "missing separator",
			input:   base64.StdEncoding.EncodeToString([]byte("1234567890")),
			wantErr: true,
		},
		{
			name:    "non numeric timestamp",
			input:   base64.StdEncoding.EncodeToString([]byte("abc|job-1")),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cursor, err := DecodeJobCursor(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, cursor)
			}
		})
	}
}
