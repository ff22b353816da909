package storage

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceAccessNote(t *testing.T) {
	tests := []struct {
		name  string
		notes string
		want  sql.NullString
	}{
		{
			name:  "empty note stores NULL",
			notes: "",
			want:  sql.NullString{},
		},
		{
			name:  "note is kept verbatim",
			notes: "granted after support ticket #4812",
			want:  sql.NullString{String: "granted after support ticket #4812", Valid: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, serviceAccessNote(tt.notes))
		})
	}
}
