package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatShowTime(t *testing.T) {
	start := time.Date(2026, 6, 15, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, "Mon 06, 15, 2026 8:00PM", FormatShowTime(start))
}

func TestParseShowTime(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{
			name:     "space-separated timestamp",
			input:    "2026-06-15 20:00:00",
			expected: time.Date(2026, 6, 15, 20, 0, 0, 0, time.UTC),
		},
		{
			name:     "minutes-only timestamp",
			input:    "2026-06-15 20:00",
			expected: time.Date(2026, 6, 15, 20, 0, 0, 0, time.UTC),
		},
		{
			name:     "html datetime-local value",
			input:    "2026-06-15T20:00",
			expected: time.Date(2026, 6, 15, 20, 0, 0, 0, time.UTC),
		},
		{
			name:     "rfc3339 timestamp",
			input:    "2026-06-15T20:00:00Z",
			expected: time.Date(2026, 6, 15, 20, 0, 0, 0, time.UTC),
		},
		{
			name:     "bare date",
			input:    "2026-06-15",
			expected: time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "surrounding whitespace is trimmed",
			input:    "  2026-06-15 20:00:00  ",
			expected: time.Date(2026, 6, 15, 20, 0, 0, 0, time.UTC),
		},
		{
			name:    "empty value",
			input:   "",
			wantErr: true,
		},
		{
			name:    "garbage value",
			input:   "next tuesday",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := ParseShowTime(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.expected.Equal(parsed))
		})
	}
}
