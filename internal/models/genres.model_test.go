package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenreListScan(t *testing.T) {
	testCases := []struct {
		name     string
		input    any
		expected GenreList
	}{
		{
			name:     "plain comma-joined string",
			input:    "Jazz,Reggae,Swing",
			expected: GenreList{"Jazz", "Reggae", "Swing"},
		},
		{
			name:     "legacy brace-wrapped value",
			input:    "{Rock n Roll,Classical}",
			expected: GenreList{"Rock n Roll", "Classical"},
		},
		{
			name:     "byte slice from the driver",
			input:    []byte("Hip-Hop,R&B"),
			expected: GenreList{"Hip-Hop", "R&B"},
		},
		{
			name:     "whitespace around entries",
			input:    "Jazz, Classical , Folk",
			expected: GenreList{"Jazz", "Classical", "Folk"},
		},
		{
			name:     "single genre",
			input:    "Jazz",
			expected: GenreList{"Jazz"},
		},
		{
			name:     "empty string",
			input:    "",
			expected: nil,
		},
		{
			name:     "empty braces",
			input:    "{}",
			expected: nil,
		},
		{
			name:     "null column",
			input:    nil,
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var genres GenreList
			err := genres.Scan(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, genres)
		})
	}
}

func TestGenreListScanUnsupportedType(t *testing.T) {
	var genres GenreList
	err := genres.Scan(42)
	assert.Error(t, err)
}

func TestGenreListValue(t *testing.T) {
	testCases := []struct {
		name     string
		genres   GenreList
		expected string
	}{
		{
			name:     "multiple genres join with commas",
			genres:   GenreList{"Jazz", "Reggae", "Swing"},
			expected: "Jazz,Reggae,Swing",
		},
		{
			name:     "single genre",
			genres:   GenreList{"Folk"},
			expected: "Folk",
		},
		{
			name:     "empty list stores empty string",
			genres:   GenreList{},
			expected: "",
		},
		{
			name:     "nil list stores empty string",
			genres:   nil,
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			value, err := tc.genres.Value()
			require.NoError(t, err)
			assert.Equal(t, tc.expected, value)
		})
	}
}
