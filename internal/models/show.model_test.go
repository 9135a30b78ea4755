package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShowIsUpcoming(t *testing.T) {
	now := time.Date(2026, 6, 15, 20, 0, 0, 0, time.UTC)

	testCases := []struct {
		name      string
		startTime time.Time
		upcoming  bool
	}{
		{
			name:      "future show is upcoming",
			startTime: now.Add(time.Hour),
			upcoming:  true,
		},
		{
			name:      "past show is not upcoming",
			startTime: now.Add(-time.Hour),
			upcoming:  false,
		},
		{
			name:      "show starting exactly now counts as upcoming",
			startTime: now,
			upcoming:  true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			show := Show{StartTime: tc.startTime}
			assert.Equal(t, tc.upcoming, show.IsUpcoming(now))
		})
	}
}
