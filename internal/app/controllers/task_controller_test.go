package controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClientTime(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2026-05-20T14:30:00Z", time.Date(2026, 5, 20, 14, 30, 0, 0, time.UTC)},
		{"2026-05-20 14:30:00", time.Date(2026, 5, 20, 14, 30, 0, 0, time.UTC)},
		{"2026-05-20 14:30", time.Date(2026, 5, 20, 14, 30, 0, 0, time.UTC)},
		{"2026-05-20", time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		got, err := parseClientTime(tt.input)
		require.NoError(t, err, tt.input)
		assert.True(t, tt.want.Equal(got), "%s parsed to %v", tt.input, got)
	}
}

func TestParseClientTimeRejectsUnknownLayouts(t *testing.T) {
	for _, input := range []string{"", "20/05/2026", "May 20, 2026", "14:30"} {
		_, err := parseClientTime(input)
		assert.Error(t, err, input)
	}
}
