package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLastBusinessDay(t *testing.T) {
	// 2026-08-31 is a Monday; the preceding Friday is the 28th.
	monday := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{"monday goes back to friday", monday, monday.AddDate(0, 0, -3)},
		{"sunday goes back to friday", monday.AddDate(0, 0, -1), monday.AddDate(0, 0, -3)},
		{"saturday goes back to friday", monday.AddDate(0, 0, -2), monday.AddDate(0, 0, -3)},
		{"tuesday goes back to monday", monday.AddDate(0, 0, 1), monday},
		{"friday goes back to thursday", monday.AddDate(0, 0, 4), monday.AddDate(0, 0, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LastBusinessDay(tt.now))
		})
	}
}

func TestFormatReportDate(t *testing.T) {
	date := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "28-08-2026", FormatReportDate(date))
}
