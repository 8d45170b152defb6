package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackExpiryDate(t *testing.T) {
	tests := []struct {
		name      string
		admission string
		months    int
		want      string
	}{
		{"six month course", "2026-01-15", 6, "2026-07-14"}, // 180 hari, bukan 6 bulan kalender
		{"one month course", "2026-01-01", 1, "2026-01-31"},
		{"twelve months crosses year", "2025-06-01", 12, "2026-05-27"},
		{"no admission date", "", 6, ""},
		{"zero duration", "2026-01-15", 0, ""},
		{"bad admission date", "15-01-2026", 6, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FallbackExpiryDate(tt.admission, tt.months))
		})
	}
}
