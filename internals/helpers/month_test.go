package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonth(t *testing.T) {
	tests := []struct {
		in        string
		wantYear  int
		wantMonth int
		wantErr   bool
	}{
		{"2026-04", 2026, 4, false},
		{"2026-12", 2026, 12, false},
		{" 2026-01 ", 2026, 1, false},
		{"2026-13", 0, 0, true},
		{"2026-00", 0, 0, true},
		{"2026", 0, 0, true},
		{"04-2026-01", 0, 0, true},
		{"abcd-ef", 0, 0, true},
		{"", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			year, month, err := ParseMonth(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, "Invalid month format. Use YYYY-MM.", err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantYear, year)
			assert.Equal(t, tt.wantMonth, month)
		})
	}
}

func TestMonthDateRange(t *testing.T) {
	start, end := MonthDateRange(2026, 2)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 2, 28, 23, 59, 59, 0, time.UTC), end)

	// tahun kabisat
	start, end = MonthDateRange(2028, 2)
	assert.Equal(t, time.Date(2028, 2, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2028, 2, 29, 23, 59, 59, 0, time.UTC), end)

	// desember menyeberang tahun
	_, end = MonthDateRange(2026, 12)
	assert.Equal(t, time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC), end)
}

func TestMonthString(t *testing.T) {
	assert.Equal(t, "2026-04", MonthString(2026, 4))
	assert.Equal(t, "2026-11", MonthString(2026, 11))
}

func TestMonthsLabel(t *testing.T) {
	assert.Equal(t, "1 Month", MonthsLabel(1))
	assert.Equal(t, "6 Months", MonthsLabel(6))
}
