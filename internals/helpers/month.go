package helper

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseMonth memvalidasi string "YYYY-MM" dan mengembalikan tahun + bulan.
func ParseMonth(s string) (int, int, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("Invalid month format. Use YYYY-MM.")
	}
	year, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || month < 1 || month > 12 || year < 1 {
		return 0, 0, fmt.Errorf("Invalid month format. Use YYYY-MM.")
	}
	return year, month, nil
}

// MonthDateRange: rentang inklusif satu bulan kalender (awal hari 1 s/d 23:59:59 hari terakhir).
func MonthDateRange(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	return start, end
}

// MonthString format kanonik "YYYY-MM".
func MonthString(year, month int) string {
	return fmt.Sprintf("%d-%02d", year, month)
}

// MonthsLabel: label durasi untuk dokumen cetak ("1 Month", "6 Months").
func MonthsLabel(n int) string {
	if n == 1 {
		return "1 Month"
	}
	return fmt.Sprintf("%d Months", n)
}
