package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func dp(s string) *decimal.Decimal {
	v := d(s)
	return &v
}

func TestResolveTotalHours(t *testing.T) {
	t.Run("manual hours beat aggregation", func(t *testing.T) {
		hours, manual := ResolveTotalHours(dp("5"), d("10"))
		assert.True(t, hours.Equal(d("5")), "hours = %s", hours)
		assert.True(t, manual)
	})

	t.Run("manual zero still wins", func(t *testing.T) {
		hours, manual := ResolveTotalHours(dp("0"), d("42"))
		assert.True(t, hours.IsZero())
		assert.True(t, manual)
	})

	t.Run("no manual falls back to aggregation", func(t *testing.T) {
		hours, manual := ResolveTotalHours(nil, d("12.5"))
		assert.True(t, hours.Equal(d("12.5")), "hours = %s", hours)
		assert.False(t, manual)
	})
}

func TestResolveHourlyRate(t *testing.T) {
	tests := []struct {
		name     string
		override *decimal.Decimal
		stored   string
		want     string
	}{
		{"override beats stored", dp("250"), "200", "250"},
		{"override zero still wins", dp("0"), "200", "0"},
		{"stored default when no override", nil, "200", "200"},
		{"zero when neither set", nil, "0", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate := ResolveHourlyRate(tt.override, d(tt.stored))
			assert.True(t, rate.Equal(d(tt.want)), "rate = %s, want %s", rate, tt.want)
		})
	}
}

func TestHoursAmount(t *testing.T) {
	tests := []struct {
		hours string
		rate  string
		want  string
	}{
		{"10", "200", "2000"},
		{"5", "200", "1000"},
		{"0", "200", "0"},
		{"7.5", "333.33", "2499.98"}, // 2499.975 dibulatkan 2 desimal
		{"1.25", "99.99", "124.99"},
	}
	for _, tt := range tests {
		t.Run(tt.hours+"x"+tt.rate, func(t *testing.T) {
			amount := HoursAmount(d(tt.hours), d(tt.rate))
			assert.True(t, amount.Equal(d(tt.want)), "amount = %s, want %s", amount, tt.want)
		})
	}
}
