package helper

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAmountInWords(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"0", "Rupees Zero Only"},
		{"7", "Rupees Seven Only"},
		{"18", "Rupees Eighteen Only"},
		{"42", "Rupees Forty Two Only"},
		{"100", "Rupees One Hundred Only"},
		{"118", "Rupees One Hundred Eighteen Only"},
		{"999", "Rupees Nine Hundred Ninety Nine Only"},
		{"1000", "Rupees One Thousand Only"},
		{"1234.50", "Rupees One Thousand Two Hundred Thirty Four and Fifty Paise Only"},
		{"100000", "Rupees One Lakh Only"},
		{"2550000", "Rupees Twenty Five Lakh Fifty Thousand Only"},
		{"10000000", "Rupees One Crore Only"},
		{"12345678", "Rupees One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight Only"},
		{"0.05", "Rupees Zero and Five Paise Only"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			v, err := decimal.NewFromString(tt.amount)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, AmountInWords(v))
		})
	}
}
