package helper

import (
	"strings"

	"github.com/shopspring/decimal"
)

var onesWords = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tensWords = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

func twoDigits(n int64) string {
	if n < 20 {
		return onesWords[n]
	}
	w := tensWords[n/10]
	if n%10 != 0 {
		w += " " + onesWords[n%10]
	}
	return w
}

func threeDigits(n int64) string {
	var parts []string
	if n >= 100 {
		parts = append(parts, onesWords[n/100]+" Hundred")
		n %= 100
	}
	if n > 0 {
		parts = append(parts, twoDigits(n))
	}
	return strings.Join(parts, " ")
}

// numberToIndianWords: penulisan angka gaya India (ribuan, lakh, crore).
func numberToIndianWords(n int64) string {
	if n == 0 {
		return "Zero"
	}
	var parts []string
	if n >= 1_00_00_000 {
		parts = append(parts, numberToIndianWords(n/1_00_00_000)+" Crore")
		n %= 1_00_00_000
	}
	if n >= 1_00_000 {
		parts = append(parts, twoDigits(n/1_00_000)+" Lakh")
		n %= 1_00_000
	}
	if n >= 1_000 {
		parts = append(parts, twoDigits(n/1_000)+" Thousand")
		n %= 1_000
	}
	if n > 0 {
		parts = append(parts, threeDigits(n))
	}
	return strings.Join(parts, " ")
}

// AmountInWords mengubah nominal rupee jadi kata-kata untuk kuitansi,
// mis. 118 → "Rupees One Hundred Eighteen Only",
// 1234.50 → "Rupees One Thousand Two Hundred Thirty Four and Fifty Paise Only".
func AmountInWords(amount decimal.Decimal) string {
	amount = amount.Round(2)
	rupees := amount.IntPart()
	paise := amount.Sub(decimal.NewFromInt(rupees)).Mul(decimal.NewFromInt(100)).IntPart()

	out := "Rupees " + numberToIndianWords(rupees)
	if paise > 0 {
		out += " and " + twoDigits(paise) + " Paise"
	}
	return out + " Only"
}
