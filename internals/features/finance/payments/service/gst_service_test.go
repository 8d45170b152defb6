package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestCalcGST(t *testing.T) {
	tests := []struct {
		name      string
		amount    string
		percent   string
		wantGST   string
		wantTotal string
	}{
		{"standard 18 percent", "100", "18", "18", "118"},
		{"zero amount", "0", "18", "0", "0"},
		{"zero percent", "5000", "0", "0", "5000"},
		{"rounds to two decimals", "999.99", "18", "180", "1179.99"},
		{"half up rounding", "33.33", "18", "6", "39.33"},
		{"fractional percent", "1000", "12.5", "125", "1125"},
		{"small amount", "0.01", "18", "0", "0.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gst, total := CalcGST(d(tt.amount), d(tt.percent))
			assert.True(t, gst.Equal(d(tt.wantGST)), "gst = %s, want %s", gst, tt.wantGST)
			assert.True(t, total.Equal(d(tt.wantTotal)), "total = %s, want %s", total, tt.wantTotal)
		})
	}
}

func TestCalcGSTInvariantTotal(t *testing.T) {
	// total selalu = amount + gst, berapapun persentasenya
	amounts := []string{"1", "99.99", "1234.56", "100000"}
	percents := []string{"0", "5", "12", "18", "28"}

	for _, a := range amounts {
		for _, p := range percents {
			gst, total := CalcGST(d(a), d(p))
			require.True(t, total.Equal(d(a).Add(gst)),
				"amount %s percent %s: total %s != amount+gst %s", a, p, total, d(a).Add(gst))
		}
	}
}

func TestCalcGSTRoundingHalfUp(t *testing.T) {
	// 10.125 * 18% = 1.8225 -> 1.82; 10.14 * 18% = 1.8252 -> 1.83
	gst, _ := CalcGST(d("10.125"), d("18"))
	assert.True(t, gst.Equal(d("1.82")), "gst = %s", gst)

	gst, _ = CalcGST(d("10.14"), d("18"))
	assert.True(t, gst.Equal(d("1.83")), "gst = %s", gst)
}
