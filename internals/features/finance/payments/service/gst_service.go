package service

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// CalcGST menghitung GST dan total dari nominal dasar.
// gst = round(amount * gstPercent / 100, 2); total = round(amount + gst, 2).
// Pembulatan half-up 2 desimal (gaya mata uang). Precondition: amount ≥ 0
// dan gstPercent ≥ 0 (tanggung jawab pemanggil).
func CalcGST(amount, gstPercent decimal.Decimal) (gst, total decimal.Decimal) {
	gst = amount.Mul(gstPercent).Div(hundred).Round(2)
	total = amount.Add(gst).Round(2)
	return gst, total
}
