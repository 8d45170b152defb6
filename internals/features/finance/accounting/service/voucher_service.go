package service

import (
	"errors"
	"fmt"
	"math"
	"strings"

	accountingModel "institusiku_backend/internals/features/finance/accounting/model"
)

// Toleransi pembulatan saat mengecek keseimbangan debit/kredit.
const balanceEpsilon = 0.009

// UnbalancedError membawa total debit/kredit supaya controller bisa
// menampilkannya ke pemakai.
type UnbalancedError struct {
	Debit  float64
	Credit float64
}

func (e *UnbalancedError) Error() string {
	return fmt.Sprintf("voucher not balanced (debit %.2f, credit %.2f)", e.Debit, e.Credit)
}

// ValidateVoucherPayload memeriksa kelengkapan minimal sebuah voucher:
// tanggal terisi dan minimal satu baris ledger dengan nominal positif.
func ValidateVoucherPayload(date string, lines []accountingModel.VoucherLine) error {
	if strings.TrimSpace(date) == "" {
		return errors.New("date required")
	}
	for _, ln := range lines {
		if strings.TrimSpace(ln.Account) != "" && ln.Amount > 0 {
			return nil
		}
	}
	return errors.New("at least one ledger line with positive amount required")
}

// ComputeTotals menjumlahkan sisi debit dan kredit.
func ComputeTotals(lines []accountingModel.VoucherLine) (debit, credit float64) {
	for _, ln := range lines {
		switch ln.Type {
		case accountingModel.LineTypeDebit:
			debit += ln.Amount
		case accountingModel.LineTypeCredit:
			credit += ln.Amount
		}
	}
	return debit, credit
}

// AutoAllocateContra melengkapi voucher kontra satu baris: bila hanya ada
// tepat satu baris bernominal, sisi lawannya dibuat otomatis. Akun lawan
// "Bank" bila akun asal mengandung kata bank, selain itu "Cash".
func AutoAllocateContra(voucherType string, lines []accountingModel.VoucherLine) []accountingModel.VoucherLine {
	if voucherType != accountingModel.VoucherTypeContra {
		return lines
	}
	nonZero := -1
	for i, ln := range lines {
		if ln.Amount > 0 {
			if nonZero >= 0 {
				return lines // lebih dari satu baris, biarkan apa adanya
			}
			nonZero = i
		}
	}
	if nonZero < 0 {
		return lines
	}

	src := lines[nonZero]
	counter := "Cash"
	if strings.Contains(strings.ToLower(src.Account), "bank") {
		counter = "Bank"
	}
	counterType := accountingModel.LineTypeCredit
	if src.Type == accountingModel.LineTypeCredit {
		counterType = accountingModel.LineTypeDebit
	}
	// Baris lawan dibuat polos: details tidak ikut disalin.
	return append(lines, accountingModel.VoucherLine{
		Account: counter,
		Type:    counterType,
		Amount:  src.Amount,
	})
}

// CheckBalance menolak voucher yang debit != kredit, kecuali pemanggil
// secara eksplisit mengizinkan (allowUnbalanced).
func CheckBalance(lines []accountingModel.VoucherLine, allowUnbalanced bool) error {
	debit, credit := ComputeTotals(lines)
	if allowUnbalanced {
		return nil
	}
	if math.Abs(debit-credit) > balanceEpsilon {
		return &UnbalancedError{Debit: debit, Credit: credit}
	}
	return nil
}
