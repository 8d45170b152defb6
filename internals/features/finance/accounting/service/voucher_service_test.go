package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	accountingModel "institusiku_backend/internals/features/finance/accounting/model"
)

func line(account, lineType string, amount float64) accountingModel.VoucherLine {
	return accountingModel.VoucherLine{Account: account, Type: lineType, Amount: amount}
}

func TestValidateVoucherPayload(t *testing.T) {
	valid := []accountingModel.VoucherLine{
		line("Cash", accountingModel.LineTypeDebit, 500),
	}

	tests := []struct {
		name    string
		date    string
		lines   []accountingModel.VoucherLine
		wantErr string
	}{
		{"ok", "2026-04-01", valid, ""},
		{"missing date", "", valid, "date required"},
		{"blank date", "   ", valid, "date required"},
		{"no lines", "2026-04-01", nil, "at least one ledger line with positive amount required"},
		{
			"only zero amounts", "2026-04-01",
			[]accountingModel.VoucherLine{line("Cash", accountingModel.LineTypeDebit, 0)},
			"at least one ledger line with positive amount required",
		},
		{
			"positive amount but empty account", "2026-04-01",
			[]accountingModel.VoucherLine{line("", accountingModel.LineTypeDebit, 100)},
			"at least one ledger line with positive amount required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVoucherPayload(tt.date, tt.lines)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
			}
		})
	}
}

func TestComputeTotals(t *testing.T) {
	lines := []accountingModel.VoucherLine{
		line("Cash", accountingModel.LineTypeDebit, 500),
		line("Bank SBI", accountingModel.LineTypeDebit, 250.50),
		line("Fees", accountingModel.LineTypeCredit, 750.50),
	}
	debit, credit := ComputeTotals(lines)
	assert.InDelta(t, 750.50, debit, 0.0001)
	assert.InDelta(t, 750.50, credit, 0.0001)
}

func TestAutoAllocateContra(t *testing.T) {
	t.Run("single line gets bank counter for bank account", func(t *testing.T) {
		src := line("SBI Bank Account", accountingModel.LineTypeDebit, 1000)
		src.Details = "transfer to branch"
		lines := AutoAllocateContra(accountingModel.VoucherTypeContra, []accountingModel.VoucherLine{src})
		require.Len(t, lines, 2)
		assert.Equal(t, "Bank", lines[1].Account)
		assert.Equal(t, accountingModel.LineTypeCredit, lines[1].Type)
		assert.InDelta(t, 1000, lines[1].Amount, 0.0001)
		assert.Empty(t, lines[1].Details, "counter line must not inherit details")
	})

	t.Run("single line gets cash counter otherwise", func(t *testing.T) {
		lines := AutoAllocateContra(accountingModel.VoucherTypeContra, []accountingModel.VoucherLine{
			line("Petty Expenses", accountingModel.LineTypeCredit, 300),
		})
		require.Len(t, lines, 2)
		assert.Equal(t, "Cash", lines[1].Account)
		assert.Equal(t, accountingModel.LineTypeDebit, lines[1].Type)
	})

	t.Run("case insensitive bank match", func(t *testing.T) {
		lines := AutoAllocateContra(accountingModel.VoucherTypeContra, []accountingModel.VoucherLine{
			line("HDFC BANK", accountingModel.LineTypeDebit, 50),
		})
		require.Len(t, lines, 2)
		assert.Equal(t, "Bank", lines[1].Account)
	})

	t.Run("two non-zero lines left untouched", func(t *testing.T) {
		in := []accountingModel.VoucherLine{
			line("Cash", accountingModel.LineTypeDebit, 100),
			line("Bank", accountingModel.LineTypeCredit, 100),
		}
		out := AutoAllocateContra(accountingModel.VoucherTypeContra, in)
		assert.Len(t, out, 2)
		assert.Equal(t, in, out)
	})

	t.Run("non-contra voucher untouched", func(t *testing.T) {
		in := []accountingModel.VoucherLine{
			line("Cash", accountingModel.LineTypeDebit, 100),
		}
		out := AutoAllocateContra(accountingModel.VoucherTypeJournal, in)
		assert.Len(t, out, 1)
	})
}

func TestCheckBalance(t *testing.T) {
	balanced := []accountingModel.VoucherLine{
		line("Cash", accountingModel.LineTypeDebit, 500),
		line("Fees", accountingModel.LineTypeCredit, 500),
	}
	assert.NoError(t, CheckBalance(balanced, false))

	t.Run("rounding drift within epsilon passes", func(t *testing.T) {
		drifted := []accountingModel.VoucherLine{
			line("Cash", accountingModel.LineTypeDebit, 100.005),
			line("Fees", accountingModel.LineTypeCredit, 100.00),
		}
		assert.NoError(t, CheckBalance(drifted, false))
	})

	t.Run("unbalanced rejected with totals", func(t *testing.T) {
		unbalanced := []accountingModel.VoucherLine{
			line("Cash", accountingModel.LineTypeDebit, 500),
			line("Fees", accountingModel.LineTypeCredit, 300),
		}
		err := CheckBalance(unbalanced, false)
		require.Error(t, err)

		var ub *UnbalancedError
		require.True(t, errors.As(err, &ub))
		assert.InDelta(t, 500, ub.Debit, 0.0001)
		assert.InDelta(t, 300, ub.Credit, 0.0001)
	})

	t.Run("allow unbalanced skips the check", func(t *testing.T) {
		unbalanced := []accountingModel.VoucherLine{
			line("Opening Balance", accountingModel.LineTypeDebit, 5000),
		}
		assert.NoError(t, CheckBalance(unbalanced, true))
	})
}
