package dto

import "github.com/shopspring/decimal"

// CreatePaymentRequest: input terima pembayaran. GST dihitung server-side
// dari GST_PERCENT, client tidak pernah mengirim nilai pajak.
type CreatePaymentRequest struct {
	StudentID   string          `json:"student_id" validate:"required,uuid"`
	Date        string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Amount      decimal.Decimal `json:"amount"`
	Mode        string          `json:"mode" validate:"omitempty,oneof=cash cheque upi bank_transfer"`
	Installment string          `json:"installment" validate:"omitempty,max=40"`
	Remarks     string          `json:"remarks"`
}
