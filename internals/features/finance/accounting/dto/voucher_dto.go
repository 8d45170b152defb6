package dto

import accountingModel "institusiku_backend/internals/features/finance/accounting/model"

// VoucherRequest: input buat/ubah voucher. AllowUnbalanced melewati cek
// keseimbangan debit/kredit (dipakai opening balance).
type VoucherRequest struct {
	Date            string                        `json:"date"`
	Type            string                        `json:"type" validate:"omitempty,oneof=journal contra payment receipt"`
	VoucherNo       string                        `json:"voucher_no" validate:"omitempty,max=40"`
	Narration       string                        `json:"narration"`
	Lines           []accountingModel.VoucherLine `json:"lines"`
	AllowUnbalanced bool                          `json:"allow_unbalanced"`
}

type LedgerGroupRequest struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
}

type LedgerRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=120"`
	GroupID string `json:"group_id" validate:"omitempty,uuid"`
}

// LedgerUpdateRequest: group_id pointer membedakan tiga niat client:
// field tidak dikirim = biarkan, "" = lepas dari group, uuid = pindah group.
type LedgerUpdateRequest struct {
	Name    string  `json:"name" validate:"required,min=1,max=120"`
	GroupID *string `json:"group_id"`
}
