package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	VoucherTypeJournal = "journal"
	VoucherTypeContra  = "contra"
	VoucherTypePayment = "payment"
	VoucherTypeReceipt = "receipt"
)

const (
	LineTypeDebit  = "debit"
	LineTypeCredit = "credit"
)

// LedgerGroupModel: kelompok ledger (mis. "Assets", "Expenses").
type LedgerGroupModel struct {
	LedgerGroupID   uuid.UUID `gorm:"column:ledger_group_id;type:uuid;default:gen_random_uuid();primaryKey" json:"ledger_group_id"`
	LedgerGroupName string    `gorm:"column:ledger_group_name;type:varchar(120);not null" json:"ledger_group_name"`

	CreatedAt time.Time `gorm:"column:ledger_group_created_at;autoCreateTime" json:"ledger_group_created_at"`
}

func (LedgerGroupModel) TableName() string { return "ledger_groups" }

// LedgerModel: akun buku besar, boleh tanpa grup.
type LedgerModel struct {
	LedgerID      uuid.UUID  `gorm:"column:ledger_id;type:uuid;default:gen_random_uuid();primaryKey" json:"ledger_id"`
	LedgerName    string     `gorm:"column:ledger_name;type:varchar(120);not null" json:"ledger_name"`
	LedgerGroupID *uuid.UUID `gorm:"column:ledger_group_id;type:uuid;index" json:"ledger_group_id,omitempty"`

	CreatedAt time.Time `gorm:"column:ledger_created_at;autoCreateTime" json:"ledger_created_at"`
}

func (LedgerModel) TableName() string { return "ledgers" }

// VoucherLine: satu baris debit/credit. Disimpan sebagai JSONB di voucher
// (baris tidak pernah diquery terpisah, selalu satu dokumen utuh).
type VoucherLine struct {
	Account string  `json:"account"`
	Type    string  `json:"type"` // debit | credit
	Amount  float64 `json:"amount"`
	Details string  `json:"details,omitempty"`
}

// VoucherModel: transaksi pembukuan. Invarian: sum(debit) == sum(credit)
// dalam epsilon 0.009 kecuali dioverride eksplisit saat simpan.
type VoucherModel struct {
	VoucherID        uuid.UUID      `gorm:"column:voucher_id;type:uuid;default:gen_random_uuid();primaryKey" json:"voucher_id"`
	VoucherDate      string         `gorm:"column:voucher_date;type:varchar(10);not null;index" json:"voucher_date"` // yyyy-mm-dd
	VoucherType      string         `gorm:"column:voucher_type;type:varchar(20);not null;default:journal" json:"voucher_type"`
	VoucherNo        string         `gorm:"column:voucher_no;type:varchar(40);index" json:"voucher_no"`
	VoucherNarration string         `gorm:"column:voucher_narration;type:text" json:"voucher_narration"`
	VoucherLines     datatypes.JSON `gorm:"column:voucher_lines;type:jsonb;not null" json:"voucher_lines"`

	CreatedAt time.Time `gorm:"column:voucher_created_at;autoCreateTime" json:"voucher_created_at"`
	UpdatedAt time.Time `gorm:"column:voucher_updated_at;autoUpdateTime" json:"voucher_updated_at"`
}

func (VoucherModel) TableName() string { return "vouchers" }
