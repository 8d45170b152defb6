package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	PaymentModeCash        = "cash"
	PaymentModeCheque      = "cheque"
	PaymentModeUPI         = "upi"
	PaymentModeBankTransfer = "bank_transfer"
)

// PaymentModel: satu setoran fee + GST. Invarian: total = amount + gst,
// gst = round(amount * gst_percent / 100, 2).
type PaymentModel struct {
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`

	PaymentStudentID   uuid.UUID `gorm:"column:payment_student_id;type:uuid;not null;index" json:"payment_student_id"`
	PaymentStudentName string    `gorm:"column:payment_student_name;type:varchar(160)" json:"payment_student_name"`
	PaymentCourseID    *uuid.UUID `gorm:"column:payment_course_id;type:uuid" json:"payment_course_id,omitempty"`
	PaymentCourseName  string    `gorm:"column:payment_course_name;type:varchar(120)" json:"payment_course_name"`
	PaymentFaculty     string    `gorm:"column:payment_faculty;type:varchar(120)" json:"payment_faculty"`

	PaymentDate   time.Time       `gorm:"column:payment_date;not null;index" json:"payment_date"`
	PaymentAmount decimal.Decimal `gorm:"column:payment_amount;type:decimal(12,2);not null" json:"payment_amount"` // nominal dasar
	PaymentGST    decimal.Decimal `gorm:"column:payment_gst;type:decimal(12,2);not null" json:"payment_gst"`
	PaymentTotal  decimal.Decimal `gorm:"column:payment_total;type:decimal(12,2);not null" json:"payment_total"` // amount + gst

	// Nomor urut dari counter "receipt_no", zero-pad 6 digit, unik.
	PaymentReceiptNo  string `gorm:"column:payment_receipt_no;type:varchar(12);uniqueIndex;not null" json:"payment_receipt_no"`
	PaymentReceiptSeq int64  `gorm:"column:payment_receipt_seq;not null" json:"payment_receipt_seq"`

	PaymentMode        string `gorm:"column:payment_mode;type:varchar(20);not null;default:cash" json:"payment_mode"`
	PaymentInstallment string `gorm:"column:payment_installment;type:varchar(40);default:full" json:"payment_installment"`
	PaymentRemarks     string `gorm:"column:payment_remarks;type:text" json:"payment_remarks"`

	// Snapshot kontak siswa untuk kuitansi
	PaymentPhone  string `gorm:"column:payment_phone;type:varchar(20)" json:"payment_phone"`
	PaymentGender string `gorm:"column:payment_gender;type:varchar(10)" json:"payment_gender"`

	CreatedAt time.Time `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
}

func (PaymentModel) TableName() string { return "payments" }
