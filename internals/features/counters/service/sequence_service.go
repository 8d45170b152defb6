package service

import (
	"fmt"

	"gorm.io/gorm"
)

// NextSequence menaikkan counter bernama secara atomik dan mengembalikan
// nilainya (mulai dari 1 saat pertama dipakai). Satu statement
// INSERT .. ON CONFLICT .. RETURNING, jadi aman dipanggil paralel:
// dua request tidak akan pernah menerima angka yang sama.
func NextSequence(db *gorm.DB, name string) (int64, error) {
	var seq int64
	err := db.Raw(`
		INSERT INTO counters (counter_name, counter_seq, counter_updated_at)
		VALUES (?, 1, NOW())
		ON CONFLICT (counter_name)
		DO UPDATE SET counter_seq = counters.counter_seq + 1, counter_updated_at = NOW()
		RETURNING counter_seq`, name).Scan(&seq).Error
	if err != nil {
		return 0, err
	}
	return seq, nil
}

// FormatReceiptNo: nomor urut → nomor kuitansi 6 digit ("000001").
func FormatReceiptNo(seq int64) string {
	return fmt.Sprintf("%06d", seq)
}
