package model

import (
	"time"

	"github.com/google/uuid"
)

type BatchModel struct {
	BatchID        uuid.UUID `gorm:"column:batch_id;type:uuid;default:gen_random_uuid();primaryKey" json:"batch_id"`
	BatchTitle     string    `gorm:"column:batch_title;type:varchar(120);not null" json:"batch_title"`
	BatchStartDate string    `gorm:"column:batch_start_date;type:varchar(10)" json:"batch_start_date"` // yyyy-mm-dd
	BatchEndDate   string    `gorm:"column:batch_end_date;type:varchar(10)" json:"batch_end_date"`     // yyyy-mm-dd (untuk tanggal selesai sertifikat)

	CreatedAt time.Time `gorm:"column:batch_created_at;autoCreateTime" json:"batch_created_at"`
	UpdatedAt time.Time `gorm:"column:batch_updated_at;autoUpdateTime" json:"batch_updated_at"`
}

func (BatchModel) TableName() string { return "batches" }
