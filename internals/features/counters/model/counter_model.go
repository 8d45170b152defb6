package model

import "time"

// CounterModel: counter bernama yang naik monoton (receipt_no, student_id, dst).
type CounterModel struct {
	CounterName string    `gorm:"column:counter_name;primaryKey" json:"counter_name"`
	CounterSeq  int64     `gorm:"column:counter_seq;not null;default:0" json:"counter_seq"`
	UpdatedAt   time.Time `gorm:"column:counter_updated_at;autoUpdateTime" json:"counter_updated_at"`
}

func (CounterModel) TableName() string { return "counters" }
