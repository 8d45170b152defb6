package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FacultyModel: pengajar. Hourly rate dipakai default perhitungan gaji mode jam.
type FacultyModel struct {
	FacultyID         uuid.UUID       `gorm:"column:faculty_id;type:uuid;default:gen_random_uuid();primaryKey" json:"faculty_id"`
	FacultyName       string          `gorm:"column:faculty_name;type:varchar(120);not null" json:"faculty_name"`
	FacultyPhone      string          `gorm:"column:faculty_phone;type:varchar(20)" json:"faculty_phone"`
	FacultyEmail      string          `gorm:"column:faculty_email;type:varchar(120)" json:"faculty_email"`
	FacultySubject    string          `gorm:"column:faculty_subject;type:varchar(120)" json:"faculty_subject"`
	FacultyAddress    string          `gorm:"column:faculty_address;type:text" json:"faculty_address"`
	FacultyHourlyRate decimal.Decimal `gorm:"column:faculty_hourly_rate;type:decimal(12,2);not null;default:0" json:"faculty_hourly_rate"`

	CreatedAt time.Time `gorm:"column:faculty_created_at;autoCreateTime" json:"faculty_created_at"`
	UpdatedAt time.Time `gorm:"column:faculty_updated_at;autoUpdateTime" json:"faculty_updated_at"`
}

func (FacultyModel) TableName() string { return "faculties" }
