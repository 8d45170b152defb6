package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CourseModel struct {
	CourseID             uuid.UUID       `gorm:"column:course_id;type:uuid;default:gen_random_uuid();primaryKey" json:"course_id"`
	CourseName           string          `gorm:"column:course_name;type:varchar(120);not null" json:"course_name"`
	CourseFee            decimal.Decimal `gorm:"column:course_fee;type:decimal(12,2);not null;default:0" json:"course_fee"`
	CourseDurationMonths int             `gorm:"column:course_duration_months;not null;default:0" json:"course_duration_months"`
	CourseHours          int             `gorm:"column:course_hours;not null;default:0" json:"course_hours"` // total jam, dipakai sertifikat

	CreatedAt time.Time `gorm:"column:course_created_at;autoCreateTime" json:"course_created_at"`
	UpdatedAt time.Time `gorm:"column:course_updated_at;autoUpdateTime" json:"course_updated_at"`
}

func (CourseModel) TableName() string { return "courses" }
