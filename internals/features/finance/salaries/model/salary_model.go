package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

const (
	SalaryModeHours = "hours"
	SalaryModeDays  = "days"
)

// SalaryModel: gaji pengajar per bulan. Upsert key:
// (faculty, year, month, mode) — dua mode boleh hidup berdampingan
// untuk pengajar+bulan yang sama.
type SalaryModel struct {
	SalaryID uuid.UUID `gorm:"column:salary_id;type:uuid;default:gen_random_uuid();primaryKey" json:"salary_id"`

	SalaryFacultyID   uuid.UUID `gorm:"column:salary_faculty_id;type:uuid;not null;uniqueIndex:uq_salary_period,priority:1" json:"salary_faculty_id"`
	SalaryFacultyName string    `gorm:"column:salary_faculty_name;type:varchar(120)" json:"salary_faculty_name"`
	SalaryYear        int       `gorm:"column:salary_year;not null;uniqueIndex:uq_salary_period,priority:2" json:"salary_year"`
	SalaryMonth       int       `gorm:"column:salary_month;not null;uniqueIndex:uq_salary_period,priority:3" json:"salary_month"`
	SalaryMonthStr    string    `gorm:"column:salary_month_str;type:varchar(7);not null" json:"salary_month_str"` // "YYYY-MM"
	SalaryMode        string    `gorm:"column:salary_mode;type:varchar(10);not null;uniqueIndex:uq_salary_period,priority:4" json:"salary_mode"`

	// Mode jam: amount = round(total_hours * hourly_rate, 2)
	SalaryTotalHours  decimal.Decimal `gorm:"column:salary_total_hours;type:decimal(8,2);not null;default:0" json:"salary_total_hours"`
	SalaryHourlyRate  decimal.Decimal `gorm:"column:salary_hourly_rate;type:decimal(12,2);not null;default:0" json:"salary_hourly_rate"`
	SalaryAmount      decimal.Decimal `gorm:"column:salary_amount;type:decimal(12,2);not null;default:0" json:"salary_amount"`
	SalaryManualEntry bool            `gorm:"column:salary_manual_entry;not null;default:false" json:"salary_manual_entry"`

	// Mode hari: komponen dari kalkulasi di sisi pemanggil, disimpan
	// apa adanya tanpa dihitung ulang. Gross dipisah supaya bisa disort.
	SalaryGross      decimal.Decimal `gorm:"column:salary_gross;type:decimal(12,2);not null;default:0" json:"salary_gross"`
	SalaryComponents datatypes.JSON  `gorm:"column:salary_components;type:jsonb" json:"salary_components,omitempty"`

	SalaryGeneratedOn time.Time `gorm:"column:salary_generated_on;not null" json:"salary_generated_on"`

	CreatedAt time.Time `gorm:"column:salary_created_at;autoCreateTime" json:"salary_created_at"`
	UpdatedAt time.Time `gorm:"column:salary_updated_at;autoUpdateTime" json:"salary_updated_at"`
}

func (SalaryModel) TableName() string { return "salaries" }
