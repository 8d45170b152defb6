package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"institusiku_backend/internals/helpers"

	attendanceModel "institusiku_backend/internals/features/academics/attendance/model"
	facultyModel "institusiku_backend/internals/features/academics/faculties/model"
	salaryModel "institusiku_backend/internals/features/finance/salaries/model"
)

// HoursPreview hasil kalkulasi gaji mode jam sebelum disimpan.
type HoursPreview struct {
	FacultyID   uuid.UUID       `json:"faculty_id"`
	FacultyName string          `json:"faculty_name"`
	Month       string          `json:"month"`
	TotalHours  decimal.Decimal `json:"total_hours"`
	HourlyRate  decimal.Decimal `json:"hourly_rate"`
	Amount      decimal.Decimal `json:"amount"`
	ManualEntry bool            `json:"manual_entry"`
}

// ResolveTotalHours: jam manual (jika diisi) SELALU menang atas hasil
// agregasi teacher_hours. Balikan kedua menandai entri manual.
func ResolveTotalHours(manual *decimal.Decimal, aggregated decimal.Decimal) (decimal.Decimal, bool) {
	if manual != nil {
		return *manual, true
	}
	return aggregated, false
}

// ResolveHourlyRate: tarif override > tarif tersimpan di pengajar > 0
// (tarif tersimpan default 0 dari model).
func ResolveHourlyRate(override *decimal.Decimal, stored decimal.Decimal) decimal.Decimal {
	if override != nil {
		return *override
	}
	return stored
}

// HoursAmount: nominal gaji = jam x tarif, dibulatkan 2 desimal.
func HoursAmount(hours, rate decimal.Decimal) decimal.Decimal {
	return hours.Mul(rate).Round(2)
}

// ComputeHoursSalary menghitung gaji per jam untuk satu pengajar dalam satu bulan.
// manualHours (jika diisi) menimpa agregasi teacher_hours; rateOverride (jika
// diisi) menimpa tarif default pengajar. Tanpa keduanya dan tanpa tarif
// tersimpan, tarif dianggap 0.
func ComputeHoursSalary(db *gorm.DB, facultyID uuid.UUID, year, month int, manualHours, rateOverride *decimal.Decimal) (*HoursPreview, error) {
	var faculty facultyModel.FacultyModel
	if err := db.First(&faculty, "faculty_id = ?", facultyID).Error; err != nil {
		return nil, err
	}

	aggregated := decimal.Zero
	if manualHours == nil {
		start, end := helper.MonthDateRange(year, month)
		var sum decimal.NullDecimal
		err := db.Model(&attendanceModel.TeacherHourModel{}).
			Select("COALESCE(SUM(teacher_hour_hours), 0)").
			Where("teacher_hour_faculty_id = ? AND teacher_hour_date BETWEEN ? AND ?", facultyID, start, end).
			Scan(&sum).Error
		if err != nil {
			return nil, err
		}
		if sum.Valid {
			aggregated = sum.Decimal
		}
	}

	totalHours, manual := ResolveTotalHours(manualHours, aggregated)
	rate := ResolveHourlyRate(rateOverride, faculty.FacultyHourlyRate)

	return &HoursPreview{
		FacultyID:   faculty.FacultyID,
		FacultyName: faculty.FacultyName,
		Month:       helper.MonthString(year, month),
		TotalHours:  totalHours,
		HourlyRate:  rate,
		Amount:      HoursAmount(totalHours, rate),
		ManualEntry: manual,
	}, nil
}

// UpsertHoursSalary menyimpan hasil kalkulasi mode jam. Satu baris per
// (pengajar, tahun, bulan, mode); generate ulang menimpa baris lama.
func UpsertHoursSalary(db *gorm.DB, p *HoursPreview, year, month int) (*salaryModel.SalaryModel, error) {
	row := salaryModel.SalaryModel{
		SalaryFacultyID:   p.FacultyID,
		SalaryFacultyName: p.FacultyName,
		SalaryYear:        year,
		SalaryMonth:       month,
		SalaryMonthStr:    helper.MonthString(year, month),
		SalaryMode:        salaryModel.SalaryModeHours,
		SalaryTotalHours:  p.TotalHours,
		SalaryHourlyRate:  p.HourlyRate,
		SalaryAmount:      p.Amount,
		SalaryManualEntry: p.ManualEntry,
		SalaryGeneratedOn: time.Now(),
	}
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "salary_faculty_id"},
			{Name: "salary_year"},
			{Name: "salary_month"},
			{Name: "salary_mode"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"salary_faculty_name", "salary_month_str", "salary_total_hours",
			"salary_hourly_rate", "salary_amount", "salary_manual_entry",
			"salary_generated_on", "salary_updated_at",
		}),
	}).Create(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// UpsertDaysSalary menyimpan gaji mode harian. Gross dan rincian komponen
// dipercaya dari pemanggil; kunci unik sama dengan mode jam.
func UpsertDaysSalary(db *gorm.DB, row *salaryModel.SalaryModel) error {
	row.SalaryMode = salaryModel.SalaryModeDays
	row.SalaryGeneratedOn = time.Now()
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "salary_faculty_id"},
			{Name: "salary_year"},
			{Name: "salary_month"},
			{Name: "salary_mode"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"salary_faculty_name", "salary_month_str", "salary_gross",
			"salary_components", "salary_generated_on", "salary_updated_at",
		}),
	}).Create(row).Error
}
