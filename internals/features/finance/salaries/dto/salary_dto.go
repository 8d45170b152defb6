package dto

import "github.com/shopspring/decimal"

// GenerateHoursRequest: preview gaji mode jam. ManualHours menimpa agregasi
// jam mengajar; HourlyRate menimpa tarif default pengajar.
type GenerateHoursRequest struct {
	FacultyID   string           `json:"faculty_id" validate:"required,uuid"`
	Month       string           `json:"month" validate:"required"`
	ManualHours *decimal.Decimal `json:"manual_hours,omitempty"`
	HourlyRate  *decimal.Decimal `json:"hourly_rate,omitempty"`
}

// EditHoursRequest: edit satu baris gaji mode jam. Amount dihitung ulang
// server-side dari hours x rate, nilai kiriman client tidak dipakai.
type EditHoursRequest struct {
	FacultyID   string          `json:"faculty_id" validate:"omitempty,uuid"`
	Month       string          `json:"month" validate:"required"`
	TotalHours  decimal.Decimal `json:"total_hours"`
	HourlyRate  decimal.Decimal `json:"hourly_rate"`
	ManualEntry bool            `json:"manual_entry"`
}

// GenerateDaysRequest: simpan gaji mode harian. Payload datar berisi
// angka-angka hasil kalkulasi frontend; semuanya disimpan apa adanya,
// server cuma memvalidasi pengajar dan format bulan.
type GenerateDaysRequest struct {
	FacultyID string `json:"faculty_id" validate:"required,uuid"`
	Month     string `json:"month" validate:"required"`

	TotalCollection decimal.Decimal `json:"total_collection"`
	FixedSalary     decimal.Decimal `json:"fixed_salary"`
	DaysInMonth     int             `json:"days_in_month"`
	PerDay          int             `json:"per_day"`
	AttendanceEquiv decimal.Decimal `json:"attendance_equiv"`
	AbsentDays      decimal.Decimal `json:"absent_days"`
	ProratedSalary  decimal.Decimal `json:"prorated_salary"`
	SalaryDeduction decimal.Decimal `json:"salary_deduction"`
	IncentivePct    decimal.Decimal `json:"incentive_pct"`
	IncentiveAmt    decimal.Decimal `json:"incentive_amt"`
	PensionAdd      decimal.Decimal `json:"pension_add"`
	PensionDed      decimal.Decimal `json:"pension_ded"`
	FoodCharges     decimal.Decimal `json:"food_charges"`
	TdsPct          decimal.Decimal `json:"tds_pct"`
	TdsAmt          decimal.Decimal `json:"tds_amt"`
	Gross           decimal.Decimal `json:"gross"`
}

// DaysComponents: seluruh field kalkulasi selain gross, urutan tetap,
// untuk disimpan ke kolom JSONB salary_components.
func (r *GenerateDaysRequest) DaysComponents() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"total_collection": r.TotalCollection,
		"fixed_salary":     r.FixedSalary,
		"days_in_month":    decimal.NewFromInt(int64(r.DaysInMonth)),
		"per_day":          decimal.NewFromInt(int64(r.PerDay)),
		"attendance_equiv": r.AttendanceEquiv,
		"absent_days":      r.AbsentDays,
		"prorated_salary":  r.ProratedSalary,
		"salary_deduction": r.SalaryDeduction,
		"incentive_pct":    r.IncentivePct,
		"incentive_amt":    r.IncentiveAmt,
		"pension_add":      r.PensionAdd,
		"pension_ded":      r.PensionDed,
		"food_charges":     r.FoodCharges,
		"tds_pct":          r.TdsPct,
		"tds_amt":          r.TdsAmt,
	}
}
