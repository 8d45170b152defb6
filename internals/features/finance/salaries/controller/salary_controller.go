package controller

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"institusiku_backend/internals/configs"
	facultyModel "institusiku_backend/internals/features/academics/faculties/model"
	"institusiku_backend/internals/features/finance/salaries/dto"
	salaryModel "institusiku_backend/internals/features/finance/salaries/model"
	salaryService "institusiku_backend/internals/features/finance/salaries/service"
	helper "institusiku_backend/internals/helpers"
)

var validate = validator.New()

type SalaryController struct {
	DB *gorm.DB
}

func NewSalaryController(db *gorm.DB) *SalaryController {
	return &SalaryController{DB: db}
}

// GenerateHours: hitung gaji mode jam tanpa menyimpan (preview).
func (ctrl *SalaryController) GenerateHours(c *fiber.Ctx) error {
	req, year, month, facultyID, err := ctrl.parseHoursRequest(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	preview, err := salaryService.ComputeHoursSalary(ctrl.DB, facultyID, year, month, req.ManualHours, req.HourlyRate)
	if err != nil {
		if strings.Contains(err.Error(), "record not found") {
			return helper.JsonError(c, fiber.StatusNotFound, "Faculty not found")
		}
		configs.LogError("salaries", "GenerateHours", req, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute salary")
	}
	return helper.JsonOK(c, "Salary computed", preview)
}

// SaveHours: hitung lalu simpan (upsert per pengajar+periode+mode).
func (ctrl *SalaryController) SaveHours(c *fiber.Ctx) error {
	req, year, month, facultyID, err := ctrl.parseHoursRequest(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	preview, err := salaryService.ComputeHoursSalary(ctrl.DB, facultyID, year, month, req.ManualHours, req.HourlyRate)
	if err != nil {
		if strings.Contains(err.Error(), "record not found") {
			return helper.JsonError(c, fiber.StatusNotFound, "Faculty not found")
		}
		configs.LogError("salaries", "SaveHours", req, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute salary")
	}

	row, err := salaryService.UpsertHoursSalary(ctrl.DB, preview, year, month)
	if err != nil {
		configs.LogError("salaries", "SaveHours", req, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save salary")
	}
	return helper.JsonCreated(c, "Salary saved successfully!", row)
}

func (ctrl *SalaryController) parseHoursRequest(c *fiber.Ctx) (*dto.GenerateHoursRequest, int, int, uuid.UUID, error) {
	var req dto.GenerateHoursRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, 0, 0, uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := validate.Struct(req); err != nil {
		return nil, 0, 0, uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "faculty_id and month are required")
	}
	year, month, err := helper.ParseMonth(req.Month)
	if err != nil {
		return nil, 0, 0, uuid.Nil, err
	}
	facultyID, err := uuid.Parse(req.FacultyID)
	if err != nil {
		return nil, 0, 0, uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid faculty id")
	}
	if req.ManualHours != nil && req.ManualHours.IsNegative() {
		return nil, 0, 0, uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Manual hours cannot be negative")
	}
	if req.HourlyRate != nil && req.HourlyRate.IsNegative() {
		return nil, 0, 0, uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Hourly rate cannot be negative")
	}
	return &req, year, month, facultyID, nil
}

// GenerateDays: simpan gaji mode harian. Payload datar dari frontend
// (total_collection, fixed_salary, per_day, tds_amt, dst) disimpan utuh ke
// kolom komponen; server hanya memvalidasi pengajar dan format bulan.
func (ctrl *SalaryController) GenerateDays(c *fiber.Ctx) error {
	var req dto.GenerateDaysRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "faculty_id and month are required")
	}
	year, month, err := helper.ParseMonth(req.Month)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	facultyID, err := uuid.Parse(req.FacultyID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid faculty id")
	}

	var faculty facultyModel.FacultyModel
	if err := ctrl.DB.First(&faculty, "faculty_id = ?", facultyID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Faculty not found")
	}

	components, err := json.Marshal(req.DaysComponents())
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid salary components")
	}

	row := salaryModel.SalaryModel{
		SalaryFacultyID:   faculty.FacultyID,
		SalaryFacultyName: faculty.FacultyName,
		SalaryYear:        year,
		SalaryMonth:       month,
		SalaryMonthStr:    helper.MonthString(year, month),
		SalaryGross:       req.Gross.Round(2),
		SalaryComponents:  components,
	}
	if err := salaryService.UpsertDaysSalary(ctrl.DB, &row); err != nil {
		configs.LogError("salaries", "GenerateDays", req, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save salary")
	}
	return helper.JsonCreated(c, "Salary saved successfully!", row)
}

// Update: edit baris gaji mode jam. Amount SELALU dihitung ulang dari
// hours x rate, nilai dari client diabaikan.
func (ctrl *SalaryController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid salary id")
	}
	var salary salaryModel.SalaryModel
	if err := ctrl.DB.First(&salary, "salary_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Salary not found")
	}

	var req dto.EditHoursRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "month is required")
	}
	year, month, err := helper.ParseMonth(req.Month)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if req.TotalHours.IsNegative() || req.HourlyRate.IsNegative() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Hours and rate cannot be negative")
	}

	updates := map[string]any{
		"salary_year":         year,
		"salary_month":        month,
		"salary_month_str":    helper.MonthString(year, month),
		"salary_total_hours":  req.TotalHours,
		"salary_hourly_rate":  req.HourlyRate,
		"salary_amount":       salaryService.HoursAmount(req.TotalHours, req.HourlyRate),
		"salary_manual_entry": req.ManualEntry,
		"salary_generated_on": time.Now(),
	}

	// Pindah pengajar opsional; nama ikut di-resolve ulang.
	if req.FacultyID != "" {
		facultyID, err := uuid.Parse(req.FacultyID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid faculty id")
		}
		var faculty facultyModel.FacultyModel
		if err := ctrl.DB.First(&faculty, "faculty_id = ?", facultyID).Error; err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "Faculty not found")
		}
		updates["salary_faculty_id"] = faculty.FacultyID
		updates["salary_faculty_name"] = faculty.FacultyName
	}

	if err := ctrl.DB.Model(&salary).Updates(updates).Error; err != nil {
		configs.LogError("salaries", "Update", req, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update salary")
	}
	return helper.JsonUpdated(c, "Salary record updated.", salary)
}

// GetAll: daftar gaji, filter ?month=YYYY-MM, ?faculty_id=, ?mode=.
func (ctrl *SalaryController) GetAll(c *fiber.Ctx) error {
	query := ctrl.DB.Model(&salaryModel.SalaryModel{})

	if m := strings.TrimSpace(c.Query("month")); m != "" {
		year, month, err := helper.ParseMonth(m)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		query = query.Where("salary_year = ? AND salary_month = ?", year, month)
	}
	if fid := strings.TrimSpace(c.Query("faculty_id")); fid != "" {
		id, err := uuid.Parse(fid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid faculty id")
		}
		query = query.Where("salary_faculty_id = ?", id)
	}
	if mode := strings.TrimSpace(c.Query("mode")); mode != "" {
		query = query.Where("salary_mode = ?", mode)
	}

	var salaries []salaryModel.SalaryModel
	if err := query.Order("salary_year DESC, salary_month DESC, salary_faculty_name ASC").
		Find(&salaries).Error; err != nil {
		configs.LogError("salaries", "GetAll", nil, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch salaries")
	}
	return helper.JsonOK(c, "Salaries fetched", salaries)
}

func (ctrl *SalaryController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid salary id")
	}
	var salary salaryModel.SalaryModel
	if err := ctrl.DB.First(&salary, "salary_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Salary not found")
	}
	return helper.JsonOK(c, "Salary fetched", salary)
}

func (ctrl *SalaryController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid salary id")
	}
	var salary salaryModel.SalaryModel
	if err := ctrl.DB.First(&salary, "salary_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Salary not found")
	}
	if err := ctrl.DB.Delete(&salary).Error; err != nil {
		configs.LogError("salaries", "Delete", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete salary")
	}
	return helper.JsonDeleted(c, "Salary deleted successfully!", fiber.Map{"salary_id": id})
}
