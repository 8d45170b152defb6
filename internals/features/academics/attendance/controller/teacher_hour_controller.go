package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"institusiku_backend/internals/configs"
	attendanceModel "institusiku_backend/internals/features/academics/attendance/model"
	facultyModel "institusiku_backend/internals/features/academics/faculties/model"
	helper "institusiku_backend/internals/helpers"
)

type TeacherHourController struct {
	DB *gorm.DB
}

func NewTeacherHourController(db *gorm.DB) *TeacherHourController {
	return &TeacherHourController{DB: db}
}

type teacherHourRequest struct {
	FacultyID string          `json:"faculty_id" validate:"required,uuid"`
	Date      string          `json:"date" validate:"required,datetime=2006-01-02"`
	Hours     decimal.Decimal `json:"hours"`
	Note      string          `json:"note" validate:"omitempty,max=200"`
}

// Create: catat jam mengajar harian seorang pengajar.
func (ctrl *TeacherHourController) Create(c *fiber.Ctx) error {
	var req teacherHourRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "faculty_id and date are required")
	}
	if !req.Hours.IsPositive() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Hours must be greater than zero")
	}

	facultyID, err := uuid.Parse(req.FacultyID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid faculty id")
	}
	var faculty facultyModel.FacultyModel
	if err := ctrl.DB.First(&faculty, "faculty_id = ?", facultyID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Faculty not found")
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	row := attendanceModel.TeacherHourModel{
		TeacherHourFacultyID: facultyID,
		TeacherHourDate:      date,
		TeacherHourHours:     req.Hours,
		TeacherHourNote:      req.Note,
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		configs.LogError("teacher_hours", "Create", req, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to log teacher hours")
	}
	return helper.JsonCreated(c, "Teacher hours logged successfully!", row)
}

// ListByFaculty: jam mengajar seorang pengajar dalam satu bulan + totalnya.
func (ctrl *TeacherHourController) ListByFaculty(c *fiber.Ctx) error {
	facultyID, err := uuid.Parse(c.Params("faculty_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid faculty id")
	}
	year, month, err := helper.ParseMonth(c.Query("month", time.Now().Format("2006-01")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	start, end := helper.MonthDateRange(year, month)

	var rows []attendanceModel.TeacherHourModel
	if err := ctrl.DB.Where(
		"teacher_hour_faculty_id = ? AND teacher_hour_date BETWEEN ? AND ?",
		facultyID, start, end,
	).Order("teacher_hour_date ASC").Find(&rows).Error; err != nil {
		configs.LogError("teacher_hours", "ListByFaculty", facultyID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch teacher hours")
	}

	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.TeacherHourHours)
	}
	return helper.JsonOK(c, "Teacher hours fetched", fiber.Map{
		"faculty_id":  facultyID,
		"month":       helper.MonthString(year, month),
		"entries":     rows,
		"total_hours": total,
	})
}

func (ctrl *TeacherHourController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid entry id")
	}
	var row attendanceModel.TeacherHourModel
	if err := ctrl.DB.First(&row, "teacher_hour_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Entry not found")
	}
	if err := ctrl.DB.Delete(&row).Error; err != nil {
		configs.LogError("teacher_hours", "Delete", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete entry")
	}
	return helper.JsonDeleted(c, "Entry deleted successfully!", fiber.Map{"teacher_hour_id": id})
}
