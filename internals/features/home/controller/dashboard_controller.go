package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"institusiku_backend/internals/configs"
	batchModel "institusiku_backend/internals/features/academics/batches/model"
	courseModel "institusiku_backend/internals/features/academics/courses/model"
	facultyModel "institusiku_backend/internals/features/academics/faculties/model"
	studentModel "institusiku_backend/internals/features/academics/students/model"
	paymentModel "institusiku_backend/internals/features/finance/payments/model"
	helper "institusiku_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// Stats: angka ringkas beranda admin.
func (ctrl *DashboardController) Stats(c *fiber.Ctx) error {
	var studentCount, batchCount, courseCount, facultyCount int64
	counts := []struct {
		model any
		dst   *int64
	}{
		{&studentModel.StudentModel{}, &studentCount},
		{&batchModel.BatchModel{}, &batchCount},
		{&courseModel.CourseModel{}, &courseCount},
		{&facultyModel.FacultyModel{}, &facultyCount},
	}
	for _, item := range counts {
		if err := ctrl.DB.Model(item.model).Count(item.dst).Error; err != nil {
			configs.LogError("home", "Stats", nil, err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch dashboard stats")
		}
	}

	// Penerimaan bulan berjalan.
	now := time.Now()
	start, end := helper.MonthDateRange(now.Year(), int(now.Month()))
	var monthTotal decimal.NullDecimal
	if err := ctrl.DB.Model(&paymentModel.PaymentModel{}).
		Select("COALESCE(SUM(payment_total), 0)").
		Where("payment_date BETWEEN ? AND ?", start, end).
		Scan(&monthTotal).Error; err != nil {
		configs.LogError("home", "Stats", nil, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch dashboard stats")
	}
	collections := decimal.Zero
	if monthTotal.Valid {
		collections = monthTotal.Decimal
	}

	// Sebaran gender per batch.
	type batchGender struct {
		BatchID *uuid.UUID `json:"batch_id"`
		Gender  string     `json:"gender"`
		Total   int64      `json:"total"`
	}
	var batchGenders []batchGender
	if err := ctrl.DB.Model(&studentModel.StudentModel{}).
		Select("student_batch_id AS batch_id, COALESCE(NULLIF(student_gender, ''), 'unknown') AS gender, COUNT(*) AS total").
		Group("student_batch_id, gender").
		Scan(&batchGenders).Error; err != nil {
		configs.LogError("home", "Stats", nil, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch dashboard stats")
	}

	// Jumlah siswa per pengajar dan per kursus.
	type idCount struct {
		ID    *uuid.UUID `json:"id"`
		Total int64      `json:"total"`
	}
	var perFaculty, perCourse []idCount
	if err := ctrl.DB.Model(&studentModel.StudentModel{}).
		Select("student_faculty_id AS id, COUNT(*) AS total").
		Where("student_faculty_id IS NOT NULL").
		Group("student_faculty_id").
		Scan(&perFaculty).Error; err != nil {
		configs.LogError("home", "Stats", nil, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch dashboard stats")
	}
	if err := ctrl.DB.Model(&studentModel.StudentModel{}).
		Select("student_course_id AS id, COUNT(*) AS total").
		Where("student_course_id IS NOT NULL").
		Group("student_course_id").
		Scan(&perCourse).Error; err != nil {
		configs.LogError("home", "Stats", nil, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch dashboard stats")
	}

	return helper.JsonOK(c, "Dashboard stats", fiber.Map{
		"students":                studentCount,
		"batches":                 batchCount,
		"courses":                 courseCount,
		"faculties":               facultyCount,
		"month_collections":       collections,
		"batch_gender_breakdown":  batchGenders,
		"students_per_faculty":    perFaculty,
		"students_per_course":     perCourse,
	})
}

// Years: daftar tahun yang punya transaksi pembayaran, terbaru dulu.
func (ctrl *DashboardController) Years(c *fiber.Ctx) error {
	var years []int
	if err := ctrl.DB.Model(&paymentModel.PaymentModel{}).
		Select("DISTINCT EXTRACT(YEAR FROM payment_date)::int AS year").
		Order("year DESC").
		Pluck("year", &years).Error; err != nil {
		configs.LogError("home", "Years", nil, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch years")
	}
	if years == nil {
		years = []int{}
	}
	return helper.JsonOK(c, "Payment years", fiber.Map{"years": years})
}
