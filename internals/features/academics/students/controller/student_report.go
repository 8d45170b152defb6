package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"institusiku_backend/internals/configs"
	batchModel "institusiku_backend/internals/features/academics/batches/model"
	courseModel "institusiku_backend/internals/features/academics/courses/model"
	studentModel "institusiku_backend/internals/features/academics/students/model"
	paymentModel "institusiku_backend/internals/features/finance/payments/model"
	helper "institusiku_backend/internals/helpers"
)

// FallbackExpiryDate: bila expiry kosong, hitung dari tanggal masuk +
// durasi kursus x 30 hari. Balikan "" bila tidak bisa dihitung.
func FallbackExpiryDate(admissionDate string, durationMonths int) string {
	if admissionDate == "" || durationMonths <= 0 {
		return ""
	}
	ad, err := time.Parse("2006-01-02", admissionDate)
	if err != nil {
		return ""
	}
	return ad.AddDate(0, 0, durationMonths*30).Format("2006-01-02")
}

// Report: roster lengkap semua siswa dengan detail batch/kursus, expiry
// terhitung, dan sisa tagihan per siswa.
func (ctrl *StudentController) Report(c *fiber.Ctx) error {
	var students []studentModel.StudentModel
	if err := ctrl.DB.Order("student_created_at DESC").Find(&students).Error; err != nil {
		configs.LogError("students", "Report", nil, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build report")
	}

	// Batch, kursus, dan total bayar masing-masing satu query.
	var batches []batchModel.BatchModel
	if err := ctrl.DB.Find(&batches).Error; err != nil {
		configs.LogError("students", "Report", nil, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build report")
	}
	batchByID := make(map[uuid.UUID]batchModel.BatchModel, len(batches))
	for _, b := range batches {
		batchByID[b.BatchID] = b
	}

	var courses []courseModel.CourseModel
	if err := ctrl.DB.Find(&courses).Error; err != nil {
		configs.LogError("students", "Report", nil, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build report")
	}
	courseByID := make(map[uuid.UUID]courseModel.CourseModel, len(courses))
	for _, course := range courses {
		courseByID[course.CourseID] = course
	}

	type paidRow struct {
		StudentID uuid.UUID
		Paid      decimal.Decimal
	}
	var paidRows []paidRow
	if err := ctrl.DB.Model(&paymentModel.PaymentModel{}).
		Select("payment_student_id AS student_id, COALESCE(SUM(payment_amount), 0) AS paid").
		Group("payment_student_id").
		Scan(&paidRows).Error; err != nil {
		configs.LogError("students", "Report", nil, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build report")
	}
	paidByStudent := make(map[uuid.UUID]decimal.Decimal, len(paidRows))
	for _, r := range paidRows {
		paidByStudent[r.StudentID] = r.Paid
	}

	rows := make([]fiber.Map, 0, len(students))
	for _, s := range students {
		var batchTitle string
		if s.StudentBatchID != nil {
			batchTitle = batchByID[*s.StudentBatchID].BatchTitle
		}

		var courseName string
		courseFee := decimal.Zero
		durationMonths := 0
		if s.StudentCourseID != nil {
			if course, ok := courseByID[*s.StudentCourseID]; ok {
				courseName = course.CourseName
				courseFee = course.CourseFee
				durationMonths = course.CourseDurationMonths
			}
		}

		expiry := s.StudentExpiryDate
		if expiry == "" {
			expiry = FallbackExpiryDate(s.StudentAdmissionDate, durationMonths)
		}

		paid := paidByStudent[s.StudentID]
		rows = append(rows, fiber.Map{
			"student_id":     s.StudentID,
			"student_name":   s.FullName(),
			"form_no":        s.StudentFormNo,
			"phone":          s.StudentPhone,
			"gender":         s.StudentGender,
			"batch_title":    batchTitle,
			"course_name":    courseName,
			"admission_date": s.StudentAdmissionDate,
			"expiry_date":    expiry,
			"payment_status": s.StudentPaymentStatus,
			"course_fee":     courseFee,
			"total_paid":     paid,
			"balance":        courseFee.Sub(paid),
		})
	}
	return helper.JsonOK(c, "Student report", rows)
}
