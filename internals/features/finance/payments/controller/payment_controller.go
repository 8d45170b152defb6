package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"institusiku_backend/internals/configs"
	courseModel "institusiku_backend/internals/features/academics/courses/model"
	facultyModel "institusiku_backend/internals/features/academics/faculties/model"
	studentModel "institusiku_backend/internals/features/academics/students/model"
	counterService "institusiku_backend/internals/features/counters/service"
	"institusiku_backend/internals/features/finance/payments/dto"
	paymentModel "institusiku_backend/internals/features/finance/payments/model"
	paymentService "institusiku_backend/internals/features/finance/payments/service"
	helper "institusiku_backend/internals/helpers"
)

var validate = validator.New()

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

// Create: terima pembayaran, hitung GST, terbitkan nomor kuitansi berurut.
func (ctrl *PaymentController) Create(c *fiber.Ctx) error {
	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_id is required")
	}
	if !req.Amount.IsPositive() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Amount must be greater than zero")
	}

	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}
	var student studentModel.StudentModel
	if err := ctrl.DB.First(&student, "student_id = ?", studentID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	// Snapshot kursus + pengajar untuk kuitansi (data siswa bisa berubah nanti).
	var courseName string
	if student.StudentCourseID != nil {
		var course courseModel.CourseModel
		if err := ctrl.DB.First(&course, "course_id = ?", *student.StudentCourseID).Error; err == nil {
			courseName = course.CourseName
		}
	}
	var facultyName string
	if student.StudentFacultyID != nil {
		var faculty facultyModel.FacultyModel
		if err := ctrl.DB.First(&faculty, "faculty_id = ?", *student.StudentFacultyID).Error; err == nil {
			facultyName = faculty.FacultyName
		}
	}

	paymentDate := time.Now()
	if req.Date != "" {
		if d, err := time.Parse("2006-01-02", req.Date); err == nil {
			paymentDate = d
		}
	}

	amount := req.Amount.Round(2)
	gst, total := paymentService.CalcGST(amount, configs.GSTPercent)

	seq, err := counterService.NextSequence(ctrl.DB, "receipt_no")
	if err != nil {
		configs.LogError("payments", "Create", req, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record payment")
	}

	mode := req.Mode
	if mode == "" {
		mode = paymentModel.PaymentModeCash
	}
	installment := req.Installment
	if installment == "" {
		installment = "full"
	}

	payment := paymentModel.PaymentModel{
		PaymentStudentID:   student.StudentID,
		PaymentStudentName: student.FullName(),
		PaymentCourseID:    student.StudentCourseID,
		PaymentCourseName:  courseName,
		PaymentFaculty:     facultyName,
		PaymentDate:        paymentDate,
		PaymentAmount:      amount,
		PaymentGST:         gst,
		PaymentTotal:       total,
		PaymentReceiptNo:   counterService.FormatReceiptNo(seq),
		PaymentReceiptSeq:  seq,
		PaymentMode:        mode,
		PaymentInstallment: installment,
		PaymentRemarks:     req.Remarks,
		PaymentPhone:       student.StudentPhone,
		PaymentGender:      student.StudentGender,
	}
	if err := ctrl.DB.Create(&payment).Error; err != nil {
		configs.LogError("payments", "Create", req, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record payment")
	}
	return helper.JsonCreated(c, "Payment recorded successfully!", payment)
}

// GetAll: daftar pembayaran, filter ?from=&to= (yyyy-mm-dd), ?mode=, ?student_id=.
func (ctrl *PaymentController) GetAll(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 25, 100)
	query := ctrl.DB.Model(&paymentModel.PaymentModel{})
	query = applyPaymentFilters(query, c)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		configs.LogError("payments", "GetAll", nil, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch payments")
	}

	var payments []paymentModel.PaymentModel
	if err := query.Order("payment_receipt_seq DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&payments).Error; err != nil {
		configs.LogError("payments", "GetAll", nil, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch payments")
	}
	return helper.JsonList(c, "Payments fetched", payments, helper.BuildPagination(p, total))
}

func applyPaymentFilters(query *gorm.DB, c *fiber.Ctx) *gorm.DB {
	if from := strings.TrimSpace(c.Query("from")); from != "" {
		if d, err := time.Parse("2006-01-02", from); err == nil {
			query = query.Where("payment_date >= ?", d)
		}
	}
	if to := strings.TrimSpace(c.Query("to")); to != "" {
		if d, err := time.Parse("2006-01-02", to); err == nil {
			// inklusif sampai akhir hari
			query = query.Where("payment_date < ?", d.AddDate(0, 0, 1))
		}
	}
	if mode := strings.TrimSpace(c.Query("mode")); mode != "" {
		query = query.Where("payment_mode = ?", mode)
	}
	if sid := strings.TrimSpace(c.Query("student_id")); sid != "" {
		if id, err := uuid.Parse(sid); err == nil {
			query = query.Where("payment_student_id = ?", id)
		}
	}
	return query
}

func (ctrl *PaymentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payment id")
	}
	var payment paymentModel.PaymentModel
	if err := ctrl.DB.First(&payment, "payment_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Payment not found")
	}
	return helper.JsonOK(c, "Payment fetched", payment)
}

// Receipt: payload cetak kuitansi by nomor kuitansi, termasuk terbilang.
func (ctrl *PaymentController) Receipt(c *fiber.Ctx) error {
	receiptNo := strings.TrimSpace(c.Params("receipt_no"))
	var payment paymentModel.PaymentModel
	if err := ctrl.DB.First(&payment, "payment_receipt_no = ?", receiptNo).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Receipt not found")
	}
	return helper.JsonOK(c, "Receipt fetched", fiber.Map{
		"payment":         payment,
		"gst_percent":     configs.GSTPercent,
		"amount_in_words": helper.AmountInWords(payment.PaymentTotal),
	})
}

// StudentsWithBalances: semua siswa + expected / paid / balance. Dipakai
// halaman pilih siswa saat terima pembayaran.
func (ctrl *PaymentController) StudentsWithBalances(c *fiber.Ctx) error {
	var students []studentModel.StudentModel
	if err := ctrl.DB.Order("student_first_name ASC").Find(&students).Error; err != nil {
		configs.LogError("payments", "StudentsWithBalances", nil, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch students")
	}

	// Fee per kursus dan total bayar per siswa, masing-masing satu query.
	var courses []courseModel.CourseModel
	if err := ctrl.DB.Find(&courses).Error; err != nil {
		configs.LogError("payments", "StudentsWithBalances", nil, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch students")
	}
	feeByID := make(map[string]decimal.Decimal, len(courses))
	for _, course := range courses {
		feeByID[course.CourseID.String()] = course.CourseFee
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
		configs.LogError("payments", "StudentsWithBalances", nil, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch students")
	}
	paidByStudent := make(map[uuid.UUID]decimal.Decimal, len(paidRows))
	for _, r := range paidRows {
		paidByStudent[r.StudentID] = r.Paid
	}

	rows := make([]fiber.Map, 0, len(students))
	for _, s := range students {
		expected := decimal.Zero
		courseIDs := s.StudentCourseIDs
		if len(courseIDs) == 0 && s.StudentCourseID != nil {
			courseIDs = []string{s.StudentCourseID.String()}
		}
		for _, cid := range courseIDs {
			expected = expected.Add(feeByID[cid])
		}
		paid := paidByStudent[s.StudentID]
		rows = append(rows, fiber.Map{
			"student_id":     s.StudentID,
			"student_name":   s.FullName(),
			"form_no":        s.StudentFormNo,
			"phone":          s.StudentPhone,
			"payment_status": s.StudentPaymentStatus,
			"total_fees":     expected,
			"total_paid":     paid,
			"balance":        expected.Sub(paid),
		})
	}
	return helper.JsonOK(c, "Students with balances", rows)
}

// Report: rekap pembayaran dalam rentang + total amount/gst/grand total.
func (ctrl *PaymentController) Report(c *fiber.Ctx) error {
	query := ctrl.DB.Model(&paymentModel.PaymentModel{})
	query = applyPaymentFilters(query, c)

	var payments []paymentModel.PaymentModel
	if err := query.Order("payment_date ASC, payment_receipt_seq ASC").
		Find(&payments).Error; err != nil {
		configs.LogError("payments", "Report", nil, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build report")
	}

	totalAmount, totalGST, grandTotal := decimal.Zero, decimal.Zero, decimal.Zero
	for _, pmt := range payments {
		totalAmount = totalAmount.Add(pmt.PaymentAmount)
		totalGST = totalGST.Add(pmt.PaymentGST)
		grandTotal = grandTotal.Add(pmt.PaymentTotal)
	}
	return helper.JsonOK(c, "Payment report", fiber.Map{
		"payments":     payments,
		"count":        len(payments),
		"total_amount": totalAmount,
		"total_gst":    totalGST,
		"grand_total":  grandTotal,
	})
}

// TodaySummary: setoran hari ini (untuk dashboard kasir).
func (ctrl *PaymentController) TodaySummary(c *fiber.Ctx) error {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var payments []paymentModel.PaymentModel
	if err := ctrl.DB.Where("payment_date >= ? AND payment_date < ?", start, start.AddDate(0, 0, 1)).
		Order("payment_receipt_seq DESC").
		Find(&payments).Error; err != nil {
		configs.LogError("payments", "TodaySummary", nil, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch today's payments")
	}

	grandTotal := decimal.Zero
	for _, pmt := range payments {
		grandTotal = grandTotal.Add(pmt.PaymentTotal)
	}
	return helper.JsonOK(c, "Today's collections", fiber.Map{
		"date":        start.Format("2006-01-02"),
		"payments":    payments,
		"count":       len(payments),
		"grand_total": grandTotal,
	})
}
