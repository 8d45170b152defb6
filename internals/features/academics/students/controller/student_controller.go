package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"institusiku_backend/internals/configs"
	"institusiku_backend/internals/constants"
	courseModel "institusiku_backend/internals/features/academics/courses/model"
	"institusiku_backend/internals/features/academics/students/dto"
	studentModel "institusiku_backend/internals/features/academics/students/model"
	counterService "institusiku_backend/internals/features/counters/service"
	paymentModel "institusiku_backend/internals/features/finance/payments/model"
	helper "institusiku_backend/internals/helpers"
)

var validate = validator.New()

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

func parseOptionalUUID(s string) *uuid.UUID {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &id
}

// applyRequest menyalin field request ke model (dipakai Create dan Update).
func applyRequest(m *studentModel.StudentModel, req *dto.StudentRequest) {
	m.StudentFirstName = req.StudentFirstName
	m.StudentFatherName = req.StudentFatherName
	m.StudentLastName = req.StudentLastName
	m.StudentDOB = req.StudentDOB
	m.StudentGender = req.StudentGender
	m.StudentAddress = req.StudentAddress
	m.StudentPhone = req.StudentPhone
	m.StudentParentsPhone = req.StudentParentsPhone
	m.StudentAadhar = req.StudentAadhar
	m.StudentEmail = req.StudentEmail
	m.StudentFormNo = strings.TrimSpace(req.StudentFormNo)
	m.StudentRegistrationNo = req.StudentRegistrationNo
	m.StudentQualification = req.StudentQualification
	m.StudentTiming = req.StudentTiming
	m.StudentAdmissionDate = req.StudentAdmissionDate
	m.StudentExpiryDate = req.StudentExpiryDate
	if req.StudentPaymentStatus != "" {
		m.StudentPaymentStatus = req.StudentPaymentStatus
	}
	m.StudentReference = req.StudentReference
	m.StudentBloodGroup = req.StudentBloodGroup
	m.StudentBatchID = parseOptionalUUID(req.StudentBatchID)
	m.StudentCourseID = parseOptionalUUID(req.StudentCourseID)
	m.StudentFacultyID = parseOptionalUUID(req.StudentFacultyID)

	if len(req.StudentCourseIDs) > 0 {
		m.StudentCourseIDs = req.StudentCourseIDs
	} else if m.StudentCourseID != nil {
		m.StudentCourseIDs = []string{m.StudentCourseID.String()}
	}
}

// savePhotoIfAny menyimpan foto dari field multipart "photo" (opsional).
func (ctrl *StudentController) savePhotoIfAny(c *fiber.Ctx) (string, error) {
	file, err := c.FormFile("photo")
	if err != nil || file == nil {
		return "", nil
	}
	if !constants.IsAllowedPhoto(file.Filename) {
		return "", errors.New("Only image files are allowed (png, jpg, jpeg, gif, webp)")
	}
	return helper.SavePhotoAsWebP(configs.UploadFolder, file)
}

// Create: registrasi siswa baru. Nomor induk numerik diambil dari sequence,
// form no wajib unik.
func (ctrl *StudentController) Create(c *fiber.Ctx) error {
	var req dto.StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "First name and form number are required")
	}

	// Cek form no duplikat lebih dulu supaya pesan errornya jelas.
	var dup int64
	if err := ctrl.DB.Model(&studentModel.StudentModel{}).
		Where("student_form_no = ?", strings.TrimSpace(req.StudentFormNo)).
		Count(&dup).Error; err != nil {
		configs.LogError("students", "Create", req, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to register student")
	}
	if dup > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Form number already exists")
	}

	photo, err := ctrl.savePhotoIfAny(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	seq, err := counterService.NextSequence(ctrl.DB, "student_id")
	if err != nil {
		configs.LogError("students", "Create", nil, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to register student")
	}

	student := studentModel.StudentModel{
		StudentNumericID: seq,
		StudentPhoto:     photo,
	}
	applyRequest(&student, &req)

	if err := ctrl.DB.Create(&student).Error; err != nil {
		configs.LogError("students", "Create", req, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to register student")
	}
	return helper.JsonCreated(c, "Student registered successfully!", student)
}

// GetAll: daftar siswa dengan pencarian (nama / phone / form no) dan filter.
func (ctrl *StudentController) GetAll(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 25, 100)

	query := ctrl.DB.Model(&studentModel.StudentModel{})

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		query = query.Where(
			"LOWER(student_first_name) LIKE ? OR LOWER(student_last_name) LIKE ? OR student_phone LIKE ? OR LOWER(student_form_no) LIKE ?",
			like, like, "%"+q+"%", like,
		)
	}
	if batchID := parseOptionalUUID(c.Query("batch_id")); batchID != nil {
		query = query.Where("student_batch_id = ?", *batchID)
	}
	if courseID := parseOptionalUUID(c.Query("course_id")); courseID != nil {
		query = query.Where("student_course_id = ? OR ? = ANY(student_course_ids)", *courseID, courseID.String())
	}
	if status := strings.TrimSpace(c.Query("payment_status")); status != "" {
		query = query.Where("student_payment_status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		configs.LogError("students", "GetAll", nil, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch students")
	}

	var students []studentModel.StudentModel
	if err := query.Order("student_numeric_id DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&students).Error; err != nil {
		configs.LogError("students", "GetAll", nil, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch students")
	}
	return helper.JsonList(c, "Students fetched", students, helper.BuildPagination(p, total))
}

func (ctrl *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}
	var student studentModel.StudentModel
	if err := ctrl.DB.First(&student, "student_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}
	return helper.JsonOK(c, "Student fetched", student)
}

func (ctrl *StudentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}
	var student studentModel.StudentModel
	if err := ctrl.DB.First(&student, "student_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	var req dto.StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "First name and form number are required")
	}

	// Form no tetap unik, kecuali milik siswa yang sama.
	var dup int64
	if err := ctrl.DB.Model(&studentModel.StudentModel{}).
		Where("student_form_no = ? AND student_id <> ?", strings.TrimSpace(req.StudentFormNo), id).
		Count(&dup).Error; err != nil {
		configs.LogError("students", "Update", req, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update student")
	}
	if dup > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Form number already exists")
	}

	photo, err := ctrl.savePhotoIfAny(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if photo != "" {
		student.StudentPhoto = photo
	}

	applyRequest(&student, &req)
	if err := ctrl.DB.Save(&student).Error; err != nil {
		configs.LogError("students", "Update", req, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update student")
	}
	return helper.JsonUpdated(c, "Student updated successfully!", student)
}

func (ctrl *StudentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}
	var student studentModel.StudentModel
	if err := ctrl.DB.First(&student, "student_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}
	if err := ctrl.DB.Delete(&student).Error; err != nil {
		configs.LogError("students", "Delete", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete student")
	}
	return helper.JsonDeleted(c, "Student deleted successfully!", fiber.Map{"student_id": id})
}

// GenderwiseReport: rekap jumlah siswa per gender, plus rincian per batch.
func (ctrl *StudentController) GenderwiseReport(c *fiber.Ctx) error {
	type genderCount struct {
		Gender string `json:"gender"`
		Total  int64  `json:"total"`
	}
	var overall []genderCount
	if err := ctrl.DB.Model(&studentModel.StudentModel{}).
		Select("COALESCE(NULLIF(student_gender, ''), 'unknown') AS gender, COUNT(*) AS total").
		Group("gender").
		Scan(&overall).Error; err != nil {
		configs.LogError("students", "GenderwiseReport", nil, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build report")
	}

	type batchGenderCount struct {
		BatchID *uuid.UUID `json:"batch_id"`
		Gender  string     `json:"gender"`
		Total   int64      `json:"total"`
	}
	var perBatch []batchGenderCount
	if err := ctrl.DB.Model(&studentModel.StudentModel{}).
		Select("student_batch_id AS batch_id, COALESCE(NULLIF(student_gender, ''), 'unknown') AS gender, COUNT(*) AS total").
		Group("student_batch_id, gender").
		Scan(&perBatch).Error; err != nil {
		configs.LogError("students", "GenderwiseReport", nil, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build report")
	}

	return helper.JsonOK(c, "Genderwise report", fiber.Map{
		"overall":   overall,
		"per_batch": perBatch,
	})
}

// Balance: sisa tagihan satu siswa = total fee kursus terdaftar - total bayar.
func (ctrl *StudentController) Balance(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}
	var student studentModel.StudentModel
	if err := ctrl.DB.First(&student, "student_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	expected, err := ctrl.expectedFees(&student)
	if err != nil {
		configs.LogError("students", "Balance", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute balance")
	}

	var paid decimal.NullDecimal
	if err := ctrl.DB.Model(&paymentModel.PaymentModel{}).
		Select("COALESCE(SUM(payment_amount), 0)").
		Where("payment_student_id = ?", id).
		Scan(&paid).Error; err != nil {
		configs.LogError("students", "Balance", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute balance")
	}

	paidAmount := decimal.Zero
	if paid.Valid {
		paidAmount = paid.Decimal
	}
	return helper.JsonOK(c, "Balance computed", fiber.Map{
		"student_id":   student.StudentID,
		"student_name": student.FullName(),
		"total_fees":   expected,
		"total_paid":   paidAmount,
		"balance":      expected.Sub(paidAmount),
	})
}

// expectedFees menjumlahkan fee semua kursus terdaftar (list multi-kursus
// bila ada, fallback ke kursus utama).
func (ctrl *StudentController) expectedFees(student *studentModel.StudentModel) (decimal.Decimal, error) {
	courseIDs := make([]string, 0, len(student.StudentCourseIDs))
	courseIDs = append(courseIDs, student.StudentCourseIDs...)
	if len(courseIDs) == 0 && student.StudentCourseID != nil {
		courseIDs = append(courseIDs, student.StudentCourseID.String())
	}
	if len(courseIDs) == 0 {
		return decimal.Zero, nil
	}

	var sum decimal.NullDecimal
	err := ctrl.DB.Model(&courseModel.CourseModel{}).
		Select("COALESCE(SUM(course_fee), 0)").
		Where("course_id IN ?", courseIDs).
		Scan(&sum).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !sum.Valid {
		return decimal.Zero, nil
	}
	return sum.Decimal, nil
}
