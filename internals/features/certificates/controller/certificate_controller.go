package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"institusiku_backend/internals/configs"
	courseModel "institusiku_backend/internals/features/academics/courses/model"
	studentModel "institusiku_backend/internals/features/academics/students/model"
	helper "institusiku_backend/internals/helpers"
)

var validate = validator.New()

// Sertifikat tidak disimpan: payload cetak dibangun on-the-fly dari data
// siswa + kursus (atau input manual).
type CertificateController struct {
	DB *gorm.DB
}

func NewCertificateController(db *gorm.DB) *CertificateController {
	return &CertificateController{DB: db}
}

type manualCertificateRequest struct {
	StudentName string `json:"student_name" validate:"required,min=1,max=160"`
	FatherName  string `json:"father_name" validate:"omitempty,max=80"`
	CourseName  string `json:"course_name" validate:"required,min=1,max=120"`
	Duration    string `json:"duration" validate:"omitempty,max=60"`
	Grade       string `json:"grade" validate:"omitempty,max=20"`
	IssueDate   string `json:"issue_date" validate:"omitempty,datetime=2006-01-02"`
}

// BuildManual: payload sertifikat dari input bebas (siswa lama yang sudah
// tidak ada di data master).
func (ctrl *CertificateController) BuildManual(c *fiber.Ctx) error {
	var req manualCertificateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Student name and course name are required")
	}

	issueDate := req.IssueDate
	if issueDate == "" {
		issueDate = time.Now().Format("2006-01-02")
	}
	return helper.JsonOK(c, "Certificate data", fiber.Map{
		"student_name": req.StudentName,
		"father_name":  req.FatherName,
		"course_name":  req.CourseName,
		"duration":     req.Duration,
		"grade":        req.Grade,
		"issue_date":   issueDate,
	})
}

// ByStudent: payload sertifikat dari data siswa terdaftar.
func (ctrl *CertificateController) ByStudent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}
	var student studentModel.StudentModel
	if err := ctrl.DB.First(&student, "student_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	var courseName, duration string
	if student.StudentCourseID != nil {
		var course courseModel.CourseModel
		if err := ctrl.DB.First(&course, "course_id = ?", *student.StudentCourseID).Error; err == nil {
			courseName = course.CourseName
			if course.CourseDurationMonths > 0 {
				duration = helper.MonthsLabel(course.CourseDurationMonths)
			}
		}
	}

	return helper.JsonOK(c, "Certificate data", fiber.Map{
		"student_id":     student.StudentID,
		"student_name":   student.FullName(),
		"father_name":    student.StudentFatherName,
		"form_no":        student.StudentFormNo,
		"course_name":    courseName,
		"duration":       duration,
		"admission_date": student.StudentAdmissionDate,
		"issue_date":     time.Now().Format("2006-01-02"),
	})
}

// StudentsAutocomplete: pencarian ringan untuk form pilih siswa.
func (ctrl *CertificateController) StudentsAutocomplete(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	query := ctrl.DB.Model(&studentModel.StudentModel{})
	if q != "" {
		like := "%" + strings.ToLower(q) + "%"
		query = query.Where(
			"LOWER(student_first_name) LIKE ? OR LOWER(student_last_name) LIKE ? OR LOWER(student_form_no) LIKE ?",
			like, like, like,
		)
	}

	var students []studentModel.StudentModel
	if err := query.Order("student_first_name ASC").Limit(20).Find(&students).Error; err != nil {
		configs.LogError("certificates", "StudentsAutocomplete", q, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to search students")
	}

	rows := make([]fiber.Map, 0, len(students))
	for _, s := range students {
		rows = append(rows, fiber.Map{
			"student_id":   s.StudentID,
			"student_name": s.FullName(),
			"form_no":      s.StudentFormNo,
		})
	}
	return helper.JsonOK(c, "Students", rows)
}
