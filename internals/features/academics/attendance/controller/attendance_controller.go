package controller

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"institusiku_backend/internals/configs"
	attendanceModel "institusiku_backend/internals/features/academics/attendance/model"
	batchModel "institusiku_backend/internals/features/academics/batches/model"
	studentModel "institusiku_backend/internals/features/academics/students/model"
	helper "institusiku_backend/internals/helpers"
)

var validate = validator.New()

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

type attendanceEntry struct {
	StudentID string `json:"student_id" validate:"required,uuid"`
	Status    string `json:"status" validate:"required,oneof=present absent leave"`
}

type saveAttendanceRequest struct {
	Date    string            `json:"date" validate:"required,datetime=2006-01-02"`
	BatchID string            `json:"batch_id" validate:"required,uuid"`
	Entries []attendanceEntry `json:"entries" validate:"required,min=1,dive"`
}

// Register: daftar siswa satu batch + status absensi tanggal tsb (bila sudah
// pernah disimpan). Dipakai halaman isi absen.
func (ctrl *AttendanceController) Register(c *fiber.Ctx) error {
	batchID, err := uuid.Parse(c.Query("batch_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "batch_id is required")
	}
	date := strings.TrimSpace(c.Query("date"))
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD.")
	}

	var batch batchModel.BatchModel
	if err := ctrl.DB.First(&batch, "batch_id = ?", batchID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Batch not found")
	}

	var students []studentModel.StudentModel
	if err := ctrl.DB.Where("student_batch_id = ?", batchID).
		Order("student_first_name ASC").
		Find(&students).Error; err != nil {
		configs.LogError("attendance", "Register", batchID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch batch students")
	}

	var existing []attendanceModel.AttendanceModel
	if err := ctrl.DB.Where("attendance_batch_id = ? AND attendance_date = ?", batchID, date).
		Find(&existing).Error; err != nil {
		configs.LogError("attendance", "Register", batchID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attendance")
	}
	statusByStudent := make(map[uuid.UUID]string, len(existing))
	for _, a := range existing {
		statusByStudent[a.AttendanceStudentID] = a.AttendanceStatus
	}

	rows := make([]fiber.Map, 0, len(students))
	for _, s := range students {
		status, ok := statusByStudent[s.StudentID]
		if !ok {
			status = attendanceModel.AttendanceStatusAbsent
		}
		rows = append(rows, fiber.Map{
			"student_id":   s.StudentID,
			"student_name": s.FullName(),
			"form_no":      s.StudentFormNo,
			"status":       status,
			"marked":       ok,
		})
	}
	return helper.JsonOK(c, "Attendance register", fiber.Map{
		"batch_id":    batch.BatchID,
		"batch_title": batch.BatchTitle,
		"date":        date,
		"students":    rows,
	})
}

// Save: simpan absen satu batch satu tanggal. Upsert per (date, batch,
// student), kirim ulang menimpa status lama.
func (ctrl *AttendanceController) Save(c *fiber.Ctx) error {
	var req saveAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "date, batch_id and entries are required")
	}
	batchID, err := uuid.Parse(req.BatchID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid batch id")
	}

	rows := make([]attendanceModel.AttendanceModel, 0, len(req.Entries))
	for _, e := range req.Entries {
		studentID, err := uuid.Parse(e.StudentID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id in entries")
		}
		rows = append(rows, attendanceModel.AttendanceModel{
			AttendanceDate:      req.Date,
			AttendanceBatchID:   batchID,
			AttendanceStudentID: studentID,
			AttendanceStatus:    e.Status,
		})
	}

	err = ctrl.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "attendance_date"},
			{Name: "attendance_batch_id"},
			{Name: "attendance_student_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"attendance_status", "attendance_updated_at"}),
	}).Create(&rows).Error
	if err != nil {
		configs.LogError("attendance", "Save", req, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save attendance")
	}
	return helper.JsonOK(c, "Attendance saved successfully!", fiber.Map{
		"date":     req.Date,
		"batch_id": batchID,
		"saved":    len(rows),
	})
}

// History: rekap absen satu batch dalam rentang bulan (?month=YYYY-MM).
func (ctrl *AttendanceController) History(c *fiber.Ctx) error {
	batchID, err := uuid.Parse(c.Query("batch_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "batch_id is required")
	}
	year, month, err := helper.ParseMonth(c.Query("month", time.Now().Format("2006-01")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	rows, dates, students, err := ctrl.monthMatrix(batchID, year, month)
	if err != nil {
		configs.LogError("attendance", "History", batchID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attendance history")
	}
	return helper.JsonOK(c, "Attendance history", fiber.Map{
		"batch_id": batchID,
		"month":    helper.MonthString(year, month),
		"dates":    dates,
		"students": students,
		"records":  rows,
	})
}

// View: absensi mentah per tanggal (?batch_id=&date=).
func (ctrl *AttendanceController) View(c *fiber.Ctx) error {
	batchID, err := uuid.Parse(c.Query("batch_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "batch_id is required")
	}
	date := strings.TrimSpace(c.Query("date"))
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD.")
	}

	var records []attendanceModel.AttendanceModel
	if err := ctrl.DB.Where("attendance_batch_id = ? AND attendance_date = ?", batchID, date).
		Find(&records).Error; err != nil {
		configs.LogError("attendance", "View", batchID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attendance")
	}
	return helper.JsonOK(c, "Attendance fetched", records)
}

// BatchStudents: daftar ringkas siswa satu batch (untuk dropdown absen).
func (ctrl *AttendanceController) BatchStudents(c *fiber.Ctx) error {
	batchID, err := uuid.Parse(c.Params("batch_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid batch id")
	}
	var students []studentModel.StudentModel
	if err := ctrl.DB.Where("student_batch_id = ?", batchID).
		Order("student_first_name ASC").
		Find(&students).Error; err != nil {
		configs.LogError("attendance", "BatchStudents", batchID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch batch students")
	}

	rows := make([]fiber.Map, 0, len(students))
	for _, s := range students {
		rows = append(rows, fiber.Map{
			"student_id":   s.StudentID,
			"student_name": s.FullName(),
			"form_no":      s.StudentFormNo,
		})
	}
	return helper.JsonOK(c, "Batch students", rows)
}

// ExportXLSX: unduh rekap absen bulanan satu batch sebagai file Excel.
func (ctrl *AttendanceController) ExportXLSX(c *fiber.Ctx) error {
	batchID, err := uuid.Parse(c.Query("batch_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "batch_id is required")
	}
	year, month, err := helper.ParseMonth(c.Query("month", time.Now().Format("2006-01")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var batch batchModel.BatchModel
	if err := ctrl.DB.First(&batch, "batch_id = ?", batchID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Batch not found")
	}

	statusByKey, dates, students, err := ctrl.monthMatrix(batchID, year, month)
	if err != nil {
		configs.LogError("attendance", "ExportXLSX", batchID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to export attendance")
	}

	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Attendance"
	f.SetSheetName(f.GetSheetName(0), sheet)

	// Header: Nama siswa lalu satu kolom per tanggal.
	_ = f.SetCellValue(sheet, "A1", "Student")
	for i, d := range dates {
		cell, _ := excelize.CoordinatesToCellName(i+2, 1)
		_ = f.SetCellValue(sheet, cell, d)
	}
	for r, s := range students {
		cell, _ := excelize.CoordinatesToCellName(1, r+2)
		_ = f.SetCellValue(sheet, cell, s.FullName())
		for i, d := range dates {
			cell, _ := excelize.CoordinatesToCellName(i+2, r+2)
			status := statusByKey[d+"|"+s.StudentID.String()]
			if status == "" {
				status = "-"
			}
			_ = f.SetCellValue(sheet, cell, strings.ToUpper(status[:1]))
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		configs.LogError("attendance", "ExportXLSX", batchID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to export attendance")
	}

	filename := fmt.Sprintf("attendance_%s_%s.xlsx", batch.BatchTitle, helper.MonthString(year, month))
	filename = strings.ReplaceAll(filename, " ", "_")
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

// monthMatrix mengambil absen sebulan: map "date|student_id" -> status,
// daftar tanggal yang punya data, dan daftar siswa batch.
func (ctrl *AttendanceController) monthMatrix(batchID uuid.UUID, year, month int) (map[string]string, []string, []studentModel.StudentModel, error) {
	start, end := helper.MonthDateRange(year, month)

	var records []attendanceModel.AttendanceModel
	err := ctrl.DB.Where(
		"attendance_batch_id = ? AND attendance_date BETWEEN ? AND ?",
		batchID, start.Format("2006-01-02"), end.Format("2006-01-02"),
	).Order("attendance_date ASC").Find(&records).Error
	if err != nil {
		return nil, nil, nil, err
	}

	statusByKey := make(map[string]string, len(records))
	seenDates := map[string]bool{}
	dates := []string{}
	for _, r := range records {
		statusByKey[r.AttendanceDate+"|"+r.AttendanceStudentID.String()] = r.AttendanceStatus
		if !seenDates[r.AttendanceDate] {
			seenDates[r.AttendanceDate] = true
			dates = append(dates, r.AttendanceDate)
		}
	}

	var students []studentModel.StudentModel
	err = ctrl.DB.Where("student_batch_id = ?", batchID).
		Order("student_first_name ASC").
		Find(&students).Error
	if err != nil {
		return nil, nil, nil, err
	}
	return statusByKey, dates, students, nil
}
