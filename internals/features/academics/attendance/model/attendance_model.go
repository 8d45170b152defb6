package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	AttendanceStatusPresent = "present"
	AttendanceStatusAbsent  = "absent"
	AttendanceStatusLeave   = "leave"
)

// AttendanceModel: absensi siswa per batch per tanggal.
// Upsert key: (date, batch, student) — simpan ulang menimpa, bukan duplikat.
type AttendanceModel struct {
	AttendanceID        uuid.UUID `gorm:"column:attendance_id;type:uuid;default:gen_random_uuid();primaryKey" json:"attendance_id"`
	AttendanceDate      string    `gorm:"column:attendance_date;type:varchar(10);not null;uniqueIndex:uq_attendance_day,priority:1" json:"attendance_date"` // yyyy-mm-dd
	AttendanceBatchID   uuid.UUID `gorm:"column:attendance_batch_id;type:uuid;not null;uniqueIndex:uq_attendance_day,priority:2" json:"attendance_batch_id"`
	AttendanceStudentID uuid.UUID `gorm:"column:attendance_student_id;type:uuid;not null;uniqueIndex:uq_attendance_day,priority:3" json:"attendance_student_id"`
	AttendanceStatus    string    `gorm:"column:attendance_status;type:varchar(10);not null;default:absent" json:"attendance_status"`

	UpdatedAt time.Time `gorm:"column:attendance_updated_at;autoUpdateTime" json:"attendance_updated_at"`
}

func (AttendanceModel) TableName() string { return "attendances" }

// TeacherHourModel: catatan jam mengajar per pengajar, sumber agregasi
// gaji mode jam (dijumlah per bulan kalender).
type TeacherHourModel struct {
	TeacherHourID        uuid.UUID       `gorm:"column:teacher_hour_id;type:uuid;default:gen_random_uuid();primaryKey" json:"teacher_hour_id"`
	TeacherHourFacultyID uuid.UUID       `gorm:"column:teacher_hour_faculty_id;type:uuid;not null;index" json:"teacher_hour_faculty_id"`
	TeacherHourDate      time.Time       `gorm:"column:teacher_hour_date;not null;index" json:"teacher_hour_date"`
	TeacherHourHours     decimal.Decimal `gorm:"column:teacher_hour_hours;type:decimal(6,2);not null;default:0" json:"teacher_hour_hours"`
	TeacherHourNote      string          `gorm:"column:teacher_hour_note;type:varchar(200)" json:"teacher_hour_note"`

	CreatedAt time.Time `gorm:"column:teacher_hour_created_at;autoCreateTime" json:"teacher_hour_created_at"`
}

func (TeacherHourModel) TableName() string { return "teacher_hours" }
