package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type StudentModel struct {
	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`

	// Nomor urut numerik (sequence "student_id") — dipertahankan untuk
	// kompatibilitas nomor induk lama.
	StudentNumericID int64 `gorm:"column:student_numeric_id;uniqueIndex;not null" json:"student_numeric_id"`

	StudentFirstName  string `gorm:"column:student_first_name;type:varchar(80);not null" json:"student_first_name"`
	StudentFatherName string `gorm:"column:student_father_name;type:varchar(80)" json:"student_father_name"`
	StudentLastName   string `gorm:"column:student_last_name;type:varchar(80)" json:"student_last_name"`
	StudentDOB        string `gorm:"column:student_dob;type:varchar(10)" json:"student_dob"` // yyyy-mm-dd
	StudentGender     string `gorm:"column:student_gender;type:varchar(10)" json:"student_gender"`
	StudentAddress    string `gorm:"column:student_address;type:text" json:"student_address"`
	StudentPhone      string `gorm:"column:student_phone;type:varchar(20)" json:"student_phone"`
	StudentParentsPhone string `gorm:"column:student_parents_phone;type:varchar(20)" json:"student_parents_phone"`
	StudentAadhar     string `gorm:"column:student_aadhar;type:varchar(20)" json:"student_aadhar"`
	StudentEmail      string `gorm:"column:student_email;type:varchar(120)" json:"student_email"`

	// Form no diisi manual oleh operator dan wajib unik.
	StudentFormNo         string `gorm:"column:student_form_no;type:varchar(40);uniqueIndex;not null" json:"student_form_no"`
	StudentRegistrationNo string `gorm:"column:student_registration_no;type:varchar(20)" json:"student_registration_no"`

	StudentQualification string `gorm:"column:student_qualification;type:varchar(120)" json:"student_qualification"`
	StudentTiming        string `gorm:"column:student_timing;type:varchar(60)" json:"student_timing"`
	StudentAdmissionDate string `gorm:"column:student_admission_date;type:varchar(10)" json:"student_admission_date"` // yyyy-mm-dd
	StudentExpiryDate    string `gorm:"column:student_expiry_date;type:varchar(10)" json:"student_expiry_date"`       // yyyy-mm-dd
	StudentPaymentStatus string `gorm:"column:student_payment_status;type:varchar(20);default:paying" json:"student_payment_status"`
	StudentReference     string `gorm:"column:student_reference;type:varchar(120)" json:"student_reference"`
	StudentBloodGroup    string `gorm:"column:student_blood_group;type:varchar(5)" json:"student_blood_group"`
	StudentPhoto         string `gorm:"column:student_photo;type:varchar(200)" json:"student_photo"`

	StudentBatchID   *uuid.UUID `gorm:"column:student_batch_id;type:uuid;index" json:"student_batch_id,omitempty"`
	StudentCourseID  *uuid.UUID `gorm:"column:student_course_id;type:uuid;index" json:"student_course_id,omitempty"`
	StudentFacultyID *uuid.UUID `gorm:"column:student_faculty_id;type:uuid;index" json:"student_faculty_id,omitempty"`

	// Siswa bisa terdaftar di lebih dari satu kursus (field lama single
	// course tetap ada di atas sebagai kursus utama).
	StudentCourseIDs pq.StringArray `gorm:"column:student_course_ids;type:text[]" json:"student_course_ids,omitempty"`

	CreatedAt time.Time `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	UpdatedAt time.Time `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at"`
}

func (StudentModel) TableName() string { return "students" }

func (s *StudentModel) FullName() string {
	name := s.StudentFirstName
	if s.StudentLastName != "" {
		name += " " + s.StudentLastName
	}
	return name
}
