package dto

// StudentRequest dipakai create dan update. Dikirim sebagai multipart form
// (foto ikut di field "photo") atau JSON biasa tanpa foto.
type StudentRequest struct {
	StudentFirstName    string `json:"student_first_name" form:"student_first_name" validate:"required,min=1,max=80"`
	StudentFatherName   string `json:"student_father_name" form:"student_father_name" validate:"omitempty,max=80"`
	StudentLastName     string `json:"student_last_name" form:"student_last_name" validate:"omitempty,max=80"`
	StudentDOB          string `json:"student_dob" form:"student_dob" validate:"omitempty,datetime=2006-01-02"`
	StudentGender       string `json:"student_gender" form:"student_gender" validate:"omitempty,oneof=male female other"`
	StudentAddress      string `json:"student_address" form:"student_address"`
	StudentPhone        string `json:"student_phone" form:"student_phone" validate:"omitempty,max=20"`
	StudentParentsPhone string `json:"student_parents_phone" form:"student_parents_phone" validate:"omitempty,max=20"`
	StudentAadhar       string `json:"student_aadhar" form:"student_aadhar" validate:"omitempty,max=20"`
	StudentEmail        string `json:"student_email" form:"student_email" validate:"omitempty,email"`

	StudentFormNo         string `json:"student_form_no" form:"student_form_no" validate:"required,min=1,max=40"`
	StudentRegistrationNo string `json:"student_registration_no" form:"student_registration_no" validate:"omitempty,max=20"`

	StudentQualification string `json:"student_qualification" form:"student_qualification"`
	StudentTiming        string `json:"student_timing" form:"student_timing"`
	StudentAdmissionDate string `json:"student_admission_date" form:"student_admission_date" validate:"omitempty,datetime=2006-01-02"`
	StudentExpiryDate    string `json:"student_expiry_date" form:"student_expiry_date" validate:"omitempty,datetime=2006-01-02"`
	StudentPaymentStatus string `json:"student_payment_status" form:"student_payment_status" validate:"omitempty,oneof=paying completed dropped"`
	StudentReference     string `json:"student_reference" form:"student_reference"`
	StudentBloodGroup    string `json:"student_blood_group" form:"student_blood_group" validate:"omitempty,max=5"`

	StudentBatchID   string   `json:"student_batch_id" form:"student_batch_id" validate:"omitempty,uuid"`
	StudentCourseID  string   `json:"student_course_id" form:"student_course_id" validate:"omitempty,uuid"`
	StudentFacultyID string   `json:"student_faculty_id" form:"student_faculty_id" validate:"omitempty,uuid"`
	StudentCourseIDs []string `json:"student_course_ids" form:"student_course_ids" validate:"omitempty,dive,uuid"`
}
