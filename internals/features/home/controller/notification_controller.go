package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"institusiku_backend/internals/configs"
	courseModel "institusiku_backend/internals/features/academics/courses/model"
	studentModel "institusiku_backend/internals/features/academics/students/model"
	paymentModel "institusiku_backend/internals/features/finance/payments/model"
	helper "institusiku_backend/internals/helpers"
)

// Masa tenggang notifikasi kedaluwarsa pendaftaran.
const expiryWindowDays = 14

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

type feesDueItem struct {
	StudentID   uuid.UUID       `json:"student_id"`
	StudentName string          `json:"student_name"`
	Phone       string          `json:"phone"`
	TotalFees   decimal.Decimal `json:"total_fees"`
	TotalPaid   decimal.Decimal `json:"total_paid"`
	Balance     decimal.Decimal `json:"balance"`
}

type expiryItem struct {
	StudentID   uuid.UUID `json:"student_id"`
	StudentName string    `json:"student_name"`
	ExpiryDate  string    `json:"expiry_date"`
	DaysLeft    int       `json:"days_left"`
}

// feesDue: siswa berstatus paying yang masih punya sisa tagihan.
func (ctrl *NotificationController) feesDue() ([]feesDueItem, error) {
	var students []studentModel.StudentModel
	if err := ctrl.DB.Where("student_payment_status = ?", "paying").
		Find(&students).Error; err != nil {
		return nil, err
	}

	var courses []courseModel.CourseModel
	if err := ctrl.DB.Find(&courses).Error; err != nil {
		return nil, err
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
		return nil, err
	}
	paidByStudent := make(map[uuid.UUID]decimal.Decimal, len(paidRows))
	for _, r := range paidRows {
		paidByStudent[r.StudentID] = r.Paid
	}

	items := []feesDueItem{}
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
		balance := expected.Sub(paid)
		if balance.IsPositive() {
			items = append(items, feesDueItem{
				StudentID:   s.StudentID,
				StudentName: s.FullName(),
				Phone:       s.StudentPhone,
				TotalFees:   expected,
				TotalPaid:   paid,
				Balance:     balance,
			})
		}
	}
	return items, nil
}

// expiringSoon: pendaftaran yang habis dalam expiryWindowDays ke depan
// (termasuk yang sudah lewat tapi belum ditindak).
func (ctrl *NotificationController) expiringSoon() ([]expiryItem, error) {
	var students []studentModel.StudentModel
	if err := ctrl.DB.Where("student_expiry_date <> ''").Find(&students).Error; err != nil {
		return nil, err
	}

	today := time.Now().Truncate(24 * time.Hour)
	items := []expiryItem{}
	for _, s := range students {
		expiry, err := time.Parse("2006-01-02", s.StudentExpiryDate)
		if err != nil {
			continue
		}
		daysLeft := int(expiry.Sub(today).Hours() / 24)
		if daysLeft <= expiryWindowDays {
			items = append(items, expiryItem{
				StudentID:   s.StudentID,
				StudentName: s.FullName(),
				ExpiryDate:  s.StudentExpiryDate,
				DaysLeft:    daysLeft,
			})
		}
	}
	return items, nil
}

// List: semua notifikasi (tagihan + kedaluwarsa).
func (ctrl *NotificationController) List(c *fiber.Ctx) error {
	fees, err := ctrl.feesDue()
	if err != nil {
		configs.LogError("home", "Notifications", nil, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch notifications")
	}
	expiring, err := ctrl.expiringSoon()
	if err != nil {
		configs.LogError("home", "Notifications", nil, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch notifications")
	}
	return helper.JsonOK(c, "Notifications", fiber.Map{
		"fees_due":      fees,
		"expiring_soon": expiring,
	})
}

// Count: badge angka notifikasi untuk navbar.
func (ctrl *NotificationController) Count(c *fiber.Ctx) error {
	fees, err := ctrl.feesDue()
	if err != nil {
		configs.LogError("home", "NotificationCount", nil, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch notification count")
	}
	expiring, err := ctrl.expiringSoon()
	if err != nil {
		configs.LogError("home", "NotificationCount", nil, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch notification count")
	}
	return helper.JsonOK(c, "Notification count", fiber.Map{
		"count": len(fees) + len(expiring),
	})
}
