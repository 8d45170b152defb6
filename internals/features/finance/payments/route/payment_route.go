package route

import (
	paymentCtrl "institusiku_backend/internals/features/finance/payments/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func PaymentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := paymentCtrl.NewPaymentController(db)

	group := api.Group("/payments")
	group.Get("/", ctrl.GetAll)
	group.Post("/", ctrl.Create)
	group.Get("/students", ctrl.StudentsWithBalances)
	group.Get("/report", ctrl.Report)
	group.Get("/today", ctrl.TodaySummary)
	group.Get("/receipt/:receipt_no", ctrl.Receipt)
	group.Get("/:id", ctrl.GetByID)
}
