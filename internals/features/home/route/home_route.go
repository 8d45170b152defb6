package route

import (
	homeCtrl "institusiku_backend/internals/features/home/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func HomeRoutes(api fiber.Router, db *gorm.DB) {
	dashboard := homeCtrl.NewDashboardController(db)
	api.Get("/dashboard", dashboard.Stats)
	api.Get("/dashboard/years", dashboard.Years)

	notif := homeCtrl.NewNotificationController(db)
	group := api.Group("/notifications")
	group.Get("/", notif.List)
	group.Get("/count", notif.Count)
}
