package route

import (
	salaryCtrl "institusiku_backend/internals/features/finance/salaries/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SalaryRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := salaryCtrl.NewSalaryController(db)

	group := api.Group("/salaries")
	group.Get("/", ctrl.GetAll)
	group.Post("/hours/generate", ctrl.GenerateHours)
	group.Post("/hours/save", ctrl.SaveHours)
	group.Post("/days/generate", ctrl.GenerateDays)
	group.Get("/:id", ctrl.GetByID)
	group.Put("/:id", ctrl.Update)
	group.Delete("/:id", ctrl.Delete)
}
