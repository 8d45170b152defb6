package route

import (
	studentCtrl "institusiku_backend/internals/features/academics/students/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func StudentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := studentCtrl.NewStudentController(db)

	api.Get("/reports/students", ctrl.Report)

	group := api.Group("/students")
	group.Get("/", ctrl.GetAll)
	group.Post("/", ctrl.Create)
	group.Get("/reports/genderwise", ctrl.GenderwiseReport)
	group.Get("/:id", ctrl.GetByID)
	group.Get("/:id/balance", ctrl.Balance)
	group.Put("/:id", ctrl.Update)
	group.Delete("/:id", ctrl.Delete)
}
