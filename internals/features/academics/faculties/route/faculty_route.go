package route

import (
	facultyCtrl "institusiku_backend/internals/features/academics/faculties/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func FacultyRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := facultyCtrl.NewFacultyController(db)

	group := api.Group("/faculties")
	group.Get("/", ctrl.GetAll)
	group.Post("/", ctrl.Create)
	group.Get("/:id", ctrl.GetByID)
	group.Put("/:id", ctrl.Update)
	group.Delete("/:id", ctrl.Delete)
}
