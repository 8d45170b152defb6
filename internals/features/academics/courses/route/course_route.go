package route

import (
	courseCtrl "institusiku_backend/internals/features/academics/courses/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CourseRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := courseCtrl.NewCourseController(db)

	group := api.Group("/courses")
	group.Get("/", ctrl.GetAll)
	group.Post("/", ctrl.Create)
	group.Get("/:id", ctrl.GetByID)
	group.Put("/:id", ctrl.Update)
	group.Delete("/:id", ctrl.Delete)
}
