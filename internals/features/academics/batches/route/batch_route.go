package route

import (
	batchCtrl "institusiku_backend/internals/features/academics/batches/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func BatchRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := batchCtrl.NewBatchController(db)

	group := api.Group("/batches")
	group.Get("/", ctrl.GetAll)
	group.Post("/", ctrl.Create)
	group.Get("/:id", ctrl.GetByID)
	group.Put("/:id", ctrl.Update)
	group.Delete("/:id", ctrl.Delete)
}
