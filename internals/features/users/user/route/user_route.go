package route

import (
	userCtrl "institusiku_backend/internals/features/users/user/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func UserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := userCtrl.NewUserController(db)

	group := api.Group("/profile")
	group.Get("/", ctrl.Profile)
	group.Put("/", ctrl.UpdateProfile)
	group.Put("/settings", ctrl.UpdateSettings)
}
