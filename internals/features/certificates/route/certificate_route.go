package route

import (
	certificateCtrl "institusiku_backend/internals/features/certificates/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CertificateRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := certificateCtrl.NewCertificateController(db)

	group := api.Group("/certificates")
	group.Post("/manual", ctrl.BuildManual)
	group.Get("/students", ctrl.StudentsAutocomplete)
	group.Get("/student/:id", ctrl.ByStudent)
}
