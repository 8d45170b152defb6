package route

import (
	authCtrl "institusiku_backend/internals/features/users/auth/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PublicAuthRoutes: endpoint tanpa token (login). Daftarkan SEBELUM
// middleware auth dipasang supaya tidak ikut terproteksi.
func PublicAuthRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := authCtrl.NewAuthController(db)
	public.Post("/auth/login", ctrl.Login)
}

// ProtectedAuthRoutes: endpoint auth yang butuh token.
func ProtectedAuthRoutes(protected fiber.Router, db *gorm.DB) {
	ctrl := authCtrl.NewAuthController(db)
	protected.Post("/auth/logout", ctrl.Logout)
}
