package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "institusiku_backend/internals/features/academics/attendance/route"
	batchRoute "institusiku_backend/internals/features/academics/batches/route"
	courseRoute "institusiku_backend/internals/features/academics/courses/route"
	facultyRoute "institusiku_backend/internals/features/academics/faculties/route"
	studentRoute "institusiku_backend/internals/features/academics/students/route"
	certificateRoute "institusiku_backend/internals/features/certificates/route"
	accountingRoute "institusiku_backend/internals/features/finance/accounting/route"
	paymentRoute "institusiku_backend/internals/features/finance/payments/route"
	salaryRoute "institusiku_backend/internals/features/finance/salaries/route"
	homeRoute "institusiku_backend/internals/features/home/route"
	authRoute "institusiku_backend/internals/features/users/auth/route"
	userRoute "institusiku_backend/internals/features/users/user/route"
	authMiddleware "institusiku_backend/internals/middlewares/auth"
)

// SetupRoutes mendaftarkan seluruh endpoint. Login publik, sisanya di
// belakang AuthMiddleware.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Rute publik harus terdaftar lebih dulu: middleware group /api kedua
	// ikut menyaring semua request berprefix sama yang datang setelahnya.
	public := app.Group("/api")
	authRoute.PublicAuthRoutes(public, db)

	protected := app.Group("/api", authMiddleware.AuthMiddleware(db))
	authRoute.ProtectedAuthRoutes(protected, db)

	homeRoute.HomeRoutes(protected, db)
	userRoute.UserRoutes(protected, db)

	batchRoute.BatchRoutes(protected, db)
	courseRoute.CourseRoutes(protected, db)
	facultyRoute.FacultyRoutes(protected, db)
	studentRoute.StudentRoutes(protected, db)
	attendanceRoute.AttendanceRoutes(protected, db)

	paymentRoute.PaymentRoutes(protected, db)
	salaryRoute.SalaryRoutes(protected, db)
	accountingRoute.AccountingRoutes(protected, db)

	certificateRoute.CertificateRoutes(protected, db)
}
