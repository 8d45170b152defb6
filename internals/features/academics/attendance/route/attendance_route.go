package route

import (
	attendanceCtrl "institusiku_backend/internals/features/academics/attendance/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AttendanceRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := attendanceCtrl.NewAttendanceController(db)

	group := api.Group("/attendance")
	group.Get("/register", ctrl.Register)
	group.Post("/save", ctrl.Save)
	group.Get("/history", ctrl.History)
	group.Get("/view", ctrl.View)
	group.Get("/export", ctrl.ExportXLSX)
	group.Get("/batch/:batch_id/students", ctrl.BatchStudents)

	// Jam mengajar (sumber gaji mode jam)
	th := attendanceCtrl.NewTeacherHourController(db)
	thGroup := api.Group("/teacher-hours")
	thGroup.Post("/", th.Create)
	thGroup.Get("/faculty/:faculty_id", th.ListByFaculty)
	thGroup.Delete("/:id", th.Delete)
}
