// internals/route/details/attendance_routes.go
package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	attendanceController "kampusku_backend/internals/features/attendance/controller"
	authmw "kampusku_backend/internals/middlewares/auth"
)

func AttendanceRoutes(api fiber.Router, db *gorm.DB, validate *validator.Validate) {
	ctrl := attendanceController.New(db, validate)
	authed := authmw.AuthMiddleware(db)

	attendance := api.Group("/attendance", authed)

	// marking hanya teacher pengampu, dan akunnya harus sudah dikonfirmasi
	attendance.Post("/",
		authmw.OnlyRoles(constants.RoleErrorTeacher("attendance"), constants.RoleTeacher),
		authmw.RequireConfirmed(),
		ctrl.CreateAttendance)

	// laporan subject: admin pemilik chain atau teacher pengampu
	attendance.Get("/subject/:id/report",
		authmw.OnlyRoles("Laporan subject hanya untuk admin/teacher.",
			constants.RoleAdmin, constants.RoleTeacher, constants.RoleSuperAdmin),
		ctrl.SubjectReport)

	// laporan pribadi student
	attendance.Get("/me/report",
		authmw.OnlyRoles("Laporan pribadi hanya untuk student.", constants.RoleStudent),
		ctrl.MyReport)
	attendance.Get("/me/report/subject/:id",
		authmw.OnlyRoles("Laporan pribadi hanya untuk student.", constants.RoleStudent),
		ctrl.MySubjectReport)

	// detail & hapus sesi mengikuti chain ownership admin
	adminOnly := authmw.OnlyRoles(constants.RoleErrorAdmin("attendance"),
		constants.RoleAdmin, constants.RoleSuperAdmin)
	attendance.Get("/:id", adminOnly, ctrl.GetAttendance)
	attendance.Delete("/:id", adminOnly, ctrl.DeleteAttendance)
}
