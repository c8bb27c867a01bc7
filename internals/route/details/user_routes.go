// internals/route/details/user_routes.go
package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	userController "kampusku_backend/internals/features/users/user/controller"
	"kampusku_backend/internals/mailer"
	authmw "kampusku_backend/internals/middlewares/auth"
)

func UserRoutes(api fiber.Router, db *gorm.DB, validate *validator.Validate, m mailer.Mailer) {
	ctrl := userController.New(db, validate, m)
	authed := authmw.AuthMiddleware(db)

	// profil sendiri
	users := api.Group("/users")
	users.Get("/confirm/:token", ctrl.ConfirmAccount) // public, link dari email
	users.Get("/me", authed, ctrl.GetMe)
	users.Patch("/me", authed, ctrl.UpdateMe)
	users.Delete("/me", authed, ctrl.DeleteMe)

	// departments (= akun admin), khusus super-admin
	departments := api.Group("/departments",
		authed,
		authmw.OnlyRoles(constants.RoleErrorSuperAdmin("departments"), constants.RoleSuperAdmin),
	)
	departments.Get("/", ctrl.GetDepartments)
	departments.Post("/", ctrl.CreateDepartment)
	departments.Get("/:id", ctrl.GetDepartment)
	departments.Patch("/:id", ctrl.UpdateDepartment)
	departments.Delete("/:id", ctrl.DeleteDepartment)

	// teachers, dikelola admin department
	teachers := api.Group("/teachers",
		authed,
		authmw.OnlyRoles(constants.RoleErrorAdmin("teachers"), constants.RoleAdmin, constants.RoleSuperAdmin),
	)
	teachers.Get("/", ctrl.GetTeachers)
	teachers.Post("/", ctrl.CreateTeacher)
	teachers.Get("/:id", ctrl.GetTeacher)
	teachers.Patch("/:id", ctrl.UpdateTeacher)
	teachers.Delete("/:id", ctrl.DeleteTeacher)

	// students, dikelola admin lewat batch
	students := api.Group("/students",
		authed,
		authmw.OnlyRoles(constants.RoleErrorAdmin("students"), constants.RoleAdmin, constants.RoleSuperAdmin),
	)
	students.Get("/", ctrl.GetStudents)
	students.Get("/:id", ctrl.GetStudent)
	students.Patch("/:id", ctrl.UpdateStudent)
	students.Delete("/:id", ctrl.DeleteStudent)
}
