// internals/route/details/academic_routes.go
package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	batchController "kampusku_backend/internals/features/academics/batches/controller"
	semesterController "kampusku_backend/internals/features/academics/semesters/controller"
	subjectController "kampusku_backend/internals/features/academics/subjects/controller"
	authmw "kampusku_backend/internals/middlewares/auth"
)

func AcademicRoutes(api fiber.Router, db *gorm.DB, validate *validator.Validate) {
	authed := authmw.AuthMiddleware(db)
	adminOnly := authmw.OnlyRoles(
		constants.RoleErrorAdmin("academics"),
		constants.RoleAdmin, constants.RoleSuperAdmin,
	)

	batchCtrl := batchController.New(db, validate)
	batches := api.Group("/batches", authed, adminOnly)
	batches.Get("/", batchCtrl.GetBatches)
	batches.Post("/", batchCtrl.CreateBatch)
	batches.Get("/:id", batchCtrl.GetBatch)
	batches.Patch("/:id", batchCtrl.UpdateBatch)
	batches.Post("/:id/code", batchCtrl.RegenerateCode)
	batches.Delete("/:id", batchCtrl.DeleteBatch)

	semesterCtrl := semesterController.New(db, validate)
	semesters := api.Group("/semesters", authed, adminOnly)
	semesters.Get("/", semesterCtrl.GetSemesters)
	semesters.Post("/", semesterCtrl.CreateSemester)
	semesters.Get("/:id", semesterCtrl.GetSemester)
	semesters.Patch("/:id", semesterCtrl.UpdateSemester)
	semesters.Delete("/:id", semesterCtrl.DeleteSemester)

	subjectCtrl := subjectController.New(db, validate)

	subjects := api.Group("/subjects", authed)
	// teacher melihat subject yang diampunya sendiri
	subjects.Get("/mine",
		authmw.OnlyRoles(constants.RoleErrorTeacher("subjects"), constants.RoleTeacher),
		subjectCtrl.GetMySubjects)
	subjects.Get("/", adminOnly, subjectCtrl.GetSubjects)
	subjects.Post("/", adminOnly, subjectCtrl.CreateSubject)
	subjects.Get("/:id", adminOnly, subjectCtrl.GetSubject)
	subjects.Patch("/:id", adminOnly, subjectCtrl.UpdateSubject)
	subjects.Delete("/:id/teacher", adminOnly, subjectCtrl.RemoveTeacher)
	subjects.Delete("/:id", adminOnly, subjectCtrl.DeleteSubject)

	defaults := api.Group("/default-subjects", authed, adminOnly)
	defaults.Get("/", subjectCtrl.GetDefaultSubjects)
	defaults.Post("/", subjectCtrl.CreateDefaultSubject)
	defaults.Patch("/:id", subjectCtrl.UpdateDefaultSubject)
	defaults.Delete("/:id", subjectCtrl.DeleteDefaultSubject)
}
