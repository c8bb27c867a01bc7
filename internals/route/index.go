// internals/route/index.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/mailer"
	"kampusku_backend/internals/route/details"
)

// SetupRoutes merakit seluruh route aplikasi di bawah /api/v1.
func SetupRoutes(app *fiber.App, db *gorm.DB, m mailer.Mailer) {
	validate := validator.New()

	BaseRoutes(app)

	api := app.Group("/api/v1")
	details.AuthRoutes(api, db, validate, m)
	details.UserRoutes(api, db, validate, m)
	details.AcademicRoutes(api, db, validate)
	details.AttendanceRoutes(api, db, validate)
}
