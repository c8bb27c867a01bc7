// internals/route/details/auth_routes.go
package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "kampusku_backend/internals/features/users/auth/controller"
	"kampusku_backend/internals/mailer"
	"kampusku_backend/internals/middlewares"
	authmw "kampusku_backend/internals/middlewares/auth"
)

func AuthRoutes(api fiber.Router, db *gorm.DB, validate *validator.Validate, m mailer.Mailer) {
	ctrl := authController.New(db, validate, m)

	auth := api.Group("/auth")
	auth.Post("/signup", middlewares.SignupRateLimiter(), ctrl.Signup)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/refresh", ctrl.Refresh)
	auth.Post("/forgot-password", middlewares.ForgotPasswordRateLimiter(), ctrl.ForgotPassword)
	auth.Patch("/reset-password/:token", ctrl.ResetPassword)

	auth.Post("/logout", authmw.AuthMiddleware(db), ctrl.Logout)
	auth.Patch("/update-password", authmw.AuthMiddleware(db), ctrl.UpdatePassword)
}
