// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"kampusku_backend/internals/configs"
	authModel "kampusku_backend/internals/features/users/auth/model"
	userModel "kampusku_backend/internals/features/users/user/model"
)

func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1) Ambil Authorization (atau cookie)
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		// 2) Cek blacklist (sekali per request)
		if c.Locals("token_checked") == nil {
			var existing authModel.TokenBlacklistModel
			if err := db.Where("token_blacklist_token = ?", tokenString).First(&existing).Error; err == nil {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token is blacklisted")
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Println("[ERROR] DB error saat cek blacklist:", err)
				return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
			}
			c.Locals("token_checked", true)
			c.Locals("access_token", tokenString)
		}

		// 3) Parse & verifikasi JWT
		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		}); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		// 4) Validasi exp
		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		// 5) user_id + pastikan user masih ada
		userID, err := extractUserID(claims)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}

		var usr userModel.UserModel
		if err := db.Select("user_id", "user_role", "user_confirmed", "user_password_changed_at").
			Where("user_id = ?", userID).First(&usr).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "The user belonging to this token does no longer exist.")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}

		// 6) Token diterbitkan sebelum password terakhir diganti → tolak
		if usr.UserPasswordChangedAt != nil {
			if iat, ok := claims["iat"].(float64); ok {
				if usr.UserPasswordChangedAt.After(time.Unix(int64(iat), 0)) {
					return fiber.NewError(fiber.StatusUnauthorized, "User recently changed password! Please log in again.")
				}
			}
		}

		c.Locals("user_id", userID.String())
		c.Locals("user_confirmed", usr.UserConfirmed)
		storeClaimsToLocals(c, claims)
		// role dari DB lebih otoritatif daripada claim
		c.Locals("user_role", usr.UserRole)

		return c.Next()
	}
}

// RequireConfirmed dipasang di route yang butuh akun terkonfirmasi
// (mis. marking attendance).
func RequireConfirmed() fiber.Handler {
	return func(c *fiber.Ctx) error {
		confirmed, _ := c.Locals("user_confirmed").(bool)
		if !confirmed {
			return fiber.NewError(fiber.StatusUnauthorized, "You need to confirm your account before performing this action")
		}
		return c.Next()
	}
}
