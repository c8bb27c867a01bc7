// internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"kampusku_backend/internals/configs"
	"kampusku_backend/internals/constants"
	batchModel "kampusku_backend/internals/features/academics/batches/model"
	authDTO "kampusku_backend/internals/features/users/auth/dto"
	authModel "kampusku_backend/internals/features/users/auth/model"
	authService "kampusku_backend/internals/features/users/auth/service"
	userModel "kampusku_backend/internals/features/users/user/model"
	helper "kampusku_backend/internals/helpers"
	"kampusku_backend/internals/mailer"
	middlewareAuth "kampusku_backend/internals/middlewares/auth"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Mailer   mailer.Mailer
}

func New(db *gorm.DB, v *validator.Validate, m mailer.Mailer) *AuthController {
	return &AuthController{DB: db, Validate: v, Mailer: m}
}

/* =========================
   SIGNUP (student only)
   ========================= */

func (ctl *AuthController) Signup(c *fiber.Ctx) error {
	var req authDTO.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// batch code → batch
	var batch batchModel.BatchModel
	if err := ctl.DB.Where("batch_code = ?", strings.ToUpper(strings.TrimSpace(req.BatchCode))).
		First(&batch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "Batch code is invalid")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
	}

	usr := userModel.UserModel{
		UserName:           req.Name,
		UserEmail:          req.Email,
		UserRole:           constants.RoleStudent,
		UserRollNo:         &req.RollNo,
		UserRegistrationNo: &req.RegistrationNo,
		UserBatchID:        &batch.BatchID,
	}
	if err := usr.SetPassword(req.Password); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses password")
	}

	confirmPlain, confirmHash := helper.GenerateToken()
	usr.UserConfirmationToken = &confirmHash

	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		// roll no unik dalam batch
		var cnt int64
		if err := tx.Model(&userModel.UserModel{}).
			Where("user_role = ? AND user_batch_id = ? AND user_roll_no = ?",
				constants.RoleStudent, batch.BatchID, req.RollNo).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek roll no")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "A student with this roll no already exists in this batch")
		}

		var emailCnt int64
		if err := tx.Model(&userModel.UserModel{}).
			Where("user_email = ?", req.Email).Count(&emailCnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek email")
		}
		if emailCnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "A user with this email already exists")
		}

		return tx.Create(&usr).Error
	}); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return err
		}
		return helper.WritePGError(c, err)
	}

	// notifikasi konfirmasi: fire-and-forget
	link := configs.FrontendBaseURL + "/confirm-account/?token=" + confirmPlain
	ctl.Mailer.Send(mailer.ConfirmationMessage(usr.UserName, usr.UserEmail, link))

	pair, err := authService.IssueTokens(usr)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Token issue failed")
	}
	setTokenCookie(c, pair)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "success",
		"token":  pair.AccessToken,
		"data":   fiber.Map{"user": usr, "refresh_token": pair.RefreshToken},
	})
}

/* =========================
   LOGIN / LOGOUT / REFRESH
   ========================= */

func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Please provide email and password!")
	}

	var usr userModel.UserModel
	err := ctl.DB.Where("user_email = ?", strings.ToLower(strings.TrimSpace(req.Email))).First(&usr).Error
	if err != nil || !usr.CorrectPassword(req.Password) {
		// pesan sengaja tidak membedakan email salah vs password salah
		return fiber.NewError(fiber.StatusUnauthorized, "Incorrect email or password")
	}

	pair, err := authService.IssueTokens(usr)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Token issue failed")
	}
	setTokenCookie(c, pair)

	return c.JSON(fiber.Map{
		"status": "success",
		"token":  pair.AccessToken,
		"data":   fiber.Map{"user": usr, "refresh_token": pair.RefreshToken},
	})
}

// Logout: token aktif masuk blacklist sampai expired.
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	tokenString, _ := c.Locals("access_token").(string)
	if tokenString != "" {
		expiresAt := time.Now().Add(authService.AccessTokenTTL)
		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(configs.JWTSecret), nil
		}); err == nil {
			if exp, ok := claims["exp"].(float64); ok {
				expiresAt = time.Unix(int64(exp), 0)
			}
		}
		entry := authModel.TokenBlacklistModel{
			TokenBlacklistToken:     tokenString,
			TokenBlacklistExpiresAt: expiresAt,
		}
		if err := ctl.DB.Create(&entry).Error; err != nil {
			log.Println("[ERROR] gagal blacklist token:", err)
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     "jwt",
		Value:    "",
		Expires:  time.Unix(1, 0),
		HTTPOnly: true,
	})
	return helper.JsonDeleted(c)
}

func (ctl *AuthController) Refresh(c *fiber.Ctx) error {
	var req authDTO.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	userID, err := authService.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid refresh token")
	}

	var usr userModel.UserModel
	if err := ctl.DB.Where("user_id = ?", userID).First(&usr).Error; err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "The user belonging to this token does no longer exist.")
	}

	pair, err := authService.IssueTokens(usr)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Token issue failed")
	}
	setTokenCookie(c, pair)

	return c.JSON(fiber.Map{
		"status": "success",
		"token":  pair.AccessToken,
		"data":   fiber.Map{"refresh_token": pair.RefreshToken},
	})
}

/* =========================
   PASSWORD RESET
   ========================= */

func (ctl *AuthController) ForgotPassword(c *fiber.Ctx) error {
	var req authDTO.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var usr userModel.UserModel
	if err := ctl.DB.Where("user_email = ?", strings.ToLower(strings.TrimSpace(req.Email))).
		First(&usr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "There is no user with this email address.")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
	}

	plain, hashed := helper.GenerateToken()
	expires := time.Now().Add(10 * time.Minute)
	if err := ctl.DB.Model(&usr).Updates(map[string]interface{}{
		"user_password_reset_token":   hashed,
		"user_password_reset_expires": expires,
	}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
	}

	link := configs.FrontendBaseURL + "/reset-password/?token=" + plain
	ctl.Mailer.Send(mailer.PasswordResetMessage(usr.UserName, usr.UserEmail, link))

	return helper.JsonMessage(c, fiber.StatusOK, "Token sent to email!")
}

func (ctl *AuthController) ResetPassword(c *fiber.Ctx) error {
	var req authDTO.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	token := c.Params("token")
	if token == "" {
		token = req.Token
	}
	if token == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Token is required")
	}

	hashed := helper.HashToken(token)
	var usr userModel.UserModel
	if err := ctl.DB.Where("user_password_reset_token = ? AND user_password_reset_expires > ?",
		hashed, time.Now()).First(&usr).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Token is invalid or has expired")
	}

	if err := usr.SetPassword(req.Password); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses password")
	}
	// -1s supaya token yang diterbitkan sesaat setelah ini tetap valid
	changedAt := time.Now().Add(-1 * time.Second)
	if err := ctl.DB.Model(&usr).Updates(map[string]interface{}{
		"user_password":               usr.UserPassword,
		"user_password_changed_at":    changedAt,
		"user_password_reset_token":   nil,
		"user_password_reset_expires": nil,
	}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
	}

	pair, err := authService.IssueTokens(usr)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Token issue failed")
	}
	setTokenCookie(c, pair)

	return c.JSON(fiber.Map{
		"status": "success",
		"token":  pair.AccessToken,
		"data":   fiber.Map{"refresh_token": pair.RefreshToken},
	})
}

func (ctl *AuthController) UpdatePassword(c *fiber.Ctx) error {
	actorID, err := middlewareAuth.GetUserID(c)
	if err != nil {
		return err
	}

	var req authDTO.UpdatePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var usr userModel.UserModel
	if err := ctl.DB.Where("user_id = ?", actorID).First(&usr).Error; err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	if !usr.CorrectPassword(req.CurrentPassword) {
		return fiber.NewError(fiber.StatusUnauthorized, "Your current password is wrong.")
	}

	if err := usr.SetPassword(req.NewPassword); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses password")
	}
	changedAt := time.Now().Add(-1 * time.Second)
	if err := ctl.DB.Model(&usr).Updates(map[string]interface{}{
		"user_password":            usr.UserPassword,
		"user_password_changed_at": changedAt,
	}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
	}

	pair, err := authService.IssueTokens(usr)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Token issue failed")
	}
	setTokenCookie(c, pair)

	return c.JSON(fiber.Map{
		"status": "success",
		"token":  pair.AccessToken,
		"data":   fiber.Map{"refresh_token": pair.RefreshToken},
	})
}

func setTokenCookie(c *fiber.Ctx, pair authService.TokenPair) {
	c.Cookie(&fiber.Cookie{
		Name:     "jwt",
		Value:    pair.AccessToken,
		Expires:  pair.AccessExp,
		HTTPOnly: true,
		SameSite: "Lax",
	})
}
