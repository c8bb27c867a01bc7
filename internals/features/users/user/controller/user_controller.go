// internals/features/users/user/controller/user_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/academics/guard"
	"kampusku_backend/internals/features/users/user/dto"
	"kampusku_backend/internals/features/users/user/model"
	helper "kampusku_backend/internals/helpers"
	"kampusku_backend/internals/mailer"
	authmw "kampusku_backend/internals/middlewares/auth"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Mailer   mailer.Mailer
	Gate     *guard.Gate
}

func New(db *gorm.DB, validate *validator.Validate, m mailer.Mailer) *UserController {
	return &UserController{
		DB:       db,
		Validate: validate,
		Mailer:   m,
		Gate:     guard.NewGate(guard.NewGormResolver(db)),
	}
}

// =========================================================
// GET /api/v1/users/me
// =========================================================
func (ctrl *UserController) GetMe(c *fiber.Ctx) error {
	userID, err := authmw.GetUserID(c)
	if err != nil {
		return err
	}

	var usr model.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&usr, "user_id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "User Not Found")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonSuccess(c, fiber.Map{"user": usr})
}

// =========================================================
// PATCH /api/v1/users/me — ganti nama/email sendiri
// =========================================================
func (ctrl *UserController) UpdateMe(c *fiber.Ctx) error {
	userID, err := authmw.GetUserID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateMeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.UserName == nil && req.UserEmail == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nothing to update")
	}

	var usr model.UserModel
	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&usr, "user_id = ?", userID).Error; err != nil {
			return err
		}
		if req.UserEmail != nil && *req.UserEmail != usr.UserEmail {
			var n int64
			if err := tx.Model(&model.UserModel{}).
				Where("user_email = ?", *req.UserEmail).Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				return fiber.NewError(fiber.StatusConflict, "Email already in use")
			}
			usr.UserEmail = *req.UserEmail
		}
		if req.UserName != nil {
			usr.UserName = *req.UserName
		}
		return tx.Save(&usr).Error
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "User Not Found")
		}
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonSuccess(c, fiber.Map{"user": usr})
}

// =========================================================
// DELETE /api/v1/users/me
// Hanya akun yang belum dikonfirmasi yang boleh menghapus dirinya;
// akun terkonfirmasi dicabut lewat admin/super-admin.
// =========================================================
func (ctrl *UserController) DeleteMe(c *fiber.Ctx) error {
	userID, err := authmw.GetUserID(c)
	if err != nil {
		return err
	}

	var usr model.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&usr, "user_id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "User Not Found")
		}
		return helper.WritePGError(c, err)
	}
	if usr.UserConfirmed {
		return helper.JsonError(c, fiber.StatusBadRequest, "Confirmed accounts cannot delete themselves")
	}

	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			`DELETE FROM attendance_entries WHERE attendance_entry_student_id = ?`, userID,
		).Error; err != nil {
			return err
		}
		return tx.Delete(&usr).Error
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c)
}

// =========================================================
// GET /api/v1/users/confirm/:token  (public)
// Token plaintext dari email, di DB tersimpan hash-nya.
// =========================================================
func (ctrl *UserController) ConfirmAccount(c *fiber.Ctx) error {
	token := c.Params("token")
	if token == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Token is required")
	}
	hashed := helper.HashToken(token)

	var usr model.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&usr, "user_confirmation_token = ?", hashed).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusBadRequest, "Token is invalid")
		}
		return helper.WritePGError(c, err)
	}

	usr.UserConfirmed = true
	usr.UserConfirmationToken = nil
	if err := ctrl.DB.WithContext(c.Context()).Save(&usr).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonMessage(c, fiber.StatusOK, "Account confirmed successfully")
}
