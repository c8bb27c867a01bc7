// internals/features/users/user/controller/department_controller.go
package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	"kampusku_backend/internals/features/academics/cascade"
	"kampusku_backend/internals/features/users/user/dto"
	"kampusku_backend/internals/features/users/user/model"
	helper "kampusku_backend/internals/helpers"
	"kampusku_backend/internals/mailer"
)

/* =========================================================
   Department = akun admin. Dikelola super-admin.
========================================================= */

// GET /api/v1/departments
func (ctrl *UserController) GetDepartments(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 100)

	var admins []model.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("user_role = ?", constants.RoleAdmin).
		Order("user_department ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&admins).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, len(admins), fiber.Map{"departments": admins})
}

// POST /api/v1/departments
// Password acak 8 char dikirim via email, harus diganti setelah login.
func (ctrl *UserController) CreateDepartment(c *fiber.Ctx) error {
	var req dto.CreateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	password := helper.GenerateRandomPassword(8)

	admin := model.UserModel{
		UserName:       req.Department,
		UserEmail:      req.UserEmail,
		UserRole:       constants.RoleAdmin,
		UserConfirmed:  true,
		UserDepartment: &req.Department,
	}
	if err := admin.SetPassword(password); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not hash password")
	}

	err := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.UserModel{}).
			Where("user_email = ?", req.UserEmail).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return fiber.NewError(fiber.StatusConflict, "Email already in use")
		}
		if err := tx.Model(&model.UserModel{}).
			Where("user_role = ? AND user_department = ?", constants.RoleAdmin, req.Department).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return fiber.NewError(fiber.StatusConflict, "Department already exists")
		}
		return tx.Create(&admin).Error
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.WritePGError(c, err)
	}

	ctrl.Mailer.Send(mailer.DepartmentWelcomeMessage(req.Department, req.UserEmail, password))
	log.Printf("[INFO] department %s dibuat, kredensial dikirim ke %s", req.Department, req.UserEmail)
	return helper.JsonCreated(c, fiber.Map{"department": admin})
}

// GET /api/v1/departments/:id
func (ctrl *UserController) GetDepartment(c *fiber.Ctx) error {
	adminID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid department id")
	}

	var admin model.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&admin, "user_id = ? AND user_role = ?", adminID, constants.RoleAdmin).
		Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Department Not Found")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonSuccess(c, fiber.Map{"department": admin})
}

// PATCH /api/v1/departments/:id — hanya email yang bisa diganti
func (ctrl *UserController) UpdateDepartment(c *fiber.Ctx) error {
	adminID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid department id")
	}

	var req dto.UpdateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.UserEmail == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nothing to update")
	}

	var admin model.UserModel
	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&admin, "user_id = ? AND user_role = ?", adminID, constants.RoleAdmin).
			Error; err != nil {
			return err
		}
		var n int64
		if err := tx.Model(&model.UserModel{}).
			Where("user_email = ? AND user_id <> ?", *req.UserEmail, adminID).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return fiber.NewError(fiber.StatusConflict, "Email already in use")
		}
		admin.UserEmail = *req.UserEmail
		return tx.Save(&admin).Error
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Department Not Found")
		}
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonSuccess(c, fiber.Map{"department": admin})
}

// DELETE /api/v1/departments/:id
// Menarik seluruh hierarki: batch → semester → subject → attendance,
// plus teacher & student department itu. Satu transaction.
func (ctrl *UserController) DeleteDepartment(c *fiber.Ctx) error {
	adminID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid department id")
	}

	var n int64
	if err := ctrl.DB.WithContext(c.Context()).Model(&model.UserModel{}).
		Where("user_id = ? AND user_role = ?", adminID, constants.RoleAdmin).
		Count(&n).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if n == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Department Not Found")
	}

	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		mgr := cascade.NewManager(cascade.NewGormStore(tx))
		return mgr.DeleteDepartmentTree(c.Context(), adminID)
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}

	log.Printf("[INFO] department %s dihapus (cascade penuh)", adminID)
	return helper.JsonDeleted(c)
}
