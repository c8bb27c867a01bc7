// internals/features/users/user/controller/teacher_controller.go
package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	"kampusku_backend/internals/features/academics/guard"
	subjectModel "kampusku_backend/internals/features/academics/subjects/model"
	"kampusku_backend/internals/features/users/user/dto"
	"kampusku_backend/internals/features/users/user/model"
	helper "kampusku_backend/internals/helpers"
	"kampusku_backend/internals/mailer"
)

/* =========================================================
   Teacher dikelola admin department-nya (user_department_id = admin id).
========================================================= */

// GET /api/v1/teachers — teacher milik department admin login
func (ctrl *UserController) GetTeachers(c *fiber.Ctx) error {
	actor, err := guard.ActorFromLocals(c)
	if err != nil {
		return err
	}

	q := ctrl.DB.WithContext(c.Context()).
		Where("user_role = ?", constants.RoleTeacher)
	if actor.Role != constants.RoleSuperAdmin {
		q = q.Where("user_department_id = ?", actor.ID)
	}

	var teachers []model.UserModel
	if err := q.Order("user_name ASC").Find(&teachers).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, len(teachers), fiber.Map{"teachers": teachers})
}

// POST /api/v1/teachers
func (ctrl *UserController) CreateTeacher(c *fiber.Ctx) error {
	actor, err := guard.ActorFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	password := helper.GenerateRandomPassword(8)

	teacher := model.UserModel{
		UserName:         req.UserName,
		UserEmail:        req.UserEmail,
		UserRole:         constants.RoleTeacher,
		UserConfirmed:    true,
		UserGender:       &req.UserGender,
		UserDesignation:  &req.UserDesignation,
		UserDepartmentID: &actor.ID,
	}
	if err := teacher.SetPassword(password); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not hash password")
	}

	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.UserModel{}).
			Where("user_email = ?", req.UserEmail).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return fiber.NewError(fiber.StatusConflict, "Email already in use")
		}
		return tx.Create(&teacher).Error
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.WritePGError(c, err)
	}

	ctrl.Mailer.Send(mailer.TeacherWelcomeMessage(req.UserName, req.UserEmail, password))
	log.Printf("[INFO] teacher %s ditambahkan ke department %s", teacher.UserID, actor.ID)
	return helper.JsonCreated(c, fiber.Map{"teacher": teacher})
}

// GET /api/v1/teachers/:id
func (ctrl *UserController) GetTeacher(c *fiber.Ctx) error {
	actor, err := guard.ActorFromLocals(c)
	if err != nil {
		return err
	}
	teacherID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher id")
	}

	teacher, err := ctrl.ownedTeacher(c, actor, teacherID)
	if err != nil {
		return err
	}
	return helper.JsonSuccess(c, fiber.Map{"teacher": teacher})
}

// PATCH /api/v1/teachers/:id — hanya designation
func (ctrl *UserController) UpdateTeacher(c *fiber.Ctx) error {
	actor, err := guard.ActorFromLocals(c)
	if err != nil {
		return err
	}
	teacherID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher id")
	}

	var req dto.UpdateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.UserDesignation == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nothing to update")
	}

	teacher, err := ctrl.ownedTeacher(c, actor, teacherID)
	if err != nil {
		return err
	}
	teacher.UserDesignation = req.UserDesignation
	if err := ctrl.DB.WithContext(c.Context()).Save(teacher).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonSuccess(c, fiber.Map{"teacher": teacher})
}

// DELETE /api/v1/teachers/:id
// Subject yang diampu dilepas (teacher jadi null), tidak ikut terhapus.
func (ctrl *UserController) DeleteTeacher(c *fiber.Ctx) error {
	actor, err := guard.ActorFromLocals(c)
	if err != nil {
		return err
	}
	teacherID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher id")
	}

	teacher, err := ctrl.ownedTeacher(c, actor, teacherID)
	if err != nil {
		return err
	}

	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&subjectModel.SubjectModel{}).
			Where("subject_teacher_id = ?", teacherID).
			Update("subject_teacher_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(teacher).Error
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c)
}

// ownedTeacher memuat teacher dan memastikan milik department actor.
// Mismatch dibalas 404 supaya keberadaan teacher lain tidak bocor.
func (ctrl *UserController) ownedTeacher(c *fiber.Ctx, actor guard.Actor, teacherID uuid.UUID) (*model.UserModel, error) {
	var teacher model.UserModel
	err := ctrl.DB.WithContext(c.Context()).
		First(&teacher, "user_id = ? AND user_role = ?", teacherID, constants.RoleTeacher).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "Teacher Not Found")
		}
		return nil, helper.WritePGError(c, err)
	}
	if actor.Role != constants.RoleSuperAdmin {
		if teacher.UserDepartmentID == nil || *teacher.UserDepartmentID != actor.ID {
			return nil, fiber.NewError(fiber.StatusNotFound, "Teacher Not Found")
		}
	}
	return &teacher, nil
}
