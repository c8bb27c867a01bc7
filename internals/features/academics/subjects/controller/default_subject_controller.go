// internals/features/academics/subjects/controller/default_subject_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/academics/guard"
	"kampusku_backend/internals/features/academics/subjects/dto"
	"kampusku_backend/internals/features/academics/subjects/model"
	helper "kampusku_backend/internals/helpers"
)

/* =========================================================
   Katalog default_subjects per department.
   Hanya admin pemilik (dan super-admin) yang menyentuh katalognya sendiri,
   jadi cukup scoping by admin id, tanpa guard chain.
========================================================= */

// GET /api/v1/default-subjects
func (ctrl *SubjectController) GetDefaultSubjects(c *fiber.Ctx) error {
	actor, err := guard.ActorFromLocals(c)
	if err != nil {
		return err
	}

	var defaults []model.DefaultSubjectModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("default_subject_admin_id = ?", actor.ID).
		Order("default_subject_name ASC").
		Find(&defaults).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, len(defaults), fiber.Map{"default_subjects": defaults})
}

// POST /api/v1/default-subjects
func (ctrl *SubjectController) CreateDefaultSubject(c *fiber.Ctx) error {
	actor, err := guard.ActorFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.CreateDefaultSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	def := model.DefaultSubjectModel{
		DefaultSubjectName:        req.DefaultSubjectName,
		DefaultSubjectAdminID:     actor.ID,
		DefaultSubjectCreditHours: req.DefaultSubjectCreditHours,
	}
	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var dup int64
		if err := tx.Model(&model.DefaultSubjectModel{}).
			Where("default_subject_name = ? AND default_subject_admin_id = ?",
				req.DefaultSubjectName, actor.ID).
			Count(&dup).Error; err != nil {
			return err
		}
		if dup > 0 {
			return fiber.NewError(fiber.StatusConflict, "Subject already exists in department catalog")
		}
		return tx.Create(&def).Error
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, fiber.Map{"default_subject": def})
}

// PATCH /api/v1/default-subjects/:id
func (ctrl *SubjectController) UpdateDefaultSubject(c *fiber.Ctx) error {
	actor, err := guard.ActorFromLocals(c)
	if err != nil {
		return err
	}
	defID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid default subject id")
	}

	var req dto.UpdateDefaultSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.DefaultSubjectName == nil && req.DefaultSubjectCreditHours == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nothing to update")
	}

	var def model.DefaultSubjectModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&def, "default_subject_id = ? AND default_subject_admin_id = ?", defID, actor.ID).
		Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Default Subject Not Found")
		}
		return helper.WritePGError(c, err)
	}

	if req.DefaultSubjectName != nil {
		def.DefaultSubjectName = *req.DefaultSubjectName
	}
	if req.DefaultSubjectCreditHours != nil {
		def.DefaultSubjectCreditHours = *req.DefaultSubjectCreditHours
	}
	if err := ctrl.DB.WithContext(c.Context()).Save(&def).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonSuccess(c, fiber.Map{"default_subject": def})
}

// DELETE /api/v1/default-subjects/:id
// Hanya menghapus entri katalog; subject konkret yang sudah dibuat tetap ada.
func (ctrl *SubjectController) DeleteDefaultSubject(c *fiber.Ctx) error {
	actor, err := guard.ActorFromLocals(c)
	if err != nil {
		return err
	}
	defID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid default subject id")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Where("default_subject_id = ? AND default_subject_admin_id = ?", defID, actor.ID).
		Delete(&model.DefaultSubjectModel{})
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Default Subject Not Found")
	}
	return helper.JsonDeleted(c)
}
