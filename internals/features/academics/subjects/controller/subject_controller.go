// internals/features/academics/subjects/controller/subject_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	batchModel "kampusku_backend/internals/features/academics/batches/model"
	"kampusku_backend/internals/features/academics/cascade"
	"kampusku_backend/internals/features/academics/guard"
	"kampusku_backend/internals/features/academics/subjects/dto"
	"kampusku_backend/internals/features/academics/subjects/model"
	"kampusku_backend/internals/features/academics/subjects/service"
	userModel "kampusku_backend/internals/features/users/user/model"
	helper "kampusku_backend/internals/helpers"
)

type SubjectController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Gate     *guard.Gate
}

func New(db *gorm.DB, validate *validator.Validate) *SubjectController {
	return &SubjectController{
		DB:       db,
		Validate: validate,
		Gate:     guard.NewGate(guard.NewGormResolver(db)),
	}
}

// =========================================================
// GET /api/v1/subjects?semester=<uuid>
// =========================================================
func (ctrl *SubjectController) GetSubjects(c *fiber.Ctx) error {
	actor, err := guard.ActorFromLocals(c)
	if err != nil {
		return err
	}

	semesterRaw := c.Query("semester")
	if semesterRaw == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query parameter semester is required")
	}
	semesterID, err := uuid.Parse(semesterRaw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid semester id")
	}
	if err := ctrl.Gate.EnsureSemesterAccess(c.Context(), actor, semesterID); err != nil {
		return err
	}

	var subjects []model.SubjectModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("subject_semester_id = ?", semesterID).
		Order("subject_name ASC").
		Find(&subjects).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, len(subjects), fiber.Map{"subjects": subjects})
}

// =========================================================
// POST /api/v1/subjects
// Subject konkret dibuat dari katalog default_subjects milik admin:
// nama harus ada di katalog, credit hours disalin dari sana.
// =========================================================
func (ctrl *SubjectController) CreateSubject(c *fiber.Ctx) error {
	actor, err := guard.ActorFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctrl.Gate.EnsureSemesterAccess(c.Context(), actor, req.SubjectSemesterID); err != nil {
		return err
	}

	adminID, err := ctrl.semesterAdminID(c, req.SubjectSemesterID)
	if err != nil {
		return err
	}

	var subject model.SubjectModel
	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		created, err := service.CreateFromCatalog(c.Context(), service.NewGormCatalogStore(tx),
			req.SubjectName, req.SubjectSemesterID, adminID)
		if err != nil {
			return err
		}
		subject = *created
		return nil
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, fiber.Map{"subject": subject})
}

// semesterAdminID menelusuri semester → batch → admin pemilik.
func (ctrl *SubjectController) semesterAdminID(c *fiber.Ctx, semesterID uuid.UUID) (uuid.UUID, error) {
	var batch batchModel.BatchModel
	err := ctrl.DB.WithContext(c.Context()).
		Joins("JOIN semesters s ON s.semester_batch_id = batches.batch_id").
		Where("s.semester_id = ?", semesterID).
		First(&batch).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return uuid.Nil, fiber.NewError(fiber.StatusNotFound, "Semester Not Found")
		}
		code, msg := helper.MapPGError(err)
		return uuid.Nil, fiber.NewError(code, msg)
	}
	return batch.BatchAdminID, nil
}

// =========================================================
// GET /api/v1/subjects/:id
// =========================================================
func (ctrl *SubjectController) GetSubject(c *fiber.Ctx) error {
	actor, err := guard.ActorFromLocals(c)
	if err != nil {
		return err
	}
	subjectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject id")
	}
	if err := ctrl.Gate.EnsureSubjectAccess(c.Context(), actor, subjectID); err != nil {
		return err
	}

	var subject model.SubjectModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&subject, "subject_id = ?", subjectID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Subject Not Found")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonSuccess(c, fiber.Map{"subject": subject})
}

// =========================================================
// PATCH /api/v1/subjects/:id
// Assign teacher dan/atau archive. Teacher harus milik department yang sama.
// =========================================================
func (ctrl *SubjectController) UpdateSubject(c *fiber.Ctx) error {
	actor, err := guard.ActorFromLocals(c)
	if err != nil {
		return err
	}
	subjectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject id")
	}

	var req dto.UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.SubjectTeacherID == nil && req.SubjectArchived == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nothing to update")
	}

	if err := ctrl.Gate.EnsureSubjectAccess(c.Context(), actor, subjectID); err != nil {
		return err
	}

	var subject model.SubjectModel
	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&subject, "subject_id = ?", subjectID).Error; err != nil {
			return err
		}
		if req.SubjectTeacherID != nil {
			adminID, err := ctrl.semesterAdminID(c, subject.SubjectSemesterID)
			if err != nil {
				return err
			}
			var n int64
			if err := tx.Model(&userModel.UserModel{}).
				Where("user_id = ? AND user_role = ? AND user_department_id = ?",
					*req.SubjectTeacherID, constants.RoleTeacher, adminID).
				Count(&n).Error; err != nil {
				return err
			}
			if n == 0 {
				return fiber.NewError(fiber.StatusNotFound, "Teacher Not Found")
			}
			subject.SubjectTeacherID = req.SubjectTeacherID
		}
		if req.SubjectArchived != nil {
			subject.SubjectArchived = *req.SubjectArchived
		}
		return tx.Save(&subject).Error
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Subject Not Found")
		}
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonSuccess(c, fiber.Map{"subject": subject})
}

// =========================================================
// DELETE /api/v1/subjects/:id/teacher — lepas pengampu
// =========================================================
func (ctrl *SubjectController) RemoveTeacher(c *fiber.Ctx) error {
	actor, err := guard.ActorFromLocals(c)
	if err != nil {
		return err
	}
	subjectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject id")
	}
	if err := ctrl.Gate.EnsureSubjectAccess(c.Context(), actor, subjectID); err != nil {
		return err
	}

	res := ctrl.DB.WithContext(c.Context()).Model(&model.SubjectModel{}).
		Where("subject_id = ?", subjectID).
		Update("subject_teacher_id", nil)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Subject Not Found")
	}
	return helper.JsonMessage(c, fiber.StatusOK, "Teacher removed from subject")
}

// =========================================================
// GET /api/v1/subjects/mine — subject yang diampu teacher login
// =========================================================
func (ctrl *SubjectController) GetMySubjects(c *fiber.Ctx) error {
	actor, err := guard.ActorFromLocals(c)
	if err != nil {
		return err
	}

	var subjects []model.SubjectModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("subject_teacher_id = ?", actor.ID).
		Order("subject_name ASC").
		Find(&subjects).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, len(subjects), fiber.Map{"subjects": subjects})
}

// =========================================================
// DELETE /api/v1/subjects/:id
// =========================================================
func (ctrl *SubjectController) DeleteSubject(c *fiber.Ctx) error {
	actor, err := guard.ActorFromLocals(c)
	if err != nil {
		return err
	}
	subjectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject id")
	}
	if err := ctrl.Gate.EnsureSubjectAccess(c.Context(), actor, subjectID); err != nil {
		return err
	}

	var exists int64
	if err := ctrl.DB.WithContext(c.Context()).Model(&model.SubjectModel{}).
		Where("subject_id = ?", subjectID).Count(&exists).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if exists == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Subject Not Found")
	}

	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		mgr := cascade.NewManager(cascade.NewGormStore(tx))
		return mgr.DeleteSubjectTree(c.Context(), subjectID)
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c)
}
