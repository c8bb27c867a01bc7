// internals/features/academics/semesters/controller/semester_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/academics/cascade"
	"kampusku_backend/internals/features/academics/guard"
	"kampusku_backend/internals/features/academics/semesters/dto"
	"kampusku_backend/internals/features/academics/semesters/model"
	subjectModel "kampusku_backend/internals/features/academics/subjects/model"
	helper "kampusku_backend/internals/helpers"
)

type SemesterController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Gate     *guard.Gate
}

func New(db *gorm.DB, validate *validator.Validate) *SemesterController {
	return &SemesterController{
		DB:       db,
		Validate: validate,
		Gate:     guard.NewGate(guard.NewGormResolver(db)),
	}
}

// =========================================================
// GET /api/v1/semesters?batch=<uuid>
// Query batch wajib: semester selalu dilihat dalam konteks batch-nya.
// =========================================================
func (ctrl *SemesterController) GetSemesters(c *fiber.Ctx) error {
	actor, err := guard.ActorFromLocals(c)
	if err != nil {
		return err
	}

	batchRaw := c.Query("batch")
	if batchRaw == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query parameter batch is required")
	}
	batchID, err := uuid.Parse(batchRaw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid batch id")
	}
	if err := ctrl.Gate.EnsureBatchAccess(c.Context(), actor, batchID); err != nil {
		return err
	}

	var semesters []model.SemesterModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("semester_batch_id = ?", batchID).
		Order("semester_name ASC").
		Find(&semesters).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, len(semesters), fiber.Map{"semesters": semesters})
}

// =========================================================
// POST /api/v1/semesters
// =========================================================
func (ctrl *SemesterController) CreateSemester(c *fiber.Ctx) error {
	actor, err := guard.ActorFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.CreateSemesterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctrl.Gate.EnsureBatchAccess(c.Context(), actor, req.SemesterBatchID); err != nil {
		return err
	}

	semester := model.SemesterModel{
		SemesterName:    req.SemesterName,
		SemesterBatchID: req.SemesterBatchID,
	}
	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var dup int64
		if err := tx.Model(&model.SemesterModel{}).
			Where("semester_name = ? AND semester_batch_id = ?", req.SemesterName, req.SemesterBatchID).
			Count(&dup).Error; err != nil {
			return err
		}
		if dup > 0 {
			return fiber.NewError(fiber.StatusConflict, "Semester already exists")
		}
		return tx.Create(&semester).Error
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, fiber.Map{"semester": semester})
}

// =========================================================
// GET /api/v1/semesters/:id
// =========================================================
func (ctrl *SemesterController) GetSemester(c *fiber.Ctx) error {
	actor, err := guard.ActorFromLocals(c)
	if err != nil {
		return err
	}
	semesterID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid semester id")
	}
	if err := ctrl.Gate.EnsureSemesterAccess(c.Context(), actor, semesterID); err != nil {
		return err
	}

	var semester model.SemesterModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&semester, "semester_id = ?", semesterID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Semester Not Found")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonSuccess(c, fiber.Map{"semester": semester})
}

// =========================================================
// PATCH /api/v1/semesters/:id
// Archive merambat ke subject di bawahnya.
// =========================================================
func (ctrl *SemesterController) UpdateSemester(c *fiber.Ctx) error {
	actor, err := guard.ActorFromLocals(c)
	if err != nil {
		return err
	}
	semesterID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid semester id")
	}

	var req dto.UpdateSemesterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.SemesterArchived == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nothing to update")
	}

	if err := ctrl.Gate.EnsureSemesterAccess(c.Context(), actor, semesterID); err != nil {
		return err
	}

	var semester model.SemesterModel
	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&semester, "semester_id = ?", semesterID).Error; err != nil {
			return err
		}
		semester.SemesterArchived = *req.SemesterArchived
		if err := tx.Save(&semester).Error; err != nil {
			return err
		}
		return tx.Model(&subjectModel.SubjectModel{}).
			Where("subject_semester_id = ?", semesterID).
			Update("subject_archived", *req.SemesterArchived).Error
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Semester Not Found")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonSuccess(c, fiber.Map{"semester": semester})
}

// =========================================================
// DELETE /api/v1/semesters/:id
// =========================================================
func (ctrl *SemesterController) DeleteSemester(c *fiber.Ctx) error {
	actor, err := guard.ActorFromLocals(c)
	if err != nil {
		return err
	}
	semesterID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid semester id")
	}
	if err := ctrl.Gate.EnsureSemesterAccess(c.Context(), actor, semesterID); err != nil {
		return err
	}

	var exists int64
	if err := ctrl.DB.WithContext(c.Context()).Model(&model.SemesterModel{}).
		Where("semester_id = ?", semesterID).Count(&exists).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if exists == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Semester Not Found")
	}

	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		mgr := cascade.NewManager(cascade.NewGormStore(tx))
		return mgr.DeleteSemesterTree(c.Context(), semesterID)
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c)
}
