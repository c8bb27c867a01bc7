// internals/features/academics/batches/controller/batch_controller.go
package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	"kampusku_backend/internals/features/academics/batches/dto"
	"kampusku_backend/internals/features/academics/batches/model"
	"kampusku_backend/internals/features/academics/batches/service"
	"kampusku_backend/internals/features/academics/cascade"
	"kampusku_backend/internals/features/academics/guard"
	helper "kampusku_backend/internals/helpers"
)

type BatchController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Gate     *guard.Gate
}

func New(db *gorm.DB, validate *validator.Validate) *BatchController {
	return &BatchController{
		DB:       db,
		Validate: validate,
		Gate:     guard.NewGate(guard.NewGormResolver(db)),
	}
}

// =========================================================
// GET /api/v1/batches
// Admin melihat batch miliknya; super-admin melihat semua.
// =========================================================
func (ctrl *BatchController) GetBatches(c *fiber.Ctx) error {
	actor, err := guard.ActorFromLocals(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 25, 100)

	q := ctrl.DB.WithContext(c.Context()).Model(&model.BatchModel{})
	if actor.Role != constants.RoleSuperAdmin {
		q = q.Where("batch_admin_id = ?", actor.ID)
	}

	var batches []model.BatchModel
	if err := q.Order("batch_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&batches).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, len(batches), fiber.Map{"batches": batches})
}

// =========================================================
// POST /api/v1/batches
// =========================================================
func (ctrl *BatchController) CreateBatch(c *fiber.Ctx) error {
	actor, err := guard.ActorFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.CreateBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	batch := model.BatchModel{
		BatchName:    req.BatchName,
		BatchAdminID: actor.ID,
	}

	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var dup int64
		if err := tx.Model(&model.BatchModel{}).
			Where("batch_name = ? AND batch_admin_id = ?", req.BatchName, actor.ID).
			Count(&dup).Error; err != nil {
			return err
		}
		if dup > 0 {
			return fiber.NewError(fiber.StatusConflict, "Batch already exists")
		}

		code, err := uniqueBatchCode(tx)
		if err != nil {
			return err
		}
		batch.BatchCode = code
		return tx.Create(&batch).Error
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.WritePGError(c, err)
	}

	log.Printf("[INFO] batch %d dibuat oleh admin %s (code %s)", batch.BatchName, actor.ID, batch.BatchCode)
	return helper.JsonCreated(c, fiber.Map{"batch": batch})
}

// uniqueBatchCode coba beberapa kali kalau kebetulan tabrakan.
func uniqueBatchCode(tx *gorm.DB) (string, error) {
	for i := 0; i < 5; i++ {
		code := helper.GenerateBatchCode()
		var n int64
		if err := tx.Model(&model.BatchModel{}).
			Where("batch_code = ?", code).Count(&n).Error; err != nil {
			return "", err
		}
		if n == 0 {
			return code, nil
		}
	}
	return "", fiber.NewError(fiber.StatusInternalServerError, "Could not generate a unique batch code")
}

// =========================================================
// GET /api/v1/batches/:id
// =========================================================
func (ctrl *BatchController) GetBatch(c *fiber.Ctx) error {
	actor, err := guard.ActorFromLocals(c)
	if err != nil {
		return err
	}
	batchID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid batch id")
	}
	if err := ctrl.Gate.EnsureBatchAccess(c.Context(), actor, batchID); err != nil {
		return err
	}

	var batch model.BatchModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&batch, "batch_id = ?", batchID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Batch Not Found")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonSuccess(c, fiber.Map{"batch": batch})
}

// =========================================================
// PATCH /api/v1/batches/:id
// Archive merambat ke semester & subject turunannya, tidak menghapus apa pun.
// =========================================================
func (ctrl *BatchController) UpdateBatch(c *fiber.Ctx) error {
	actor, err := guard.ActorFromLocals(c)
	if err != nil {
		return err
	}
	batchID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid batch id")
	}

	var req dto.UpdateBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.BatchName == nil && req.BatchArchived == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nothing to update")
	}

	if err := ctrl.Gate.EnsureBatchAccess(c.Context(), actor, batchID); err != nil {
		return err
	}

	var batch model.BatchModel
	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&batch, "batch_id = ?", batchID).Error; err != nil {
			return err
		}
		if req.BatchName != nil {
			batch.BatchName = *req.BatchName
		}
		if req.BatchArchived != nil {
			batch.BatchArchived = *req.BatchArchived
		}
		if err := tx.Save(&batch).Error; err != nil {
			return err
		}
		if req.BatchArchived != nil {
			return service.PropagateBatchArchive(c.Context(),
				service.NewGormArchiveStore(tx), batchID, *req.BatchArchived)
		}
		return nil
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Batch Not Found")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonSuccess(c, fiber.Map{"batch": batch})
}

// =========================================================
// POST /api/v1/batches/:id/code  — regenerate kode join
// =========================================================
func (ctrl *BatchController) RegenerateCode(c *fiber.Ctx) error {
	actor, err := guard.ActorFromLocals(c)
	if err != nil {
		return err
	}
	batchID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid batch id")
	}
	if err := ctrl.Gate.EnsureBatchAccess(c.Context(), actor, batchID); err != nil {
		return err
	}

	var batch model.BatchModel
	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&batch, "batch_id = ?", batchID).Error; err != nil {
			return err
		}
		code, err := uniqueBatchCode(tx)
		if err != nil {
			return err
		}
		batch.BatchCode = code
		return tx.Save(&batch).Error
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Batch Not Found")
		}
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonSuccess(c, fiber.Map{"batch": batch})
}

// =========================================================
// DELETE /api/v1/batches/:id
// Cascade: attendance → subject → semester → student batch → batch,
// semuanya dalam satu transaction.
// =========================================================
func (ctrl *BatchController) DeleteBatch(c *fiber.Ctx) error {
	actor, err := guard.ActorFromLocals(c)
	if err != nil {
		return err
	}
	batchID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid batch id")
	}
	if err := ctrl.Gate.EnsureBatchAccess(c.Context(), actor, batchID); err != nil {
		return err
	}

	var exists int64
	if err := ctrl.DB.WithContext(c.Context()).Model(&model.BatchModel{}).
		Where("batch_id = ?", batchID).Count(&exists).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if exists == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Batch Not Found")
	}

	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		mgr := cascade.NewManager(cascade.NewGormStore(tx))
		return mgr.DeleteBatchTree(c.Context(), batchID)
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}

	log.Printf("[INFO] batch %s dihapus (cascade) oleh %s", batchID, actor.ID)
	return helper.JsonDeleted(c)
}
