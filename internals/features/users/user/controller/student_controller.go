// internals/features/users/user/controller/student_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	"kampusku_backend/internals/features/academics/guard"
	"kampusku_backend/internals/features/users/user/dto"
	"kampusku_backend/internals/features/users/user/model"
	helper "kampusku_backend/internals/helpers"
)

/* =========================================================
   Student dikelola admin lewat batch-nya.
========================================================= */

// GET /api/v1/students?batch=<uuid>
func (ctrl *UserController) GetStudents(c *fiber.Ctx) error {
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

	var students []model.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("user_role = ? AND user_batch_id = ?", constants.RoleStudent, batchID).
		Order("user_roll_no ASC").
		Find(&students).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, len(students), fiber.Map{"students": students})
}

// GET /api/v1/students/:id
func (ctrl *UserController) GetStudent(c *fiber.Ctx) error {
	actor, err := guard.ActorFromLocals(c)
	if err != nil {
		return err
	}
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}
	if err := ctrl.Gate.EnsureStudentAccess(c.Context(), actor, studentID); err != nil {
		return err
	}

	var student model.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&student, "user_id = ? AND user_role = ?", studentID, constants.RoleStudent).
		Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Student Not Found")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonSuccess(c, fiber.Map{"student": student})
}

// PATCH /api/v1/students/:id — nama dan/atau roll number
// Roll number harus tetap unik di dalam batch.
func (ctrl *UserController) UpdateStudent(c *fiber.Ctx) error {
	actor, err := guard.ActorFromLocals(c)
	if err != nil {
		return err
	}
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.UserName == nil && req.UserRollNo == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nothing to update")
	}

	if err := ctrl.Gate.EnsureStudentAccess(c.Context(), actor, studentID); err != nil {
		return err
	}

	var student model.UserModel
	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&student, "user_id = ? AND user_role = ?", studentID, constants.RoleStudent).
			Error; err != nil {
			return err
		}
		if req.UserRollNo != nil && student.UserBatchID != nil {
			var n int64
			if err := tx.Model(&model.UserModel{}).
				Where("user_role = ? AND user_batch_id = ? AND user_roll_no = ? AND user_id <> ?",
					constants.RoleStudent, *student.UserBatchID, *req.UserRollNo, studentID).
				Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				return fiber.NewError(fiber.StatusConflict, "Roll number already taken in this batch")
			}
			student.UserRollNo = req.UserRollNo
		}
		if req.UserName != nil {
			student.UserName = *req.UserName
		}
		return tx.Save(&student).Error
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Student Not Found")
		}
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonSuccess(c, fiber.Map{"student": student})
}

// DELETE /api/v1/students/:id
// Entry attendance lama student ikut dihapus supaya agregat tetap konsisten.
func (ctrl *UserController) DeleteStudent(c *fiber.Ctx) error {
	actor, err := guard.ActorFromLocals(c)
	if err != nil {
		return err
	}
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}
	if err := ctrl.Gate.EnsureStudentAccess(c.Context(), actor, studentID); err != nil {
		return err
	}

	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			`DELETE FROM attendance_entries WHERE attendance_entry_student_id = ?`, studentID,
		).Error; err != nil {
			return err
		}
		res := tx.Where("user_id = ? AND user_role = ?", studentID, constants.RoleStudent).
			Delete(&model.UserModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Student Not Found")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c)
}
