// internals/features/attendance/controller/attendance_controller.go
package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	"kampusku_backend/internals/features/academics/guard"
	"kampusku_backend/internals/features/attendance/dto"
	"kampusku_backend/internals/features/attendance/model"
	"kampusku_backend/internals/features/attendance/service"
	helper "kampusku_backend/internals/helpers"
	"kampusku_backend/internals/observability"
)

// Timestamp marking memakai offset kampus, bukan server.
var campusZone = time.FixedZone("UTC+5", 5*60*60)

type AttendanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Gate     *guard.Gate
}

func New(db *gorm.DB, validate *validator.Validate) *AttendanceController {
	return &AttendanceController{
		DB:       db,
		Validate: validate,
		Gate:     guard.NewGate(guard.NewGormResolver(db)),
	}
}

// =========================================================
// POST /api/v1/attendance
// Teacher pengampu menandai satu sesi: daftar (student, status).
// =========================================================
func (ctrl *AttendanceController) CreateAttendance(c *fiber.Ctx) error {
	actor, err := guard.ActorFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.CreateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctrl.Gate.EnsureSubjectTeacher(c.Context(), actor, req.SubjectID); err != nil {
		return err
	}

	markDate := time.Now().In(campusZone)
	if req.Date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", req.Date, campusZone)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date")
		}
		markDate = parsed
	}

	// semua student yang ditandai harus anggota batch subject ini
	batchID, err := ctrl.subjectBatchID(c, req.SubjectID)
	if err != nil {
		return err
	}
	studentIDs := make([]uuid.UUID, 0, len(req.Entries))
	for _, entry := range req.Entries {
		if !model.ValidStatus(entry.Status) {
			return helper.JsonError(c, fiber.StatusBadRequest,
				"Invalid attendance status: "+string(entry.Status))
		}
		studentIDs = append(studentIDs, entry.StudentID)
	}
	var member int64
	if err := ctrl.DB.WithContext(c.Context()).
		Table("users").
		Where("user_id IN ? AND user_role = ? AND user_batch_id = ?",
			studentIDs, constants.RoleStudent, batchID).
		Count(&member).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if int(member) != len(studentIDs) {
		return helper.JsonError(c, fiber.StatusBadRequest, "One or more students do not belong to this batch")
	}

	attendance := model.AttendanceModel{
		AttendanceSubjectID: req.SubjectID,
		AttendanceDate:      datatypes.Date(markDate),
		AttendanceMarkedBy:  actor.ID,
	}
	for _, entry := range req.Entries {
		attendance.Entries = append(attendance.Entries, model.AttendanceEntryModel{
			AttendanceEntryStudentID: entry.StudentID,
			AttendanceEntryStatus:    entry.Status,
		})
	}

	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&attendance).Error
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}

	observability.AttendanceMarked.Inc()
	service.InvalidateSubjectReport(c.Context(), req.SubjectID)
	log.Printf("[INFO] attendance subject %s ditandai oleh %s (%d student)",
		req.SubjectID, actor.ID, len(req.Entries))
	return helper.JsonCreated(c, fiber.Map{"attendance": attendance})
}

func (ctrl *AttendanceController) subjectBatchID(c *fiber.Ctx, subjectID uuid.UUID) (uuid.UUID, error) {
	var batchID *uuid.UUID
	err := ctrl.DB.WithContext(c.Context()).Raw(`
		SELECT s.semester_batch_id
		FROM subjects sub
		JOIN semesters s ON s.semester_id = sub.subject_semester_id
		WHERE sub.subject_id = ?`, subjectID).Scan(&batchID).Error
	if err != nil {
		code, msg := helper.MapPGError(err)
		return uuid.Nil, fiber.NewError(code, msg)
	}
	if batchID == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusNotFound, "Subject Not Found")
	}
	return *batchID, nil
}

// =========================================================
// GET /api/v1/attendance/:id
// =========================================================
func (ctrl *AttendanceController) GetAttendance(c *fiber.Ctx) error {
	actor, err := guard.ActorFromLocals(c)
	if err != nil {
		return err
	}
	attendanceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid attendance id")
	}
	if err := ctrl.Gate.EnsureAttendanceAccess(c.Context(), actor, attendanceID); err != nil {
		return err
	}

	var attendance model.AttendanceModel
	if err := ctrl.DB.WithContext(c.Context()).
		Preload("Entries").
		First(&attendance, "attendance_id = ?", attendanceID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Attendance Not Found")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonSuccess(c, fiber.Map{"attendance": attendance})
}

// =========================================================
// DELETE /api/v1/attendance/:id
// =========================================================
func (ctrl *AttendanceController) DeleteAttendance(c *fiber.Ctx) error {
	actor, err := guard.ActorFromLocals(c)
	if err != nil {
		return err
	}
	attendanceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid attendance id")
	}
	if err := ctrl.Gate.EnsureAttendanceAccess(c.Context(), actor, attendanceID); err != nil {
		return err
	}

	var attendance model.AttendanceModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&attendance, "attendance_id = ?", attendanceID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Attendance Not Found")
		}
		return helper.WritePGError(c, err)
	}

	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("attendance_entry_attendance_id = ?", attendanceID).
			Delete(&model.AttendanceEntryModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&attendance).Error
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}

	service.InvalidateSubjectReport(c.Context(), attendance.AttendanceSubjectID)
	return helper.JsonDeleted(c)
}
