// internals/features/attendance/controller/report_controller.go
package controller

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"kampusku_backend/internals/constants"
	"kampusku_backend/internals/features/academics/guard"
	"kampusku_backend/internals/features/attendance/model"
	"kampusku_backend/internals/features/attendance/service"
	helper "kampusku_backend/internals/helpers"
)

/* =========================================================
   Endpoint laporan. Query SQL di sini, agregasi di service (pure).
========================================================= */

type subjectReportPayload struct {
	SubjectID     uuid.UUID              `json:"subject_id"`
	TotalSessions int                    `json:"total_sessions"`
	Dates         []string               `json:"dates"`
	Report        []service.StudentTally `json:"report"`
}

// =========================================================
// GET /api/v1/attendance/subject/:id/report
// Admin pemilik chain atau teacher pengampu. Hasil dicache di redis.
// =========================================================
func (ctrl *AttendanceController) SubjectReport(c *fiber.Ctx) error {
	actor, err := guard.ActorFromLocals(c)
	if err != nil {
		return err
	}
	subjectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject id")
	}

	if actor.Role == constants.RoleTeacher {
		if err := ctrl.Gate.EnsureSubjectTeacher(c.Context(), actor, subjectID); err != nil {
			return err
		}
	} else {
		if err := ctrl.Gate.EnsureSubjectAccess(c.Context(), actor, subjectID); err != nil {
			return err
		}
	}

	if raw, ok := service.GetCachedSubjectReport(c.Context(), subjectID); ok {
		return helper.JsonSuccess(c, json.RawMessage(raw))
	}

	payload, err := ctrl.buildSubjectReport(c, subjectID)
	if err != nil {
		return err
	}

	service.CacheSubjectReport(c.Context(), subjectID, payload)
	return helper.JsonSuccess(c, payload)
}

func (ctrl *AttendanceController) buildSubjectReport(c *fiber.Ctx, subjectID uuid.UUID) (*subjectReportPayload, error) {
	db := ctrl.DB.WithContext(c.Context())

	var totalSessions int64
	if err := db.Model(&model.AttendanceModel{}).
		Where("attendance_subject_id = ?", subjectID).
		Count(&totalSessions).Error; err != nil {
		code, msg := helper.MapPGError(err)
		return nil, fiber.NewError(code, msg)
	}

	var dates []time.Time
	if err := db.Model(&model.AttendanceModel{}).
		Where("attendance_subject_id = ?", subjectID).
		Order("attendance_date ASC").
		Pluck("attendance_date", &dates).Error; err != nil {
		code, msg := helper.MapPGError(err)
		return nil, fiber.NewError(code, msg)
	}
	dateStrings := make([]string, 0, len(dates))
	for _, d := range dates {
		dateStrings = append(dateStrings, d.Format("2006-01-02"))
	}

	var rows []service.SubjectEntryRow
	err := db.Raw(`
		SELECT e.attendance_entry_student_id AS student_id,
		       u.user_name                   AS student_name,
		       COALESCE(u.user_roll_no, 0)   AS roll_no,
		       a.attendance_date             AS date,
		       e.attendance_entry_status     AS status
		FROM attendance_entries e
		JOIN attendances a ON a.attendance_id = e.attendance_entry_attendance_id
		JOIN users u ON u.user_id = e.attendance_entry_student_id
		WHERE a.attendance_subject_id = ?
		ORDER BY a.attendance_date ASC, a.attendance_created_at ASC`, subjectID).
		Scan(&rows).Error
	if err != nil {
		code, msg := helper.MapPGError(err)
		return nil, fiber.NewError(code, msg)
	}

	return &subjectReportPayload{
		SubjectID:     subjectID,
		TotalSessions: int(totalSessions),
		Dates:         dateStrings,
		Report:        service.BuildSubjectReport(rows, int(totalSessions)),
	}, nil
}

// =========================================================
// GET /api/v1/attendance/me/report
// Student melihat rekap seluruh subject-nya, dikelompokkan per semester.
// =========================================================
func (ctrl *AttendanceController) MyReport(c *fiber.Ctx) error {
	actor, err := guard.ActorFromLocals(c)
	if err != nil {
		return err
	}

	db := ctrl.DB.WithContext(c.Context())

	var rows []service.StudentEntryRow
	err = db.Raw(`
		SELECT sub.subject_id            AS subject_id,
		       sub.subject_name          AS subject_name,
		       s.semester_name           AS semester_name,
		       e.attendance_entry_status AS status
		FROM attendance_entries e
		JOIN attendances a ON a.attendance_id = e.attendance_entry_attendance_id
		JOIN subjects sub ON sub.subject_id = a.attendance_subject_id
		JOIN semesters s ON s.semester_id = sub.subject_semester_id
		WHERE e.attendance_entry_student_id = ?`, actor.ID).
		Scan(&rows).Error
	if err != nil {
		return helper.WritePGError(c, err)
	}

	totals, err := ctrl.sessionTotalsForStudent(c, actor.ID)
	if err != nil {
		return err
	}

	report := service.BuildStudentReport(rows, totals)
	return helper.JsonList(c, len(report), fiber.Map{"report": report})
}

// sessionTotalsForStudent: jumlah sesi marking per subject yang pernah
// memuat entry student ini (termasuk sesi sebelum/tanpa si student).
func (ctrl *AttendanceController) sessionTotalsForStudent(c *fiber.Ctx, studentID uuid.UUID) (map[uuid.UUID]int, error) {
	var counts []struct {
		SubjectID uuid.UUID
		Total     int
	}
	err := ctrl.DB.WithContext(c.Context()).Raw(`
		SELECT a.attendance_subject_id AS subject_id, COUNT(*) AS total
		FROM attendances a
		WHERE a.attendance_subject_id IN (
			SELECT DISTINCT att.attendance_subject_id
			FROM attendance_entries e
			JOIN attendances att ON att.attendance_id = e.attendance_entry_attendance_id
			WHERE e.attendance_entry_student_id = ?
		)
		GROUP BY a.attendance_subject_id`, studentID).
		Scan(&counts).Error
	if err != nil {
		code, msg := helper.MapPGError(err)
		return nil, fiber.NewError(code, msg)
	}

	totals := make(map[uuid.UUID]int, len(counts))
	for _, row := range counts {
		totals[row.SubjectID] = row.Total
	}
	return totals, nil
}

// =========================================================
// GET /api/v1/attendance/me/report/subject/:id
// Posisi student di satu subject. Subject di luar batch-nya → 404.
// =========================================================
func (ctrl *AttendanceController) MySubjectReport(c *fiber.Ctx) error {
	actor, err := guard.ActorFromLocals(c)
	if err != nil {
		return err
	}
	subjectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject id")
	}

	db := ctrl.DB.WithContext(c.Context())

	// subject harus berada di batch student
	var subjectInfo struct {
		SubjectID    *uuid.UUID
		SubjectName  string
		SemesterName int
	}
	err = db.Raw(`
		SELECT sub.subject_id, sub.subject_name, s.semester_name
		FROM subjects sub
		JOIN semesters s ON s.semester_id = sub.subject_semester_id
		JOIN users u ON u.user_batch_id = s.semester_batch_id
		WHERE sub.subject_id = ? AND u.user_id = ?`, subjectID, actor.ID).
		Scan(&subjectInfo).Error
	if err != nil {
		return helper.WritePGError(c, err)
	}
	if subjectInfo.SubjectID == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Subject Not Found")
	}

	var totalSessions int64
	if err := db.Model(&model.AttendanceModel{}).
		Where("attendance_subject_id = ?", subjectID).
		Count(&totalSessions).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []service.StudentEntryRow
	err = db.Raw(`
		SELECT a.attendance_subject_id   AS subject_id,
		       e.attendance_entry_status AS status
		FROM attendance_entries e
		JOIN attendances a ON a.attendance_id = e.attendance_entry_attendance_id
		WHERE e.attendance_entry_student_id = ? AND a.attendance_subject_id = ?`,
		actor.ID, subjectID).
		Scan(&rows).Error
	if err != nil {
		return helper.WritePGError(c, err)
	}
	for i := range rows {
		rows[i].SubjectName = subjectInfo.SubjectName
		rows[i].SemesterName = subjectInfo.SemesterName
	}

	report := service.BuildStudentReport(rows, map[uuid.UUID]int{subjectID: int(totalSessions)})
	if len(report) == 0 {
		// belum pernah ditandai sama sekali
		standing := service.SubjectStanding{
			SubjectID:     subjectID,
			SubjectName:   subjectInfo.SubjectName,
			TotalSessions: int(totalSessions),
			Percentage:    service.FormatPercentage(0, int(totalSessions), 0),
		}
		return helper.JsonSuccess(c, fiber.Map{"subject": standing})
	}
	return helper.JsonSuccess(c, fiber.Map{"subject": report[0].Subjects[0]})
}
