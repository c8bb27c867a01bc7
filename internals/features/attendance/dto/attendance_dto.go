// internals/features/attendance/dto/attendance_dto.go
package dto

import (
	"github.com/google/uuid"

	"kampusku_backend/internals/features/attendance/model"
)

type MarkEntryRequest struct {
	StudentID uuid.UUID              `json:"student_id" validate:"required"`
	Status    model.AttendanceStatus `json:"status" validate:"required,oneof=present absent leave"`
}

type CreateAttendanceRequest struct {
	SubjectID uuid.UUID          `json:"subject_id" validate:"required"`
	Date      string             `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Entries   []MarkEntryRequest `json:"entries" validate:"required,min=1,dive"`
}
