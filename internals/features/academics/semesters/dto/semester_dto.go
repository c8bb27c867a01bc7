// internals/features/academics/semesters/dto/semester_dto.go
package dto

import "github.com/google/uuid"

type CreateSemesterRequest struct {
	SemesterName    int       `json:"semester_name" validate:"required,min=1,max=8"`
	SemesterBatchID uuid.UUID `json:"semester_batch_id" validate:"required"`
}

type UpdateSemesterRequest struct {
	SemesterArchived *bool `json:"semester_archived"`
}
