// internals/features/academics/subjects/dto/subject_dto.go
package dto

import "github.com/google/uuid"

type CreateSubjectRequest struct {
	SubjectName       string    `json:"subject_name" validate:"required,min=2,max=120"`
	SubjectSemesterID uuid.UUID `json:"subject_semester_id" validate:"required"`
}

type UpdateSubjectRequest struct {
	SubjectTeacherID *uuid.UUID `json:"subject_teacher_id"`
	SubjectArchived  *bool      `json:"subject_archived"`
}

type CreateDefaultSubjectRequest struct {
	DefaultSubjectName        string `json:"default_subject_name" validate:"required,min=2,max=120"`
	DefaultSubjectCreditHours int    `json:"default_subject_credit_hours" validate:"required,min=1,max=10"`
}

type UpdateDefaultSubjectRequest struct {
	DefaultSubjectName        *string `json:"default_subject_name" validate:"omitempty,min=2,max=120"`
	DefaultSubjectCreditHours *int    `json:"default_subject_credit_hours" validate:"omitempty,min=1,max=10"`
}
