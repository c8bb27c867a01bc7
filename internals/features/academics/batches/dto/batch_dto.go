// internals/features/academics/batches/dto/batch_dto.go
package dto

type CreateBatchRequest struct {
	BatchName int `json:"batch_name" validate:"required,gt=0"`
}

type UpdateBatchRequest struct {
	BatchName     *int  `json:"batch_name" validate:"omitempty,gt=0"`
	BatchArchived *bool `json:"batch_archived"`
}
