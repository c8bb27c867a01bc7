// internals/features/users/user/dto/user_dto.go
package dto

type UpdateMeRequest struct {
	UserName  *string `json:"user_name" validate:"omitempty,min=2,max=80"`
	UserEmail *string `json:"user_email" validate:"omitempty,email"`
}

type CreateDepartmentRequest struct {
	Department string `json:"department" validate:"required,min=2,max=80"`
	UserEmail  string `json:"user_email" validate:"required,email"`
}

type UpdateDepartmentRequest struct {
	UserEmail *string `json:"user_email" validate:"omitempty,email"`
}

type CreateTeacherRequest struct {
	UserName        string `json:"user_name" validate:"required,min=2,max=80"`
	UserEmail       string `json:"user_email" validate:"required,email"`
	UserGender      string `json:"user_gender" validate:"required,oneof=male female"`
	UserDesignation string `json:"user_designation" validate:"required,min=2,max=40"`
}

type UpdateTeacherRequest struct {
	UserDesignation *string `json:"user_designation" validate:"omitempty,min=2,max=40"`
}

type UpdateStudentRequest struct {
	UserName   *string `json:"user_name" validate:"omitempty,min=2,max=80"`
	UserRollNo *int    `json:"user_roll_no" validate:"omitempty,gt=0"`
}
