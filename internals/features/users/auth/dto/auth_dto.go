// internals/features/users/auth/dto/auth_dto.go
package dto

type SignupRequest struct {
	Name           string `json:"name" validate:"required,max=80"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	RollNo         int    `json:"roll_no" validate:"required,min=1"`
	RegistrationNo string `json:"registration_no" validate:"required,max=40"`
	BatchCode      string `json:"batch_code" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	// token biasanya lewat URL param; field ini fallback untuk client lama
	Token    string `json:"token"`
	Password string `json:"password" validate:"required,min=8"`
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}
