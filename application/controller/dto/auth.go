package dto

type RegisterUserDTO struct {
	Username  string  `json:"username" validate:"required,min=3,max=50"`
	Email     string  `json:"email" validate:"required,email,max=100"`
	Password  string  `json:"password" validate:"required,password"`
	Role      string  `json:"role" validate:"required,oneof=student teacher admin"`
	ProfileID *string `json:"profileID" validate:"omitempty,max=50"`
}

type LoginDTO struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
