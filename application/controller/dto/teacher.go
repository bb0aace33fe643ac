package dto

type CreateTeacherDTO struct {
	StaffID    string  `json:"staffID" validate:"required,max=20"`
	FirstName  string  `json:"firstName" validate:"required,max=50,name_spacial_char"`
	LastName   string  `json:"lastName" validate:"required,max=50,name_spacial_char"`
	Department *string `json:"department" validate:"omitempty,max=100"`
	Phone      *string `json:"phone" validate:"omitempty,max=20"`
}
