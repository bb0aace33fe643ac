package dto

import "time"

type CreateStudentDTO struct {
	MatricNumber   string     `json:"matricNumber" validate:"required,max=20"`
	FirstName      string     `json:"firstName" validate:"required,max=50,name_spacial_char"`
	LastName       string     `json:"lastName" validate:"required,max=50,name_spacial_char"`
	DateOfBirth    *time.Time `json:"dateOfBirth"`
	Gender         *string    `json:"gender" validate:"omitempty,oneof=male female other"`
	Phone          *string    `json:"phone" validate:"omitempty,max=20"`
	Address        *string    `json:"address" validate:"omitempty,max=200"`
	EnrollmentDate *time.Time `json:"enrollmentDate"`
	FaceImageURL   *string    `json:"faceImageURL" validate:"omitempty,url"`
}

type UpdateStudentDTO struct {
	FirstName   *string    `json:"firstName" validate:"omitempty,max=50,name_spacial_char"`
	LastName    *string    `json:"lastName" validate:"omitempty,max=50,name_spacial_char"`
	Gender      *string    `json:"gender" validate:"omitempty,oneof=male female other"`
	Phone       *string    `json:"phone" validate:"omitempty,max=20"`
	Address     *string    `json:"address" validate:"omitempty,max=200"`
	DateOfBirth *time.Time `json:"dateOfBirth"`
}

type SetReferenceImageDTO struct {
	ImageURL string `json:"imageURL" validate:"required,url"`
}
