package dto

import "time"

type CreateSubjectDTO struct {
	Name    string `json:"name" validate:"required,max=100"`
	Code    string `json:"code" validate:"required,max=10"`
	Credits *uint  `json:"credits" validate:"omitempty,min=1,max=10"`
}

type CreateAcademicRecordDTO struct {
	StudentID      string     `json:"studentID" validate:"required"`
	SubjectID      string     `json:"subjectID" validate:"required"`
	Semester       string     `json:"semester" validate:"required,semester"`
	AssessmentType string     `json:"assessmentType" validate:"required,oneof=exam assignment quiz project"`
	Score          float64    `json:"score" validate:"min=0"`
	MaxScore       float64    `json:"maxScore" validate:"required,gt=0"`
	Date           *time.Time `json:"date"`
	Remarks        *string    `json:"remarks" validate:"omitempty,max=500"`
}
