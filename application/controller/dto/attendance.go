package dto

import "time"

type MarkAttendanceDTO struct {
	SubjectID string     `json:"subjectID" validate:"required"`
	FrameURL  string     `json:"frameURL" validate:"required,url"`
	Date      *time.Time `json:"date"`
}

type ManualAttendanceDTO struct {
	StudentID string     `json:"studentID" validate:"required"`
	SubjectID string     `json:"subjectID" validate:"required"`
	Status    string     `json:"status" validate:"required,oneof=present absent late"`
	Date      *time.Time `json:"date"`
}
