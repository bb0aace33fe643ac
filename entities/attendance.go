package entities

import (
	"time"

	"smartedu.io/application/utils"
)

// Attendance rows are append-only. RecognitionConfidence is nil for records
// entered manually instead of through the face matcher.
type Attendance struct {
	StudentID             string    `bson:"studentID" json:"studentID"`
	SubjectID             string    `bson:"subjectID" json:"subjectID"`
	SubjectName           string    `bson:"subjectName" json:"subjectName"`
	Date                  time.Time `bson:"date" json:"date"`
	Status                string    `bson:"status" json:"status"` // present, absent or late
	RecognitionConfidence *float64  `bson:"recognitionConfidence" json:"recognitionConfidence"`

	ID        string     `bson:"_id" json:"id"`
	CreatedAt time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time  `bson:"updatedAt" json:"updatedAt"`
	DeletedAt *time.Time `bson:"deletedAt" json:"deletedAt"`
}

func (model Attendance) ParseModel() any {
	now := time.Now()
	if model.CreatedAt.IsZero() {
		model.CreatedAt = now
		if model.ID == "" {
			model.ID = utils.GenerateULIDString()
		}
	}
	model.UpdatedAt = now
	return &model
}
