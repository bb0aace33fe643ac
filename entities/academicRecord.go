package entities

import (
	"time"

	"smartedu.io/application/utils"
)

type AcademicRecord struct {
	StudentID      string    `bson:"studentID" json:"studentID"`
	SubjectID      string    `bson:"subjectID" json:"subjectID"`
	SubjectName    string    `bson:"subjectName" json:"subjectName"`
	Semester       string    `bson:"semester" json:"semester"`
	AssessmentType string    `bson:"assessmentType" json:"assessmentType"` // exam, assignment, quiz or project
	Score          float64   `bson:"score" json:"score"`
	MaxScore       float64   `bson:"maxScore" json:"maxScore"`
	Date           time.Time `bson:"date" json:"date"`
	Remarks        *string   `bson:"remarks" json:"remarks"`

	ID        string     `bson:"_id" json:"id"`
	CreatedAt time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time  `bson:"updatedAt" json:"updatedAt"`
	DeletedAt *time.Time `bson:"deletedAt" json:"deletedAt"`
}

func (model AcademicRecord) ParseModel() any {
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
