package entities

import (
	"time"

	"smartedu.io/application/utils"
)

// This represents an enrolled student. FaceImageURL points at the reference
// photo the embedding gallery is built from; students without one are simply
// never matched.
type Student struct {
	UserID         string     `bson:"userID" json:"userID"`
	MatricNumber   string     `bson:"matricNumber" json:"matricNumber"`
	FirstName      string     `bson:"firstName" json:"firstName"`
	LastName       string     `bson:"lastName" json:"lastName"`
	DateOfBirth    *time.Time `bson:"dateOfBirth" json:"dateOfBirth"`
	Gender         *string    `bson:"gender" json:"gender"`
	Phone          *string    `bson:"phone" json:"phone"`
	Address        *string    `bson:"address" json:"address"`
	EnrollmentDate time.Time  `bson:"enrollmentDate" json:"enrollmentDate"`
	FaceImageURL   *string    `bson:"faceImageURL" json:"faceImageURL"`

	ID        string     `bson:"_id" json:"id"`
	CreatedAt time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time  `bson:"updatedAt" json:"updatedAt"`
	DeletedAt *time.Time `bson:"deletedAt" json:"deletedAt"`
}

func (model Student) ParseModel() any {
	now := time.Now()
	if model.CreatedAt.IsZero() {
		model.CreatedAt = now
		if model.ID == "" {
			model.ID = utils.GenerateULIDString()
		}
		if model.EnrollmentDate.IsZero() {
			model.EnrollmentDate = now
		}
	}
	model.UpdatedAt = now
	return &model
}
