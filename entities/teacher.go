package entities

import (
	"time"

	"smartedu.io/application/utils"
)

type Teacher struct {
	UserID     string  `bson:"userID" json:"userID"`
	StaffID    string  `bson:"staffID" json:"staffID"`
	FirstName  string  `bson:"firstName" json:"firstName"`
	LastName   string  `bson:"lastName" json:"lastName"`
	Department *string `bson:"department" json:"department"`
	Phone      *string `bson:"phone" json:"phone"`

	ID        string     `bson:"_id" json:"id"`
	CreatedAt time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time  `bson:"updatedAt" json:"updatedAt"`
	DeletedAt *time.Time `bson:"deletedAt" json:"deletedAt"`
}

func (model Teacher) ParseModel() any {
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
