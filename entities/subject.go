package entities

import (
	"time"

	"smartedu.io/application/utils"
)

type Subject struct {
	Name        string  `bson:"name" json:"name"`
	Code        string  `bson:"code" json:"code"`
	Description *string `bson:"description" json:"description"`
	Credits     int     `bson:"credits" json:"credits"`

	ID        string     `bson:"_id" json:"id"`
	CreatedAt time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time  `bson:"updatedAt" json:"updatedAt"`
	DeletedAt *time.Time `bson:"deletedAt" json:"deletedAt"`
}

func (model Subject) ParseModel() any {
	now := time.Now()
	if model.CreatedAt.IsZero() {
		model.CreatedAt = now
		if model.ID == "" {
			model.ID = utils.GenerateULIDString()
		}
		if model.Credits == 0 {
			model.Credits = 3
		}
	}
	model.UpdatedAt = now
	return &model
}
