package entities

import (
	"time"

	"smartedu.io/application/utils"
)

// This represents an account that can sign in to smartedu
type User struct {
	Username     string  `bson:"username" json:"username"`
	Email        string  `bson:"email" json:"email"`
	PasswordHash string  `bson:"passwordHash" json:"-"`
	Role         string  `bson:"role" json:"role"` // student, teacher or admin
	ProfileID    *string `bson:"profileID" json:"profileID"`
	Deactivated  bool    `bson:"deactivated" json:"deactivated"`

	ID        string     `bson:"_id" json:"id"`
	CreatedAt time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time  `bson:"updatedAt" json:"updatedAt"`
	DeletedAt *time.Time `bson:"deletedAt" json:"deletedAt"`
}

func (model User) ParseModel() any {
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
