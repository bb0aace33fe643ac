package repository

import (
	"sync"

	"smartedu.io/entities"
	"smartedu.io/infrastructure/database/connection/datastore"
	"smartedu.io/infrastructure/database/repository/mongo"
)

var subjectOnce = sync.Once{}

var subjectRepository mongo.MongoRepository[entities.Subject]

func SubjectRepo() *mongo.MongoRepository[entities.Subject] {
	subjectOnce.Do(func() {
		subjectRepository = mongo.MongoRepository[entities.Subject]{Model: datastore.SubjectModel}
	})
	return &subjectRepository
}
