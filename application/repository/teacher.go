package repository

import (
	"sync"

	"smartedu.io/entities"
	"smartedu.io/infrastructure/database/connection/datastore"
	"smartedu.io/infrastructure/database/repository/mongo"
)

var teacherOnce = sync.Once{}

var teacherRepository mongo.MongoRepository[entities.Teacher]

func TeacherRepo() *mongo.MongoRepository[entities.Teacher] {
	teacherOnce.Do(func() {
		teacherRepository = mongo.MongoRepository[entities.Teacher]{Model: datastore.TeacherModel}
	})
	return &teacherRepository
}
