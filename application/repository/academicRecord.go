package repository

import (
	"sync"

	"smartedu.io/entities"
	"smartedu.io/infrastructure/database/connection/datastore"
	"smartedu.io/infrastructure/database/repository/mongo"
)

var academicRecordOnce = sync.Once{}

var academicRecordRepository mongo.MongoRepository[entities.AcademicRecord]

func AcademicRecordRepo() *mongo.MongoRepository[entities.AcademicRecord] {
	academicRecordOnce.Do(func() {
		academicRecordRepository = mongo.MongoRepository[entities.AcademicRecord]{Model: datastore.AcademicRecordModel}
	})
	return &academicRecordRepository
}
