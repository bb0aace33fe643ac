package repository

import (
	"sync"

	"smartedu.io/entities"
	"smartedu.io/infrastructure/database/connection/datastore"
	"smartedu.io/infrastructure/database/repository/mongo"
)

var predictionOnce = sync.Once{}

var predictionRepository mongo.MongoRepository[entities.PerformancePrediction]

func PredictionRepo() *mongo.MongoRepository[entities.PerformancePrediction] {
	predictionOnce.Do(func() {
		predictionRepository = mongo.MongoRepository[entities.PerformancePrediction]{Model: datastore.PredictionModel}
	})
	return &predictionRepository
}
