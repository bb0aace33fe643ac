package datastore

import (
	"context"
	"os"
	"time"

	"smartedu.io/infrastructure/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UserModel           *mongo.Collection
	StudentModel        *mongo.Collection
	TeacherModel        *mongo.Collection
	SubjectModel        *mongo.Collection
	AttendanceModel     *mongo.Collection
	AcademicRecordModel *mongo.Collection
	PredictionModel     *mongo.Collection

	cancelConn *context.CancelFunc
)

func ConnectToDatabase() {
	cancelConn = connectMongo()
}

func CleanUp() {
	if cancelConn != nil {
		(*cancelConn)()
	}
}

func connectMongo() *context.CancelFunc {
	url := os.Getenv("DB_URL")

	if url == "" {
		logger.Error("mongo url missing")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)

	clientOpts := options.Client().ApplyURI(url)
	clientOpts.SetMinPoolSize(5)
	clientOpts.SetMaxPoolSize(10)

	client, err := mongo.Connect(ctx, clientOpts)

	if err != nil {
		logger.Warning("an error occured while starting the database", logger.LoggerOptions{Key: "error", Data: err})
		return &cancel
	}

	db := client.Database(os.Getenv("DB_NAME"))
	setUpIndexes(ctx, db)

	logger.Info("connected to mongodb successfully")
	return &cancel
}

// Set up the indexes for the database
func setUpIndexes(ctx context.Context, db *mongo.Database) {
	UserModel = db.Collection("Users")
	UserModel.Indexes().CreateMany(ctx, []mongo.IndexModel{{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	}, {
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}})

	StudentModel = db.Collection("Students")
	StudentModel.Indexes().CreateMany(ctx, []mongo.IndexModel{{
		Keys:    bson.D{{Key: "matricNumber", Value: 1}},
		Options: options.Index().SetUnique(true),
	}})

	TeacherModel = db.Collection("Teachers")

	SubjectModel = db.Collection("Subjects")
	SubjectModel.Indexes().CreateMany(ctx, []mongo.IndexModel{{
		Keys:    bson.D{{Key: "code", Value: 1}},
		Options: options.Index().SetUnique(true),
	}})

	AttendanceModel = db.Collection("Attendance")
	AttendanceModel.Indexes().CreateMany(ctx, []mongo.IndexModel{{
		Keys:    bson.D{{Key: "studentID", Value: 1}},
		Options: options.Index(),
	}, {
		Keys:    bson.D{{Key: "subjectID", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index(),
	}})

	AcademicRecordModel = db.Collection("AcademicRecords")
	AcademicRecordModel.Indexes().CreateMany(ctx, []mongo.IndexModel{{
		Keys:    bson.D{{Key: "studentID", Value: 1}},
		Options: options.Index(),
	}, {
		Keys:    bson.D{{Key: "studentID", Value: 1}, {Key: "semester", Value: 1}},
		Options: options.Index(),
	}})

	PredictionModel = db.Collection("PerformancePredictions")
	PredictionModel.Indexes().CreateMany(ctx, []mongo.IndexModel{{
		Keys:    bson.D{{Key: "studentID", Value: 1}, {Key: "predictionDate", Value: -1}},
		Options: options.Index(),
	}})

	logger.Info("mongodb indexes set up successfully")
}
