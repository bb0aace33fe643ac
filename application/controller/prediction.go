package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	apperrors "smartedu.io/application/appErrors"
	"smartedu.io/application/constants"
	"smartedu.io/application/controller/dto"
	"smartedu.io/application/interfaces"
	"smartedu.io/application/repository"
	prediction_usecases "smartedu.io/application/usecases/prediction"
	"smartedu.io/entities"
	mongo_repo "smartedu.io/infrastructure/database/repository/mongo"
	"smartedu.io/infrastructure/logger"
	messagequeue "smartedu.io/infrastructure/message_queue"
	queue_tasks "smartedu.io/infrastructure/message_queue/tasks"
	mq_types "smartedu.io/infrastructure/message_queue/types"
	"smartedu.io/infrastructure/ml"
	server_response "smartedu.io/infrastructure/serverResponse"
	"smartedu.io/infrastructure/validator"
)

func PredictPerformance(ctx *interfaces.ApplicationContext[dto.PredictPerformanceDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}
	semester := ""
	if ctx.Body.Semester != nil {
		semester = *ctx.Body.Semester
	}
	studentID := ctx.GetStringContextData("StudentID")
	prediction, err := prediction_usecases.PredictPerformanceUseCase(ctx.Ctx, studentID, semester)
	if err != nil {
		return
	}

	if prediction.DropoutRisk > ml.PredictionService.Recommender.DropoutAlertThreshold {
		enqueueAdvisorAlert(prediction)
	}

	var responseCode *uint
	if prediction.FallbackUsed {
		responseCode = &constants.PREDICTION_DEGRADED
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "performance predicted", prediction, nil, responseCode)
}

func FetchStudentPredictions(ctx *interfaces.ApplicationContext[any]) {
	studentID := ctx.GetStringContextData("StudentID")
	student, err := repository.StudentRepo().FindByID(studentID)
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err, nil)
		return
	}
	if student == nil {
		apperrors.NotFoundError(ctx.Ctx, "Student not found")
		return
	}
	var sort interface{} = map[string]any{"predictionDate": -1}
	predictions, err := repository.PredictionRepo().FindMany(map[string]any{
		"studentID": studentID,
	}, mongo_repo.FindOptions{Sort: &sort})
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err, nil)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "predictions fetched", predictions, nil, nil)
}

func enqueueAdvisorAlert(prediction *entities.PerformancePrediction) {
	student, err := repository.StudentRepo().FindByID(prediction.StudentID)
	if err != nil || student == nil {
		logger.Error("could not resolve student for advisor alert", logger.LoggerOptions{
			Key:  "studentID",
			Data: prediction.StudentID,
		})
		return
	}
	payload, err := json.Marshal(queue_tasks.AdvisorAlertPayload{
		StudentID:       student.ID,
		StudentName:     fmt.Sprintf("%s %s", student.FirstName, student.LastName),
		MatricNumber:    student.MatricNumber,
		GPAPrediction:   prediction.GPAPrediction,
		FailureRisk:     prediction.FailureRisk,
		DropoutRisk:     prediction.DropoutRisk,
		Recommendations: prediction.Recommendations,
	})
	if err != nil {
		logger.Error("error marshalling payload for advisor alert queue")
		return
	}
	messagequeue.TaskQueue.Enqueue(mq_types.QueueTask{
		Payload:   payload,
		Name:      queue_tasks.HandleAdvisorAlertTaskName,
		Priority:  mq_types.High,
		ProcessIn: 1,
	})
}
