package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	apperrors "smartedu.io/application/appErrors"
	"smartedu.io/application/controller/dto"
	"smartedu.io/application/interfaces"
	"smartedu.io/application/repository"
	student_usecases "smartedu.io/application/usecases/student"
	"smartedu.io/application/utils"
	"smartedu.io/infrastructure/logger"
	messagequeue "smartedu.io/infrastructure/message_queue"
	queue_tasks "smartedu.io/infrastructure/message_queue/tasks"
	mq_types "smartedu.io/infrastructure/message_queue/types"
	server_response "smartedu.io/infrastructure/serverResponse"
	"smartedu.io/infrastructure/validator"
)

func CreateStudent(ctx *interfaces.ApplicationContext[dto.CreateStudentDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}
	student, err := student_usecases.CreateStudentUseCase(ctx.Ctx, ctx.Body)
	if err != nil {
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusCreated, "student enrolled", student, nil, nil)
}

func FetchStudents(ctx *interfaces.ApplicationContext[any]) {
	studentRepo := repository.StudentRepo()
	students, err := studentRepo.FindMany(map[string]any{
		"deletedAt": nil,
	})
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err, nil)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "students fetched", students, nil, nil)
}

func FetchStudentByID(ctx *interfaces.ApplicationContext[any]) {
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
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "student fetched", student, nil, nil)
}

func UpdateStudent(ctx *interfaces.ApplicationContext[dto.UpdateStudentDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}
	studentID := ctx.GetStringContextData("StudentID")
	studentRepo := repository.StudentRepo()
	student, err := studentRepo.FindByID(studentID)
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err, nil)
		return
	}
	if student == nil {
		apperrors.NotFoundError(ctx.Ctx, "Student not found")
		return
	}

	payload := map[string]any{}
	raw, _ := json.Marshal(ctx.Body)
	json.Unmarshal(raw, &payload)
	for key, value := range payload {
		if value == nil {
			delete(payload, key)
		}
	}
	if len(payload) == 0 {
		apperrors.ClientError(ctx.Ctx, "no fields to update", nil, nil)
		return
	}
	_, err = studentRepo.UpdatePartialByID(context.Background(), studentID, payload)
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err, nil)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "student updated", nil, nil, nil)
}

func DeleteStudent(ctx *interfaces.ApplicationContext[any]) {
	studentID := ctx.GetStringContextData("StudentID")
	studentRepo := repository.StudentRepo()
	student, err := studentRepo.FindByID(studentID)
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err, nil)
		return
	}
	if student == nil {
		apperrors.NotFoundError(ctx.Ctx, "Student not found")
		return
	}
	_, err = studentRepo.UpdatePartialByID(context.Background(), studentID, map[string]any{
		"deletedAt":    utils.GetTimePointer(time.Now()),
		"faceImageURL": nil,
	})
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err, nil)
		return
	}

	// drop the student from the gallery too
	payload, err := json.Marshal(queue_tasks.GalleryRefreshPayload{Reason: "student removed"})
	if err != nil {
		logger.Error("error marshalling payload for gallery refresh queue")
	} else {
		messagequeue.TaskQueue.Enqueue(mq_types.QueueTask{
			Payload:   payload,
			Name:      queue_tasks.HandleGalleryRefreshTaskName,
			Priority:  mq_types.High,
			ProcessIn: 1,
		})
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "student removed", nil, nil, nil)
}

func SetStudentReferenceImage(ctx *interfaces.ApplicationContext[dto.SetReferenceImageDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}
	studentID := ctx.GetStringContextData("StudentID")
	if err := student_usecases.SetReferenceImageUseCase(ctx.Ctx, studentID, ctx.Body.ImageURL); err != nil {
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "reference image updated", nil, nil, nil)
}
