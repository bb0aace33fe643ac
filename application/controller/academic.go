package controller

import (
	"context"
	"net/http"
	"strings"
	"time"

	apperrors "smartedu.io/application/appErrors"
	"smartedu.io/application/controller/dto"
	"smartedu.io/application/interfaces"
	"smartedu.io/application/repository"
	"smartedu.io/entities"
	mongo_repo "smartedu.io/infrastructure/database/repository/mongo"
	server_response "smartedu.io/infrastructure/serverResponse"
	"smartedu.io/infrastructure/validator"
)

func CreateSubject(ctx *interfaces.ApplicationContext[dto.CreateSubjectDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}
	code := strings.ToUpper(ctx.Body.Code)
	subjectRepo := repository.SubjectRepo()
	existing, err := subjectRepo.CountDocs(map[string]any{
		"code": code,
	})
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err, nil)
		return
	}
	if existing != 0 {
		apperrors.EntityAlreadyExistsError(ctx.Ctx, "a subject with this code already exists")
		return
	}
	credits := 0
	if ctx.Body.Credits != nil {
		credits = int(*ctx.Body.Credits)
	}
	subject, err := subjectRepo.CreateOne(context.Background(), entities.Subject{
		Name:    ctx.Body.Name,
		Code:    code,
		Credits: credits,
	})
	if err != nil {
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusCreated, "subject created", subject, nil, nil)
}

func FetchSubjects(ctx *interfaces.ApplicationContext[any]) {
	subjects, err := repository.SubjectRepo().FindMany(map[string]any{
		"deletedAt": nil,
	})
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err, nil)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "subjects fetched", subjects, nil, nil)
}

func CreateAcademicRecord(ctx *interfaces.ApplicationContext[dto.CreateAcademicRecordDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}
	if ctx.Body.Score > ctx.Body.MaxScore {
		apperrors.ClientError(ctx.Ctx, "score cannot exceed max score", nil, nil)
		return
	}
	student, err := repository.StudentRepo().FindByID(ctx.Body.StudentID)
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err, nil)
		return
	}
	if student == nil {
		apperrors.NotFoundError(ctx.Ctx, "Student not found")
		return
	}
	subject, err := repository.SubjectRepo().FindByID(ctx.Body.SubjectID)
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err, nil)
		return
	}
	if subject == nil {
		apperrors.NotFoundError(ctx.Ctx, "Subject not found")
		return
	}

	date := time.Now()
	if ctx.Body.Date != nil {
		date = *ctx.Body.Date
	}
	record, err := repository.AcademicRecordRepo().CreateOne(context.Background(), entities.AcademicRecord{
		StudentID:      student.ID,
		SubjectID:      subject.ID,
		SubjectName:    subject.Name,
		Semester:       ctx.Body.Semester,
		AssessmentType: ctx.Body.AssessmentType,
		Score:          ctx.Body.Score,
		MaxScore:       ctx.Body.MaxScore,
		Date:           date,
		Remarks:        ctx.Body.Remarks,
	})
	if err != nil {
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusCreated, "academic record created", record, nil, nil)
}

func FetchStudentAcademicRecords(ctx *interfaces.ApplicationContext[any]) {
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
	filter := map[string]any{
		"studentID": studentID,
	}
	if semester := ctx.GetStringContextData("Semester"); semester != "" {
		filter["semester"] = semester
	}
	var sort interface{} = map[string]any{"date": -1}
	records, err := repository.AcademicRecordRepo().FindMany(filter, mongo_repo.FindOptions{Sort: &sort})
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err, nil)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "academic records fetched", records, nil, nil)
}
