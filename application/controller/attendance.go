package controller

import (
	"net/http"

	apperrors "smartedu.io/application/appErrors"
	"smartedu.io/application/controller/dto"
	"smartedu.io/application/interfaces"
	"smartedu.io/application/repository"
	attendance_usecases "smartedu.io/application/usecases/attendance"
	mongo_repo "smartedu.io/infrastructure/database/repository/mongo"
	server_response "smartedu.io/infrastructure/serverResponse"
	"smartedu.io/infrastructure/validator"
)

func MarkAttendanceFromFrame(ctx *interfaces.ApplicationContext[dto.MarkAttendanceDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}
	records, facesMatched, err := attendance_usecases.MarkAttendanceFromFrameUseCase(ctx.Ctx, ctx.Body)
	if err != nil {
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusCreated, "attendance marked", map[string]any{
		"facesMatched":   facesMatched,
		"recordsCreated": len(*records),
		"records":        records,
	}, nil, nil)
}

func RecordManualAttendance(ctx *interfaces.ApplicationContext[dto.ManualAttendanceDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}
	record, err := attendance_usecases.RecordManualAttendanceUseCase(ctx.Ctx, ctx.Body)
	if err != nil {
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusCreated, "attendance recorded", record, nil, nil)
}

func FetchStudentAttendance(ctx *interfaces.ApplicationContext[any]) {
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
	var sort interface{} = map[string]any{"date": -1}
	records, err := repository.AttendanceRepo().FindMany(map[string]any{
		"studentID": studentID,
	}, mongo_repo.FindOptions{Sort: &sort})
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err, nil)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "attendance fetched", records, nil, nil)
}
