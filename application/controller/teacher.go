package controller

import (
	"context"
	"net/http"
	"strings"

	apperrors "smartedu.io/application/appErrors"
	"smartedu.io/application/controller/dto"
	"smartedu.io/application/interfaces"
	"smartedu.io/application/repository"
	"smartedu.io/entities"
	server_response "smartedu.io/infrastructure/serverResponse"
	"smartedu.io/infrastructure/validator"
)

func CreateTeacher(ctx *interfaces.ApplicationContext[dto.CreateTeacherDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}
	staffID := strings.ToUpper(ctx.Body.StaffID)
	teacherRepo := repository.TeacherRepo()
	existing, err := teacherRepo.CountDocs(map[string]any{
		"staffID": staffID,
	})
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err, nil)
		return
	}
	if existing != 0 {
		apperrors.EntityAlreadyExistsError(ctx.Ctx, "a teacher with this staff id already exists")
		return
	}
	teacher, err := teacherRepo.CreateOne(context.Background(), entities.Teacher{
		StaffID:    staffID,
		FirstName:  ctx.Body.FirstName,
		LastName:   ctx.Body.LastName,
		Department: ctx.Body.Department,
		Phone:      ctx.Body.Phone,
	})
	if err != nil {
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusCreated, "teacher created", teacher, nil, nil)
}

func FetchTeachers(ctx *interfaces.ApplicationContext[any]) {
	teachers, err := repository.TeacherRepo().FindMany(map[string]any{
		"deletedAt": nil,
	})
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err, nil)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "teachers fetched", teachers, nil, nil)
}
