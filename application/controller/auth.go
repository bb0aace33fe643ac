package controller

import (
	"net/http"

	apperrors "smartedu.io/application/appErrors"
	"smartedu.io/application/constants"
	"smartedu.io/application/controller/dto"
	"smartedu.io/application/interfaces"
	auth_usecases "smartedu.io/application/usecases/auth"
	"smartedu.io/infrastructure/auth"
	server_response "smartedu.io/infrastructure/serverResponse"
	"smartedu.io/infrastructure/validator"
)

func RegisterUser(ctx *interfaces.ApplicationContext[dto.RegisterUserDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}
	user, err := auth_usecases.RegisterUserUseCase(ctx.Ctx, ctx.Body)
	if err != nil {
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusCreated, "account created", user, nil, &constants.ACCOUNT_CREATED)
}

func LoginUser(ctx *interfaces.ApplicationContext[dto.LoginDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}
	token, user, err := auth_usecases.LoginUserUseCase(ctx.Ctx, ctx.Body)
	if err != nil {
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "login successful", map[string]any{
		"token": token,
		"user":  user,
	}, nil, nil)
}

func LogoutUser(ctx *interfaces.ApplicationContext[any]) {
	userID := ctx.GetStringContextData("UserID")
	if userID == "" {
		apperrors.AuthenticationError(ctx.Ctx, "unauthorised access")
		return
	}
	auth.SignOutUser(userID, "user requested sign out")
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "signed out", nil, nil, nil)
}
