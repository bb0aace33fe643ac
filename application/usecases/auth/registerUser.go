package auth_usecases

import (
	"context"
	"errors"
	"strings"

	apperrors "smartedu.io/application/appErrors"
	"smartedu.io/application/controller/dto"
	"smartedu.io/application/repository"
	"smartedu.io/entities"
	"smartedu.io/infrastructure/cryptography"
	"smartedu.io/infrastructure/logger"
)

func RegisterUserUseCase(ctx any, payload *dto.RegisterUserDTO) (*entities.User, error) {
	payload.Email = strings.ToLower(payload.Email)
	payload.Username = strings.ToLower(payload.Username)

	userRepo := repository.UserRepo()
	existing, err := userRepo.CountDocs(map[string]any{
		"$or": []map[string]any{
			{"username": payload.Username},
			{"email": payload.Email},
		},
	})
	if err != nil {
		apperrors.UnknownError(ctx, err, nil)
		return nil, err
	}
	if existing != 0 {
		err = errors.New("an account with this username or email already exists")
		apperrors.EntityAlreadyExistsError(ctx, err.Error())
		return nil, err
	}

	passwordHash, err := cryptography.CryptoHasher.HashString(payload.Password, nil)
	if err != nil {
		logger.Error("an error occured while hashing user password", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		apperrors.FatalServerError(ctx, err)
		return nil, err
	}

	user, err := userRepo.CreateOne(context.Background(), entities.User{
		Username:     payload.Username,
		Email:        payload.Email,
		PasswordHash: string(passwordHash),
		Role:         payload.Role,
		ProfileID:    payload.ProfileID,
	})
	if err != nil {
		apperrors.FatalServerError(ctx, err)
		return nil, err
	}
	logger.Info("user account created", logger.LoggerOptions{
		Key:  "username",
		Data: user.Username,
	}, logger.LoggerOptions{
		Key:  "role",
		Data: user.Role,
	})
	return user, nil
}
