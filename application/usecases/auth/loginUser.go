package auth_usecases

import (
	"errors"
	"strings"
	"time"

	apperrors "smartedu.io/application/appErrors"
	"smartedu.io/application/controller/dto"
	"smartedu.io/application/repository"
	"smartedu.io/entities"
	"smartedu.io/infrastructure/auth"
	"smartedu.io/infrastructure/cryptography"
	"smartedu.io/infrastructure/database/repository/cache"
	"smartedu.io/infrastructure/logger"
)

// LoginUserUseCase verifies the supplied credentials and issues an access
// token. The generic "invalid username or password" message is deliberate so
// the endpoint cannot be used to probe which usernames exist.
func LoginUserUseCase(ctx any, payload *dto.LoginDTO) (*string, *entities.User, error) {
	payload.Username = strings.ToLower(payload.Username)

	userRepo := repository.UserRepo()
	user, err := userRepo.FindOneByFilter(map[string]any{
		"username": payload.Username,
	})
	if err != nil {
		apperrors.UnknownError(ctx, err, nil)
		return nil, nil, err
	}
	if user == nil {
		err = errors.New("invalid username or password")
		apperrors.AuthenticationError(ctx, err.Error())
		return nil, nil, err
	}
	if user.Deactivated {
		err = errors.New("this account has been deactivated")
		apperrors.AuthenticationError(ctx, err.Error())
		return nil, nil, err
	}

	if !cryptography.CryptoHasher.VerifyHashData(user.PasswordHash, payload.Password) {
		logger.Warning("failed login attempt", logger.LoggerOptions{
			Key:  "username",
			Data: payload.Username,
		})
		err = errors.New("invalid username or password")
		apperrors.AuthenticationError(ctx, err.Error())
		return nil, nil, err
	}

	token, err := auth.GenerateAuthToken(auth.ClaimsData{
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		ProfileID: user.ProfileID,
		IssuedAt:  time.Now().Unix(),
		ExpiresAt: time.Now().Add(time.Hour * 10).Unix(),
	})
	if err != nil {
		apperrors.FatalServerError(ctx, err)
		return nil, nil, err
	}

	// a fresh login lifts any previous sign-out denylisting
	cache.Cache.DeleteOne(user.ID + "-signed-out")

	return token, user, nil
}
