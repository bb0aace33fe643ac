package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"smartedu.io/infrastructure/database/repository/cache"
	"smartedu.io/infrastructure/logger"
	"github.com/golang-jwt/jwt/v4"
)

func GenerateAuthToken(claimsData ClaimsData) (*string, error) {
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss":       os.Getenv("JWT_ISSUER"),
		"userID":    claimsData.UserID,
		"username":  claimsData.Username,
		"role":      claimsData.Role,
		"profileID": claimsData.ProfileID,
		"exp":       claimsData.ExpiresAt,
		"iat":       claimsData.IssuedAt,
	}).SignedString([]byte(os.Getenv("JWT_SIGNING_KEY")))
	if err != nil {
		return nil, err
	}
	return &tokenString, nil
}

func DecodeAuthToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SIGNING_KEY")), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrSignatureInvalid) {
			return nil, errors.New("invalid token signature used")
		}
		logger.Error("error decoding jwt", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return nil, err
	}
	if !token.Valid {
		err := errors.New("invalid token used")
		logger.Error(err.Error())
		return nil, err
	}
	return token, nil
}

// SignOutUser denylists the user's active tokens until their natural expiry.
func SignOutUser(userID string, reason string) {
	cache.Cache.CreateEntry(fmt.Sprintf("%s-signed-out", userID), reason, time.Hour*24)
	logger.Info("user signed out", logger.LoggerOptions{
		Key:  "userID",
		Data: userID,
	}, logger.LoggerOptions{
		Key:  "reason",
		Data: reason,
	})
}

// IsUserSignedOut reports whether the user's tokens have been denylisted.
func IsUserSignedOut(userID string) bool {
	return cache.Cache.FindOne(fmt.Sprintf("%s-signed-out", userID)) != nil
}
