package auth_usecases

import (
	"os"

	"smartedu.io/infrastructure/auth"
	"smartedu.io/infrastructure/logger"
	"github.com/golang-jwt/jwt/v4"
)

// UserAuthResult represents the result of user authentication
type UserAuthResult struct {
	IsAuthenticated bool
	UserID          string
	Username        string
	Role            string
	ProfileID       string
	ErrorMessage    string
}

// IsUserSignedIn validates an access token and extracts its identity claims.
func IsUserSignedIn(authToken string) UserAuthResult {
	result := UserAuthResult{
		IsAuthenticated: false,
	}

	if authToken == "" {
		result.ErrorMessage = "missing auth token"
		return result
	}

	validAccessToken, err := auth.DecodeAuthToken(authToken)
	if err != nil {
		result.ErrorMessage = "this session has expired"
		return result
	}
	if !validAccessToken.Valid {
		result.ErrorMessage = "unauthorised access"
		return result
	}

	authTokenClaims := validAccessToken.Claims.(jwt.MapClaims)

	if authTokenClaims["iss"] != os.Getenv("JWT_ISSUER") {
		logger.Warning("attempt to access account with tampered jwt", logger.LoggerOptions{
			Key:  "token claims",
			Data: validAccessToken,
		})
		result.ErrorMessage = "unauthorised access"
		return result
	}

	userID, _ := authTokenClaims["userID"].(string)
	if auth.IsUserSignedOut(userID) {
		result.ErrorMessage = "this session has expired"
		return result
	}

	result.IsAuthenticated = true
	result.UserID = userID
	result.Username, _ = authTokenClaims["username"].(string)
	result.Role, _ = authTokenClaims["role"].(string)
	result.ProfileID, _ = authTokenClaims["profileID"].(string)

	return result
}
