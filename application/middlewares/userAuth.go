package middlewares

import (
	apperrors "smartedu.io/application/appErrors"
	"smartedu.io/application/interfaces"
	auth_usecases "smartedu.io/application/usecases/auth"
)

// UserAuthenticationMiddleware validates the bearer token and optionally
// restricts the route to a set of roles.
func UserAuthenticationMiddleware(ctx *interfaces.ApplicationContext[any], authToken string, allowedRoles []string) (*interfaces.ApplicationContext[any], bool) {
	authResult := auth_usecases.IsUserSignedIn(authToken)

	if !authResult.IsAuthenticated {
		apperrors.AuthenticationError(ctx.Ctx, authResult.ErrorMessage)
		return nil, false
	}

	if len(allowedRoles) != 0 {
		permitted := false
		for _, role := range allowedRoles {
			if authResult.Role == role {
				permitted = true
				break
			}
		}
		if !permitted {
			apperrors.ForbiddenError(ctx.Ctx, "you do not have permission to access this resource")
			return nil, false
		}
	}

	ctx.SetContextData("UserID", authResult.UserID)
	ctx.SetContextData("Username", authResult.Username)
	ctx.SetContextData("Role", authResult.Role)
	ctx.SetContextData("ProfileID", authResult.ProfileID)

	return ctx, true
}
