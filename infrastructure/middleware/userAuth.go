package middlewares

import (
	"strings"

	"smartedu.io/application/interfaces"
	"smartedu.io/application/middlewares"
	"github.com/gin-gonic/gin"
)

func UserAuthenticationMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authToken := strings.TrimPrefix(ctx.Request.Header.Get("Authorization"), "Bearer ")
		appContext, next := middlewares.UserAuthenticationMiddleware(&interfaces.ApplicationContext[any]{
			Ctx:    ctx,
			Keys:   ctx.Keys,
			Header: ctx.Request.Header,
		}, authToken, allowedRoles)
		if next {
			ctx.Set("AppContext", appContext)
			ctx.Next()
		}
	}
}
