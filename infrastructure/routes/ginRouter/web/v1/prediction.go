package routev1

import (
	apperrors "smartedu.io/application/appErrors"
	"smartedu.io/application/controller"
	"smartedu.io/application/controller/dto"
	"smartedu.io/application/interfaces"
	middlewares "smartedu.io/infrastructure/middleware"
	"github.com/gin-gonic/gin"
)

func PredictionRouter(router *gin.RouterGroup) {
	predictionRouter := router.Group("/predictions")
	{
		predictionRouter.POST("/student/:id", middlewares.UserAuthenticationMiddleware("admin", "teacher"), func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			body := dto.PredictPerformanceDTO{}
			if ctx.Request.ContentLength != 0 {
				if err := ctx.ShouldBindJSON(&body); err != nil {
					apperrors.ErrorProcessingPayload(ctx)
					return
				}
			}
			appContext.SetContextData("StudentID", ctx.Param("id"))
			controller.PredictPerformance(&interfaces.ApplicationContext[dto.PredictPerformanceDTO]{
				Ctx:  ctx,
				Body: &body,
				Keys: appContext.Keys,
			})
		})

		predictionRouter.GET("/student/:id", middlewares.UserAuthenticationMiddleware("admin", "teacher"), func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			appContext.SetContextData("StudentID", ctx.Param("id"))
			controller.FetchStudentPredictions(&interfaces.ApplicationContext[any]{
				Ctx:  ctx,
				Keys: appContext.Keys,
			})
		})
	}
}
