package routev1

import (
	apperrors "smartedu.io/application/appErrors"
	"smartedu.io/application/controller"
	"smartedu.io/application/controller/dto"
	"smartedu.io/application/interfaces"
	middlewares "smartedu.io/infrastructure/middleware"
	"github.com/gin-gonic/gin"
)

func AttendanceRouter(router *gin.RouterGroup) {
	attendanceRouter := router.Group("/attendance")
	{
		attendanceRouter.POST("/mark", middlewares.UserAuthenticationMiddleware("admin", "teacher"), func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			var body dto.MarkAttendanceDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			controller.MarkAttendanceFromFrame(&interfaces.ApplicationContext[dto.MarkAttendanceDTO]{
				Ctx:  ctx,
				Body: &body,
				Keys: appContext.Keys,
			})
		})

		attendanceRouter.POST("/manual", middlewares.UserAuthenticationMiddleware("admin", "teacher"), func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			var body dto.ManualAttendanceDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			controller.RecordManualAttendance(&interfaces.ApplicationContext[dto.ManualAttendanceDTO]{
				Ctx:  ctx,
				Body: &body,
				Keys: appContext.Keys,
			})
		})

		attendanceRouter.GET("/student/:id", middlewares.UserAuthenticationMiddleware("admin", "teacher"), func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			appContext.SetContextData("StudentID", ctx.Param("id"))
			controller.FetchStudentAttendance(&interfaces.ApplicationContext[any]{
				Ctx:  ctx,
				Keys: appContext.Keys,
			})
		})
	}
}
