package routev1

import (
	apperrors "smartedu.io/application/appErrors"
	"smartedu.io/application/controller"
	"smartedu.io/application/controller/dto"
	"smartedu.io/application/interfaces"
	middlewares "smartedu.io/infrastructure/middleware"
	"github.com/gin-gonic/gin"
)

func AcademicRouter(router *gin.RouterGroup) {
	academicRouter := router.Group("/academics")
	{
		academicRouter.POST("/subjects", middlewares.UserAuthenticationMiddleware("admin"), func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			var body dto.CreateSubjectDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			controller.CreateSubject(&interfaces.ApplicationContext[dto.CreateSubjectDTO]{
				Ctx:  ctx,
				Body: &body,
				Keys: appContext.Keys,
			})
		})

		academicRouter.GET("/subjects", middlewares.UserAuthenticationMiddleware("admin", "teacher", "student"), func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			controller.FetchSubjects(&interfaces.ApplicationContext[any]{
				Ctx:  ctx,
				Keys: appContext.Keys,
			})
		})

		academicRouter.POST("/records", middlewares.UserAuthenticationMiddleware("admin", "teacher"), func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			var body dto.CreateAcademicRecordDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			controller.CreateAcademicRecord(&interfaces.ApplicationContext[dto.CreateAcademicRecordDTO]{
				Ctx:  ctx,
				Body: &body,
				Keys: appContext.Keys,
			})
		})

		academicRouter.GET("/records/student/:id", middlewares.UserAuthenticationMiddleware("admin", "teacher"), func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			appContext.SetContextData("StudentID", ctx.Param("id"))
			if semester := ctx.Query("semester"); semester != "" {
				appContext.SetContextData("Semester", semester)
			}
			controller.FetchStudentAcademicRecords(&interfaces.ApplicationContext[any]{
				Ctx:  ctx,
				Keys: appContext.Keys,
			})
		})
	}
}
