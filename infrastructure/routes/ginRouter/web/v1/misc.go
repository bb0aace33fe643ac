package routev1

import (
	apperrors "smartedu.io/application/appErrors"
	"smartedu.io/application/controller"
	"smartedu.io/application/controller/dto"
	"smartedu.io/application/interfaces"
	middlewares "smartedu.io/infrastructure/middleware"
	"github.com/gin-gonic/gin"
)

func MiscRouter(router *gin.RouterGroup) {
	miscRouter := router.Group("/misc")
	{
		miscRouter.POST("/backup", middlewares.UserAuthenticationMiddleware("admin"), func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			body := dto.BackupRequestDTO{}
			if ctx.Request.ContentLength != 0 {
				if err := ctx.ShouldBindJSON(&body); err != nil {
					apperrors.ErrorProcessingPayload(ctx)
					return
				}
			}
			controller.TriggerBackup(&interfaces.ApplicationContext[dto.BackupRequestDTO]{
				Ctx:  ctx,
				Body: &body,
				Keys: appContext.Keys,
			})
		})

		miscRouter.POST("/gallery/refresh", middlewares.UserAuthenticationMiddleware("admin"), func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			controller.TriggerGalleryRefresh(&interfaces.ApplicationContext[any]{
				Ctx:  ctx,
				Keys: appContext.Keys,
			})
		})

		miscRouter.GET("/settings", middlewares.UserAuthenticationMiddleware("admin"), func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			controller.FetchSettings(&interfaces.ApplicationContext[any]{
				Ctx:  ctx,
				Keys: appContext.Keys,
			})
		})

		miscRouter.PUT("/settings", middlewares.UserAuthenticationMiddleware("admin"), func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			var body dto.UpdateSettingsDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			controller.UpdateSettings(&interfaces.ApplicationContext[dto.UpdateSettingsDTO]{
				Ctx:  ctx,
				Body: &body,
				Keys: appContext.Keys,
			})
		})

		miscRouter.GET("/stats", middlewares.UserAuthenticationMiddleware("admin"), func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			controller.SystemStats(&interfaces.ApplicationContext[any]{
				Ctx:  ctx,
				Keys: appContext.Keys,
			})
		})
	}
}
