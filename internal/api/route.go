package api

import (
	"Dresscode/internal/api/middleware"
	"Dresscode/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		userGroup := apiGroup.Group("/user")
		{
			// 无需登录即可访问的接口
			userGroup.POST("/login", group.UserHandler.Login)
			userGroup.POST("/register", group.UserHandler.Register)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
				authGroup.GET("/info", group.UserHandler.GetUserInfo)
				authGroup.PUT("/info", group.UserHandler.UpdateProfile)
				authGroup.PUT("/push-token", group.UserHandler.UpdatePushToken)
			}
		}

		outfitGroup := apiGroup.Group("/outfits")
		{
			outfitGroup.Use(middleware.AuthMiddleware())
			{
				outfitGroup.POST("", group.OutfitHandler.Upload)
				outfitGroup.GET("", group.OutfitHandler.List)
				outfitGroup.GET("/:seq_no", group.OutfitHandler.Get)
				outfitGroup.GET("/:seq_no/analysis", group.OutfitHandler.GetAnalysis)
			}
		}

		progressGroup := apiGroup.Group("/progress")
		{
			progressGroup.Use(middleware.AuthMiddleware())
			{
				progressGroup.GET("", group.ProgressHandler.GetProgress)
			}
		}

		billingGroup := apiGroup.Group("/billing")
		{
			billingGroup.Use(middleware.AuthMiddleware())
			{
				billingGroup.POST("/intent", group.BillingHandler.CreateIntent)
				billingGroup.POST("/subscription", group.BillingHandler.ActivateSubscription)
				billingGroup.GET("/subscription", group.BillingHandler.GetSubscription)
			}
		}
	}

	return r
}
