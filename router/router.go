package router

import (
	"github.com/NomadCrew/feedback-service/config"
	_ "github.com/NomadCrew/feedback-service/docs" // registers the swagger spec
	"github.com/NomadCrew/feedback-service/handlers"
	"github.com/NomadCrew/feedback-service/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies struct holds all dependencies required for setting up routes.
type Dependencies struct {
	Config          *config.Config
	FeedbackHandler *handlers.FeedbackHandler
	HealthHandler   *handlers.HealthHandler
}

// SetupRouter configures and returns the main Gin engine with all routes defined.
func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics())
	r.Use(middleware.SecurityHeadersMiddleware(deps.Config))
	r.Use(middleware.CORSMiddleware(&deps.Config.Server))
	r.Use(middleware.ErrorHandler())

	r.GET("/health", deps.HealthHandler.DetailedHealth)
	r.GET("/health/liveness", deps.HealthHandler.LivenessCheck)
	r.GET("/health/readiness", deps.HealthHandler.ReadinessCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// /api/feedbacks is kept for clients of the previous deployment.
	for _, prefix := range []string{"/feedbacks", "/api/feedbacks"} {
		feedbacks := r.Group(prefix)
		{
			feedbacks.POST("", deps.FeedbackHandler.CreateFeedbackHandler)
			feedbacks.GET("", deps.FeedbackHandler.ListFeedbacksHandler)
		}
	}

	r.NoRoute(middleware.NotFoundHandler())

	return r
}
