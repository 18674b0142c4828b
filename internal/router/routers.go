package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rumahpeduli/cms-api/config"
	"github.com/rumahpeduli/cms-api/internal/handler"
	"github.com/rumahpeduli/cms-api/internal/middleware"
)

type Router struct {
	authHandler     *handler.AuthHandler
	userHandler     *handler.UserHandler
	activityHandler *handler.ActivityHandler
	partnerHandler  *handler.PartnerHandler
	workHandler     *handler.DailyWorkHandler
	healthHandler   *handler.HealthHandler

	jwtMw  *middleware.JWTMiddleware
	Config *config.Config
}

func NewRouter(
	auth *handler.AuthHandler,
	user *handler.UserHandler,
	activity *handler.ActivityHandler,
	partner *handler.PartnerHandler,
	work *handler.DailyWorkHandler,
	health *handler.HealthHandler,

	jwtMw *middleware.JWTMiddleware,
	config *config.Config,
) *Router {
	return &Router{
		authHandler:     auth,
		userHandler:     user,
		activityHandler: activity,
		partnerHandler:  partner,
		workHandler:     work,
		healthHandler:   health,

		jwtMw:  jwtMw,
		Config: config,
	}
}

func (r *Router) SetupRoutes() *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORS())

	api := router.Group("/api")
	{
		api.GET("/health", r.healthHandler.Check)

		v1 := api.Group("/v1")
		{
			v1.Use(middleware.RateLimit(r.Config.RateLimit.Request, time.Duration(r.Config.RateLimit.Duration)*time.Second))

			r.authRoutes(v1)
			r.userRoutes(v1)
			r.activityRoutes(v1)
			r.partnerRoutes(v1)
			r.dailyWorkRoutes(v1)
		}
	}

	return router
}
