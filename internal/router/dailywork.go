package router

import (
	"github.com/gin-gonic/gin"

	"github.com/rumahpeduli/cms-api/internal/middleware"
	"github.com/rumahpeduli/cms-api/internal/model"
)

func (r *Router) dailyWorkRoutes(version *gin.RouterGroup) {
	work := version.Group("/daily-work")
	{
		// Members manage their own entries; ownership is enforced in
		// the service layer
		work.Use(r.jwtMw.RequireAuth())
		{
			work.POST("", r.workHandler.Create)
			work.GET("", r.workHandler.List)
			work.PATCH("/:id", r.workHandler.Update)
			work.DELETE("/:id", r.workHandler.Delete)
		}
	}

	admin := version.Group("/admin")
	{
		admin.Use(r.jwtMw.RequireAuth(), middleware.RequireMinRole(model.RoleAdmin))
		{
			// Cross-member work statistics
			admin.GET("/statistics/daily-work", r.workHandler.Statistics)
		}
	}
}
