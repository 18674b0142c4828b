package router

import (
	"github.com/gin-gonic/gin"

	"github.com/rumahpeduli/cms-api/internal/middleware"
	"github.com/rumahpeduli/cms-api/internal/model"
)

func (r *Router) partnerRoutes(version *gin.RouterGroup) {
	partners := version.Group("/partners")
	{
		// Public read; moderators see inactive partners too
		partners.GET("", r.jwtMw.OptionalAuth(), r.partnerHandler.List)

		editorial := partners.Group("")
		editorial.Use(r.jwtMw.RequireAuth(), middleware.RequireMinRole(model.RoleModerator))
		{
			editorial.POST("", r.partnerHandler.Create)
			editorial.PATCH("/:id", r.partnerHandler.Update)
			editorial.DELETE("/:id", r.partnerHandler.Delete)
		}
	}
}
