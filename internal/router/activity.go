package router

import (
	"github.com/gin-gonic/gin"

	"github.com/rumahpeduli/cms-api/internal/middleware"
	"github.com/rumahpeduli/cms-api/internal/model"
)

func (r *Router) activityRoutes(version *gin.RouterGroup) {
	activities := version.Group("/activities")
	{
		// Public reads; an authenticated moderator also sees drafts
		activities.GET("", r.jwtMw.OptionalAuth(), r.activityHandler.List)
		activities.GET("/:id", r.jwtMw.OptionalAuth(), r.activityHandler.Get)

		// Editorial routes (moderator and above)
		editorial := activities.Group("")
		editorial.Use(r.jwtMw.RequireAuth(), middleware.RequireMinRole(model.RoleModerator))
		{
			editorial.POST("", r.activityHandler.Create)
			editorial.PATCH("/:id", r.activityHandler.Update)
			editorial.DELETE("/:id", r.activityHandler.Delete)

			// Full-replacement writes for the ordered child collections
			editorial.PUT("/:id/programs", r.activityHandler.ReplacePrograms)
			editorial.PUT("/:id/organizations", r.activityHandler.ReplaceOrganizations)
		}
	}
}
