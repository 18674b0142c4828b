package router

import (
	"github.com/gin-gonic/gin"

	"github.com/rumahpeduli/cms-api/internal/middleware"
	"github.com/rumahpeduli/cms-api/internal/model"
)

func (r *Router) userRoutes(version *gin.RouterGroup) {
	users := version.Group("/users")
	{
		// All user routes require JWT authentication
		users.Use(r.jwtMw.RequireAuth())
		{
			// Current user's own profile
			users.GET("/me", r.userHandler.Me)

			admin := users.Group("")
			admin.Use(middleware.RequireMinRole(model.RoleAdmin))
			{
				// List all members with pagination and search
				admin.GET("", r.userHandler.List)

				// Change a member's role
				admin.PATCH("/:id/role", r.userHandler.UpdateRole)
			}
		}
	}
}
