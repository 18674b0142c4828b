package router

import "github.com/gin-gonic/gin"

func (r *Router) authRoutes(version *gin.RouterGroup) {
	// Public routes (no authentication required)
	version.POST("/register", r.authHandler.Register)
	version.POST("/request-otp", r.authHandler.RequestOTP)
	version.POST("/verify-otp", r.authHandler.VerifyOTP)

	auth := version.Group("/auth")
	{
		// Gated page navigation sends the token as a cookie instead of
		// a bearer header
		auth.GET("/session", r.jwtMw.RequireCookieAuth(), r.authHandler.VerifySession)

		// Protected routes (JWT authentication required)
		protected := auth.Group("")
		protected.Use(r.jwtMw.RequireAuth())
		{
			// Confirm the session token still maps to a live account
			protected.GET("/verify", r.authHandler.VerifySession)
		}
	}
}
