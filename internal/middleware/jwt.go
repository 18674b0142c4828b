package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rumahpeduli/cms-api/internal/constants"
	"github.com/rumahpeduli/cms-api/internal/model"
	"github.com/rumahpeduli/cms-api/internal/repository"
	"github.com/rumahpeduli/cms-api/internal/service"
	"github.com/rumahpeduli/cms-api/pkg/logger"
)

type JWTMiddleware struct {
	jwtService *service.JWTService
	userRepo   *repository.UserRepository
}

func NewJWTMiddleware(jwtService *service.JWTService, userRepo *repository.UserRepository) *JWTMiddleware {
	return &JWTMiddleware{
		jwtService: jwtService,
		userRepo:   userRepo,
	}
}

// RequireAuth validates the bearer token and resolves the live user.
// The token only carries the user id; email and role are re-read from
// the store on every request, so role changes and deleted accounts
// take effect immediately. All failure modes return 401.
func (m *JWTMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			logger.GetLogger().Warn("Missing Authorization header",
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method))
			abortUnauthenticated(c)
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			logger.GetLogger().Warn("Invalid Authorization header format",
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method))
			abortUnauthenticated(c)
			return
		}

		m.authenticate(c, tokenParts[1])
	}
}

// RequireCookieAuth is the gated-navigation variant: the token comes
// from a cookie instead of the Authorization header, everything else
// behaves like RequireAuth.
func (m *JWTMiddleware) RequireCookieAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(constants.TokenCookieName)
		if err != nil || token == "" {
			abortUnauthenticated(c)
			return
		}

		m.authenticate(c, token)
	}
}

// OptionalAuth resolves the caller when a valid bearer token is present
// and lets the request through anonymously otherwise. Public listings
// use it to decide whether drafts are visible.
func (m *JWTMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			c.Next()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.Next()
			return
		}

		userID, err := m.jwtService.ValidateToken(tokenParts[1])
		if err != nil {
			c.Next()
			return
		}

		user, err := m.userRepo.GetByID(c.Request.Context(), userID)
		if err != nil {
			c.Next()
			return
		}

		c.Set(constants.CtxUserID, user.ID)
		c.Set(constants.CtxUserEmail, user.Email)
		c.Set(constants.CtxUserRole, user.Role)

		c.Next()
	}
}

func (m *JWTMiddleware) authenticate(c *gin.Context, tokenString string) {
	userID, err := m.jwtService.ValidateToken(tokenString)
	if err != nil {
		logger.GetLogger().Warn("Invalid or expired token",
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Error(err))
		abortUnauthenticated(c)
		return
	}

	user, err := m.userRepo.GetByID(c.Request.Context(), userID)
	if err != nil {
		logger.GetLogger().Warn("Token subject no longer exists",
			zap.String("path", c.Request.URL.Path),
			zap.Uint("user_id", userID),
			zap.Error(err))
		abortUnauthenticated(c)
		return
	}

	c.Set(constants.CtxUserID, user.ID)
	c.Set(constants.CtxUserEmail, user.Email)
	c.Set(constants.CtxUserRole, user.Role)

	c.Next()
}

// RequireMinRole gates a route on the role hierarchy. Must run after
// RequireAuth. An authenticated caller below the threshold gets 403,
// keeping "who are you" and "what may you do" failures distinct.
func RequireMinRole(min model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := CallerRole(c)
		if !ok {
			abortUnauthenticated(c)
			return
		}

		if !role.AtLeast(min) {
			logger.GetLogger().Warn("Insufficient role",
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
				zap.String("role", role.String()),
				zap.String("required", min.String()))
			c.JSON(http.StatusForbidden, gin.H{
				"message": constants.MsgForbidden,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// CallerID returns the authenticated user id set by RequireAuth.
func CallerID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(constants.CtxUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// CallerRole returns the authenticated user's live role.
func CallerRole(c *gin.Context) (model.Role, bool) {
	v, exists := c.Get(constants.CtxUserRole)
	if !exists {
		return "", false
	}
	role, ok := v.(model.Role)
	return role, ok
}

func abortUnauthenticated(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"message": constants.MsgUnauthorized,
	})
	c.Abort()
}
