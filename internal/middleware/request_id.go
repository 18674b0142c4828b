package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rumahpeduli/cms-api/internal/constants"
)

// RequestID tags every request with an id, honoring one supplied by an
// upstream proxy.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(constants.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(constants.HeaderXRequestID, requestID)
		c.Writer.Header().Set(constants.HeaderXRequestID, requestID)

		c.Next()
	}
}
