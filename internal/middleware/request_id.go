package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderXRequestID carries the correlation id for a request.
const HeaderXRequestID = "X-Request-ID"

// RequestID ensures every request carries a correlation id, generating one
// when the caller didn't send any, and echoes it on the response.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(HeaderXRequestID, requestID)
		c.Header(HeaderXRequestID, requestID)

		c.Next()
	}
}
