package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"ai-chatbot/pkg/response"
)

const internalKeyHeader = "X-Internal-Key"

// InternalAuth guards internal-only routes (intent management, training,
// log inspection) with a shared key header.
func (m Middleware) InternalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(internalKeyHeader)
		if key == "" || subtle.ConstantTimeCompare([]byte(key), []byte(m.internalKey)) != 1 {
			m.l.Warnf(c.Request.Context(), "middleware.InternalAuth: rejected request to %s", c.FullPath())
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
