package http

import (
	"ai-chatbot/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// The log is read-only over HTTP: appends happen only through the chat
// pipeline.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	conversations := rg.Group("/conversations")
	{
		conversations.GET("", mw.InternalAuth(), h.List)
		conversations.GET("/stats", mw.InternalAuth(), h.Stats)
	}
}
