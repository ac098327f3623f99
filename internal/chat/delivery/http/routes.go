package http

import (
	"ai-chatbot/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// The public message endpoint is rate limited; retraining needs the
// internal key.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	cht := rg.Group("/chat")
	{
		cht.POST("/messages", mw.RateLimit(), h.Send)
		cht.POST("/train", mw.InternalAuth(), h.Train)
		cht.GET("/model", h.Model)
	}
}
