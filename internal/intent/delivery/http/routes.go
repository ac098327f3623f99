package http

import (
	"ai-chatbot/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Intent management is an internal surface: every route requires the
// internal key header.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	intents := rg.Group("/intents")
	{
		intents.POST("", mw.InternalAuth(), h.Create)
		intents.GET("", mw.InternalAuth(), h.List)
		intents.GET("/:id", mw.InternalAuth(), h.Detail)
		intents.PUT("/:id", mw.InternalAuth(), h.Update)
		intents.DELETE("/:id", mw.InternalAuth(), h.Delete)
		intents.POST("/:id/phrases", mw.InternalAuth(), h.AddPhrase)
	}

	phrases := rg.Group("/phrases")
	{
		phrases.DELETE("/:id", mw.InternalAuth(), h.DeletePhrase)
	}
}
