package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	conversationHTTP "ai-chatbot/internal/conversation/delivery/http"
	"ai-chatbot/internal/middleware"
)

// setupConversationDomain registers the conversation log routes.
func (srv *HTTPServer) setupConversationDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := conversationHTTP.New(srv.l, srv.conversationUC)
	conversationHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Conversation domain registered")
	return nil
}
