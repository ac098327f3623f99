package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "ai-chatbot/internal/chat/delivery/http"
	"ai-chatbot/internal/middleware"
)

// setupChatDomain registers the chat pipeline routes.
func (srv *HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := chatHTTP.New(srv.l, srv.chatUC)
	chatHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Chat domain registered")
	return nil
}
