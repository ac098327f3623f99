package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	intentHTTP "ai-chatbot/internal/intent/delivery/http"
	"ai-chatbot/internal/middleware"
)

// setupIntentDomain registers the intent management routes.
func (srv *HTTPServer) setupIntentDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := intentHTTP.New(srv.l, srv.intentUC)
	intentHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Intent domain registered")
	return nil
}
