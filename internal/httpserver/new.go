package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"ai-chatbot/internal/chat"
	tgDelivery "ai-chatbot/internal/chat/delivery/telegram"
	"ai-chatbot/internal/conversation"
	"ai-chatbot/internal/intent"
	"ai-chatbot/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Middleware inputs
	internalKey     string
	rateLimitPerMin int

	// Domains
	intentUC       intent.UseCase
	conversationUC conversation.UseCase
	chatUC         chat.UseCase

	// Telegram webhook (optional)
	telegramHandler tgDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	InternalKey     string
	RateLimitPerMin int

	IntentUC       intent.UseCase
	ConversationUC conversation.UseCase
	ChatUC         chat.UseCase

	// Telegram webhook (optional)
	TelegramHandler tgDelivery.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		internalKey:     cfg.InternalKey,
		rateLimitPerMin: cfg.RateLimitPerMin,
		intentUC:        cfg.IntentUC,
		conversationUC:  cfg.ConversationUC,
		chatUC:          cfg.ChatUC,
		telegramHandler: cfg.TelegramHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.intentUC == nil || srv.conversationUC == nil || srv.chatUC == nil {
		return errors.New("domain use cases are required")
	}
	return nil
}
