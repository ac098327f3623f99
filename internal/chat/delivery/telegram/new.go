package telegram

import (
	"github.com/gin-gonic/gin"

	"ai-chatbot/internal/chat"
	pkgLog "ai-chatbot/pkg/log"
	pkgTelegram "ai-chatbot/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc chat.UseCase, bot pkgTelegram.IBot) Handler {
	return &handler{
		l:   l,
		uc:  uc,
		bot: bot,
	}
}
