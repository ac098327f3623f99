package telegram

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"ai-chatbot/internal/chat"
	"ai-chatbot/internal/conversation"
	pkgLog "ai-chatbot/pkg/log"
	pkgResponse "ai-chatbot/pkg/response"
	pkgTelegram "ai-chatbot/pkg/telegram"
)

const processTimeout = 15 * time.Second

type handler struct {
	l   pkgLog.Logger
	uc  chat.UseCase
	bot pkgTelegram.IBot
}

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine so a slow pipeline never trips Telegram's webhook
// timeout.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil || update.Message.Text == "" {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot the message before spawning the goroutine to avoid data
	// races on the gin context.
	msg := update.Message

	go func() {
		// Detach from the HTTP request context, which is cancelled after
		// the ack goes out.
		bgCtx, cancel := context.WithTimeout(context.Background(), processTimeout)
		defer cancel()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(bgCtx, msg.Chat.ID, "Something went wrong, please try again.")
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage runs one Telegram message through the chat pipeline and
// replies in the same chat.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	switch msg.Text {
	case "/start":
		return h.bot.SendMessage(ctx, msg.Chat.ID,
			"Hi! I'm a chatbot. Ask me anything: greetings, weather, news, crypto prices. I'll do my best to answer.")
	case "/help":
		return h.bot.SendMessage(ctx, msg.Chat.ID,
			"Just type a message. If I don't understand, I'll say so. Try: \"what's the weather like\" or \"hello\".")
	}

	out, err := h.uc.Send(ctx, chat.SendInput{
		Text:    msg.Text,
		Channel: conversation.ChannelTelegram,
	})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: Send failed: %v", err)
		return h.bot.SendMessage(ctx, msg.Chat.ID, "Something went wrong, please try again.")
	}

	return h.bot.SendMessage(ctx, msg.Chat.ID, out.Reply)
}
