package telegram_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"ai-chatbot/internal/chat"
	"ai-chatbot/internal/chat/delivery/telegram"
	"ai-chatbot/internal/conversation"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

type mockChatUC struct {
	sendOutput chat.SendOutput
	sendErr    error
	gotInput   chan chat.SendInput
}

func (m *mockChatUC) Send(ctx context.Context, input chat.SendInput) (chat.SendOutput, error) {
	if m.gotInput != nil {
		m.gotInput <- input
	}
	return m.sendOutput, m.sendErr
}
func (m *mockChatUC) Train(ctx context.Context) (chat.TrainOutput, error) {
	return chat.TrainOutput{}, nil
}
func (m *mockChatUC) ModelInfo(ctx context.Context) (chat.ModelInfoOutput, error) {
	return chat.ModelInfoOutput{}, nil
}

type mockBot struct {
	sent chan string
}

func (m *mockBot) SendMessage(ctx context.Context, chatID int64, text string) error {
	m.sent <- text
	return nil
}

// ── Tests ──────────────────────────────────────────────────────────────────

func postUpdate(t *testing.T, h telegram.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/webhook/telegram", h.HandleWebhook)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestHandleWebhook(t *testing.T) {
	t.Run("Message Acked And Replied", func(t *testing.T) {
		uc := &mockChatUC{
			sendOutput: chat.SendOutput{Reply: "Hello!", Intent: "greet", Confidence: 0.9},
			gotInput:   make(chan chat.SendInput, 1),
		}
		bot := &mockBot{sent: make(chan string, 1)}
		h := telegram.New(&mockLogger{}, uc, bot)

		w := postUpdate(t, h, `{"update_id": 1, "message": {"message_id": 10, "chat": {"id": 42, "type": "private"}, "text": "hello there"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 ack, got %d", w.Code)
		}

		select {
		case input := <-uc.gotInput:
			if input.Text != "hello there" || input.Channel != conversation.ChannelTelegram {
				t.Errorf("unexpected input: %+v", input)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("chat use case was never called")
		}

		select {
		case reply := <-bot.sent:
			if reply != "Hello!" {
				t.Errorf("unexpected reply: %q", reply)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("bot reply was never sent")
		}
	})

	t.Run("Non Message Update Ignored", func(t *testing.T) {
		uc := &mockChatUC{gotInput: make(chan chat.SendInput, 1)}
		bot := &mockBot{sent: make(chan string, 1)}
		h := telegram.New(&mockLogger{}, uc, bot)

		w := postUpdate(t, h, `{"update_id": 2}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		select {
		case input := <-uc.gotInput:
			t.Errorf("use case should not be called, got %+v", input)
		case <-time.After(200 * time.Millisecond):
		}
	})

	t.Run("Start Command", func(t *testing.T) {
		uc := &mockChatUC{gotInput: make(chan chat.SendInput, 1)}
		bot := &mockBot{sent: make(chan string, 1)}
		h := telegram.New(&mockLogger{}, uc, bot)

		w := postUpdate(t, h, `{"update_id": 3, "message": {"message_id": 11, "chat": {"id": 42, "type": "private"}, "text": "/start"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		select {
		case <-bot.sent:
		case <-time.After(2 * time.Second):
			t.Fatal("welcome message was never sent")
		}

		select {
		case input := <-uc.gotInput:
			t.Errorf("commands should bypass the pipeline, got %+v", input)
		case <-time.After(200 * time.Millisecond):
		}
	})

	t.Run("Pipeline Error Notifies User", func(t *testing.T) {
		uc := &mockChatUC{sendErr: chat.ErrNotTrained}
		bot := &mockBot{sent: make(chan string, 2)}
		h := telegram.New(&mockLogger{}, uc, bot)

		w := postUpdate(t, h, `{"update_id": 4, "message": {"message_id": 12, "chat": {"id": 42, "type": "private"}, "text": "hello"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 ack even on pipeline error, got %d", w.Code)
		}

		select {
		case reply := <-bot.sent:
			if reply == "" {
				t.Error("expected a user-facing error message")
			}
		case <-time.After(2 * time.Second):
			t.Fatal("error notification was never sent")
		}
	})
}
