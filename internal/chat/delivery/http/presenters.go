package http

import (
	"time"

	"ai-chatbot/internal/chat"
	"ai-chatbot/internal/conversation"
)

// --- Request DTOs ---

type sendReq struct {
	Text string `json:"text" binding:"required,min=1,max=1000"`
}

func (r sendReq) validate() error { return nil }

func (r sendReq) toInput() chat.SendInput {
	return chat.SendInput{
		Text:    r.Text,
		Channel: conversation.ChannelHTTP,
	}
}

// --- Response DTOs ---

type sendResp struct {
	Reply      string  `json:"reply"`
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
	Fallback   bool    `json:"fallback"`
}

func (h *handler) newSendResp(out chat.SendOutput) sendResp {
	return sendResp{
		Reply:      out.Reply,
		Intent:     out.Intent,
		Confidence: out.Confidence,
		Fallback:   out.Fallback,
	}
}

type trainResp struct {
	Intents        int       `json:"intents"`
	Examples       int       `json:"examples"`
	VocabularySize int       `json:"vocabulary_size"`
	TrainedAt      time.Time `json:"trained_at"`
}

func (h *handler) newTrainResp(out chat.TrainOutput) trainResp {
	return trainResp{
		Intents:        out.Intents,
		Examples:       out.Examples,
		VocabularySize: out.VocabularySize,
		TrainedAt:      out.TrainedAt,
	}
}

type modelResp struct {
	Trained        bool      `json:"trained"`
	Labels         []string  `json:"labels,omitempty"`
	VocabularySize int       `json:"vocabulary_size,omitempty"`
	Examples       int       `json:"examples,omitempty"`
	TrainedAt      time.Time `json:"trained_at,omitempty"`
}

func (h *handler) newModelResp(out chat.ModelInfoOutput) modelResp {
	return modelResp{
		Trained:        out.Trained,
		Labels:         out.Labels,
		VocabularySize: out.VocabularySize,
		Examples:       out.Examples,
		TrainedAt:      out.TrainedAt,
	}
}
