package http

import (
	"time"

	"ai-chatbot/internal/conversation"
)

// --- Request DTOs ---

type listReq struct {
	Intent  string `form:"intent"`
	Channel string `form:"channel"`
	Limit   int    `form:"limit"`
	Offset  int    `form:"offset"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() conversation.ListInput {
	return conversation.ListInput{
		Intent:  r.Intent,
		Channel: r.Channel,
		Limit:   r.Limit,
		Offset:  r.Offset,
	}
}

// --- Response DTOs ---

type conversationResp struct {
	ID              string    `json:"id"`
	UserInput       string    `json:"user_input"`
	PredictedIntent string    `json:"predicted_intent"`
	Confidence      float64   `json:"confidence"`
	ResponseText    string    `json:"response_text"`
	Channel         string    `json:"channel"`
	CreatedAt       time.Time `json:"created_at"`
}

func newConversationResp(cv conversation.Conversation) conversationResp {
	return conversationResp{
		ID:              cv.ID,
		UserInput:       cv.UserInput,
		PredictedIntent: cv.PredictedIntent,
		Confidence:      cv.Confidence,
		ResponseText:    cv.ResponseText,
		Channel:         cv.Channel,
		CreatedAt:       cv.CreatedAt,
	}
}

type listResp struct {
	Conversations []conversationResp `json:"conversations"`
	Total         int                `json:"total"`
	Limit         int                `json:"limit"`
	Offset        int                `json:"offset"`
}

func (h *handler) newListResp(out conversation.ListOutput) listResp {
	convs := make([]conversationResp, len(out.Conversations))
	for i, cv := range out.Conversations {
		convs[i] = newConversationResp(cv)
	}
	return listResp{
		Conversations: convs,
		Total:         out.Total,
		Limit:         out.Limit,
		Offset:        out.Offset,
	}
}

type intentCountResp struct {
	Intent string `json:"intent"`
	Count  int    `json:"count"`
}

type statsResp struct {
	Total         int               `json:"total"`
	AvgConfidence float64           `json:"avg_confidence"`
	FallbackCount int               `json:"fallback_count"`
	FallbackRate  float64           `json:"fallback_rate"`
	ByIntent      []intentCountResp `json:"by_intent"`
}

func (h *handler) newStatsResp(out conversation.StatsOutput) statsResp {
	byIntent := make([]intentCountResp, len(out.ByIntent))
	for i, ic := range out.ByIntent {
		byIntent[i] = intentCountResp{Intent: ic.Intent, Count: ic.Count}
	}
	return statsResp{
		Total:         out.Total,
		AvgConfidence: out.AvgConfidence,
		FallbackCount: out.FallbackCount,
		FallbackRate:  out.FallbackRate,
		ByIntent:      byIntent,
	}
}
