package usecase

import (
	"context"
	"fmt"
	"strings"

	"ai-chatbot/internal/conversation"
	repo "ai-chatbot/internal/conversation/repository"
)

// Append logs one exchange. The log is append-only: there is no update
// or delete path anywhere in this domain.
func (uc *implUseCase) Append(ctx context.Context, input conversation.AppendInput) (conversation.AppendOutput, error) {
	if strings.TrimSpace(input.UserInput) == "" {
		return conversation.AppendOutput{}, conversation.ErrInvalidPayload
	}
	channel := input.Channel
	if channel == "" {
		channel = conversation.ChannelHTTP
	}

	cv, err := uc.repo.Insert(ctx, repo.InsertOptions{
		UserInput:       input.UserInput,
		PredictedIntent: input.PredictedIntent,
		Confidence:      input.Confidence,
		ResponseText:    input.ResponseText,
		Channel:         channel,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Append Insert: %v", err)
		return conversation.AppendOutput{}, fmt.Errorf("%w: %v", conversation.ErrStoreUnavailable, err)
	}
	return conversation.AppendOutput{Conversation: cv}, nil
}
