package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ai-chatbot/internal/chat"
	"ai-chatbot/internal/classifier"
	"ai-chatbot/internal/conversation"
)

const appendTimeout = 5 * time.Second

// Send runs one message through the pipeline: classify, respond, log.
// The conversation append is fire-and-forget; a log failure never
// affects the reply the user sees.
func (uc *implUseCase) Send(ctx context.Context, input chat.SendInput) (chat.SendOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return chat.SendOutput{}, chat.ErrEmptyMessage
	}

	pred, err := uc.engine.Predict(text)
	if err != nil {
		if errors.Is(err, classifier.ErrModelNotTrained) {
			return chat.SendOutput{}, chat.ErrNotTrained
		}
		uc.l.Errorf(ctx, "uc.Send Predict: %v", err)
		return chat.SendOutput{}, err
	}

	reply, err := uc.responder.Respond(pred.Intent, pred.Confidence)
	if err != nil {
		// A trained label without responses is an operator mistake; the
		// user still gets the fallback.
		uc.l.Warnf(ctx, "uc.Send Respond intent=%s: %v", pred.Intent, err)
		reply = uc.responder.Fallback()
	}

	fallback := !pred.IsConfident(uc.responder.Threshold())
	if !fallback {
		if extra := uc.enrichReply(ctx, pred.Intent); extra != "" {
			reply = fmt.Sprintf("%s %s", reply, extra)
		}
	}

	out := chat.SendOutput{
		Reply:      reply,
		Intent:     pred.Intent,
		Confidence: pred.Confidence,
		Fallback:   fallback,
	}

	go uc.appendLog(input, out)

	return out, nil
}

// appendLog writes the exchange to the conversation log on a detached
// context so a slow store cannot block or cancel the reply.
func (uc *implUseCase) appendLog(input chat.SendInput, out chat.SendOutput) {
	ctx, cancel := context.WithTimeout(context.Background(), appendTimeout)
	defer cancel()

	_, err := uc.convs.Append(ctx, conversation.AppendInput{
		UserInput:       input.Text,
		PredictedIntent: out.Intent,
		Confidence:      out.Confidence,
		ResponseText:    out.Reply,
		Channel:         input.Channel,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Send append log: %v", err)
	}
}
