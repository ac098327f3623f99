package http

import (
	"time"

	"ai-chatbot/internal/intent"
)

// --- Request DTOs ---

type createReq struct {
	Name      string   `json:"name"      binding:"required,min=1,max=255"`
	Responses []string `json:"responses" binding:"required,min=1"`
	Phrases   []string `json:"phrases"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() intent.CreateIntentInput {
	return intent.CreateIntentInput{
		Name:      r.Name,
		Responses: r.Responses,
		Phrases:   r.Phrases,
	}
}

// ---

type updateReq struct {
	ID        string   `json:"-"` // populated from URI param
	Name      string   `json:"name"      binding:"omitempty,min=1,max=255"`
	Responses []string `json:"responses" binding:"omitempty,min=1"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() intent.UpdateIntentInput {
	return intent.UpdateIntentInput{
		ID:        r.ID,
		Name:      r.Name,
		Responses: r.Responses,
	}
}

// ---

type addPhraseReq struct {
	IntentID string `json:"-"` // populated from URI param
	Phrase   string `json:"phrase" binding:"required,min=1,max=1000"`
}

func (r addPhraseReq) validate() error { return nil }

func (r addPhraseReq) toInput() intent.AddPhraseInput {
	return intent.AddPhraseInput{
		IntentID: r.IntentID,
		Phrase:   r.Phrase,
	}
}

// --- Response DTOs ---

type intentResp struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Responses []string  `json:"responses"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newIntentResp(it intent.Intent) intentResp {
	return intentResp{
		ID:        it.ID,
		Name:      it.Name,
		Responses: it.Responses,
		CreatedAt: it.CreatedAt,
		UpdatedAt: it.UpdatedAt,
	}
}

type phraseResp struct {
	ID        string    `json:"id"`
	IntentID  string    `json:"intent_id"`
	Phrase    string    `json:"phrase"`
	CreatedAt time.Time `json:"created_at"`
}

func newPhraseResp(p intent.TrainingPhrase) phraseResp {
	return phraseResp{
		ID:        p.ID,
		IntentID:  p.IntentID,
		Phrase:    p.Phrase,
		CreatedAt: p.CreatedAt,
	}
}

type createResp struct {
	Intent intentResp `json:"intent"`
}

func (h *handler) newCreateResp(out intent.CreateIntentOutput) createResp {
	return createResp{Intent: newIntentResp(out.Intent)}
}

type listResp struct {
	Intents []intentResp `json:"intents"`
}

func (h *handler) newListResp(out intent.ListIntentsOutput) listResp {
	intents := make([]intentResp, len(out.Intents))
	for i, it := range out.Intents {
		intents[i] = newIntentResp(it)
	}
	return listResp{Intents: intents}
}

type detailResp struct {
	Intent  intentResp   `json:"intent"`
	Phrases []phraseResp `json:"phrases"`
}

func (h *handler) newDetailResp(out intent.DetailIntentOutput) detailResp {
	phrases := make([]phraseResp, len(out.Phrases))
	for i, p := range out.Phrases {
		phrases[i] = newPhraseResp(p)
	}
	return detailResp{
		Intent:  newIntentResp(out.Intent),
		Phrases: phrases,
	}
}

type updateResp struct {
	Intent intentResp `json:"intent"`
}

func (h *handler) newUpdateResp(out intent.UpdateIntentOutput) updateResp {
	return updateResp{Intent: newIntentResp(out.Intent)}
}

type addPhraseResp struct {
	Phrase phraseResp `json:"phrase"`
}

func (h *handler) newAddPhraseResp(out intent.AddPhraseOutput) addPhraseResp {
	return addPhraseResp{Phrase: newPhraseResp(out.Phrase)}
}
