package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"ai-chatbot/internal/classifier"
	"ai-chatbot/internal/conversation"
	"ai-chatbot/internal/intent"
	"ai-chatbot/pkg/coingecko"
	"ai-chatbot/pkg/log"
	"ai-chatbot/pkg/newsapi"
	"ai-chatbot/pkg/openweather"
)

const defaultEnrichCacheSize = 64

// EnrichConfig wires the optional live-data upstreams. Nil clients
// disable enrichment for their intent.
type EnrichConfig struct {
	Weather     openweather.IOpenWeather
	News        newsapi.INewsAPI
	Crypto      coingecko.ICoinGecko
	DefaultCity string
	DefaultCoin string
	CacheTTL    time.Duration
}

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	engine    *classifier.Engine
	responder *classifier.Responder
	intents   intent.UseCase
	convs     conversation.UseCase

	enrich      EnrichConfig
	enrichCache *expirable.LRU[string, string]

	l log.Logger
}

// New creates the chat orchestrator. The engine and responder are shared
// with whoever else inspects the model (HTTP model endpoint, CLI REPL).
func New(engine *classifier.Engine, responder *classifier.Responder, intents intent.UseCase, convs conversation.UseCase, enrich EnrichConfig, l log.Logger) *implUseCase {
	ttl := enrich.CacheTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	return &implUseCase{
		engine:      engine,
		responder:   responder,
		intents:     intents,
		convs:       convs,
		enrich:      enrich,
		enrichCache: expirable.NewLRU[string, string](defaultEnrichCacheSize, nil, ttl),
		l:           l,
	}
}
