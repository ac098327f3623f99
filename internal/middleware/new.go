package middleware

import (
	"ai-chatbot/pkg/log"
)

// Middleware bundles the cross-cutting gin middlewares used by the
// delivery layers.
type Middleware struct {
	l               log.Logger
	internalKey     string
	rateLimitPerMin int
}

func New(l log.Logger, internalKey string, rateLimitPerMin int) Middleware {
	return Middleware{
		l:               l,
		internalKey:     internalKey,
		rateLimitPerMin: rateLimitPerMin,
	}
}
