package classifier

import (
	"math/rand"
	"sync"
)

// Responder maps a predicted intent to a canned response. Predictions at or
// below the confidence threshold get the fixed fallback text regardless of
// label; this is the system's only uncertainty-handling policy.
type Responder struct {
	threshold float64
	fallback  string

	mu        sync.Mutex
	responses map[string][]string
	rng       *rand.Rand
}

// NewResponder creates a Responder. Selection among multiple responses for an
// intent is explicitly randomized; seed it for reproducible tests.
func NewResponder(threshold float64, fallback string, seed int64) *Responder {
	return &Responder{
		threshold: threshold,
		fallback:  fallback,
		responses: make(map[string][]string),
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// SetResponses replaces the intent → responses table. Called after each
// successful training round so the table matches the trained label set.
func (r *Responder) SetResponses(table map[string][]string) {
	copied := make(map[string][]string, len(table))
	for intent, resps := range table {
		copied[intent] = append([]string(nil), resps...)
	}
	r.mu.Lock()
	r.responses = copied
	r.mu.Unlock()
}

// Respond selects a response for the predicted intent.
//
// confidence <= threshold returns the fallback text with nil error (the
// boundary is inclusive into fallback). A passing prediction whose label has
// no registered responses returns ErrUnknownIntent, a configuration error
// the operator must see; callers show the fallback to the end user.
func (r *Responder) Respond(intent string, confidence float64) (string, error) {
	if confidence <= r.threshold {
		return r.fallback, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	resps := r.responses[intent]
	if len(resps) == 0 {
		return "", ErrUnknownIntent
	}
	if len(resps) == 1 {
		return resps[0], nil
	}
	return resps[r.rng.Intn(len(resps))], nil
}

// Fallback returns the configured fallback text.
func (r *Responder) Fallback() string { return r.fallback }

// Threshold returns the configured confidence threshold.
func (r *Responder) Threshold() float64 { return r.threshold }
