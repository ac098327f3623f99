package classifier

// TrainingExample is one labeled phrase from the training corpus.
type TrainingExample struct {
	Intent string
	Phrase string
}

// Prediction is the classification result for a single utterance.
type Prediction struct {
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"` // posterior probability of Intent, in [0,1]
}

// IsConfident reports whether the prediction clears the given threshold.
// The boundary is inclusive into fallback: exactly-at-threshold is NOT confident.
func (p Prediction) IsConfident(threshold float64) bool {
	return p.Confidence > threshold
}
