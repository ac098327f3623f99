package classifier

import (
	"fmt"
	"sort"
	"time"
)

// Model is an immutable trained artifact: the vectorizer and the Naive Bayes
// classifier fit together from one corpus. Vectorizer vocabulary and
// classifier label set always come from the same Fit call; a Model is never
// updated in place, only replaced wholesale.
type Model struct {
	vec *vectorizer
	nb  *bayes

	trainedAt   time.Time
	numExamples int
}

// Fit trains a new Model from the corpus.
// The corpus must contain at least two distinct intents, each with at least
// one example phrase; ErrInsufficientTrainingData otherwise.
func Fit(corpus []TrainingExample) (*Model, error) {
	if len(corpus) == 0 {
		return nil, fmt.Errorf("%w: empty corpus", ErrInsufficientTrainingData)
	}

	labelSet := make(map[string]struct{})
	for _, ex := range corpus {
		labelSet[ex.Intent] = struct{}{}
	}
	if len(labelSet) < 2 {
		return nil, fmt.Errorf("%w: got %d intent(s)", ErrInsufficientTrainingData, len(labelSet))
	}

	labels := make([]string, 0, len(labelSet))
	for label := range labelSet {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	labelIndex := make(map[string]int, len(labels))
	for i, label := range labels {
		labelIndex[label] = i
	}

	docs := make([][]string, len(corpus))
	y := make([]int, len(corpus))
	for i, ex := range corpus {
		docs[i] = normalize(ex.Phrase)
		y[i] = labelIndex[ex.Intent]
	}

	vec := fitVectorizer(docs)
	rows := make([][]float64, len(docs))
	for i, doc := range docs {
		rows[i] = vec.transform(doc)
	}

	return &Model{
		vec:         vec,
		nb:          fitBayes(labels, rows, y, len(vec.terms)),
		trainedAt:   time.Now(),
		numExamples: len(corpus),
	}, nil
}

// Predict maps an utterance to the arg-max intent and its posterior
// probability. Pure function of (Model, utterance); safe for concurrent use.
// Ties are broken toward the lexicographically smallest label.
func (m *Model) Predict(utterance string) Prediction {
	probs := m.nb.posterior(m.vec.transform(normalize(utterance)))

	// labels are sorted, so keeping the first maximum is the lexicographic
	// tie-break
	best := 0
	for c := 1; c < len(probs); c++ {
		if probs[c] > probs[best] {
			best = c
		}
	}
	return Prediction{Intent: m.nb.labels[best], Confidence: probs[best]}
}

// Posterior returns the full probability distribution over intents for the
// utterance. Exposed for tests and diagnostics.
func (m *Model) Posterior(utterance string) map[string]float64 {
	probs := m.nb.posterior(m.vec.transform(normalize(utterance)))
	dist := make(map[string]float64, len(probs))
	for c, p := range probs {
		dist[m.nb.labels[c]] = p
	}
	return dist
}

// Labels returns the sorted intent label set the model was fit on.
func (m *Model) Labels() []string {
	out := make([]string, len(m.nb.labels))
	copy(out, m.nb.labels)
	return out
}

// VocabularySize returns the number of terms observed at fit time.
func (m *Model) VocabularySize() int { return len(m.vec.terms) }

// TrainedAt returns when the model was fit.
func (m *Model) TrainedAt() time.Time { return m.trainedAt }

// NumExamples returns the corpus size the model was fit on.
func (m *Model) NumExamples() int { return m.numExamples }
