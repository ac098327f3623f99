package classifier

import "math"

// laplaceAlpha is the additive smoothing constant for term likelihoods.
const laplaceAlpha = 1.0

// bayes is a multinomial Naive Bayes classifier fit over TF-IDF features.
// All probabilities are kept in log space until the final posterior.
type bayes struct {
	labels        []string    // sorted; labels[c] is the intent for class c
	logPrior      []float64   // [class]
	logLikelihood [][]float64 // [class][term]
}

// fitBayes estimates log priors from label relative frequencies and smoothed
// log term likelihoods from the summed TF-IDF mass per class.
// rows and y must be parallel; y[i] indexes labels.
func fitBayes(labels []string, rows [][]float64, y []int, numTerms int) *bayes {
	numClasses := len(labels)

	classCount := make([]float64, numClasses)
	termMass := make([][]float64, numClasses)
	classMass := make([]float64, numClasses)
	for c := range termMass {
		termMass[c] = make([]float64, numTerms)
	}

	for i, row := range rows {
		c := y[i]
		classCount[c]++
		for t, val := range row {
			if val > 0 {
				termMass[c][t] += val
				classMass[c] += val
			}
		}
	}

	nb := &bayes{
		labels:        labels,
		logPrior:      make([]float64, numClasses),
		logLikelihood: make([][]float64, numClasses),
	}
	totalDocs := float64(len(rows))
	for c := 0; c < numClasses; c++ {
		nb.logPrior[c] = math.Log(classCount[c] / totalDocs)
		nb.logLikelihood[c] = make([]float64, numTerms)
		denom := classMass[c] + laplaceAlpha*float64(numTerms)
		for t := 0; t < numTerms; t++ {
			nb.logLikelihood[c][t] = math.Log((termMass[c][t] + laplaceAlpha) / denom)
		}
	}
	return nb
}

// posterior returns the normalized probability distribution over classes for
// the given feature vector. Zero vectors degrade to the prior distribution.
func (nb *bayes) posterior(x []float64) []float64 {
	scores := make([]float64, len(nb.labels))
	for c := range scores {
		s := nb.logPrior[c]
		ll := nb.logLikelihood[c]
		for t, val := range x {
			if val > 0 {
				s += val * ll[t]
			}
		}
		scores[c] = s
	}

	// exp-normalize for numerical stability
	maxScore := scores[0]
	for _, s := range scores[1:] {
		if s > maxScore {
			maxScore = s
		}
	}
	var sum float64
	probs := make([]float64, len(scores))
	for c, s := range scores {
		probs[c] = math.Exp(s - maxScore)
		sum += probs[c]
	}
	for c := range probs {
		probs[c] /= sum
	}
	return probs
}
