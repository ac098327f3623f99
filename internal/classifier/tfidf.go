package classifier

import (
	"math"
	"sort"
)

// vectorizer maps token sequences to TF-IDF feature vectors over the
// vocabulary observed at fit time. Terms unseen during fit are ignored at
// transform time; they are never an error.
type vectorizer struct {
	vocab map[string]int // term -> column index
	terms []string       // sorted; terms[i] is the term for column i
	idf   []float64
}

// fitVectorizer builds the vocabulary and IDF weights from the training
// documents. Vocabulary order is sorted so fitting is deterministic.
func fitVectorizer(docs [][]string) *vectorizer {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{}, len(doc))
		for _, term := range doc {
			if _, dup := seen[term]; !dup {
				seen[term] = struct{}{}
				df[term]++
			}
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	v := &vectorizer{
		vocab: make(map[string]int, len(terms)),
		terms: terms,
		idf:   make([]float64, len(terms)),
	}
	n := float64(len(docs))
	for i, term := range terms {
		v.vocab[term] = i
		// smoothed IDF: ln((1+n)/(1+df)) + 1, never zero or negative
		v.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}
	return v
}

// transform converts a token sequence into an l2-normalized TF-IDF vector.
func (v *vectorizer) transform(tokens []string) []float64 {
	x := make([]float64, len(v.terms))
	for _, term := range tokens {
		if col, ok := v.vocab[term]; ok {
			x[col]++
		}
	}

	var norm float64
	for col := range x {
		if x[col] > 0 {
			x[col] *= v.idf[col]
			norm += x[col] * x[col]
		}
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for col := range x {
			x[col] /= norm
		}
	}
	return x
}
