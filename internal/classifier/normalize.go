package classifier

import (
	"strings"
	"unicode"
)

// stopwords are dropped during normalization. Small fixed English list;
// extending it changes the model, so keep train/inference on the same build.
var stopwords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else",
		"is", "are", "was", "were", "be", "been", "being", "am",
		"do", "does", "did", "doing", "will", "would", "can", "could",
		"should", "shall", "may", "might", "must",
		"have", "has", "had", "having",
		"i", "you", "he", "she", "it", "we", "they",
		"me", "him", "her", "us", "them",
		"my", "your", "his", "its", "our", "their", "mine", "yours",
		"this", "that", "these", "those", "there", "here",
		"what", "which", "who", "whom", "whose", "when", "where", "why", "how",
		"not", "no", "nor", "so", "too", "very", "just", "also",
		"to", "of", "in", "on", "at", "by", "for", "with", "about",
		"into", "over", "under", "after", "before", "up", "down", "out", "off",
		"again", "further", "once", "as", "from",
		"s", "t", "d", "ll", "m", "re", "ve",
	} {
		stopwords[w] = struct{}{}
	}
}

// normalize maps raw text to the token sequence both training and inference
// operate on: case folding, punctuation stripped to spaces, stopwords dropped.
// Train/inference must always go through this exact function; skew between
// the two is a correctness bug.
func normalize(text string) []string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	fields := strings.Fields(b.String())
	tokens := fields[:0]
	for _, f := range fields {
		if _, skip := stopwords[f]; !skip {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
