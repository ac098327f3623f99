package newsapi

import "context"

// INewsAPI defines the interface for headline lookups.
// Implementations are safe for concurrent use.
type INewsAPI interface {
	TopHeadlines(ctx context.Context, limit int) ([]Headline, error)
}
