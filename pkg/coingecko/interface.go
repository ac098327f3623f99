package coingecko

import "context"

// ICoinGecko defines the interface for spot price lookups.
// Implementations are safe for concurrent use.
type ICoinGecko interface {
	SimplePrice(ctx context.Context, coinID string) (Price, error)
}
