package coingecko

// Price is the USD spot price for one coin.
type Price struct {
	CoinID string
	USD    float64
}
