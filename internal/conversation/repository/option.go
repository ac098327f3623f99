package repository

// InsertOptions holds parameters for appending one exchange to the log.
type InsertOptions struct {
	UserInput       string
	PredictedIntent string
	Confidence      float64
	ResponseText    string
	Channel         string
}

// ListOptions holds filter and pagination parameters for reading the log.
// Results are ordered newest first.
type ListOptions struct {
	Intent  string
	Channel string
	Limit   int
	Offset  int
}

// StatsOptions parameterizes log aggregation. An exchange counts as a
// fallback when its confidence is at or below FallbackThreshold.
type StatsOptions struct {
	FallbackThreshold float64
}
