package openweather

import "context"

// IOpenWeather defines the interface for current weather lookups.
// Implementations are safe for concurrent use.
type IOpenWeather interface {
	CurrentWeather(ctx context.Context, city string) (Weather, error)
}
