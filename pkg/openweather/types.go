package openweather

// Weather is the condensed current weather for one city.
type Weather struct {
	City        string
	Description string
	TempCelsius float64
	Humidity    int
}

// currentResponse mirrors the fields we read from the OpenWeatherMap
// current weather endpoint.
type currentResponse struct {
	Name    string `json:"name"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
}

// errorResponse is the OpenWeatherMap error body.
type errorResponse struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}
