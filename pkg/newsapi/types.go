package newsapi

// Headline is one news article title with its source.
type Headline struct {
	Title  string
	Source string
}

// headlinesResponse mirrors the fields we read from the NewsAPI
// top-headlines endpoint.
type headlinesResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message,omitempty"`
	Articles []struct {
		Title  string `json:"title"`
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
	} `json:"articles"`
}
