package repository

// CreateIntentOptions holds parameters for inserting a new Intent.
type CreateIntentOptions struct {
	Name      string
	Responses []string
}

// GetOneIntentOptions holds filter parameters for fetching a single Intent.
// All non-empty fields are applied as AND conditions.
type GetOneIntentOptions struct {
	ID   string
	Name string
}

// UpdateIntentOptions holds parameters for updating an existing Intent.
type UpdateIntentOptions struct {
	ID        string
	Name      string
	Responses []string
}

// CreatePhraseOptions holds parameters for inserting a training phrase.
type CreatePhraseOptions struct {
	IntentID string
	Phrase   string
}

// ListPhrasesOptions holds filter parameters for listing training phrases.
// The zero value lists the whole corpus ordered by (intent name, created_at).
type ListPhrasesOptions struct {
	IntentID string
}
