package models

// SuggestionItem is one completion returned by a suggestion provider.
type SuggestionItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
