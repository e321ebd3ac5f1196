package suggest

import (
	"encoding/json"
	"fmt"

	"shortcuts/internal/models"
)

// Provider describes one autocomplete endpoint.
type Provider struct {
	ID       string
	Name     string
	Endpoint string // contains %s for the encoded term
	Parse    func(body []byte) ([]models.SuggestionItem, error)
}

// DefaultProviders is the built-in provider catalogue.
// All of them speak the OpenSearch suggestions JSON format.
func DefaultProviders() []Provider {
	return []Provider{
		{ID: "google", Name: "Google", Endpoint: "https://suggestqueries.google.com/complete/search?client=firefox&q=%s", Parse: ParseOpenSearch},
		{ID: "bing", Name: "Bing", Endpoint: "https://api.bing.com/osjson.aspx?query=%s", Parse: ParseOpenSearch},
		{ID: "duckduckgo", Name: "DuckDuckGo", Endpoint: "https://duckduckgo.com/ac/?type=list&q=%s", Parse: ParseOpenSearch},
		{ID: "wikipedia", Name: "Wikipedia", Endpoint: "https://en.wikipedia.org/w/api.php?action=opensearch&format=json&limit=10&search=%s", Parse: ParseOpenSearch},
		{ID: "youtube", Name: "YouTube", Endpoint: "https://suggestqueries.google.com/complete/search?client=firefox&ds=yt&q=%s", Parse: ParseOpenSearch},
	}
}

// ParseOpenSearch decodes ["term", [completions...], [descriptions...], [urls...]].
// The description and url arrays are optional.
func ParseOpenSearch(body []byte) ([]models.SuggestionItem, error) {
	var parts []json.RawMessage
	if err := json.Unmarshal(body, &parts); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(parts) < 2 {
		return nil, fmt.Errorf("%w: expected at least 2 elements, got %d", ErrMalformed, len(parts))
	}

	var titles []string
	if err := json.Unmarshal(parts[1], &titles); err != nil {
		return nil, fmt.Errorf("%w: completions: %v", ErrMalformed, err)
	}

	var descriptions []string
	if len(parts) > 2 {
		// Some providers put objects here; descriptions are best effort.
		_ = json.Unmarshal(parts[2], &descriptions)
	}

	items := make([]models.SuggestionItem, 0, len(titles))
	for i, title := range titles {
		if title == "" {
			continue
		}
		item := models.SuggestionItem{Title: title}
		if i < len(descriptions) {
			item.Description = descriptions[i]
		}
		items = append(items, item)
	}
	return items, nil
}
