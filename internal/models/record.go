package models

import "strings"

// Placeholder marks where the encoded search term goes in a URL template.
const Placeholder = "%s"

// Record represents one configured search shortcut.
type Record struct {
	Name               string `json:"name" yaml:"name"`
	Keyword            string `json:"keyword" yaml:"keyword"`
	URL                string `json:"url" yaml:"url"`
	IconPath           string `json:"icon_path,omitempty" yaml:"icon_path,omitempty"`
	Domain             string `json:"domain,omitempty" yaml:"domain,omitempty"`
	SuggestionProvider string `json:"suggestion_provider,omitempty" yaml:"suggestion_provider,omitempty"`
	IsDefault          bool   `json:"default,omitempty" yaml:"default,omitempty"`
}

// HasPlaceholder returns true if any URL in the template takes a search term.
func (r *Record) HasPlaceholder() bool {
	return strings.Contains(r.URL, Placeholder)
}

// HasSuggestions returns true if the record is bound to a suggestion provider.
func (r *Record) HasSuggestions() bool {
	return r.SuggestionProvider != ""
}

// Icon returns the record's icon, or fallback when none is configured.
func (r *Record) Icon(fallback string) string {
	if r.IconPath != "" {
		return r.IconPath
	}
	return fallback
}

// VisitTarget returns the URL opened by the "visit site" context action.
// Records without a domain fall back to their first template URL with the
// placeholder stripped.
func (r *Record) VisitTarget() string {
	if r.Domain != "" {
		return r.Domain
	}
	fields := strings.Fields(r.URL)
	if len(fields) == 0 {
		return ""
	}
	return strings.ReplaceAll(fields[0], Placeholder, "")
}
