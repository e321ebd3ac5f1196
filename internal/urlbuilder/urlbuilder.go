// Package urlbuilder turns shortcut URL templates into concrete URLs.
package urlbuilder

import (
	"net/url"
	"strings"

	"shortcuts/internal/models"
)

// Encode escapes a search term for use inside a URL query component.
func Encode(term string) string {
	return url.QueryEscape(term)
}

// Build replaces every placeholder in template with the encoded term.
// Templates without a placeholder are returned unchanged.
func Build(template, term string) string {
	if !strings.Contains(template, models.Placeholder) {
		return template
	}
	return strings.ReplaceAll(template, models.Placeholder, Encode(term))
}

// Expand splits a substituted template into its independent URLs.
func Expand(s string) []string {
	return strings.Fields(s)
}

// Targets builds and expands a template in one step.
func Targets(template, term string) []string {
	return Expand(Build(template, term))
}
