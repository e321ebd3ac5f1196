package resolver

import (
	"strings"
	"unicode"
)

// Tokens is raw input split into a leading keyword and the search term after it.
type Tokens struct {
	Head string
	Rest string
}

// Empty returns true if the input held nothing but whitespace.
func (t Tokens) Empty() bool {
	return t.Head == ""
}

// HasRest returns true if a search term followed the head token.
func (t Tokens) HasRest() bool {
	return t.Rest != ""
}

// Tokenize trims raw and splits it on the first run of whitespace.
// The rest is kept verbatim apart from the leading whitespace run.
func Tokenize(raw string) Tokens {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Tokens{}
	}

	idx := strings.IndexFunc(trimmed, unicode.IsSpace)
	if idx < 0 {
		return Tokens{Head: trimmed}
	}

	return Tokens{
		Head: trimmed[:idx],
		Rest: strings.TrimLeftFunc(trimmed[idx:], unicode.IsSpace),
	}
}
