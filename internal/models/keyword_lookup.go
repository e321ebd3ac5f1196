package models

import "time"

// Keyword lookup outcome constants
const (
	OutcomeKeyword    = "keyword"
	OutcomeDefault    = "default"
	OutcomeBrowse     = "browse"
	OutcomeSuggestion = "suggestion"
	OutcomeCommand    = "command"
)

// KeywordLookup represents a per-keyword hit count by outcome.
type KeywordLookup struct {
	Keyword    string
	Outcome    string
	Count      int64
	LastSeenAt time.Time
}
