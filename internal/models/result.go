package models

// Score bands. Only the relative order matters to hosts: an explicit
// keyword search outranks the default-record fallback, both outrank
// browsing rows, and suggestions come last.
const (
	ScoreSuggestion    = 99
	ScoreBrowse        = 100
	ScoreBrowseExact   = 101
	ScoreDefaultSearch = 1000
	ScoreKeywordSearch = 1001
)

// Icon identifiers resolved to concrete images by the host.
const (
	IconSearch     = "search"
	IconConfig     = "config"
	IconReload     = "reload"
	IconSuggestion = "suggestion"
	IconWarn       = "warn"
)

// ActionKind identifies what a result does when chosen.
type ActionKind string

// Action kind constants
const (
	ActionNone        ActionKind = ""
	ActionOpenURLs    ActionKind = "open_urls"
	ActionNarrowQuery ActionKind = "narrow_query"
	ActionOpenPath    ActionKind = "open_path"
	ActionReload      ActionKind = "reload"
)

// Action is the activation attached to a result row.
type Action struct {
	Kind  ActionKind `json:"kind"`
	URLs  []string   `json:"urls,omitempty"`  // open_urls: each opened independently
	Query string     `json:"query,omitempty"` // narrow_query: replacement input text
	Path  string     `json:"path,omitempty"`  // open_path
}

// ToolTip carries secondary text shown on hover.
type ToolTip struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Result is one row returned to the launcher host.
type Result struct {
	ID               string   `json:"id,omitempty"`
	Title            string   `json:"title"`
	SubTitle         string   `json:"subtitle"`
	IconPath         string   `json:"icon_path"`
	Score            int      `json:"score"`
	QueryTextDisplay string   `json:"query_text_display,omitempty"`
	Action           Action   `json:"action"`
	ToolTip          *ToolTip `json:"tooltip,omitempty"`

	// Keyword and Outcome label the lookup counted when the row is activated.
	Keyword string `json:"keyword,omitempty"`
	Outcome string `json:"outcome,omitempty"`

	// Record is the originating shortcut, nil for informational rows.
	Record *Record `json:"record,omitempty"`
	// ContextData holds the store location for the config row.
	ContextData string `json:"context_data,omitempty"`
}

// IsActionable returns true if choosing the row does something.
func (r *Result) IsActionable() bool {
	return r.Action.Kind != ActionNone
}

// ContextAction is a secondary action offered for a result row.
type ContextAction struct {
	Title  string `json:"title"`
	Action Action `json:"action"`
}
