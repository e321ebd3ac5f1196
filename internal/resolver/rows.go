package resolver

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"shortcuts/internal/models"
	"shortcuts/internal/urlbuilder"
)

// Reserved commands, matched case-insensitively against the trimmed input.
const (
	CommandReload = "!reload"
	CommandConfig = "!config"
)

func isCommand(trimmed string) bool {
	return strings.EqualFold(trimmed, CommandReload) || strings.EqualFold(trimmed, CommandConfig)
}

func newRow() models.Result {
	return models.Result{ID: uuid.NewString()}
}

func reloadRow(raw, location string) models.Result {
	row := newRow()
	row.QueryTextDisplay = raw
	row.Title = "Reload shortcuts"
	row.SubTitle = "Reload shortcuts from the configured source"
	if location != "" {
		row.SubTitle = "Reload shortcuts from " + location
	}
	row.IconPath = models.IconReload
	row.Action = models.Action{Kind: models.ActionReload}
	row.Keyword, row.Outcome = CommandReload, models.OutcomeCommand
	return row
}

func configRow(raw, location string) models.Result {
	row := newRow()
	row.QueryTextDisplay = raw
	row.Title = "Open shortcuts config"
	row.IconPath = models.IconConfig
	row.Keyword, row.Outcome = CommandConfig, models.OutcomeCommand
	if location == "" {
		row.SubTitle = "Shortcuts are not stored in a local file"
		return row
	}
	row.SubTitle = "Open " + location
	row.Action = models.Action{Kind: models.ActionOpenPath, Path: location}
	row.ContextData = location
	return row
}

func errorRow(loadErr string) models.Result {
	row := newRow()
	row.Title = "Error loading shortcuts"
	row.SubTitle = "Error: " + loadErr
	row.IconPath = models.IconWarn
	row.ToolTip = &models.ToolTip{Title: "Config error", Text: loadErr}
	return row
}

// selectRow offers narrowing the query to record so the user can type a term.
func (s *Session) selectRow(rec *models.Record, head, raw string) models.Result {
	score := models.ScoreBrowse
	if strings.EqualFold(rec.Keyword, head) || strings.EqualFold(rec.Name, head) {
		score = models.ScoreBrowseExact
	}

	row := newRow()
	row.QueryTextDisplay = raw
	row.Title = rec.Name
	row.SubTitle = fmt.Sprintf("Search using %s", rec.Name)
	if !rec.HasPlaceholder() {
		row.SubTitle = fmt.Sprintf("Select %s", rec.Name)
	}
	row.IconPath = rec.Icon(models.IconSearch)
	row.Score = score
	row.Action = models.Action{Kind: models.ActionNarrowQuery, Query: s.narrowQuery(rec)}
	row.Record = rec
	row.Keyword, row.Outcome = rec.Keyword, models.OutcomeBrowse
	return row
}

// narrowQuery is the replacement input that selects rec. Names containing
// whitespace would not survive tokenization, so those use the keyword.
func (s *Session) narrowQuery(rec *models.Record) string {
	selector := rec.Name
	if strings.IndexFunc(selector, unicode.IsSpace) >= 0 || selector == "" {
		selector = rec.Keyword
	}
	if s.r.opts.ActionKeyword != "" {
		return s.r.opts.ActionKeyword + " " + selector + " "
	}
	return selector + " "
}

// searchRow executes a search of term on rec.
func searchRow(rec *models.Record, term, raw string, isDefault bool) models.Result {
	score, outcome := models.ScoreKeywordSearch, models.OutcomeKeyword
	if isDefault {
		score, outcome = models.ScoreDefaultSearch, models.OutcomeDefault
	}

	row := newRow()
	row.QueryTextDisplay = raw
	row.Title = rec.Name + " | " + term
	row.SubTitle = fmt.Sprintf("Search %s for '%s'", rec.Name, term)
	row.IconPath = rec.Icon(models.IconSearch)
	row.Score = score
	row.Action = models.Action{Kind: models.ActionOpenURLs, URLs: urlbuilder.Targets(rec.URL, term)}
	row.Record = rec
	row.Keyword, row.Outcome = rec.Keyword, outcome
	return row
}

// suggestionRow searches rec for a provider suggestion instead of the typed term.
func suggestionRow(rec *models.Record, item models.SuggestionItem, term, raw string) models.Result {
	row := newRow()
	row.QueryTextDisplay = replaceLast(raw, term, item.Title)
	row.Title = item.Title
	row.SubTitle = item.Description
	row.IconPath = models.IconSuggestion
	row.Score = models.ScoreSuggestion
	row.Action = models.Action{Kind: models.ActionOpenURLs, URLs: urlbuilder.Targets(rec.URL, item.Title)}
	row.Record = rec
	row.Keyword, row.Outcome = rec.Keyword, models.OutcomeSuggestion
	return row
}

func replaceLast(s, old, replacement string) string {
	idx := strings.LastIndex(s, old)
	if idx < 0 || old == "" {
		return replacement
	}
	return s[:idx] + replacement + s[idx+len(old):]
}
