// Package resolver turns launcher input into ranked shortcut results.
//
// Every keystroke goes through Session.Query, which only reads in-memory
// state. When the host reports that the user paused, Session.QueryDelayed
// asks the active record's suggestion provider for completions and caches
// them so later keystrokes keep showing them.
package resolver

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"shortcuts/internal/metrics"
	"shortcuts/internal/models"
	"shortcuts/internal/store"
	"shortcuts/internal/suggest"
)

const rememberedRows = 256

// Options tunes result construction.
type Options struct {
	// ActionKeyword is the host's plugin prefix, prepended to narrowed queries.
	ActionKeyword string
}

// Resolver holds what all sessions share.
type Resolver struct {
	store  *store.Store
	client suggest.Client
	opts   Options
}

// New creates a resolver over st that fetches suggestions through client.
func New(st *store.Store, client suggest.Client, opts Options) *Resolver {
	return &Resolver{store: st, client: client, opts: opts}
}

// Store returns the record store.
func (r *Resolver) Store() *store.Store {
	return r.store
}

// NewSession starts an independent query session with its own suggestion cache.
func (r *Resolver) NewSession() *Session {
	return &Session{
		r:       r,
		emitted: make(map[string]models.Result),
	}
}

// Session is one user's stream of queries.
type Session struct {
	r     *Resolver
	cache suggestionCache

	mu      sync.Mutex
	emitted map[string]models.Result
	order   []string
}

// Query resolves raw input without any network access.
func (s *Session) Query(raw string) []models.Result {
	trimmed := strings.TrimSpace(raw)
	s.cache.observe(trimmed)

	results := s.query(raw, trimmed)
	sortByScore(results)
	s.remember(results)
	return results
}

func (s *Session) query(raw, trimmed string) []models.Result {
	if strings.EqualFold(trimmed, CommandReload) {
		return []models.Result{reloadRow(raw, s.r.store.Location())}
	}
	if strings.EqualFold(trimmed, CommandConfig) {
		return []models.Result{configRow(raw, s.r.store.Location())}
	}

	snap := s.r.store.Snapshot()
	if loadErr := snap.LoadError(); loadErr != "" {
		return []models.Result{errorRow(loadErr)}
	}

	if trimmed == "" {
		return s.selectRows(snap.PrefixSearch(""), "", raw)
	}

	tokens := Tokenize(raw)
	var results []models.Result
	searched := false

	if !tokens.HasRest() {
		results = append(results, s.selectRows(snap.PrefixSearch(tokens.Head), tokens.Head, raw)...)
	}

	if tokens.HasRest() {
		if rec := snap.MatchKeywordOrName(tokens.Head); rec != nil {
			results = append(results, searchRow(rec, tokens.Rest, raw, false))
			searched = true
		}
	}

	if def := snap.Default(); def != nil && snap.MatchKeyword(tokens.Head) == nil {
		results = append(results, searchRow(def, trimmed, raw, true))
		searched = true
	}

	if searched {
		results = append(results, s.cache.snapshot()...)
	}
	return results
}

func (s *Session) selectRows(records []*models.Record, head, raw string) []models.Result {
	results := make([]models.Result, 0, len(records))
	for _, rec := range records {
		results = append(results, s.selectRow(rec, head, raw))
	}
	return results
}

// QueryDelayed runs the suggestion path for raw. It blocks on at most one
// provider fetch; a later call on the same session supersedes it, in which
// case this call returns nil and leaves the cache alone.
func (s *Session) QueryDelayed(ctx context.Context, raw string) []models.Result {
	trimmed := strings.TrimSpace(raw)
	fetchCtx, token := s.cache.begin(ctx, trimmed)

	snap := s.r.store.Snapshot()
	if trimmed == "" || isCommand(trimmed) || snap.LoadError() != "" {
		s.cache.clear(token)
		return nil
	}

	tokens := Tokenize(raw)
	keyword := snap.MatchKeyword(tokens.Head)
	explicit := snap.MatchKeywordOrName(tokens.Head)
	def := snap.Default()

	if !tokens.HasRest() && (def == nil || keyword != nil) {
		// Nothing typed past a keyword yet.
		s.cache.clear(token)
		return nil
	}

	// A head matching only a record name defers to the default record
	// unless that record can suggest on its own.
	var active *models.Record
	var term string
	isDefault := false
	switch {
	case explicit != nil && tokens.HasRest() && (keyword != nil || def == nil || explicit.HasSuggestions()):
		active, term = explicit, tokens.Rest
	case def != nil && keyword == nil:
		active, term, isDefault = def, trimmed, true
	default:
		s.cache.clear(token)
		return nil
	}

	if !active.HasSuggestions() {
		s.cache.release(token)
		return nil
	}

	items, err := s.r.client.Fetch(fetchCtx, active.SuggestionProvider, term)
	if err != nil || len(items) == 0 {
		if !s.cache.clear(token) {
			metrics.RecordStaleSuggestion()
			slog.Debug("discarding stale suggestions", "provider", active.SuggestionProvider, "term", term)
			return nil
		}
		if err != nil {
			slog.Warn("suggestion fetch failed", "provider", active.SuggestionProvider, "error", err)
		}
		return nil
	}

	rows := make([]models.Result, 0, len(items))
	for _, item := range items {
		rows = append(rows, suggestionRow(active, item, term, raw))
	}
	if !s.cache.commit(token, rows) {
		metrics.RecordStaleSuggestion()
		slog.Debug("discarding stale suggestions", "provider", active.SuggestionProvider, "term", term)
		return nil
	}

	results := append([]models.Result{}, rows...)
	results = append(results, searchRow(active, term, raw, isDefault))
	if isDefault && !tokens.HasRest() {
		results = append(results, s.selectRows(snap.PrefixSearch(tokens.Head), tokens.Head, raw)...)
	}

	sortByScore(results)
	s.remember(results)
	return results
}

// Result returns a row recently emitted by this session.
func (s *Session) Result(id string) (models.Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.emitted[id]
	return r, ok
}

func (s *Session) remember(results []models.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range results {
		if _, ok := s.emitted[r.ID]; !ok {
			s.order = append(s.order, r.ID)
		}
		s.emitted[r.ID] = r
	}
	for len(s.order) > rememberedRows {
		delete(s.emitted, s.order[0])
		s.order = s.order[1:]
	}
}

func sortByScore(results []models.Result) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
}
