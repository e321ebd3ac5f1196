// Package store holds the in-memory shortcut record set.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"shortcuts/internal/models"
	"shortcuts/internal/validation"
)

// Source supplies the shortcut records. Implementations read a file, a
// database, or anything else; the store only sees the parsed records.
type Source interface {
	Load(ctx context.Context) ([]models.Record, error)
	// Location is the backing path shown by the config command, or "" when
	// the records do not live in a local file.
	Location() string
}

// Snapshot is an immutable view of one loaded record set.
type Snapshot struct {
	records   []models.Record
	def       *models.Record
	loadError string
}

func newSnapshot(records []models.Record) *Snapshot {
	snap := &Snapshot{records: records}
	for i := range snap.records {
		if snap.records[i].IsDefault {
			snap.def = &snap.records[i]
			break
		}
	}
	return snap
}

// Records returns every record in load order. Callers must not modify them.
func (s *Snapshot) Records() []models.Record {
	return s.records
}

// Len returns the number of loaded records.
func (s *Snapshot) Len() int {
	return len(s.records)
}

// LoadError returns the message of the last failed load, or "".
func (s *Snapshot) LoadError() string {
	return s.loadError
}

// Default returns the record flagged as default, or nil.
func (s *Snapshot) Default() *models.Record {
	return s.def
}

// MatchKeyword returns the record whose keyword equals token, ignoring case.
func (s *Snapshot) MatchKeyword(token string) *models.Record {
	if token == "" {
		return nil
	}
	for i := range s.records {
		if strings.EqualFold(s.records[i].Keyword, token) {
			return &s.records[i]
		}
	}
	return nil
}

// MatchKeywordOrName is MatchKeyword, falling back to the first record whose
// name equals token.
func (s *Snapshot) MatchKeywordOrName(token string) *models.Record {
	if r := s.MatchKeyword(token); r != nil {
		return r
	}
	if token == "" {
		return nil
	}
	for i := range s.records {
		if strings.EqualFold(s.records[i].Name, token) {
			return &s.records[i]
		}
	}
	return nil
}

// PrefixSearch returns every record whose keyword or name starts with
// partial, ignoring case. An empty partial returns all records.
func (s *Snapshot) PrefixSearch(partial string) []*models.Record {
	prefix := strings.ToLower(partial)
	matches := make([]*models.Record, 0, len(s.records))
	for i := range s.records {
		r := &s.records[i]
		if strings.HasPrefix(strings.ToLower(r.Keyword), prefix) ||
			strings.HasPrefix(strings.ToLower(r.Name), prefix) {
			matches = append(matches, r)
		}
	}
	return matches
}

// Store owns the current snapshot and swaps it atomically on reload.
type Store struct {
	source   Source
	current  atomic.Pointer[Snapshot]
	reloadMu sync.Mutex
}

// New creates an empty store backed by source. Call Reload to populate it.
func New(source Source) *Store {
	s := &Store{source: source}
	s.current.Store(newSnapshot(nil))
	return s
}

// Open creates a store and performs the initial load. A failed load is kept
// as the store's load error rather than returned.
func Open(ctx context.Context, source Source) *Store {
	s := New(source)
	if err := s.Reload(ctx); err != nil {
		slog.Error("initial shortcut load failed", "location", source.Location(), "error", err)
	}
	return s
}

// Snapshot returns the current record set.
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

// Location returns the backing location of the record source.
func (s *Store) Location() string {
	return s.source.Location()
}

// Reload re-reads the source and replaces the record set in one step.
// On failure the error message is kept in the new snapshot so resolvers show
// it until a later reload succeeds.
func (s *Store) Reload(ctx context.Context) error {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	records, err := s.source.Load(ctx)
	if err == nil {
		err = validation.ValidateRecords(records)
	}
	if err != nil {
		prev := s.current.Load()
		s.current.Store(&Snapshot{
			records:   prev.records,
			def:       prev.def,
			loadError: err.Error(),
		})
		return fmt.Errorf("failed to load shortcuts: %w", err)
	}

	loaded := make([]models.Record, len(records))
	copy(loaded, records)
	s.current.Store(newSnapshot(loaded))

	slog.Info("shortcuts loaded", "count", len(loaded), "location", s.source.Location())
	return nil
}

// StaticSource serves a fixed record list.
type StaticSource struct {
	Records []models.Record
	Err     error
	Path    string
}

// Load returns the configured records or error.
func (s *StaticSource) Load(ctx context.Context) ([]models.Record, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Records, nil
}

// Location returns the configured path.
func (s *StaticSource) Location() string {
	return s.Path
}
