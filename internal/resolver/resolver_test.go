package resolver

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"shortcuts/internal/models"
	"shortcuts/internal/store"
	"shortcuts/internal/suggest"
)

func testRecords() []models.Record {
	return []models.Record{
		{Name: "Google", Keyword: "g", URL: "https://www.google.com/search?q=%s", SuggestionProvider: "google", IsDefault: true},
		{Name: "GitHub", Keyword: "gh", URL: "https://github.com/search?q=%s"},
		{Name: "Wikipedia", Keyword: "w", URL: "https://en.wikipedia.org/w/index.php?search=%s", SuggestionProvider: "wikipedia"},
		{Name: "Both", Keyword: "both", URL: "https://a.com/%s https://b.com/%s"},
		{Name: "Go Docs", Keyword: "godoc", URL: "https://go.dev/doc"},
	}
}

func newTestStore(t *testing.T, records []models.Record, loadErr error) *store.Store {
	t.Helper()
	st := store.New(&store.StaticSource{Records: records, Err: loadErr, Path: "/home/u/.config/shortcuts/shortcuts.yaml"})
	err := st.Reload(context.Background())
	if loadErr == nil && err != nil {
		t.Fatalf("Reload() error: %v", err)
	}
	return st
}

// countingClient returns items for every fetch and counts calls.
type countingClient struct {
	calls atomic.Int32
	items []models.SuggestionItem
	err   error

	mu    sync.Mutex
	terms []string
}

func (c *countingClient) Fetch(ctx context.Context, providerID, term string) ([]models.SuggestionItem, error) {
	c.calls.Add(1)
	c.mu.Lock()
	c.terms = append(c.terms, providerID+":"+term)
	c.mu.Unlock()
	return c.items, c.err
}

func (c *countingClient) lastTerm() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.terms) == 0 {
		return ""
	}
	return c.terms[len(c.terms)-1]
}

func newTestSession(t *testing.T, client suggest.Client) *Session {
	t.Helper()
	r := New(newTestStore(t, testRecords(), nil), client, Options{})
	return r.NewSession()
}

func twoItems() []models.SuggestionItem {
	return []models.SuggestionItem{
		{Title: "golang", Description: "programming language"},
		{Title: "golang tutorial"},
	}
}

func countKind(results []models.Result, score int) int {
	n := 0
	for _, r := range results {
		if r.Score == score {
			n++
		}
	}
	return n
}

func findScore(results []models.Result, score int) *models.Result {
	for i := range results {
		if results[i].Score == score {
			return &results[i]
		}
	}
	return nil
}

func TestQuery_EmptyInputBrowsesAll(t *testing.T) {
	client := &countingClient{items: twoItems()}
	s := newTestSession(t, client)

	for _, raw := range []string{"", "   "} {
		results := s.Query(raw)
		if len(results) != len(testRecords()) {
			t.Fatalf("Query(%q) returned %d rows, want %d", raw, len(results), len(testRecords()))
		}
		for _, r := range results {
			if r.Action.Kind != models.ActionNarrowQuery {
				t.Errorf("row %q action = %q, want narrow_query", r.Title, r.Action.Kind)
			}
			if r.Score != models.ScoreBrowse {
				t.Errorf("row %q score = %d, want %d", r.Title, r.Score, models.ScoreBrowse)
			}
		}
	}

	if n := client.calls.Load(); n != 0 {
		t.Errorf("sync path made %d fetches, want 0", n)
	}
}

func TestQuery_Commands(t *testing.T) {
	st := newTestStore(t, testRecords(), nil)
	broken := newTestStore(t, nil, errors.New("bad yaml"))

	tests := []struct {
		name     string
		st       *store.Store
		raw      string
		wantKind models.ActionKind
		wantIcon string
	}{
		{"reload", st, "!reload", models.ActionReload, models.IconReload},
		{"reload upper with spaces", st, "  !RELOAD  ", models.ActionReload, models.IconReload},
		{"config", st, "!config", models.ActionOpenPath, models.IconConfig},
		{"config mixed case", st, "!Config", models.ActionOpenPath, models.IconConfig},
		{"reload despite load error", broken, "!reload", models.ActionReload, models.IconReload},
		{"config despite load error", broken, " !config", models.ActionOpenPath, models.IconConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.st, &countingClient{}, Options{}).NewSession()
			results := s.Query(tt.raw)
			if len(results) != 1 {
				t.Fatalf("Query(%q) returned %d rows, want 1", tt.raw, len(results))
			}
			if results[0].Action.Kind != tt.wantKind {
				t.Errorf("action = %q, want %q", results[0].Action.Kind, tt.wantKind)
			}
			if results[0].IconPath != tt.wantIcon {
				t.Errorf("icon = %q, want %q", results[0].IconPath, tt.wantIcon)
			}
			if results[0].Record != nil {
				t.Error("command row must not reference a record")
			}
		})
	}
}

func TestQuery_ConfigRowPointsAtStore(t *testing.T) {
	s := newTestSession(t, &countingClient{})
	row := s.Query("!config")[0]
	if row.Action.Path != "/home/u/.config/shortcuts/shortcuts.yaml" {
		t.Errorf("config path = %q", row.Action.Path)
	}
	if row.ContextData != row.Action.Path {
		t.Errorf("ContextData = %q, want store location", row.ContextData)
	}
}

func TestQuery_LoadError(t *testing.T) {
	st := newTestStore(t, nil, errors.New("yaml: line 2: did not find expected key"))
	s := New(st, &countingClient{}, Options{}).NewSession()

	for _, raw := range []string{"", "g", "g golang", "anything at all"} {
		results := s.Query(raw)
		if len(results) != 1 {
			t.Fatalf("Query(%q) returned %d rows, want 1 error row", raw, len(results))
		}
		if results[0].IconPath != models.IconWarn || !strings.Contains(results[0].SubTitle, "did not find expected key") {
			t.Errorf("Query(%q) row = %+v, want error row", raw, results[0])
		}
		if results[0].IsActionable() {
			t.Error("error row must not be actionable")
		}
	}
}

func TestQuery_HeadOnly(t *testing.T) {
	s := newTestSession(t, &countingClient{})

	results := s.Query("g")
	// Google (exact keyword), GitHub, Go Docs; "g" is a keyword so no default row.
	if len(results) != 3 {
		t.Fatalf("Query(g) returned %d rows, want 3: %+v", len(results), results)
	}
	if results[0].Title != "Google" || results[0].Score != models.ScoreBrowseExact {
		t.Errorf("first row = %q/%d, want Google/%d", results[0].Title, results[0].Score, models.ScoreBrowseExact)
	}
	if countKind(results, models.ScoreDefaultSearch) != 0 {
		t.Error("keyword head must not produce a default search row")
	}

	results = s.Query("gi")
	if len(results) != 2 {
		t.Fatalf("Query(gi) returned %d rows, want 2", len(results))
	}
	if results[0].Score != models.ScoreDefaultSearch {
		t.Errorf("first row score = %d, want default search", results[0].Score)
	}
	if results[1].Title != "GitHub" || results[1].Action.Kind != models.ActionNarrowQuery {
		t.Errorf("second row = %+v, want GitHub narrow row", results[1])
	}
}

func TestQuery_ExactNameBonus(t *testing.T) {
	s := newTestSession(t, &countingClient{})
	results := s.Query("GITHUB")
	row := results[len(results)-1]
	if row.Title != "GitHub" || row.Score != models.ScoreBrowseExact {
		t.Errorf("row = %q/%d, want GitHub/%d", row.Title, row.Score, models.ScoreBrowseExact)
	}
}

func TestQuery_KeywordSearch(t *testing.T) {
	s := newTestSession(t, &countingClient{})
	results := s.Query("g golang tutorial")

	if len(results) != 1 {
		t.Fatalf("got %d rows, want 1: %+v", len(results), results)
	}
	row := results[0]
	if row.Score != models.ScoreKeywordSearch {
		t.Errorf("score = %d, want %d", row.Score, models.ScoreKeywordSearch)
	}
	if row.Title != "Google | golang tutorial" {
		t.Errorf("title = %q", row.Title)
	}
	want := "https://www.google.com/search?q=golang+tutorial"
	if len(row.Action.URLs) != 1 || row.Action.URLs[0] != want {
		t.Errorf("urls = %v, want [%s]", row.Action.URLs, want)
	}
	if row.Record == nil || row.Record.Keyword != "g" {
		t.Errorf("record = %+v, want Google", row.Record)
	}
}

func TestQuery_DefaultFallbackUsesFullInput(t *testing.T) {
	s := newTestSession(t, &countingClient{})

	for _, raw := range []string{"how to cook rice", "  rice  ", "GIT push"} {
		results := s.Query(raw)
		row := findScore(results, models.ScoreDefaultSearch)
		if row == nil {
			t.Fatalf("Query(%q) has no default search row", raw)
		}
		term := strings.TrimSpace(raw)
		if row.Title != "Google | "+term {
			t.Errorf("Query(%q) default title = %q, want term %q", raw, row.Title, term)
		}
	}
}

func TestQuery_KeywordAndDefaultBothApply(t *testing.T) {
	s := newTestSession(t, &countingClient{})

	// "Wikipedia" matches by name, but is not itself a keyword, so the default
	// fallback applies as well.
	results := s.Query("Wikipedia golang")
	if len(results) != 2 {
		t.Fatalf("got %d rows, want 2", len(results))
	}
	if results[0].Score != models.ScoreKeywordSearch || results[0].Record.Name != "Wikipedia" {
		t.Errorf("first row = %q, want explicit Wikipedia search", results[0].Title)
	}
	if results[1].Score != models.ScoreDefaultSearch || results[1].Title != "Google | Wikipedia golang" {
		t.Errorf("second row = %q, want default search of full input", results[1].Title)
	}
}

func TestQuery_NoDefault(t *testing.T) {
	records := testRecords()
	records[0].IsDefault = false
	st := newTestStore(t, records, nil)
	s := New(st, &countingClient{}, Options{}).NewSession()

	if results := s.Query("unknown words"); len(results) != 0 {
		t.Errorf("got %d rows, want none", len(results))
	}
}

func TestQuery_MultiURLAndStatic(t *testing.T) {
	s := newTestSession(t, &countingClient{})

	row := s.Query("both cat")[0]
	if len(row.Action.URLs) != 2 || row.Action.URLs[0] != "https://a.com/cat" || row.Action.URLs[1] != "https://b.com/cat" {
		t.Errorf("multi urls = %v", row.Action.URLs)
	}

	row = s.Query("godoc anything here")[0]
	if len(row.Action.URLs) != 1 || row.Action.URLs[0] != "https://go.dev/doc" {
		t.Errorf("static urls = %v, want template unchanged", row.Action.URLs)
	}
}

func TestQuery_NarrowQuery(t *testing.T) {
	st := newTestStore(t, testRecords(), nil)

	plain := New(st, &countingClient{}, Options{}).NewSession()
	prefixed := New(st, &countingClient{}, Options{ActionKeyword: "ws"}).NewSession()

	tests := []struct {
		name    string
		s       *Session
		raw     string
		title   string
		wantNew string
	}{
		{"name", plain, "wiki", "Wikipedia", "Wikipedia "},
		{"with action keyword", prefixed, "wiki", "Wikipedia", "ws Wikipedia "},
		{"name with space uses keyword", plain, "go", "Go Docs", "godoc "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var row *models.Result
			for _, r := range tt.s.Query(tt.raw) {
				if r.Title == tt.title {
					row = &r
					break
				}
			}
			if row == nil {
				t.Fatalf("no %q row for %q", tt.title, tt.raw)
			}
			if row.Action.Query != tt.wantNew {
				t.Errorf("narrow query = %q, want %q", row.Action.Query, tt.wantNew)
			}
		})
	}
}

func TestQueryDelayed_KeywordSuggestions(t *testing.T) {
	client := &countingClient{items: twoItems()}
	s := newTestSession(t, client)

	results := s.QueryDelayed(context.Background(), "w go")
	if client.lastTerm() != "wikipedia:go" {
		t.Errorf("fetched %q, want wikipedia:go", client.lastTerm())
	}
	if len(results) != 3 {
		t.Fatalf("got %d rows, want 3", len(results))
	}
	if results[0].Score != models.ScoreKeywordSearch || results[0].Title != "Wikipedia | go" {
		t.Errorf("first row = %q, want search row", results[0].Title)
	}
	sug := results[1]
	if sug.Score != models.ScoreSuggestion || sug.IconPath != models.IconSuggestion {
		t.Errorf("suggestion row = %+v", sug)
	}
	if sug.Action.URLs[0] != "https://en.wikipedia.org/w/index.php?search=golang" {
		t.Errorf("suggestion url = %q, want search for the suggested title", sug.Action.URLs[0])
	}
	if sug.QueryTextDisplay != "w golang" {
		t.Errorf("suggestion query text = %q, want %q", sug.QueryTextDisplay, "w golang")
	}
	if sug.SubTitle != "programming language" {
		t.Errorf("suggestion subtitle = %q", sug.SubTitle)
	}

	// Later keystrokes keep showing the cached suggestions.
	sync := s.Query("w gol")
	if len(sync) != 3 || countKind(sync, models.ScoreSuggestion) != 2 {
		t.Errorf("sync rows = %d (suggestions %d), want search + 2 cached", len(sync), countKind(sync, models.ScoreSuggestion))
	}
	if sync[0].Title != "Wikipedia | gol" {
		t.Errorf("sync search row = %q, want recomputed term", sync[0].Title)
	}
}

func TestQueryDelayed_EmptyFetchClearsCache(t *testing.T) {
	client := &countingClient{items: twoItems()}
	s := newTestSession(t, client)

	s.QueryDelayed(context.Background(), "w go")
	if n := countKind(s.Query("w go"), models.ScoreSuggestion); n != 2 {
		t.Fatalf("cached suggestions = %d, want 2", n)
	}

	client.items = nil
	if results := s.QueryDelayed(context.Background(), "w gox"); results != nil {
		t.Errorf("empty fetch returned %d rows, want none", len(results))
	}

	results := s.Query("w gox")
	if len(results) != 1 || results[0].Score != models.ScoreKeywordSearch {
		t.Errorf("rows after empty fetch = %+v, want the search row only", results)
	}
}

func TestQueryDelayed_FailedFetchClearsCache(t *testing.T) {
	client := &countingClient{items: twoItems()}
	s := newTestSession(t, client)
	s.QueryDelayed(context.Background(), "w go")

	client.err = errors.New("connection refused")
	if results := s.QueryDelayed(context.Background(), "w gop"); results != nil {
		t.Errorf("failed fetch returned %d rows", len(results))
	}
	if n := countKind(s.Query("w gop"), models.ScoreSuggestion); n != 0 {
		t.Errorf("cached suggestions after failure = %d, want 0", n)
	}
}

func TestQueryDelayed_DefaultRecord(t *testing.T) {
	client := &countingClient{items: twoItems()}
	s := newTestSession(t, client)

	results := s.QueryDelayed(context.Background(), "gi")
	if client.lastTerm() != "google:gi" {
		t.Errorf("fetched %q, want google:gi", client.lastTerm())
	}
	// Default search, GitHub narrow row, two suggestions.
	if len(results) != 4 {
		t.Fatalf("got %d rows, want 4: %+v", len(results), results)
	}
	if results[0].Score != models.ScoreDefaultSearch {
		t.Errorf("first row score = %d, want default search", results[0].Score)
	}
	if results[1].Title != "GitHub" {
		t.Errorf("second row = %q, want GitHub narrow row", results[1].Title)
	}
	if countKind(results, models.ScoreSuggestion) != 2 {
		t.Error("want two suggestion rows")
	}

	results = s.QueryDelayed(context.Background(), "how to golang")
	if client.lastTerm() != "google:how to golang" {
		t.Errorf("fetched %q, want the whole input", client.lastTerm())
	}
	if results[0].Title != "Google | how to golang" {
		t.Errorf("default row = %q", results[0].Title)
	}
	if results[1].QueryTextDisplay != "golang" {
		t.Errorf("suggestion query text = %q, want the suggestion replacing the whole input", results[1].QueryTextDisplay)
	}
}

func TestQueryDelayed_NothingToSuggest(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", "  "},
		{"reload", "!Reload"},
		{"config", "!config "},
		{"keyword only", "w"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &countingClient{items: twoItems()}
			s := newTestSession(t, client)
			s.QueryDelayed(context.Background(), "w go")
			before := client.calls.Load()

			if results := s.QueryDelayed(context.Background(), tt.raw); results != nil {
				t.Errorf("QueryDelayed(%q) = %d rows, want none", tt.raw, len(results))
			}
			if client.calls.Load() != before {
				t.Error("unexpected fetch")
			}
			if n := countKind(s.Query("w go"), models.ScoreSuggestion); n != 0 {
				t.Errorf("cache holds %d rows, want cleared", n)
			}
		})
	}
}

func TestQueryDelayed_HeadOnlyWithoutDefault(t *testing.T) {
	records := testRecords()
	records[0].IsDefault = false
	client := &countingClient{items: twoItems()}
	s := New(newTestStore(t, records, nil), client, Options{}).NewSession()

	if results := s.QueryDelayed(context.Background(), "golang"); results != nil {
		t.Errorf("got %d rows, want none", len(results))
	}
	if client.calls.Load() != 0 {
		t.Error("unexpected fetch")
	}
}

func TestQueryDelayed_LoadErrorClearsCache(t *testing.T) {
	src := &store.StaticSource{Records: testRecords()}
	st := store.New(src)
	st.Reload(context.Background())
	client := &countingClient{items: twoItems()}
	s := New(st, client, Options{}).NewSession()

	s.QueryDelayed(context.Background(), "w go")
	src.Err = errors.New("gone")
	st.Reload(context.Background())

	if results := s.QueryDelayed(context.Background(), "w go"); results != nil {
		t.Errorf("got %d rows with load error", len(results))
	}
	src.Err = nil
	st.Reload(context.Background())
	if n := countKind(s.Query("w go"), models.ScoreSuggestion); n != 0 {
		t.Errorf("cache holds %d rows, want cleared", n)
	}
}

func TestQueryDelayed_NoProviderLeavesCache(t *testing.T) {
	client := &countingClient{items: twoItems()}
	s := newTestSession(t, client)
	s.QueryDelayed(context.Background(), "w go")
	before := client.calls.Load()

	if results := s.QueryDelayed(context.Background(), "gh cli"); results != nil {
		t.Errorf("got %d rows, want none", len(results))
	}
	if client.calls.Load() != before {
		t.Error("record without provider must not fetch")
	}
	if n := countKind(s.Query("gh cli"), models.ScoreSuggestion); n != 2 {
		t.Errorf("cache holds %d rows, want the previous 2 untouched", n)
	}
}

func TestQueryDelayed_NameMatchWithoutProviderUsesDefault(t *testing.T) {
	client := &countingClient{items: twoItems()}
	s := newTestSession(t, client)

	rows := s.Query("GitHub golang")
	if findScore(rows, models.ScoreDefaultSearch) == nil {
		t.Fatal("sync path should offer the default search")
	}

	results := s.QueryDelayed(context.Background(), "GitHub golang")
	if client.lastTerm() != "google:GitHub golang" {
		t.Errorf("fetched %q, want google:GitHub golang", client.lastTerm())
	}
	if n := countKind(results, models.ScoreSuggestion); n != 2 {
		t.Errorf("got %d suggestion rows, want 2", n)
	}
	def := findScore(results, models.ScoreDefaultSearch)
	if def == nil || def.Title != "Google | GitHub golang" {
		t.Errorf("default row = %+v, want Google | GitHub golang", def)
	}
	if n := countKind(s.Query("GitHub golang"), models.ScoreSuggestion); n != 2 {
		t.Errorf("cache holds %d rows, want 2", n)
	}
}

func TestQueryDelayed_NameMatchWithProvider(t *testing.T) {
	client := &countingClient{items: twoItems()}
	s := newTestSession(t, client)

	results := s.QueryDelayed(context.Background(), "wikipedia golang")
	if client.lastTerm() != "wikipedia:golang" {
		t.Errorf("fetched %q, want wikipedia:golang", client.lastTerm())
	}
	if findScore(results, models.ScoreKeywordSearch) == nil {
		t.Error("want the Wikipedia search row")
	}
}

// blockingClient holds fetches for "slow" until released and ignores
// cancellation, so stale completions really do arrive late.
type blockingClient struct {
	started chan struct{}
	release chan struct{}
}

func (c *blockingClient) Fetch(ctx context.Context, providerID, term string) ([]models.SuggestionItem, error) {
	if strings.HasSuffix(term, "slow") {
		close(c.started)
		<-c.release
		return []models.SuggestionItem{{Title: "stale one"}, {Title: "stale two"}, {Title: "stale three"}}, nil
	}
	return []models.SuggestionItem{{Title: "fresh"}}, nil
}

func TestQueryDelayed_StaleFetchDiscarded(t *testing.T) {
	client := &blockingClient{started: make(chan struct{}), release: make(chan struct{})}
	s := newTestSession(t, client)

	done := make(chan []models.Result)
	go func() {
		done <- s.QueryDelayed(context.Background(), "w slow")
	}()
	<-client.started

	fresh := s.QueryDelayed(context.Background(), "w fast")
	if countKind(fresh, models.ScoreSuggestion) != 1 {
		t.Fatalf("fresh rows = %+v", fresh)
	}

	close(client.release)
	select {
	case stale := <-done:
		if stale != nil {
			t.Errorf("stale fetch returned %d rows, want none", len(stale))
		}
	case <-time.After(2 * time.Second):
		t.Fatal("stale fetch did not return")
	}

	results := s.Query("w fast")
	var titles []string
	for _, r := range results {
		if r.Score == models.ScoreSuggestion {
			titles = append(titles, r.Title)
		}
	}
	if len(titles) != 1 || titles[0] != "fresh" {
		t.Errorf("cached suggestions = %v, want [fresh]", titles)
	}
}

func TestQueryDelayed_TypingSupersedesInFlightFetch(t *testing.T) {
	client := &blockingClient{started: make(chan struct{}), release: make(chan struct{})}
	s := newTestSession(t, client)

	done := make(chan []models.Result)
	go func() {
		done <- s.QueryDelayed(context.Background(), "w slow")
	}()
	<-client.started

	// The user keeps typing before the fetch returns.
	s.Query("w slower")
	close(client.release)

	if stale := <-done; stale != nil {
		t.Errorf("superseded fetch returned %d rows", len(stale))
	}
	if n := countKind(s.Query("w slower"), models.ScoreSuggestion); n != 0 {
		t.Errorf("cache holds %d stale rows", n)
	}
}

func TestQueryDelayed_SupersededFetchIsCancelled(t *testing.T) {
	started := make(chan struct{})
	cancelled := make(chan struct{})
	client := suggest.ClientFunc(func(ctx context.Context, providerID, term string) ([]models.SuggestionItem, error) {
		if term == "first" {
			close(started)
			<-ctx.Done()
			close(cancelled)
			return nil, ctx.Err()
		}
		return nil, nil
	})
	s := newTestSession(t, client)

	go s.QueryDelayed(context.Background(), "w first")
	<-started
	s.QueryDelayed(context.Background(), "w second")

	select {
	case <-cancelled:
	case <-time.After(2 * time.Second):
		t.Fatal("superseded fetch context was not cancelled")
	}
}

func TestSession_RemembersEmittedRows(t *testing.T) {
	s := newTestSession(t, &countingClient{})
	results := s.Query("g golang")

	got, ok := s.Result(results[0].ID)
	if !ok {
		t.Fatal("Result() did not find an emitted row")
	}
	if got.Title != results[0].Title {
		t.Errorf("Result() = %q, want %q", got.Title, results[0].Title)
	}
	if _, ok := s.Result("not-an-id"); ok {
		t.Error("Result() found an unknown id")
	}
}

func TestSession_ForgetsOldRows(t *testing.T) {
	s := newTestSession(t, &countingClient{})
	first := s.Query("g first")[0].ID

	for i := 0; i < rememberedRows; i++ {
		s.Query("g more")
	}
	if _, ok := s.Result(first); ok {
		t.Error("oldest row still remembered")
	}
}

func TestRows_LookupLabels(t *testing.T) {
	s := newTestSession(t, &countingClient{items: twoItems()})

	tests := []struct {
		raw         string
		score       int
		wantKeyword string
		wantOutcome string
	}{
		{"w golang", models.ScoreKeywordSearch, "w", models.OutcomeKeyword},
		{"how to golang", models.ScoreDefaultSearch, "g", models.OutcomeDefault},
		{"gi", models.ScoreBrowse, "gh", models.OutcomeBrowse},
		{" !RELOAD ", 0, CommandReload, models.OutcomeCommand},
	}

	for _, tt := range tests {
		row := findScore(s.Query(tt.raw), tt.score)
		if row == nil {
			t.Fatalf("Query(%q) has no row with score %d", tt.raw, tt.score)
		}
		if row.Keyword != tt.wantKeyword || row.Outcome != tt.wantOutcome {
			t.Errorf("Query(%q) row labels = %q/%q, want %q/%q", tt.raw, row.Keyword, row.Outcome, tt.wantKeyword, tt.wantOutcome)
		}
	}

	rows := s.QueryDelayed(context.Background(), "w go")
	if row := findScore(rows, models.ScoreSuggestion); row == nil || row.Outcome != models.OutcomeSuggestion {
		t.Errorf("suggestion row = %+v, want suggestion outcome", row)
	}
}
