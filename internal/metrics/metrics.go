package metrics

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"shortcuts/internal/models"
)

var (
	keywordLookupDesc = prometheus.NewDesc(
		"shortcuts_keyword_lookups_total",
		"Total keyword lookup count by outcome",
		[]string{"keyword", "outcome"},
		nil,
	)

	suggestionFetches = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shortcuts_suggestion_fetches_total",
		Help: "Suggestion provider fetches by provider and outcome",
	}, []string{"provider", "outcome"})

	suggestionLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "shortcuts_suggestion_fetch_seconds",
		Help:    "Suggestion provider round-trip latency",
		Buckets: []float64{.05, .1, .25, .5, 1, 2, 5},
	}, []string{"provider"})

	staleSuggestions = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "shortcuts_suggestion_stale_total",
		Help: "Suggestion fetches discarded because a newer query superseded them",
	})

	activations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shortcuts_activations_total",
		Help: "Result activations by action kind and outcome",
	}, []string{"kind", "outcome"})

	providerUp = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "shortcuts_provider_up",
		Help: "Whether the last probe of a suggestion provider succeeded",
	}, []string{"provider"})
)

// Suggestion fetch outcome labels
const (
	FetchOK     = "ok"
	FetchEmpty  = "empty"
	FetchFailed = "failed"
)

// LookupStore persists keyword lookup counts.
type LookupStore interface {
	IncrementKeywordLookup(ctx context.Context, keyword, outcome string) error
	GetAllKeywordLookups(ctx context.Context) ([]models.KeywordLookup, error)
}

// KeywordCollector is a custom Prometheus collector that reads keyword lookup
// counts from the lookup store on each scrape.
type KeywordCollector struct {
	store LookupStore
}

// Describe sends the metric descriptor to the channel.
func (c *KeywordCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- keywordLookupDesc
}

// Collect queries the store for all keyword lookups and emits them as counters.
func (c *KeywordCollector) Collect(ch chan<- prometheus.Metric) {
	lookups, err := c.store.GetAllKeywordLookups(context.Background())
	if err != nil {
		slog.Error("failed to collect keyword lookup metrics", "error", err)
		return
	}
	for _, l := range lookups {
		ch <- prometheus.MustNewConstMetric(
			keywordLookupDesc,
			prometheus.CounterValue,
			float64(l.Count),
			l.Keyword,
			l.Outcome,
		)
	}
}

// Recorder provides async keyword lookup recording.
type Recorder struct {
	store LookupStore
	wg    sync.WaitGroup
}

var (
	recorder     atomic.Pointer[Recorder]
	recorderOnce sync.Once
)

// Init registers all collectors with the default registry and initializes the
// recorder. Must be called once at startup.
func Init(store LookupStore) {
	recorderOnce.Do(func() {
		SetLookupStore(store)
		Register(prometheus.DefaultRegisterer, store)
	})
}

// SetLookupStore points RecordKeywordLookup at store. A nil store turns
// recording off.
func SetLookupStore(store LookupStore) {
	if store == nil {
		recorder.Store(nil)
		return
	}
	recorder.Store(&Recorder{store: store})
}

// Register adds the keyword collector and the package metrics to reg.
func Register(reg prometheus.Registerer, store LookupStore) {
	reg.MustRegister(
		&KeywordCollector{store: store},
		suggestionFetches,
		suggestionLatency,
		staleSuggestions,
		activations,
		providerUp,
	)
}

// RecordKeywordLookup asynchronously records a keyword lookup outcome.
func RecordKeywordLookup(keyword, outcome string) {
	r := recorder.Load()
	if r == nil {
		return
	}
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		if err := r.store.IncrementKeywordLookup(context.Background(), keyword, outcome); err != nil {
			slog.Error("failed to record keyword lookup", "keyword", keyword, "outcome", outcome, "error", err)
		}
	}()
}

// Flush waits for pending keyword lookup writes.
func Flush() {
	if r := recorder.Load(); r != nil {
		r.wg.Wait()
	}
}

// RecordSuggestionFetch counts one provider round trip.
func RecordSuggestionFetch(provider, outcome string, elapsed time.Duration) {
	suggestionFetches.WithLabelValues(provider, outcome).Inc()
	suggestionLatency.WithLabelValues(provider).Observe(elapsed.Seconds())
}

// RecordStaleSuggestion counts a fetch whose result was discarded.
func RecordStaleSuggestion() {
	staleSuggestions.Inc()
}

// RecordActivation counts one activation.
func RecordActivation(kind string, ok bool) {
	if kind == "" {
		kind = "none"
	}
	outcome := "ok"
	if !ok {
		outcome = "failed"
	}
	activations.WithLabelValues(kind, outcome).Inc()
}

// SetProviderUp records the latest probe result for a provider.
func SetProviderUp(provider string, up bool) {
	v := 0.0
	if up {
		v = 1
	}
	providerUp.WithLabelValues(provider).Set(v)
}

// MemoryLookups keeps keyword lookup counts in process memory.
// Used when no database is configured.
type MemoryLookups struct {
	mu      sync.Mutex
	lookups map[[2]string]*models.KeywordLookup
}

// NewMemoryLookups creates an empty in-memory lookup store.
func NewMemoryLookups() *MemoryLookups {
	return &MemoryLookups{lookups: make(map[[2]string]*models.KeywordLookup)}
}

// IncrementKeywordLookup bumps the count for keyword and outcome.
func (m *MemoryLookups) IncrementKeywordLookup(ctx context.Context, keyword, outcome string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := [2]string{keyword, outcome}
	l, ok := m.lookups[key]
	if !ok {
		l = &models.KeywordLookup{Keyword: keyword, Outcome: outcome}
		m.lookups[key] = l
	}
	l.Count++
	l.LastSeenAt = time.Now()
	return nil
}

// GetAllKeywordLookups returns a copy of every lookup row, ordered by keyword then outcome.
func (m *MemoryLookups) GetAllKeywordLookups(ctx context.Context) ([]models.KeywordLookup, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	lookups := make([]models.KeywordLookup, 0, len(m.lookups))
	for _, l := range m.lookups {
		lookups = append(lookups, *l)
	}
	sort.Slice(lookups, func(i, j int) bool {
		if lookups[i].Keyword != lookups[j].Keyword {
			return lookups[i].Keyword < lookups[j].Keyword
		}
		return lookups[i].Outcome < lookups[j].Outcome
	})
	return lookups, nil
}
